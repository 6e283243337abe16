package trips

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// UnknownBorough is the sentinel borough of unmapped zones
const UnknownBorough = "Unknown"

// Field identifies one trip attribute
type Field int

const (
	FieldPickupTime Field = iota
	FieldPULocationID
	FieldFareAmount
	FieldTipAmount
	FieldTotalAmount
	FieldTripDistance
	FieldPaymentType
	numFields
)

var fieldColumns = [numFields]string{
	FieldPickupTime:   "tpep_pickup_datetime",
	FieldPULocationID: "PULocationID",
	FieldFareAmount:   "fare_amount",
	FieldTipAmount:    "tip_amount",
	FieldTotalAmount:  "total_amount",
	FieldTripDistance: "trip_distance",
	FieldPaymentType:  "payment_type",
}

// ColumnName returns the source column the field is read from
func (f Field) ColumnName() string {
	if f < 0 || f >= numFields {
		return ""
	}
	return fieldColumns[f]
}

func (f Field) String() string { return f.ColumnName() }

// Column is a typed column with per-cell validity
type Column[T any] struct {
	values []T
	valid  []bool
}

func newColumn[T any](capacity int) Column[T] {
	return Column[T]{values: make([]T, 0, capacity), valid: make([]bool, 0, capacity)}
}

func (c *Column[T]) append(v T, ok bool) {
	c.values = append(c.values, v)
	c.valid = append(c.valid, ok)
}

// At returns the i-th value and whether it is valid
func (c Column[T]) At(i int) (T, bool) {
	return c.values[i], c.valid[i]
}

// Len returns the number of cells
func (c Column[T]) Len() int { return len(c.values) }

// Snapshot is an immutable columnar batch of trips tagged with a period label
type Snapshot struct {
	Label        string
	PickupTime   Column[time.Time]
	PULocationID Column[int64]
	FareAmount   Column[float64]
	TipAmount    Column[float64]
	TotalAmount  Column[float64]
	TripDistance Column[float64]
	PaymentType  Column[int64]
}

func newSnapshot(label string, capacity int) *Snapshot {
	return &Snapshot{
		Label:        label,
		PickupTime:   newColumn[time.Time](capacity),
		PULocationID: newColumn[int64](capacity),
		FareAmount:   newColumn[float64](capacity),
		TipAmount:    newColumn[float64](capacity),
		TotalAmount:  newColumn[float64](capacity),
		TripDistance: newColumn[float64](capacity),
		PaymentType:  newColumn[int64](capacity),
	}
}

// Len returns the number of trip records
func (s *Snapshot) Len() int { return s.PickupTime.Len() }

func (s *Snapshot) checkShape() error {
	n := s.Len()
	lens := []int{
		s.PULocationID.Len(), s.FareAmount.Len(), s.TipAmount.Len(),
		s.TotalAmount.Len(), s.TripDistance.Len(), s.PaymentType.Len(),
	}
	for _, l := range lens {
		if l != n {
			return fmt.Errorf("snapshot %q: ragged columns (%d vs %d rows)", s.Label, l, n)
		}
	}
	return nil
}

// Zone maps a taxi zone id to its name and borough
type Zone struct {
	LocationID  int64
	Borough     string
	Name        string
	ServiceZone string
}

// Unknown reports whether the zone belongs to the sentinel borough. A blank
// borough (an empty or NULL cell) counts as Unknown too.
func (z Zone) Unknown() bool {
	b := strings.TrimSpace(z.Borough)
	return b == "" || strings.EqualFold(b, UnknownBorough)
}

// Store holds the two snapshots and the zone table
type Store struct {
	snapshots []*Snapshot // label ascending
	byLabel   map[string]*Snapshot
	zones     map[int64]Zone
}

// NewStore validates and assembles a store. Snapshots are ordered by label.
func NewStore(snapshots []*Snapshot, zones []Zone) (*Store, error) {
	if len(snapshots) != 2 {
		return nil, fmt.Errorf("store needs exactly 2 snapshots, got %d", len(snapshots))
	}
	if len(zones) == 0 {
		return nil, fmt.Errorf("zone table: %w", ErrEmptySource)
	}
	st := &Store{
		snapshots: make([]*Snapshot, 0, len(snapshots)),
		byLabel:   make(map[string]*Snapshot, len(snapshots)),
		zones:     make(map[int64]Zone, len(zones)),
	}
	for _, s := range snapshots {
		if s == nil {
			return nil, fmt.Errorf("nil snapshot")
		}
		if s.Label == "" {
			return nil, fmt.Errorf("snapshot without label")
		}
		if _, dup := st.byLabel[s.Label]; dup {
			return nil, fmt.Errorf("duplicate snapshot label %q", s.Label)
		}
		if s.Len() == 0 {
			return nil, fmt.Errorf("snapshot %q: %w", s.Label, ErrEmptySource)
		}
		if err := s.checkShape(); err != nil {
			return nil, err
		}
		st.byLabel[s.Label] = s
		st.snapshots = append(st.snapshots, s)
	}
	sort.Slice(st.snapshots, func(i, j int) bool { return st.snapshots[i].Label < st.snapshots[j].Label })
	for _, z := range zones {
		st.zones[z.LocationID] = z
	}
	return st, nil
}

// Snapshots returns the snapshots in label order
func (st *Store) Snapshots() []*Snapshot {
	out := make([]*Snapshot, len(st.snapshots))
	copy(out, st.snapshots)
	return out
}

// Labels returns the period labels in order
func (st *Store) Labels() []string {
	out := make([]string, len(st.snapshots))
	for i, s := range st.snapshots {
		out[i] = s.Label
	}
	return out
}

func (st *Store) Snapshot(label string) (*Snapshot, bool) {
	s, ok := st.byLabel[label]
	return s, ok
}

func (st *Store) Zone(id int64) (Zone, bool) {
	z, ok := st.zones[id]
	return z, ok
}

func (st *Store) ZoneCount() int { return len(st.zones) }
