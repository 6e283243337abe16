package trips

import "time"

// Trip is one row-oriented trip record
type Trip struct {
	PickupTime   time.Time
	PULocationID int64
	FareAmount   float64
	TipAmount    float64
	TotalAmount  float64
	TripDistance float64
	PaymentType  int64
}

// Builder assembles a snapshot row by row
type Builder struct {
	s *Snapshot
}

// NewBuilder starts an empty snapshot with the given label
func NewBuilder(label string) *Builder {
	return &Builder{s: newSnapshot(label, 0)}
}

// Append adds a fully valid trip
func (b *Builder) Append(t Trip) *Builder {
	return b.AppendMissing(t)
}

// AppendMissing adds a trip whose listed fields are null
func (b *Builder) AppendMissing(t Trip, missing ...Field) *Builder {
	var null [numFields]bool
	for _, f := range missing {
		if f >= 0 && f < numFields {
			null[f] = true
		}
	}
	s := b.s
	s.PickupTime.append(t.PickupTime, !null[FieldPickupTime])
	s.PULocationID.append(t.PULocationID, !null[FieldPULocationID])
	s.FareAmount.append(t.FareAmount, !null[FieldFareAmount])
	s.TipAmount.append(t.TipAmount, !null[FieldTipAmount])
	s.TotalAmount.append(t.TotalAmount, !null[FieldTotalAmount])
	s.TripDistance.append(t.TripDistance, !null[FieldTripDistance])
	s.PaymentType.append(t.PaymentType, !null[FieldPaymentType])
	return b
}

// Build returns the snapshot. The builder must not be used afterwards.
func (b *Builder) Build() *Snapshot {
	s := b.s
	b.s = nil
	return s
}
