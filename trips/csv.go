package trips

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// headerIndex returns a case-insensitive column lookup over a csv header
func headerIndex(head []string) func(col string) int {
	return func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")), col) {
				return i
			}
		}
		return -1
	}
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func newCSVReader(r io.Reader) *csv.Reader {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	csvr.ReuseRecord = true
	return csvr
}

// decodeTripsCSV streams a header-first csv into a snapshot.
func decodeTripsCSV(label string, r io.Reader) (*Snapshot, error) {
	csvr := newCSVReader(r)
	head, err := csvr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptySource
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := headerIndex(append([]string(nil), head...))
	var cols [numFields]int
	for f := Field(0); f < numFields; f++ {
		cols[f] = idx(f.ColumnName())
		if cols[f] < 0 {
			return nil, missingColumn(f.ColumnName())
		}
	}

	snap := newSnapshot(label, 0)
	for {
		row, err := csvr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		pickup, ok := parseTimeCell(cell(row, cols[FieldPickupTime]))
		snap.PickupTime.append(pickup, ok)
		zone, ok := parseIntCell(cell(row, cols[FieldPULocationID]))
		snap.PULocationID.append(zone, ok)
		fare, ok := parseFloatCell(cell(row, cols[FieldFareAmount]))
		snap.FareAmount.append(fare, ok)
		tip, ok := parseFloatCell(cell(row, cols[FieldTipAmount]))
		snap.TipAmount.append(tip, ok)
		total, ok := parseFloatCell(cell(row, cols[FieldTotalAmount]))
		snap.TotalAmount.append(total, ok)
		dist, ok := parseFloatCell(cell(row, cols[FieldTripDistance]))
		snap.TripDistance.append(dist, ok)
		payment, ok := parseIntCell(cell(row, cols[FieldPaymentType]))
		snap.PaymentType.append(payment, ok)
	}
	return snap, nil
}

// decodeZonesCSV reads the taxi zone lookup. Rows without a numeric LocationID are skipped.
func decodeZonesCSV(r io.Reader) ([]Zone, error) {
	csvr := newCSVReader(r)
	head, err := csvr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptySource
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := headerIndex(append([]string(nil), head...))
	locID := idx("LocationID")
	borough := idx("Borough")
	name := idx("Zone")
	serviceZone := idx("service_zone")
	for _, c := range []struct {
		name string
		i    int
	}{{"LocationID", locID}, {"Borough", borough}, {"Zone", name}} {
		if c.i < 0 {
			return nil, missingColumn(c.name)
		}
	}

	var zones []Zone
	for {
		row, err := csvr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		id, ok := parseIntCell(cell(row, locID))
		if !ok {
			continue
		}
		zones = append(zones, Zone{
			LocationID:  id,
			Borough:     strings.TrimSpace(cell(row, borough)),
			Name:        strings.TrimSpace(cell(row, name)),
			ServiceZone: strings.TrimSpace(cell(row, serviceZone)),
		})
	}
	if len(zones) == 0 {
		return nil, ErrEmptySource
	}
	return zones, nil
}
