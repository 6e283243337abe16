// Package testfixtures builds trip snapshots, zone tables and source files for tests.
package testfixtures

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/theoremus-urban-solutions/taxi-compare/config"
	"github.com/theoremus-urban-solutions/taxi-compare/trips"
)

const (
	Period2019 = "2019"
	Period2023 = "2023"
)

// TripColumns is the header written by WriteTripsCSV
var TripColumns = []string{
	"VendorID", "tpep_pickup_datetime", "PULocationID", "fare_amount",
	"tip_amount", "total_amount", "trip_distance", "payment_type",
}

// ZonesCSV is a small extract of the taxi zone lookup, including both Unknown rows
const ZonesCSV = `"LocationID","Borough","Zone","service_zone"
1,"EWR","Newark Airport","EWR"
132,"Queens","JFK Airport","Airports"
138,"Queens","LaGuardia Airport","Airports"
161,"Manhattan","Midtown Center","Yellow Zone"
162,"Manhattan","Midtown East","Yellow Zone"
230,"Manhattan","Times Sq/Theatre District","Yellow Zone"
236,"Manhattan","Upper East Side North","Yellow Zone"
237,"Manhattan","Upper East Side South","Yellow Zone"
264,"Unknown","NV","N/A"
265,"Unknown","NA","N/A"
`

// Row is a trip with optional null fields
type Row struct {
	trips.Trip
	Null []trips.Field
}

func (r Row) isNull(f trips.Field) bool {
	for _, n := range r.Null {
		if n == f {
			return true
		}
	}
	return false
}

// At parses "2006-01-02 15:04:05" as a UTC wall-clock time
func At(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		panic(err)
	}
	return t
}

// Ride returns a trip that passes every quality filter unless the arguments say otherwise
func Ride(pickup string, zone int64, fare, tip, total, distance float64, payment int64) trips.Trip {
	return trips.Trip{
		PickupTime:   At(pickup),
		PULocationID: zone,
		FareAmount:   fare,
		TipAmount:    tip,
		TotalAmount:  total,
		TripDistance: distance,
		PaymentType:  payment,
	}
}

// Zones returns the zones of ZonesCSV
func Zones() []trips.Zone {
	return []trips.Zone{
		{LocationID: 1, Borough: "EWR", Name: "Newark Airport", ServiceZone: "EWR"},
		{LocationID: 132, Borough: "Queens", Name: "JFK Airport", ServiceZone: "Airports"},
		{LocationID: 138, Borough: "Queens", Name: "LaGuardia Airport", ServiceZone: "Airports"},
		{LocationID: 161, Borough: "Manhattan", Name: "Midtown Center", ServiceZone: "Yellow Zone"},
		{LocationID: 162, Borough: "Manhattan", Name: "Midtown East", ServiceZone: "Yellow Zone"},
		{LocationID: 230, Borough: "Manhattan", Name: "Times Sq/Theatre District", ServiceZone: "Yellow Zone"},
		{LocationID: 236, Borough: "Manhattan", Name: "Upper East Side North", ServiceZone: "Yellow Zone"},
		{LocationID: 237, Borough: "Manhattan", Name: "Upper East Side South", ServiceZone: "Yellow Zone"},
		{LocationID: 264, Borough: "Unknown", Name: "NV", ServiceZone: "N/A"},
		{LocationID: 265, Borough: "Unknown", Name: "NA", ServiceZone: "N/A"},
	}
}

// Snapshot builds an in-memory snapshot
func Snapshot(label string, rows ...Row) *trips.Snapshot {
	b := trips.NewBuilder(label)
	for _, r := range rows {
		b.AppendMissing(r.Trip, r.Null...)
	}
	return b.Build()
}

// Rows wraps fully valid trips
func Rows(ts ...trips.Trip) []Row {
	out := make([]Row, len(ts))
	for i, t := range ts {
		out[i] = Row{Trip: t}
	}
	return out
}

// Store builds a store over the fixture zones
func Store(t testing.TB, a, b []Row) *trips.Store {
	t.Helper()
	st, err := trips.NewStore(
		[]*trips.Snapshot{Snapshot(Period2019, a...), Snapshot(Period2023, b...)},
		Zones(),
	)
	if err != nil {
		t.Fatalf("Failed to build store: %v", err)
	}
	return st
}

// WriteFile writes data under dir and returns its path
func WriteFile(t testing.TB, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// WriteZonesCSV writes ZonesCSV under dir
func WriteZonesCSV(t testing.TB, dir string) string {
	t.Helper()
	return WriteFile(t, dir, "taxi_zone_lookup.csv", []byte(ZonesCSV))
}

// TripsCSV renders rows with the TripColumns header. Null fields become empty cells.
func TripsCSV(t testing.TB, rows []Row) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(TripColumns)
	for _, r := range rows {
		rec := []string{
			"1",
			r.PickupTime.Format("2006-01-02 15:04:05"),
			strconv.FormatInt(r.PULocationID, 10),
			strconv.FormatFloat(r.FareAmount, 'f', -1, 64),
			strconv.FormatFloat(r.TipAmount, 'f', -1, 64),
			strconv.FormatFloat(r.TotalAmount, 'f', -1, 64),
			strconv.FormatFloat(r.TripDistance, 'f', -1, 64),
			strconv.FormatInt(r.PaymentType, 10),
		}
		for f := trips.FieldPickupTime; f <= trips.FieldPaymentType; f++ {
			if r.isNull(f) {
				rec[int(f)+1] = ""
			}
		}
		_ = w.Write(rec)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		t.Fatalf("Failed to render csv: %v", err)
	}
	return buf.Bytes()
}

// WriteTripsCSV writes rows as a csv file under dir
func WriteTripsCSV(t testing.TB, dir, name string, rows []Row) string {
	t.Helper()
	return WriteFile(t, dir, name, TripsCSV(t, rows))
}

// TripsParquet encodes rows the way the yellow taxi files are laid out:
// microsecond timestamps, int32 zone ids, int64 payment codes.
func TripsParquet(t testing.TB, rows []Row) []byte {
	t.Helper()
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "VendorID", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
		{Name: "tpep_pickup_datetime", Type: &arrow.TimestampType{Unit: arrow.Microsecond}, Nullable: true},
		{Name: "PULocationID", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
		{Name: "fare_amount", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		{Name: "tip_amount", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		{Name: "total_amount", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		{Name: "trip_distance", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		{Name: "payment_type", Type: arrow.PrimitiveTypes.Int64, Nullable: true},
	}, nil)

	b := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer b.Release()
	vendor := b.Field(0).(*array.Int32Builder)
	pickup := b.Field(1).(*array.TimestampBuilder)
	zone := b.Field(2).(*array.Int32Builder)
	floats := []*array.Float64Builder{
		b.Field(3).(*array.Float64Builder),
		b.Field(4).(*array.Float64Builder),
		b.Field(5).(*array.Float64Builder),
		b.Field(6).(*array.Float64Builder),
	}
	payment := b.Field(7).(*array.Int64Builder)

	for _, r := range rows {
		vendor.Append(1)
		if r.isNull(trips.FieldPickupTime) {
			pickup.AppendNull()
		} else {
			pickup.Append(arrow.Timestamp(r.PickupTime.UnixMicro()))
		}
		if r.isNull(trips.FieldPULocationID) {
			zone.AppendNull()
		} else {
			zone.Append(int32(r.PULocationID))
		}
		values := []float64{r.FareAmount, r.TipAmount, r.TotalAmount, r.TripDistance}
		fields := []trips.Field{trips.FieldFareAmount, trips.FieldTipAmount, trips.FieldTotalAmount, trips.FieldTripDistance}
		for i, fb := range floats {
			if r.isNull(fields[i]) {
				fb.AppendNull()
			} else {
				fb.Append(values[i])
			}
		}
		if r.isNull(trips.FieldPaymentType) {
			payment.AppendNull()
		} else {
			payment.Append(r.PaymentType)
		}
	}

	rec := b.NewRecord()
	defer rec.Release()
	tbl := array.NewTableFromRecords(schema, []arrow.Record{rec})
	defer tbl.Release()

	var buf bytes.Buffer
	if err := pqarrow.WriteTable(tbl, &buf, 1024, parquet.NewWriterProperties(), pqarrow.DefaultWriterProps()); err != nil {
		t.Fatalf("Failed to write parquet: %v", err)
	}
	return buf.Bytes()
}

// WriteTripsParquet writes rows as a parquet file under dir
func WriteTripsParquet(t testing.TB, dir, name string, rows []Row) string {
	t.Helper()
	return WriteFile(t, dir, name, TripsParquet(t, rows))
}

// DataConfig points both snapshots and the zones at the given locations
func DataConfig(path2019, path2023, zones string) config.DataConfig {
	return config.DataConfig{
		Snapshots: []config.SnapshotConfig{
			{Label: Period2019, Path: path2019},
			{Label: Period2023, Path: path2023},
		},
		Zones: zones,
	}
}
