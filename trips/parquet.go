package trips

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
)

const parquetBatchSize = 64 * 1024

// decodeParquet reads only the required leaf columns of a flat parquet file.
func decodeParquet(ctx context.Context, label string, r sourceReader) (*Snapshot, error) {
	pf, err := file.NewParquetReader(r)
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}
	defer pf.Close()

	schema := pf.MetaData().Schema
	leaves := make([]int, numFields)
	names := make([]string, numFields)
	for f := Field(0); f < numFields; f++ {
		idx := -1
		for i := 0; i < schema.NumColumns(); i++ {
			if strings.EqualFold(schema.Column(i).Name(), f.ColumnName()) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, missingColumn(f.ColumnName())
		}
		leaves[f] = idx
		names[f] = schema.Column(idx).Name()
	}

	fr, err := pqarrow.NewFileReader(pf, pqarrow.ArrowReadProperties{BatchSize: parquetBatchSize}, memory.DefaultAllocator)
	if err != nil {
		return nil, fmt.Errorf("parquet reader: %w", err)
	}
	rowGroups := make([]int, pf.NumRowGroups())
	for i := range rowGroups {
		rowGroups[i] = i
	}
	tbl, err := fr.ReadRowGroups(ctx, leaves, rowGroups)
	if err != nil {
		return nil, fmt.Errorf("read parquet: %w", err)
	}
	defer tbl.Release()

	snap := newSnapshot(label, int(tbl.NumRows()))
	for f := Field(0); f < numFields; f++ {
		idx := tbl.Schema().FieldIndices(names[f])
		if len(idx) == 0 {
			return nil, missingColumn(names[f])
		}
		for _, chunk := range tbl.Column(idx[0]).Data().Chunks() {
			if err := snap.appendArrow(f, chunk); err != nil {
				return nil, fmt.Errorf("column %s: %w", names[f], err)
			}
		}
	}
	if err := snap.checkShape(); err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *Snapshot) appendArrow(f Field, arr arrow.Array) error {
	switch f {
	case FieldPickupTime:
		return appendTimes(&s.PickupTime, arr)
	case FieldPULocationID:
		return appendInts(&s.PULocationID, arr)
	case FieldPaymentType:
		return appendInts(&s.PaymentType, arr)
	case FieldFareAmount:
		return appendFloats(&s.FareAmount, arr)
	case FieldTipAmount:
		return appendFloats(&s.TipAmount, arr)
	case FieldTotalAmount:
		return appendFloats(&s.TotalAmount, arr)
	case FieldTripDistance:
		return appendFloats(&s.TripDistance, arr)
	}
	return fmt.Errorf("unknown field %d", f)
}

// valueArray is the accessor set shared by arrow's primitive arrays
type valueArray[T any] interface {
	Len() int
	IsValid(i int) bool
	Value(i int) T
}

func appendValues[T, V any](col *Column[V], a valueArray[T], conv func(T) (V, bool)) {
	var zero V
	for i := 0; i < a.Len(); i++ {
		if !a.IsValid(i) {
			col.append(zero, false)
			continue
		}
		v, ok := conv(a.Value(i))
		col.append(v, ok)
	}
}

func widenInt[T int8 | int16 | int32 | int64 | uint8 | uint16 | uint32](v T) (int64, bool) {
	return int64(v), true
}

func intToFloat[T int8 | int16 | int32 | int64 | uint8 | uint16 | uint32](v T) (float64, bool) {
	return float64(v), true
}

func appendFloats(col *Column[float64], arr arrow.Array) error {
	switch a := arr.(type) {
	case *array.Float64:
		appendValues[float64, float64](col, a, finite)
	case *array.Float32:
		appendValues[float32, float64](col, a, func(v float32) (float64, bool) { return finite(float64(v)) })
	case *array.Int64:
		appendValues[int64, float64](col, a, intToFloat[int64])
	case *array.Int32:
		appendValues[int32, float64](col, a, intToFloat[int32])
	case *array.Int16:
		appendValues[int16, float64](col, a, intToFloat[int16])
	case *array.String:
		appendValues[string, float64](col, a, parseFloatCell)
	default:
		return fmt.Errorf("%w: %s", ErrColumnType, arr.DataType())
	}
	return nil
}

func appendInts(col *Column[int64], arr arrow.Array) error {
	switch a := arr.(type) {
	case *array.Int64:
		appendValues[int64, int64](col, a, widenInt[int64])
	case *array.Int32:
		appendValues[int32, int64](col, a, widenInt[int32])
	case *array.Int16:
		appendValues[int16, int64](col, a, widenInt[int16])
	case *array.Int8:
		appendValues[int8, int64](col, a, widenInt[int8])
	case *array.Uint32:
		appendValues[uint32, int64](col, a, widenInt[uint32])
	case *array.Uint16:
		appendValues[uint16, int64](col, a, widenInt[uint16])
	case *array.Uint8:
		appendValues[uint8, int64](col, a, widenInt[uint8])
	case *array.Float64:
		// payment_type is stored as double in some monthly files
		appendValues[float64, int64](col, a, integral)
	case *array.String:
		appendValues[string, int64](col, a, parseIntCell)
	default:
		return fmt.Errorf("%w: %s", ErrColumnType, arr.DataType())
	}
	return nil
}

func appendTimes(col *Column[time.Time], arr arrow.Array) error {
	switch a := arr.(type) {
	case *array.Timestamp:
		tt, ok := a.DataType().(*arrow.TimestampType)
		if !ok {
			return fmt.Errorf("%w: %s", ErrColumnType, arr.DataType())
		}
		loc := time.UTC
		if tt.TimeZone != "" {
			l, err := time.LoadLocation(tt.TimeZone)
			if err != nil {
				return fmt.Errorf("timestamp zone %q: %w", tt.TimeZone, err)
			}
			loc = l
		}
		appendValues[arrow.Timestamp, time.Time](col, a, func(v arrow.Timestamp) (time.Time, bool) {
			return v.ToTime(tt.Unit).In(loc), true
		})
	case *array.String:
		appendValues[string, time.Time](col, a, parseTimeCell)
	default:
		return fmt.Errorf("%w: %s", ErrColumnType, arr.DataType())
	}
	return nil
}
