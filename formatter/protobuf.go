package formatter

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"

	"github.com/theoremus-urban-solutions/taxi-compare/views"
)

// ToMessage converts view rows into the matching message of Schema: a row
// slice becomes its <View> list message, a views.Summary becomes Summary.
// Counts stay int64, hours and weekdays int32, undefined means stay unset.
func ToMessage(v any) (*dynamicpb.Message, error) {
	switch rows := v.(type) {
	case []views.HourlyRow:
		return listMessage("HourlyView", rows, fillHourly), nil
	case []views.WeeklyRow:
		return listMessage("WeeklyView", rows, fillWeekly), nil
	case []views.PaymentRow:
		return listMessage("PaymentView", rows, fillPayment), nil
	case []views.ZoneRow:
		return listMessage("ZoneView", rows, fillZone), nil
	case []views.FareRow:
		return listMessage("FareView", rows, fillFare), nil
	case views.Summary:
		m := dynamicpb.NewMessage(Message("Summary"))
		appendRows(m, "hourly", rows.Hourly, fillHourly)
		appendRows(m, "weekly", rows.Weekly, fillWeekly)
		appendRows(m, "payments", rows.Payments, fillPayment)
		appendRows(m, "top_zones", rows.TopZones, fillZone)
		appendRows(m, "fares", rows.Fares, fillFare)
		return m, nil
	}
	return nil, fmt.Errorf("%w: no protobuf message for %T", ErrUnsupportedFormat, v)
}

// BuildProtobuf serializes view rows as binary protobuf
func BuildProtobuf(v any) ([]byte, error) {
	m, err := ToMessage(v)
	if err != nil {
		return nil, err
	}
	b, err := proto.MarshalOptions{Deterministic: true}.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode protobuf: %w", err)
	}
	return b, nil
}

func listMessage[T any](name string, rows []T, fill func(protoreflect.Message, T)) *dynamicpb.Message {
	m := dynamicpb.NewMessage(Message(name))
	appendRows(m, "rows", rows, fill)
	return m
}

func appendRows[T any](m protoreflect.Message, field string, rows []T, fill func(protoreflect.Message, T)) {
	if len(rows) == 0 {
		return
	}
	list := m.Mutable(m.Descriptor().Fields().ByName(protoreflect.Name(field))).List()
	for _, r := range rows {
		elem := list.NewElement()
		fill(elem.Message(), r)
		list.Append(elem)
	}
}

func set(m protoreflect.Message, field string, v protoreflect.Value) {
	m.Set(m.Descriptor().Fields().ByName(protoreflect.Name(field)), v)
}

func fillHourly(m protoreflect.Message, r views.HourlyRow) {
	set(m, "period", protoreflect.ValueOfString(r.Period))
	set(m, "hour", protoreflect.ValueOfInt32(int32(r.Hour)))
	set(m, "count", protoreflect.ValueOfInt64(r.Count))
}

func fillWeekly(m protoreflect.Message, r views.WeeklyRow) {
	set(m, "period", protoreflect.ValueOfString(r.Period))
	set(m, "day_of_week", protoreflect.ValueOfInt32(int32(r.DayOfWeek)))
	set(m, "count", protoreflect.ValueOfInt64(r.Count))
}

func fillPayment(m protoreflect.Message, r views.PaymentRow) {
	set(m, "period", protoreflect.ValueOfString(r.Period))
	set(m, "method", protoreflect.ValueOfString(string(r.Method)))
	set(m, "count", protoreflect.ValueOfInt64(r.Count))
}

func fillZone(m protoreflect.Message, r views.ZoneRow) {
	set(m, "period", protoreflect.ValueOfString(r.Period))
	set(m, "zone_name", protoreflect.ValueOfString(r.ZoneName))
	set(m, "count", protoreflect.ValueOfInt64(r.Count))
}

func fillFare(m protoreflect.Message, r views.FareRow) {
	set(m, "period", protoreflect.ValueOfString(r.Period))
	setMean(m, "mean_fare", r.MeanFare)
	setMean(m, "mean_tip", r.MeanTip)
	setMean(m, "mean_total", r.MeanTotal)
}

func setMean(m protoreflect.Message, field string, mean *float64) {
	if mean != nil {
		set(m, field, protoreflect.ValueOfFloat64(*mean))
	}
}
