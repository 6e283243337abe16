package formatter

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

// SchemaPackage is the protobuf package of the view messages
const SchemaPackage = "taxicompare.views"

// Schema describes the protobuf output, as written in views.proto
var Schema protoreflect.FileDescriptor

func init() {
	fd, err := protodesc.NewFile(schemaProto(), new(protoregistry.Files))
	if err != nil {
		panic("formatter: invalid view schema: " + err.Error())
	}
	Schema = fd
}

// Message returns the descriptor of a view message by short name, e.g. "HourlyView"
func Message(name string) protoreflect.MessageDescriptor {
	return Schema.Messages().ByName(protoreflect.Name(name))
}

const (
	typeString = descriptorpb.FieldDescriptorProto_TYPE_STRING
	typeInt32  = descriptorpb.FieldDescriptorProto_TYPE_INT32
	typeInt64  = descriptorpb.FieldDescriptorProto_TYPE_INT64
	typeDouble = descriptorpb.FieldDescriptorProto_TYPE_DOUBLE
	typeMsg    = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE
)

func scalar(name string, num int32, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(num),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   typ.Enum(),
	}
}

func repeated(name string, num int32, msg string) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		Number:   proto.Int32(num),
		Label:    descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum(),
		Type:     typeMsg.Enum(),
		TypeName: proto.String("." + SchemaPackage + "." + msg),
	}
}

// countRow is a period, one grouping key and an int64 count
func countRow(name, key string, keyType descriptorpb.FieldDescriptorProto_Type) *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{
		Name: proto.String(name),
		Field: []*descriptorpb.FieldDescriptorProto{
			scalar("period", 1, typeString),
			scalar(key, 2, keyType),
			scalar("count", 3, typeInt64),
		},
	}
}

// fareRow carries proto3 optional means, each in its synthetic oneof
func fareRow() *descriptorpb.DescriptorProto {
	msg := &descriptorpb.DescriptorProto{
		Name:  proto.String("FareRow"),
		Field: []*descriptorpb.FieldDescriptorProto{scalar("period", 1, typeString)},
	}
	for i, name := range []string{"mean_fare", "mean_tip", "mean_total"} {
		f := scalar(name, int32(i+2), typeDouble)
		f.Proto3Optional = proto.Bool(true)
		f.OneofIndex = proto.Int32(int32(i))
		msg.Field = append(msg.Field, f)
		msg.OneofDecl = append(msg.OneofDecl, &descriptorpb.OneofDescriptorProto{Name: proto.String("_" + name)})
	}
	return msg
}

func listOf(name, row string) *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{
		Name:  proto.String(name),
		Field: []*descriptorpb.FieldDescriptorProto{repeated("rows", 1, row)},
	}
}

func schemaProto() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String("taxicompare/views.proto"),
		Package: proto.String(SchemaPackage),
		Syntax:  proto.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			countRow("HourlyRow", "hour", typeInt32),
			countRow("WeeklyRow", "day_of_week", typeInt32),
			countRow("PaymentRow", "method", typeString),
			countRow("ZoneRow", "zone_name", typeString),
			fareRow(),
			listOf("HourlyView", "HourlyRow"),
			listOf("WeeklyView", "WeeklyRow"),
			listOf("PaymentView", "PaymentRow"),
			listOf("ZoneView", "ZoneRow"),
			listOf("FareView", "FareRow"),
			{
				Name: proto.String("Summary"),
				Field: []*descriptorpb.FieldDescriptorProto{
					repeated("hourly", 1, "HourlyRow"),
					repeated("weekly", 2, "WeeklyRow"),
					repeated("payments", 3, "PaymentRow"),
					repeated("top_zones", 4, "ZoneRow"),
					repeated("fares", 5, "FareRow"),
				},
			},
		},
	}
}
