// ABOUTME: Assembles the FileDescriptorProto backing the hand-maintained bindings
// ABOUTME: Must stay field-for-field in sync with directory.proto

package roostpb

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

func strField(name string, num int32) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(num),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
	}
}

func boolField(name string, num int32) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(num),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   descriptorpb.FieldDescriptorProto_TYPE_BOOL.Enum(),
	}
}

func int32Field(name string, num int32) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(num),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   descriptorpb.FieldDescriptorProto_TYPE_INT32.Enum(),
	}
}

func int64Field(name string, num int32) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(num),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   descriptorpb.FieldDescriptorProto_TYPE_INT64.Enum(),
	}
}

// msgField references another message type; typeName is fully qualified
// (".roost.AgentInfo").
func msgField(name string, num int32, typeName string, repeated bool) *descriptorpb.FieldDescriptorProto {
	label := descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL
	if repeated {
		label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED
	}
	return &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		Number:   proto.Int32(num),
		Label:    label.Enum(),
		Type:     descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum(),
		TypeName: proto.String(typeName),
	}
}

// mapEntry builds the synthetic map<string,string> entry message.
func mapEntry(name string) *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{
		Name: proto.String(name),
		Field: []*descriptorpb.FieldDescriptorProto{
			strField("key", 1),
			strField("value", 2),
		},
		Options: &descriptorpb.MessageOptions{MapEntry: proto.Bool(true)},
	}
}

func method(name, in, out string, serverStreaming bool) *descriptorpb.MethodDescriptorProto {
	m := &descriptorpb.MethodDescriptorProto{
		Name:       proto.String(name),
		InputType:  proto.String(in),
		OutputType: proto.String(out),
	}
	if serverStreaming {
		m.ServerStreaming = proto.Bool(true)
	}
	return m
}

// directoryFileDescriptor mirrors directory.proto.
func directoryFileDescriptor() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String("proto/roost/directory.proto"),
		Package: proto.String("roost"),
		Syntax:  proto.String("proto3"),
		Options: &descriptorpb.FileOptions{
			GoPackage: proto.String("github.com/roostlabs/roost/proto/roost;roostpb"),
		},
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: proto.String("RegisterAgentRequest"),
				Field: []*descriptorpb.FieldDescriptorProto{
					strField("agent_id", 1),
					strField("agent_name", 2),
					msgField("capabilities", 3, ".roost.RegisterAgentRequest.CapabilitiesEntry", true),
					strField("hostname", 4),
					strField("platform", 5),
					strField("version", 6),
				},
				NestedType: []*descriptorpb.DescriptorProto{mapEntry("CapabilitiesEntry")},
			},
			{
				Name: proto.String("RegisterAgentResponse"),
				Field: []*descriptorpb.FieldDescriptorProto{
					boolField("success", 1),
					strField("message", 2),
					strField("server_assigned_id", 3),
				},
			},
			{
				Name:  proto.String("UnregisterAgentRequest"),
				Field: []*descriptorpb.FieldDescriptorProto{strField("agent_id", 1)},
			},
			{
				Name: proto.String("Ack"),
				Field: []*descriptorpb.FieldDescriptorProto{
					boolField("success", 1),
					strField("message", 2),
				},
			},
			{
				Name: proto.String("AgentStatusUpdate"),
				Field: []*descriptorpb.FieldDescriptorProto{
					strField("agent_id", 1),
					strField("agent_name", 2),
					msgField("metrics", 3, ".roost.AgentStatusUpdate.MetricsEntry", true),
					int64Field("last_seen_unix_ms", 4),
				},
				NestedType: []*descriptorpb.DescriptorProto{mapEntry("MetricsEntry")},
			},
			{
				Name:  proto.String("ReceiveCommandsRequest"),
				Field: []*descriptorpb.FieldDescriptorProto{strField("agent_id", 1)},
			},
			{
				Name: proto.String("Command"),
				Field: []*descriptorpb.FieldDescriptorProto{
					strField("command_id", 1),
					strField("type", 2),
					strField("content", 3),
					msgField("parameters", 4, ".roost.Command.ParametersEntry", true),
					boolField("is_cancellation", 5),
				},
				NestedType: []*descriptorpb.DescriptorProto{mapEntry("ParametersEntry")},
			},
			{
				Name: proto.String("CommandResult"),
				Field: []*descriptorpb.FieldDescriptorProto{
					strField("command_id", 1),
					strField("agent_id", 2),
					boolField("success", 3),
					strField("output", 4),
					strField("error_message", 5),
					int32Field("exit_code", 6),
					int64Field("execution_time_ms", 7),
				},
			},
			{
				Name: proto.String("CommandResultAck"),
				Field: []*descriptorpb.FieldDescriptorProto{
					boolField("received", 1),
					strField("message", 2),
				},
			},
			{
				Name: proto.String("DispatchCommandRequest"),
				Field: []*descriptorpb.FieldDescriptorProto{
					strField("agent_id", 1),
					strField("type", 2),
					strField("content", 3),
					msgField("parameters", 4, ".roost.DispatchCommandRequest.ParametersEntry", true),
				},
				NestedType: []*descriptorpb.DescriptorProto{mapEntry("ParametersEntry")},
			},
			{
				Name: proto.String("DispatchCommandResponse"),
				Field: []*descriptorpb.FieldDescriptorProto{
					boolField("success", 1),
					strField("message", 2),
					strField("command_id", 3),
				},
			},
			{
				Name:  proto.String("CancelCommandRequest"),
				Field: []*descriptorpb.FieldDescriptorProto{strField("command_id", 1)},
			},
			{
				Name: proto.String("RegisterBrokerRequest"),
				Field: []*descriptorpb.FieldDescriptorProto{
					strField("broker_id", 1),
					strField("broker_name", 2),
				},
			},
			{
				Name:  proto.String("SubscribeRequest"),
				Field: []*descriptorpb.FieldDescriptorProto{strField("broker_id", 1)},
			},
			{
				Name: proto.String("AgentInfo"),
				Field: []*descriptorpb.FieldDescriptorProto{
					strField("agent_id", 1),
					strField("agent_name", 2),
					int64Field("last_seen_unix_ms", 3),
					msgField("metrics", 4, ".roost.AgentInfo.MetricsEntry", true),
				},
				NestedType: []*descriptorpb.DescriptorProto{mapEntry("MetricsEntry")},
			},
			{
				Name: proto.String("AgentStatusSnapshot"),
				Field: []*descriptorpb.FieldDescriptorProto{
					msgField("agents", 1, ".roost.AgentInfo", true),
					boolField("is_full_update", 2),
				},
			},
		},
		Service: []*descriptorpb.ServiceDescriptorProto{
			{
				Name: proto.String("RoostDirectory"),
				Method: []*descriptorpb.MethodDescriptorProto{
					method("RegisterAgent", ".roost.RegisterAgentRequest", ".roost.RegisterAgentResponse", false),
					method("UnregisterAgent", ".roost.UnregisterAgentRequest", ".roost.Ack", false),
					method("SendAgentStatus", ".roost.AgentStatusUpdate", ".roost.Ack", false),
					method("ReceiveCommands", ".roost.ReceiveCommandsRequest", ".roost.Command", true),
					method("SendCommandResult", ".roost.CommandResult", ".roost.CommandResultAck", false),
					method("DispatchCommand", ".roost.DispatchCommandRequest", ".roost.DispatchCommandResponse", false),
					method("CancelCommand", ".roost.CancelCommandRequest", ".roost.Ack", false),
					method("RegisterBroker", ".roost.RegisterBrokerRequest", ".roost.Ack", false),
					method("SubscribeToAgentStatus", ".roost.SubscribeRequest", ".roost.AgentStatusSnapshot", true),
					method("GetAgentStatus", ".roost.SubscribeRequest", ".roost.AgentStatusSnapshot", false),
				},
			},
		},
	}
}

func mustMarshalFileDescriptor() []byte {
	b, err := proto.Marshal(directoryFileDescriptor())
	if err != nil {
		panic(err)
	}
	return b
}
