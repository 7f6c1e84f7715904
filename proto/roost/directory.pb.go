// ABOUTME: Message types for the roost directory wire protocol
// ABOUTME: Hand-maintained protobuf bindings; see doc.go and descriptor.go

package roostpb

import (
	reflect "reflect"

	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type RegisterAgentRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Empty agent_id asks the server to assign one.
	AgentId       string            `protobuf:"bytes,1,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	AgentName     string            `protobuf:"bytes,2,opt,name=agent_name,json=agentName,proto3" json:"agent_name,omitempty"`
	Capabilities  map[string]string `protobuf:"bytes,3,rep,name=capabilities,proto3" json:"capabilities,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
	Hostname      string            `protobuf:"bytes,4,opt,name=hostname,proto3" json:"hostname,omitempty"`
	Platform      string            `protobuf:"bytes,5,opt,name=platform,proto3" json:"platform,omitempty"`
	Version       string            `protobuf:"bytes,6,opt,name=version,proto3" json:"version,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterAgentRequest) Reset() {
	*x = RegisterAgentRequest{}
	mi := &file_proto_roost_directory_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterAgentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterAgentRequest) ProtoMessage() {}

func (x *RegisterAgentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_roost_directory_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *RegisterAgentRequest) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

func (x *RegisterAgentRequest) GetAgentName() string {
	if x != nil {
		return x.AgentName
	}
	return ""
}

func (x *RegisterAgentRequest) GetCapabilities() map[string]string {
	if x != nil {
		return x.Capabilities
	}
	return nil
}

func (x *RegisterAgentRequest) GetHostname() string {
	if x != nil {
		return x.Hostname
	}
	return ""
}

func (x *RegisterAgentRequest) GetPlatform() string {
	if x != nil {
		return x.Platform
	}
	return ""
}

func (x *RegisterAgentRequest) GetVersion() string {
	if x != nil {
		return x.Version
	}
	return ""
}

type RegisterAgentResponse struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	Success bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	// Always populated; echoes agent_id when the caller supplied one.
	ServerAssignedId string `protobuf:"bytes,3,opt,name=server_assigned_id,json=serverAssignedId,proto3" json:"server_assigned_id,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *RegisterAgentResponse) Reset() {
	*x = RegisterAgentResponse{}
	mi := &file_proto_roost_directory_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterAgentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterAgentResponse) ProtoMessage() {}

func (x *RegisterAgentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_roost_directory_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *RegisterAgentResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *RegisterAgentResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *RegisterAgentResponse) GetServerAssignedId() string {
	if x != nil {
		return x.ServerAssignedId
	}
	return ""
}

type UnregisterAgentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AgentId       string                 `protobuf:"bytes,1,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UnregisterAgentRequest) Reset() {
	*x = UnregisterAgentRequest{}
	mi := &file_proto_roost_directory_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UnregisterAgentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UnregisterAgentRequest) ProtoMessage() {}

func (x *UnregisterAgentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_roost_directory_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *UnregisterAgentRequest) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

// Ack is the generic unary response for operations whose only outcome is a
// boolean application-level success.
type Ack struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Ack) Reset() {
	*x = Ack{}
	mi := &file_proto_roost_directory_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Ack) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Ack) ProtoMessage() {}

func (x *Ack) ProtoReflect() protoreflect.Message {
	mi := &file_proto_roost_directory_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *Ack) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *Ack) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type AgentStatusUpdate struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	AgentId   string                 `protobuf:"bytes,1,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	AgentName string                 `protobuf:"bytes,2,opt,name=agent_name,json=agentName,proto3" json:"agent_name,omitempty"`
	// Merged additively into the stored record. The reserved key
	// "internal_state" drives liveness classification.
	Metrics map[string]string `protobuf:"bytes,3,rep,name=metrics,proto3" json:"metrics,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
	// Zero means "now" on the server. Never regresses the stored value.
	LastSeenUnixMs int64 `protobuf:"varint,4,opt,name=last_seen_unix_ms,json=lastSeenUnixMs,proto3" json:"last_seen_unix_ms,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *AgentStatusUpdate) Reset() {
	*x = AgentStatusUpdate{}
	mi := &file_proto_roost_directory_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AgentStatusUpdate) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AgentStatusUpdate) ProtoMessage() {}

func (x *AgentStatusUpdate) ProtoReflect() protoreflect.Message {
	mi := &file_proto_roost_directory_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *AgentStatusUpdate) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

func (x *AgentStatusUpdate) GetAgentName() string {
	if x != nil {
		return x.AgentName
	}
	return ""
}

func (x *AgentStatusUpdate) GetMetrics() map[string]string {
	if x != nil {
		return x.Metrics
	}
	return nil
}

func (x *AgentStatusUpdate) GetLastSeenUnixMs() int64 {
	if x != nil {
		return x.LastSeenUnixMs
	}
	return 0
}

type ReceiveCommandsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AgentId       string                 `protobuf:"bytes,1,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReceiveCommandsRequest) Reset() {
	*x = ReceiveCommandsRequest{}
	mi := &file_proto_roost_directory_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReceiveCommandsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReceiveCommandsRequest) ProtoMessage() {}

func (x *ReceiveCommandsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_roost_directory_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *ReceiveCommandsRequest) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

type Command struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	CommandId  string                 `protobuf:"bytes,1,opt,name=command_id,json=commandId,proto3" json:"command_id,omitempty"`
	Type       string                 `protobuf:"bytes,2,opt,name=type,proto3" json:"type,omitempty"`
	Content    string                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	Parameters map[string]string      `protobuf:"bytes,4,rep,name=parameters,proto3" json:"parameters,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
	// A cancellation carries the command_id of the command it cancels.
	IsCancellation bool `protobuf:"varint,5,opt,name=is_cancellation,json=isCancellation,proto3" json:"is_cancellation,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Command) Reset() {
	*x = Command{}
	mi := &file_proto_roost_directory_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Command) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Command) ProtoMessage() {}

func (x *Command) ProtoReflect() protoreflect.Message {
	mi := &file_proto_roost_directory_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *Command) GetCommandId() string {
	if x != nil {
		return x.CommandId
	}
	return ""
}

func (x *Command) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *Command) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *Command) GetParameters() map[string]string {
	if x != nil {
		return x.Parameters
	}
	return nil
}

func (x *Command) GetIsCancellation() bool {
	if x != nil {
		return x.IsCancellation
	}
	return false
}

type CommandResult struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	CommandId       string                 `protobuf:"bytes,1,opt,name=command_id,json=commandId,proto3" json:"command_id,omitempty"`
	AgentId         string                 `protobuf:"bytes,2,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	Success         bool                   `protobuf:"varint,3,opt,name=success,proto3" json:"success,omitempty"`
	Output          string                 `protobuf:"bytes,4,opt,name=output,proto3" json:"output,omitempty"`
	ErrorMessage    string                 `protobuf:"bytes,5,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	ExitCode        int32                  `protobuf:"varint,6,opt,name=exit_code,json=exitCode,proto3" json:"exit_code,omitempty"`
	ExecutionTimeMs int64                  `protobuf:"varint,7,opt,name=execution_time_ms,json=executionTimeMs,proto3" json:"execution_time_ms,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CommandResult) Reset() {
	*x = CommandResult{}
	mi := &file_proto_roost_directory_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommandResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommandResult) ProtoMessage() {}

func (x *CommandResult) ProtoReflect() protoreflect.Message {
	mi := &file_proto_roost_directory_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *CommandResult) GetCommandId() string {
	if x != nil {
		return x.CommandId
	}
	return ""
}

func (x *CommandResult) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

func (x *CommandResult) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *CommandResult) GetOutput() string {
	if x != nil {
		return x.Output
	}
	return ""
}

func (x *CommandResult) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *CommandResult) GetExitCode() int32 {
	if x != nil {
		return x.ExitCode
	}
	return 0
}

func (x *CommandResult) GetExecutionTimeMs() int64 {
	if x != nil {
		return x.ExecutionTimeMs
	}
	return 0
}

type CommandResultAck struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Always true: late and duplicate results are accepted.
	Received      bool   `protobuf:"varint,1,opt,name=received,proto3" json:"received,omitempty"`
	Message       string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CommandResultAck) Reset() {
	*x = CommandResultAck{}
	mi := &file_proto_roost_directory_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CommandResultAck) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CommandResultAck) ProtoMessage() {}

func (x *CommandResultAck) ProtoReflect() protoreflect.Message {
	mi := &file_proto_roost_directory_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *CommandResultAck) GetReceived() bool {
	if x != nil {
		return x.Received
	}
	return false
}

func (x *CommandResultAck) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type DispatchCommandRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AgentId       string                 `protobuf:"bytes,1,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	Type          string                 `protobuf:"bytes,2,opt,name=type,proto3" json:"type,omitempty"`
	Content       string                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	Parameters    map[string]string      `protobuf:"bytes,4,rep,name=parameters,proto3" json:"parameters,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DispatchCommandRequest) Reset() {
	*x = DispatchCommandRequest{}
	mi := &file_proto_roost_directory_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DispatchCommandRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DispatchCommandRequest) ProtoMessage() {}

func (x *DispatchCommandRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_roost_directory_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *DispatchCommandRequest) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

func (x *DispatchCommandRequest) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *DispatchCommandRequest) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *DispatchCommandRequest) GetParameters() map[string]string {
	if x != nil {
		return x.Parameters
	}
	return nil
}

type DispatchCommandResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Success       bool                   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message       string                 `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	CommandId     string                 `protobuf:"bytes,3,opt,name=command_id,json=commandId,proto3" json:"command_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DispatchCommandResponse) Reset() {
	*x = DispatchCommandResponse{}
	mi := &file_proto_roost_directory_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DispatchCommandResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DispatchCommandResponse) ProtoMessage() {}

func (x *DispatchCommandResponse) ProtoReflect() protoreflect.Message {
	mi := &file_proto_roost_directory_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *DispatchCommandResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *DispatchCommandResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *DispatchCommandResponse) GetCommandId() string {
	if x != nil {
		return x.CommandId
	}
	return ""
}

type CancelCommandRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CommandId     string                 `protobuf:"bytes,1,opt,name=command_id,json=commandId,proto3" json:"command_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelCommandRequest) Reset() {
	*x = CancelCommandRequest{}
	mi := &file_proto_roost_directory_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelCommandRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelCommandRequest) ProtoMessage() {}

func (x *CancelCommandRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_roost_directory_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *CancelCommandRequest) GetCommandId() string {
	if x != nil {
		return x.CommandId
	}
	return ""
}

type RegisterBrokerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BrokerId      string                 `protobuf:"bytes,1,opt,name=broker_id,json=brokerId,proto3" json:"broker_id,omitempty"`
	BrokerName    string                 `protobuf:"bytes,2,opt,name=broker_name,json=brokerName,proto3" json:"broker_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterBrokerRequest) Reset() {
	*x = RegisterBrokerRequest{}
	mi := &file_proto_roost_directory_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterBrokerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterBrokerRequest) ProtoMessage() {}

func (x *RegisterBrokerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_roost_directory_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *RegisterBrokerRequest) GetBrokerId() string {
	if x != nil {
		return x.BrokerId
	}
	return ""
}

func (x *RegisterBrokerRequest) GetBrokerName() string {
	if x != nil {
		return x.BrokerName
	}
	return ""
}

type SubscribeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BrokerId      string                 `protobuf:"bytes,1,opt,name=broker_id,json=brokerId,proto3" json:"broker_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubscribeRequest) Reset() {
	*x = SubscribeRequest{}
	mi := &file_proto_roost_directory_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubscribeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubscribeRequest) ProtoMessage() {}

func (x *SubscribeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_proto_roost_directory_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *SubscribeRequest) GetBrokerId() string {
	if x != nil {
		return x.BrokerId
	}
	return ""
}

type AgentInfo struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	AgentId        string                 `protobuf:"bytes,1,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	AgentName      string                 `protobuf:"bytes,2,opt,name=agent_name,json=agentName,proto3" json:"agent_name,omitempty"`
	LastSeenUnixMs int64                  `protobuf:"varint,3,opt,name=last_seen_unix_ms,json=lastSeenUnixMs,proto3" json:"last_seen_unix_ms,omitempty"`
	Metrics        map[string]string      `protobuf:"bytes,4,rep,name=metrics,proto3" json:"metrics,omitempty" protobuf_key:"bytes,1,opt,name=key,proto3" protobuf_val:"bytes,2,opt,name=value,proto3"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *AgentInfo) Reset() {
	*x = AgentInfo{}
	mi := &file_proto_roost_directory_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AgentInfo) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AgentInfo) ProtoMessage() {}

func (x *AgentInfo) ProtoReflect() protoreflect.Message {
	mi := &file_proto_roost_directory_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *AgentInfo) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

func (x *AgentInfo) GetAgentName() string {
	if x != nil {
		return x.AgentName
	}
	return ""
}

func (x *AgentInfo) GetLastSeenUnixMs() int64 {
	if x != nil {
		return x.LastSeenUnixMs
	}
	return 0
}

func (x *AgentInfo) GetMetrics() map[string]string {
	if x != nil {
		return x.Metrics
	}
	return nil
}

type AgentStatusSnapshot struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	Agents []*AgentInfo           `protobuf:"bytes,1,rep,name=agents,proto3" json:"agents,omitempty"`
	// Full updates are authoritative: receivers discard agents absent from the
	// payload. Partial updates merge by agent_id and never delete.
	IsFullUpdate  bool `protobuf:"varint,2,opt,name=is_full_update,json=isFullUpdate,proto3" json:"is_full_update,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AgentStatusSnapshot) Reset() {
	*x = AgentStatusSnapshot{}
	mi := &file_proto_roost_directory_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AgentStatusSnapshot) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AgentStatusSnapshot) ProtoMessage() {}

func (x *AgentStatusSnapshot) ProtoReflect() protoreflect.Message {
	mi := &file_proto_roost_directory_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *AgentStatusSnapshot) GetAgents() []*AgentInfo {
	if x != nil {
		return x.Agents
	}
	return nil
}

func (x *AgentStatusSnapshot) GetIsFullUpdate() bool {
	if x != nil {
		return x.IsFullUpdate
	}
	return false
}

// File_proto_roost_directory_proto is the descriptor for directory.proto.
var File_proto_roost_directory_proto protoreflect.FileDescriptor

var file_proto_roost_directory_proto_rawDesc = mustMarshalFileDescriptor()

var file_proto_roost_directory_proto_msgTypes = make([]protoimpl.MessageInfo, 21)

var file_proto_roost_directory_proto_goTypes = []any{
	(*RegisterAgentRequest)(nil),    // 0: roost.RegisterAgentRequest
	(*RegisterAgentResponse)(nil),   // 1: roost.RegisterAgentResponse
	(*UnregisterAgentRequest)(nil),  // 2: roost.UnregisterAgentRequest
	(*Ack)(nil),                     // 3: roost.Ack
	(*AgentStatusUpdate)(nil),       // 4: roost.AgentStatusUpdate
	(*ReceiveCommandsRequest)(nil),  // 5: roost.ReceiveCommandsRequest
	(*Command)(nil),                 // 6: roost.Command
	(*CommandResult)(nil),           // 7: roost.CommandResult
	(*CommandResultAck)(nil),        // 8: roost.CommandResultAck
	(*DispatchCommandRequest)(nil),  // 9: roost.DispatchCommandRequest
	(*DispatchCommandResponse)(nil), // 10: roost.DispatchCommandResponse
	(*CancelCommandRequest)(nil),    // 11: roost.CancelCommandRequest
	(*RegisterBrokerRequest)(nil),   // 12: roost.RegisterBrokerRequest
	(*SubscribeRequest)(nil),        // 13: roost.SubscribeRequest
	(*AgentInfo)(nil),               // 14: roost.AgentInfo
	(*AgentStatusSnapshot)(nil),     // 15: roost.AgentStatusSnapshot
	nil,                             // 16: roost.RegisterAgentRequest.CapabilitiesEntry
	nil,                             // 17: roost.AgentStatusUpdate.MetricsEntry
	nil,                             // 18: roost.Command.ParametersEntry
	nil,                             // 19: roost.DispatchCommandRequest.ParametersEntry
	nil,                             // 20: roost.AgentInfo.MetricsEntry
}

var file_proto_roost_directory_proto_depIdxs = []int32{
	16, // 0: roost.RegisterAgentRequest.capabilities:type_name -> roost.RegisterAgentRequest.CapabilitiesEntry
	17, // 1: roost.AgentStatusUpdate.metrics:type_name -> roost.AgentStatusUpdate.MetricsEntry
	18, // 2: roost.Command.parameters:type_name -> roost.Command.ParametersEntry
	19, // 3: roost.DispatchCommandRequest.parameters:type_name -> roost.DispatchCommandRequest.ParametersEntry
	20, // 4: roost.AgentInfo.metrics:type_name -> roost.AgentInfo.MetricsEntry
	14, // 5: roost.AgentStatusSnapshot.agents:type_name -> roost.AgentInfo
	0,  // 6: roost.RoostDirectory.RegisterAgent:input_type -> roost.RegisterAgentRequest
	2,  // 7: roost.RoostDirectory.UnregisterAgent:input_type -> roost.UnregisterAgentRequest
	4,  // 8: roost.RoostDirectory.SendAgentStatus:input_type -> roost.AgentStatusUpdate
	5,  // 9: roost.RoostDirectory.ReceiveCommands:input_type -> roost.ReceiveCommandsRequest
	7,  // 10: roost.RoostDirectory.SendCommandResult:input_type -> roost.CommandResult
	9,  // 11: roost.RoostDirectory.DispatchCommand:input_type -> roost.DispatchCommandRequest
	11, // 12: roost.RoostDirectory.CancelCommand:input_type -> roost.CancelCommandRequest
	12, // 13: roost.RoostDirectory.RegisterBroker:input_type -> roost.RegisterBrokerRequest
	13, // 14: roost.RoostDirectory.SubscribeToAgentStatus:input_type -> roost.SubscribeRequest
	13, // 15: roost.RoostDirectory.GetAgentStatus:input_type -> roost.SubscribeRequest
	1,  // 16: roost.RoostDirectory.RegisterAgent:output_type -> roost.RegisterAgentResponse
	3,  // 17: roost.RoostDirectory.UnregisterAgent:output_type -> roost.Ack
	3,  // 18: roost.RoostDirectory.SendAgentStatus:output_type -> roost.Ack
	6,  // 19: roost.RoostDirectory.ReceiveCommands:output_type -> roost.Command
	8,  // 20: roost.RoostDirectory.SendCommandResult:output_type -> roost.CommandResultAck
	10, // 21: roost.RoostDirectory.DispatchCommand:output_type -> roost.DispatchCommandResponse
	3,  // 22: roost.RoostDirectory.CancelCommand:output_type -> roost.Ack
	3,  // 23: roost.RoostDirectory.RegisterBroker:output_type -> roost.Ack
	15, // 24: roost.RoostDirectory.SubscribeToAgentStatus:output_type -> roost.AgentStatusSnapshot
	15, // 25: roost.RoostDirectory.GetAgentStatus:output_type -> roost.AgentStatusSnapshot
	16, // [16:26] is the sub-list for method output_type
	6,  // [6:16] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_proto_roost_directory_proto_init() }
func file_proto_roost_directory_proto_init() {
	if File_proto_roost_directory_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_proto_roost_directory_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   21,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_proto_roost_directory_proto_goTypes,
		DependencyIndexes: file_proto_roost_directory_proto_depIdxs,
		MessageInfos:      file_proto_roost_directory_proto_msgTypes,
	}.Build()
	File_proto_roost_directory_proto = out.File
	file_proto_roost_directory_proto_rawDesc = nil
	file_proto_roost_directory_proto_goTypes = nil
	file_proto_roost_directory_proto_depIdxs = nil
}
