// ABOUTME: Client and server stubs for the RoostDirectory gRPC service
// ABOUTME: Hand-maintained alongside directory.pb.go; see doc.go

package roostpb

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
const _ = grpc.SupportPackageIsVersion9

const (
	RoostDirectory_RegisterAgent_FullMethodName          = "/roost.RoostDirectory/RegisterAgent"
	RoostDirectory_UnregisterAgent_FullMethodName        = "/roost.RoostDirectory/UnregisterAgent"
	RoostDirectory_SendAgentStatus_FullMethodName        = "/roost.RoostDirectory/SendAgentStatus"
	RoostDirectory_ReceiveCommands_FullMethodName        = "/roost.RoostDirectory/ReceiveCommands"
	RoostDirectory_SendCommandResult_FullMethodName      = "/roost.RoostDirectory/SendCommandResult"
	RoostDirectory_DispatchCommand_FullMethodName        = "/roost.RoostDirectory/DispatchCommand"
	RoostDirectory_CancelCommand_FullMethodName          = "/roost.RoostDirectory/CancelCommand"
	RoostDirectory_RegisterBroker_FullMethodName         = "/roost.RoostDirectory/RegisterBroker"
	RoostDirectory_SubscribeToAgentStatus_FullMethodName = "/roost.RoostDirectory/SubscribeToAgentStatus"
	RoostDirectory_GetAgentStatus_FullMethodName         = "/roost.RoostDirectory/GetAgentStatus"
)

// RoostDirectoryClient is the client API for RoostDirectory service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type RoostDirectoryClient interface {
	// Agent lifecycle.
	RegisterAgent(ctx context.Context, in *RegisterAgentRequest, opts ...grpc.CallOption) (*RegisterAgentResponse, error)
	UnregisterAgent(ctx context.Context, in *UnregisterAgentRequest, opts ...grpc.CallOption) (*Ack, error)
	SendAgentStatus(ctx context.Context, in *AgentStatusUpdate, opts ...grpc.CallOption) (*Ack, error)
	// Command delivery and correlation.
	ReceiveCommands(ctx context.Context, in *ReceiveCommandsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Command], error)
	SendCommandResult(ctx context.Context, in *CommandResult, opts ...grpc.CallOption) (*CommandResultAck, error)
	DispatchCommand(ctx context.Context, in *DispatchCommandRequest, opts ...grpc.CallOption) (*DispatchCommandResponse, error)
	CancelCommand(ctx context.Context, in *CancelCommandRequest, opts ...grpc.CallOption) (*Ack, error)
	// Broker-facing status feed.
	RegisterBroker(ctx context.Context, in *RegisterBrokerRequest, opts ...grpc.CallOption) (*Ack, error)
	SubscribeToAgentStatus(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[AgentStatusSnapshot], error)
	GetAgentStatus(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (*AgentStatusSnapshot, error)
}

type roostDirectoryClient struct {
	cc grpc.ClientConnInterface
}

func NewRoostDirectoryClient(cc grpc.ClientConnInterface) RoostDirectoryClient {
	return &roostDirectoryClient{cc}
}

func (c *roostDirectoryClient) RegisterAgent(ctx context.Context, in *RegisterAgentRequest, opts ...grpc.CallOption) (*RegisterAgentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RegisterAgentResponse)
	err := c.cc.Invoke(ctx, RoostDirectory_RegisterAgent_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roostDirectoryClient) UnregisterAgent(ctx context.Context, in *UnregisterAgentRequest, opts ...grpc.CallOption) (*Ack, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Ack)
	err := c.cc.Invoke(ctx, RoostDirectory_UnregisterAgent_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roostDirectoryClient) SendAgentStatus(ctx context.Context, in *AgentStatusUpdate, opts ...grpc.CallOption) (*Ack, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Ack)
	err := c.cc.Invoke(ctx, RoostDirectory_SendAgentStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roostDirectoryClient) ReceiveCommands(ctx context.Context, in *ReceiveCommandsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[Command], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &RoostDirectory_ServiceDesc.Streams[0], RoostDirectory_ReceiveCommands_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[ReceiveCommandsRequest, Command]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type RoostDirectory_ReceiveCommandsClient = grpc.ServerStreamingClient[Command]

func (c *roostDirectoryClient) SendCommandResult(ctx context.Context, in *CommandResult, opts ...grpc.CallOption) (*CommandResultAck, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CommandResultAck)
	err := c.cc.Invoke(ctx, RoostDirectory_SendCommandResult_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roostDirectoryClient) DispatchCommand(ctx context.Context, in *DispatchCommandRequest, opts ...grpc.CallOption) (*DispatchCommandResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DispatchCommandResponse)
	err := c.cc.Invoke(ctx, RoostDirectory_DispatchCommand_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roostDirectoryClient) CancelCommand(ctx context.Context, in *CancelCommandRequest, opts ...grpc.CallOption) (*Ack, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Ack)
	err := c.cc.Invoke(ctx, RoostDirectory_CancelCommand_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roostDirectoryClient) RegisterBroker(ctx context.Context, in *RegisterBrokerRequest, opts ...grpc.CallOption) (*Ack, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(Ack)
	err := c.cc.Invoke(ctx, RoostDirectory_RegisterBroker_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *roostDirectoryClient) SubscribeToAgentStatus(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[AgentStatusSnapshot], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &RoostDirectory_ServiceDesc.Streams[1], RoostDirectory_SubscribeToAgentStatus_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[SubscribeRequest, AgentStatusSnapshot]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type RoostDirectory_SubscribeToAgentStatusClient = grpc.ServerStreamingClient[AgentStatusSnapshot]

func (c *roostDirectoryClient) GetAgentStatus(ctx context.Context, in *SubscribeRequest, opts ...grpc.CallOption) (*AgentStatusSnapshot, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AgentStatusSnapshot)
	err := c.cc.Invoke(ctx, RoostDirectory_GetAgentStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RoostDirectoryServer is the server API for RoostDirectory service.
// All implementations must embed UnimplementedRoostDirectoryServer
// for forward compatibility.
type RoostDirectoryServer interface {
	// Agent lifecycle.
	RegisterAgent(context.Context, *RegisterAgentRequest) (*RegisterAgentResponse, error)
	UnregisterAgent(context.Context, *UnregisterAgentRequest) (*Ack, error)
	SendAgentStatus(context.Context, *AgentStatusUpdate) (*Ack, error)
	// Command delivery and correlation.
	ReceiveCommands(*ReceiveCommandsRequest, grpc.ServerStreamingServer[Command]) error
	SendCommandResult(context.Context, *CommandResult) (*CommandResultAck, error)
	DispatchCommand(context.Context, *DispatchCommandRequest) (*DispatchCommandResponse, error)
	CancelCommand(context.Context, *CancelCommandRequest) (*Ack, error)
	// Broker-facing status feed.
	RegisterBroker(context.Context, *RegisterBrokerRequest) (*Ack, error)
	SubscribeToAgentStatus(*SubscribeRequest, grpc.ServerStreamingServer[AgentStatusSnapshot]) error
	GetAgentStatus(context.Context, *SubscribeRequest) (*AgentStatusSnapshot, error)
	mustEmbedUnimplementedRoostDirectoryServer()
}

// UnimplementedRoostDirectoryServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedRoostDirectoryServer struct{}

func (UnimplementedRoostDirectoryServer) RegisterAgent(context.Context, *RegisterAgentRequest) (*RegisterAgentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterAgent not implemented")
}
func (UnimplementedRoostDirectoryServer) UnregisterAgent(context.Context, *UnregisterAgentRequest) (*Ack, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UnregisterAgent not implemented")
}
func (UnimplementedRoostDirectoryServer) SendAgentStatus(context.Context, *AgentStatusUpdate) (*Ack, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SendAgentStatus not implemented")
}
func (UnimplementedRoostDirectoryServer) ReceiveCommands(*ReceiveCommandsRequest, grpc.ServerStreamingServer[Command]) error {
	return status.Errorf(codes.Unimplemented, "method ReceiveCommands not implemented")
}
func (UnimplementedRoostDirectoryServer) SendCommandResult(context.Context, *CommandResult) (*CommandResultAck, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SendCommandResult not implemented")
}
func (UnimplementedRoostDirectoryServer) DispatchCommand(context.Context, *DispatchCommandRequest) (*DispatchCommandResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DispatchCommand not implemented")
}
func (UnimplementedRoostDirectoryServer) CancelCommand(context.Context, *CancelCommandRequest) (*Ack, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CancelCommand not implemented")
}
func (UnimplementedRoostDirectoryServer) RegisterBroker(context.Context, *RegisterBrokerRequest) (*Ack, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterBroker not implemented")
}
func (UnimplementedRoostDirectoryServer) SubscribeToAgentStatus(*SubscribeRequest, grpc.ServerStreamingServer[AgentStatusSnapshot]) error {
	return status.Errorf(codes.Unimplemented, "method SubscribeToAgentStatus not implemented")
}
func (UnimplementedRoostDirectoryServer) GetAgentStatus(context.Context, *SubscribeRequest) (*AgentStatusSnapshot, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAgentStatus not implemented")
}
func (UnimplementedRoostDirectoryServer) mustEmbedUnimplementedRoostDirectoryServer() {}
func (UnimplementedRoostDirectoryServer) testEmbeddedByValue()                        {}

// UnsafeRoostDirectoryServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to RoostDirectoryServer will
// result in compilation errors.
type UnsafeRoostDirectoryServer interface {
	mustEmbedUnimplementedRoostDirectoryServer()
}

func RegisterRoostDirectoryServer(s grpc.ServiceRegistrar, srv RoostDirectoryServer) {
	// If the following call panics, it indicates UnimplementedRoostDirectoryServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&RoostDirectory_ServiceDesc, srv)
}

func _RoostDirectory_RegisterAgent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterAgentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoostDirectoryServer).RegisterAgent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoostDirectory_RegisterAgent_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RoostDirectoryServer).RegisterAgent(ctx, req.(*RegisterAgentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoostDirectory_UnregisterAgent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UnregisterAgentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoostDirectoryServer).UnregisterAgent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoostDirectory_UnregisterAgent_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RoostDirectoryServer).UnregisterAgent(ctx, req.(*UnregisterAgentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoostDirectory_SendAgentStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AgentStatusUpdate)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoostDirectoryServer).SendAgentStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoostDirectory_SendAgentStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RoostDirectoryServer).SendAgentStatus(ctx, req.(*AgentStatusUpdate))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoostDirectory_ReceiveCommands_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(ReceiveCommandsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(RoostDirectoryServer).ReceiveCommands(m, &grpc.GenericServerStream[ReceiveCommandsRequest, Command]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type RoostDirectory_ReceiveCommandsServer = grpc.ServerStreamingServer[Command]

func _RoostDirectory_SendCommandResult_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CommandResult)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoostDirectoryServer).SendCommandResult(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoostDirectory_SendCommandResult_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RoostDirectoryServer).SendCommandResult(ctx, req.(*CommandResult))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoostDirectory_DispatchCommand_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DispatchCommandRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoostDirectoryServer).DispatchCommand(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoostDirectory_DispatchCommand_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RoostDirectoryServer).DispatchCommand(ctx, req.(*DispatchCommandRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoostDirectory_CancelCommand_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelCommandRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoostDirectoryServer).CancelCommand(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoostDirectory_CancelCommand_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RoostDirectoryServer).CancelCommand(ctx, req.(*CancelCommandRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoostDirectory_RegisterBroker_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterBrokerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoostDirectoryServer).RegisterBroker(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoostDirectory_RegisterBroker_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RoostDirectoryServer).RegisterBroker(ctx, req.(*RegisterBrokerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _RoostDirectory_SubscribeToAgentStatus_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(SubscribeRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(RoostDirectoryServer).SubscribeToAgentStatus(m, &grpc.GenericServerStream[SubscribeRequest, AgentStatusSnapshot]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type RoostDirectory_SubscribeToAgentStatusServer = grpc.ServerStreamingServer[AgentStatusSnapshot]

func _RoostDirectory_GetAgentStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubscribeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RoostDirectoryServer).GetAgentStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: RoostDirectory_GetAgentStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RoostDirectoryServer).GetAgentStatus(ctx, req.(*SubscribeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RoostDirectory_ServiceDesc is the grpc.ServiceDesc for RoostDirectory service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var RoostDirectory_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "roost.RoostDirectory",
	HandlerType: (*RoostDirectoryServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RegisterAgent",
			Handler:    _RoostDirectory_RegisterAgent_Handler,
		},
		{
			MethodName: "UnregisterAgent",
			Handler:    _RoostDirectory_UnregisterAgent_Handler,
		},
		{
			MethodName: "SendAgentStatus",
			Handler:    _RoostDirectory_SendAgentStatus_Handler,
		},
		{
			MethodName: "SendCommandResult",
			Handler:    _RoostDirectory_SendCommandResult_Handler,
		},
		{
			MethodName: "DispatchCommand",
			Handler:    _RoostDirectory_DispatchCommand_Handler,
		},
		{
			MethodName: "CancelCommand",
			Handler:    _RoostDirectory_CancelCommand_Handler,
		},
		{
			MethodName: "RegisterBroker",
			Handler:    _RoostDirectory_RegisterBroker_Handler,
		},
		{
			MethodName: "GetAgentStatus",
			Handler:    _RoostDirectory_GetAgentStatus_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "ReceiveCommands",
			Handler:       _RoostDirectory_ReceiveCommands_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "SubscribeToAgentStatus",
			Handler:       _RoostDirectory_SubscribeToAgentStatus_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "proto/roost/directory.proto",
}
