package types

import (
	"context"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	grpc "google.golang.org/grpc"
)

// MsgServer defines the message server interface
type MsgServer interface {
	RequestCallback(context.Context, *MsgRequestCallback) (*MsgRequestCallbackResponse, error)
	FulfillCallback(context.Context, *MsgFulfillCallback) (*MsgFulfillCallbackResponse, error)
	RequestCall(context.Context, *MsgRequestCall) (*MsgRequestCallResponse, error)
	FulfillCall(context.Context, *MsgFulfillCall) (*MsgFulfillCallResponse, error)
	UpdateScalar(context.Context, *MsgUpdateScalar) (*MsgUpdateScalarResponse, error)
	SetProverPermission(context.Context, *MsgSetProverPermission) (*MsgSetProverPermissionResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// RegisterMsgServer registers the Msg service implementation with the
// module configurator's message server.
func RegisterMsgServer(s grpc1.Server, srv MsgServer) {
	s.RegisterService(&_Msg_serviceDesc, srv)
}

func _Msg_RequestCallback_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgRequestCallback)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).RequestCallback(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/veritas.gateway.v1.Msg/RequestCallback",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).RequestCallback(ctx, req.(*MsgRequestCallback))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_FulfillCallback_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgFulfillCallback)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).FulfillCallback(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/veritas.gateway.v1.Msg/FulfillCallback",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).FulfillCallback(ctx, req.(*MsgFulfillCallback))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_RequestCall_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgRequestCall)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).RequestCall(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/veritas.gateway.v1.Msg/RequestCall",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).RequestCall(ctx, req.(*MsgRequestCall))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_FulfillCall_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgFulfillCall)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).FulfillCall(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/veritas.gateway.v1.Msg/FulfillCall",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).FulfillCall(ctx, req.(*MsgFulfillCall))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_UpdateScalar_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgUpdateScalar)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).UpdateScalar(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/veritas.gateway.v1.Msg/UpdateScalar",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).UpdateScalar(ctx, req.(*MsgUpdateScalar))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_SetProverPermission_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgSetProverPermission)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).SetProverPermission(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/veritas.gateway.v1.Msg/SetProverPermission",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).SetProverPermission(ctx, req.(*MsgSetProverPermission))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_UpdateParams_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgUpdateParams)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).UpdateParams(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/veritas.gateway.v1.Msg/UpdateParams",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).UpdateParams(ctx, req.(*MsgUpdateParams))
	}
	return interceptor(ctx, in, info, handler)
}

var _Msg_serviceDesc = grpc.ServiceDesc{
	ServiceName: "veritas.gateway.v1.Msg",
	HandlerType: (*MsgServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RequestCallback",
			Handler:    _Msg_RequestCallback_Handler,
		},
		{
			MethodName: "FulfillCallback",
			Handler:    _Msg_FulfillCallback_Handler,
		},
		{
			MethodName: "RequestCall",
			Handler:    _Msg_RequestCall_Handler,
		},
		{
			MethodName: "FulfillCall",
			Handler:    _Msg_FulfillCall_Handler,
		},
		{
			MethodName: "UpdateScalar",
			Handler:    _Msg_UpdateScalar_Handler,
		},
		{
			MethodName: "SetProverPermission",
			Handler:    _Msg_SetProverPermission_Handler,
		},
		{
			MethodName: "UpdateParams",
			Handler:    _Msg_UpdateParams_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "veritas/gateway/v1/tx.proto",
}
