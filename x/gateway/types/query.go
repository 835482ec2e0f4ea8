package types

import (
	"context"

	"github.com/cosmos/cosmos-sdk/types/query"
	grpc1 "github.com/cosmos/gogoproto/grpc"
	"github.com/cosmos/gogoproto/proto"
	grpc "google.golang.org/grpc"
)

// QueryServer defines the query server interface
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	NextSequence(context.Context, *QueryNextSequenceRequest) (*QueryNextSequenceResponse, error)
	Request(context.Context, *QueryRequestRequest) (*QueryRequestResponse, error)
	Requests(context.Context, *QueryRequestsRequest) (*QueryRequestsResponse, error)
	Result(context.Context, *QueryResultRequest) (*QueryResultResponse, error)
	Provers(context.Context, *QueryProversRequest) (*QueryProversResponse, error)
}

// QueryParamsRequest is the request type for the Query/Params RPC method
type QueryParamsRequest struct{}

// QueryParamsResponse is the response type for the Query/Params RPC method
type QueryParamsResponse struct {
	Params Params `protobuf:"bytes,1,opt,name=params,proto3" json:"params"`
}

// QueryNextSequenceRequest is the request type for the Query/NextSequence RPC method
type QueryNextSequenceRequest struct{}

// QueryNextSequenceResponse is the response type for the Query/NextSequence RPC method
type QueryNextSequenceResponse struct {
	NextSequence uint64 `protobuf:"varint,1,opt,name=next_sequence,json=nextSequence,proto3" json:"next_sequence"`
}

// QueryRequestRequest is the request type for the Query/Request RPC method
type QueryRequestRequest struct {
	Sequence uint64 `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence"`
}

// QueryRequestResponse is the response type for the Query/Request RPC method
type QueryRequestResponse struct {
	Request LedgerEntry `protobuf:"bytes,1,opt,name=request,proto3" json:"request"`
}

// QueryRequestsRequest is the request type for the Query/Requests RPC method
type QueryRequestsRequest struct {
	Pagination *query.PageRequest `protobuf:"bytes,1,opt,name=pagination,proto3" json:"pagination,omitempty"`
}

// QueryRequestsResponse is the response type for the Query/Requests RPC method
type QueryRequestsResponse struct {
	Requests   []LedgerEntry       `protobuf:"bytes,1,rep,name=requests,proto3" json:"requests"`
	Pagination *query.PageResponse `protobuf:"bytes,2,opt,name=pagination,proto3" json:"pagination,omitempty"`
}

// QueryResultRequest is the request type for the Query/Result RPC method
type QueryResultRequest struct {
	FunctionId []byte `protobuf:"bytes,1,opt,name=function_id,json=functionId,proto3" json:"function_id"`
	InputHash  []byte `protobuf:"bytes,2,opt,name=input_hash,json=inputHash,proto3" json:"input_hash"`
}

// QueryResultResponse is the response type for the Query/Result RPC method
type QueryResultResponse struct {
	Result StoredResult `protobuf:"bytes,1,opt,name=result,proto3" json:"result"`
}

// QueryProversRequest is the request type for the Query/Provers RPC method
type QueryProversRequest struct {
	Pagination *query.PageRequest `protobuf:"bytes,1,opt,name=pagination,proto3" json:"pagination,omitempty"`
}

// QueryProversResponse is the response type for the Query/Provers RPC method
type QueryProversResponse struct {
	Provers    []ProverGrant       `protobuf:"bytes,1,rep,name=provers,proto3" json:"provers"`
	Pagination *query.PageResponse `protobuf:"bytes,2,opt,name=pagination,proto3" json:"pagination,omitempty"`
}

func (m *QueryParamsRequest) Reset()         { *m = QueryParamsRequest{} }
func (m *QueryParamsRequest) String() string { return proto.CompactTextString(m) }
func (*QueryParamsRequest) ProtoMessage()    {}

func (m *QueryParamsResponse) Reset()         { *m = QueryParamsResponse{} }
func (m *QueryParamsResponse) String() string { return proto.CompactTextString(m) }
func (*QueryParamsResponse) ProtoMessage()    {}

func (m *QueryNextSequenceRequest) Reset()         { *m = QueryNextSequenceRequest{} }
func (m *QueryNextSequenceRequest) String() string { return proto.CompactTextString(m) }
func (*QueryNextSequenceRequest) ProtoMessage()    {}

func (m *QueryNextSequenceResponse) Reset()         { *m = QueryNextSequenceResponse{} }
func (m *QueryNextSequenceResponse) String() string { return proto.CompactTextString(m) }
func (*QueryNextSequenceResponse) ProtoMessage()    {}

func (m *QueryRequestRequest) Reset()         { *m = QueryRequestRequest{} }
func (m *QueryRequestRequest) String() string { return proto.CompactTextString(m) }
func (*QueryRequestRequest) ProtoMessage()    {}

func (m *QueryRequestResponse) Reset()         { *m = QueryRequestResponse{} }
func (m *QueryRequestResponse) String() string { return proto.CompactTextString(m) }
func (*QueryRequestResponse) ProtoMessage()    {}

func (m *QueryRequestsRequest) Reset()         { *m = QueryRequestsRequest{} }
func (m *QueryRequestsRequest) String() string { return proto.CompactTextString(m) }
func (*QueryRequestsRequest) ProtoMessage()    {}

func (m *QueryRequestsResponse) Reset()         { *m = QueryRequestsResponse{} }
func (m *QueryRequestsResponse) String() string { return proto.CompactTextString(m) }
func (*QueryRequestsResponse) ProtoMessage()    {}

func (m *QueryResultRequest) Reset()         { *m = QueryResultRequest{} }
func (m *QueryResultRequest) String() string { return proto.CompactTextString(m) }
func (*QueryResultRequest) ProtoMessage()    {}

func (m *QueryResultResponse) Reset()         { *m = QueryResultResponse{} }
func (m *QueryResultResponse) String() string { return proto.CompactTextString(m) }
func (*QueryResultResponse) ProtoMessage()    {}

func (m *QueryProversRequest) Reset()         { *m = QueryProversRequest{} }
func (m *QueryProversRequest) String() string { return proto.CompactTextString(m) }
func (*QueryProversRequest) ProtoMessage()    {}

func (m *QueryProversResponse) Reset()         { *m = QueryProversResponse{} }
func (m *QueryProversResponse) String() string { return proto.CompactTextString(m) }
func (*QueryProversResponse) ProtoMessage()    {}

// RegisterQueryServer registers the Query service implementation with the
// module configurator's query server.
func RegisterQueryServer(s grpc1.Server, srv QueryServer) {
	s.RegisterService(&_Query_serviceDesc, srv)
}

func _Query_Params_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryParamsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Params(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/veritas.gateway.v1.Query/Params",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Params(ctx, req.(*QueryParamsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_NextSequence_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryNextSequenceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).NextSequence(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/veritas.gateway.v1.Query/NextSequence",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).NextSequence(ctx, req.(*QueryNextSequenceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Request_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryRequestRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Request(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/veritas.gateway.v1.Query/Request",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Request(ctx, req.(*QueryRequestRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Requests_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryRequestsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Requests(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/veritas.gateway.v1.Query/Requests",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Requests(ctx, req.(*QueryRequestsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Result_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryResultRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Result(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/veritas.gateway.v1.Query/Result",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Result(ctx, req.(*QueryResultRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Provers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryProversRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Provers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/veritas.gateway.v1.Query/Provers",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Provers(ctx, req.(*QueryProversRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _Query_serviceDesc = grpc.ServiceDesc{
	ServiceName: "veritas.gateway.v1.Query",
	HandlerType: (*QueryServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Params",
			Handler:    _Query_Params_Handler,
		},
		{
			MethodName: "NextSequence",
			Handler:    _Query_NextSequence_Handler,
		},
		{
			MethodName: "Request",
			Handler:    _Query_Request_Handler,
		},
		{
			MethodName: "Requests",
			Handler:    _Query_Requests_Handler,
		},
		{
			MethodName: "Result",
			Handler:    _Query_Result_Handler,
		},
		{
			MethodName: "Provers",
			Handler:    _Query_Provers_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "veritas/gateway/v1/query.proto",
}
