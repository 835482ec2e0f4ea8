package types

import (
	"fmt"

	_ "cosmossdk.io/api/cosmos/base/query/v1beta1" // pagination.proto descriptors
	_ "cosmossdk.io/api/cosmos/base/v1beta1"       // coin.proto descriptors
	msgv1 "cosmossdk.io/api/cosmos/msg/v1"
	protov2 "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
)

// The gateway wire types are maintained by hand, so the file descriptors that
// generated code would register are built here instead. Baseapp's message and
// query routers resolve method descriptors through the global file registry,
// and transaction signing reads the cosmos.msg.v1.signer annotations from it.
func init() {
	for _, fdp := range []*descriptorpb.FileDescriptorProto{
		gatewayFileDescriptor(),
		genesisFileDescriptor(),
		txFileDescriptor(),
		queryFileDescriptor(),
	} {
		fd, err := protodesc.NewFile(fdp, protoregistry.GlobalFiles)
		if err != nil {
			panic(fmt.Errorf("build descriptor %s: %w", fdp.GetName(), err))
		}
		if err := protoregistry.GlobalFiles.RegisterFile(fd); err != nil {
			panic(fmt.Errorf("register descriptor %s: %w", fdp.GetName(), err))
		}
	}
}

// gatewayFileDescriptor describes veritas/gateway/v1/gateway.proto: the state
// and parameter messages shared by the tx, query and genesis surfaces.
func gatewayFileDescriptor() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:    protov2.String("veritas/gateway/v1/gateway.proto"),
		Package: protov2.String("veritas.gateway.v1"),
		Syntax:  protov2.String("proto3"),
		Options: goPackageOption(),
		MessageType: []*descriptorpb.DescriptorProto{
			message("Params",
				scalarField("fee_denom", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				scalarField("unit_price", 2, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				scalarField("fee_scalar", 3, descriptorpb.FieldDescriptorProto_TYPE_UINT64),
				scalarField("default_gas_limit", 4, descriptorpb.FieldDescriptorProto_TYPE_UINT64),
				scalarField("guardian", 5, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				scalarField("max_input_size", 6, descriptorpb.FieldDescriptorProto_TYPE_UINT64),
				scalarField("max_proof_size", 7, descriptorpb.FieldDescriptorProto_TYPE_UINT64),
				scalarField("max_callback_data", 8, descriptorpb.FieldDescriptorProto_TYPE_UINT64),
			),
			message("LedgerEntry",
				scalarField("sequence", 1, descriptorpb.FieldDescriptorProto_TYPE_UINT64),
				scalarField("commitment", 2, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
			),
			message("StoredResult",
				scalarField("function_id", 1, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
				scalarField("input_hash", 2, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
				scalarField("output_hash", 3, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
			),
			message("ProverGrant",
				scalarField("function_id", 1, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
				scalarField("address", 2, descriptorpb.FieldDescriptorProto_TYPE_STRING),
			),
		},
	}
}

// genesisFileDescriptor describes veritas/gateway/v1/genesis.proto.
func genesisFileDescriptor() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:       protov2.String("veritas/gateway/v1/genesis.proto"),
		Package:    protov2.String("veritas.gateway.v1"),
		Syntax:     protov2.String("proto3"),
		Options:    goPackageOption(),
		Dependency: []string{"veritas/gateway/v1/gateway.proto"},
		MessageType: []*descriptorpb.DescriptorProto{
			message("GenesisState",
				messageField("params", 1, ".veritas.gateway.v1.Params"),
				scalarField("next_sequence", 2, descriptorpb.FieldDescriptorProto_TYPE_UINT64),
				repeated(messageField("requests", 3, ".veritas.gateway.v1.LedgerEntry")),
				repeated(messageField("results", 4, ".veritas.gateway.v1.StoredResult")),
				repeated(messageField("provers", 5, ".veritas.gateway.v1.ProverGrant")),
			),
		},
	}
}

// txFileDescriptor describes veritas/gateway/v1/tx.proto: the Msg service and
// its request and response messages.
func txFileDescriptor() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:    protov2.String("veritas/gateway/v1/tx.proto"),
		Package: protov2.String("veritas.gateway.v1"),
		Syntax:  protov2.String("proto3"),
		Options: goPackageOption(),
		Dependency: []string{
			"veritas/gateway/v1/gateway.proto",
			"cosmos/base/v1beta1/coin.proto",
		},
		MessageType: []*descriptorpb.DescriptorProto{
			signedMessage("MsgRequestCallback", "sender",
				scalarField("sender", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				scalarField("function_id", 2, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
				scalarField("input", 3, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
				scalarField("context", 4, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
				scalarField("callback_address", 5, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				scalarField("callback_method", 6, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				scalarField("gas_limit", 7, descriptorpb.FieldDescriptorProto_TYPE_UINT64),
				scalarField("refund_address", 8, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				messageField("value", 9, ".cosmos.base.v1beta1.Coin"),
			),
			message("MsgRequestCallbackResponse",
				scalarField("sequence", 1, descriptorpb.FieldDescriptorProto_TYPE_UINT64),
				scalarField("fee_amount", 2, descriptorpb.FieldDescriptorProto_TYPE_STRING),
			),
			signedMessage("MsgFulfillCallback", "sender",
				scalarField("sender", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				scalarField("sequence", 2, descriptorpb.FieldDescriptorProto_TYPE_UINT64),
				scalarField("function_id", 3, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
				scalarField("input", 4, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
				scalarField("output", 5, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
				scalarField("proof", 6, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
				scalarField("context", 7, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
				scalarField("callback_address", 8, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				scalarField("callback_method", 9, descriptorpb.FieldDescriptorProto_TYPE_STRING),
			),
			message("MsgFulfillCallbackResponse",
				scalarField("input_hash", 1, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
				scalarField("output_hash", 2, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
			),
			signedMessage("MsgRequestCall", "sender",
				scalarField("sender", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				scalarField("function_id", 2, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
				scalarField("input", 3, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
			),
			message("MsgRequestCallResponse",
				scalarField("ready", 1, descriptorpb.FieldDescriptorProto_TYPE_BOOL),
				scalarField("output", 2, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
			),
			signedMessage("MsgFulfillCall", "sender",
				scalarField("sender", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				scalarField("function_id", 2, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
				scalarField("input", 3, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
				scalarField("output", 4, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
				scalarField("proof", 5, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
				scalarField("callback_address", 6, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				scalarField("callback_data", 7, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
			),
			message("MsgFulfillCallResponse",
				scalarField("input_hash", 1, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
				scalarField("output_hash", 2, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
				scalarField("stored", 3, descriptorpb.FieldDescriptorProto_TYPE_BOOL),
			),
			signedMessage("MsgUpdateScalar", "guardian",
				scalarField("guardian", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				scalarField("scalar", 2, descriptorpb.FieldDescriptorProto_TYPE_UINT64),
			),
			message("MsgUpdateScalarResponse"),
			signedMessage("MsgSetProverPermission", "guardian",
				scalarField("guardian", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				scalarField("prover", 2, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				scalarField("function_id", 3, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
				scalarField("allowed", 4, descriptorpb.FieldDescriptorProto_TYPE_BOOL),
			),
			message("MsgSetProverPermissionResponse"),
			signedMessage("MsgUpdateParams", "authority",
				scalarField("authority", 1, descriptorpb.FieldDescriptorProto_TYPE_STRING),
				messageField("params", 2, ".veritas.gateway.v1.Params"),
			),
			message("MsgUpdateParamsResponse"),
		},
		Service: []*descriptorpb.ServiceDescriptorProto{
			msgService("Msg",
				method("RequestCallback", ".veritas.gateway.v1.MsgRequestCallback", ".veritas.gateway.v1.MsgRequestCallbackResponse"),
				method("FulfillCallback", ".veritas.gateway.v1.MsgFulfillCallback", ".veritas.gateway.v1.MsgFulfillCallbackResponse"),
				method("RequestCall", ".veritas.gateway.v1.MsgRequestCall", ".veritas.gateway.v1.MsgRequestCallResponse"),
				method("FulfillCall", ".veritas.gateway.v1.MsgFulfillCall", ".veritas.gateway.v1.MsgFulfillCallResponse"),
				method("UpdateScalar", ".veritas.gateway.v1.MsgUpdateScalar", ".veritas.gateway.v1.MsgUpdateScalarResponse"),
				method("SetProverPermission", ".veritas.gateway.v1.MsgSetProverPermission", ".veritas.gateway.v1.MsgSetProverPermissionResponse"),
				method("UpdateParams", ".veritas.gateway.v1.MsgUpdateParams", ".veritas.gateway.v1.MsgUpdateParamsResponse"),
			),
		},
	}
}

// queryFileDescriptor describes veritas/gateway/v1/query.proto: the Query
// service and its request and response messages.
func queryFileDescriptor() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:    protov2.String("veritas/gateway/v1/query.proto"),
		Package: protov2.String("veritas.gateway.v1"),
		Syntax:  protov2.String("proto3"),
		Options: goPackageOption(),
		Dependency: []string{
			"veritas/gateway/v1/gateway.proto",
			"cosmos/base/query/v1beta1/pagination.proto",
		},
		MessageType: []*descriptorpb.DescriptorProto{
			message("QueryParamsRequest"),
			message("QueryParamsResponse",
				messageField("params", 1, ".veritas.gateway.v1.Params"),
			),
			message("QueryNextSequenceRequest"),
			message("QueryNextSequenceResponse",
				scalarField("next_sequence", 1, descriptorpb.FieldDescriptorProto_TYPE_UINT64),
			),
			message("QueryRequestRequest",
				scalarField("sequence", 1, descriptorpb.FieldDescriptorProto_TYPE_UINT64),
			),
			message("QueryRequestResponse",
				messageField("request", 1, ".veritas.gateway.v1.LedgerEntry"),
			),
			message("QueryRequestsRequest",
				messageField("pagination", 1, ".cosmos.base.query.v1beta1.PageRequest"),
			),
			message("QueryRequestsResponse",
				repeated(messageField("requests", 1, ".veritas.gateway.v1.LedgerEntry")),
				messageField("pagination", 2, ".cosmos.base.query.v1beta1.PageResponse"),
			),
			message("QueryResultRequest",
				scalarField("function_id", 1, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
				scalarField("input_hash", 2, descriptorpb.FieldDescriptorProto_TYPE_BYTES),
			),
			message("QueryResultResponse",
				messageField("result", 1, ".veritas.gateway.v1.StoredResult"),
			),
			message("QueryProversRequest",
				messageField("pagination", 1, ".cosmos.base.query.v1beta1.PageRequest"),
			),
			message("QueryProversResponse",
				repeated(messageField("provers", 1, ".veritas.gateway.v1.ProverGrant")),
				messageField("pagination", 2, ".cosmos.base.query.v1beta1.PageResponse"),
			),
		},
		Service: []*descriptorpb.ServiceDescriptorProto{
			{
				Name: protov2.String("Query"),
				Method: []*descriptorpb.MethodDescriptorProto{
					method("Params", ".veritas.gateway.v1.QueryParamsRequest", ".veritas.gateway.v1.QueryParamsResponse"),
					method("NextSequence", ".veritas.gateway.v1.QueryNextSequenceRequest", ".veritas.gateway.v1.QueryNextSequenceResponse"),
					method("Request", ".veritas.gateway.v1.QueryRequestRequest", ".veritas.gateway.v1.QueryRequestResponse"),
					method("Requests", ".veritas.gateway.v1.QueryRequestsRequest", ".veritas.gateway.v1.QueryRequestsResponse"),
					method("Result", ".veritas.gateway.v1.QueryResultRequest", ".veritas.gateway.v1.QueryResultResponse"),
					method("Provers", ".veritas.gateway.v1.QueryProversRequest", ".veritas.gateway.v1.QueryProversResponse"),
				},
			},
		},
	}
}

func goPackageOption() *descriptorpb.FileOptions {
	return &descriptorpb.FileOptions{
		GoPackage: protov2.String("github.com/veritas-chain/veritas/x/gateway/types"),
	}
}

func scalarField(name string, number int32, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   protov2.String(name),
		Number: protov2.Int32(number),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   typ.Enum(),
	}
}

func messageField(name string, number int32, typeName string) *descriptorpb.FieldDescriptorProto {
	f := scalarField(name, number, descriptorpb.FieldDescriptorProto_TYPE_MESSAGE)
	f.TypeName = protov2.String(typeName)
	return f
}

func repeated(f *descriptorpb.FieldDescriptorProto) *descriptorpb.FieldDescriptorProto {
	f.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
	return f
}

func message(name string, fields ...*descriptorpb.FieldDescriptorProto) *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{
		Name:  protov2.String(name),
		Field: fields,
	}
}

// signedMessage builds a message descriptor carrying the cosmos.msg.v1.signer
// annotation naming the field whose address signs the message.
func signedMessage(name, signer string, fields ...*descriptorpb.FieldDescriptorProto) *descriptorpb.DescriptorProto {
	m := message(name, fields...)
	opts := &descriptorpb.MessageOptions{}
	protov2.SetExtension(opts, msgv1.E_Signer, []string{signer})
	m.Options = opts
	return m
}

// msgService builds a service descriptor flagged as a cosmos.msg.v1 service so
// the router accepts its methods as transaction messages.
func msgService(name string, methods ...*descriptorpb.MethodDescriptorProto) *descriptorpb.ServiceDescriptorProto {
	opts := &descriptorpb.ServiceOptions{}
	protov2.SetExtension(opts, msgv1.E_Service, true)
	return &descriptorpb.ServiceDescriptorProto{
		Name:    protov2.String(name),
		Method:  methods,
		Options: opts,
	}
}
