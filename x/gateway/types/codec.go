package types

import (
	"github.com/cosmos/gogoproto/proto"

	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
)

// RegisterLegacyAminoCodec registers the necessary x/gateway interfaces and concrete types
// on the provided LegacyAmino codec. These types are used for Amino JSON serialization.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgRequestCallback{}, "veritas/gateway/MsgRequestCallback", nil)
	cdc.RegisterConcrete(&MsgFulfillCallback{}, "veritas/gateway/MsgFulfillCallback", nil)
	cdc.RegisterConcrete(&MsgRequestCall{}, "veritas/gateway/MsgRequestCall", nil)
	cdc.RegisterConcrete(&MsgFulfillCall{}, "veritas/gateway/MsgFulfillCall", nil)
	cdc.RegisterConcrete(&MsgUpdateScalar{}, "veritas/gateway/MsgUpdateScalar", nil)
	cdc.RegisterConcrete(&MsgSetProverPermission{}, "veritas/gateway/MsgSetProverPermission", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "veritas/gateway/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the x/gateway interfaces types with the interface registry
func RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgRequestCallback{},
		&MsgFulfillCallback{},
		&MsgRequestCall{},
		&MsgFulfillCall{},
		&MsgUpdateScalar{},
		&MsgSetProverPermission{},
		&MsgUpdateParams{},
	)

	registry.RegisterImplementations((*txtypes.MsgResponse)(nil),
		&MsgRequestCallbackResponse{},
		&MsgFulfillCallbackResponse{},
		&MsgRequestCallResponse{},
		&MsgFulfillCallResponse{},
		&MsgUpdateScalarResponse{},
		&MsgSetProverPermissionResponse{},
		&MsgUpdateParamsResponse{},
	)
}

var (
	amino = codec.NewLegacyAmino()
	// ModuleCdc references the global x/gateway module codec
	ModuleCdc = codec.NewProtoCodec(codectypes.NewInterfaceRegistry())
)

func init() {
	proto.RegisterType((*MsgRequestCallback)(nil), "veritas.gateway.v1.MsgRequestCallback")
	proto.RegisterType((*MsgRequestCallbackResponse)(nil), "veritas.gateway.v1.MsgRequestCallbackResponse")
	proto.RegisterType((*MsgFulfillCallback)(nil), "veritas.gateway.v1.MsgFulfillCallback")
	proto.RegisterType((*MsgFulfillCallbackResponse)(nil), "veritas.gateway.v1.MsgFulfillCallbackResponse")
	proto.RegisterType((*MsgRequestCall)(nil), "veritas.gateway.v1.MsgRequestCall")
	proto.RegisterType((*MsgRequestCallResponse)(nil), "veritas.gateway.v1.MsgRequestCallResponse")
	proto.RegisterType((*MsgFulfillCall)(nil), "veritas.gateway.v1.MsgFulfillCall")
	proto.RegisterType((*MsgFulfillCallResponse)(nil), "veritas.gateway.v1.MsgFulfillCallResponse")
	proto.RegisterType((*MsgUpdateScalar)(nil), "veritas.gateway.v1.MsgUpdateScalar")
	proto.RegisterType((*MsgUpdateScalarResponse)(nil), "veritas.gateway.v1.MsgUpdateScalarResponse")
	proto.RegisterType((*MsgSetProverPermission)(nil), "veritas.gateway.v1.MsgSetProverPermission")
	proto.RegisterType((*MsgSetProverPermissionResponse)(nil), "veritas.gateway.v1.MsgSetProverPermissionResponse")
	proto.RegisterType((*MsgUpdateParams)(nil), "veritas.gateway.v1.MsgUpdateParams")
	proto.RegisterType((*MsgUpdateParamsResponse)(nil), "veritas.gateway.v1.MsgUpdateParamsResponse")

	proto.RegisterType((*Params)(nil), "veritas.gateway.v1.Params")
	proto.RegisterType((*LedgerEntry)(nil), "veritas.gateway.v1.LedgerEntry")
	proto.RegisterType((*StoredResult)(nil), "veritas.gateway.v1.StoredResult")
	proto.RegisterType((*ProverGrant)(nil), "veritas.gateway.v1.ProverGrant")
	proto.RegisterType((*GenesisState)(nil), "veritas.gateway.v1.GenesisState")

	proto.RegisterType((*QueryParamsRequest)(nil), "veritas.gateway.v1.QueryParamsRequest")
	proto.RegisterType((*QueryParamsResponse)(nil), "veritas.gateway.v1.QueryParamsResponse")
	proto.RegisterType((*QueryNextSequenceRequest)(nil), "veritas.gateway.v1.QueryNextSequenceRequest")
	proto.RegisterType((*QueryNextSequenceResponse)(nil), "veritas.gateway.v1.QueryNextSequenceResponse")
	proto.RegisterType((*QueryRequestRequest)(nil), "veritas.gateway.v1.QueryRequestRequest")
	proto.RegisterType((*QueryRequestResponse)(nil), "veritas.gateway.v1.QueryRequestResponse")
	proto.RegisterType((*QueryRequestsRequest)(nil), "veritas.gateway.v1.QueryRequestsRequest")
	proto.RegisterType((*QueryRequestsResponse)(nil), "veritas.gateway.v1.QueryRequestsResponse")
	proto.RegisterType((*QueryResultRequest)(nil), "veritas.gateway.v1.QueryResultRequest")
	proto.RegisterType((*QueryResultResponse)(nil), "veritas.gateway.v1.QueryResultResponse")
	proto.RegisterType((*QueryProversRequest)(nil), "veritas.gateway.v1.QueryProversRequest")
	proto.RegisterType((*QueryProversResponse)(nil), "veritas.gateway.v1.QueryProversResponse")

	RegisterLegacyAminoCodec(amino)
	amino.Seal()
}
