package types

import (
	"github.com/cosmos/gogoproto/proto"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message types.
const (
	TypeMsgRequestCallback     = "request_callback"
	TypeMsgFulfillCallback     = "fulfill_callback"
	TypeMsgRequestCall         = "request_call"
	TypeMsgFulfillCall         = "fulfill_call"
	TypeMsgUpdateScalar        = "update_scalar"
	TypeMsgSetProverPermission = "set_prover_permission"
	TypeMsgUpdateParams        = "update_params"
)

// MaxFunctionIdSize caps function identifiers; they are opaque, not decoded.
const MaxFunctionIdSize = 64

var (
	_ sdk.Msg = &MsgRequestCallback{}
	_ sdk.Msg = &MsgFulfillCallback{}
	_ sdk.Msg = &MsgRequestCall{}
	_ sdk.Msg = &MsgFulfillCall{}
	_ sdk.Msg = &MsgUpdateScalar{}
	_ sdk.Msg = &MsgSetProverPermission{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgRequestCallback submits a deferred-callback request. The attached Value
// covers the computed fee; the remainder is refunded to RefundAddress (the
// sender when empty). CallbackAddress defaults to the sender when empty, and
// GasLimit zero applies the module's default work budget.
type MsgRequestCallback struct {
	Sender          string   `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender"`
	FunctionId      []byte   `protobuf:"bytes,2,opt,name=function_id,json=functionId,proto3" json:"function_id"`
	Input           []byte   `protobuf:"bytes,3,opt,name=input,proto3" json:"input,omitempty"`
	Context         []byte   `protobuf:"bytes,4,opt,name=context,proto3" json:"context,omitempty"`
	CallbackAddress string   `protobuf:"bytes,5,opt,name=callback_address,json=callbackAddress,proto3" json:"callback_address,omitempty"`
	CallbackMethod  string   `protobuf:"bytes,6,opt,name=callback_method,json=callbackMethod,proto3" json:"callback_method"`
	GasLimit        uint64   `protobuf:"varint,7,opt,name=gas_limit,json=gasLimit,proto3" json:"gas_limit,omitempty"`
	RefundAddress   string   `protobuf:"bytes,8,opt,name=refund_address,json=refundAddress,proto3" json:"refund_address,omitempty"`
	Value           sdk.Coin `protobuf:"bytes,9,opt,name=value,proto3" json:"value"`
}

func (msg *MsgRequestCallback) Reset()         { *msg = MsgRequestCallback{} }
func (msg *MsgRequestCallback) String() string { return proto.CompactTextString(msg) }
func (*MsgRequestCallback) ProtoMessage()      {}

// MsgRequestCallbackResponse carries the assigned ledger sequence.
type MsgRequestCallbackResponse struct {
	Sequence  uint64 `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence"`
	FeeAmount string `protobuf:"bytes,2,opt,name=fee_amount,json=feeAmount,proto3" json:"fee_amount"`
}

func (msg *MsgRequestCallbackResponse) Reset()         { *msg = MsgRequestCallbackResponse{} }
func (msg *MsgRequestCallbackResponse) String() string { return proto.CompactTextString(msg) }
func (*MsgRequestCallbackResponse) ProtoMessage()      {}

// NewMsgRequestCallback creates a new MsgRequestCallback instance.
func NewMsgRequestCallback(sender string, functionId, input, context []byte, callbackAddress, callbackMethod string, gasLimit uint64, refundAddress string, value sdk.Coin) *MsgRequestCallback {
	return &MsgRequestCallback{
		Sender:          sender,
		FunctionId:      functionId,
		Input:           input,
		Context:         context,
		CallbackAddress: callbackAddress,
		CallbackMethod:  callbackMethod,
		GasLimit:        gasLimit,
		RefundAddress:   refundAddress,
		Value:           value,
	}
}

// Route implements sdk.Msg
func (msg *MsgRequestCallback) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgRequestCallback) Type() string { return TypeMsgRequestCallback }

// GetSigners implements sdk.Msg
func (msg *MsgRequestCallback) GetSigners() []sdk.AccAddress {
	sender, _ := sdk.AccAddressFromBech32(msg.Sender)
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgRequestCallback) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgRequestCallback) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidRequest.Wrapf("invalid sender address: %s", err)
	}
	if err := validateFunctionId(msg.FunctionId, false); err != nil {
		return err
	}
	if msg.CallbackMethod == "" {
		return ErrInvalidRequest.Wrap("callback method cannot be empty")
	}
	if msg.CallbackAddress != "" {
		if _, err := sdk.AccAddressFromBech32(msg.CallbackAddress); err != nil {
			return ErrInvalidRequest.Wrapf("invalid callback address: %s", err)
		}
	}
	if msg.RefundAddress != "" {
		if _, err := sdk.AccAddressFromBech32(msg.RefundAddress); err != nil {
			return ErrInvalidRequest.Wrapf("invalid refund address: %s", err)
		}
	}
	if err := msg.Value.Validate(); err != nil {
		return ErrInvalidRequest.Wrapf("invalid value: %s", err)
	}
	return nil
}

// MsgFulfillCallback fulfills a deferred-callback request. The fulfiller must
// reproduce every original request field exactly; referencing the sequence
// alone is not enough.
type MsgFulfillCallback struct {
	Sender          string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender"`
	Sequence        uint64 `protobuf:"varint,2,opt,name=sequence,proto3" json:"sequence"`
	FunctionId      []byte `protobuf:"bytes,3,opt,name=function_id,json=functionId,proto3" json:"function_id"`
	Input           []byte `protobuf:"bytes,4,opt,name=input,proto3" json:"input,omitempty"`
	Output          []byte `protobuf:"bytes,5,opt,name=output,proto3" json:"output,omitempty"`
	Proof           []byte `protobuf:"bytes,6,opt,name=proof,proto3" json:"proof"`
	Context         []byte `protobuf:"bytes,7,opt,name=context,proto3" json:"context,omitempty"`
	CallbackAddress string `protobuf:"bytes,8,opt,name=callback_address,json=callbackAddress,proto3" json:"callback_address"`
	CallbackMethod  string `protobuf:"bytes,9,opt,name=callback_method,json=callbackMethod,proto3" json:"callback_method"`
}

func (msg *MsgFulfillCallback) Reset()         { *msg = MsgFulfillCallback{} }
func (msg *MsgFulfillCallback) String() string { return proto.CompactTextString(msg) }
func (*MsgFulfillCallback) ProtoMessage()      {}

// MsgFulfillCallbackResponse reports the digests of the accepted fulfillment.
type MsgFulfillCallbackResponse struct {
	InputHash  []byte `protobuf:"bytes,1,opt,name=input_hash,json=inputHash,proto3" json:"input_hash"`
	OutputHash []byte `protobuf:"bytes,2,opt,name=output_hash,json=outputHash,proto3" json:"output_hash"`
}

func (msg *MsgFulfillCallbackResponse) Reset()         { *msg = MsgFulfillCallbackResponse{} }
func (msg *MsgFulfillCallbackResponse) String() string { return proto.CompactTextString(msg) }
func (*MsgFulfillCallbackResponse) ProtoMessage()      {}

// NewMsgFulfillCallback creates a new MsgFulfillCallback instance.
func NewMsgFulfillCallback(sender string, sequence uint64, functionId, input, output, proof, context []byte, callbackAddress, callbackMethod string) *MsgFulfillCallback {
	return &MsgFulfillCallback{
		Sender:          sender,
		Sequence:        sequence,
		FunctionId:      functionId,
		Input:           input,
		Output:          output,
		Proof:           proof,
		Context:         context,
		CallbackAddress: callbackAddress,
		CallbackMethod:  callbackMethod,
	}
}

// Route implements sdk.Msg
func (msg *MsgFulfillCallback) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgFulfillCallback) Type() string { return TypeMsgFulfillCallback }

// GetSigners implements sdk.Msg
func (msg *MsgFulfillCallback) GetSigners() []sdk.AccAddress {
	sender, _ := sdk.AccAddressFromBech32(msg.Sender)
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgFulfillCallback) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgFulfillCallback) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidRequest.Wrapf("invalid sender address: %s", err)
	}
	if err := validateFunctionId(msg.FunctionId, false); err != nil {
		return err
	}
	if len(msg.Proof) == 0 {
		return ErrInvalidRequest.Wrap("proof cannot be empty")
	}
	if _, err := sdk.AccAddressFromBech32(msg.CallbackAddress); err != nil {
		return ErrInvalidRequest.Wrapf("invalid callback address: %s", err)
	}
	if msg.CallbackMethod == "" {
		return ErrInvalidRequest.Wrap("callback method cannot be empty")
	}
	return nil
}

// MsgRequestCall records a call-mode request for off-chain discovery. When
// invoked again inside the call chain that just verified the same function
// and input, the response carries the cached output.
type MsgRequestCall struct {
	Sender     string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender"`
	FunctionId []byte `protobuf:"bytes,2,opt,name=function_id,json=functionId,proto3" json:"function_id"`
	Input      []byte `protobuf:"bytes,3,opt,name=input,proto3" json:"input,omitempty"`
}

func (msg *MsgRequestCall) Reset()         { *msg = MsgRequestCall{} }
func (msg *MsgRequestCall) String() string { return proto.CompactTextString(msg) }
func (*MsgRequestCall) ProtoMessage()      {}

// MsgRequestCallResponse reports whether a verified output was ready.
type MsgRequestCallResponse struct {
	Ready  bool   `protobuf:"varint,1,opt,name=ready,proto3" json:"ready"`
	Output []byte `protobuf:"bytes,2,opt,name=output,proto3" json:"output,omitempty"`
}

func (msg *MsgRequestCallResponse) Reset()         { *msg = MsgRequestCallResponse{} }
func (msg *MsgRequestCallResponse) String() string { return proto.CompactTextString(msg) }
func (*MsgRequestCallResponse) ProtoMessage()      {}

// NewMsgRequestCall creates a new MsgRequestCall instance.
func NewMsgRequestCall(sender string, functionId, input []byte) *MsgRequestCall {
	return &MsgRequestCall{Sender: sender, FunctionId: functionId, Input: input}
}

// Route implements sdk.Msg
func (msg *MsgRequestCall) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgRequestCall) Type() string { return TypeMsgRequestCall }

// GetSigners implements sdk.Msg
func (msg *MsgRequestCall) GetSigners() []sdk.AccAddress {
	sender, _ := sdk.AccAddressFromBech32(msg.Sender)
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgRequestCall) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgRequestCall) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidRequest.Wrapf("invalid sender address: %s", err)
	}
	return validateFunctionId(msg.FunctionId, false)
}

// MsgFulfillCall fulfills a call-mode request. An empty CallbackAddress
// persists the verified output hash for later polling instead of invoking a
// callback.
type MsgFulfillCall struct {
	Sender          string `protobuf:"bytes,1,opt,name=sender,proto3" json:"sender"`
	FunctionId      []byte `protobuf:"bytes,2,opt,name=function_id,json=functionId,proto3" json:"function_id"`
	Input           []byte `protobuf:"bytes,3,opt,name=input,proto3" json:"input,omitempty"`
	Output          []byte `protobuf:"bytes,4,opt,name=output,proto3" json:"output,omitempty"`
	Proof           []byte `protobuf:"bytes,5,opt,name=proof,proto3" json:"proof"`
	CallbackAddress string `protobuf:"bytes,6,opt,name=callback_address,json=callbackAddress,proto3" json:"callback_address,omitempty"`
	CallbackData    []byte `protobuf:"bytes,7,opt,name=callback_data,json=callbackData,proto3" json:"callback_data,omitempty"`
}

func (msg *MsgFulfillCall) Reset()         { *msg = MsgFulfillCall{} }
func (msg *MsgFulfillCall) String() string { return proto.CompactTextString(msg) }
func (*MsgFulfillCall) ProtoMessage()      {}

// MsgFulfillCallResponse reports digests and whether the result was stored.
type MsgFulfillCallResponse struct {
	InputHash  []byte `protobuf:"bytes,1,opt,name=input_hash,json=inputHash,proto3" json:"input_hash"`
	OutputHash []byte `protobuf:"bytes,2,opt,name=output_hash,json=outputHash,proto3" json:"output_hash"`
	Stored     bool   `protobuf:"varint,3,opt,name=stored,proto3" json:"stored"`
}

func (msg *MsgFulfillCallResponse) Reset()         { *msg = MsgFulfillCallResponse{} }
func (msg *MsgFulfillCallResponse) String() string { return proto.CompactTextString(msg) }
func (*MsgFulfillCallResponse) ProtoMessage()      {}

// NewMsgFulfillCall creates a new MsgFulfillCall instance.
func NewMsgFulfillCall(sender string, functionId, input, output, proof []byte, callbackAddress string, callbackData []byte) *MsgFulfillCall {
	return &MsgFulfillCall{
		Sender:          sender,
		FunctionId:      functionId,
		Input:           input,
		Output:          output,
		Proof:           proof,
		CallbackAddress: callbackAddress,
		CallbackData:    callbackData,
	}
}

// Route implements sdk.Msg
func (msg *MsgFulfillCall) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgFulfillCall) Type() string { return TypeMsgFulfillCall }

// GetSigners implements sdk.Msg
func (msg *MsgFulfillCall) GetSigners() []sdk.AccAddress {
	sender, _ := sdk.AccAddressFromBech32(msg.Sender)
	return []sdk.AccAddress{sender}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgFulfillCall) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgFulfillCall) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidRequest.Wrapf("invalid sender address: %s", err)
	}
	if err := validateFunctionId(msg.FunctionId, false); err != nil {
		return err
	}
	if len(msg.Proof) == 0 {
		return ErrInvalidRequest.Wrap("proof cannot be empty")
	}
	if msg.CallbackAddress != "" {
		if _, err := sdk.AccAddressFromBech32(msg.CallbackAddress); err != nil {
			return ErrInvalidRequest.Wrapf("invalid callback address: %s", err)
		}
	}
	return nil
}

// MsgUpdateScalar replaces the fee scalar. Restricted to the guardian.
type MsgUpdateScalar struct {
	Guardian string `protobuf:"bytes,1,opt,name=guardian,proto3" json:"guardian"`
	Scalar   uint64 `protobuf:"varint,2,opt,name=scalar,proto3" json:"scalar"`
}

func (msg *MsgUpdateScalar) Reset()         { *msg = MsgUpdateScalar{} }
func (msg *MsgUpdateScalar) String() string { return proto.CompactTextString(msg) }
func (*MsgUpdateScalar) ProtoMessage()      {}

// MsgUpdateScalarResponse is the MsgUpdateScalar response type.
type MsgUpdateScalarResponse struct{}

func (msg *MsgUpdateScalarResponse) Reset()         { *msg = MsgUpdateScalarResponse{} }
func (msg *MsgUpdateScalarResponse) String() string { return proto.CompactTextString(msg) }
func (*MsgUpdateScalarResponse) ProtoMessage()      {}

// NewMsgUpdateScalar creates a new MsgUpdateScalar instance.
func NewMsgUpdateScalar(guardian string, scalar uint64) *MsgUpdateScalar {
	return &MsgUpdateScalar{Guardian: guardian, Scalar: scalar}
}

// Route implements sdk.Msg
func (msg *MsgUpdateScalar) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgUpdateScalar) Type() string { return TypeMsgUpdateScalar }

// GetSigners implements sdk.Msg
func (msg *MsgUpdateScalar) GetSigners() []sdk.AccAddress {
	guardian, _ := sdk.AccAddressFromBech32(msg.Guardian)
	return []sdk.AccAddress{guardian}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgUpdateScalar) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgUpdateScalar) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Guardian); err != nil {
		return ErrInvalidRequest.Wrapf("invalid guardian address: %s", err)
	}
	return nil
}

// MsgSetProverPermission grants or revokes a prover for a function. An empty
// FunctionId addresses the global allowlist. Restricted to the guardian.
type MsgSetProverPermission struct {
	Guardian   string `protobuf:"bytes,1,opt,name=guardian,proto3" json:"guardian"`
	Prover     string `protobuf:"bytes,2,opt,name=prover,proto3" json:"prover"`
	FunctionId []byte `protobuf:"bytes,3,opt,name=function_id,json=functionId,proto3" json:"function_id,omitempty"`
	Allowed    bool   `protobuf:"varint,4,opt,name=allowed,proto3" json:"allowed"`
}

func (msg *MsgSetProverPermission) Reset()         { *msg = MsgSetProverPermission{} }
func (msg *MsgSetProverPermission) String() string { return proto.CompactTextString(msg) }
func (*MsgSetProverPermission) ProtoMessage()      {}

// MsgSetProverPermissionResponse is the MsgSetProverPermission response type.
type MsgSetProverPermissionResponse struct{}

func (msg *MsgSetProverPermissionResponse) Reset()         { *msg = MsgSetProverPermissionResponse{} }
func (msg *MsgSetProverPermissionResponse) String() string { return proto.CompactTextString(msg) }
func (*MsgSetProverPermissionResponse) ProtoMessage()      {}

// NewMsgSetProverPermission creates a new MsgSetProverPermission instance.
func NewMsgSetProverPermission(guardian, prover string, functionId []byte, allowed bool) *MsgSetProverPermission {
	return &MsgSetProverPermission{
		Guardian:   guardian,
		Prover:     prover,
		FunctionId: functionId,
		Allowed:    allowed,
	}
}

// Route implements sdk.Msg
func (msg *MsgSetProverPermission) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgSetProverPermission) Type() string { return TypeMsgSetProverPermission }

// GetSigners implements sdk.Msg
func (msg *MsgSetProverPermission) GetSigners() []sdk.AccAddress {
	guardian, _ := sdk.AccAddressFromBech32(msg.Guardian)
	return []sdk.AccAddress{guardian}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgSetProverPermission) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgSetProverPermission) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Guardian); err != nil {
		return ErrInvalidRequest.Wrapf("invalid guardian address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Prover); err != nil {
		return ErrInvalidRequest.Wrapf("invalid prover address: %s", err)
	}
	return validateFunctionId(msg.FunctionId, true)
}

// MsgUpdateParams replaces the module parameters. Restricted to the module
// authority (governance).
type MsgUpdateParams struct {
	Authority string `protobuf:"bytes,1,opt,name=authority,proto3" json:"authority"`
	Params    Params `protobuf:"bytes,2,opt,name=params,proto3" json:"params"`
}

func (msg *MsgUpdateParams) Reset()         { *msg = MsgUpdateParams{} }
func (msg *MsgUpdateParams) String() string { return proto.CompactTextString(msg) }
func (*MsgUpdateParams) ProtoMessage()      {}

// MsgUpdateParamsResponse is the MsgUpdateParams response type.
type MsgUpdateParamsResponse struct{}

func (msg *MsgUpdateParamsResponse) Reset()         { *msg = MsgUpdateParamsResponse{} }
func (msg *MsgUpdateParamsResponse) String() string { return proto.CompactTextString(msg) }
func (*MsgUpdateParamsResponse) ProtoMessage()      {}

// NewMsgUpdateParams creates a new MsgUpdateParams instance.
func NewMsgUpdateParams(authority string, params Params) *MsgUpdateParams {
	return &MsgUpdateParams{Authority: authority, Params: params}
}

// Route implements sdk.Msg
func (msg *MsgUpdateParams) Route() string { return RouterKey }

// Type implements sdk.Msg
func (msg *MsgUpdateParams) Type() string { return TypeMsgUpdateParams }

// GetSigners implements sdk.Msg
func (msg *MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements sdk.Msg
func (msg *MsgUpdateParams) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(msg))
}

// ValidateBasic implements sdk.Msg
func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrInvalidRequest.Wrapf("invalid authority address: %s", err)
	}
	return msg.Params.Validate()
}

func validateFunctionId(functionId []byte, allowEmpty bool) error {
	if len(functionId) == 0 {
		if allowEmpty {
			return nil
		}
		return ErrInvalidRequest.Wrap("function id cannot be empty")
	}
	if len(functionId) > MaxFunctionIdSize {
		return ErrInvalidRequest.Wrapf("function id exceeds %d bytes", MaxFunctionIdSize)
	}
	return nil
}
