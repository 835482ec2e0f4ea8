package keeper

import (
	"context"
	"fmt"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	"github.com/veritas-chain/veritas/x/gateway/types"
)

type msgServer struct {
	*Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
func NewMsgServerImpl(keeper *Keeper) types.MsgServer {
	return msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// RequestCallback handles a deferred-callback request submission
func (ms msgServer) RequestCallback(goCtx context.Context, msg *types.MsgRequestCallback) (*types.MsgRequestCallbackResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}

	callbackAddress := msg.CallbackAddress
	if callbackAddress == "" {
		callbackAddress = msg.Sender
	}

	refundAddr := sender
	if msg.RefundAddress != "" {
		refundAddr, err = sdk.AccAddressFromBech32(msg.RefundAddress)
		if err != nil {
			return nil, fmt.Errorf("invalid refund address: %w", err)
		}
	}

	req := types.Request{
		FunctionId:      msg.FunctionId,
		Input:           msg.Input,
		Context:         msg.Context,
		CallbackAddress: callbackAddress,
		CallbackMethod:  msg.CallbackMethod,
	}

	sequence, fee, err := ms.SubmitRequest(ctx, sender, req, msg.GasLimit, refundAddr, msg.Value)
	if err != nil {
		return nil, err
	}

	return &types.MsgRequestCallbackResponse{
		Sequence:  sequence,
		FeeAmount: fee.String(),
	}, nil
}

// FulfillCallback handles settlement of an open deferred-callback request
func (ms msgServer) FulfillCallback(goCtx context.Context, msg *types.MsgFulfillCallback) (*types.MsgFulfillCallbackResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	prover, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}

	req := types.Request{
		FunctionId:      msg.FunctionId,
		Input:           msg.Input,
		Context:         msg.Context,
		CallbackAddress: msg.CallbackAddress,
		CallbackMethod:  msg.CallbackMethod,
	}

	inputHash, outputHash, err := ms.Keeper.FulfillCallback(ctx, prover, msg.Sequence, req, msg.Output, msg.Proof)
	if err != nil {
		return nil, err
	}

	return &types.MsgFulfillCallbackResponse{
		InputHash:  inputHash[:],
		OutputHash: outputHash[:],
	}, nil
}

// RequestCall handles a direct-call request
func (ms msgServer) RequestCall(goCtx context.Context, msg *types.MsgRequestCall) (*types.MsgRequestCallResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	caller, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}

	ready, output, err := ms.TryCall(ctx, caller, msg.FunctionId, msg.Input)
	if err != nil {
		return nil, err
	}

	return &types.MsgRequestCallResponse{
		Ready:  ready,
		Output: output,
	}, nil
}

// FulfillCall handles verification and delivery of a direct-call result
func (ms msgServer) FulfillCall(goCtx context.Context, msg *types.MsgFulfillCall) (*types.MsgFulfillCallResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	prover, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}

	inputHash, outputHash, stored, err := ms.Keeper.FulfillCall(
		ctx, prover, msg.FunctionId, msg.Input, msg.Output, msg.Proof, msg.CallbackAddress, msg.CallbackData)
	if err != nil {
		return nil, err
	}

	return &types.MsgFulfillCallResponse{
		InputHash:  inputHash[:],
		OutputHash: outputHash[:],
		Stored:     stored,
	}, nil
}

// UpdateScalar handles a guardian fee scalar update
func (ms msgServer) UpdateScalar(goCtx context.Context, msg *types.MsgUpdateScalar) (*types.MsgUpdateScalarResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := ms.Keeper.UpdateScalar(ctx, msg.Guardian, msg.Scalar); err != nil {
		return nil, err
	}

	return &types.MsgUpdateScalarResponse{}, nil
}

// SetProverPermission handles a guardian prover allowlist change
func (ms msgServer) SetProverPermission(goCtx context.Context, msg *types.MsgSetProverPermission) (*types.MsgSetProverPermissionResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	prover, err := sdk.AccAddressFromBech32(msg.Prover)
	if err != nil {
		return nil, fmt.Errorf("invalid prover address: %w", err)
	}

	if err := ms.Keeper.SetProverPermission(ctx, msg.Guardian, prover, msg.FunctionId, msg.Allowed); err != nil {
		return nil, err
	}

	return &types.MsgSetProverPermissionResponse{}, nil
}

// UpdateParams handles parameter updates (governance only)
func (ms msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if ms.authority != msg.Authority {
		return nil, govtypes.ErrInvalidSigner.Wrapf(
			"invalid authority; expected %s, got %s",
			ms.authority,
			msg.Authority,
		)
	}

	if err := ms.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeParamsUpdated,
			sdk.NewAttribute(types.AttributeKeyAuthority, msg.Authority),
			sdk.NewAttribute("fee_denom", msg.Params.FeeDenom),
			sdk.NewAttribute("unit_price", msg.Params.UnitPrice.String()),
			sdk.NewAttribute("fee_scalar", strconv.FormatUint(msg.Params.FeeScalar, 10)),
			sdk.NewAttribute("default_gas_limit", strconv.FormatUint(msg.Params.DefaultGasLimit, 10)),
		),
	)

	return &types.MsgUpdateParamsResponse{}, nil
}
