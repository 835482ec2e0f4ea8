package ante

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	gatewaykeeper "github.com/veritas-chain/veritas/x/gateway/keeper"
	gatewaytypes "github.com/veritas-chain/veritas/x/gateway/types"
)

// GatewayDecorator rejects malformed gateway transactions before execution.
// Size bounds, denomination and prover allowance are checked here so that
// oversized or unauthorized payloads never reach the verifier path. The
// keeper re-validates everything authoritatively during execution.
type GatewayDecorator struct {
	keeper *gatewaykeeper.Keeper
}

// NewGatewayDecorator creates a new GatewayDecorator
func NewGatewayDecorator(keeper *gatewaykeeper.Keeper) GatewayDecorator {
	return GatewayDecorator{
		keeper: keeper,
	}
}

// AnteHandle implements the AnteDecorator interface
func (gd GatewayDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (newCtx sdk.Context, err error) {
	// Skip validation during simulation
	if simulate {
		return next(ctx, tx, simulate)
	}

	msgs := tx.GetMsgs()
	for _, msg := range msgs {
		switch msg := msg.(type) {
		case *gatewaytypes.MsgRequestCallback:
			if err := gd.validateRequestCallback(ctx, msg); err != nil {
				return ctx, err
			}
		case *gatewaytypes.MsgRequestCall:
			if err := gd.validateRequestCall(ctx, msg); err != nil {
				return ctx, err
			}
		case *gatewaytypes.MsgFulfillCallback:
			if err := gd.validateFulfillCallback(ctx, msg); err != nil {
				return ctx, err
			}
		case *gatewaytypes.MsgFulfillCall:
			if err := gd.validateFulfillCall(ctx, msg); err != nil {
				return ctx, err
			}
		}
	}

	return next(ctx, tx, simulate)
}

// validateRequestCallback bounds request payloads and pre-checks the fee.
func (gd GatewayDecorator) validateRequestCallback(ctx sdk.Context, msg *gatewaytypes.MsgRequestCallback) error {
	// Consume gas for validation
	ctx.GasMeter().ConsumeGas(1000, "gateway request validation")

	params, err := gd.keeper.GetParams(ctx)
	if err != nil {
		return fmt.Errorf("failed to get params: %w", err)
	}

	if params.MaxInputSize > 0 && uint64(len(msg.Input)) > params.MaxInputSize {
		return sdkerrors.ErrInvalidRequest.Wrapf("input is %d bytes, max %d", len(msg.Input), params.MaxInputSize)
	}
	if params.MaxInputSize > 0 && uint64(len(msg.Context)) > params.MaxInputSize {
		return sdkerrors.ErrInvalidRequest.Wrapf("context is %d bytes, max %d", len(msg.Context), params.MaxInputSize)
	}

	gasLimit := msg.GasLimit
	if gasLimit == 0 {
		gasLimit = params.DefaultGasLimit
	}
	fee := gd.keeper.QuoteFee(ctx, gasLimit)

	if fee.IsPositive() || msg.Value.Amount.IsPositive() {
		if msg.Value.Denom != params.FeeDenom {
			return sdkerrors.ErrInvalidCoins.Wrapf("request fee must be paid in %s, got %s", params.FeeDenom, msg.Value.Denom)
		}
	}
	if msg.Value.Amount.LT(fee) {
		return sdkerrors.ErrInsufficientFee.Wrapf("request pays %s, quoted fee is %s%s", msg.Value.String(), fee.String(), params.FeeDenom)
	}

	return nil
}

// validateRequestCall bounds call-mode request payloads.
func (gd GatewayDecorator) validateRequestCall(ctx sdk.Context, msg *gatewaytypes.MsgRequestCall) error {
	// Consume gas for validation
	ctx.GasMeter().ConsumeGas(1000, "gateway call validation")

	params, err := gd.keeper.GetParams(ctx)
	if err != nil {
		return fmt.Errorf("failed to get params: %w", err)
	}

	if params.MaxInputSize > 0 && uint64(len(msg.Input)) > params.MaxInputSize {
		return sdkerrors.ErrInvalidRequest.Wrapf("input is %d bytes, max %d", len(msg.Input), params.MaxInputSize)
	}

	return nil
}

// validateFulfillCallback bounds proof size and pre-checks prover allowance.
func (gd GatewayDecorator) validateFulfillCallback(ctx sdk.Context, msg *gatewaytypes.MsgFulfillCallback) error {
	prover, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid prover address: %s", err)
	}

	// Consume gas for validation
	ctx.GasMeter().ConsumeGas(2000, "gateway fulfillment validation")

	params, err := gd.keeper.GetParams(ctx)
	if err != nil {
		return fmt.Errorf("failed to get params: %w", err)
	}

	if params.MaxProofSize > 0 && uint64(len(msg.Proof)) > params.MaxProofSize {
		return sdkerrors.ErrInvalidRequest.Wrapf("proof is %d bytes, max %d", len(msg.Proof), params.MaxProofSize)
	}

	if !gd.keeper.IsProverAllowed(ctx, prover, msg.FunctionId) {
		return sdkerrors.ErrUnauthorized.Wrapf("prover %s is not allowed to fulfill function %X", msg.Sender, msg.FunctionId)
	}

	return nil
}

// validateFulfillCall bounds proof and callback payloads and pre-checks
// prover allowance.
func (gd GatewayDecorator) validateFulfillCall(ctx sdk.Context, msg *gatewaytypes.MsgFulfillCall) error {
	prover, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid prover address: %s", err)
	}

	// Consume gas for validation
	ctx.GasMeter().ConsumeGas(2000, "gateway fulfillment validation")

	params, err := gd.keeper.GetParams(ctx)
	if err != nil {
		return fmt.Errorf("failed to get params: %w", err)
	}

	if params.MaxProofSize > 0 && uint64(len(msg.Proof)) > params.MaxProofSize {
		return sdkerrors.ErrInvalidRequest.Wrapf("proof is %d bytes, max %d", len(msg.Proof), params.MaxProofSize)
	}
	if params.MaxCallbackData > 0 && uint64(len(msg.CallbackData)) > params.MaxCallbackData {
		return sdkerrors.ErrInvalidRequest.Wrapf("callback data is %d bytes, max %d", len(msg.CallbackData), params.MaxCallbackData)
	}

	if !gd.keeper.IsProverAllowed(ctx, prover, msg.FunctionId) {
		return sdkerrors.ErrUnauthorized.Wrapf("prover %s is not allowed to fulfill function %X", msg.Sender, msg.FunctionId)
	}

	return nil
}
