package keeper

import (
	"runtime/debug"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veritas-chain/veritas/x/gateway/types"
)

// resolveHandler looks up the callback handler registered for a target
// address.
func (k *Keeper) resolveHandler(target string) (types.CallbackHandler, error) {
	if k.router == nil {
		return nil, types.ErrRouteNotFound.Wrap("no callback router configured")
	}
	handler, ok := k.router.Route(target)
	if !ok {
		return nil, types.ErrRouteNotFound.Wrapf("target %s", target)
	}
	return handler, nil
}

// runCallback executes a handler invocation under its own bounded gas meter.
// A panic or gas exhaustion inside the handler surfaces as ErrCallbackFailed
// instead of aborting the transaction. Whatever gas the handler consumed is
// charged to the caller's meter on the way out, success or failure.
func (k *Keeper) runCallback(ctx sdk.Context, budget uint64, invoke func(sdk.Context) error) (err error) {
	handlerCtx := ctx.WithGasMeter(storetypes.NewGasMeter(budget))

	defer func() {
		// Recover before touching the parent meter so the handler's panic is
		// not masked if the charge itself runs the transaction out of gas.
		if r := recover(); r != nil {
			k.Logger(ctx).Error("callback panicked",
				"panic", r,
				"stack_trace", string(debug.Stack()),
			)
			err = types.ErrCallbackFailed.Wrapf("callback panicked: %v", r)
		}
		consumed := handlerCtx.GasMeter().GasConsumed()
		k.metrics.CallbackGasUsed.Observe(float64(consumed))
		ctx.GasMeter().ConsumeGas(consumed, "gateway callback")
	}()

	if invokeErr := invoke(handlerCtx); invokeErr != nil {
		return types.ErrCallbackFailed.Wrapf("%v", invokeErr)
	}
	return nil
}
