package ante

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	gatewaytypes "github.com/veritas-chain/veritas/x/gateway/types"
)

// Gas ceilings per operation type. Fulfillments carry the verifier pairing
// check plus the request's callback budget, so their ceiling dominates.
const (
	MaxGasPerRequest     uint64 = 250_000
	MaxGasPerFulfillment uint64 = 8_000_000
	MaxGasPerAdmin       uint64 = 150_000

	MaxGasPerTx      uint64 = 10_000_000
	MaxGasPerMessage uint64 = 8_000_000
	MaxMessagesPerTx int    = 10
)

// GasLimitDecorator enforces per-operation gas ceilings so a single
// transaction cannot monopolize a block.
type GasLimitDecorator struct{}

// NewGasLimitDecorator creates a new GasLimitDecorator
func NewGasLimitDecorator() GasLimitDecorator {
	return GasLimitDecorator{}
}

// AnteHandle enforces gas limits on transactions and individual messages
func (gld GasLimitDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (sdk.Context, error) {
	msgs := tx.GetMsgs()

	if len(msgs) > MaxMessagesPerTx {
		return ctx, sdkerrors.ErrInvalidRequest.Wrapf(
			"transaction contains too many messages: %d > %d",
			len(msgs), MaxMessagesPerTx,
		)
	}

	for i, msg := range msgs {
		ceiling := gasCeilingForMessage(msg)
		if ceiling > MaxGasPerMessage {
			return ctx, sdkerrors.ErrInvalidRequest.Wrapf(
				"message %d requires too much gas: %d > %d",
				i, ceiling, MaxGasPerMessage,
			)
		}
	}

	if limit := ctx.GasMeter().Limit(); limit > MaxGasPerTx && !simulate {
		return ctx, sdkerrors.ErrInvalidRequest.Wrapf(
			"transaction gas limit too high: %d > %d",
			limit, MaxGasPerTx,
		)
	}

	gasBefore := ctx.GasMeter().GasConsumed()

	newCtx, err := next(ctx, tx, simulate)
	if err != nil {
		return newCtx, err
	}

	// Log heavy transactions for monitoring
	if used := newCtx.GasMeter().GasConsumed() - gasBefore; used > MaxGasPerTx/2 {
		ctx.Logger().Info("high gas consumption detected",
			"gas_used", used,
			"num_messages", len(msgs),
			"tx_hash", fmt.Sprintf("%X", ctx.TxBytes()),
		)
	}

	return newCtx, nil
}

// gasCeilingForMessage returns the gas ceiling for a specific message type
func gasCeilingForMessage(msg sdk.Msg) uint64 {
	switch msg.(type) {
	case *gatewaytypes.MsgRequestCallback, *gatewaytypes.MsgRequestCall:
		return MaxGasPerRequest
	case *gatewaytypes.MsgFulfillCallback, *gatewaytypes.MsgFulfillCall:
		return MaxGasPerFulfillment
	case *gatewaytypes.MsgUpdateScalar,
		*gatewaytypes.MsgSetProverPermission,
		*gatewaytypes.MsgUpdateParams:
		return MaxGasPerAdmin
	default:
		// Unknown message types get the conservative per-message ceiling.
		return MaxGasPerMessage
	}
}
