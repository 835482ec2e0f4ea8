package ante

import (
	"fmt"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MaxFutureBlockTime is how far ahead of local wall clock a block timestamp
// may run before the node refuses to admit transactions under it.
const MaxFutureBlockTime = 30 * time.Second

// BlockTimeDecorator rejects transactions arriving under a block timestamp
// that runs ahead of the local clock. The check consults the wall clock, so
// it only runs during CheckTx; block execution must stay deterministic.
type BlockTimeDecorator struct{}

// NewBlockTimeDecorator creates a new BlockTimeDecorator
func NewBlockTimeDecorator() BlockTimeDecorator {
	return BlockTimeDecorator{}
}

// AnteHandle validates the block time before admitting a transaction
func (btd BlockTimeDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (sdk.Context, error) {
	if simulate || !ctx.IsCheckTx() || ctx.IsReCheckTx() {
		return next(ctx, tx, simulate)
	}

	// Genesis and the first block may carry arbitrary timestamps.
	if ctx.BlockHeight() <= 1 {
		return next(ctx, tx, simulate)
	}

	if err := ValidateBlockTime(ctx.BlockTime(), time.Time{}, time.Now()); err != nil {
		return ctx, sdkerrors.ErrInvalidRequest.Wrap(err.Error())
	}

	return next(ctx, tx, simulate)
}

// ValidateBlockTime validates a block timestamp against drift and
// monotonicity constraints. A zero prevBlockTime skips the monotonicity
// check.
func ValidateBlockTime(blockTime, prevBlockTime, currentTime time.Time) error {
	if blockTime.After(currentTime.Add(MaxFutureBlockTime)) {
		return fmt.Errorf(
			"block time %s is too far in the future (max drift: %s from %s)",
			blockTime, MaxFutureBlockTime, currentTime,
		)
	}

	if !prevBlockTime.IsZero() && blockTime.Before(prevBlockTime) {
		return fmt.Errorf(
			"block time %s is before previous block time %s",
			blockTime, prevBlockTime,
		)
	}

	return nil
}
