package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veritas-chain/veritas/x/gateway/types"
)

// collectPayment escrows the attached value in the module fee pool, forwards
// the computed fee to the vault, and refunds the remainder to refundAddr.
// The vault deposit is fail-closed: a rejected deposit aborts the request
// rather than leaving the fee stranded. Returns the refunded amount.
//
// Conservation holds on every successful return: fee + refund equals the
// value sent.
func (k *Keeper) collectPayment(
	ctx sdk.Context,
	payer sdk.AccAddress,
	refundAddr sdk.AccAddress,
	value sdk.Coin,
	fee math.Int,
	feeDenom string,
) (math.Int, error) {
	if value.Denom != feeDenom && value.Amount.IsPositive() {
		return math.ZeroInt(), types.ErrInvalidRequest.Wrapf("payment denom %s, fee denom is %s", value.Denom, feeDenom)
	}
	if value.Amount.LT(fee) {
		return math.ZeroInt(), types.ErrInsufficientPayment.Wrapf("request fee is %s%s, sent %s", fee, feeDenom, value)
	}

	if value.Amount.IsPositive() {
		escrow := sdk.NewCoins(sdk.NewCoin(feeDenom, value.Amount))
		if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, payer, types.FeePoolName, escrow); err != nil {
			return math.ZeroInt(), types.ErrInsufficientPayment.Wrapf("failed to collect payment: %v", err)
		}
	}

	if fee.IsPositive() {
		if k.vault != nil {
			if err := k.vault.DepositOnBehalf(ctx, payer, sdk.NewCoin(feeDenom, fee)); err != nil {
				return math.ZeroInt(), types.ErrVaultDeposit.Wrapf("fee deposit for payer %s: %v", payer, err)
			}
		} else {
			k.Logger(ctx).Debug("no fee vault configured, fee remains escrowed", "fee", fee, "payer", payer)
		}
	}

	refund := value.Amount.Sub(fee)
	if refund.IsPositive() {
		if k.bankKeeper.BlockedAddr(refundAddr) {
			return math.ZeroInt(), types.ErrRefundFailed.Wrapf("refund target %s does not accept funds", refundAddr)
		}
		refundCoins := sdk.NewCoins(sdk.NewCoin(feeDenom, refund))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.FeePoolName, refundAddr, refundCoins); err != nil {
			return math.ZeroInt(), types.ErrRefundFailed.Wrapf("refund of %s to %s: %v", refund, refundAddr, err)
		}
	}

	return refund, nil
}
