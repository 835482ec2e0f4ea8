package registry

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/veritas-chain/veritas/x/gateway/types"
)

// BankFeeVault forwards collected fees from the gateway fee pool to a sink
// module account, the chain fee collector by default. It implements
// types.FeeVault.
type BankFeeVault struct {
	bankKeeper types.BankKeeper
	sink       string
}

// NewBankFeeVault creates a vault depositing into the named module account.
// An empty sink selects the auth fee collector.
func NewBankFeeVault(bankKeeper types.BankKeeper, sink string) *BankFeeVault {
	if sink == "" {
		sink = authtypes.FeeCollectorName
	}
	return &BankFeeVault{bankKeeper: bankKeeper, sink: sink}
}

// DepositOnBehalf implements types.FeeVault. The fee is already held by the
// gateway fee pool when this is called; the vault moves it to the sink and
// records the payer for attribution.
func (v *BankFeeVault) DepositOnBehalf(ctx sdk.Context, payer sdk.AccAddress, amount sdk.Coin) error {
	if !amount.IsPositive() {
		return nil
	}

	if err := v.bankKeeper.SendCoinsFromModuleToModule(ctx, types.FeePoolName, v.sink, sdk.NewCoins(amount)); err != nil {
		return fmt.Errorf("deposit fee to %s: %w", v.sink, err)
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeeDeposited,
			sdk.NewAttribute(types.AttributeKeyPayer, payer.String()),
			sdk.NewAttribute(sdk.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}
