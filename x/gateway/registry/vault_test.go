package registry_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/veritas-chain/veritas/testutil/keeper"
	"github.com/veritas-chain/veritas/x/gateway/registry"
	"github.com/veritas-chain/veritas/x/gateway/types"
)

// fundFeePool mints amounts straight into the gateway fee pool, standing in
// for the escrow step of a real payment.
func fundFeePool(t *testing.T, f keepertest.GatewayFixture, amounts sdk.Coins) {
	t.Helper()
	require.NoError(t, f.BankKeeper.MintCoins(f.Ctx, minttypes.ModuleName, amounts))
	require.NoError(t, f.BankKeeper.SendCoinsFromModuleToModule(f.Ctx, minttypes.ModuleName, types.FeePoolName, amounts))
}

func findDepositEvent(events sdk.Events) (sdk.Event, bool) {
	for _, ev := range events {
		if ev.Type == types.EventTypeFeeDeposited {
			return ev, true
		}
	}
	return sdk.Event{}, false
}

// TestBankFeeVault_Deposit tests that a deposit moves the escrowed fee from
// the fee pool to the fee collector and records the payer
func TestBankFeeVault_Deposit(t *testing.T) {
	f := keepertest.GatewayKeeper(t)
	payer := sdk.AccAddress("payer_______________")
	fee := sdk.NewInt64Coin(types.DefaultFeeDenom, 20_000_000)
	fundFeePool(t, f, sdk.NewCoins(fee))

	vault := registry.NewBankFeeVault(f.BankKeeper, "")
	require.NoError(t, vault.DepositOnBehalf(f.Ctx, payer, fee))

	collector := authtypes.NewModuleAddress(authtypes.FeeCollectorName)
	require.Equal(t, fee, f.BankKeeper.GetBalance(f.Ctx, collector, types.DefaultFeeDenom))

	pool := authtypes.NewModuleAddress(types.FeePoolName)
	require.True(t, f.BankKeeper.GetBalance(f.Ctx, pool, types.DefaultFeeDenom).IsZero())

	ev, found := findDepositEvent(f.Ctx.EventManager().Events())
	require.True(t, found)
	attrs := make(map[string]string, len(ev.Attributes))
	for _, attr := range ev.Attributes {
		attrs[attr.Key] = attr.Value
	}
	require.Equal(t, payer.String(), attrs[types.AttributeKeyPayer])
	require.Equal(t, fee.String(), attrs[sdk.AttributeKeyAmount])
}

// TestBankFeeVault_CustomSink tests that a configured sink receives the fee
// instead of the fee collector
func TestBankFeeVault_CustomSink(t *testing.T) {
	f := keepertest.GatewayKeeper(t)
	payer := sdk.AccAddress("payer_______________")
	fee := sdk.NewInt64Coin(types.DefaultFeeDenom, 5_000_000)
	fundFeePool(t, f, sdk.NewCoins(fee))

	vault := registry.NewBankFeeVault(f.BankKeeper, minttypes.ModuleName)
	require.NoError(t, vault.DepositOnBehalf(f.Ctx, payer, fee))

	sink := authtypes.NewModuleAddress(minttypes.ModuleName)
	require.Equal(t, fee, f.BankKeeper.GetBalance(f.Ctx, sink, types.DefaultFeeDenom))
}

// TestBankFeeVault_ZeroAmount tests that a non-positive deposit is a no-op
func TestBankFeeVault_ZeroAmount(t *testing.T) {
	f := keepertest.GatewayKeeper(t)
	payer := sdk.AccAddress("payer_______________")

	vault := registry.NewBankFeeVault(f.BankKeeper, "")
	require.NoError(t, vault.DepositOnBehalf(f.Ctx, payer, sdk.NewInt64Coin(types.DefaultFeeDenom, 0)))

	collector := authtypes.NewModuleAddress(authtypes.FeeCollectorName)
	require.True(t, f.BankKeeper.GetBalance(f.Ctx, collector, types.DefaultFeeDenom).IsZero())

	_, found := findDepositEvent(f.Ctx.EventManager().Events())
	require.False(t, found)
}

// TestBankFeeVault_InsufficientPool tests that a deposit exceeding the pool
// balance surfaces the bank error
func TestBankFeeVault_InsufficientPool(t *testing.T) {
	f := keepertest.GatewayKeeper(t)
	payer := sdk.AccAddress("payer_______________")

	vault := registry.NewBankFeeVault(f.BankKeeper, "")
	err := vault.DepositOnBehalf(f.Ctx, payer, sdk.NewInt64Coin(types.DefaultFeeDenom, 1_000_000))
	require.Error(t, err)
	require.Contains(t, err.Error(), "deposit fee to")
}
