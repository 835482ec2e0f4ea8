package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"
	"github.com/stretchr/testify/require"

	"github.com/veritas-chain/veritas/x/gateway/keeper"
	"github.com/veritas-chain/veritas/x/gateway/types"
)

// GatewayFixture bundles the gateway keeper with the real auth and bank
// keepers backing it in tests.
type GatewayFixture struct {
	Keeper        *keeper.Keeper
	AccountKeeper authkeeper.AccountKeeper
	BankKeeper    bankkeeper.Keeper
	Ctx           sdk.Context
}

// GatewayOption customizes the gateway keeper under test.
type GatewayOption func(*gatewayConfig)

type gatewayConfig struct {
	registry types.VerifierRegistry
	router   types.CallbackRouter
	vault    types.FeeVault
}

// WithVerifierRegistry installs the verifier registry the keeper resolves
// proofs against.
func WithVerifierRegistry(registry types.VerifierRegistry) GatewayOption {
	return func(cfg *gatewayConfig) { cfg.registry = registry }
}

// WithCallbackRouter installs the callback router the keeper delivers
// fulfillments through.
func WithCallbackRouter(router types.CallbackRouter) GatewayOption {
	return func(cfg *gatewayConfig) { cfg.router = router }
}

// WithFeeVault installs the fee vault collected fees are deposited into.
func WithFeeVault(vault types.FeeVault) GatewayOption {
	return func(cfg *gatewayConfig) { cfg.vault = vault }
}

// GatewayKeeper creates a test keeper for the Gateway module backed by real
// auth and bank keepers
func GatewayKeeper(t testing.TB, opts ...GatewayOption) GatewayFixture {
	cfg := &gatewayConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	authStoreKey := storetypes.NewKVStoreKey(authtypes.StoreKey)
	bankStoreKey := storetypes.NewKVStoreKey(banktypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(authStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(bankStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	authtypes.RegisterInterfaces(registry)
	banktypes.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)
	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	maccPerms := map[string][]string{
		authtypes.FeeCollectorName: nil,
		minttypes.ModuleName:       {authtypes.Minter},
		types.FeePoolName:          nil,
	}

	accountKeeper := authkeeper.NewAccountKeeper(
		cdc,
		runtime.NewKVStoreService(authStoreKey),
		authtypes.ProtoBaseAccount,
		maccPerms,
		address.NewBech32Codec(sdk.GetConfig().GetBech32AccountAddrPrefix()),
		sdk.GetConfig().GetBech32AccountAddrPrefix(),
		authority.String(),
	)

	// Module accounts are not valid refund targets.
	blockedAddrs := map[string]bool{
		authtypes.NewModuleAddress(authtypes.FeeCollectorName).String(): true,
	}

	bankKeeper := bankkeeper.NewBaseKeeper(
		cdc,
		runtime.NewKVStoreService(bankStoreKey),
		accountKeeper,
		blockedAddrs,
		authority.String(),
		log.NewNopLogger(),
	)

	k := keeper.NewKeeper(
		cdc,
		storeKey,
		bankKeeper,
		accountKeeper,
		cfg.registry,
		cfg.router,
		cfg.vault,
		authority.String(),
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return GatewayFixture{
		Keeper:        k,
		AccountKeeper: accountKeeper,
		BankKeeper:    bankKeeper,
		Ctx:           ctx,
	}
}

// FundAccount mints amounts and credits them to addr.
func FundAccount(t testing.TB, f GatewayFixture, addr sdk.AccAddress, amounts sdk.Coins) {
	t.Helper()
	require.NoError(t, f.BankKeeper.MintCoins(f.Ctx, minttypes.ModuleName, amounts))
	require.NoError(t, f.BankKeeper.SendCoinsFromModuleToAccount(f.Ctx, minttypes.ModuleName, addr, amounts))
}
