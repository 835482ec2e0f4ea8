package app_test

import (
	"encoding/json"
	"testing"

	abci "github.com/cometbft/cometbft/abci/types"
	cmttypes "github.com/cometbft/cometbft/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/stretchr/testify/require"

	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	"github.com/cosmos/cosmos-sdk/testutil/mock"
	simtestutil "github.com/cosmos/cosmos-sdk/testutil/sims"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"

	"github.com/veritas-chain/veritas/app"
	gatewaytypes "github.com/veritas-chain/veritas/x/gateway/types"
)

func newTestApp(t *testing.T, db dbm.DB) *app.VeritasApp {
	t.Helper()
	return app.NewVeritasApp(log.NewNopLogger(), db, nil, true, simtestutil.EmptyAppOptions{})
}

func TestNewVeritasApp(t *testing.T) {
	veritasApp := newTestApp(t, dbm.NewMemDB())

	require.Equal(t, "veritas", veritasApp.Name())
	require.NotNil(t, veritasApp.GatewayKeeper)
	require.NotNil(t, veritasApp.VerifierRegistry)
	require.NotNil(t, veritasApp.CallbackRouter)
	require.NotNil(t, veritasApp.AppCodec())
	require.NotNil(t, veritasApp.TxConfig())
	require.NotNil(t, veritasApp.SimulationManager())
}

func TestInitChainAndExport(t *testing.T) {
	db := dbm.NewMemDB()
	veritasApp := newTestApp(t, db)

	// InitGenesis refuses an empty validator set, so seed one bonded
	// validator and a funded account.
	privVal := mock.NewPV()
	pubKey, err := privVal.GetPubKey()
	require.NoError(t, err)
	valSet := cmttypes.NewValidatorSet([]*cmttypes.Validator{cmttypes.NewValidator(pubKey, 1)})

	senderPrivKey := secp256k1.GenPrivKey()
	acc := authtypes.NewBaseAccount(senderPrivKey.PubKey().Address().Bytes(), senderPrivKey.PubKey(), 0, 0)
	balance := banktypes.Balance{
		Address: acc.GetAddress().String(),
		Coins:   sdk.NewCoins(sdk.NewInt64Coin(sdk.DefaultBondDenom, 100_000_000_000)),
	}

	genesisState, err := simtestutil.GenesisStateWithValSet(
		veritasApp.AppCodec(),
		app.NewDefaultGenesisState(veritasApp.AppCodec()),
		valSet,
		[]authtypes.GenesisAccount{acc},
		balance,
	)
	require.NoError(t, err)

	stateBytes, err := json.MarshalIndent(genesisState, "", "  ")
	require.NoError(t, err)

	_, err = veritasApp.InitChain(&abci.RequestInitChain{
		ChainId:         "veritas-test-1",
		AppStateBytes:   stateBytes,
		ConsensusParams: simtestutil.DefaultConsensusParams,
	})
	require.NoError(t, err)

	_, err = veritasApp.FinalizeBlock(&abci.RequestFinalizeBlock{
		Height: veritasApp.LastBlockHeight() + 1,
	})
	require.NoError(t, err)

	_, err = veritasApp.Commit()
	require.NoError(t, err)

	// A fresh app over the same db must be able to export the state.
	veritasApp2 := newTestApp(t, db)
	exported, err := veritasApp2.ExportAppStateAndValidators(false, nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, exported.AppState)
	require.Len(t, exported.Validators, 1)
}

func TestDefaultGenesisState(t *testing.T) {
	encCfg := app.MakeEncodingConfig()
	genesisState := app.NewDefaultGenesisState(encCfg.Codec)

	require.Contains(t, genesisState, gatewaytypes.ModuleName)

	var stakingGenesis stakingtypes.GenesisState
	encCfg.Codec.MustUnmarshalJSON(genesisState[stakingtypes.ModuleName], &stakingGenesis)
	require.Equal(t, app.BondDenom, stakingGenesis.Params.BondDenom)
	require.Equal(t, uint32(125), stakingGenesis.Params.MaxValidators)

	var mintGenesis minttypes.GenesisState
	encCfg.Codec.MustUnmarshalJSON(genesisState[minttypes.ModuleName], &mintGenesis)
	require.Equal(t, app.BondDenom, mintGenesis.Params.MintDenom)
	require.True(t, mintGenesis.Minter.Inflation.IsZero())
	require.True(t, mintGenesis.Params.InflationMax.IsZero())

	var gatewayGenesis gatewaytypes.GenesisState
	require.NoError(t, json.Unmarshal(genesisState[gatewaytypes.ModuleName], &gatewayGenesis))
	require.Equal(t, app.BondDenom, gatewayGenesis.Params.FeeDenom)
}

func TestBlockedModuleAccountAddrs(t *testing.T) {
	blocked := app.BlockedModuleAccountAddrs()

	require.True(t, blocked[authtypes.NewModuleAddress(stakingtypes.BondedPoolName).String()])
	require.True(t, blocked[authtypes.NewModuleAddress(gatewaytypes.FeePoolName).String()])

	// Gov must stay unblocked so deposits can be refunded.
	require.False(t, blocked[authtypes.NewModuleAddress(govtypes.ModuleName).String()])
}

func TestMaccPerms(t *testing.T) {
	perms := app.GetMaccPerms()

	require.Contains(t, perms, gatewaytypes.FeePoolName)
	require.Contains(t, perms, authtypes.FeeCollectorName)
	require.Equal(t, []string{authtypes.Minter}, perms[minttypes.ModuleName])
}
