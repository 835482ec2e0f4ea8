package app

import (
	"encoding/json"
	"time"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	crisistypes "github.com/cosmos/cosmos-sdk/x/crisis/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	govv1 "github.com/cosmos/cosmos-sdk/x/gov/types/v1"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"
	slashingtypes "github.com/cosmos/cosmos-sdk/x/slashing/types"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"
)

// GenesisState represents the genesis state of the veritas blockchain as a
// map of raw json messages keyed by module identifier.
type GenesisState map[string]json.RawMessage

// NewDefaultGenesisState generates the default genesis state for the
// application. Module defaults are overridden with the veritas network
// parameters, denominated in uvrt.
func NewDefaultGenesisState(cdc codec.JSONCodec) GenesisState {
	genesis := ModuleBasics.DefaultGenesis(cdc)

	// Staking: 21 day unbonding, 5% minimum commission.
	stakingGenesis := stakingtypes.DefaultGenesisState()
	stakingGenesis.Params.UnbondingTime = 21 * 24 * time.Hour
	stakingGenesis.Params.MaxValidators = 125
	stakingGenesis.Params.HistoricalEntries = 10000
	stakingGenesis.Params.BondDenom = BondDenom
	stakingGenesis.Params.MinCommissionRate = math.LegacyMustNewDecFromStr("0.05")
	genesis[stakingtypes.ModuleName] = cdc.MustMarshalJSON(stakingGenesis)

	// Mint: fixed supply, no inflation.
	mintGenesis := minttypes.DefaultGenesisState()
	mintGenesis.Params.MintDenom = BondDenom
	mintGenesis.Params.InflationRateChange = math.LegacyZeroDec()
	mintGenesis.Params.InflationMax = math.LegacyZeroDec()
	mintGenesis.Params.InflationMin = math.LegacyZeroDec()
	mintGenesis.Minter.Inflation = math.LegacyZeroDec()
	mintGenesis.Minter.AnnualProvisions = math.LegacyZeroDec()
	genesis[minttypes.ModuleName] = cdc.MustMarshalJSON(mintGenesis)

	// Slashing: 10000 block downtime window, 24 hour jail.
	slashingGenesis := slashingtypes.DefaultGenesisState()
	slashingGenesis.Params.SignedBlocksWindow = 10000
	slashingGenesis.Params.MinSignedPerWindow = math.LegacyMustNewDecFromStr("0.50")
	slashingGenesis.Params.DowntimeJailDuration = 24 * time.Hour
	slashingGenesis.Params.SlashFractionDoubleSign = math.LegacyMustNewDecFromStr("0.05")
	slashingGenesis.Params.SlashFractionDowntime = math.LegacyMustNewDecFromStr("0.001")
	genesis[slashingtypes.ModuleName] = cdc.MustMarshalJSON(slashingGenesis)

	// Governance: 10,000 VRT minimum deposit, 14 day voting period.
	govGenesis := govv1.DefaultGenesisState()
	govGenesis.Params.MinDeposit = sdk.NewCoins(sdk.NewInt64Coin(BondDenom, 10_000_000_000))
	votingPeriod := 14 * 24 * time.Hour
	govGenesis.Params.VotingPeriod = &votingPeriod
	genesis[govtypes.ModuleName] = cdc.MustMarshalJSON(govGenesis)

	// Crisis: 1,000 VRT fee to run an invariant check.
	crisisGenesis := crisistypes.DefaultGenesisState()
	crisisGenesis.ConstantFee = sdk.NewInt64Coin(BondDenom, 1_000_000_000)
	genesis[crisistypes.ModuleName] = cdc.MustMarshalJSON(crisisGenesis)

	return genesis
}
