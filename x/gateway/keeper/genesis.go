package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veritas-chain/veritas/x/gateway/types"
)

// InitGenesis initializes the gateway module's state from a genesis state
func (k *Keeper) InitGenesis(ctx sdk.Context, data types.GenesisState) error {
	if err := data.Validate(); err != nil {
		return types.ErrInvalidGenesis.Wrapf("%v", err)
	}

	if acc := k.accountKeeper.GetModuleAccount(ctx, types.FeePoolName); acc == nil {
		return fmt.Errorf("%s module account has not been set", types.FeePoolName)
	}

	if err := k.SetParams(ctx, data.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	k.SetNextSequence(ctx, data.NextSequence)

	for _, entry := range data.Requests {
		var commitment [types.CommitmentSize]byte
		copy(commitment[:], entry.Commitment)
		k.setRequestCommitment(ctx, entry.Sequence, commitment)
	}

	for _, result := range data.Results {
		var inputHash, outputHash [types.CommitmentSize]byte
		copy(inputHash[:], result.InputHash)
		copy(outputHash[:], result.OutputHash)
		k.setResult(ctx, result.FunctionId, inputHash, outputHash)
	}

	for _, grant := range data.Provers {
		prover, err := sdk.AccAddressFromBech32(grant.Address)
		if err != nil {
			return fmt.Errorf("invalid prover address %s: %w", grant.Address, err)
		}
		k.SetProverGrant(ctx, prover, grant.FunctionId)
	}

	return nil
}

// ExportGenesis exports the gateway module's state to a genesis state
func (k *Keeper) ExportGenesis(ctx sdk.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get params: %w", err)
	}

	requests := []types.LedgerEntry{}
	k.IterateRequests(ctx, func(sequence uint64, commitment [types.CommitmentSize]byte) bool {
		entry := types.LedgerEntry{Sequence: sequence}
		entry.Commitment = append(entry.Commitment, commitment[:]...)
		requests = append(requests, entry)
		return false
	})

	results := []types.StoredResult{}
	k.IterateResults(ctx, func(functionId, inputHash, outputHash []byte) bool {
		results = append(results, types.StoredResult{
			FunctionId: append([]byte(nil), functionId...),
			InputHash:  append([]byte(nil), inputHash...),
			OutputHash: append([]byte(nil), outputHash...),
		})
		return false
	})

	provers := []types.ProverGrant{}
	k.IterateProverGrants(ctx, func(functionId []byte, prover sdk.AccAddress) bool {
		provers = append(provers, types.ProverGrant{
			FunctionId: append([]byte(nil), functionId...),
			Address:    prover.String(),
		})
		return false
	})

	return &types.GenesisState{
		Params:       params,
		NextSequence: k.GetNextSequence(ctx),
		Requests:     requests,
		Results:      results,
		Provers:      provers,
	}, nil
}
