package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veritas-chain/veritas/x/gateway/types"
)

// RegisterInvariants registers all gateway module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k *Keeper) {
	ir.RegisterRoute(types.ModuleName, "sequence-counter",
		SequenceCounterInvariant(k))
	ir.RegisterRoute(types.ModuleName, "commitment-shape",
		CommitmentShapeInvariant(k))
	ir.RegisterRoute(types.ModuleName, "module-accounts",
		ModuleAccountInvariant(k))
}

// AllInvariants runs all invariants of the gateway module
func AllInvariants(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := SequenceCounterInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		res, stop = CommitmentShapeInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return ModuleAccountInvariant(k)(ctx)
	}
}

// SequenceCounterInvariant checks that every open request sequence is below
// the next-sequence counter
func SequenceCounterInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)

		next := k.GetNextSequence(ctx)
		k.IterateRequests(ctx, func(sequence uint64, _ [types.CommitmentSize]byte) bool {
			if sequence >= next {
				broken = true
				msg = fmt.Sprintf(
					"open request sequence %d is not below next sequence %d",
					sequence, next,
				)
				return true
			}
			return false
		})

		return sdk.FormatInvariant(
			types.ModuleName, "sequence-counter",
			msg,
		), broken
	}
}

// CommitmentShapeInvariant checks that every ledger entry stores exactly one
// commitment digest
func CommitmentShapeInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)

		store := k.getStore(ctx)
		iterator := sdk.KVStorePrefixIterator(store, RequestKeyPrefix)
		defer iterator.Close()

		for ; iterator.Valid(); iterator.Next() {
			if len(iterator.Key()) != len(RequestKeyPrefix)+8 {
				broken = true
				msg = fmt.Sprintf("malformed request key %x", iterator.Key())
				break
			}
			if len(iterator.Value()) != types.CommitmentSize {
				broken = true
				msg = fmt.Sprintf(
					"ledger entry %x holds %d bytes, want %d",
					iterator.Key(), len(iterator.Value()), types.CommitmentSize,
				)
				break
			}
		}

		return sdk.FormatInvariant(
			types.ModuleName, "commitment-shape",
			msg,
		), broken
	}
}

// ModuleAccountInvariant checks that the fee pool module account is registered
func ModuleAccountInvariant(k *Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			broken bool
			msg    string
		)

		if addr := k.FeePoolAddress(); addr == nil {
			broken = true
			msg = fmt.Sprintf("%s module account is not registered", types.FeePoolName)
		}

		return sdk.FormatInvariant(
			types.ModuleName, "module-accounts",
			msg,
		), broken
	}
}
