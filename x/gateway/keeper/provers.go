package keeper

import (
	"context"
	"encoding/hex"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veritas-chain/veritas/x/gateway/types"
)

// SetProverPermission grants or revokes a prover's right to fulfill requests
// for a function. An empty functionId makes the grant global. Only the
// configured guardian may change grants.
func (k *Keeper) SetProverPermission(ctx sdk.Context, guardian string, prover sdk.AccAddress, functionId []byte, allowed bool) error {
	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	if params.Guardian == "" {
		return types.ErrUnauthorized.Wrap("no guardian configured")
	}
	if guardian != params.Guardian {
		return types.ErrUnauthorized.Wrapf("expected guardian %s, got %s", params.Guardian, guardian)
	}

	store := k.getStore(ctx)
	key := GetProverKey(functionId, prover)
	if allowed {
		store.Set(key, []byte{1})
	} else {
		store.Delete(key)
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProverUpdated,
			sdk.NewAttribute(types.AttributeKeyProver, prover.String()),
			sdk.NewAttribute(types.AttributeKeyFunctionId, hex.EncodeToString(functionId)),
			sdk.NewAttribute(types.AttributeKeyAllowed, strconv.FormatBool(allowed)),
			sdk.NewAttribute(types.AttributeKeyAuthority, guardian),
		),
	)

	k.Logger(ctx).Info("prover permission updated",
		"prover", prover.String(),
		"function_id", hex.EncodeToString(functionId),
		"allowed", allowed,
	)
	return nil
}

// SetProverGrant writes a grant directly. Used by genesis import.
func (k *Keeper) SetProverGrant(ctx context.Context, prover sdk.AccAddress, functionId []byte) {
	k.getStore(ctx).Set(GetProverKey(functionId, prover), []byte{1})
}

// hasProverGrants reports whether any grant is recorded at all.
func (k *Keeper) hasProverGrants(ctx context.Context) bool {
	iterator := sdk.KVStorePrefixIterator(k.getStore(ctx), ProverKeyPrefix)
	defer iterator.Close()
	return iterator.Valid()
}

// IsProverAllowed reports whether prover may fulfill requests for functionId.
// With no grants recorded anywhere, fulfillment is permissionless; once any
// grant exists, the prover needs a global grant or one for this function.
func (k *Keeper) IsProverAllowed(ctx context.Context, prover sdk.AccAddress, functionId []byte) bool {
	if !k.hasProverGrants(ctx) {
		return true
	}
	store := k.getStore(ctx)
	if store.Has(GetProverKey(nil, prover)) {
		return true
	}
	return store.Has(GetProverKey(functionId, prover))
}

// checkProverAllowed converts a failed permission check into the module error.
func (k *Keeper) checkProverAllowed(ctx context.Context, prover sdk.AccAddress, functionId []byte) error {
	if k.IsProverAllowed(ctx, prover, functionId) {
		return nil
	}
	return types.ErrProverNotAllowed.Wrapf("prover %s, function %x", prover, functionId)
}

// IterateProverGrants walks every recorded grant. The callback returns true to
// stop early.
func (k *Keeper) IterateProverGrants(ctx context.Context, fn func(functionId []byte, prover sdk.AccAddress) bool) {
	iterator := sdk.KVStorePrefixIterator(k.getStore(ctx), ProverKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		functionId, prover := splitProverKey(iterator.Key()[len(ProverKeyPrefix):])
		if prover == nil {
			continue
		}
		if fn(functionId, prover) {
			break
		}
	}
}
