package keeper

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veritas-chain/veritas/x/gateway/types"
)

// GetParams retrieves the gateway module parameters. Defaults apply until
// genesis or governance stores an explicit set.
func (k *Keeper) GetParams(ctx context.Context) (types.Params, error) {
	store := k.getStore(ctx)
	bz := store.Get(ParamsKey)
	if bz == nil {
		return types.DefaultParams(), nil
	}

	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		return types.Params{}, types.ErrInvalidState.Wrapf("unmarshal params: %v", err)
	}
	return params, nil
}

// SetParams validates and sets the gateway module parameters
func (k *Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	bz, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("SetParams: failed to marshal params: %w", err)
	}
	k.getStore(ctx).Set(ParamsKey, bz)
	return nil
}

// UpdateScalar replaces the fee scalar. Only the configured guardian may call
// this; every other parameter moves through governance.
func (k *Keeper) UpdateScalar(ctx sdk.Context, guardian string, scalar uint64) error {
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

	oldScalar := params.FeeScalar
	params.FeeScalar = scalar
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeScalarUpdated,
			sdk.NewAttribute(types.AttributeKeyOldScalar, strconv.FormatUint(oldScalar, 10)),
			sdk.NewAttribute(types.AttributeKeyNewScalar, strconv.FormatUint(scalar, 10)),
			sdk.NewAttribute(types.AttributeKeyAuthority, guardian),
		),
	)

	k.Logger(ctx).Info("fee scalar updated", "old", oldScalar, "new", scalar)
	return nil
}
