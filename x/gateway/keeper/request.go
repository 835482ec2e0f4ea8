package keeper

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veritas-chain/veritas/x/gateway/types"
)

// GetNextSequence returns the sequence the next request will be assigned.
// Sequences start at zero and are never reused, even after fulfillment.
func (k *Keeper) GetNextSequence(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(NextSequenceKey)
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

// SetNextSequence seeds the sequence counter. Used by genesis import.
func (k *Keeper) SetNextSequence(ctx context.Context, sequence uint64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, sequence)
	k.getStore(ctx).Set(NextSequenceKey, bz)
}

// nextSequence assigns the next request sequence and advances the counter.
func (k *Keeper) nextSequence(ctx context.Context) uint64 {
	sequence := k.GetNextSequence(ctx)
	k.SetNextSequence(ctx, sequence+1)
	return sequence
}

// setRequestCommitment records an open request's commitment under its sequence.
func (k *Keeper) setRequestCommitment(ctx context.Context, sequence uint64, commitment [types.CommitmentSize]byte) {
	k.getStore(ctx).Set(GetRequestKey(sequence), commitment[:])
}

// GetRequestCommitment returns the commitment recorded for a sequence, if any.
func (k *Keeper) GetRequestCommitment(ctx context.Context, sequence uint64) ([types.CommitmentSize]byte, bool) {
	var commitment [types.CommitmentSize]byte
	bz := k.getStore(ctx).Get(GetRequestKey(sequence))
	if len(bz) != types.CommitmentSize {
		return commitment, false
	}
	copy(commitment[:], bz)
	return commitment, true
}

// removeRequest deletes a consumed ledger entry so a sequence cannot be
// fulfilled twice.
func (k *Keeper) removeRequest(ctx context.Context, sequence uint64) {
	k.getStore(ctx).Delete(GetRequestKey(sequence))
}

// IterateRequests walks every open request in ascending sequence order. The
// callback returns true to stop early.
func (k *Keeper) IterateRequests(ctx context.Context, fn func(sequence uint64, commitment [types.CommitmentSize]byte) bool) {
	store := k.getStore(ctx)
	iterator := sdk.KVStorePrefixIterator(store, RequestKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()
		sequence := binary.BigEndian.Uint64(key[len(RequestKeyPrefix):])

		var commitment [types.CommitmentSize]byte
		copy(commitment[:], iterator.Value())

		if fn(sequence, commitment) {
			break
		}
	}
}

// SubmitRequest charges the fee for a deferred-callback request and appends
// its commitment to the ledger. The full payment is escrowed first; the fee
// moves to the vault and the remainder returns to refundAddr. Nothing
// persists unless every transfer succeeds.
//
// Returns the assigned sequence and the fee charged.
func (k *Keeper) SubmitRequest(
	ctx sdk.Context,
	payer sdk.AccAddress,
	req types.Request,
	gasLimit uint64,
	refundAddr sdk.AccAddress,
	value sdk.Coin,
) (uint64, math.Int, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, math.ZeroInt(), err
	}

	if uint64(len(req.Input)) > params.MaxInputSize {
		return 0, math.ZeroInt(), types.ErrInvalidRequest.Wrapf("input exceeds %d bytes", params.MaxInputSize)
	}
	if uint64(len(req.Context)) > params.MaxInputSize {
		return 0, math.ZeroInt(), types.ErrInvalidRequest.Wrapf("context exceeds %d bytes", params.MaxInputSize)
	}

	ctx.GasMeter().ConsumeGas(uint64(len(req.Input)+len(req.Context))*GasPerRequestByte, "gateway request payload")

	gasLimit = effectiveGasLimit(params, gasLimit)
	fee := CalculateFee(params, gasLimit)
	commitment := req.Commitment()

	cacheCtx, writeCache := ctx.CacheContext()

	refund, err := k.collectPayment(cacheCtx, payer, refundAddr, value, fee, params.FeeDenom)
	if err != nil {
		return 0, math.ZeroInt(), err
	}

	sequence := k.nextSequence(cacheCtx)
	k.setRequestCommitment(cacheCtx, sequence, commitment)

	cacheCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRequestSubmitted,
			sdk.NewAttribute(types.AttributeKeySequence, fmt.Sprintf("%d", sequence)),
			sdk.NewAttribute(types.AttributeKeyFunctionId, hex.EncodeToString(req.FunctionId)),
			sdk.NewAttribute(types.AttributeKeyCommitment, hex.EncodeToString(commitment[:])),
			sdk.NewAttribute(types.AttributeKeyInput, hex.EncodeToString(req.Input)),
			sdk.NewAttribute(types.AttributeKeyContext, hex.EncodeToString(req.Context)),
			sdk.NewAttribute(types.AttributeKeyCallbackAddress, req.CallbackAddress),
			sdk.NewAttribute(types.AttributeKeyCallbackMethod, req.CallbackMethod),
			sdk.NewAttribute(types.AttributeKeyGasLimit, fmt.Sprintf("%d", gasLimit)),
			sdk.NewAttribute(types.AttributeKeyFeeAmount, fee.String()),
			sdk.NewAttribute(types.AttributeKeyRefundAmount, refund.String()),
			sdk.NewAttribute(types.AttributeKeyRequester, payer.String()),
		),
	)

	writeCache()

	k.metrics.RequestsSubmitted.Inc()
	k.metrics.OpenRequests.Inc()
	if fee.IsInt64() && refund.IsInt64() {
		k.metrics.RecordFee(params.FeeDenom, fee.Int64(), refund.Int64())
	}
	k.Logger(ctx).Info("request submitted",
		"sequence", sequence,
		"function_id", hex.EncodeToString(req.FunctionId),
		"fee", fee.String(),
		"refund", refund.String(),
	)

	return sequence, fee, nil
}
