package keeper

import (
	"context"
	"encoding/hex"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veritas-chain/veritas/x/gateway/types"
)

// TryCall serves a verified output for (functionId, input) if one was staged
// by an in-flight call fulfillment. On a miss it emits the call-request
// event, which is how off-chain provers discover the wanted computation, and
// reports not ready.
func (k *Keeper) TryCall(ctx sdk.Context, caller sdk.AccAddress, functionId, input []byte) (bool, []byte, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return false, nil, err
	}
	if uint64(len(input)) > params.MaxInputSize {
		return false, nil, types.ErrInvalidRequest.Wrapf("input exceeds %d bytes", params.MaxInputSize)
	}

	ctx.GasMeter().ConsumeGas(uint64(len(input))*GasPerRequestByte, "gateway call payload")

	if output, ok := k.matchVerifiedCall(functionId, input); ok {
		return true, output, nil
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCallRequested,
			sdk.NewAttribute(types.AttributeKeyFunctionId, hex.EncodeToString(functionId)),
			sdk.NewAttribute(types.AttributeKeyInput, hex.EncodeToString(input)),
			sdk.NewAttribute(types.AttributeKeyRequester, caller.String()),
		),
	)

	k.metrics.CallsRequested.Inc()
	return false, nil, nil
}

// FulfillCall verifies a proof for (functionId, input) → output and delivers
// the result. With a callback target the verified output is staged for the
// handler to read back through TryCall during delivery; without one the
// digest pair is persisted for polling. The staged output never survives the
// call, fulfilled or not.
func (k *Keeper) FulfillCall(
	ctx sdk.Context,
	prover sdk.AccAddress,
	functionId, input, output, proof []byte,
	callbackAddress string,
	callbackData []byte,
) ([types.CommitmentSize]byte, [types.CommitmentSize]byte, bool, error) {
	var zero [types.CommitmentSize]byte

	if err := k.beginFulfillment(); err != nil {
		return zero, zero, false, err
	}
	defer k.endFulfillment()

	params, err := k.GetParams(ctx)
	if err != nil {
		return zero, zero, false, err
	}
	if uint64(len(input)) > params.MaxInputSize {
		return zero, zero, false, types.ErrInvalidRequest.Wrapf("input exceeds %d bytes", params.MaxInputSize)
	}
	if uint64(len(proof)) > params.MaxProofSize {
		return zero, zero, false, types.ErrInvalidRequest.Wrapf("proof exceeds %d bytes", params.MaxProofSize)
	}
	if uint64(len(callbackData)) > params.MaxCallbackData {
		return zero, zero, false, types.ErrInvalidRequest.Wrapf("callback data exceeds %d bytes", params.MaxCallbackData)
	}

	ctx.GasMeter().ConsumeGas(uint64(len(proof))*GasPerProofByte, "gateway proof data")

	if err := k.checkProverAllowed(ctx, prover, functionId); err != nil {
		return zero, zero, false, err
	}

	inputHash := types.InputDigest(input)
	outputHash := types.OutputDigest(output)

	if err := k.verifyProof(ctx, functionId, inputHash, outputHash, proof); err != nil {
		return zero, zero, false, err
	}

	cacheCtx, writeCache := ctx.CacheContext()

	stored := false
	if callbackAddress == "" {
		k.setResult(cacheCtx, functionId, inputHash, outputHash)
		stored = true
		k.metrics.ResultsStored.Inc()
	} else {
		handler, err := k.resolveHandler(callbackAddress)
		if err != nil {
			return zero, zero, false, err
		}

		k.stageVerifiedCall(&verifiedCall{
			functionId: functionId,
			inputHash:  inputHash,
			outputHash: outputHash,
			input:      input,
			output:     output,
		})

		err = k.runCallback(cacheCtx, params.DefaultGasLimit, func(handlerCtx sdk.Context) error {
			return handler.DeliverCall(handlerCtx, callbackData)
		})
		if err != nil {
			k.metrics.CallbacksFailed.Inc()
			return zero, zero, false, err
		}
		k.metrics.CallbacksDelivered.Inc()
	}

	cacheCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCallFulfilled,
			sdk.NewAttribute(types.AttributeKeyFunctionId, hex.EncodeToString(functionId)),
			sdk.NewAttribute(types.AttributeKeyInputHash, hex.EncodeToString(inputHash[:])),
			sdk.NewAttribute(types.AttributeKeyOutputHash, hex.EncodeToString(outputHash[:])),
			sdk.NewAttribute(types.AttributeKeyCallbackAddress, callbackAddress),
			sdk.NewAttribute(types.AttributeKeyStored, strconv.FormatBool(stored)),
			sdk.NewAttribute(types.AttributeKeyProver, prover.String()),
		),
	)

	writeCache()

	k.metrics.CallsFulfilled.Inc()
	k.Logger(ctx).Info("call fulfilled",
		"function_id", hex.EncodeToString(functionId),
		"input_hash", hex.EncodeToString(inputHash[:]),
		"stored", stored,
	)

	return inputHash, outputHash, stored, nil
}

// setResult persists a verified digest pair for polling.
func (k *Keeper) setResult(ctx context.Context, functionId []byte, inputHash, outputHash [types.CommitmentSize]byte) {
	k.getStore(ctx).Set(GetResultKey(functionId, inputHash[:]), outputHash[:])
}

// GetResult returns the verified output digest recorded for (functionId,
// inputHash), if any.
func (k *Keeper) GetResult(ctx context.Context, functionId []byte, inputHash [types.CommitmentSize]byte) ([types.CommitmentSize]byte, bool) {
	var outputHash [types.CommitmentSize]byte
	bz := k.getStore(ctx).Get(GetResultKey(functionId, inputHash[:]))
	if len(bz) != types.CommitmentSize {
		return outputHash, false
	}
	copy(outputHash[:], bz)
	return outputHash, true
}

// IterateResults walks every persisted digest pair. The callback returns true
// to stop early.
func (k *Keeper) IterateResults(ctx context.Context, fn func(functionId, inputHash, outputHash []byte) bool) {
	iterator := sdk.KVStorePrefixIterator(k.getStore(ctx), ResultKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		functionId, inputHash := splitResultKey(iterator.Key()[len(ResultKeyPrefix):])
		if inputHash == nil {
			continue
		}
		if fn(functionId, inputHash, iterator.Value()) {
			break
		}
	}
}
