package keeper

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veritas-chain/veritas/x/gateway/types"
)

// FulfillCallback settles an open deferred-callback request. The fulfiller
// resupplies every field of the original request; the recomputed commitment
// must equal the ledger entry for the sequence, otherwise the request is
// treated as unknown and the verifier is never consulted. On success the
// ledger entry is consumed, so a sequence cannot be fulfilled twice.
//
// Ledger removal, events, and the callback commit as one unit: a failed or
// panicking callback rolls the whole fulfillment back and the request stays
// open.
func (k *Keeper) FulfillCallback(
	ctx sdk.Context,
	prover sdk.AccAddress,
	sequence uint64,
	req types.Request,
	output []byte,
	proof []byte,
) ([types.CommitmentSize]byte, [types.CommitmentSize]byte, error) {
	var zero [types.CommitmentSize]byte

	if err := k.beginFulfillment(); err != nil {
		return zero, zero, err
	}
	defer k.endFulfillment()

	params, err := k.GetParams(ctx)
	if err != nil {
		return zero, zero, err
	}
	if uint64(len(proof)) > params.MaxProofSize {
		return zero, zero, types.ErrInvalidRequest.Wrapf("proof exceeds %d bytes", params.MaxProofSize)
	}

	ctx.GasMeter().ConsumeGas(uint64(len(proof))*GasPerProofByte, "gateway proof data")

	if err := k.checkProverAllowed(ctx, prover, req.FunctionId); err != nil {
		return zero, zero, err
	}

	stored, found := k.GetRequestCommitment(ctx, sequence)
	if !found {
		return zero, zero, types.ErrRequestNotFound.Wrapf("sequence %d has no open request", sequence)
	}
	commitment := req.Commitment()
	if commitment != stored {
		return zero, zero, types.ErrRequestNotFound.Wrapf(
			"commitment %x does not match ledger entry for sequence %d", commitment, sequence)
	}

	inputHash := types.InputDigest(req.Input)
	outputHash := types.OutputDigest(output)

	if err := k.verifyProof(ctx, req.FunctionId, inputHash, outputHash, proof); err != nil {
		return zero, zero, err
	}

	handler, err := k.resolveHandler(req.CallbackAddress)
	if err != nil {
		return zero, zero, err
	}

	cacheCtx, writeCache := ctx.CacheContext()

	k.removeRequest(cacheCtx, sequence)

	proofHash := sha256.Sum256(proof)
	cacheCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProofFulfilled,
			sdk.NewAttribute(types.AttributeKeySequence, fmt.Sprintf("%d", sequence)),
			sdk.NewAttribute(types.AttributeKeyFunctionId, hex.EncodeToString(req.FunctionId)),
			sdk.NewAttribute(types.AttributeKeyInputHash, hex.EncodeToString(inputHash[:])),
			sdk.NewAttribute(types.AttributeKeyOutputHash, hex.EncodeToString(outputHash[:])),
			sdk.NewAttribute(types.AttributeKeyProofHash, hex.EncodeToString(proofHash[:])),
			sdk.NewAttribute(types.AttributeKeyProver, prover.String()),
		),
	)

	err = k.runCallback(cacheCtx, params.DefaultGasLimit, func(handlerCtx sdk.Context) error {
		return handler.DeliverResult(handlerCtx, req.CallbackMethod, output, req.Context)
	})
	if err != nil {
		k.metrics.CallbacksFailed.Inc()
		return zero, zero, err
	}

	cacheCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCallbackFulfilled,
			sdk.NewAttribute(types.AttributeKeySequence, fmt.Sprintf("%d", sequence)),
			sdk.NewAttribute(types.AttributeKeyCallbackAddress, req.CallbackAddress),
			sdk.NewAttribute(types.AttributeKeyCallbackMethod, req.CallbackMethod),
			sdk.NewAttribute(types.AttributeKeyOutputHash, hex.EncodeToString(outputHash[:])),
		),
	)

	writeCache()

	k.metrics.RequestsFulfilled.Inc()
	k.metrics.CallbacksDelivered.Inc()
	k.metrics.OpenRequests.Dec()
	k.Logger(ctx).Info("request fulfilled",
		"sequence", sequence,
		"function_id", hex.EncodeToString(req.FunctionId),
		"prover", prover.String(),
	)

	return inputHash, outputHash, nil
}

// verifyProof resolves the function's verifier and checks that proof binds
// the input digest to the output digest.
func (k *Keeper) verifyProof(ctx sdk.Context, functionId []byte, inputHash, outputHash [types.CommitmentSize]byte, proof []byte) error {
	if k.registry == nil {
		return types.ErrVerifierNotFound.Wrap("no verifier registry configured")
	}
	verifier, err := k.registry.ResolveVerifier(functionId)
	if err != nil {
		return types.ErrVerifierNotFound.Wrapf("function %x: %v", functionId, err)
	}

	start := time.Now()
	ok, err := verifier.Verify(inputHash, outputHash, proof)
	k.metrics.ProofVerificationTime.Observe(time.Since(start).Seconds())

	if err != nil {
		k.metrics.ProofsRejected.Inc()
		return types.ErrInvalidProof.Wrapf("verifier %s: input %x, output %x: %v",
			verifier.Identity(), inputHash, outputHash, err)
	}
	if !ok {
		k.metrics.ProofsRejected.Inc()
		return types.ErrInvalidProof.Wrapf("verifier %s rejected proof for input %x, output %x",
			verifier.Identity(), inputHash, outputHash)
	}

	k.metrics.ProofsVerified.Inc()
	return nil
}
