package keeper_test

import (
	"encoding/hex"
	"errors"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/veritas-chain/veritas/x/gateway/types"
)

// TestTryCall_MissEmitsCallRequest tests that an unserved call emits the
// discovery event and reports not ready
func TestTryCall_MissEmitsCallRequest(t *testing.T) {
	gt := setupGateway(t)
	gt.setScenarioParams(t, "")

	caller := testAddr("caller")
	input := []byte("price-query")

	ready, output, err := gt.Keeper.TryCall(gt.Ctx, caller, testFunctionId, input)
	require.NoError(t, err)
	require.False(t, ready)
	require.Nil(t, output)

	event, found := findEvent(gt.Ctx.EventManager().Events(), types.EventTypeCallRequested)
	require.True(t, found, "call request event should be emitted")
	require.Equal(t, hex.EncodeToString(testFunctionId), attrValue(event, types.AttributeKeyFunctionId))
	require.Equal(t, hex.EncodeToString(input), attrValue(event, types.AttributeKeyInput))
	require.Equal(t, caller.String(), attrValue(event, types.AttributeKeyRequester))
}

// TestFulfillCall_StoresResult tests that a fulfillment without a callback
// target persists the digest pair for polling
func TestFulfillCall_StoresResult(t *testing.T) {
	gt := setupGateway(t)
	gt.setScenarioParams(t, "")

	prover := testAddr("prover")
	input := []byte("price-query")
	output := []byte("42000")

	inputHash, outputHash, stored, err := gt.Keeper.FulfillCall(gt.Ctx, prover,
		testFunctionId, input, output, []byte("proof"), "", nil)
	require.NoError(t, err)
	require.True(t, stored)
	require.Equal(t, types.InputDigest(input), inputHash)
	require.Equal(t, types.OutputDigest(output), outputHash)
	require.Equal(t, 1, gt.verifier.calls)

	got, found := gt.Keeper.GetResult(gt.Ctx, testFunctionId, inputHash)
	require.True(t, found)
	require.Equal(t, outputHash, got)

	event, found := findEvent(gt.Ctx.EventManager().Events(), types.EventTypeCallFulfilled)
	require.True(t, found)
	require.Equal(t, "true", attrValue(event, types.AttributeKeyStored))
}

// TestFulfillCall_DeliversVerifiedOutput tests the transient call slot: the
// handler reads the verified output back through TryCall during delivery,
// and the slot is gone once the fulfillment returns
func TestFulfillCall_DeliversVerifiedOutput(t *testing.T) {
	gt := setupGateway(t)
	gt.setScenarioParams(t, "")

	prover := testAddr("prover")
	input := []byte("price-query")
	output := []byte("42000")
	data := []byte("callback-payload")

	var servedOutput []byte
	var servedReady bool
	gt.handler.onCall = func(ctx sdk.Context, got []byte) error {
		require.Equal(t, data, got)

		var err error
		servedReady, servedOutput, err = gt.Keeper.TryCall(ctx, testAddr("caller"), testFunctionId, input)
		return err
	}

	_, _, stored, err := gt.Keeper.FulfillCall(gt.Ctx, prover,
		testFunctionId, input, output, []byte("proof"), gt.callbackTarget, data)
	require.NoError(t, err)
	require.False(t, stored)
	require.Equal(t, 1, gt.handler.calls)

	require.True(t, servedReady, "the staged output should be ready inside the callback")
	require.Equal(t, output, servedOutput)

	// The slot never survives the fulfillment.
	ready, _, err := gt.Keeper.TryCall(gt.Ctx, testAddr("caller"), testFunctionId, input)
	require.NoError(t, err)
	require.False(t, ready)

	// Nothing was persisted for polling either.
	_, found := gt.Keeper.GetResult(gt.Ctx, testFunctionId, types.InputDigest(input))
	require.False(t, found)
}

// TestFulfillCall_SlotMatchesExactInput tests that the staged output only
// serves the exact (functionId, input) pair that was proven
func TestFulfillCall_SlotMatchesExactInput(t *testing.T) {
	gt := setupGateway(t)
	gt.setScenarioParams(t, "")

	input := []byte("price-query")

	gt.handler.onCall = func(ctx sdk.Context, _ []byte) error {
		ready, _, err := gt.Keeper.TryCall(ctx, testAddr("caller"), testFunctionId, []byte("other-query"))
		if err != nil {
			return err
		}
		if ready {
			return errors.New("staged output served a different input")
		}
		return nil
	}

	_, _, _, err := gt.Keeper.FulfillCall(gt.Ctx, testAddr("prover"),
		testFunctionId, input, []byte("42000"), []byte("proof"), gt.callbackTarget, nil)
	require.NoError(t, err)
	require.Equal(t, 1, gt.handler.calls)
}

// TestFulfillCall_CallbackFailureRollsBack tests that a failing call handler
// aborts the fulfillment and leaves no slot and no stored result
func TestFulfillCall_CallbackFailureRollsBack(t *testing.T) {
	gt := setupGateway(t)
	gt.setScenarioParams(t, "")
	gt.handler.failErr = errors.New("consumer unavailable")

	input := []byte("price-query")

	_, _, _, err := gt.Keeper.FulfillCall(gt.Ctx, testAddr("prover"),
		testFunctionId, input, []byte("42000"), []byte("proof"), gt.callbackTarget, nil)
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrCallbackFailed)

	ready, _, err := gt.Keeper.TryCall(gt.Ctx, testAddr("caller"), testFunctionId, input)
	require.NoError(t, err)
	require.False(t, ready)

	events := gt.Ctx.EventManager().Events()
	_, found := findEvent(events, types.EventTypeCallFulfilled)
	require.False(t, found, "fulfillment event must roll back with the failed callback")
}

// TestFulfillCall_InvalidProof tests that a rejected proof fulfills nothing
func TestFulfillCall_InvalidProof(t *testing.T) {
	gt := setupGateway(t)
	gt.setScenarioParams(t, "")
	gt.verifier.accept = false

	input := []byte("price-query")

	_, _, _, err := gt.Keeper.FulfillCall(gt.Ctx, testAddr("prover"),
		testFunctionId, input, []byte("42000"), []byte("bad-proof"), "", nil)
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrInvalidProof)

	_, found := gt.Keeper.GetResult(gt.Ctx, testFunctionId, types.InputDigest(input))
	require.False(t, found)
}

// TestFulfillCall_CallbackDataTooLarge tests the opaque payload size cap
func TestFulfillCall_CallbackDataTooLarge(t *testing.T) {
	gt := setupGateway(t)
	params := gt.setScenarioParams(t, "")

	_, _, _, err := gt.Keeper.FulfillCall(gt.Ctx, testAddr("prover"),
		testFunctionId, []byte("in"), []byte("out"), []byte("proof"),
		gt.callbackTarget, make([]byte, params.MaxCallbackData+1))
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrInvalidRequest)
	require.Contains(t, err.Error(), "callback data exceeds")
}

// TestFulfillCall_ReentrancyRejected tests that a call handler cannot start
// another fulfillment while one is in flight
func TestFulfillCall_ReentrancyRejected(t *testing.T) {
	gt := setupGateway(t)
	gt.setScenarioParams(t, "")

	var reentryErr error
	gt.handler.onCall = func(ctx sdk.Context, _ []byte) error {
		_, _, _, reentryErr = gt.Keeper.FulfillCall(ctx, testAddr("prover"),
			testFunctionId, []byte("in"), []byte("out"), []byte("proof"), "", nil)
		return reentryErr
	}

	_, _, _, err := gt.Keeper.FulfillCall(gt.Ctx, testAddr("prover"),
		testFunctionId, []byte("in"), []byte("out"), []byte("proof"), gt.callbackTarget, nil)
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrCallbackFailed)
	require.ErrorIs(t, reentryErr, types.ErrReentrantCall)
}

// TestFulfillCall_ResultOverwrite tests that re-proving the same input
// replaces the stored digest
func TestFulfillCall_ResultOverwrite(t *testing.T) {
	gt := setupGateway(t)
	gt.setScenarioParams(t, "")

	input := []byte("price-query")

	_, first, _, err := gt.Keeper.FulfillCall(gt.Ctx, testAddr("prover"),
		testFunctionId, input, []byte("42000"), []byte("proof"), "", nil)
	require.NoError(t, err)

	_, second, _, err := gt.Keeper.FulfillCall(gt.Ctx, testAddr("prover"),
		testFunctionId, input, []byte("43000"), []byte("proof"), "", nil)
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	got, found := gt.Keeper.GetResult(gt.Ctx, testFunctionId, types.InputDigest(input))
	require.True(t, found)
	require.Equal(t, second, got)
}
