package keeper

import (
	"bytes"

	"github.com/veritas-chain/veritas/x/gateway/types"
)

// verifiedCall is the transient record of a call-mode fulfillment whose proof
// was just accepted. It exists only while the fulfillment's callback runs, so
// the callee can read the verified output without any persistent state.
type verifiedCall struct {
	functionId []byte
	inputHash  [types.CommitmentSize]byte
	outputHash [types.CommitmentSize]byte
	input      []byte
	output     []byte
}

// beginFulfillment marks a fulfillment as in flight. A fulfillment entered
// while another is executing is reentrancy through a callback and is
// rejected before any verification work happens.
func (k *Keeper) beginFulfillment() error {
	k.callMu.Lock()
	defer k.callMu.Unlock()

	if k.fulfilling {
		return types.ErrReentrantCall.Wrap("fulfillment already in flight")
	}
	k.fulfilling = true
	return nil
}

// endFulfillment clears the in-flight marker and the verified-call slot. It
// runs on every exit path, success or failure.
func (k *Keeper) endFulfillment() {
	k.callMu.Lock()
	defer k.callMu.Unlock()

	k.fulfilling = false
	k.call = nil
}

// stageVerifiedCall exposes a verified result to the callback about to run.
func (k *Keeper) stageVerifiedCall(call *verifiedCall) {
	k.callMu.Lock()
	defer k.callMu.Unlock()

	k.call = call
}

// matchVerifiedCall returns the staged output when the given function and
// input identify the call currently being fulfilled.
func (k *Keeper) matchVerifiedCall(functionId, input []byte) ([]byte, bool) {
	k.callMu.Lock()
	defer k.callMu.Unlock()

	if k.call == nil {
		return nil, false
	}
	if !bytes.Equal(k.call.functionId, functionId) {
		return nil, false
	}
	if k.call.inputHash != types.InputDigest(input) {
		return nil, false
	}

	output := make([]byte, len(k.call.output))
	copy(output, k.call.output)
	return output, true
}
