package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ProofVerifier is the verifier capability resolved per function. Verify
// reports whether the proof attests that the computation identified by the
// registered function maps inputHash to outputHash. It must not mutate
// gateway state.
type ProofVerifier interface {
	// Identity names the verifier in error and event payloads.
	Identity() string
	// Verify checks proof against the input/output digest pair. A false
	// return with nil error is an ordinary rejection; a non-nil error is a
	// malformed proof or verifier failure. Both fail the fulfillment.
	Verify(inputHash, outputHash [CommitmentSize]byte, proof []byte) (bool, error)
}

// VerifierRegistry resolves the verifier capability for a function
// identifier. Consumed read-only by the verification dispatcher.
type VerifierRegistry interface {
	ResolveVerifier(functionId []byte) (ProofVerifier, error)
}

// CallbackHandler is the entity notified when a request it originated is
// fulfilled. Deferred-mode fulfillment delivers the verified output together
// with the request's correlation context; call-mode fulfillment delivers the
// opaque payload supplied by the fulfiller. Handlers run inside the
// fulfillment's atomic unit: returning an error aborts the entire
// fulfillment.
type CallbackHandler interface {
	DeliverResult(ctx sdk.Context, method string, output, reqContext []byte) error
	DeliverCall(ctx sdk.Context, data []byte) error
}

// CallbackRouter maps callback target addresses to their handlers. Routes are
// registered at wiring time and the router is sealed before the first
// message executes.
type CallbackRouter interface {
	Route(target string) (CallbackHandler, bool)
}

// FeeVault custodies collected fees. DepositOnBehalf receives exactly the
// computed fee, already held by the gateway's fee pool account, tagged with
// the payer so the sink can attribute fees per payer. A deposit failure
// aborts the enclosing payment.
type FeeVault interface {
	DepositOnBehalf(ctx sdk.Context, payer sdk.AccAddress, amount sdk.Coin) error
}

// FeeQuoter exposes the fee calculator to other modules.
type FeeQuoter interface {
	QuoteFee(ctx sdk.Context, gasLimit uint64) math.Int
}
