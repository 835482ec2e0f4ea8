package types

// Gateway module event types. Emitted records are the sole mechanism by which
// off-chain provers discover pending work, so the request events carry the
// full request payload, not only its digest.
const (
	EventTypeRequestSubmitted  = "gateway_request"
	EventTypeProofFulfilled    = "gateway_proof_fulfilled"
	EventTypeCallbackFulfilled = "gateway_callback_fulfilled"
	EventTypeCallRequested     = "gateway_call_request"
	EventTypeCallFulfilled     = "gateway_call_fulfilled"
	EventTypeScalarUpdated     = "gateway_scalar_updated"
	EventTypeParamsUpdated     = "gateway_params_updated"
	EventTypeProverUpdated     = "gateway_prover_updated"
	EventTypeFeeDeposited      = "gateway_fee_deposited"
)

// Event attribute keys.
const (
	AttributeKeySequence        = "sequence"
	AttributeKeyFunctionId      = "function_id"
	AttributeKeyCommitment      = "commitment"
	AttributeKeyInput           = "input"
	AttributeKeyContext         = "context"
	AttributeKeyOutput          = "output"
	AttributeKeyInputHash       = "input_hash"
	AttributeKeyOutputHash      = "output_hash"
	AttributeKeyProofHash       = "proof_hash"
	AttributeKeyGasLimit        = "gas_limit"
	AttributeKeyFeeAmount       = "fee_amount"
	AttributeKeyRefundAmount    = "refund_amount"
	AttributeKeyRequester       = "requester"
	AttributeKeyProver          = "prover"
	AttributeKeyPayer           = "payer"
	AttributeKeyCallbackAddress = "callback_address"
	AttributeKeyCallbackMethod  = "callback_method"
	AttributeKeyStored          = "stored"
	AttributeKeyOldScalar       = "old_scalar"
	AttributeKeyNewScalar       = "new_scalar"
	AttributeKeyAuthority       = "authority"
	AttributeKeyAllowed         = "allowed"
)
