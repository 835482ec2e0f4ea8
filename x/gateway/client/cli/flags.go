package cli

// Flag constants for gateway CLI commands
const (
	// Request flags
	FlagInput           = "input"
	FlagContext         = "context"
	FlagCallbackAddress = "callback-address"
	FlagCallbackMethod  = "callback-method"
	FlagGasLimit        = "gas-limit"
	FlagRefundAddress   = "refund-address"
	FlagValue           = "value"

	// Fulfillment flags
	FlagOutput       = "output"
	FlagProof        = "proof"
	FlagCallbackData = "callback-data"

	// Permission flags
	FlagFunctionId = "function-id"
	FlagRevoke     = "revoke"
)
