package types

const (
	// ModuleName defines the module name
	ModuleName = "gateway"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey is the message route for the gateway module
	RouterKey = ModuleName

	// FeePoolName is the module account holding escrowed request value
	// between acceptance of a payment and its forwarding to the vault and
	// refund target. When no fee vault is wired, collected fees accrue here.
	FeePoolName = "gateway_fee_pool"
)

// Version is the protocol version string carried in emitted records.
const Version = "v1"
