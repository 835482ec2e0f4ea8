package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/gogoproto/proto"
)

// Default parameter values.
var (
	DefaultFeeDenom        = "uvrt"
	DefaultUnitPrice       = math.NewInt(10)
	DefaultFeeScalar       = uint64(0)
	DefaultGasLimit        = uint64(1_000_000)
	DefaultMaxInputSize    = uint64(65536)
	DefaultMaxProofSize    = uint64(8192)
	DefaultMaxCallbackData = uint64(65536)
)

// Params holds the gateway module's mutable configuration. The fee scalar is
// the only field the guardian may change directly; everything else moves
// through governance.
type Params struct {
	// FeeDenom is the denom requests pay fees in.
	FeeDenom string `protobuf:"bytes,1,opt,name=fee_denom,json=feeDenom,proto3" json:"fee_denom"`
	// UnitPrice is the ambient price per unit of requested work.
	UnitPrice math.Int `protobuf:"bytes,2,opt,name=unit_price,json=unitPrice,proto3,customtype=cosmossdk.io/math.Int" json:"unit_price"`
	// FeeScalar multiplies the computed fee when non-zero. Zero means unset.
	FeeScalar uint64 `protobuf:"varint,3,opt,name=fee_scalar,json=feeScalar,proto3" json:"fee_scalar"`
	// DefaultGasLimit is the work budget applied when a request supplies none.
	DefaultGasLimit uint64 `protobuf:"varint,4,opt,name=default_gas_limit,json=defaultGasLimit,proto3" json:"default_gas_limit"`
	// Guardian may update the fee scalar and prover permissions. Empty
	// disables the guardian surface entirely.
	Guardian string `protobuf:"bytes,5,opt,name=guardian,proto3" json:"guardian"`
	// MaxInputSize bounds request input and context payloads in bytes.
	MaxInputSize uint64 `protobuf:"varint,6,opt,name=max_input_size,json=maxInputSize,proto3" json:"max_input_size"`
	// MaxProofSize bounds fulfillment proofs in bytes.
	MaxProofSize uint64 `protobuf:"varint,7,opt,name=max_proof_size,json=maxProofSize,proto3" json:"max_proof_size"`
	// MaxCallbackData bounds call-mode callback payloads in bytes.
	MaxCallbackData uint64 `protobuf:"varint,8,opt,name=max_callback_data,json=maxCallbackData,proto3" json:"max_callback_data"`
}

func (p *Params) Reset()         { *p = Params{} }
func (p *Params) String() string { return proto.CompactTextString(p) }
func (*Params) ProtoMessage()    {}

// DefaultParams returns default gateway parameters.
func DefaultParams() Params {
	return Params{
		FeeDenom:        DefaultFeeDenom,
		UnitPrice:       DefaultUnitPrice,
		FeeScalar:       DefaultFeeScalar,
		DefaultGasLimit: DefaultGasLimit,
		Guardian:        "",
		MaxInputSize:    DefaultMaxInputSize,
		MaxProofSize:    DefaultMaxProofSize,
		MaxCallbackData: DefaultMaxCallbackData,
	}
}

// Validate checks parameter ranges.
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.FeeDenom); err != nil {
		return fmt.Errorf("invalid fee denom: %w", err)
	}
	if p.UnitPrice.IsNil() || p.UnitPrice.IsNegative() {
		return fmt.Errorf("unit price must be non-negative")
	}
	if p.DefaultGasLimit == 0 {
		return fmt.Errorf("default gas limit must be positive")
	}
	if p.MaxInputSize == 0 {
		return fmt.Errorf("max input size must be positive")
	}
	if p.MaxProofSize == 0 {
		return fmt.Errorf("max proof size must be positive")
	}
	if p.MaxCallbackData == 0 {
		return fmt.Errorf("max callback data must be positive")
	}
	if p.Guardian != "" {
		if _, err := sdk.AccAddressFromBech32(p.Guardian); err != nil {
			return fmt.Errorf("invalid guardian address: %w", err)
		}
	}
	return nil
}
