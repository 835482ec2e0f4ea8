package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veritas-chain/veritas/x/gateway/types"
)

// Gas charged per byte of user-supplied payload, in addition to the flat
// message cost. Keeps oversized requests from being effectively free.
const (
	GasPerRequestByte = uint64(10)
	GasPerProofByte   = uint64(50)
)

var _ types.FeeQuoter = (*Keeper)(nil)

// CalculateFee computes the fee owed for the given work budget: unit price
// times gas limit, times the fee scalar when one is set. A zero scalar means
// no scaling is applied.
func CalculateFee(params types.Params, gasLimit uint64) math.Int {
	unitPrice := params.UnitPrice
	if unitPrice.IsNil() {
		unitPrice = math.ZeroInt()
	}

	fee := unitPrice.Mul(math.NewIntFromUint64(gasLimit))
	if params.FeeScalar != 0 {
		fee = fee.Mul(math.NewIntFromUint64(params.FeeScalar))
	}
	return fee
}

// effectiveGasLimit resolves a requested work budget, substituting the module
// default for the zero-argument form.
func effectiveGasLimit(params types.Params, gasLimit uint64) uint64 {
	if gasLimit == 0 {
		return params.DefaultGasLimit
	}
	return gasLimit
}

// QuoteFee implements types.FeeQuoter. It returns the fee a request with the
// given gas limit would owe under current parameters.
func (k *Keeper) QuoteFee(ctx sdk.Context, gasLimit uint64) math.Int {
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt()
	}
	return CalculateFee(params, effectiveGasLimit(params, gasLimit))
}
