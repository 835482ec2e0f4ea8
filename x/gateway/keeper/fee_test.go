package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/veritas-chain/veritas/x/gateway/keeper"
	"github.com/veritas-chain/veritas/x/gateway/types"
)

// TestCalculateFee_ScalarApplied tests that the fee is unit price times gas
// limit times the scalar
func TestCalculateFee_ScalarApplied(t *testing.T) {
	params := types.DefaultParams()
	params.UnitPrice = math.NewInt(10)
	params.FeeScalar = 2

	fee := keeper.CalculateFee(params, 1_000_000)
	require.Equal(t, math.NewInt(20_000_000), fee)
}

// TestCalculateFee_ZeroScalarIsIdentity tests that a zero scalar applies no
// scaling
func TestCalculateFee_ZeroScalarIsIdentity(t *testing.T) {
	params := types.DefaultParams()
	params.UnitPrice = math.NewInt(10)
	params.FeeScalar = 0

	fee := keeper.CalculateFee(params, 1_000_000)
	require.Equal(t, math.NewInt(10_000_000), fee)
}

// TestCalculateFee_Table covers degenerate price and budget combinations
func TestCalculateFee_Table(t *testing.T) {
	tests := []struct {
		name      string
		unitPrice math.Int
		scalar    uint64
		gasLimit  uint64
		want      math.Int
	}{
		{
			name:      "zero unit price",
			unitPrice: math.ZeroInt(),
			scalar:    2,
			gasLimit:  1_000_000,
			want:      math.ZeroInt(),
		},
		{
			name:      "zero gas limit",
			unitPrice: math.NewInt(10),
			scalar:    2,
			gasLimit:  0,
			want:      math.ZeroInt(),
		},
		{
			name:      "nil unit price treated as zero",
			unitPrice: math.Int{},
			scalar:    3,
			gasLimit:  500,
			want:      math.ZeroInt(),
		},
		{
			name:      "scalar one",
			unitPrice: math.NewInt(7),
			scalar:    1,
			gasLimit:  3,
			want:      math.NewInt(21),
		},
		{
			name:      "large budget",
			unitPrice: math.NewInt(1_000_000_000),
			scalar:    1_000,
			gasLimit:  1_000_000_000,
			want:      math.NewInt(1_000_000_000).Mul(math.NewInt(1_000_000_000)).Mul(math.NewInt(1_000)),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			params := types.DefaultParams()
			params.UnitPrice = tc.unitPrice
			params.FeeScalar = tc.scalar

			fee := keeper.CalculateFee(params, tc.gasLimit)
			require.True(t, tc.want.Equal(fee), "want %s, got %s", tc.want, fee)
		})
	}
}

// TestQuoteFee_DefaultGasLimit tests that a zero gas limit quote uses the
// module default budget
func TestQuoteFee_DefaultGasLimit(t *testing.T) {
	gt := setupGateway(t)
	gt.setScenarioParams(t, "")

	require.Equal(t, math.NewInt(20_000_000), gt.Keeper.QuoteFee(gt.Ctx, 0))
	require.Equal(t, math.NewInt(10_000_000), gt.Keeper.QuoteFee(gt.Ctx, 500_000))
}
