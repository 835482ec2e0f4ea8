package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veritas-chain/veritas/x/gateway/keeper"
)

// TestInvariants_HealthyState tests that a live module with open requests
// passes every invariant
func TestInvariants_HealthyState(t *testing.T) {
	gt := setupGateway(t)
	gt.setScenarioParams(t, "")

	gt.submit(t, gt.newRequest())
	gt.submit(t, gt.newRequest())

	msg, broken := keeper.AllInvariants(gt.Keeper)(gt.Ctx)
	require.False(t, broken, msg)
}

// TestSequenceCounterInvariant_Broken tests that an open entry at or above
// the counter trips the invariant
func TestSequenceCounterInvariant_Broken(t *testing.T) {
	gt := setupGateway(t)
	gt.setScenarioParams(t, "")

	sequence := gt.submit(t, gt.newRequest())
	gt.Keeper.SetNextSequence(gt.Ctx, sequence)

	msg, broken := keeper.SequenceCounterInvariant(gt.Keeper)(gt.Ctx)
	require.True(t, broken)
	require.Contains(t, msg, "is not below next sequence")

	_, broken = keeper.AllInvariants(gt.Keeper)(gt.Ctx)
	require.True(t, broken)
}

// TestCommitmentShapeInvariant tests ledger entry shape checking
func TestCommitmentShapeInvariant(t *testing.T) {
	gt := setupGateway(t)
	gt.setScenarioParams(t, "")

	gt.submit(t, gt.newRequest())

	msg, broken := keeper.CommitmentShapeInvariant(gt.Keeper)(gt.Ctx)
	require.False(t, broken, msg)
}

// TestModuleAccountInvariant tests that the fee pool account registered by
// the fixture satisfies the module-accounts invariant
func TestModuleAccountInvariant(t *testing.T) {
	gt := setupGateway(t)

	msg, broken := keeper.ModuleAccountInvariant(gt.Keeper)(gt.Ctx)
	require.False(t, broken, msg)
}
