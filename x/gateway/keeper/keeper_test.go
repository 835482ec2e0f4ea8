package keeper_test

import (
	"crypto/sha256"
	"fmt"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/veritas-chain/veritas/testutil/keeper"
	"github.com/veritas-chain/veritas/x/gateway/types"
)

func init() {
	// Initialize SDK config to use cosmos prefix
	config := sdk.GetConfig()
	config.SetBech32PrefixForAccount("cosmos", "cosmospub")
	config.SetBech32PrefixForValidator("cosmosvaloper", "cosmosvaloperpub")
	config.SetBech32PrefixForConsensusNode("cosmosvalcons", "cosmosvalconspub")
}

var testFunctionId = []byte("sha256-identity-v1")

// testAddr derives a deterministic account address from a name.
func testAddr(name string) sdk.AccAddress {
	h := sha256.Sum256([]byte(name))
	return sdk.AccAddress(h[:20])
}

// ============================================================================
// Collaborator stubs
// ============================================================================

// stubVerifier approves or rejects proofs by configuration and records the
// digest pairs it is asked about.
type stubVerifier struct {
	name   string
	accept bool
	err    error

	calls          int
	lastInputHash  [types.CommitmentSize]byte
	lastOutputHash [types.CommitmentSize]byte
}

func (v *stubVerifier) Identity() string { return v.name }

func (v *stubVerifier) Verify(inputHash, outputHash [types.CommitmentSize]byte, proof []byte) (bool, error) {
	v.calls++
	v.lastInputHash = inputHash
	v.lastOutputHash = outputHash
	if v.err != nil {
		return false, v.err
	}
	return v.accept, nil
}

// stubRegistry resolves stub verifiers by function id.
type stubRegistry struct {
	verifiers map[string]types.ProofVerifier
}

func newStubRegistry() *stubRegistry {
	return &stubRegistry{verifiers: map[string]types.ProofVerifier{}}
}

func (r *stubRegistry) register(functionId []byte, v types.ProofVerifier) {
	r.verifiers[string(functionId)] = v
}

func (r *stubRegistry) ResolveVerifier(functionId []byte) (types.ProofVerifier, error) {
	v, ok := r.verifiers[string(functionId)]
	if !ok {
		return nil, fmt.Errorf("no verifier for %x", functionId)
	}
	return v, nil
}

// stubHandler records deliveries and optionally fails or panics. The hooks
// run inside the handler's gas-metered context.
type stubHandler struct {
	failErr  error
	panicMsg string
	onResult func(ctx sdk.Context, method string, output, reqContext []byte) error
	onCall   func(ctx sdk.Context, data []byte) error

	results     int
	calls       int
	lastMethod  string
	lastOutput  []byte
	lastContext []byte
	lastData    []byte
}

func (h *stubHandler) DeliverResult(ctx sdk.Context, method string, output, reqContext []byte) error {
	h.results++
	h.lastMethod = method
	h.lastOutput = append([]byte(nil), output...)
	h.lastContext = append([]byte(nil), reqContext...)
	if h.panicMsg != "" {
		panic(h.panicMsg)
	}
	if h.onResult != nil {
		return h.onResult(ctx, method, output, reqContext)
	}
	return h.failErr
}

func (h *stubHandler) DeliverCall(ctx sdk.Context, data []byte) error {
	h.calls++
	h.lastData = append([]byte(nil), data...)
	if h.panicMsg != "" {
		panic(h.panicMsg)
	}
	if h.onCall != nil {
		return h.onCall(ctx, data)
	}
	return h.failErr
}

// stubRouter maps callback targets to handlers.
type stubRouter struct {
	handlers map[string]types.CallbackHandler
}

func newStubRouter() *stubRouter {
	return &stubRouter{handlers: map[string]types.CallbackHandler{}}
}

func (r *stubRouter) register(target string, h types.CallbackHandler) {
	r.handlers[target] = h
}

func (r *stubRouter) Route(target string) (types.CallbackHandler, bool) {
	h, ok := r.handlers[target]
	return h, ok
}

// stubVault records fee deposits and optionally rejects them.
type stubVault struct {
	err      error
	deposits []vaultDeposit
}

type vaultDeposit struct {
	payer  sdk.AccAddress
	amount sdk.Coin
}

func (v *stubVault) DepositOnBehalf(_ sdk.Context, payer sdk.AccAddress, amount sdk.Coin) error {
	if v.err != nil {
		return v.err
	}
	v.deposits = append(v.deposits, vaultDeposit{payer: payer, amount: amount})
	return nil
}

// ============================================================================
// Fixture
// ============================================================================

// gatewayTest is a gateway fixture with one verifier and one handler wired.
type gatewayTest struct {
	keepertest.GatewayFixture

	registry *stubRegistry
	router   *stubRouter
	vault    *stubVault
	verifier *stubVerifier
	handler  *stubHandler

	callbackTarget string
}

func setupGateway(t *testing.T) *gatewayTest {
	t.Helper()

	registry := newStubRegistry()
	router := newStubRouter()
	vault := &stubVault{}
	verifier := &stubVerifier{name: "stub-verifier", accept: true}
	handler := &stubHandler{}

	registry.register(testFunctionId, verifier)

	target := testAddr("callback-target").String()
	router.register(target, handler)

	f := keepertest.GatewayKeeper(t,
		keepertest.WithVerifierRegistry(registry),
		keepertest.WithCallbackRouter(router),
		keepertest.WithFeeVault(vault),
	)

	return &gatewayTest{
		GatewayFixture: f,
		registry:       registry,
		router:         router,
		vault:          vault,
		verifier:       verifier,
		handler:        handler,
		callbackTarget: target,
	}
}

// setScenarioParams installs unit price 10, scalar 2 and the given guardian.
func (gt *gatewayTest) setScenarioParams(t *testing.T, guardian string) types.Params {
	t.Helper()

	params := types.DefaultParams()
	params.FeeScalar = 2
	params.Guardian = guardian
	require.NoError(t, gt.Keeper.SetParams(gt.Ctx, params))
	return params
}

// newRequest builds a request routed at the wired stub handler.
func (gt *gatewayTest) newRequest() types.Request {
	return types.Request{
		FunctionId:      testFunctionId,
		Input:           []byte("block-header-4096"),
		Context:         []byte{0xca, 0xfe},
		CallbackAddress: gt.callbackTarget,
		CallbackMethod:  "handleOutput",
	}
}

// submit funds a requester and submits req under the scenario fee, returning
// the assigned sequence.
func (gt *gatewayTest) submit(t *testing.T, req types.Request) uint64 {
	t.Helper()

	requester := testAddr("requester")
	keepertest.FundAccount(t, gt.GatewayFixture, requester,
		sdk.NewCoins(sdk.NewInt64Coin(types.DefaultFeeDenom, 25_000_000)))

	sequence, _, err := gt.Keeper.SubmitRequest(gt.Ctx, requester, req, 0, requester,
		sdk.NewInt64Coin(types.DefaultFeeDenom, 25_000_000))
	require.NoError(t, err)
	return sequence
}

// ============================================================================
// Event helpers
// ============================================================================

func findEvent(events []sdk.Event, eventType string) (sdk.Event, bool) {
	for _, event := range events {
		if event.Type == eventType {
			return event, true
		}
	}
	return sdk.Event{}, false
}

func attrValue(event sdk.Event, key string) string {
	for _, attr := range event.Attributes {
		if attr.Key == key {
			return attr.Value
		}
	}
	return ""
}
