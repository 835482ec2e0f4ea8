// Package registry provides the wiring-time implementations of the gateway's
// pluggable surfaces: the verifier registry resolving function identifiers to
// proof verifiers, the callback router dispatching fulfillments to consumer
// handlers, and the bank-backed fee vault.
//
// Registries follow a register-then-seal lifecycle. All routes are added while
// the application wires its modules; Seal is called before the first message
// executes, after which registration panics. This keeps the capability set
// immutable for the lifetime of the process without locking on the hot path.
package registry

import (
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/veritas-chain/veritas/x/gateway/types"
)

// FunctionRegistry maps function identifiers to proof verifiers. It implements
// types.VerifierRegistry.
type FunctionRegistry struct {
	mu        sync.RWMutex
	verifiers map[string]types.ProofVerifier
	sealed    bool
}

// NewFunctionRegistry creates an empty, unsealed registry.
func NewFunctionRegistry() *FunctionRegistry {
	return &FunctionRegistry{
		verifiers: make(map[string]types.ProofVerifier),
	}
}

// Register binds a verifier to a function identifier. Registering on a sealed
// registry panics; double registration of a function is an error.
func (r *FunctionRegistry) Register(functionId []byte, verifier types.ProofVerifier) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		panic("function registry is sealed")
	}
	if len(functionId) == 0 {
		return fmt.Errorf("function id cannot be empty")
	}
	if verifier == nil {
		return fmt.Errorf("verifier for function %x cannot be nil", functionId)
	}

	key := string(functionId)
	if _, exists := r.verifiers[key]; exists {
		return fmt.Errorf("function %x already registered", functionId)
	}
	r.verifiers[key] = verifier
	return nil
}

// Seal freezes the registry. Idempotent.
func (r *FunctionRegistry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
}

// Sealed reports whether the registry has been sealed.
func (r *FunctionRegistry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}

// ResolveVerifier implements types.VerifierRegistry.
func (r *FunctionRegistry) ResolveVerifier(functionId []byte) (types.ProofVerifier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	verifier, ok := r.verifiers[string(functionId)]
	if !ok {
		return nil, fmt.Errorf("no verifier registered for function %s", hex.EncodeToString(functionId))
	}
	return verifier, nil
}

// Functions returns the registered function identifiers. Intended for
// diagnostics; the order is unspecified.
func (r *FunctionRegistry) Functions() [][]byte {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([][]byte, 0, len(r.verifiers))
	for key := range r.verifiers {
		ids = append(ids, []byte(key))
	}
	return ids
}

// CallbackMux maps callback target addresses to their handlers. It implements
// types.CallbackRouter.
type CallbackMux struct {
	mu       sync.RWMutex
	handlers map[string]types.CallbackHandler
	sealed   bool
}

// NewCallbackMux creates an empty, unsealed router.
func NewCallbackMux() *CallbackMux {
	return &CallbackMux{
		handlers: make(map[string]types.CallbackHandler),
	}
}

// AddRoute binds a handler to a callback target address. Adding to a sealed
// router panics; double registration of a target is an error.
func (m *CallbackMux) AddRoute(target string, handler types.CallbackHandler) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sealed {
		panic("callback router is sealed")
	}
	if target == "" {
		return fmt.Errorf("callback target cannot be empty")
	}
	if handler == nil {
		return fmt.Errorf("handler for target %s cannot be nil", target)
	}
	if _, exists := m.handlers[target]; exists {
		return fmt.Errorf("target %s already registered", target)
	}
	m.handlers[target] = handler
	return nil
}

// Seal freezes the router. Idempotent.
func (m *CallbackMux) Seal() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sealed = true
}

// Route implements types.CallbackRouter.
func (m *CallbackMux) Route(target string) (types.CallbackHandler, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	handler, ok := m.handlers[target]
	return handler, ok
}
