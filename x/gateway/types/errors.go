package types

import (
	errorsmod "cosmossdk.io/errors"
)

// Gateway module sentinel errors. The first five are the terminal outcomes a
// request or fulfillment can end in; the rest cover the verifier registry,
// prover permissions, reentrancy, and validation surfaces.
var (
	ErrInsufficientPayment = errorsmod.Register(ModuleName, 2, "insufficient payment for computed fee")
	ErrRefundFailed        = errorsmod.Register(ModuleName, 3, "refund transfer rejected")
	ErrRequestNotFound     = errorsmod.Register(ModuleName, 4, "no matching request commitment")
	ErrInvalidProof        = errorsmod.Register(ModuleName, 5, "proof rejected by verifier")
	ErrCallbackFailed      = errorsmod.Register(ModuleName, 6, "callback invocation failed")

	ErrVerifierNotFound = errorsmod.Register(ModuleName, 7, "no verifier registered for function")
	ErrProverNotAllowed = errorsmod.Register(ModuleName, 8, "prover not permitted for function")
	ErrReentrantCall    = errorsmod.Register(ModuleName, 9, "reentrant gateway operation rejected")
	ErrInvalidRequest   = errorsmod.Register(ModuleName, 10, "invalid request")
	ErrInvalidState     = errorsmod.Register(ModuleName, 11, "invalid gateway state")
	ErrUnauthorized     = errorsmod.Register(ModuleName, 12, "unauthorized")
	ErrVaultDeposit     = errorsmod.Register(ModuleName, 13, "fee vault deposit failed")
	ErrRouteNotFound    = errorsmod.Register(ModuleName, 14, "no callback handler for target")
	ErrInvalidGenesis   = errorsmod.Register(ModuleName, 15, "invalid genesis state")
)
