package types

import (
	"strings"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
)

// Test addresses for validation tests - using valid bech32 cosmos addresses
var (
	validSender    = "cosmos1zg69v7ys40x77y352eufp27daufrg4ncnjqz7q"
	validCallback  = "cosmos1fl48vsnmsdzcv85q5d2q4z5ajdha8yu34mf0eh"
	invalidAddress = "invalid"
	validCoin      = sdk.NewInt64Coin(DefaultFeeDenom, 25_000_000)
	testAuthority  string
)

func init() {
	// Initialize SDK config to use cosmos prefix
	config := sdk.GetConfig()
	config.SetBech32PrefixForAccount("cosmos", "cosmospub")
	config.SetBech32PrefixForValidator("cosmosvaloper", "cosmosvaloperpub")
	config.SetBech32PrefixForConsensusNode("cosmosvalcons", "cosmosvalconspub")
	testAuthority = authtypes.NewModuleAddress(govtypes.ModuleName).String()
}

// ============================================================================
// MsgRequestCallback Tests
// ============================================================================

func TestMsgRequestCallback_ValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     MsgRequestCallback
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid message",
			msg: MsgRequestCallback{
				Sender:         validSender,
				FunctionId:     []byte("fn-1"),
				Input:          []byte("payload"),
				CallbackMethod: "handle_result",
				Value:          validCoin,
			},
			wantErr: false,
		},
		{
			name: "valid with explicit callback and refund addresses",
			msg: MsgRequestCallback{
				Sender:          validSender,
				FunctionId:      []byte("fn-1"),
				CallbackAddress: validCallback,
				CallbackMethod:  "handle_result",
				RefundAddress:   validCallback,
				GasLimit:        500_000,
				Value:           validCoin,
			},
			wantErr: false,
		},
		{
			name: "invalid sender address",
			msg: MsgRequestCallback{
				Sender:         invalidAddress,
				FunctionId:     []byte("fn-1"),
				CallbackMethod: "handle_result",
				Value:          validCoin,
			},
			wantErr: true,
			errMsg:  "invalid sender address",
		},
		{
			name: "empty function id",
			msg: MsgRequestCallback{
				Sender:         validSender,
				FunctionId:     nil,
				CallbackMethod: "handle_result",
				Value:          validCoin,
			},
			wantErr: true,
			errMsg:  "function id cannot be empty",
		},
		{
			name: "function id too long",
			msg: MsgRequestCallback{
				Sender:         validSender,
				FunctionId:     make([]byte, MaxFunctionIdSize+1),
				CallbackMethod: "handle_result",
				Value:          validCoin,
			},
			wantErr: true,
			errMsg:  "function id exceeds",
		},
		{
			name: "empty callback method",
			msg: MsgRequestCallback{
				Sender:     validSender,
				FunctionId: []byte("fn-1"),
				Value:      validCoin,
			},
			wantErr: true,
			errMsg:  "callback method cannot be empty",
		},
		{
			name: "invalid callback address",
			msg: MsgRequestCallback{
				Sender:          validSender,
				FunctionId:      []byte("fn-1"),
				CallbackAddress: invalidAddress,
				CallbackMethod:  "handle_result",
				Value:           validCoin,
			},
			wantErr: true,
			errMsg:  "invalid callback address",
		},
		{
			name: "invalid refund address",
			msg: MsgRequestCallback{
				Sender:         validSender,
				FunctionId:     []byte("fn-1"),
				CallbackMethod: "handle_result",
				RefundAddress:  invalidAddress,
				Value:          validCoin,
			},
			wantErr: true,
			errMsg:  "invalid refund address",
		},
		{
			name: "invalid value denom",
			msg: MsgRequestCallback{
				Sender:         validSender,
				FunctionId:     []byte("fn-1"),
				CallbackMethod: "handle_result",
				Value:          sdk.Coin{Denom: "!", Amount: validCoin.Amount},
			},
			wantErr: true,
			errMsg:  "invalid value",
		},
		{
			name: "zero value is allowed",
			msg: MsgRequestCallback{
				Sender:         validSender,
				FunctionId:     []byte("fn-1"),
				CallbackMethod: "handle_result",
				Value:          sdk.NewInt64Coin(DefaultFeeDenom, 0),
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if (err != nil) != tt.wantErr {
				t.Errorf("MsgRequestCallback.ValidateBasic() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && err != nil && tt.errMsg != "" {
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("MsgRequestCallback.ValidateBasic() error = %v, want error containing %v", err, tt.errMsg)
				}
			}
		})
	}
}

func TestMsgRequestCallback_GetSigners(t *testing.T) {
	msg := MsgRequestCallback{Sender: validSender}

	signers := msg.GetSigners()
	if len(signers) != 1 {
		t.Fatalf("Expected 1 signer, got %d", len(signers))
	}

	expected, _ := sdk.AccAddressFromBech32(validSender)
	if !signers[0].Equals(expected) {
		t.Errorf("Expected signer %s, got %s", expected, signers[0])
	}
}

func TestMsgRequestCallback_TypeAndRoute(t *testing.T) {
	msg := MsgRequestCallback{}
	if msg.Type() != TypeMsgRequestCallback {
		t.Errorf("Expected type %s, got %s", TypeMsgRequestCallback, msg.Type())
	}
	if msg.Route() != RouterKey {
		t.Errorf("Expected route %s, got %s", RouterKey, msg.Route())
	}
}

func TestNewMsgRequestCallback(t *testing.T) {
	msg := NewMsgRequestCallback(validSender, []byte("fn-1"), []byte("in"), []byte("ctx"), validCallback, "handle_result", 1_000_000, validSender, validCoin)

	if msg.Sender != validSender {
		t.Errorf("Expected sender %s, got %s", validSender, msg.Sender)
	}
	if string(msg.FunctionId) != "fn-1" {
		t.Errorf("Expected function id fn-1, got %s", msg.FunctionId)
	}
	if msg.CallbackAddress != validCallback {
		t.Errorf("Expected callback address %s, got %s", validCallback, msg.CallbackAddress)
	}
	if msg.GasLimit != 1_000_000 {
		t.Errorf("Expected gas limit 1000000, got %d", msg.GasLimit)
	}
	if !msg.Value.IsEqual(validCoin) {
		t.Errorf("Expected value %s, got %s", validCoin, msg.Value)
	}
}

// ============================================================================
// MsgFulfillCallback Tests
// ============================================================================

func TestMsgFulfillCallback_ValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     MsgFulfillCallback
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid message",
			msg: MsgFulfillCallback{
				Sender:          validSender,
				Sequence:        0,
				FunctionId:      []byte("fn-1"),
				Input:           []byte("payload"),
				Output:          []byte("result"),
				Proof:           []byte("proof-bytes"),
				CallbackAddress: validCallback,
				CallbackMethod:  "handle_result",
			},
			wantErr: false,
		},
		{
			name: "invalid sender address",
			msg: MsgFulfillCallback{
				Sender:          invalidAddress,
				FunctionId:      []byte("fn-1"),
				Proof:           []byte("proof-bytes"),
				CallbackAddress: validCallback,
				CallbackMethod:  "handle_result",
			},
			wantErr: true,
			errMsg:  "invalid sender address",
		},
		{
			name: "empty function id",
			msg: MsgFulfillCallback{
				Sender:          validSender,
				Proof:           []byte("proof-bytes"),
				CallbackAddress: validCallback,
				CallbackMethod:  "handle_result",
			},
			wantErr: true,
			errMsg:  "function id cannot be empty",
		},
		{
			name: "empty proof",
			msg: MsgFulfillCallback{
				Sender:          validSender,
				FunctionId:      []byte("fn-1"),
				CallbackAddress: validCallback,
				CallbackMethod:  "handle_result",
			},
			wantErr: true,
			errMsg:  "proof cannot be empty",
		},
		{
			name: "invalid callback address",
			msg: MsgFulfillCallback{
				Sender:          validSender,
				FunctionId:      []byte("fn-1"),
				Proof:           []byte("proof-bytes"),
				CallbackAddress: invalidAddress,
				CallbackMethod:  "handle_result",
			},
			wantErr: true,
			errMsg:  "invalid callback address",
		},
		{
			name: "empty callback method",
			msg: MsgFulfillCallback{
				Sender:          validSender,
				FunctionId:      []byte("fn-1"),
				Proof:           []byte("proof-bytes"),
				CallbackAddress: validCallback,
			},
			wantErr: true,
			errMsg:  "callback method cannot be empty",
		},
		{
			name: "empty output is allowed",
			msg: MsgFulfillCallback{
				Sender:          validSender,
				FunctionId:      []byte("fn-1"),
				Proof:           []byte("proof-bytes"),
				CallbackAddress: validCallback,
				CallbackMethod:  "handle_result",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if (err != nil) != tt.wantErr {
				t.Errorf("MsgFulfillCallback.ValidateBasic() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && err != nil && tt.errMsg != "" {
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("MsgFulfillCallback.ValidateBasic() error = %v, want error containing %v", err, tt.errMsg)
				}
			}
		})
	}
}

func TestMsgFulfillCallback_Type(t *testing.T) {
	msg := MsgFulfillCallback{}
	if msg.Type() != TypeMsgFulfillCallback {
		t.Errorf("Expected type %s, got %s", TypeMsgFulfillCallback, msg.Type())
	}
}

// ============================================================================
// MsgRequestCall Tests
// ============================================================================

func TestMsgRequestCall_ValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     MsgRequestCall
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid message",
			msg:     MsgRequestCall{Sender: validSender, FunctionId: []byte("fn-1"), Input: []byte("payload")},
			wantErr: false,
		},
		{
			name:    "valid with empty input",
			msg:     MsgRequestCall{Sender: validSender, FunctionId: []byte("fn-1")},
			wantErr: false,
		},
		{
			name:    "invalid sender address",
			msg:     MsgRequestCall{Sender: invalidAddress, FunctionId: []byte("fn-1")},
			wantErr: true,
			errMsg:  "invalid sender address",
		},
		{
			name:    "empty function id",
			msg:     MsgRequestCall{Sender: validSender},
			wantErr: true,
			errMsg:  "function id cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if (err != nil) != tt.wantErr {
				t.Errorf("MsgRequestCall.ValidateBasic() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && err != nil && tt.errMsg != "" {
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("MsgRequestCall.ValidateBasic() error = %v, want error containing %v", err, tt.errMsg)
				}
			}
		})
	}
}

// ============================================================================
// MsgFulfillCall Tests
// ============================================================================

func TestMsgFulfillCall_ValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     MsgFulfillCall
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid message with callback",
			msg: MsgFulfillCall{
				Sender:          validSender,
				FunctionId:      []byte("fn-1"),
				Input:           []byte("payload"),
				Output:          []byte("result"),
				Proof:           []byte("proof-bytes"),
				CallbackAddress: validCallback,
				CallbackData:    []byte("data"),
			},
			wantErr: false,
		},
		{
			name: "valid message without callback stores the result",
			msg: MsgFulfillCall{
				Sender:     validSender,
				FunctionId: []byte("fn-1"),
				Input:      []byte("payload"),
				Output:     []byte("result"),
				Proof:      []byte("proof-bytes"),
			},
			wantErr: false,
		},
		{
			name: "invalid sender address",
			msg: MsgFulfillCall{
				Sender:     invalidAddress,
				FunctionId: []byte("fn-1"),
				Proof:      []byte("proof-bytes"),
			},
			wantErr: true,
			errMsg:  "invalid sender address",
		},
		{
			name: "empty proof",
			msg: MsgFulfillCall{
				Sender:     validSender,
				FunctionId: []byte("fn-1"),
			},
			wantErr: true,
			errMsg:  "proof cannot be empty",
		},
		{
			name: "invalid callback address",
			msg: MsgFulfillCall{
				Sender:          validSender,
				FunctionId:      []byte("fn-1"),
				Proof:           []byte("proof-bytes"),
				CallbackAddress: invalidAddress,
			},
			wantErr: true,
			errMsg:  "invalid callback address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if (err != nil) != tt.wantErr {
				t.Errorf("MsgFulfillCall.ValidateBasic() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && err != nil && tt.errMsg != "" {
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("MsgFulfillCall.ValidateBasic() error = %v, want error containing %v", err, tt.errMsg)
				}
			}
		})
	}
}

// ============================================================================
// MsgUpdateScalar Tests
// ============================================================================

func TestMsgUpdateScalar_ValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     MsgUpdateScalar
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid message",
			msg:     MsgUpdateScalar{Guardian: validSender, Scalar: 2},
			wantErr: false,
		},
		{
			name:    "zero scalar unsets scaling",
			msg:     MsgUpdateScalar{Guardian: validSender, Scalar: 0},
			wantErr: false,
		},
		{
			name:    "invalid guardian address",
			msg:     MsgUpdateScalar{Guardian: invalidAddress, Scalar: 2},
			wantErr: true,
			errMsg:  "invalid guardian address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if (err != nil) != tt.wantErr {
				t.Errorf("MsgUpdateScalar.ValidateBasic() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && err != nil && tt.errMsg != "" {
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("MsgUpdateScalar.ValidateBasic() error = %v, want error containing %v", err, tt.errMsg)
				}
			}
		})
	}
}

func TestMsgUpdateScalar_GetSigners(t *testing.T) {
	msg := MsgUpdateScalar{Guardian: validSender}

	signers := msg.GetSigners()
	if len(signers) != 1 {
		t.Fatalf("Expected 1 signer, got %d", len(signers))
	}

	expected, _ := sdk.AccAddressFromBech32(validSender)
	if !signers[0].Equals(expected) {
		t.Errorf("Expected signer %s, got %s", expected, signers[0])
	}
}

// ============================================================================
// MsgSetProverPermission Tests
// ============================================================================

func TestMsgSetProverPermission_ValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     MsgSetProverPermission
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid per-function grant",
			msg: MsgSetProverPermission{
				Guardian:   validSender,
				Prover:     validCallback,
				FunctionId: []byte("fn-1"),
				Allowed:    true,
			},
			wantErr: false,
		},
		{
			name: "valid global grant with empty function id",
			msg: MsgSetProverPermission{
				Guardian: validSender,
				Prover:   validCallback,
				Allowed:  true,
			},
			wantErr: false,
		},
		{
			name: "invalid guardian address",
			msg: MsgSetProverPermission{
				Guardian: invalidAddress,
				Prover:   validCallback,
			},
			wantErr: true,
			errMsg:  "invalid guardian address",
		},
		{
			name: "invalid prover address",
			msg: MsgSetProverPermission{
				Guardian: validSender,
				Prover:   invalidAddress,
			},
			wantErr: true,
			errMsg:  "invalid prover address",
		},
		{
			name: "function id too long",
			msg: MsgSetProverPermission{
				Guardian:   validSender,
				Prover:     validCallback,
				FunctionId: make([]byte, MaxFunctionIdSize+1),
			},
			wantErr: true,
			errMsg:  "function id exceeds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if (err != nil) != tt.wantErr {
				t.Errorf("MsgSetProverPermission.ValidateBasic() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && err != nil && tt.errMsg != "" {
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("MsgSetProverPermission.ValidateBasic() error = %v, want error containing %v", err, tt.errMsg)
				}
			}
		})
	}
}

// ============================================================================
// MsgUpdateParams Tests
// ============================================================================

func TestMsgUpdateParams_ValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     MsgUpdateParams
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid message",
			msg:     MsgUpdateParams{Authority: testAuthority, Params: DefaultParams()},
			wantErr: false,
		},
		{
			name:    "invalid authority address",
			msg:     MsgUpdateParams{Authority: invalidAddress, Params: DefaultParams()},
			wantErr: true,
			errMsg:  "invalid authority address",
		},
		{
			name: "invalid params rejected",
			msg: MsgUpdateParams{
				Authority: testAuthority,
				Params: Params{
					FeeDenom: "!",
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if (err != nil) != tt.wantErr {
				t.Errorf("MsgUpdateParams.ValidateBasic() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && err != nil && tt.errMsg != "" {
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("MsgUpdateParams.ValidateBasic() error = %v, want error containing %v", err, tt.errMsg)
				}
			}
		})
	}
}

func TestMsgUpdateParams_GetSigners(t *testing.T) {
	msg := MsgUpdateParams{Authority: testAuthority}

	signers := msg.GetSigners()
	if len(signers) != 1 {
		t.Fatalf("Expected 1 signer, got %d", len(signers))
	}

	expected := authtypes.NewModuleAddress(govtypes.ModuleName)
	if !signers[0].Equals(expected) {
		t.Errorf("Expected signer %s, got %s", expected, signers[0])
	}
}
