package keeper

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	// ModuleNamespace is the namespace byte for the gateway module (0x04)
	// All store keys are prefixed with this byte to prevent collisions with other modules
	ModuleNamespace = byte(0x04)

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x04, 0x01}

	// NextSequenceKey is the key for the request sequence counter
	NextSequenceKey = []byte{0x04, 0x02}

	// RequestKeyPrefix is the prefix for open request commitments, keyed by sequence
	RequestKeyPrefix = []byte{0x04, 0x03}

	// ResultKeyPrefix is the prefix for verified call-mode outputs, keyed by
	// function id and input digest
	ResultKeyPrefix = []byte{0x04, 0x04}

	// ProverKeyPrefix is the prefix for prover grants, keyed by function id
	// and prover address. A zero-length function id marks a global grant.
	ProverKeyPrefix = []byte{0x04, 0x05}
)

// GetRequestKey returns the store key for an open request by sequence
func GetRequestKey(sequence uint64) []byte {
	seqBz := make([]byte, 8)
	binary.BigEndian.PutUint64(seqBz, sequence)
	return append(RequestKeyPrefix, seqBz...)
}

// GetResultKey returns the store key for a stored call-mode result. The
// function id is length-prefixed so ids of different lengths cannot collide.
func GetResultKey(functionId, inputHash []byte) []byte {
	key := append(ResultKeyPrefix, byte(len(functionId)))
	key = append(key, functionId...)
	return append(key, inputHash...)
}

// GetProverKey returns the store key for a prover grant
func GetProverKey(functionId []byte, prover sdk.AccAddress) []byte {
	key := append(ProverKeyPrefix, byte(len(functionId)))
	key = append(key, functionId...)
	return append(key, prover.Bytes()...)
}

// splitResultKey parses a result key without its store prefix back into the
// function id and input digest.
func splitResultKey(key []byte) (functionId, inputHash []byte) {
	if len(key) == 0 {
		return nil, nil
	}
	idLen := int(key[0])
	if len(key) < 1+idLen {
		return nil, nil
	}
	return key[1 : 1+idLen], key[1+idLen:]
}

// splitProverKey parses a prover key without its store prefix back into the
// function id and prover address.
func splitProverKey(key []byte) (functionId []byte, prover sdk.AccAddress) {
	if len(key) == 0 {
		return nil, nil
	}
	idLen := int(key[0])
	if len(key) < 1+idLen {
		return nil, nil
	}
	return key[1 : 1+idLen], sdk.AccAddress(key[1+idLen:])
}
