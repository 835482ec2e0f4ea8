package registry

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/veritas-chain/veritas/x/gateway/types"
)

// attestationDomain separates attestation signatures from any other message
// the same key might sign.
const attestationDomain = "veritas-gateway-attestation-v1"

// AttestationVerifier accepts fulfillments countersigned by a designated
// attestor key. The proof is an Ed25519 signature over the function identifier
// and the digest pair. It implements types.ProofVerifier and serves functions
// whose results are vouched for by a trusted operator rather than proven in
// zero knowledge.
type AttestationVerifier struct {
	name       string
	functionId []byte
	publicKey  ed25519.PublicKey
}

// NewAttestationVerifier builds a verifier bound to one function and one
// attestor public key.
func NewAttestationVerifier(name string, functionId []byte, publicKey ed25519.PublicKey) (*AttestationVerifier, error) {
	if name == "" {
		return nil, fmt.Errorf("verifier name cannot be empty")
	}
	if len(functionId) == 0 {
		return nil, fmt.Errorf("function id cannot be empty")
	}
	if len(publicKey) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("public key must be %d bytes, got %d", ed25519.PublicKeySize, len(publicKey))
	}

	allZeros := true
	for _, b := range publicKey {
		if b != 0 {
			allZeros = false
			break
		}
	}
	if allZeros {
		return nil, fmt.Errorf("public key cannot be all zeros")
	}

	return &AttestationVerifier{
		name:       name,
		functionId: append([]byte(nil), functionId...),
		publicKey:  append(ed25519.PublicKey(nil), publicKey...),
	}, nil
}

// Identity implements types.ProofVerifier.
func (v *AttestationVerifier) Identity() string { return v.name }

// Verify implements types.ProofVerifier. A signature by the wrong key is an
// ordinary rejection; a proof that is not signature-shaped is an error.
func (v *AttestationVerifier) Verify(inputHash, outputHash [types.CommitmentSize]byte, proof []byte) (bool, error) {
	if len(proof) != ed25519.SignatureSize {
		return false, fmt.Errorf("attestation must be %d bytes, got %d", ed25519.SignatureSize, len(proof))
	}

	message := AttestationMessage(v.functionId, inputHash, outputHash)
	return ed25519.Verify(v.publicKey, message, proof), nil
}

// AttestationMessage builds the exact message an attestor signs for a
// fulfillment: a domain-separated digest over the function identifier and the
// input/output digest pair.
func AttestationMessage(functionId []byte, inputHash, outputHash [types.CommitmentSize]byte) []byte {
	h := sha256.New()
	h.Write([]byte(attestationDomain))

	var lenBz [8]byte
	binary.BigEndian.PutUint64(lenBz[:], uint64(len(functionId)))
	h.Write(lenBz[:])
	h.Write(functionId)
	h.Write(inputHash[:])
	h.Write(outputHash[:])
	return h.Sum(nil)
}
