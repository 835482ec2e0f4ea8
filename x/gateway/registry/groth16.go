package registry

import (
	"bytes"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
	"github.com/consensys/gnark/frontend"

	"github.com/veritas-chain/veritas/x/gateway/circuits"
	"github.com/veritas-chain/veritas/x/gateway/types"
)

// DefaultMaxProofSize caps serialized Groth16 proofs. BN254 proofs are a few
// hundred bytes; anything larger is malformed.
const DefaultMaxProofSize = 1024

// Groth16Verifier checks Groth16 proofs over BN254 against a fixed verifying
// key. The proof's public witness is the (input, output) digest pair reduced
// into the scalar field, so any circuit compiled with that public interface
// can back it. It implements types.ProofVerifier.
type Groth16Verifier struct {
	name         string
	vk           groth16.VerifyingKey
	maxProofSize int
}

// NewGroth16Verifier builds a verifier from a serialized verifying key, as
// produced by groth16.Setup followed by WriteTo.
func NewGroth16Verifier(name string, vkBytes []byte) (*Groth16Verifier, error) {
	if name == "" {
		return nil, fmt.Errorf("verifier name cannot be empty")
	}

	vk := groth16.NewVerifyingKey(ecc.BN254)
	if _, err := vk.ReadFrom(bytes.NewReader(vkBytes)); err != nil {
		return nil, fmt.Errorf("deserialize verifying key: %w", err)
	}

	return &Groth16Verifier{
		name:         name,
		vk:           vk,
		maxProofSize: DefaultMaxProofSize,
	}, nil
}

// NewGroth16VerifierFromKey builds a verifier from an in-memory verifying key.
// Used when the key comes straight out of a trusted setup in the same process.
func NewGroth16VerifierFromKey(name string, vk groth16.VerifyingKey) (*Groth16Verifier, error) {
	if name == "" {
		return nil, fmt.Errorf("verifier name cannot be empty")
	}
	if vk == nil {
		return nil, fmt.Errorf("verifying key cannot be nil")
	}

	return &Groth16Verifier{
		name:         name,
		vk:           vk,
		maxProofSize: DefaultMaxProofSize,
	}, nil
}

// Identity implements types.ProofVerifier.
func (v *Groth16Verifier) Identity() string { return v.name }

// Verify implements types.ProofVerifier. A proof that fails the pairing check
// is an ordinary rejection; one that cannot be deserialized is an error.
func (v *Groth16Verifier) Verify(inputHash, outputHash [types.CommitmentSize]byte, proofBytes []byte) (bool, error) {
	if len(proofBytes) == 0 {
		return false, fmt.Errorf("empty proof")
	}
	if len(proofBytes) > v.maxProofSize {
		return false, fmt.Errorf("proof size %d exceeds max %d", len(proofBytes), v.maxProofSize)
	}

	proof := groth16.NewProof(ecc.BN254)
	if _, err := proof.ReadFrom(bytes.NewReader(proofBytes)); err != nil {
		return false, fmt.Errorf("deserialize proof: %w", err)
	}

	publicWitness, err := v.publicWitness(inputHash, outputHash)
	if err != nil {
		return false, err
	}

	if err := groth16.Verify(proof, v.vk, publicWitness); err != nil {
		return false, nil
	}
	return true, nil
}

func (v *Groth16Verifier) publicWitness(inputHash, outputHash [types.CommitmentSize]byte) (witness.Witness, error) {
	assignment := &circuits.DigestCircuit{
		InputHash:  circuits.DigestToElement(inputHash),
		OutputHash: circuits.DigestToElement(outputHash),
	}

	publicWitness, err := frontend.NewWitness(assignment, ecc.BN254.ScalarField(), frontend.PublicOnly())
	if err != nil {
		return nil, fmt.Errorf("build public witness: %w", err)
	}
	return publicWitness, nil
}
