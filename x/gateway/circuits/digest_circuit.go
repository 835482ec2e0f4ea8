// Package circuits holds the gnark circuits shipped with the gateway and the
// off-circuit helpers for preparing their witnesses.
//
// Gateway verifiers expose a fixed public interface: the request's input and
// output digests, each reduced into the BN254 scalar field. Any circuit
// compiled against that interface can back a registered function; DigestCircuit
// is the reference instance.
package circuits

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	frmimc "github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/hash/mimc"
)

// DigestCircuit proves knowledge of a preimage binding the input digest to
// the output digest through MiMC: the prover knows Preimage such that
// MiMC(InputHash, Preimage) equals OutputHash. The digests enter the circuit
// reduced into the scalar field; see DigestToElement.
type DigestCircuit struct {
	Preimage frontend.Variable `gnark:",secret"`

	InputHash  frontend.Variable `gnark:",public"`
	OutputHash frontend.Variable `gnark:",public"`
}

// Define implements the gnark frontend.Circuit interface.
func (c *DigestCircuit) Define(api frontend.API) error {
	h, err := mimc.NewMiMC(api)
	if err != nil {
		return err
	}
	h.Write(c.InputHash, c.Preimage)
	api.AssertIsEqual(c.OutputHash, h.Sum())
	return nil
}

// DigestToElement reduces a 32-byte digest into the BN254 scalar field. sha256
// digests can exceed the field modulus, so both prover and verifier must apply
// the same reduction before assigning public inputs.
func DigestToElement(digest [32]byte) *big.Int {
	var e fr.Element
	e.SetBytes(digest[:])
	return e.BigInt(new(big.Int))
}

// BindDigests computes, off circuit, the output element DigestCircuit enforces
// for the given input digest and preimage, returned in the canonical 32-byte
// encoding. Provers use it to derive the output their proof will attest to.
func BindDigests(inputHash [32]byte, preimage *big.Int) [32]byte {
	var in, pre fr.Element
	in.SetBytes(inputHash[:])
	pre.SetBigInt(preimage)

	h := frmimc.NewMiMC()
	inBytes := in.Bytes()
	preBytes := pre.Bytes()
	h.Write(inBytes[:])
	h.Write(preBytes[:])

	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
