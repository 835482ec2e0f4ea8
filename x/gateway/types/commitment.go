package types

import (
	"crypto/sha256"
	"encoding/binary"
)

// CommitmentSize is the byte length of a request commitment.
const CommitmentSize = sha256.Size

// Request is the unit of work submitted to the gateway. Only its commitment
// hash is persisted; the full field set travels in messages and emitted
// records so a fulfiller can reproduce it bit for bit.
type Request struct {
	FunctionId      []byte `json:"function_id"`
	Input           []byte `json:"input"`
	Context         []byte `json:"context"`
	CallbackAddress string `json:"callback_address"`
	CallbackMethod  string `json:"callback_method"`
}

// Commitment returns the sha256 commitment binding all five request fields.
// Each field is prefixed with its big-endian uint64 length so that no two
// distinct field tuples share an encoding. Structurally identical requests
// intentionally collide; the ledger binds identity through the sequence
// number, not through this hash alone.
func (r Request) Commitment() [CommitmentSize]byte {
	h := sha256.New()
	writeField(h, r.FunctionId)
	writeField(h, r.Input)
	writeField(h, r.Context)
	writeField(h, []byte(r.CallbackAddress))
	writeField(h, []byte(r.CallbackMethod))

	var out [CommitmentSize]byte
	copy(out[:], h.Sum(nil))
	return out
}

func writeField(h interface{ Write([]byte) (int, error) }, field []byte) {
	var lenBz [8]byte
	binary.BigEndian.PutUint64(lenBz[:], uint64(len(field)))
	h.Write(lenBz[:])
	h.Write(field)
}

// InputDigest returns the sha256 digest of an input payload.
func InputDigest(input []byte) [CommitmentSize]byte {
	return sha256.Sum256(input)
}

// OutputDigest returns the sha256 digest of an output payload.
func OutputDigest(output []byte) [CommitmentSize]byte {
	return sha256.Sum256(output)
}
