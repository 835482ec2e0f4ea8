package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/gogoproto/proto"
)

// LedgerEntry is an open request: the sequence it was assigned and the
// commitment binding every field of the request.
type LedgerEntry struct {
	Sequence   uint64 `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence"`
	Commitment []byte `protobuf:"bytes,2,opt,name=commitment,proto3" json:"commitment"`
}

func (m *LedgerEntry) Reset()         { *m = LedgerEntry{} }
func (m *LedgerEntry) String() string { return proto.CompactTextString(m) }
func (*LedgerEntry) ProtoMessage()    {}

// StoredResult is a verified call-mode output retained for polling, keyed by
// function and input digest.
type StoredResult struct {
	FunctionId []byte `protobuf:"bytes,1,opt,name=function_id,json=functionId,proto3" json:"function_id"`
	InputHash  []byte `protobuf:"bytes,2,opt,name=input_hash,json=inputHash,proto3" json:"input_hash"`
	OutputHash []byte `protobuf:"bytes,3,opt,name=output_hash,json=outputHash,proto3" json:"output_hash"`
}

func (m *StoredResult) Reset()         { *m = StoredResult{} }
func (m *StoredResult) String() string { return proto.CompactTextString(m) }
func (*StoredResult) ProtoMessage()    {}

// ProverGrant marks an address as allowed to fulfill requests. An empty
// FunctionId grants fulfillment of every function.
type ProverGrant struct {
	FunctionId []byte `protobuf:"bytes,1,opt,name=function_id,json=functionId,proto3" json:"function_id,omitempty"`
	Address    string `protobuf:"bytes,2,opt,name=address,proto3" json:"address"`
}

func (m *ProverGrant) Reset()         { *m = ProverGrant{} }
func (m *ProverGrant) String() string { return proto.CompactTextString(m) }
func (*ProverGrant) ProtoMessage()    {}

// GenesisState is the full exported state of the gateway module.
type GenesisState struct {
	Params       Params         `protobuf:"bytes,1,opt,name=params,proto3" json:"params"`
	NextSequence uint64         `protobuf:"varint,2,opt,name=next_sequence,json=nextSequence,proto3" json:"next_sequence"`
	Requests     []LedgerEntry  `protobuf:"bytes,3,rep,name=requests,proto3" json:"requests"`
	Results      []StoredResult `protobuf:"bytes,4,rep,name=results,proto3" json:"results"`
	Provers      []ProverGrant  `protobuf:"bytes,5,rep,name=provers,proto3" json:"provers"`
}

func (m *GenesisState) Reset()         { *m = GenesisState{} }
func (m *GenesisState) String() string { return proto.CompactTextString(m) }
func (*GenesisState) ProtoMessage()    {}

// DefaultGenesis returns the default genesis state for the gateway module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:       DefaultParams(),
		NextSequence: 0,
		Requests:     []LedgerEntry{},
		Results:      []StoredResult{},
		Provers:      []ProverGrant{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	seen := make(map[uint64]struct{}, len(gs.Requests))
	for _, entry := range gs.Requests {
		if entry.Sequence >= gs.NextSequence {
			return fmt.Errorf("request sequence %d not below next sequence %d", entry.Sequence, gs.NextSequence)
		}
		if _, ok := seen[entry.Sequence]; ok {
			return fmt.Errorf("duplicate request sequence %d", entry.Sequence)
		}
		seen[entry.Sequence] = struct{}{}
		if len(entry.Commitment) != CommitmentSize {
			return fmt.Errorf("request %d commitment must be %d bytes, got %d", entry.Sequence, CommitmentSize, len(entry.Commitment))
		}
	}

	seenResults := make(map[string]struct{}, len(gs.Results))
	for _, result := range gs.Results {
		if err := validateFunctionId(result.FunctionId, false); err != nil {
			return fmt.Errorf("invalid result function id: %w", err)
		}
		if len(result.InputHash) != CommitmentSize {
			return fmt.Errorf("result input hash must be %d bytes, got %d", CommitmentSize, len(result.InputHash))
		}
		if len(result.OutputHash) != CommitmentSize {
			return fmt.Errorf("result output hash must be %d bytes, got %d", CommitmentSize, len(result.OutputHash))
		}
		key := string(result.FunctionId) + "/" + string(result.InputHash)
		if _, ok := seenResults[key]; ok {
			return fmt.Errorf("duplicate result for function %x", result.FunctionId)
		}
		seenResults[key] = struct{}{}
	}

	seenProvers := make(map[string]struct{}, len(gs.Provers))
	for _, grant := range gs.Provers {
		if err := validateFunctionId(grant.FunctionId, true); err != nil {
			return fmt.Errorf("invalid prover grant function id: %w", err)
		}
		if _, err := sdk.AccAddressFromBech32(grant.Address); err != nil {
			return fmt.Errorf("invalid prover address %q: %w", grant.Address, err)
		}
		key := string(grant.FunctionId) + "/" + grant.Address
		if _, ok := seenProvers[key]; ok {
			return fmt.Errorf("duplicate prover grant for %s", grant.Address)
		}
		seenProvers[key] = struct{}{}
	}

	return nil
}
