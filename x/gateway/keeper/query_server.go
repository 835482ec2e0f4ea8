package keeper

import (
	"context"
	"encoding/binary"

	"cosmossdk.io/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/veritas-chain/veritas/x/gateway/types"
)

type queryServer struct {
	*Keeper
}

const (
	defaultPaginationLimit = 100
	maxPaginationLimit     = 1000
)

// NewQueryServerImpl returns an implementation of the QueryServer interface
func NewQueryServerImpl(keeper *Keeper) types.QueryServer {
	return queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// sanitizePagination enforces sensible defaults and caps for paginated queries.
func sanitizePagination(p *query.PageRequest) *query.PageRequest {
	if p == nil {
		return &query.PageRequest{Limit: defaultPaginationLimit}
	}

	if p.Limit == 0 {
		p.Limit = defaultPaginationLimit
	}

	if p.Limit > maxPaginationLimit {
		p.Limit = maxPaginationLimit
	}

	return p
}

// Params queries the gateway module parameters
func (qs queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	params, err := qs.GetParams(goCtx)
	if err != nil {
		return nil, err
	}

	return &types.QueryParamsResponse{Params: params}, nil
}

// NextSequence queries the sequence the next request will be assigned
func (qs queryServer) NextSequence(goCtx context.Context, req *types.QueryNextSequenceRequest) (*types.QueryNextSequenceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	return &types.QueryNextSequenceResponse{
		NextSequence: qs.GetNextSequence(goCtx),
	}, nil
}

// Request queries the open ledger entry for a sequence
func (qs queryServer) Request(goCtx context.Context, req *types.QueryRequestRequest) (*types.QueryRequestResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	commitment, found := qs.GetRequestCommitment(goCtx, req.Sequence)
	if !found {
		return nil, status.Errorf(codes.NotFound, "no open request for sequence %d", req.Sequence)
	}

	entry := types.LedgerEntry{Sequence: req.Sequence}
	entry.Commitment = append(entry.Commitment, commitment[:]...)

	return &types.QueryRequestResponse{Request: entry}, nil
}

// Requests queries all open ledger entries
func (qs queryServer) Requests(goCtx context.Context, req *types.QueryRequestsRequest) (*types.QueryRequestsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	store := ctx.KVStore(qs.storeKey)
	requestStore := prefix.NewStore(store, RequestKeyPrefix)

	var requests []types.LedgerEntry
	pageRes, err := query.Paginate(requestStore, sanitizePagination(req.Pagination), func(key []byte, value []byte) error {
		if len(key) != 8 || len(value) != types.CommitmentSize {
			return status.Errorf(codes.Internal, "malformed ledger entry %x", key)
		}
		requests = append(requests, types.LedgerEntry{
			Sequence:   binary.BigEndian.Uint64(key),
			Commitment: append([]byte(nil), value...),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &types.QueryRequestsResponse{
		Requests:   requests,
		Pagination: pageRes,
	}, nil
}

// Result queries the persisted digest pair for (functionId, inputHash)
func (qs queryServer) Result(goCtx context.Context, req *types.QueryResultRequest) (*types.QueryResultResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	if len(req.FunctionId) == 0 {
		return nil, status.Error(codes.InvalidArgument, "function id cannot be empty")
	}
	if len(req.InputHash) != types.CommitmentSize {
		return nil, status.Errorf(codes.InvalidArgument, "input hash must be %d bytes", types.CommitmentSize)
	}

	var inputHash [types.CommitmentSize]byte
	copy(inputHash[:], req.InputHash)

	outputHash, found := qs.GetResult(goCtx, req.FunctionId, inputHash)
	if !found {
		return nil, status.Errorf(codes.NotFound, "no result for function %x", req.FunctionId)
	}

	return &types.QueryResultResponse{
		Result: types.StoredResult{
			FunctionId: append([]byte(nil), req.FunctionId...),
			InputHash:  append([]byte(nil), req.InputHash...),
			OutputHash: append([]byte(nil), outputHash[:]...),
		},
	}, nil
}

// Provers queries all recorded prover grants
func (qs queryServer) Provers(goCtx context.Context, req *types.QueryProversRequest) (*types.QueryProversResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	store := ctx.KVStore(qs.storeKey)
	proverStore := prefix.NewStore(store, ProverKeyPrefix)

	var provers []types.ProverGrant
	pageRes, err := query.Paginate(proverStore, sanitizePagination(req.Pagination), func(key []byte, value []byte) error {
		functionId, prover := splitProverKey(key)
		if prover == nil {
			return status.Errorf(codes.Internal, "malformed prover grant key %x", key)
		}
		provers = append(provers, types.ProverGrant{
			FunctionId: append([]byte(nil), functionId...),
			Address:    prover.String(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &types.QueryProversResponse{
		Provers:    provers,
		Pagination: pageRes,
	}, nil
}
