package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/veritas-chain/veritas/x/gateway/types"
)

// GetQueryCmd returns the cli query commands for the gateway module
func GetQueryCmd() *cobra.Command {
	gatewayQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the gateway module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	gatewayQueryCmd.AddCommand(
		GetCmdQueryParams(),
		GetCmdQueryNextSequence(),
		GetCmdQueryRequest(),
		GetCmdQueryRequests(),
		GetCmdQueryResult(),
		GetCmdQueryProvers(),
	)

	return gatewayQueryCmd
}

// GetCmdQueryParams returns the command to query module parameters
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current gateway module parameters",
		Long: `Query the current parameters of the gateway module.

Example:
  $ veritasd query gateway params`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Params(context.Background(), &types.QueryParamsRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryNextSequence returns the command to query the next ledger
// sequence
func GetCmdQueryNextSequence() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next-sequence",
		Short: "Query the next request sequence number",
		Long: `Query the sequence the next callback request will be assigned.

Example:
  $ veritasd query gateway next-sequence`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.NextSequence(context.Background(), &types.QueryNextSequenceRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryRequest returns the command to query an open request by
// sequence
func GetCmdQueryRequest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request [sequence]",
		Short: "Query an open request by ledger sequence",
		Long: `Query the commitment recorded for an unfulfilled request.

Example:
  $ veritasd query gateway request 7`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			sequence, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid sequence: %w", err)
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Request(context.Background(), &types.QueryRequestRequest{
				Sequence: sequence,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryRequests returns the command to query all open requests
func GetCmdQueryRequests() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "requests",
		Short: "Query all open requests",
		Long: `Query all unfulfilled requests with pagination support.

Example:
  $ veritasd query gateway requests
  $ veritasd query gateway requests --limit 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			pageReq, err := client.ReadPageRequest(cmd.Flags())
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Requests(context.Background(), &types.QueryRequestsRequest{
				Pagination: pageReq,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	flags.AddPaginationFlagsToCmd(cmd, "requests")
	return cmd
}

// GetCmdQueryResult returns the command to query a stored call-mode result
func GetCmdQueryResult() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "result [function-id] [input-hash]",
		Short: "Query a stored call-mode result",
		Long: `Query the verified output hash stored for a function id and input hash.
Both arguments are hex encoded; the input hash is the sha256 of the request
input.

Example:
  $ veritasd query gateway result 68656164657273 9f86d081884c7d65...`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			functionId, err := decodeHexField("function-id", args[0])
			if err != nil {
				return err
			}

			inputHash, err := decodeHexField("input-hash", args[1])
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Result(context.Background(), &types.QueryResultRequest{
				FunctionId: functionId,
				InputHash:  inputHash,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryProvers returns the command to query prover grants
func GetCmdQueryProvers() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provers",
		Short: "Query all prover grants",
		Long: `Query the prover allowlist. An empty list means fulfillment is
permissionless.

Example:
  $ veritasd query gateway provers`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			pageReq, err := client.ReadPageRequest(cmd.Flags())
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Provers(context.Background(), &types.QueryProversRequest{
				Pagination: pageReq,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	flags.AddPaginationFlagsToCmd(cmd, "provers")
	return cmd
}
