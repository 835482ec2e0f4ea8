package cmd

import (
	"fmt"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authclient "github.com/cosmos/cosmos-sdk/x/auth/client"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

const flagHaltOnError = "halt-on-error"

// BatchBroadcastCmd returns a command that broadcasts a series of signed
// transactions stored as JSON files, in argument order. Useful for provers
// submitting many fulfillments generated offline.
func BatchBroadcastCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch-broadcast [tx-files...]",
		Short: "Broadcast multiple signed transactions in sequence",
		Long: `Broadcast a series of signed transactions stored as JSON files, in argument
order. A failed broadcast is reported and skipped unless --halt-on-error is
set.

Example:
  veritasd tx batch-broadcast fulfillments/*.json --halt-on-error
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			haltOnError, _ := cmd.Flags().GetBool(flagHaltOnError)

			bar := progressbar.NewOptions(len(args),
				progressbar.OptionSetDescription("Broadcasting transactions..."),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
			)

			type broadcastResult struct {
				file   string
				txHash string
				code   uint32
			}
			results := make([]broadcastResult, 0, len(args))

			for _, txFile := range args {
				res, err := broadcastTxFile(clientCtx, txFile)
				_ = bar.Add(1)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "\nfailed to broadcast %s: %v\n", txFile, err)
					if haltOnError {
						_ = bar.Finish()
						return fmt.Errorf("batch broadcast stopped at %s: %w", txFile, err)
					}
					continue
				}
				results = append(results, broadcastResult{file: txFile, txHash: res.TxHash, code: res.Code})
			}
			_ = bar.Finish()

			fmt.Fprintf(cmd.OutOrStdout(), "\n")
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (code %d)\n", r.file, r.txHash, r.code)
			}

			return nil
		},
	}

	cmd.Flags().Bool(flagHaltOnError, false, "stop at the first failed broadcast instead of skipping")
	flags.AddTxFlagsToCmd(cmd)

	return cmd
}

func broadcastTxFile(clientCtx client.Context, txFile string) (*sdk.TxResponse, error) {
	parsedTx, err := authclient.ReadTxFromFile(clientCtx, txFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read tx file: %w", err)
	}

	txBytes, err := clientCtx.TxConfig.TxEncoder()(parsedTx)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tx: %w", err)
	}

	res, err := clientCtx.BroadcastTx(txBytes)
	if err != nil {
		return nil, err
	}
	if res.Code != 0 {
		return res, fmt.Errorf("broadcast rejected with code %d: %s", res.Code, res.RawLog)
	}

	return res, nil
}
