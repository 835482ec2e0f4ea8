package cli

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/veritas-chain/veritas/x/gateway/types"
)

// GetTxCmd returns the transaction commands for the gateway module
func GetTxCmd() *cobra.Command {
	gatewayTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Gateway transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	gatewayTxCmd.AddCommand(
		CmdRequestCallback(),
		CmdFulfillCallback(),
		CmdRequestCall(),
		CmdFulfillCall(),
		CmdUpdateScalar(),
		CmdSetProverPermission(),
	)

	return gatewayTxCmd
}

func decodeHexField(name, value string) ([]byte, error) {
	if value == "" {
		return nil, nil
	}
	decoded, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("invalid hex in %s: %w", name, err)
	}
	return decoded, nil
}

// CmdRequestCallback returns a CLI command handler for submitting a
// deferred-callback request
func CmdRequestCallback() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request-callback [function-id]",
		Short: "Request an asynchronous proof with an on-chain callback",
		Long: `Request a proof for a registered function. The attached value covers the
request fee; any excess is refunded. The function id, input and context are
hex encoded.

Example:
  $ veritasd tx gateway request-callback 68656164657273 \
    --input deadbeef \
    --callback-method on_headers_proven \
    --gas-limit 1000000 \
    --value 25000000uvrt \
    --from mykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			functionId, err := decodeHexField("function-id", args[0])
			if err != nil {
				return err
			}
			if len(functionId) == 0 {
				return fmt.Errorf("function id cannot be empty")
			}

			inputStr, err := cmd.Flags().GetString(FlagInput)
			if err != nil {
				return err
			}
			input, err := decodeHexField(FlagInput, inputStr)
			if err != nil {
				return err
			}

			contextStr, err := cmd.Flags().GetString(FlagContext)
			if err != nil {
				return err
			}
			reqContext, err := decodeHexField(FlagContext, contextStr)
			if err != nil {
				return err
			}

			callbackAddress, err := cmd.Flags().GetString(FlagCallbackAddress)
			if err != nil {
				return err
			}

			callbackMethod, err := cmd.Flags().GetString(FlagCallbackMethod)
			if err != nil {
				return err
			}
			if callbackMethod == "" {
				return fmt.Errorf("callback method cannot be empty")
			}

			gasLimit, err := cmd.Flags().GetUint64(FlagGasLimit)
			if err != nil {
				return err
			}

			refundAddress, err := cmd.Flags().GetString(FlagRefundAddress)
			if err != nil {
				return err
			}

			valueStr, err := cmd.Flags().GetString(FlagValue)
			if err != nil {
				return err
			}
			value, err := sdk.ParseCoinNormalized(valueStr)
			if err != nil {
				return fmt.Errorf("invalid value: %w", err)
			}

			msg := types.NewMsgRequestCallback(
				clientCtx.GetFromAddress().String(),
				functionId,
				input,
				reqContext,
				callbackAddress,
				callbackMethod,
				gasLimit,
				refundAddress,
				value,
			)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagInput, "", "Hex-encoded function input")
	cmd.Flags().String(FlagContext, "", "Hex-encoded caller context")
	cmd.Flags().String(FlagCallbackAddress, "", "Callback target address (defaults to sender)")
	cmd.Flags().String(FlagCallbackMethod, "", "Callback method invoked on fulfillment")
	cmd.Flags().Uint64(FlagGasLimit, 0, "Requested work budget (0 uses the module default)")
	cmd.Flags().String(FlagRefundAddress, "", "Overpayment refund address (defaults to sender)")
	cmd.Flags().String(FlagValue, "", "Coins attached to cover the fee, e.g. 25000000uvrt")

	if err := cmd.MarkFlagRequired(FlagCallbackMethod); err != nil {
		return nil
	}
	if err := cmd.MarkFlagRequired(FlagValue); err != nil {
		return nil
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdFulfillCallback returns a CLI command handler for fulfilling a
// deferred-callback request
func CmdFulfillCallback() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fulfill-callback [sequence] [function-id]",
		Short: "Fulfill a pending callback request with a verified output",
		Long: `Fulfill the request at the given ledger sequence. Every field of the
original request must be restated exactly; the proof is checked against the
function's registered verifier before the callback runs.

Example:
  $ veritasd tx gateway fulfill-callback 7 68656164657273 \
    --input deadbeef \
    --output cafe0101 \
    --proof 1a2b3c4d \
    --callback-address veritas1consumer... \
    --callback-method on_headers_proven \
    --from proverkey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			sequence, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid sequence: %w", err)
			}

			functionId, err := decodeHexField("function-id", args[1])
			if err != nil {
				return err
			}

			inputStr, err := cmd.Flags().GetString(FlagInput)
			if err != nil {
				return err
			}
			input, err := decodeHexField(FlagInput, inputStr)
			if err != nil {
				return err
			}

			outputStr, err := cmd.Flags().GetString(FlagOutput)
			if err != nil {
				return err
			}
			output, err := decodeHexField(FlagOutput, outputStr)
			if err != nil {
				return err
			}

			proofStr, err := cmd.Flags().GetString(FlagProof)
			if err != nil {
				return err
			}
			proof, err := decodeHexField(FlagProof, proofStr)
			if err != nil {
				return err
			}
			if len(proof) == 0 {
				return fmt.Errorf("proof cannot be empty")
			}

			contextStr, err := cmd.Flags().GetString(FlagContext)
			if err != nil {
				return err
			}
			reqContext, err := decodeHexField(FlagContext, contextStr)
			if err != nil {
				return err
			}

			callbackAddress, err := cmd.Flags().GetString(FlagCallbackAddress)
			if err != nil {
				return err
			}

			callbackMethod, err := cmd.Flags().GetString(FlagCallbackMethod)
			if err != nil {
				return err
			}

			msg := types.NewMsgFulfillCallback(
				clientCtx.GetFromAddress().String(),
				sequence,
				functionId,
				input,
				output,
				proof,
				reqContext,
				callbackAddress,
				callbackMethod,
			)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagInput, "", "Hex-encoded input of the original request")
	cmd.Flags().String(FlagOutput, "", "Hex-encoded verified output")
	cmd.Flags().String(FlagProof, "", "Hex-encoded proof bytes")
	cmd.Flags().String(FlagContext, "", "Hex-encoded context of the original request")
	cmd.Flags().String(FlagCallbackAddress, "", "Callback target of the original request")
	cmd.Flags().String(FlagCallbackMethod, "", "Callback method of the original request")

	if err := cmd.MarkFlagRequired(FlagProof); err != nil {
		return nil
	}
	if err := cmd.MarkFlagRequired(FlagCallbackAddress); err != nil {
		return nil
	}
	if err := cmd.MarkFlagRequired(FlagCallbackMethod); err != nil {
		return nil
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRequestCall returns a CLI command handler for recording a call-mode
// request
func CmdRequestCall() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "request-call [function-id]",
		Short: "Record a call-mode request for off-chain provers",
		Long: `Record a call-mode request. Provers discover it from the emitted event and
fulfill it with fulfill-call; no fee or escrow is involved.

Example:
  $ veritasd tx gateway request-call 68656164657273 --input deadbeef --from mykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			functionId, err := decodeHexField("function-id", args[0])
			if err != nil {
				return err
			}

			inputStr, err := cmd.Flags().GetString(FlagInput)
			if err != nil {
				return err
			}
			input, err := decodeHexField(FlagInput, inputStr)
			if err != nil {
				return err
			}

			msg := types.NewMsgRequestCall(clientCtx.GetFromAddress().String(), functionId, input)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagInput, "", "Hex-encoded function input")

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdFulfillCall returns a CLI command handler for fulfilling a call-mode
// request
func CmdFulfillCall() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fulfill-call [function-id]",
		Short: "Fulfill a call-mode request with a verified output",
		Long: `Fulfill a call-mode request. With a callback address the verified output is
delivered synchronously; without one the output hash is stored for later
lookup via the result query.

Example:
  $ veritasd tx gateway fulfill-call 68656164657273 \
    --input deadbeef \
    --output cafe0101 \
    --proof 1a2b3c4d \
    --from proverkey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			functionId, err := decodeHexField("function-id", args[0])
			if err != nil {
				return err
			}

			inputStr, err := cmd.Flags().GetString(FlagInput)
			if err != nil {
				return err
			}
			input, err := decodeHexField(FlagInput, inputStr)
			if err != nil {
				return err
			}

			outputStr, err := cmd.Flags().GetString(FlagOutput)
			if err != nil {
				return err
			}
			output, err := decodeHexField(FlagOutput, outputStr)
			if err != nil {
				return err
			}

			proofStr, err := cmd.Flags().GetString(FlagProof)
			if err != nil {
				return err
			}
			proof, err := decodeHexField(FlagProof, proofStr)
			if err != nil {
				return err
			}
			if len(proof) == 0 {
				return fmt.Errorf("proof cannot be empty")
			}

			callbackAddress, err := cmd.Flags().GetString(FlagCallbackAddress)
			if err != nil {
				return err
			}

			callbackDataStr, err := cmd.Flags().GetString(FlagCallbackData)
			if err != nil {
				return err
			}
			callbackData, err := decodeHexField(FlagCallbackData, callbackDataStr)
			if err != nil {
				return err
			}

			msg := types.NewMsgFulfillCall(
				clientCtx.GetFromAddress().String(),
				functionId,
				input,
				output,
				proof,
				callbackAddress,
				callbackData,
			)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagInput, "", "Hex-encoded function input")
	cmd.Flags().String(FlagOutput, "", "Hex-encoded verified output")
	cmd.Flags().String(FlagProof, "", "Hex-encoded proof bytes")
	cmd.Flags().String(FlagCallbackAddress, "", "Synchronous delivery target (empty stores the result)")
	cmd.Flags().String(FlagCallbackData, "", "Hex-encoded payload handed to the callback")

	if err := cmd.MarkFlagRequired(FlagProof); err != nil {
		return nil
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUpdateScalar returns a CLI command handler for updating the fee scalar
func CmdUpdateScalar() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-scalar [scalar]",
		Short: "Update the fee scalar (guardian only)",
		Long: `Update the multiplier applied to quoted fees. Only the configured guardian
may submit this; zero disables scaling.

Example:
  $ veritasd tx gateway update-scalar 2 --from guardiankey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			scalar, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid scalar: %w", err)
			}

			msg := types.NewMsgUpdateScalar(clientCtx.GetFromAddress().String(), scalar)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdSetProverPermission returns a CLI command handler for granting or
// revoking a prover
func CmdSetProverPermission() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-prover-permission [prover]",
		Short: "Grant or revoke a prover allowance (guardian only)",
		Long: `Grant a prover permission to fulfill requests, or revoke it with --revoke.
Scope the grant to one function with --function-id; omit it for a global
grant. The first grant activates the allowlist.

Example:
  $ veritasd tx gateway set-prover-permission veritas1prover... \
    --function-id 68656164657273 \
    --from guardiankey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			functionIdStr, err := cmd.Flags().GetString(FlagFunctionId)
			if err != nil {
				return err
			}
			functionId, err := decodeHexField(FlagFunctionId, functionIdStr)
			if err != nil {
				return err
			}

			revoke, err := cmd.Flags().GetBool(FlagRevoke)
			if err != nil {
				return err
			}

			msg := types.NewMsgSetProverPermission(
				clientCtx.GetFromAddress().String(),
				args[0],
				functionId,
				!revoke,
			)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagFunctionId, "", "Hex-encoded function id the grant is scoped to (empty is global)")
	cmd.Flags().Bool(FlagRevoke, false, "Revoke the permission instead of granting it")

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
