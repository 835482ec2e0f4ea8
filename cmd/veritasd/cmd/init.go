package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cmtcfg "github.com/cometbft/cometbft/config"
	cmttypes "github.com/cometbft/cometbft/types"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/input"
	"github.com/cosmos/cosmos-sdk/server"
	"github.com/cosmos/cosmos-sdk/version"
	"github.com/cosmos/cosmos-sdk/x/genutil"
	genutiltypes "github.com/cosmos/cosmos-sdk/x/genutil/types"
	"github.com/cosmos/go-bip39"
	"github.com/spf13/cobra"

	"github.com/veritas-chain/veritas/app"
)

const (
	flagOverwrite = "overwrite"
	flagRecover   = "recover"
)

// InitCmd returns a command that initializes all files needed for CometBFT
// and the application. Genesis is seeded from the network defaults rather
// than the bare module defaults so a fresh node starts with uvrt staking
// and the tuned governance timings.
func InitCmd(defaultNodeHome string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [moniker]",
		Short: "Initialize private validator, p2p, genesis, and application configuration files",
		Long: `Initialize validator's and node's configuration files.

Example:
  veritasd init my-node --chain-id veritas-testnet-1 --home ~/.veritas
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx := client.GetClientContextFromCmd(cmd)
			cdc := clientCtx.Codec

			serverCtx := server.GetServerContextFromCmd(cmd)
			config := serverCtx.Config
			config.SetRoot(clientCtx.HomeDir)

			chainID, _ := cmd.Flags().GetString(flags.FlagChainID)
			if chainID == "" {
				chainID = fmt.Sprintf("veritas-local-%v", time.Now().Unix())
			}

			// Derive the node key from a mnemonic when recovering an
			// existing node identity.
			var mnemonic string
			if recoverKey, _ := cmd.Flags().GetBool(flagRecover); recoverKey {
				inBuf := bufio.NewReader(cmd.InOrStdin())
				value, err := input.GetString("Enter your bip39 mnemonic", inBuf)
				if err != nil {
					return err
				}

				mnemonic = value
				if !bip39.IsMnemonicValid(mnemonic) {
					return errors.New("invalid mnemonic")
				}
			}

			nodeID, _, err := genutil.InitializeNodeValidatorFilesFromMnemonic(config, mnemonic)
			if err != nil {
				return err
			}

			config.Moniker = args[0]

			genFile := config.GenesisFile()
			overwrite, _ := cmd.Flags().GetBool(flagOverwrite)
			if !overwrite && fileExists(genFile) {
				return fmt.Errorf("genesis.json file already exists: %v", genFile)
			}

			appState, err := json.MarshalIndent(app.NewDefaultGenesisState(cdc), "", " ")
			if err != nil {
				return fmt.Errorf("failed to marshal default genesis state: %w", err)
			}

			// Consensus limits sized for proof-carrying transactions.
			consensusParams := cmttypes.DefaultConsensusParams()
			consensusParams.Block.MaxBytes = 2_097_152 // 2 MB
			consensusParams.Block.MaxGas = 100_000_000
			consensusParams.Evidence.MaxAgeNumBlocks = 500_000 // ~23 days at 4s blocks
			consensusParams.Evidence.MaxAgeDuration = 21 * 24 * time.Hour
			consensusParams.Evidence.MaxBytes = 1_048_576 // 1 MB

			appGenesis := &genutiltypes.AppGenesis{}
			if fileExists(genFile) {
				appGenesis, err = genutiltypes.AppGenesisFromFile(genFile)
				if err != nil {
					return fmt.Errorf("failed to read genesis from %s: %w", genFile, err)
				}
			}

			appGenesis.AppName = version.AppName
			appGenesis.AppVersion = version.Version
			appGenesis.ChainID = chainID
			appGenesis.AppState = appState
			appGenesis.InitialHeight = 1
			appGenesis.Consensus = &genutiltypes.ConsensusGenesis{
				Validators: nil,
				Params:     consensusParams,
			}

			if err := genutil.ExportGenesisFile(appGenesis, genFile); err != nil {
				return fmt.Errorf("failed to export genesis file: %w", err)
			}

			// P2P and mempool sizing for sustained request and fulfillment
			// traffic.
			config.P2P.MaxNumInboundPeers = 40
			config.P2P.MaxNumOutboundPeers = 10
			config.P2P.SendRate = 5_120_000 // 5 MB/s
			config.P2P.RecvRate = 5_120_000
			config.Mempool.Size = 10000
			config.Mempool.MaxTxsBytes = 10_485_760 // 10 MB
			config.Mempool.CacheSize = 100000

			cmtcfg.WriteConfigFile(filepath.Join(config.RootDir, "config", "config.toml"), config)

			fmt.Fprintf(cmd.OutOrStdout(), "Successfully initialized chain configuration\n")
			fmt.Fprintf(cmd.OutOrStdout(), "Chain ID: %s\n", chainID)
			fmt.Fprintf(cmd.OutOrStdout(), "Moniker: %s\n", config.Moniker)
			fmt.Fprintf(cmd.OutOrStdout(), "Node ID: %s\n", nodeID)
			fmt.Fprintf(cmd.OutOrStdout(), "Genesis file: %s\n", genFile)

			return nil
		},
	}

	cmd.Flags().String(flags.FlagChainID, "", "genesis file chain-id, if left blank will be randomly created")
	cmd.Flags().Bool(flagOverwrite, false, "overwrite the genesis.json file")
	cmd.Flags().Bool(flagRecover, false, "provide seed phrase to recover existing node identity instead of creating a new one")
	cmd.Flags().String(flags.FlagHome, defaultNodeHome, "node's home directory")

	return cmd
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
