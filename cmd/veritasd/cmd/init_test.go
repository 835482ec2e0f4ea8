package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cosmossdk.io/log"
	cmtcfg "github.com/cometbft/cometbft/config"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/server"
	genutiltypes "github.com/cosmos/cosmos-sdk/x/genutil/types"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/veritas-chain/veritas/app"
	gatewaytypes "github.com/veritas-chain/veritas/x/gateway/types"
)

func executeInit(t *testing.T, home string, args ...string) error {
	t.Helper()

	cfg := cmtcfg.DefaultConfig()
	cfg.SetRoot(home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, "config"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(home, "data"), 0o755))

	encodingConfig := app.MakeEncodingConfig()
	serverCtx := server.NewContext(viper.New(), cfg, log.NewNopLogger())
	clientCtx := client.Context{}.WithCodec(encodingConfig.Codec).WithHomeDir(home)

	ctx := context.WithValue(context.Background(), client.ClientContextKey, &clientCtx)
	ctx = context.WithValue(ctx, server.ServerContextKey, serverCtx)

	cmd := InitCmd(home)
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	return cmd.ExecuteContext(ctx)
}

func TestInitCmdWritesGenesisAndConfig(t *testing.T) {
	home := t.TempDir()

	require.NoError(t, executeInit(t, home, "test-node", "--chain-id", "veritas-test-1"))

	genFile := filepath.Join(home, "config", "genesis.json")
	appGenesis, err := genutiltypes.AppGenesisFromFile(genFile)
	require.NoError(t, err)
	require.Equal(t, "veritas-test-1", appGenesis.ChainID)
	require.Equal(t, int64(100_000_000), appGenesis.Consensus.Params.Block.MaxGas)
	require.Equal(t, int64(2_097_152), appGenesis.Consensus.Params.Block.MaxBytes)

	var appState map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(appGenesis.AppState, &appState))
	require.Contains(t, appState, gatewaytypes.ModuleName)

	configToml, err := os.ReadFile(filepath.Join(home, "config", "config.toml"))
	require.NoError(t, err)
	require.True(t, strings.Contains(string(configToml), `moniker = "test-node"`))
}

func TestInitCmdDefaultChainID(t *testing.T) {
	home := t.TempDir()

	require.NoError(t, executeInit(t, home, "test-node"))

	appGenesis, err := genutiltypes.AppGenesisFromFile(filepath.Join(home, "config", "genesis.json"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(appGenesis.ChainID, "veritas-local-"))
}

func TestInitCmdRefusesOverwrite(t *testing.T) {
	home := t.TempDir()

	require.NoError(t, executeInit(t, home, "test-node", "--chain-id", "veritas-test-1"))

	err := executeInit(t, home, "test-node", "--chain-id", "veritas-test-2")
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")

	require.NoError(t, executeInit(t, home, "test-node", "--chain-id", "veritas-test-2", "--overwrite"))

	appGenesis, err := genutiltypes.AppGenesisFromFile(filepath.Join(home, "config", "genesis.json"))
	require.NoError(t, err)
	require.Equal(t, "veritas-test-2", appGenesis.ChainID)
}
