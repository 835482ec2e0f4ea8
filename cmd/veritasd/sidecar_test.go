package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veritas-chain/veritas/app"
)

func TestResolveNodeHome(t *testing.T) {
	require.Equal(t, "/tmp/a", resolveNodeHome([]string{"start", "--home=/tmp/a"}))
	require.Equal(t, "/tmp/b", resolveNodeHome([]string{"start", "--home", "/tmp/b"}))
	require.Equal(t, app.DefaultNodeHome, resolveNodeHome([]string{"start"}))

	t.Setenv("VERITAS_HOME", "/tmp/env-home")
	require.Equal(t, "/tmp/env-home", resolveNodeHome([]string{"start", "--home", "/tmp/b"}))
}

func TestLoadSidecarPorts(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, "config"), 0o755))

	appToml := `[telemetry]
metrics-port = 1234
health-port = 2345
`
	require.NoError(t, os.WriteFile(filepath.Join(home, "config", "app.toml"), []byte(appToml), 0o644))

	metricsPort, healthPort := loadSidecarPorts(home)
	require.Equal(t, 1234, metricsPort)
	require.Equal(t, 2345, healthPort)

	t.Setenv("VERITAS_METRICS_PORT", "4321")
	metricsPort, _ = loadSidecarPorts(home)
	require.Equal(t, 4321, metricsPort)
}

func TestLoadSidecarPortsDefaults(t *testing.T) {
	metricsPort, healthPort := loadSidecarPorts(t.TempDir())
	require.Equal(t, defaultMetricsPort, metricsPort)
	require.Equal(t, defaultHealthPort, healthPort)
}

func TestParsePort(t *testing.T) {
	require.Equal(t, 8080, parsePort("8080"))
	require.Equal(t, 8080, parsePort(" 8080 "))
	require.Equal(t, 0, parsePort(""))
	require.Equal(t, 0, parsePort("not-a-port"))
	require.Equal(t, 0, parsePort("70000"))
	require.Equal(t, 0, parsePort("-1"))
}

func TestSanitizeHostPort(t *testing.T) {
	require.Equal(t, "localhost:26657", sanitizeHostPort("0.0.0.0:26657"))
	require.Equal(t, "localhost:26657", sanitizeHostPort("[::]:26657"))
	require.Equal(t, "127.0.0.1:26657", sanitizeHostPort("127.0.0.1:26657"))
	require.Equal(t, "", sanitizeHostPort("  "))
}

func TestResolveRPCAddress(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, "config"), 0o755))

	configToml := `[rpc]
laddr = "tcp://0.0.0.0:26657"
`
	require.NoError(t, os.WriteFile(filepath.Join(home, "config", "config.toml"), []byte(configToml), 0o644))
	require.Equal(t, "http://localhost:26657", resolveRPCAddress(home))

	t.Setenv("VERITAS_RPC_ENDPOINT", "http://10.0.0.5:26657")
	require.Equal(t, "http://10.0.0.5:26657", resolveRPCAddress(home))
}

func TestResolveRPCAddressFallback(t *testing.T) {
	require.Equal(t, defaultRPCAddress, resolveRPCAddress(t.TempDir()))
}
