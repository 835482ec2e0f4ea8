package main

import (
	"os"

	svrcmd "github.com/cosmos/cosmos-sdk/server/cmd"

	"github.com/veritas-chain/veritas/app"
	"github.com/veritas-chain/veritas/cmd/veritasd/cmd"
)

func main() {
	home := resolveNodeHome(os.Args[1:])
	metricsPort, healthPort := loadSidecarPorts(home)

	// Serve gateway keeper metrics on a dedicated port, next to the SDK's
	// built-in telemetry.
	StartMetricsServer(metricsPort)

	// Readiness endpoint for process supervisors, backed by the local RPC.
	StartHealthServer(healthPort, NewRPCStatusChecker(resolveRPCAddress(home)))

	rootCmd := cmd.NewRootCmd()

	if err := svrcmd.Execute(rootCmd, "", app.DefaultNodeHome); err != nil {
		os.Exit(1)
	}
}
