package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var nodeReady = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "veritas_node_ready",
	Help: "1 when the local RPC responds and the node is not catching up",
})

// NodeStatus is the subset of the RPC status a supervisor cares about.
type NodeStatus struct {
	CatchingUp  bool
	BlockHeight int64
}

// NodeStatusChecker reports the local node's sync state.
type NodeStatusChecker interface {
	Status(ctx context.Context) (NodeStatus, error)
}

// RPCStatusChecker implements NodeStatusChecker against the CometBFT RPC.
type RPCStatusChecker struct {
	rpcAddr string
	client  *http.Client
}

// NewRPCStatusChecker creates a checker that queries the given RPC address.
func NewRPCStatusChecker(rpcAddr string) *RPCStatusChecker {
	return &RPCStatusChecker{
		rpcAddr: rpcAddr,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// Status queries /status and extracts the sync info.
func (c *RPCStatusChecker) Status(ctx context.Context) (NodeStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/status", c.rpcAddr), nil)
	if err != nil {
		return NodeStatus{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return NodeStatus{}, fmt.Errorf("rpc unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return NodeStatus{}, fmt.Errorf("rpc returned status %d", resp.StatusCode)
	}

	var status struct {
		Result struct {
			SyncInfo struct {
				LatestBlockHeight string `json:"latest_block_height"`
				CatchingUp        bool   `json:"catching_up"`
			} `json:"sync_info"`
		} `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return NodeStatus{}, fmt.Errorf("failed to decode status response: %w", err)
	}

	height, err := strconv.ParseInt(status.Result.SyncInfo.LatestBlockHeight, 10, 64)
	if err != nil {
		return NodeStatus{}, fmt.Errorf("failed to parse block height %q: %w", status.Result.SyncInfo.LatestBlockHeight, err)
	}

	return NodeStatus{
		CatchingUp:  status.Result.SyncInfo.CatchingUp,
		BlockHeight: height,
	}, nil
}

// StartHealthServer serves /healthz (liveness) and /readyz (readiness) on the
// given port. Readiness requires the RPC to respond and the node to be caught
// up. Runs in a background goroutine.
func StartHealthServer(port int, checker NodeStatusChecker) {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		status, err := checker.Status(ctx)
		if err != nil {
			nodeReady.Set(0)
			http.Error(w, fmt.Sprintf("rpc unreachable: %v", err), http.StatusServiceUnavailable)
			return
		}
		if status.CatchingUp {
			nodeReady.Set(0)
			http.Error(w, fmt.Sprintf("node is catching up at height %d", status.BlockHeight), http.StatusServiceUnavailable)
			return
		}

		nodeReady.Set(1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "ready",
			"height": status.BlockHeight,
		})
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("health server error: %v\n", err)
		}
	}()
}
