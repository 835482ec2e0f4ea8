package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// GatewayMetrics holds all Prometheus metrics for the Gateway module
type GatewayMetrics struct {
	// Request lifecycle metrics
	RequestsSubmitted prometheus.Counter
	RequestsFulfilled prometheus.Counter
	OpenRequests      prometheus.Gauge

	// Call mode metrics
	CallsRequested prometheus.Counter
	CallsFulfilled prometheus.Counter
	ResultsStored  prometheus.Counter

	// Proof metrics
	ProofsVerified        prometheus.Counter
	ProofsRejected        prometheus.Counter
	ProofVerificationTime prometheus.Histogram

	// Callback metrics
	CallbacksDelivered prometheus.Counter
	CallbacksFailed    prometheus.Counter
	CallbackGasUsed    prometheus.Histogram

	// Fee metrics
	FeesCollected *prometheus.CounterVec
	RefundsIssued *prometheus.CounterVec
}

var (
	gatewayMetricsOnce sync.Once
	gatewayMetrics     *GatewayMetrics
)

// NewGatewayMetrics creates and registers Gateway metrics (singleton pattern)
func NewGatewayMetrics() *GatewayMetrics {
	gatewayMetricsOnce.Do(func() {
		gatewayMetrics = &GatewayMetrics{
			// Request lifecycle metrics
			RequestsSubmitted: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "veritas",
					Subsystem: "gateway",
					Name:      "requests_submitted_total",
					Help:      "Total callback requests submitted",
				},
			),
			RequestsFulfilled: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "veritas",
					Subsystem: "gateway",
					Name:      "requests_fulfilled_total",
					Help:      "Total callback requests fulfilled",
				},
			),
			OpenRequests: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "veritas",
					Subsystem: "gateway",
					Name:      "open_requests",
					Help:      "Requests awaiting fulfillment",
				},
			),

			// Call mode metrics
			CallsRequested: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "veritas",
					Subsystem: "gateway",
					Name:      "calls_requested_total",
					Help:      "Total direct calls requested",
				},
			),
			CallsFulfilled: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "veritas",
					Subsystem: "gateway",
					Name:      "calls_fulfilled_total",
					Help:      "Total direct calls fulfilled",
				},
			),
			ResultsStored: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "veritas",
					Subsystem: "gateway",
					Name:      "results_stored_total",
					Help:      "Verified results persisted for polling",
				},
			),

			// Proof metrics
			ProofsVerified: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "veritas",
					Subsystem: "gateway",
					Name:      "proofs_verified_total",
					Help:      "Proofs accepted by a verifier",
				},
			),
			ProofsRejected: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "veritas",
					Subsystem: "gateway",
					Name:      "proofs_rejected_total",
					Help:      "Proofs rejected by a verifier",
				},
			),
			ProofVerificationTime: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Namespace: "veritas",
					Subsystem: "gateway",
					Name:      "proof_verification_seconds",
					Help:      "Proof verification time",
					Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
				},
			),

			// Callback metrics
			CallbacksDelivered: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "veritas",
					Subsystem: "gateway",
					Name:      "callbacks_delivered_total",
					Help:      "Callbacks delivered to handlers",
				},
			),
			CallbacksFailed: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "veritas",
					Subsystem: "gateway",
					Name:      "callbacks_failed_total",
					Help:      "Callbacks that errored or panicked",
				},
			),
			CallbackGasUsed: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Namespace: "veritas",
					Subsystem: "gateway",
					Name:      "callback_gas_used",
					Help:      "Gas consumed by callback handlers",
					Buckets:   []float64{10_000, 50_000, 100_000, 250_000, 500_000, 1_000_000},
				},
			),

			// Fee metrics
			FeesCollected: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "veritas",
					Subsystem: "gateway",
					Name:      "fees_collected_total",
					Help:      "Total fees collected",
				},
				[]string{"denom"},
			),
			RefundsIssued: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "veritas",
					Subsystem: "gateway",
					Name:      "refunds_issued_total",
					Help:      "Total overpayment refunds issued",
				},
				[]string{"denom"},
			),
		}
	})
	return gatewayMetrics
}

// GetGatewayMetrics returns the singleton Gateway metrics instance
func GetGatewayMetrics() *GatewayMetrics {
	if gatewayMetrics == nil {
		return NewGatewayMetrics()
	}
	return gatewayMetrics
}

// RecordFee records a collected fee and issued refund for a denom. Amounts
// outside the int64 range are skipped rather than distorting the counters.
func (m *GatewayMetrics) RecordFee(denom string, fee, refund int64) {
	if m == nil {
		return
	}
	if fee > 0 {
		m.FeesCollected.WithLabelValues(denom).Add(float64(fee))
	}
	if refund > 0 {
		m.RefundsIssued.WithLabelValues(denom).Add(float64(refund))
	}
}
