// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-shamir.
//
// go-shamir is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

// Package metrics provides Prometheus instrumentation for go-shamir operations.
// It counts split, share and recover operations, tracks their latency and
// classifies failures so batch runs can be monitored through the
// node-exporter textfile collector.
package metrics

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// Namespace is the Prometheus namespace for all go-shamir metrics
	Namespace = "shamir"

	// Label names
	LabelOperation = "operation"
	LabelStatus    = "status"
	LabelErrorType = "error_type"

	// Status values
	StatusSuccess = "success"
	StatusError   = "error"

	// Operation names
	OpSplit   = "split"
	OpShare   = "share"
	OpRecover = "recover"
)

var (
	// Registry holds every go-shamir collector. It is separate from the
	// default registry so a textfile only carries go-shamir series.
	Registry = prometheus.NewRegistry()

	factory = promauto.With(Registry)

	// OperationsTotal tracks the total number of operations by type and status.
	// Use RecordOperation to increment this counter with the appropriate labels.
	OperationsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "operations_total",
			Help:      "Total number of secret sharing operations by type and status",
		},
		[]string{LabelOperation, LabelStatus},
	)

	// OperationDuration tracks the duration of operations in seconds.
	// Buckets cover the microsecond range of fixed-width field arithmetic.
	OperationDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of secret sharing operations in seconds",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1},
		},
		[]string{LabelOperation},
	)

	// ErrorsTotal tracks the total number of errors by operation and error type.
	// Error types are specific (e.g. "secret_too_large", "insufficient_shares").
	ErrorsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "errors_total",
			Help:      "Total number of errors by operation and error type",
		},
		[]string{LabelOperation, LabelErrorType},
	)

	// SharesIssued counts shares handed out by split operations.
	SharesIssued = factory.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "shares_issued_total",
			Help:      "Total number of shares derived from schemes",
		},
	)

	// ThresholdUsed records the threshold of every constructed scheme.
	ThresholdUsed = factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "scheme_threshold",
			Help:      "Threshold of constructed schemes",
			Buckets:   []float64{1, 2, 3, 5, 8, 16, 32, 64, 128, 255},
		},
	)

	// enabled tracks whether metrics collection is enabled
	enabled atomic.Bool
)

func init() {
	// Metrics are enabled by default
	enabled.Store(true)
}

// RecordOperation records an operation with its duration and status.
//
// Example:
//
//	start := time.Now()
//	scheme, err := shamir.FromSecret(secret, threshold)
//	status := metrics.StatusSuccess
//	if err != nil {
//	    status = metrics.StatusError
//	}
//	metrics.RecordOperation(metrics.OpSplit, status, time.Since(start).Seconds())
func RecordOperation(operation, status string, duration float64) {
	if !enabled.Load() {
		return
	}
	OperationsTotal.WithLabelValues(operation, status).Inc()
	OperationDuration.WithLabelValues(operation).Observe(duration)
}

// RecordError records an error event with the operation it occurred in.
func RecordError(operation, errorType string) {
	if !enabled.Load() {
		return
	}
	ErrorsTotal.WithLabelValues(operation, errorType).Inc()
}

// RecordShares adds n to the issued shares counter.
func RecordShares(n int) {
	if !enabled.Load() {
		return
	}
	SharesIssued.Add(float64(n))
}

// RecordThreshold observes the threshold of a newly constructed scheme.
func RecordThreshold(threshold int) {
	if !enabled.Load() {
		return
	}
	ThresholdUsed.Observe(float64(threshold))
}

// Enable enables metrics collection.
func Enable() {
	enabled.Store(true)
}

// Disable disables metrics collection.
// Useful for testing or when metrics are not desired.
func Disable() {
	enabled.Store(false)
}

// IsEnabled returns whether metrics collection is currently enabled.
func IsEnabled() bool {
	return enabled.Load()
}
