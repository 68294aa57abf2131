// Package metrics registers the Prometheus instruments for the statement
// pipeline. Counters are registered once at init via promauto; services just
// increment them.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ParseRuns counts statement parse runs by outcome
	// (success, empty, extraction_error, timeout).
	ParseRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledgerlift",
		Name:      "parse_runs_total",
		Help:      "Statement parse runs by outcome.",
	}, []string{"outcome"})

	// TransactionsExtracted counts extracted transactions by winning strategy.
	TransactionsExtracted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledgerlift",
		Name:      "transactions_extracted_total",
		Help:      "Transactions extracted, labelled by the strategy that produced them.",
	}, []string{"strategy"})

	// DuplicatesDropped counts candidates removed by deduplication.
	DuplicatesDropped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "ledgerlift",
		Name:      "duplicates_dropped_total",
		Help:      "Candidate transactions dropped as duplicates.",
	})

	// TransactionsCoded counts account-code assignments by source
	// (auto, manual).
	TransactionsCoded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ledgerlift",
		Name:      "transactions_coded_total",
		Help:      "Account code assignments by source.",
	}, []string{"source"})
)

// Handler returns the HTTP handler serving the default registry, for the
// /metrics listener.
func Handler() http.Handler {
	return promhttp.Handler()
}
