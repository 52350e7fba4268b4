package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hotel"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	BookingCommands = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "booking_commands_total", Help: "Booking lifecycle commands by outcome."},
		[]string{"command", "result"},
	)
	IndexOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "search_index_operations_total", Help: "Single-record search index writes."},
		[]string{"op", "result"},
	)
	SyncRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "search_sync_runs_total", Help: "Search synchronizer runs."},
		[]string{"result"},
	)
	SyncDocuments = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "search_sync_documents_total", Help: "Documents written by the synchronizer."},
		[]string{"outcome"}, // outcome: indexed|updated
	)
	SyncDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "search_sync_duration_seconds",
			Help:    "Search synchronizer run duration seconds.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		},
	)
	TxRetries = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "db_tx_retries_total", Help: "Transactions retried after a transient conflict."},
		[]string{"reason"}, // reason: serialization|deadlock
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del|error
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, BookingCommands, IndexOperations, SyncRuns, SyncDocuments, SyncDuration, TxRetries, CacheEvents)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveCommand(command string, err error) {
	BookingCommands.WithLabelValues(command, result(err)).Inc()
}

func ObserveIndex(op string, err error) {
	IndexOperations.WithLabelValues(op, result(err)).Inc()
}

func ObserveSync(indexed, updated int, dur time.Duration, err error) {
	SyncRuns.WithLabelValues(result(err)).Inc()
	SyncDocuments.WithLabelValues("indexed").Add(float64(indexed))
	SyncDocuments.WithLabelValues("updated").Add(float64(updated))
	SyncDuration.Observe(dur.Seconds())
}

func ObserveTxRetry(reason string) {
	TxRetries.WithLabelValues(reason).Inc()
}

func ObserveCache(cache, event string) {
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func result(err error) string {
	if err == nil {
		return "ok"
	}
	return "error"
}
