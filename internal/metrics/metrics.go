// Package metrics records HydroQuest activity as Prometheus counters.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hydroquest"

// Drink results
const (
	DrinkAccepted    = "accepted"
	DrinkRateLimited = "rate_limited"
	DrinkIgnored     = "ignored"
)

// Sync results
const (
	SyncSuccess     = "success"
	SyncReadFailed  = "read_failed"
	SyncPushFailed  = "push_failed"
	SyncNotSignedIn = "not_signed_in"
)

// Recorder holds the counters. A nil *Recorder records nothing.
type Recorder struct {
	registry *prometheus.Registry

	sessionsStarted  prometheus.Counter
	sessionsFinished *prometheus.CounterVec
	drinks           *prometheus.CounterVec
	syncs            *prometheus.CounterVec
	bankOperations   *prometheus.CounterVec
}

// New creates a recorder on its own registry, including Go runtime and process collectors
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		sessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_started_total",
			Help:      "Total number of started hydration sessions",
		}),
		sessionsFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_finished_total",
			Help:      "Total number of finished hydration sessions by outcome",
		}, []string{"outcome"}),
		drinks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "drinks_total",
			Help:      "Total number of drink actions by result",
		}, []string{"result"}),
		syncs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "syncs_total",
			Help:      "Total number of cloud syncs by result",
		}, []string{"result"}),
		bankOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bank_operations_total",
			Help:      "Total number of bank deposits and withdrawals by result",
		}, []string{"operation", "result"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.sessionsStarted,
		r.sessionsFinished,
		r.drinks,
		r.syncs,
		r.bankOperations,
	)

	return r
}

// SessionStarted counts a started session
func (r *Recorder) SessionStarted() {
	if r == nil {
		return
	}
	r.sessionsStarted.Inc()
}

// SessionFinished counts a session ending with outcome
func (r *Recorder) SessionFinished(outcome string) {
	if r == nil {
		return
	}
	r.sessionsFinished.WithLabelValues(outcome).Inc()
}

// Drink counts a drink action
func (r *Recorder) Drink(result string) {
	if r == nil {
		return
	}
	r.drinks.WithLabelValues(result).Inc()
}

// Sync counts a sync attempt
func (r *Recorder) Sync(result string) {
	if r == nil {
		return
	}
	r.syncs.WithLabelValues(result).Inc()
}

// BankOperation counts a deposit or withdrawal
func (r *Recorder) BankOperation(operation, result string) {
	if r == nil {
		return
	}
	r.bankOperations.WithLabelValues(operation, result).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
