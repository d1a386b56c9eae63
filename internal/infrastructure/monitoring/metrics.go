package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Tateev/threadapi/thread"
)

// Metrics holds all Prometheus collectors for thread lifecycle events. It
// implements thread.Observer, so wiring it into a Spawner is one option:
//
//	m := monitoring.NewMetrics(prometheus.DefaultRegisterer)
//	s := thread.NewSpawner(thread.WithObserver(m))
type Metrics struct {
	// Lifecycle counters
	SpawnsTotal   prometheus.Counter
	SpawnFailures prometheus.Counter
	JoinsTotal    prometheus.Counter
	DetachesTotal prometheus.Counter

	// Live threads
	ThreadsActive prometheus.Gauge

	// Timing
	JoinWait       prometheus.Histogram
	ThreadLifetime prometheus.Histogram
}

// NewMetrics creates and registers all collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SpawnsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "threadapi_spawns_total",
			Help: "Total number of threads started",
		}),
		SpawnFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "threadapi_spawn_failures_total",
			Help: "Total number of refused thread creations",
		}),
		JoinsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "threadapi_joins_total",
			Help: "Total number of joined threads",
		}),
		DetachesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "threadapi_detaches_total",
			Help: "Total number of detached threads",
		}),
		ThreadsActive: factory.NewGauge(prometheus.GaugeOpts{
			Name: "threadapi_threads_active",
			Help: "Number of currently live threads",
		}),
		JoinWait: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "threadapi_join_wait_seconds",
			Help:    "Time callers spent blocked in Join",
			Buckets: []float64{.0001, .001, .01, .1, .5, 1, 5, 30, 120},
		}),
		ThreadLifetime: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "threadapi_thread_lifetime_seconds",
			Help:    "Thread lifetime from start to function return",
			Buckets: []float64{.0001, .001, .01, .1, .5, 1, 5, 30, 120, 600},
		}),
	}
}

// ThreadSpawned implements thread.Observer.
func (m *Metrics) ThreadSpawned(id thread.ID) {
	m.SpawnsTotal.Inc()
	m.ThreadsActive.Inc()
}

// ThreadSpawnFailed implements thread.Observer.
func (m *Metrics) ThreadSpawnFailed(err error) {
	m.SpawnFailures.Inc()
}

// ThreadExited implements thread.Observer.
func (m *Metrics) ThreadExited(id thread.ID, lifetime time.Duration) {
	m.ThreadsActive.Dec()
	m.ThreadLifetime.Observe(lifetime.Seconds())
}

// ThreadJoined implements thread.Observer.
func (m *Metrics) ThreadJoined(id thread.ID, wait time.Duration) {
	m.JoinsTotal.Inc()
	m.JoinWait.Observe(wait.Seconds())
}

// ThreadDetached implements thread.Observer.
func (m *Metrics) ThreadDetached(id thread.ID) {
	m.DetachesTotal.Inc()
}
