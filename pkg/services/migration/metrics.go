package migration

import "github.com/prometheus/client_golang/prometheus"

const (
	namespace = "winsec"
	subsystem = "migration"
)

// MetricsRegister tracks the progress of migration sweeps.
type MetricsRegister interface {
	AddResourceMigrated()
	AddResourceFailed()
	AddEntriesRewritten(n int)
}

// Metrics is a prometheus-backed MetricsRegister.
type Metrics struct {
	resourcesMigrated prometheus.Counter
	resourcesFailed   prometheus.Counter
	entriesRewritten  prometheus.Counter
}

// NewMetrics constructs migration metrics and registers them in the
// default prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		resourcesMigrated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "resources_migrated_total",
			Help:      "Number of resources whose ACL was rewritten and stored back.",
		}),
		resourcesFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "resources_failed_total",
			Help:      "Number of resources the sweep could not migrate.",
		}),
		entriesRewritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "entries_rewritten_total",
			Help:      "Number of access control entries rebound to a new SID.",
		}),
	}

	prometheus.MustRegister(m.resourcesMigrated, m.resourcesFailed, m.entriesRewritten)

	return m
}

// AddResourceMigrated increments the migrated resources counter.
func (m *Metrics) AddResourceMigrated() {
	m.resourcesMigrated.Inc()
}

// AddResourceFailed increments the failed resources counter.
func (m *Metrics) AddResourceFailed() {
	m.resourcesFailed.Inc()
}

// AddEntriesRewritten adds n to the rewritten entries counter.
func (m *Metrics) AddEntriesRewritten(n int) {
	m.entriesRewritten.Add(float64(n))
}

type nopMetrics struct{}

func (nopMetrics) AddResourceMigrated()    {}
func (nopMetrics) AddResourceFailed()      {}
func (nopMetrics) AddEntriesRewritten(int) {}
