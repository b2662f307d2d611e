// Package metrics exposes Prometheus instrumentation for the seating
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "seating"

// Metrics bundles the service's collectors. A nil *Metrics is valid
// and records nothing, so wiring stays optional in tests.
type Metrics struct {
	bookingsTotal        *prometheus.CounterVec
	commitConflictsTotal prometheus.Counter
	relocationsTotal     *prometheus.CounterVec
	snapshotPushesTotal  prometheus.Counter
	writeFailuresTotal   prometheus.Counter
}

// New registers the collectors on reg (prometheus.DefaultRegisterer if
// nil).
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_total",
			Help:      "Bookings written to the preference store, by kind.",
		}, []string{"kind"}),
		commitConflictsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commit_conflicts_total",
			Help:      "Staged bookings dropped at commit time after losing a race.",
		}),
		relocationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "relocations_total",
			Help:      "Relocation workflow transitions, by outcome.",
		}, []string{"outcome"}),
		snapshotPushesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_pushes_total",
			Help:      "Snapshots received from the store watch stream.",
		}),
		writeFailuresTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "record_write_failures_total",
			Help:      "Record upserts/deletes that failed at the store.",
		}),
	}
	reg.MustRegister(
		m.bookingsTotal,
		m.commitConflictsTotal,
		m.relocationsTotal,
		m.snapshotPushesTotal,
		m.writeFailuresTotal,
	)
	return m
}

func (m *Metrics) Booking(kind string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(kind).Inc()
}

func (m *Metrics) CommitConflicts(n int) {
	if m == nil || n == 0 {
		return
	}
	m.commitConflictsTotal.Add(float64(n))
}

func (m *Metrics) Relocation(outcome string) {
	if m == nil {
		return
	}
	m.relocationsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) SnapshotPush() {
	if m == nil {
		return
	}
	m.snapshotPushesTotal.Inc()
}

func (m *Metrics) WriteFailure() {
	if m == nil {
		return
	}
	m.writeFailuresTotal.Inc()
}
