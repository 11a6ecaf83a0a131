package runtime

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/drblury/mediatorflow/internal/runtime/mediator"
)

// ClassificationMetrics exposes counters for the startup classification pass.
type ClassificationMetrics struct {
	mu sync.Mutex

	classifiedTotal *prometheus.CounterVec
	failuresTotal   prometheus.Counter

	registerer prometheus.Registerer
	registered bool
}

// NewClassificationMetrics creates the collectors. A nil registerer falls
// back to the default prometheus registerer.
func NewClassificationMetrics(registerer prometheus.Registerer) *ClassificationMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &ClassificationMetrics{
		registerer: registerer,
		classifiedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "mediatorflow",
				Subsystem: "catalog",
				Name:      "mediators_classified_total",
				Help:      "Total number of mediator signatures classified, by shape",
			},
			[]string{"shape"},
		),
		failuresTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "mediatorflow",
				Subsystem: "catalog",
				Name:      "mediator_failures_total",
				Help:      "Total number of mediator signatures rejected during classification",
			},
		),
	}
}

// Register registers the collectors. Safe to call multiple times.
func (m *ClassificationMetrics) Register() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.registered {
		return nil
	}

	for _, c := range []prometheus.Collector{m.classifiedTotal, m.failuresTotal} {
		if err := m.registerer.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return err
			}
		}
	}

	m.registered = true
	return nil
}

func (m *ClassificationMetrics) observeClassified(shape mediator.Shape) {
	m.classifiedTotal.WithLabelValues(string(shape)).Inc()
}

func (m *ClassificationMetrics) observeFailure() {
	m.failuresTotal.Inc()
}
