package parr

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	pushes      prometheus.Counter
	grows       prometheus.Counter
	compactions prometheus.Counter
	length      prometheus.Gauge
	capacity    prometheus.Gauge
}

func newMetrics(registerer prometheus.Registerer, namespace, subsystem string) *metrics {
	registerer = prometheus.WrapRegistererWith(
		prometheus.Labels{"component": "parr"},
		registerer,
	)

	m := metrics{
		pushes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "pushes",
			Help:      "Number of elements pushed into the array",
		}),
		grows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "grows",
			Help:      "Number of times the backing buffer grew by reallocation",
		}),
		compactions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "compactions",
			Help:      "Number of in-place offset resets of the backing buffer",
		}),
		length: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "length",
			Help:      "Number of elements in the array",
		}),
		capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "capacity",
			Help:      "Number of allocated slots in the backing buffer",
		}),
	}

	registerer.MustRegister(
		m.pushes,
		m.grows,
		m.compactions,
		m.length,
		m.capacity,
	)

	return &m
}

func (m *metrics) incPushes() {
	if m != nil {
		m.pushes.Inc()
	}
}

func (m *metrics) incGrows() {
	if m != nil {
		m.grows.Inc()
	}
}

func (m *metrics) incCompactions() {
	if m != nil {
		m.compactions.Inc()
	}
}

func (m *metrics) setLen(length int) {
	if m != nil {
		m.length.Set(float64(length))
	}
}

func (m *metrics) setCap(capacity int) {
	if m != nil {
		m.capacity.Set(float64(capacity))
	}
}
