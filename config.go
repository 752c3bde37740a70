package parr

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Option = func(*config)

// WithCapacity preallocates the backing buffer for the given number of
// elements. Without it, the buffer starts empty and is allocated on first
// use.
func WithCapacity(capacity int) Option {
	if capacity < 0 {
		panic("capacity can't be < 0")
	}
	return func(c *config) {
		c.capacity = capacity
	}
}

// WithPrometheus enables metrics describing the array and its growth
// behavior. If registerer is nil, metrics are collected but not registered.
func WithPrometheus(registerer prometheus.Registerer, namespace, subsystem string) Option {
	return func(c *config) {
		c.metrics = newMetrics(registerer, namespace, subsystem)
	}
}

type config struct {
	capacity int
	metrics  *metrics
}

func newConfig(options ...Option) *config {
	cfg := config{}
	for _, opt := range options {
		opt(&cfg)
	}
	return &cfg
}
