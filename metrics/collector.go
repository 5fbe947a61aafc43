// Package metrics exposes Prometheus metrics for hookfsm machines.
package metrics

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/librescoot/hookfsm"
)

const namespace = "hookfsm"

// ErrMissingMachineName is returned by NewCollector when Config.Machine is empty
var ErrMissingMachineName = errors.New("metrics: machine name must not be empty")

// Config configures a Collector
type Config struct {
	// Machine is used as the "machine" label on every series
	Machine string
}

// Collector records settlements and chain aborts of a single machine
type Collector struct {
	machine string

	settled *prometheus.CounterVec
	current *prometheus.GaugeVec
	aborts  prometheus.Counter

	mutex sync.Mutex
	last  hookfsm.StateID
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a Collector. Register it with a prometheus.Registerer.
func NewCollector(config Config) (*Collector, error) {
	if config.Machine == "" {
		return nil, ErrMissingMachineName
	}

	labels := prometheus.Labels{"machine": config.Machine}

	c := &Collector{
		machine: config.Machine,
		settled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "settled_total",
			Help:        "Number of events after which the machine settled in a state.",
			ConstLabels: labels,
		}, []string{"state"}),
		current: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "current_state",
			Help:        "1 for the state the machine last settled in, 0 for states it left.",
			ConstLabels: labels,
		}, []string{"state"}),
		aborts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "chain_aborts_total",
			Help:        "Number of events whose onEnter chain hit the length limit.",
			ConstLabels: labels,
		}),
	}

	return c, nil
}

// Observe wraps next so every settlement is recorded before next runs. next may be nil.
func (c *Collector) Observe(next hookfsm.Observer) hookfsm.Observer {
	return func(state hookfsm.StateID) {
		c.record(state)
		if next != nil {
			next(state)
		}
	}
}

// ObserveSend records the outcome of Machine.Send
func (c *Collector) ObserveSend(err error) {
	if hookfsm.IsChainTooLongError(err) {
		c.aborts.Inc()
	}
}

func (c *Collector) record(state hookfsm.StateID) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.last != "" && c.last != state {
		c.current.WithLabelValues(string(c.last)).Set(0)
	}
	c.current.WithLabelValues(string(state)).Set(1)
	c.settled.WithLabelValues(string(state)).Inc()
	c.last = state
}

// Describe implements prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.settled.Describe(ch)
	c.current.Describe(ch)
	c.aborts.Describe(ch)
}

// Collect implements prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.settled.Collect(ch)
	c.current.Collect(ch)
	c.aborts.Collect(ch)
}
