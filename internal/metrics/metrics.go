// Package metrics defines the prometheus collectors of the simulator.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "vaxsim"

// Metrics groups the collectors updated by the command loop.
// All collectors are safe for concurrent use.
type Metrics struct {
	Commands     *prometheus.CounterVec
	DosesApplied prometheus.Counter
	Batches      prometheus.Gauge
	Inoculations prometheus.Gauge
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Commands handled, by command and outcome.",
		}, []string{"command", "outcome"}),
		DosesApplied: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "doses_applied_total",
			Help:      "Vaccine doses applied.",
		}),
		Batches: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "batches",
			Help:      "Live vaccine batches.",
		}),
		Inoculations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "inoculations",
			Help:      "Inoculation records in the history.",
		}),
	}
	reg.MustRegister(m.Commands, m.DosesApplied, m.Batches, m.Inoculations)
	return m
}

// ObserveCommand counts one handled command with its outcome code.
func (m *Metrics) ObserveCommand(command, outcome string) {
	m.Commands.WithLabelValues(command, outcome).Inc()
}

// SetSizes records the current number of batches and inoculation records.
func (m *Metrics) SetSizes(batches, inoculations int) {
	m.Batches.Set(float64(batches))
	m.Inoculations.Set(float64(inoculations))
}
