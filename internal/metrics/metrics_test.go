package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveCommand("apply", "ok")
	m.ObserveCommand("apply", "ok")
	m.ObserveCommand("apply", "no_stock")
	m.DosesApplied.Inc()
	m.SetSizes(3, 7)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Commands.WithLabelValues("apply", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Commands.WithLabelValues("apply", "no_stock")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DosesApplied))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Batches))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.Inoculations))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"vaxsim_commands_total",
		"vaxsim_doses_applied_total",
		"vaxsim_batches",
		"vaxsim_inoculations",
	}, names)
}

func TestNew_DoubleRegistrationPanics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
