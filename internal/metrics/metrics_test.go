package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/robgonnella/sockchat/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	t.Run("nil registry yields nil metrics that record nothing", func(st *testing.T) {
		m, err := metrics.New(nil)

		assert.NoError(st, err)
		assert.Nil(st, m)

		assert.NotPanics(st, func() {
			m.DialAttempt(metrics.DialSuccess)
			m.StreamConnected()
			m.StreamDisconnected()
			m.Message(metrics.Inbound)
			m.WriteFailed()
			m.DeviceActivated()
		})
	})

	t.Run("records stream lifecycle", func(st *testing.T) {
		reg := prometheus.NewRegistry()

		m, err := metrics.New(reg)

		require.NoError(st, err)

		m.DialAttempt(metrics.DialFailure)
		m.DialAttempt(metrics.DialSuccess)
		m.StreamConnected()
		m.Message(metrics.Inbound)
		m.Message(metrics.Outbound)
		m.Message(metrics.Outbound)

		count, err := testutil.GatherAndCount(reg, "sockchat_connector_dial_attempts_total")

		assert.NoError(st, err)
		assert.Equal(st, 2, count)

		m.StreamDisconnected()

		families, err := reg.Gather()

		require.NoError(st, err)

		values := map[string]float64{}

		for _, f := range families {
			for _, metric := range f.GetMetric() {
				if metric.GetGauge() != nil {
					values[f.GetName()] = metric.GetGauge().GetValue()
				}
			}
		}

		assert.Equal(st, float64(0), values["sockchat_stream_connected"])
	})

	t.Run("fails to register twice on the same registry", func(st *testing.T) {
		reg := prometheus.NewRegistry()

		_, err := metrics.New(reg)

		require.NoError(st, err)

		_, err = metrics.New(reg)

		assert.Error(st, err)
	})
}
