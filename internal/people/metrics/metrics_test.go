package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementCreated(EntityPerson)
	m.IncrementCreated(EntityPerson)
	m.IncrementCreated(EntityAddress)
	m.IncrementDeleted(EntityAddress)
	m.AddCascadeRemoved(EntityEmployment, 3)

	assert.InDelta(t, 2, testutil.ToFloat64(m.Created.WithLabelValues(EntityPerson)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Created.WithLabelValues(EntityAddress)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Deleted.WithLabelValues(EntityAddress)), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.CascadeRemoved.WithLabelValues(EntityEmployment)), 0)
}

func TestMetrics_RollupHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveCompanyRollup(time.Now())

	families, err := reg.Gather()
	require.NoError(t, err)
	var found bool
	for _, f := range families {
		if f.GetName() == "people_company_rollup_duration_seconds" {
			found = true
			assert.Equal(t, uint64(1), f.GetMetric()[0].GetHistogram().GetSampleCount())
		}
	}
	assert.True(t, found)
}

func TestMetrics_SeparateRegistriesDoNotCollide(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
