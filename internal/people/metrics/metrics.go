package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Entity label values.
const (
	EntityPerson       = "person"
	EntityAddress      = "address"
	EntityEmployment   = "employment"
	EntityRelationship = "relationship"
)

// Metrics tracks record lifecycle counts and aggregation timings.
type Metrics struct {
	Created        *prometheus.CounterVec
	Deleted        *prometheus.CounterVec
	CascadeRemoved *prometheus.CounterVec
	CompanyRollup  prometheus.Histogram
}

// New registers the people metrics on reg. Pass a fresh registry per
// process (or per test) to avoid duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Created: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "people_entities_created_total",
			Help: "Total number of records created, by entity",
		}, []string{"entity"}),
		Deleted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "people_entities_deleted_total",
			Help: "Total number of records deleted directly, by entity",
		}, []string{"entity"}),
		CascadeRemoved: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "people_cascade_removed_total",
			Help: "Records removed as part of a person delete, by entity",
		}, []string{"entity"}),
		CompanyRollup: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "people_company_rollup_duration_seconds",
			Help:    "Duration of company roll-up computations",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
	}
}

func (m *Metrics) IncrementCreated(entity string) {
	m.Created.WithLabelValues(entity).Inc()
}

func (m *Metrics) IncrementDeleted(entity string) {
	m.Deleted.WithLabelValues(entity).Inc()
}

func (m *Metrics) AddCascadeRemoved(entity string, n int) {
	m.CascadeRemoved.WithLabelValues(entity).Add(float64(n))
}

// ObserveCompanyRollup records the duration of a roll-up.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveCompanyRollup(start time.Time) {
	m.CompanyRollup.Observe(time.Since(start).Seconds())
}
