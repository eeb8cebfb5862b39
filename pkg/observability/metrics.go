package observability

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/stenomods/pkg/domain"
)

// Outcome label values.
const (
	OutcomeTranslated    = "translated"
	OutcomeNotApplicable = "not_applicable"
	OutcomeError         = "error"
)

// Metrics holds the lookup collectors.
type Metrics struct {
	Lookups  *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stenomods_lookups_total",
				Help: "Total number of stroke lookups",
			},
			[]string{"engine", "mode", "outcome"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stenomods_lookup_duration_seconds",
				Help:    "Duration of stroke lookups",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 8),
			},
			[]string{"engine"},
		),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{m.Lookups, m.Duration} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}

// Observe records one lookup event.
func (m *Metrics) Observe(e *domain.LookupEvent) {
	outcome := OutcomeTranslated
	switch {
	case e.Err == nil:
	case domain.IsNotApplicable(e.Err):
		outcome = OutcomeNotApplicable
	default:
		outcome = OutcomeError
	}
	m.Lookups.WithLabelValues(e.Engine, e.Mode.String(), outcome).Inc()
	m.Duration.WithLabelValues(e.Engine).Observe(e.Duration.Seconds())
}

// Hooks returns lookup hooks that feed the collectors.
// The chained hook, if any, runs after the metric is recorded.
func (m *Metrics) Hooks(next ...domain.LookupHooks) domain.LookupHooks {
	return domain.LookupHooks{
		OnLookup: func(ctx context.Context, e *domain.LookupEvent) {
			m.Observe(e)
			for _, h := range next {
				if h.OnLookup != nil {
					h.OnLookup(ctx, e)
				}
			}
		},
	}
}
