package observability_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/stenomods"
	"github.com/aretw0/stenomods/pkg/domain"
	"github.com/aretw0/stenomods/pkg/observability"
)

func TestMetrics_TranslatorHooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	tr, err := stenomods.New(stenomods.EngineNumber, stenomods.WithLookupHooks(m.Hooks()))
	require.NoError(t, err)

	for _, stroke := range []string{"2R*G", "2R*G", "WR50-R", "12W-6"} {
		_, _ = tr.Lookup(t.Context(), []string{stroke})
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Lookups.WithLabelValues("number", "symbol", observability.OutcomeTranslated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Lookups.WithLabelValues("number", "numeral", observability.OutcomeTranslated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Lookups.WithLabelValues("number", "unknown", observability.OutcomeNotApplicable)))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "stenomods_lookups_total")
	assert.Contains(t, names, "stenomods_lookup_duration_seconds")
}

func TestMetrics_Outcomes(t *testing.T) {
	m, err := observability.NewMetrics(nil)
	require.NoError(t, err)

	m.Observe(&domain.LookupEvent{Engine: "ender", Mode: domain.ModeSymbol})
	m.Observe(&domain.LookupEvent{Engine: "ender", Err: domain.NotApplicable("x")})
	m.Observe(&domain.LookupEvent{Engine: "ender", Err: errors.New("boom")})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Lookups.WithLabelValues("ender", "symbol", observability.OutcomeTranslated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Lookups.WithLabelValues("ender", "unknown", observability.OutcomeNotApplicable)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Lookups.WithLabelValues("ender", "unknown", observability.OutcomeError)))
}

func TestMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := observability.NewMetrics(reg)
	require.NoError(t, err)

	_, err = observability.NewMetrics(reg)
	assert.Error(t, err)
}

func TestMetrics_HooksChain(t *testing.T) {
	m, err := observability.NewMetrics(nil)
	require.NoError(t, err)

	called := 0
	hooks := m.Hooks(domain.LookupHooks{
		OnLookup: func(context.Context, *domain.LookupEvent) { called++ },
	}, domain.LookupHooks{})

	hooks.OnLookup(t.Context(), &domain.LookupEvent{Engine: "number"})
	assert.Equal(t, 1, called)
}
