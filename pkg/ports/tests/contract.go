package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/stenomods/pkg/domain"
	"github.com/aretw0/stenomods/pkg/ports"
)

// DictionaryContractTest is a reusable test suite that verifies if an adapter complies with ports.Dictionary.
// known maps a single stroke to its expected translation; unknown lists strokes the
// dictionary must reject.
func DictionaryContractTest(t *testing.T, dict ports.Dictionary, known map[string]string, unknown []string) {
	t.Helper()

	t.Run("Lookup_Known", func(t *testing.T) {
		for stroke, want := range known {
			got, err := dict.Lookup(t.Context(), []string{stroke})
			require.NoError(t, err, "stroke %q", stroke)
			assert.Equal(t, want, got, "stroke %q", stroke)
		}
	})

	t.Run("Lookup_Unknown", func(t *testing.T) {
		for _, stroke := range unknown {
			_, err := dict.Lookup(t.Context(), []string{stroke})
			assert.ErrorIs(t, err, domain.ErrNotApplicable, "stroke %q", stroke)
		}
	})

	t.Run("Lookup_Empty", func(t *testing.T) {
		_, err := dict.Lookup(t.Context(), nil)
		assert.ErrorIs(t, err, domain.ErrNotApplicable)
	})

	t.Run("LongestKey", func(t *testing.T) {
		assert.GreaterOrEqual(t, dict.LongestKey(), 1)
	})
}
