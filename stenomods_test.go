package stenomods_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/stenomods"
	"github.com/aretw0/stenomods/pkg/domain"
	"github.com/aretw0/stenomods/pkg/ports"
	"github.com/aretw0/stenomods/pkg/tables"
)

var _ ports.Explainer = (*stenomods.Translator)(nil)

func TestNew_UnknownEngine(t *testing.T) {
	_, err := stenomods.New("qwerty")
	assert.ErrorIs(t, err, domain.ErrUnknownEngine)
}

func TestNew_UnknownSpellingMethod(t *testing.T) {
	_, err := stenomods.New(stenomods.EngineEnder, stenomods.WithSpellingMethod("dvorak"))
	assert.ErrorIs(t, err, domain.ErrUnknownSpellingMethod)
}

func TestNew_EndersRequireEnderEngine(t *testing.T) {
	_, err := stenomods.New(stenomods.EngineNumber, stenomods.WithEnders("LGTS"))
	assert.Error(t, err)
}

func TestTranslator_Defaults(t *testing.T) {
	number, err := stenomods.New(stenomods.EngineNumber)
	require.NoError(t, err)
	assert.Equal(t, tables.MethodCombined, number.SpellingMethod())
	assert.Nil(t, number.Enders())
	assert.Equal(t, 1, number.LongestKey())
	assert.Equal(t, "number", number.Name)

	ender, err := stenomods.New(stenomods.EngineEnder)
	require.NoError(t, err)
	assert.Equal(t, tables.MethodMagnum, ender.SpellingMethod())
	assert.Equal(t, []string{"LTZ"}, ender.Enders())
	assert.Equal(t, stenomods.LongestKey, ender.LongestKey())
}

func TestTranslator_Modifiers(t *testing.T) {
	number, err := stenomods.New(stenomods.EngineNumber)
	require.NoError(t, err)
	assert.Equal(t, []stenomods.ModifierBinding{
		{Key: "R", Name: "alt"},
		{Key: "B", Name: "super"},
		{Key: "G", Name: "control"},
		{Key: "S", Name: "shift"},
	}, number.Modifiers())

	ender, err := stenomods.New(stenomods.EngineEnder)
	require.NoError(t, err)
	assert.Equal(t, []stenomods.ModifierBinding{
		{Key: "R", Name: "shift"},
		{Key: "F", Name: "control"},
		{Key: "B", Name: "alt"},
		{Key: "P", Name: "super"},
	}, ender.Modifiers())
}

func TestTranslator_SpellingMethod(t *testing.T) {
	magnum, err := stenomods.New(stenomods.EngineEnder)
	require.NoError(t, err)
	out, err := magnum.Lookup(t.Context(), []string{"AOEURLTZ"})
	require.NoError(t, err)
	assert.Equal(t, "{#shift(i)}", out)

	plover, err := stenomods.New(stenomods.EngineEnder, stenomods.WithSpellingMethod(tables.MethodPlover))
	require.NoError(t, err)
	_, err = plover.Lookup(t.Context(), []string{"AOEURLTZ"})
	assert.ErrorIs(t, err, domain.ErrNotApplicable)
}

func TestTranslator_WithEnders(t *testing.T) {
	tr, err := stenomods.New(stenomods.EngineEnder, stenomods.WithEnders("LGTS"))
	require.NoError(t, err)
	assert.Equal(t, []string{"LGTS"}, tr.Enders())

	out, err := tr.Lookup(t.Context(), []string{"AFLGTS"})
	require.NoError(t, err)
	assert.Equal(t, "{#control(a)}", out)

	_, err = tr.Lookup(t.Context(), []string{"AFLTZ"})
	assert.ErrorIs(t, err, domain.ErrNotApplicable)
}

func TestTranslator_StrokeCount(t *testing.T) {
	tr, err := stenomods.New(stenomods.EngineNumber)
	require.NoError(t, err)

	for _, strokes := range [][]string{nil, {}, {"2R*G", "2R*G"}} {
		_, err := tr.Lookup(t.Context(), strokes)
		assert.ErrorIs(t, err, domain.ErrNotApplicable)
	}
}

func TestTranslator_Hooks(t *testing.T) {
	var events []*domain.LookupEvent
	hooks := domain.LookupHooks{
		OnLookup: func(_ context.Context, e *domain.LookupEvent) {
			events = append(events, e)
		},
	}

	tr, err := stenomods.New(stenomods.EngineNumber, stenomods.WithLookupHooks(hooks))
	require.NoError(t, err)

	_, err = tr.Lookup(t.Context(), []string{"2R*G"})
	require.NoError(t, err)
	_, err = tr.Lookup(t.Context(), []string{"12W-6"})
	require.Error(t, err)

	require.Len(t, events, 2)

	assert.Equal(t, domain.EventLookup, events[0].Type)
	assert.Equal(t, "number", events[0].Engine)
	assert.Equal(t, domain.ModeSymbol, events[0].Mode)
	assert.Equal(t, "{#control(tab)}", events[0].Output)
	assert.True(t, events[0].Applicable())
	assert.False(t, events[0].Timestamp.IsZero())

	assert.False(t, events[1].Applicable())
	assert.ErrorIs(t, events[1].Err, domain.ErrNotApplicable)
	assert.Empty(t, events[1].Output)
}

func TestTranslator_Logging(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tr, err := stenomods.New(stenomods.EngineNumber, stenomods.WithLogger(logger))
	require.NoError(t, err)

	_, _ = tr.Lookup(t.Context(), []string{"2R*G"})
	_, _ = tr.Lookup(t.Context(), []string{"KAT"})

	logs := buf.String()
	assert.Contains(t, logs, "engine=number")
	assert.Contains(t, logs, "Stroke translated")
	assert.Contains(t, logs, "mode=symbol")
	assert.Contains(t, logs, "Stroke not applicable")
}

func TestTranslator_ExplainPartial(t *testing.T) {
	tr, err := stenomods.New(stenomods.EngineNumber)
	require.NoError(t, err)

	res, err := tr.Explain(t.Context(), []string{"12W-6"})
	assert.ErrorIs(t, err, domain.ErrNotApplicable)
	require.NotNil(t, res)
	assert.Equal(t, "#STW-F", res.Normalized)
	assert.Empty(t, res.Output)
}

func TestTranslator_Concurrent(t *testing.T) {
	tr, err := stenomods.New(stenomods.EngineNumber)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := tr.Lookup(context.Background(), []string{"2K350-R"})
			assert.NoError(t, err)
			assert.Equal(t, "{#alt(F4)}", out)
		}()
	}
	wg.Wait()
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, strings.TrimSpace(stenomods.Version))
}

func TestEngines(t *testing.T) {
	assert.ElementsMatch(t, []string{"number", "ender"}, stenomods.Engines())
}

func TestTranslator_Variants(t *testing.T) {
	number, err := stenomods.New(stenomods.EngineNumber)
	require.NoError(t, err)
	assert.Equal(t, []string{"", "A", "O", "AO"}, number.Variants())

	ender, err := stenomods.New(stenomods.EngineEnder)
	require.NoError(t, err)
	assert.Equal(t, []string{"", "O", "A", "AO"}, ender.Variants())
}
