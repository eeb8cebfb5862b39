package stenomods

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/stenomods/internal/runtime"
	"github.com/aretw0/stenomods/pkg/domain"
	"github.com/aretw0/stenomods/pkg/tables"
)

// Engine names accepted by New.
const (
	EngineNumber = runtime.EngineNumber
	EngineEnder  = runtime.EngineEnder
)

// LongestKey is the number of strokes a translation spans.
const LongestKey = 1

// Translator is the high-level entry point of the library.
// It wraps one runtime engine and adds logging and lookup hooks.
type Translator struct {
	runtime  *runtime.Engine
	hooks    domain.LookupHooks
	logger   *slog.Logger
	spelling string
	enders   []string
	Name     string
}

// ModifierBinding is a modifier key and the host modifier it produces.
type ModifierBinding struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Option defines a functional option for configuring the Translator.
type Option func(*Translator)

// WithLogger sets a custom structured logger for the translator.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		t.logger = logger
	}
}

// WithLookupHooks registers observability hooks.
func WithLookupHooks(hooks domain.LookupHooks) Option {
	return func(t *Translator) {
		t.hooks = hooks
	}
}

// WithSpellingMethod selects the fingerspelling alphabet ("plover", "magnum"
// or "combined"). The number engine defaults to combined, the ender engine
// to magnum.
func WithSpellingMethod(method string) Option {
	return func(t *Translator) {
		t.spelling = method
	}
}

// WithEnders replaces the accepted ender chords of the ender engine.
func WithEnders(enders ...string) Option {
	return func(t *Translator) {
		t.enders = enders
	}
}

// Engines lists the engine names accepted by New.
func Engines() []string {
	return runtime.Engines()
}

// New initializes a Translator for the named engine.
func New(engine string, opts ...Option) (*Translator, error) {
	t := &Translator{Name: engine}
	for _, opt := range opts {
		opt(t)
	}

	profile, err := runtime.Builtin(engine)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize translator: %w", err)
	}

	if t.spelling != "" {
		table, err := tables.Spelling(t.spelling)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize translator: %w", err)
		}
		profile = profile.WithSpelling(table)
	}

	if len(t.enders) > 0 {
		if profile.Grammar.EnderKeys == "" {
			return nil, fmt.Errorf("engine %q does not use enders", engine)
		}
		profile = profile.WithEnders(t.enders...)
	}

	if t.logger == nil {
		t.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	t.logger = t.logger.With("engine", engine)

	t.runtime = runtime.NewEngine(profile)
	return t, nil
}

// Lookup translates the strokes into an output command.
// It fails with domain.ErrNotApplicable unless exactly one stroke is given
// and the stroke belongs to the engine's dictionary.
func (t *Translator) Lookup(ctx context.Context, strokes []string) (string, error) {
	res, err := t.Explain(ctx, strokes)
	if err != nil {
		return "", err
	}
	return res.Output, nil
}

// Explain runs the lookup and returns every intermediate value.
// On failure the resolution holds the steps completed before rejection.
func (t *Translator) Explain(ctx context.Context, strokes []string) (*domain.Resolution, error) {
	start := time.Now()
	res, err := t.runtime.Explain(strokes)
	t.notify(ctx, strokes, res, err, time.Since(start))
	return res, err
}

func (t *Translator) notify(ctx context.Context, strokes []string, res *domain.Resolution, err error, elapsed time.Duration) {
	event := &domain.LookupEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventLookup},
		Engine:    t.Name,
		Strokes:   strokes,
		Err:       err,
		Duration:  elapsed,
	}
	if res != nil {
		event.Mode = res.Mode
		event.Output = res.Output
	}

	if err != nil {
		t.logger.Debug("Stroke not applicable", "strokes", strokes, "mode", event.Mode, "err", err)
	} else {
		t.logger.Debug("Stroke translated", "strokes", strokes, "mode", event.Mode, "output", event.Output)
	}

	if t.hooks.OnLookup != nil {
		t.hooks.OnLookup(ctx, event)
	}
}

// LongestKey returns the number of strokes a translation spans.
func (t *Translator) LongestKey() int {
	return LongestKey
}

// SpellingMethod returns the active fingerspelling alphabet.
func (t *Translator) SpellingMethod() string {
	return t.runtime.Profile().Spelling.Method()
}

// Symbols returns the symbol chart of the engine.
func (t *Translator) Symbols() tables.SymbolTable {
	return t.runtime.Profile().Symbols
}

// Spelling returns the active fingerspelling table.
func (t *Translator) Spelling() tables.SpellingTable {
	return t.runtime.Profile().Spelling
}

// Enders returns the accepted ender chords, or nil for engines without one.
func (t *Translator) Enders() []string {
	return append([]string(nil), t.runtime.Profile().Grammar.Enders...)
}

// Variants returns, per symbol variant slot, the vowel keys that select it.
func (t *Translator) Variants() []string {
	return t.runtime.Profile().VariantChords()
}

// Modifiers returns the modifier keys in precedence order.
func (t *Translator) Modifiers() []ModifierBinding {
	prec := t.runtime.Profile().Precedence
	out := make([]ModifierBinding, len(prec))
	for i, m := range prec {
		out[i] = ModifierBinding{Key: string(m.Key), Name: m.Name}
	}
	return out
}
