package runtime

import (
	"github.com/aretw0/stenomods/pkg/domain"
)

// Engine translates single strokes using one profile.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	profile Profile
}

// NewEngine creates an engine for the profile.
func NewEngine(p Profile) *Engine {
	return &Engine{profile: p}
}

// Name returns the profile name.
func (e *Engine) Name() string {
	return e.profile.Name
}

// Profile returns a copy of the engine configuration.
func (e *Engine) Profile() Profile {
	return e.profile
}

// Lookup translates exactly one stroke into an output command.
func (e *Engine) Lookup(strokes []string) (string, error) {
	res, err := e.Explain(strokes)
	if err != nil {
		return "", err
	}
	return res.Output, nil
}

// Explain runs the full pipeline and reports every intermediate value.
// On failure the returned Resolution holds the steps completed before the
// stroke was rejected.
func (e *Engine) Explain(strokes []string) (*domain.Resolution, error) {
	if len(strokes) != 1 {
		return nil, domain.NotApplicable("expected one stroke, got %d", len(strokes))
	}

	res := &domain.Resolution{Stroke: strokes[0], Normalized: strokes[0]}
	if e.profile.NumberKey {
		normalized, ok := Normalize(strokes[0])
		if !ok {
			return res, domain.NotApplicable("stroke %q does not use the number key", strokes[0])
		}
		res.Normalized = normalized
	}

	fields, err := Decompose(e.profile.Grammar, res.Normalized)
	res.Fields = fields
	if err != nil {
		return res, err
	}

	p, err := classify(fields)
	if err != nil {
		return res, err
	}
	res.Mode = p.mode

	character, err := e.profile.resolve(p)
	if err != nil {
		return res, err
	}
	res.Character = character
	res.Modifiers = e.profile.ModifierNames(fields.Modifiers)
	res.Output = Format(Compose(character, res.Modifiers))
	return res, nil
}
