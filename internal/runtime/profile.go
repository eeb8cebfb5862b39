package runtime

import (
	"fmt"

	"github.com/aretw0/stenomods/pkg/domain"
	"github.com/aretw0/stenomods/pkg/tables"
)

// Built-in engine names.
const (
	// EngineNumber requires the number key and a right-hand modifier.
	EngineNumber = "number"
	// EngineEnder requires a fixed ender chord on the right hand.
	EngineEnder = "ender"
)

// DefaultEnder is the right-hand chord that marks strokes for the ender engine.
const DefaultEnder = "LTZ"

// KeyWeight assigns a numeric weight to a key letter.
type KeyWeight struct {
	Key    byte
	Weight int
}

// ModifierKey binds a key letter to a host modifier name.
type ModifierKey struct {
	Key  byte
	Name string
}

// Grammar describes the fixed field layout of a stroke.
type Grammar struct {
	// Marker is a literal prefix the stroke must start with ("" for none).
	Marker string
	// Leading is the alphabet of the leading-keys field.
	Leading string
	// SeparatorRequired makes the '*' or '-' field mandatory.
	SeparatorRequired bool
	// Modifiers is the alphabet of the modifier-keys field.
	Modifiers string
	// ModifierRequired rejects strokes without modifier keys.
	ModifierRequired bool
	// EnderKeys is the alphabet of the trailing ender field. Empty disables it.
	EnderKeys string
	// Enders lists the accepted ender values when EnderKeys is set.
	Enders []string
}

// Profile is the full configuration of one engine.
type Profile struct {
	Name    string
	Grammar Grammar

	// NumberKey rewrites digit shorthand into letter keys before parsing.
	NumberKey bool

	Symbols  tables.SymbolTable
	Spelling tables.SpellingTable

	// VariantBits select between the outputs of one symbol pattern.
	VariantBits []KeyWeight
	// NumeralWeights encode the numeral value on the leading keys.
	NumeralWeights []KeyWeight
	// FunctionKeys must all be held to produce a function key.
	FunctionKeys string
	MaxDigit     int
	MaxFunction  int

	// Precedence is the order modifier keys are tested in. The first match
	// wraps the character first and so ends up innermost.
	Precedence []ModifierKey
}

// binaryWeights is shared by both engines: the left bottom row counts in binary.
var binaryWeights = []KeyWeight{
	{Key: 'R', Weight: 1},
	{Key: 'W', Weight: 2},
	{Key: 'K', Weight: 4},
	{Key: 'S', Weight: 8},
}

// NumberProfile returns the profile of the number-key engine.
func NumberProfile() Profile {
	spelling, _ := tables.Spelling(tables.MethodCombined)
	return Profile{
		Name: EngineNumber,
		Grammar: Grammar{
			Marker:            domain.NumberMarker,
			Leading:           domain.LeftKeys,
			SeparatorRequired: true,
			Modifiers:         "RBGS",
			ModifierRequired:  true,
		},
		NumberKey:      true,
		Symbols:        tables.NumberSymbols,
		Spelling:       spelling,
		VariantBits:    []KeyWeight{{Key: 'A', Weight: 1}, {Key: 'O', Weight: 2}},
		NumeralWeights: binaryWeights,
		FunctionKeys:   "TP",
		MaxDigit:       9,
		MaxFunction:    12,
		Precedence: []ModifierKey{
			{Key: 'R', Name: "alt"},
			{Key: 'B', Name: "super"},
			{Key: 'G', Name: "control"},
			{Key: 'S', Name: "shift"},
		},
	}
}

// EnderProfile returns the profile of the ender engine.
func EnderProfile() Profile {
	spelling, _ := tables.Spelling(tables.MethodMagnum)
	return Profile{
		Name: EngineEnder,
		Grammar: Grammar{
			Leading:   domain.NumberMarker + domain.LeftKeys,
			Modifiers: "FRPB",
			EnderKeys: "LGTSDZ",
			Enders:    []string{DefaultEnder},
		},
		Symbols:        tables.EnderSymbols,
		Spelling:       spelling,
		VariantBits:    []KeyWeight{{Key: 'O', Weight: 1}, {Key: 'A', Weight: 2}},
		NumeralWeights: binaryWeights,
		FunctionKeys:   "TP",
		MaxDigit:       9,
		MaxFunction:    12,
		Precedence: []ModifierKey{
			{Key: 'R', Name: "shift"},
			{Key: 'F', Name: "control"},
			{Key: 'B', Name: "alt"},
			{Key: 'P', Name: "super"},
		},
	}
}

// Builtin returns the profile registered under name.
func Builtin(name string) (Profile, error) {
	switch name {
	case EngineNumber:
		return NumberProfile(), nil
	case EngineEnder:
		return EnderProfile(), nil
	default:
		return Profile{}, fmt.Errorf("%w: %q", domain.ErrUnknownEngine, name)
	}
}

// Engines lists the built-in engine names.
func Engines() []string {
	return []string{EngineNumber, EngineEnder}
}

// WithSpelling returns a copy of the profile using another spelling table.
func (p Profile) WithSpelling(t tables.SpellingTable) Profile {
	p.Spelling = t
	return p
}

// WithEnders returns a copy of the profile accepting the given enders.
// It has no effect on grammars without an ender field.
func (p Profile) WithEnders(enders ...string) Profile {
	if p.Grammar.EnderKeys == "" || len(enders) == 0 {
		return p
	}
	p.Grammar.Enders = append([]string(nil), enders...)
	return p
}

// VariantChords returns, per symbol variant slot, the vowel keys that select it.
func (p Profile) VariantChords() []string {
	chords := make([]string, tables.VariantSlots)
	for slot := range chords {
		for i := 0; i < len(domain.LeftVowels); i++ {
			key := domain.LeftVowels[i]
			for _, kw := range p.VariantBits {
				if kw.Key == key && slot&kw.Weight != 0 {
					chords[slot] += string(key)
				}
			}
		}
	}
	return chords
}
