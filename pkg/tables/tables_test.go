package tables

import (
	"testing"

	"github.com/aretw0/stenomods/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolEntry_Select(t *testing.T) {
	entry := Variants("tab", "delete", "", "escape")

	tok, ok := entry.Select(0)
	assert.True(t, ok)
	assert.Equal(t, "tab", tok)

	_, ok = entry.Select(2)
	assert.False(t, ok, "empty slot must not be applicable")

	_, ok = entry.Select(VariantSlots)
	assert.False(t, ok)
	_, ok = entry.Select(-1)
	assert.False(t, ok)

	fixed := Fixed("space")
	for v := 0; v < VariantSlots; v++ {
		tok, ok := fixed.Select(v)
		assert.True(t, ok)
		assert.Equal(t, "space", tok)
	}
	assert.True(t, fixed.IsFixed())
	assert.Equal(t, []string{"space", "space", "space", "space"}, fixed.Slots())
}

func TestSymbolTables(t *testing.T) {
	entry, ok := NumberSymbols.Lookup("TR")
	require.True(t, ok)
	assert.Equal(t, []string{"tab", "delete", "backspace", "escape"}, entry.Slots())

	entry, ok = EnderSymbols.Lookup("KH")
	require.True(t, ok)
	assert.Equal(t, []string{"tab", "backspace", "delete", "escape"}, entry.Slots())

	entry, ok = EnderSymbols.Lookup("WH")
	require.True(t, ok)
	tok, _ := entry.Select(0)
	assert.Equal(t, "backslash", tok)

	_, ok = NumberSymbols.Lookup("STKPWHR")
	assert.False(t, ok)

	patterns := NumberSymbols.Patterns()
	require.Len(t, patterns, NumberSymbols.Len())
	assert.Equal(t, "", patterns[0])
}

func TestSymbolTable_SlotsAreCopies(t *testing.T) {
	entry, _ := NumberSymbols.Lookup("TR")
	slots := entry.Slots()
	slots[0] = "mutated"

	again, _ := NumberSymbols.Lookup("TR")
	tok, _ := again.Select(0)
	assert.Equal(t, "tab", tok)
}

func TestSpelling(t *testing.T) {
	tests := []struct {
		method  string
		pattern string
		want    string
		found   bool
	}{
		{MethodMagnum, "AOEU", "i", true},
		{MethodPlover, "AOEU", "", false},
		{MethodPlover, "EU", "i", true},
		{MethodMagnum, "EU", "", false},
		{MethodMagnum, "STKPWHR", "z", true},
		{MethodPlover, "STKPW", "z", true},
		{MethodCombined, "AOEU", "i", true},
		{MethodCombined, "EU", "i", true},
		{MethodCombined, "SKWRAEU", "j", true},
		{MethodCombined, "SKWR", "j", true},
		{MethodCombined, "TKPW", "g", true},
	}

	for _, tt := range tests {
		t.Run(tt.method+"/"+tt.pattern, func(t *testing.T) {
			table, err := Spelling(tt.method)
			require.NoError(t, err)
			got, ok := table.Lookup(tt.pattern)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpelling_Sizes(t *testing.T) {
	plover, _ := Spelling(MethodPlover)
	magnum, _ := Spelling(MethodMagnum)
	combined, _ := Spelling(MethodCombined)

	assert.Equal(t, 26, plover.Len())
	assert.Equal(t, 26, magnum.Len())
	assert.Equal(t, 29, combined.Len())
	assert.Equal(t, MethodCombined, combined.Method())
	assert.Equal(t, "A", plover.Patterns()[0])
}

func TestSpelling_UnknownMethod(t *testing.T) {
	_, err := Spelling("qwerty")
	assert.ErrorIs(t, err, domain.ErrUnknownSpellingMethod)
	assert.Equal(t, []string{MethodCombined, MethodMagnum, MethodPlover}, SpellingMethods())
}

func TestSpellingTable_EmptyLetterIsMissing(t *testing.T) {
	table := NewSpellingTable("custom", map[string]string{"A": ""})
	_, ok := table.Lookup("A")
	assert.False(t, ok)
}
