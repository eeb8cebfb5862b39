package memory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/stenomods/pkg/adapters/memory"
	"github.com/aretw0/stenomods/pkg/domain"
	contract "github.com/aretw0/stenomods/pkg/ports/tests"
)

func TestDictionary_Contract(t *testing.T) {
	data := map[string]string{
		"KAT":    "cat",
		"TKOG":   "dog",
		"KAT/-S": "cats",
	}

	dict, err := memory.NewFromEntries("main", data)
	require.NoError(t, err)

	contract.DictionaryContractTest(t, dict,
		map[string]string{"KAT": "cat", "TKOG": "dog"},
		[]string{"PWEUG", "-S"},
	)
}

func TestDictionary_MultiStroke(t *testing.T) {
	dict, err := memory.NewFromEntries("main", map[string]string{
		"KAT":      "cat",
		" KAT/-S ": "cats",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, dict.LongestKey())
	assert.Equal(t, []string{"KAT", "KAT/-S"}, dict.Keys())

	out, err := dict.Lookup(t.Context(), []string{"KAT", "-S"})
	require.NoError(t, err)
	assert.Equal(t, "cats", out)

	_, err = dict.Lookup(t.Context(), []string{"KAT", "-S", "-G"})
	assert.ErrorIs(t, err, domain.ErrNotApplicable)
}

func TestNewFromEntries_Malformed(t *testing.T) {
	_, err := memory.NewFromEntries("bad", map[string]string{"KAT//-S": "x"})
	assert.Error(t, err)

	_, err = memory.NewFromEntries("bad", map[string]string{"  ": "x"})
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		file    string
		content string
	}{
		{"commands.json", `{"KAT": "cat", "TKOG": "{#control(c)}"}`},
		{"commands.yaml", "KAT: cat\nTKOG: \"{#control(c)}\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			dict, err := memory.LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "commands", dict.Name())
			assert.Equal(t, 2, dict.Len())

			out, err := dict.Lookup(t.Context(), []string{"TKOG"})
			require.NoError(t, err)
			assert.Equal(t, "{#control(c)}", out)
		})
	}
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := memory.LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = memory.LoadFile(bad)
	assert.Error(t, err)
}
