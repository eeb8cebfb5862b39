package loam

import (
	"context"
	"testing"

	"github.com/aretw0/loam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/stenomods/internal/testutils"
	"github.com/aretw0/stenomods/pkg/domain"
	"github.com/aretw0/stenomods/pkg/ports/tests"
)

func seedVault(t *testing.T, files map[string]string) *Vault {
	t.Helper()
	dir, repo := testutils.SetupTestRepo(t)
	testutils.WriteFiles(t, dir, files)

	v := New("vault", loam.NewTypedRepository[DocumentMetadata](repo), nil)
	require.NoError(t, v.Reload(context.Background()))
	return v
}

func TestVault_Contract(t *testing.T) {
	v := seedVault(t, map[string]string{
		"animals.md": `---
name: animals
entries:
  KAT: cat
  TKOG: dog
---
Animal names.`,
		"plurals.json": `{
  "name": "plurals",
  "entries": {"KAT/-S": "cats"}
}`,
		"readme.md": `---
title: not a dictionary
---
Ignored.`,
	})

	tests.DictionaryContractTest(t, v,
		map[string]string{"KAT": "cat", "TKOG": "dog"},
		[]string{"PWEUG", "KAT-S"},
	)

	out, err := v.Lookup(context.Background(), []string{"KAT", "-S"})
	require.NoError(t, err)
	assert.Equal(t, "cats", out)

	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 2, v.LongestKey())
	assert.Equal(t, "vault", v.Name())
	assert.Len(t, v.Sources(), 2)
}

func TestVault_DetectsCollisions(t *testing.T) {
	dir, repo := testutils.SetupTestRepo(t)
	testutils.WriteFiles(t, dir, map[string]string{
		"a.md": "---\nentries:\n  KAT: cat\n---\n",
		"b.md": "---\nentries:\n  KAT: kitten\n---\n",
	})

	v := New("vault", loam.NewTypedRepository[DocumentMetadata](repo), nil)
	err := v.Reload(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collision detected")

	_, err = v.Lookup(context.Background(), []string{"KAT"})
	assert.True(t, domain.IsNotApplicable(err), "a failed load leaves the empty dictionary")
}

func TestVault_SameTranslationTwice(t *testing.T) {
	v := seedVault(t, map[string]string{
		"a.md": "---\nentries:\n  KAT: cat\n---\n",
		"b.md": "---\nentries:\n  KAT: cat\n---\n",
	})
	assert.Equal(t, 1, v.Len())
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteFiles(t, dir, map[string]string{
		"words.md": "---\nentries:\n  KAT: cat\n---\n",
	})

	v, err := Open(context.Background(), "words", dir, nil)
	require.NoError(t, err)

	out, err := v.Lookup(context.Background(), []string{"KAT"})
	require.NoError(t, err)
	assert.Equal(t, "cat", out)
}
