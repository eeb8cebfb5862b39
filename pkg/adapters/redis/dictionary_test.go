package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/stenomods/pkg/adapters/memory"
	"github.com/aretw0/stenomods/pkg/adapters/redis"
	"github.com/aretw0/stenomods/pkg/domain"
	"github.com/aretw0/stenomods/pkg/ports/tests"
)

func setup(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestDictionary_Contract(t *testing.T) {
	mr, client := setup(t)
	mr.HSet(redis.DefaultPrefix+"words", "KAT", "cat", "KAT/-S", "cats")

	dict := redis.NewFromClient(client, "words")
	n, err := dict.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	tests.DictionaryContractTest(t, dict,
		map[string]string{"KAT": "cat"},
		[]string{"TKOG", "KAT-Z"},
	)

	out, err := dict.Lookup(context.Background(), []string{"KAT", "-S"})
	require.NoError(t, err)
	assert.Equal(t, "cats", out)

	_, err = dict.Lookup(context.Background(), []string{"KAT", "-S", "-Z"})
	assert.True(t, domain.IsNotApplicable(err))
}

func TestDictionary_Import(t *testing.T) {
	ctx := context.Background()
	_, client := setup(t)

	src, err := memory.NewFromEntries("words", map[string]string{
		"KAT":    "cat",
		"TKOG/S": "dogs",
	})
	require.NoError(t, err)

	dict := redis.NewFromClient(client, "words", redis.WithPrefix("test:"))
	assert.Equal(t, "test:words", dict.Key())
	require.NoError(t, dict.Import(ctx, src, false))
	assert.Equal(t, 2, dict.LongestKey())

	out, err := dict.Lookup(ctx, []string{"TKOG", "S"})
	require.NoError(t, err)
	assert.Equal(t, "dogs", out)

	small, err := memory.NewFromEntries("words", map[string]string{"KAT": "kitten"})
	require.NoError(t, err)
	require.NoError(t, dict.Import(ctx, small, true))
	assert.Equal(t, 1, dict.LongestKey())

	out, err = dict.Lookup(ctx, []string{"KAT"})
	require.NoError(t, err)
	assert.Equal(t, "kitten", out)

	_, err = dict.Lookup(ctx, []string{"TKOG", "S"})
	assert.True(t, domain.IsNotApplicable(err))
}

func TestDictionary_EmptyBeforeSync(t *testing.T) {
	mr, client := setup(t)
	mr.HSet(redis.DefaultPrefix+"words", "KAT", "cat")

	dict := redis.NewFromClient(client, "words")
	_, err := dict.Lookup(context.Background(), []string{"KAT"})
	assert.True(t, domain.IsNotApplicable(err), "nothing is served until the hash is scanned")

	dict = redis.NewFromClient(client, "words", redis.WithLongestKey(1))
	out, err := dict.Lookup(context.Background(), []string{"KAT"})
	require.NoError(t, err)
	assert.Equal(t, "cat", out)
}

func TestDictionary_ConnectionError(t *testing.T) {
	mr, client := setup(t)
	dict := redis.NewFromClient(client, "words", redis.WithLongestKey(1))
	mr.Close()

	_, err := dict.Lookup(context.Background(), []string{"KAT"})
	require.Error(t, err)
	assert.False(t, domain.IsNotApplicable(err))
}
