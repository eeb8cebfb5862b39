package cli

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/stenomods"
	"github.com/aretw0/stenomods/internal/config"
	"github.com/aretw0/stenomods/internal/logging"
	"github.com/aretw0/stenomods/internal/testutils"
	"github.com/aretw0/stenomods/pkg/domain"
)

func TestBuildRegistry_Defaults(t *testing.T) {
	reg, err := BuildRegistry(t.Context(), Options{Config: config.Default()})
	require.NoError(t, err)
	assert.Equal(t, []string{"number", "ender"}, reg.Names())

	out, err := reg.Lookup(t.Context(), []string{"AOEURLTZ"})
	require.NoError(t, err)
	assert.Equal(t, "{#shift(i)}", out)
}

func TestBuildRegistry_WithDictionaries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "commands.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"KAT": "cat"}`), 0o644))

	cfg := config.Default()
	cfg.Engines = []string{stenomods.EngineEnder}
	cfg.SpellingMethod = "plover"
	cfg.Enders = []string{"LGTS"}
	cfg.Dictionaries = []string{path}

	reg, err := BuildRegistry(t.Context(), Options{Config: cfg, Logger: logging.NewNop()})
	require.NoError(t, err)
	assert.Equal(t, []string{"ender", "commands"}, reg.Names())

	out, err := reg.Lookup(t.Context(), []string{"KAT"})
	require.NoError(t, err)
	assert.Equal(t, "cat", out)

	out, err = reg.Lookup(t.Context(), []string{"AFLGTS"})
	require.NoError(t, err)
	assert.Equal(t, "{#control(a)}", out)

	_, err = reg.Lookup(t.Context(), []string{"AOEURLTZ"})
	assert.ErrorIs(t, err, domain.ErrNotApplicable)
}

func TestBuildRegistry_VaultAndRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	mr.HSet("test:shared", "TKOG", "dog")

	vault := filepath.Join(t.TempDir(), "notes")
	testutils.WriteFiles(t, vault, map[string]string{
		"animals.md": "---\nentries:\n  KAT: cat\n---\n",
	})

	cfg := config.Default()
	cfg.Engines = []string{stenomods.EngineNumber}
	cfg.Vaults = []string{vault}
	cfg.Redis = config.RedisConfig{Addr: mr.Addr(), Prefix: "test:", Dictionaries: []string{"shared"}}

	reg, err := BuildRegistry(t.Context(), Options{Config: cfg})
	require.NoError(t, err)
	assert.Equal(t, []string{"number", "notes", "shared"}, reg.Names())

	name, out, err := reg.Resolve(t.Context(), []string{"KAT"})
	require.NoError(t, err)
	assert.Equal(t, "notes", name)
	assert.Equal(t, "cat", out)

	name, out, err = reg.Resolve(t.Context(), []string{"TKOG"})
	require.NoError(t, err)
	assert.Equal(t, "shared", name)
	assert.Equal(t, "dog", out)
}

func TestBuildRegistry_Errors(t *testing.T) {
	cfg := config.Default()
	cfg.Engines = []string{"qwerty"}
	_, err := BuildRegistry(t.Context(), Options{Config: cfg})
	assert.ErrorIs(t, err, domain.ErrUnknownEngine)

	cfg = config.Default()
	cfg.Dictionaries = []string{filepath.Join(t.TempDir(), "missing.yaml")}
	_, err = BuildRegistry(t.Context(), Options{Config: cfg})
	assert.Error(t, err)

	dir := t.TempDir()
	clash := filepath.Join(dir, "number.yaml")
	require.NoError(t, os.WriteFile(clash, []byte("KAT: cat\n"), 0o644))
	cfg = config.Default()
	cfg.Dictionaries = []string{clash}
	_, err = BuildRegistry(t.Context(), Options{Config: cfg})
	assert.Error(t, err)

	_, err = BuildRegistry(t.Context(), Options{Config: config.Config{}})
	assert.Error(t, err)
}

func TestBuildRegistry_DebugHooks(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logging.NewWithWriter(buf, slog.LevelDebug)

	var seen int
	reg, err := BuildRegistry(t.Context(), Options{
		Config: config.Default(),
		Logger: logger,
		Debug:  true,
		Hooks: domain.LookupHooks{
			OnLookup: func(context.Context, *domain.LookupEvent) { seen++ },
		},
	})
	require.NoError(t, err)

	_, _ = reg.Lookup(t.Context(), []string{"2R*G"})
	assert.Equal(t, 1, seen)
	assert.Contains(t, buf.String(), "msg=Lookup")
}

func TestCreateLogger(t *testing.T) {
	logger, err := CreateLogger("warn", false)
	require.NoError(t, err)
	assert.False(t, logger.Enabled(context.Background(), slog.LevelInfo))

	logger, err = CreateLogger("warn", true)
	require.NoError(t, err)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))

	_, err = CreateLogger("loud", false)
	assert.Error(t, err)
}

func TestChartFor(t *testing.T) {
	tr, err := stenomods.New(stenomods.EngineEnder)
	require.NoError(t, err)

	c := ChartFor(tr)
	assert.Equal(t, "ender", c.Engine)
	assert.Equal(t, []string{"LTZ"}, c.Enders)
	assert.Equal(t, "shift", c.Modifiers[0].Name)
	assert.Equal(t, tr.Symbols().Len(), c.Symbols.Len())
}

func TestSignalContext_Cancel(t *testing.T) {
	sc := NewSignalContext(context.Background())
	sc.Cancel()
	<-sc.Done()
	assert.Nil(t, sc.Signal())
}
