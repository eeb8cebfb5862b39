package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/stenomods"
	"github.com/aretw0/stenomods/internal/config"
	"github.com/aretw0/stenomods/internal/logging"
	"github.com/aretw0/stenomods/internal/presentation/chart"
	loamAdapter "github.com/aretw0/stenomods/pkg/adapters/loam"
	"github.com/aretw0/stenomods/pkg/adapters/memory"
	redisAdapter "github.com/aretw0/stenomods/pkg/adapters/redis"
	"github.com/aretw0/stenomods/pkg/domain"
	"github.com/aretw0/stenomods/pkg/ports"
	"github.com/aretw0/stenomods/pkg/registry"
)

// Options carries what every command needs to build its dictionaries.
type Options struct {
	Config config.Config
	Logger *slog.Logger
	Debug  bool
	// Hooks are installed on every engine, after the debug hooks.
	Hooks domain.LookupHooks
	// Watch reloads vaults when their documents change.
	Watch bool
}

// CreateLogger configures the application logger.
// Debug forces the debug level; otherwise the configured level applies.
func CreateLogger(level string, debug bool) (*slog.Logger, error) {
	if debug {
		return logging.New(slog.LevelDebug), nil
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.New(lvl), nil
}

// NewTranslator builds one engine with the configured options.
func NewTranslator(name string, opts Options) (*stenomods.Translator, error) {
	engineOpts := []stenomods.Option{
		stenomods.WithLogger(opts.Logger),
		stenomods.WithLookupHooks(chainHooks(opts.Debug, opts.Logger, opts.Hooks)),
	}
	if opts.Config.SpellingMethod != "" {
		engineOpts = append(engineOpts, stenomods.WithSpellingMethod(opts.Config.SpellingMethod))
	}
	if name == stenomods.EngineEnder && len(opts.Config.Enders) > 0 {
		engineOpts = append(engineOpts, stenomods.WithEnders(opts.Config.Enders...))
	}

	tr, err := stenomods.New(name, engineOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing engine %s: %w", name, err)
	}
	return tr, nil
}

// BuildRegistry registers the configured engines followed by the literal
// dictionaries, vaults and Redis hashes, in lookup order.
// With Watch set, vaults keep reloading until ctx is done.
func BuildRegistry(ctx context.Context, opts Options) (*registry.Registry, error) {
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	cfg := opts.Config

	reg := registry.NewRegistry()
	add := func(name, source string, dict ports.Dictionary) error {
		if _, err := reg.Get(name); err == nil {
			return fmt.Errorf("dictionary %s (%s) clashes with an existing name", name, source)
		}
		reg.Register(name, dict)
		return nil
	}

	for _, name := range cfg.Engines {
		tr, err := NewTranslator(name, opts)
		if err != nil {
			return nil, err
		}
		reg.Register(name, tr)
	}

	for _, path := range cfg.Dictionaries {
		dict, err := memory.LoadFile(path)
		if err != nil {
			return nil, err
		}
		if err := add(dict.Name(), path, dict); err != nil {
			return nil, err
		}
		opts.Logger.Debug("Dictionary loaded", "name", dict.Name(), "entries", dict.Len(), "path", path)
	}

	for _, path := range cfg.Vaults {
		name := filepath.Base(filepath.Clean(path))
		vault, err := loamAdapter.Open(ctx, name, path, opts.Logger)
		if err != nil {
			return nil, err
		}
		if err := add(name, path, vault); err != nil {
			return nil, err
		}
		if opts.Watch {
			if err := watchVault(ctx, vault, opts.Logger); err != nil {
				return nil, err
			}
		}
	}

	for _, name := range cfg.Redis.Dictionaries {
		var redisOpts []redisAdapter.Option
		if cfg.Redis.Prefix != "" {
			redisOpts = append(redisOpts, redisAdapter.WithPrefix(cfg.Redis.Prefix))
		}
		dict := redisAdapter.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, name, redisOpts...)
		n, err := dict.Sync(ctx)
		if err != nil {
			return nil, fmt.Errorf("dictionary %s: %w", name, err)
		}
		if err := add(name, cfg.Redis.Addr, dict); err != nil {
			return nil, err
		}
		opts.Logger.Debug("Dictionary loaded", "name", name, "entries", n, "redis", cfg.Redis.Addr)
	}

	if reg.Len() == 0 {
		return nil, fmt.Errorf("no dictionaries configured")
	}
	return reg, nil
}

func watchVault(ctx context.Context, vault *loamAdapter.Vault, logger *slog.Logger) error {
	changes, err := vault.Watch(ctx)
	if err != nil {
		return err
	}
	go func() {
		for id := range changes {
			logger.Info("Vault reloaded", "name", vault.Name(), "document", id, "entries", vault.Len())
		}
	}()
	return nil
}

// ChartFor collects the chart of a translator.
func ChartFor(tr *stenomods.Translator) chart.Chart {
	mods := tr.Modifiers()
	rows := make([]chart.Modifier, len(mods))
	for i, m := range mods {
		rows[i] = chart.Modifier{Key: m.Key, Name: m.Name}
	}
	return chart.Chart{
		Engine:    tr.Name,
		Variants:  tr.Variants(),
		Modifiers: rows,
		Enders:    tr.Enders(),
		Symbols:   tr.Symbols(),
		Spelling:  tr.Spelling(),
	}
}

func chainHooks(debug bool, logger *slog.Logger, next domain.LookupHooks) domain.LookupHooks {
	if !debug {
		return next
	}
	return domain.LookupHooks{
		OnLookup: func(ctx context.Context, e *domain.LookupEvent) {
			if e.Applicable() {
				logger.Debug("Lookup", "engine", e.Engine, "strokes", e.Strokes, "mode", e.Mode, "output", e.Output, "duration", e.Duration)
			} else {
				logger.Debug("Lookup (Not Applicable)", "engine", e.Engine, "strokes", e.Strokes, "err", e.Err, "duration", e.Duration)
			}
			if next.OnLookup != nil {
				next.OnLookup(ctx, e)
			}
		},
	}
}
