package config

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/minimark/pkg/markup"
	"github.com/walteh/minimark/pkg/palette"
	"github.com/walteh/minimark/pkg/tag"
	"github.com/walteh/minimark/pkg/tag/standard"
	"gitlab.com/tozd/go/errors"
)

// Runtime is everything a command needs to parse and render markup.
type Runtime struct {
	Palettes *palette.Set
	Registry *tag.Registry
	Env      *tag.Context
}

// Loader builds a Runtime on demand.
type Loader func(ctx context.Context) (*Runtime, error)

// NewRuntime wires the standard tags to cfg. A nil cfg means built-in defaults only.
func NewRuntime(cfg *Config) (*Runtime, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	palettes, err := cfg.PaletteSet()
	if err != nil {
		return nil, errors.Errorf("building palettes: %w", err)
	}

	return &Runtime{
		Palettes: palettes,
		Registry: standard.NewRegistry(palettes),
		Env:      cfg.Context(),
	}, nil
}

// LoadRuntime loads path (a file or a directory) and builds a Runtime from it. An empty
// path skips loading.
func LoadRuntime(ctx context.Context, fsys afero.Fs, path string) (*Runtime, error) {
	var cfg *Config
	if path != "" {
		loaded, err := LoadPath(fsys, path)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	rt, err := NewRuntime(cfg)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("config", path).
		Str("default_flag", rt.Palettes.Default()).
		Int("palettes", len(rt.Palettes.Names())).
		Msg("runtime ready")

	return rt, nil
}

func (r *Runtime) Parser() *markup.Parser {
	return markup.NewParser(r.Registry, r.Env)
}
