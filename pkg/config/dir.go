package config

import (
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// FilePattern selects config files inside a directory.
const FilePattern = "**/*.{yaml,yml,hcl}"

// LoadDir loads and merges every config file under dir in lexical order. Every file that
// fails is reported.
func LoadDir(fsys afero.Fs, dir string) (*Config, error) {
	base := afero.NewBasePathFs(fsys, dir)

	matches, err := doublestar.Glob(afero.NewIOFS(base), FilePattern)
	if err != nil {
		return nil, errors.Errorf("globbing %s: %w", dir, err)
	}
	slices.Sort(matches)

	merged := &Config{}
	var result *multierror.Error

	for _, match := range matches {
		cfg, err := Load(base, match)
		if err != nil {
			result = multierror.Append(result, errors.Errorf("%s: %w", match, err))
			continue
		}
		merged.Merge(cfg)
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return merged, nil
}

// LoadPath loads a single file or, when path is a directory, every file under it.
func LoadPath(fsys afero.Fs, path string) (*Config, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		return nil, errors.Errorf("checking config path: %w", err)
	}
	if info.IsDir() {
		return LoadDir(fsys, path)
	}
	return Load(fsys, path)
}
