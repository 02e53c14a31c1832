// Package config loads palettes and translations from YAML or HCL files.
package config

import (
	"bytes"
	"maps"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/spf13/afero"
	"github.com/walteh/minimark/pkg/palette"
	"github.com/walteh/minimark/pkg/tag"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration.
//
//	default_flag = "trans"
//
//	palette "mono" {
//	  colors = ["#000000", "#FFFFFF"]
//	}
//
//	translations = {
//	  "key.keyboard.space" = "Leertaste"
//	}
type Config struct {
	DefaultFlag  string            `yaml:"default_flag,omitempty" hcl:"default_flag,optional" validate:"omitempty,flagname"`
	Palettes     []*PaletteEntry   `yaml:"palettes,omitempty" hcl:"palette,block" validate:"dive"`
	Translations map[string]string `yaml:"translations,omitempty" hcl:"translations,optional"`
	Placeholders map[string]string `yaml:"placeholders,omitempty" hcl:"placeholders,optional"`
}

// PaletteEntry is one named list of color stops.
type PaletteEntry struct {
	Name   string   `yaml:"name" hcl:"name,label" validate:"required,flagname"`
	Colors []string `yaml:"colors" hcl:"colors,attr" validate:"min=2,dive,hexcolor"`
}

// Load reads one config file. Files ending in .yaml or .yml are YAML; anything else is HCL.
func Load(fsys afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(path, data)
	if err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, errors.Errorf("validating %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes config data, picking the format from the file name.
func Parse(name string, data []byte) (*Config, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		var cfg Config
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, errors.Errorf("parsing YAML: %w", err)
		}
		return &cfg, nil
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, name)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	ctx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var cfg Config
	diags = gohcl.DecodeBody(hclFile.Body, ctx, &cfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	return &cfg, nil
}

// Merge folds other into c. Later palettes replace earlier ones with the same name and a
// non-empty default flag wins.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.DefaultFlag != "" {
		c.DefaultFlag = other.DefaultFlag
	}
	c.Palettes = append(c.Palettes, other.Palettes...)
	if len(other.Translations) > 0 && c.Translations == nil {
		c.Translations = map[string]string{}
	}
	for k, v := range other.Translations {
		c.Translations[k] = v
	}
	if len(other.Placeholders) > 0 && c.Placeholders == nil {
		c.Placeholders = map[string]string{}
	}
	for k, v := range other.Placeholders {
		c.Placeholders[k] = v
	}
}

// PaletteSet builds the built-in flags plus the configured palettes.
func (c *Config) PaletteSet() (*palette.Set, error) {
	set := palette.Builtin()
	for _, p := range c.Palettes {
		if err := set.Add(p.Name, p.Colors); err != nil {
			return nil, errors.Errorf("adding palette: %w", err)
		}
	}

	if c.DefaultFlag != "" {
		if err := set.SetDefault(c.DefaultFlag); err != nil {
			return nil, err
		}
	}

	return set, nil
}

// Context builds the resolver context.
func (c *Config) Context() *tag.Context {
	return &tag.Context{
		Translations: maps.Clone(c.Translations),
		Placeholders: maps.Clone(c.Placeholders),
	}
}
