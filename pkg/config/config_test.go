package config_test

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/minimark/pkg/config"
)

const yamlConfig = `
default_flag: mono
palettes:
  - name: mono
    colors: ["#000000", "#FFFFFF"]
translations:
  key.keyboard.space: Leertaste
placeholders:
  server: Hypixel
`

const hclConfig = `
default_flag = "sunset"

palette "sunset" {
  colors = ["#FF4500", "#FFD700", "#8B008B"]
}

translations = {
  "key.keyboard.left.shift" = "Umschalt"
}
`

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		content     string
		wantDefault string
		wantPalette string
		wantColors  int
		wantErr     bool
	}{
		{
			name:        "yaml",
			path:        "/cfg/minimark.yaml",
			content:     yamlConfig,
			wantDefault: "mono",
			wantPalette: "mono",
			wantColors:  2,
		},
		{
			name:        "hcl",
			path:        "/cfg/minimark.hcl",
			content:     hclConfig,
			wantDefault: "sunset",
			wantPalette: "sunset",
			wantColors:  3,
		},
		{
			name:    "yaml_unknown_field",
			path:    "/cfg/bad.yml",
			content: "colour: red\n",
			wantErr: true,
		},
		{
			name:    "hcl_syntax_error",
			path:    "/cfg/bad.hcl",
			content: "palette \"x\" {",
			wantErr: true,
		},
		{
			name:    "too_few_colors",
			path:    "/cfg/short.yaml",
			content: "palettes:\n  - name: one\n    colors: [\"#000000\"]\n",
			wantErr: true,
		},
		{
			name:    "not_a_hex_color",
			path:    "/cfg/hex.yaml",
			content: "palettes:\n  - name: bad\n    colors: [\"#000000\", \"red\"]\n",
			wantErr: true,
		},
		{
			name:    "bad_flag_name",
			path:    "/cfg/name.yaml",
			content: "palettes:\n  - name: Bad Name\n    colors: [\"#000000\", \"#FFFFFF\"]\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, tt.path, []byte(tt.content), 0o644))

			cfg, err := config.Load(fs, tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.wantDefault, cfg.DefaultFlag)
			require.Len(t, cfg.Palettes, 1)
			assert.Equal(t, tt.wantPalette, cfg.Palettes[0].Name)
			assert.Len(t, cfg.Palettes[0].Colors, tt.wantColors)
			assert.Len(t, cfg.Translations, 1)
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := config.Load(afero.NewMemMapFs(), "/nope.yaml")
	assert.Error(t, err)
}

func TestLoadDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/conf/a.yaml", []byte(yamlConfig), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/conf/nested/b.hcl", []byte(hclConfig), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/conf/README.md", []byte("ignored"), 0o644))

	cfg, err := config.LoadDir(fs, "/conf")
	require.NoError(t, err)

	assert.Equal(t, "sunset", cfg.DefaultFlag, "later files win")
	require.Len(t, cfg.Palettes, 2)
	assert.Equal(t, map[string]string{
		"key.keyboard.space":      "Leertaste",
		"key.keyboard.left.shift": "Umschalt",
	}, cfg.Translations)

	set, err := cfg.PaletteSet()
	require.NoError(t, err)
	assert.True(t, set.Has("mono"))
	assert.True(t, set.Has("sunset"))
	assert.True(t, set.Has("pride"))
	assert.Equal(t, "sunset", set.Default())
}

func TestLoadDir_ReportsEveryBadFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/conf/good.yaml", []byte(yamlConfig), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/conf/bad1.yaml", []byte("nope: 1\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/conf/bad2.hcl", []byte("{{{"), 0o644))

	_, err := config.LoadDir(fs, "/conf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad1.yaml")
	assert.Contains(t, err.Error(), "bad2.hcl")
}

func TestLoadPath(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/conf/a.yaml", []byte(yamlConfig), 0o644))

	fromFile, err := config.LoadPath(fs, "/conf/a.yaml")
	require.NoError(t, err)
	fromDir, err := config.LoadPath(fs, "/conf")
	require.NoError(t, err)

	assert.Equal(t, fromFile.DefaultFlag, fromDir.DefaultFlag)

	_, err = config.LoadPath(fs, "/missing")
	assert.Error(t, err)
}

func TestPaletteSet_UnknownDefault(t *testing.T) {
	cfg := &config.Config{DefaultFlag: "missing"}
	_, err := cfg.PaletteSet()
	assert.Error(t, err)
}

func TestContext(t *testing.T) {
	cfg := &config.Config{Translations: map[string]string{"a": "b"}}
	env := cfg.Context()

	v, ok := env.Translation("a")
	require.True(t, ok)
	assert.Equal(t, "b", v)

	env.Translations["a"] = "changed"
	assert.Equal(t, "b", cfg.Translations["a"], "context gets its own copy")
}

func TestLoadRuntime(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/cfg.yaml", []byte(yamlConfig), 0o644))

	rt, err := config.LoadRuntime(context.Background(), fs, "/cfg.yaml")
	require.NoError(t, err)

	assert.Equal(t, "mono", rt.Palettes.Default())
	assert.True(t, rt.Registry.Has("pride"))

	root, err := rt.Parser().Parse(context.Background(), "<pride>ab</pride><key:key.jump>")
	require.NoError(t, err)
	assert.Equal(t, "abLeertaste", root.PlainText())
}

func TestLoadRuntime_Defaults(t *testing.T) {
	rt, err := config.LoadRuntime(context.Background(), afero.NewMemMapFs(), "")
	require.NoError(t, err)
	assert.Equal(t, "pride", rt.Palettes.Default())
}

func TestContext_Placeholders(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/conf/a.yaml", []byte(yamlConfig), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/conf/b.hcl", []byte(`placeholders = { "player" = "Notch" }`), 0o644))

	cfg, err := config.LoadDir(fs, "/conf")
	require.NoError(t, err)

	env := cfg.Context()
	v, ok := env.Placeholder("server")
	require.True(t, ok)
	assert.Equal(t, "Hypixel", v)

	v, ok = env.Placeholder("player")
	require.True(t, ok)
	assert.Equal(t, "Notch", v)

	env.Placeholders["server"] = "changed"
	assert.Equal(t, "Hypixel", cfg.Placeholders["server"])
}
