package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "themekit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvMaxDepth, EnvTheme, EnvVariant, EnvPlaceholders, EnvThemesDir} {
		t.Setenv(key, "")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, DefaultTheme, cfg.Theme)
	assert.Equal(t, DefaultMaxDepth, cfg.MaxDepth)
	assert.False(t, cfg.Placeholders)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeConfig(t, `
theme: paper
variant: night
max_depth: 8
placeholders: true
themes_dir: `+dir+`
document:
  title: Demo
  lang: sv
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Theme:        "paper",
		Variant:      "night",
		MaxDepth:     8,
		Placeholders: true,
		ThemesDir:    dir,
		Document:     DocumentMeta{Title: "Demo", Lang: "sv"},
	}, cfg)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "theme: paper\nmax_depth: 8\n")
	t.Setenv(EnvTheme, "liquid-glass")
	t.Setenv(EnvVariant, "dark")
	t.Setenv(EnvMaxDepth, "4")
	t.Setenv(EnvPlaceholders, "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "liquid-glass", cfg.Theme)
	assert.Equal(t, "dark", cfg.Variant)
	assert.Equal(t, 4, cfg.MaxDepth)
	assert.True(t, cfg.Placeholders)
}

func TestLoadExpandsEnvironmentReferences(t *testing.T) {
	clearEnv(t)
	t.Setenv("SITE_TITLE", "Expanded")
	path := writeConfig(t, "document:\n  title: ${SITE_TITLE}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Expanded", cfg.Document.Title)
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		env     map[string]string
		wantErr string
	}{
		{name: "bad yaml", body: "theme: [", wantErr: "config: parse"},
		{name: "bad depth env", env: map[string]string{EnvMaxDepth: "deep"}, wantErr: EnvMaxDepth},
		{name: "bad placeholders env", env: map[string]string{EnvPlaceholders: "maybe"}, wantErr: EnvPlaceholders},
		{name: "negative depth", body: "max_depth: -1\n", wantErr: "max_depth must be positive"},
		{name: "missing themes dir", body: "themes_dir: /does/not/exist\n", wantErr: "themes_dir"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for key, value := range tc.env {
				t.Setenv(key, value)
			}
			path := writeConfig(t, tc.body)
			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestValidateRejectsFileAsThemesDir(t *testing.T) {
	cfg := Default()
	cfg.ThemesDir = writeConfig(t, "theme: x\n")

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a directory")
}
