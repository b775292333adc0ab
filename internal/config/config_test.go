package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	return path
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	chdir(t, t.TempDir())

	path := writeFile(t, "tabula.toml", `
prompt = "> "
format = "box"
max_variables = 8
history_file = "/tmp/history"
color = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "> ", cfg.Prompt)
	assert.Equal(t, "box", cfg.Format)
	assert.Equal(t, 8, cfg.MaxVariables)
	assert.Equal(t, "/tmp/history", cfg.HistoryFile)
	assert.False(t, cfg.Color)
	assert.Equal(t, 128, cfg.CacheSize)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	chdir(t, t.TempDir())

	path := writeFile(t, "tabula.toml", `format = "box"`)
	t.Setenv("TABULA_FORMAT", "markdown")
	t.Setenv("TABULA_CACHE_SIZE", "4")
	t.Setenv("TABULA_COLOR", "false")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "markdown", cfg.Format)
	assert.Equal(t, 4, cfg.CacheSize)
	assert.False(t, cfg.Color)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("TABULA_PROMPT", "")
	os.Unsetenv("TABULA_PROMPT")

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TABULA_PROMPT=bool> \n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "bool>", cfg.Prompt)
}

func TestLoadErrors(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.toml", `format = "csv"`))
	assert.ErrorContains(t, err, "unknown format")

	_, err = Load(writeFile(t, "bad.toml", `log_level = "loud"`))
	assert.ErrorContains(t, err, "invalid log level")

	t.Setenv("TABULA_MAX_VARIABLES", "many")
	_, err = Load("")
	assert.ErrorContains(t, err, "TABULA_MAX_VARIABLES")
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	l, err = ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
