package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/data"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, data.DefaultURL, cfg.Source.URL)
	assert.Equal(t, 15*time.Second, cfg.Source.Timeout)
	assert.Equal(t, int64(42), cfg.Source.Seed)
	assert.Equal(t, 891, cfg.Source.Rows)
	assert.False(t, cfg.Source.Offline)
	assert.Equal(t, "none", cfg.Cleaning.AgeFallback)
	assert.Equal(t, "titanic_eda.png", cfg.Report.ChartPath)
	assert.Equal(t, "info", cfg.Log.Level)
}

func writeFile(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "eda.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, `
source:
  url: http://file.example/titanic.csv
  timeout: 3s
  seed: 7
report:
  chart: from-file.png
log:
  level: debug
`)
	t.Setenv("EDA_SOURCE_SEED", "9")
	t.Setenv("EDA_REPORT_CHART", "from-env.png")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--chart", "from-flag.png", "--offline", "--age-fallback", "class"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)

	// file beats defaults
	assert.Equal(t, "http://file.example/titanic.csv", cfg.Source.URL)
	assert.Equal(t, 3*time.Second, cfg.Source.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	// env beats file
	assert.Equal(t, int64(9), cfg.Source.Seed)
	// flags beat env
	assert.Equal(t, "from-flag.png", cfg.Report.ChartPath)
	assert.True(t, cfg.Source.Offline)
	assert.Equal(t, "class", cfg.Cleaning.AgeFallback)
}

func TestLoadUnsetFlagsDoNotOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(nil))

	cfg, err := Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Source.Seed)
	assert.Equal(t, 15*time.Second, cfg.Source.Timeout)
}

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(t.TempDir())
	path := writeFile(t, dir, "report:\n  export: clean.xlsx\n")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "clean.xlsx", cfg.Report.Export)
}

func TestLoadErrors(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load("does-not-exist.yaml", nil)
	assert.Error(t, err)

	t.Setenv("EDA_CLEANING_AGE_FALLBACK", "mean")
	_, err = Load("", nil)
	assert.ErrorContains(t, err, "age_fallback")
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "source.url", envKey("EDA_SOURCE_URL"))
	assert.Equal(t, "cleaning.age_fallback", envKey("EDA_CLEANING_AGE_FALLBACK"))
	assert.Equal(t, "verbose", envKey("EDA_VERBOSE"))
}
