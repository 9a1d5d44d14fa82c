package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talla-sadhana/PRODIGY-DS-02/internal/config"
	"github.com/talla-sadhana/PRODIGY-DS-02/internal/testutil"
)

func offlineConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Chdir(t.TempDir())
	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	cfg.Source.Offline = true
	cfg.Report.Width, cfg.Report.Height = 8, 6
	return cfg
}

func TestRunOffline(t *testing.T) {
	cfg := offlineConfig(t)
	dir := t.TempDir()
	cfg.Report.ChartPath = filepath.Join(dir, "grid.png")
	cfg.Report.Export = filepath.Join(dir, "clean.csv")

	var out bytes.Buffer
	require.NoError(t, Run(t.Context(), cfg, &out, testutil.NewTestLogger(t)))

	s := out.String()
	assert.Contains(t, s, "Dataset profile (synthetic)")
	assert.Contains(t, s, "Shape: 891 rows x 8 columns")
	assert.Contains(t, s, "Shape: 891 rows x 12 columns, 0 missing cells")
	assert.Contains(t, s, "Overall survival rate was")

	for _, p := range []string{cfg.Report.ChartPath, cfg.Report.Export} {
		info, err := os.Stat(p)
		require.NoError(t, err, p)
		assert.Positive(t, info.Size())
	}
}

func TestRunKeepsGoingWhenChartFails(t *testing.T) {
	cfg := offlineConfig(t)
	cfg.Report.ChartPath = filepath.Join(t.TempDir(), "missing-dir", "grid.png")
	cfg.Report.Export = ""

	var out bytes.Buffer
	require.NoError(t, Run(t.Context(), cfg, &out, testutil.NewTestLogger(t)))
	assert.Contains(t, out.String(), "Overall survival rate was")
}

func TestRootCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--offline", "--chart", "", "--log-format", "json"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Key findings")
	assert.Contains(t, errOut.String(), `"source":"synthetic"`)
}

func TestRootCommandRejectsBadFallback(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--offline", "--age-fallback", "mean"})
	assert.Error(t, cmd.Execute())
}
