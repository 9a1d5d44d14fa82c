// Package cli wires the titanic command: load, profile, clean, chart and
// summarise.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/talla-sadhana/PRODIGY-DS-02/internal/config"
	"github.com/talla-sadhana/PRODIGY-DS-02/internal/logging"
	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/data"
	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/dataprep"
	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/export"
	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/profile"
	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/report"
)

// Version information (set at build time).
var Version = "0.1.0"

var sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "titanic",
		Short: "Exploratory analysis of the Titanic passenger manifest",
		Long: `titanic loads the passenger manifest (or a seeded synthetic copy when the
download fails), profiles it, fills missing ages, fares and ports, derives
family and binned features, renders a grid of twelve charts and prints the
headline survival findings.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			logger := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
			return Run(cmd.Context(), cfg, cmd.OutOrStdout(), logger)
		},
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func section(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, sectionStyle.Render(title))
}

// Run executes the whole analysis. Chart and export failures are logged and
// the findings are still printed.
func Run(ctx context.Context, cfg *config.Config, w io.Writer, logger *slog.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	fallback, err := dataprep.ParseAgeFallback(cfg.Cleaning.AgeFallback)
	if err != nil {
		return err
	}

	raw, src := data.Load(ctx, data.Options{
		URL:     cfg.Source.URL,
		Timeout: cfg.Source.Timeout,
		Offline: cfg.Source.Offline,
		Seed:    cfg.Source.Seed,
		Rows:    cfg.Source.Rows,
		Logger:  logger,
	})

	section(w, fmt.Sprintf("Dataset profile (%s)", src))
	profile.Build(raw).Render(w)

	clean, outcomes, err := dataprep.Clean(raw, dataprep.Options{AgeFallback: fallback, Logger: logger})
	if err != nil {
		return fmt.Errorf("clean: %w", err)
	}
	for _, o := range outcomes {
		if o.Skipped {
			logger.Info("cleaning step skipped", "step", o.Step, "reason", o.Reason)
		}
	}

	section(w, "After cleaning")
	after := profile.Build(clean)
	_, _ = fmt.Fprintf(w, "Shape: %d rows x %d columns, %d missing cells\n", after.Rows, after.Cols, after.TotalMissing())

	if cfg.Report.ChartPath != "" {
		panels := report.Panels(clean)
		width := vg.Length(cfg.Report.Width) * vg.Inch
		height := vg.Length(cfg.Report.Height) * vg.Inch
		if err := report.SaveGrid(cfg.Report.ChartPath, panels, report.GridCols, width, height); err != nil {
			logger.Error("chart grid not written", "path", cfg.Report.ChartPath, "error", err)
		} else {
			logger.Info("chart grid written", "path", cfg.Report.ChartPath, "panels", len(panels))
		}
	}

	if cfg.Report.Export != "" {
		if err := export.File(cfg.Report.Export, clean); err != nil {
			logger.Error("export failed", "path", cfg.Report.Export, "error", err)
		} else {
			logger.Info("cleaned table exported", "path", cfg.Report.Export, "rows", clean.Nrow())
		}
	}

	_, _ = fmt.Fprintln(w)
	return report.WriteFindings(w, report.ComputeFindings(clean))
}
