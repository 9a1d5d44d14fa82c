// Package config loads run settings from defaults, an optional YAML file,
// EDA_* environment variables and command-line flags, in increasing order
// of precedence.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/data"
	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/dataprep"
)

const (
	DefaultFile = "eda.yaml"
	EnvPrefix   = "EDA_"
)

type SourceConfig struct {
	URL     string        `koanf:"url"`
	Timeout time.Duration `koanf:"timeout"`
	Offline bool          `koanf:"offline"`
	Seed    int64         `koanf:"seed"`
	Rows    int           `koanf:"rows"`
}

type CleaningConfig struct {
	AgeFallback string `koanf:"age_fallback"`
}

type ReportConfig struct {
	ChartPath string  `koanf:"chart"`
	Width     float64 `koanf:"width"`  // inches
	Height    float64 `koanf:"height"` // inches
	Export    string  `koanf:"export"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type Config struct {
	Source   SourceConfig   `koanf:"source"`
	Cleaning CleaningConfig `koanf:"cleaning"`
	Report   ReportConfig   `koanf:"report"`
	Log      LogConfig      `koanf:"log"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"source.url":            data.DefaultURL,
		"source.timeout":        "15s",
		"source.offline":        false,
		"source.seed":           data.SyntheticSeed,
		"source.rows":           data.SyntheticRows,
		"cleaning.age_fallback": string(dataprep.AgeFallbackNone),
		"report.chart":          "titanic_eda.png",
		"report.width":          20.0,
		"report.height":         14.0,
		"report.export":         "",
		"log.level":             "info",
		"log.format":            "text",
	}
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"source-url":   "source.url",
	"timeout":      "source.timeout",
	"offline":      "source.offline",
	"seed":         "source.seed",
	"chart":        "report.chart",
	"export":       "report.export",
	"age-fallback": "cleaning.age_fallback",
	"log-level":    "log.level",
	"log-format":   "log.format",
}

// RegisterFlags adds the flags Load understands to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default: ./"+DefaultFile+" if present)")
	fs.String("source-url", "", "CSV URL of the passenger manifest")
	fs.Duration("timeout", 0, "timeout for the dataset download")
	fs.Bool("offline", false, "skip the download and use the synthetic dataset")
	fs.Int64("seed", 0, "seed of the synthetic dataset")
	fs.String("chart", "", "PNG path of the chart grid (empty disables it)")
	fs.String("export", "", "write the cleaned table to this .csv or .xlsx file")
	fs.String("age-fallback", "", "fill for ages of all-null class/sex groups: none, class or global")
	fs.String("log-level", "", "log level: debug, info, warn or error")
	fs.String("log-format", "", "log format: text or json")
}

// envKey maps EDA_SOURCE_URL to source.url and EDA_CLEANING_AGE_FALLBACK to
// cleaning.age_fallback: the first underscore separates the section.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, rest, ok := strings.Cut(s, "_")
	if !ok {
		return s
	}
	return section + "." + rest
}

// Load builds the configuration. cfgFile may be empty; then DefaultFile is
// read when it exists. flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if cfgFile == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			cfgFile = DefaultFile
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the pipeline cannot run with.
func (c *Config) Validate() error {
	if _, err := dataprep.ParseAgeFallback(c.Cleaning.AgeFallback); err != nil {
		return fmt.Errorf("cleaning.age_fallback: %w", err)
	}
	if c.Source.Rows <= 0 {
		return fmt.Errorf("source.rows must be positive, got %d", c.Source.Rows)
	}
	if c.Report.Width <= 0 || c.Report.Height <= 0 {
		return fmt.Errorf("report size must be positive, got %gx%g", c.Report.Width, c.Report.Height)
	}
	return nil
}
