package data

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/core"
)

// DefaultURL serves the 891-row manifest with lower-case column names.
const DefaultURL = "https://raw.githubusercontent.com/mwaskom/seaborn-data/master/titanic.csv"

var ErrNoRows = errors.New("csv has no data rows")

// Source tells where a loaded table came from.
type Source string

const (
	SourceRemote    Source = "remote"
	SourceSynthetic Source = "synthetic"
)

// missingTokens are the cells read as nulls.
var missingTokens = []string{"", "NA", "NaN", "nan", "null"}

// normalizeHeader lower-cases a header and turns spaces into underscores.
func normalizeHeader(h string) string {
	h = strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))
	return strings.ReplaceAll(strings.ToLower(h), " ", "_")
}

// ReadCSV parses a CSV table with a header row. gota detects the column
// types; integer and float columns are stored as floats, everything else
// (boolean text included) as categories.
func ReadCSV(r io.Reader) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(bufio.NewReader(r),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(missingTokens),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("read csv: %w", df.Err)
	}
	if df.Nrow() == 0 {
		return dataframe.DataFrame{}, ErrNoRows
	}

	cols := make([]series.Series, 0, df.Ncol())
	for _, name := range df.Names() {
		cols = append(cols, normalizeColumn(df.Col(name), normalizeHeader(name)))
	}
	out := dataframe.New(cols...)
	if out.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("read csv: %w", out.Err)
	}
	return out, nil
}

func normalizeColumn(s series.Series, name string) series.Series {
	switch s.Type() {
	case series.Float:
		s.Name = name
		return s
	case series.Int:
		return core.NumericSeries(name, s.Float())
	}
	vals := make([]string, s.Len())
	for i := range vals {
		if e := s.Elem(i); !e.IsNA() {
			vals[i] = e.String()
		}
	}
	return core.CategoricalSeries(name, vals)
}

// Fetch downloads and parses the CSV at url.
func Fetch(ctx context.Context, client *http.Client, url string) (dataframe.DataFrame, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("build request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return dataframe.DataFrame{}, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}
	return ReadCSV(resp.Body)
}

// Options configures Load.
type Options struct {
	URL     string
	Timeout time.Duration
	Offline bool
	Seed    int64
	Rows    int
	Client  *http.Client
	Logger  *slog.Logger
}

// Load fetches the manifest and falls back to Synthetic on any error.
// It never fails.
func Load(ctx context.Context, opts Options) (dataframe.DataFrame, Source) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	if opts.Rows <= 0 {
		opts.Rows = SyntheticRows
	}

	if !opts.Offline && opts.URL != "" {
		fctx := ctx
		if opts.Timeout > 0 {
			var cancel context.CancelFunc
			fctx, cancel = context.WithTimeout(ctx, opts.Timeout)
			defer cancel()
		}
		f, err := Fetch(fctx, opts.Client, opts.URL)
		if err == nil {
			log.Info("dataset loaded", "source", SourceRemote, "url", opts.URL, "rows", f.Nrow(), "cols", f.Ncol())
			return f, SourceRemote
		}
		log.Warn("remote fetch failed, using synthetic dataset", "url", opts.URL, "error", err)
	}

	f := Synthetic(opts.Seed, opts.Rows)
	log.Info("dataset loaded", "source", SourceSynthetic, "seed", opts.Seed, "rows", f.Nrow(), "cols", f.Ncol())
	return f, SourceSynthetic
}
