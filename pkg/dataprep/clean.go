package dataprep

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gota/gota/dataframe"

	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/core"
	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/data"
	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/pipeline"
)

// AgeFallback selects what happens to ages whose (pclass, sex) group has no
// known age.
type AgeFallback string

const (
	AgeFallbackNone   AgeFallback = "none"
	AgeFallbackClass  AgeFallback = "class"
	AgeFallbackGlobal AgeFallback = "global"
)

// ParseAgeFallback accepts the names above, case-insensitively. Empty means none.
func ParseAgeFallback(s string) (AgeFallback, error) {
	switch AgeFallback(strings.ToLower(strings.TrimSpace(s))) {
	case "", AgeFallbackNone:
		return AgeFallbackNone, nil
	case AgeFallbackClass:
		return AgeFallbackClass, nil
	case AgeFallbackGlobal:
		return AgeFallbackGlobal, nil
	}
	return "", fmt.Errorf("unknown age fallback %q (want none, class or global)", s)
}

type Options struct {
	AgeFallback AgeFallback
	Logger      *slog.Logger
}

// Clean imputes age, embarked and fare and derives family_size, age_group,
// fare_quartile and is_alone. It returns a new frame; df is left untouched.
func Clean(df dataframe.DataFrame, opts Options) (dataframe.DataFrame, []pipeline.Outcome, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	out, outcomes, err := pipeline.NewPipeline(opts.Logger, Steps(opts)...).Run(df.Copy())
	if err != nil {
		return dataframe.DataFrame{}, outcomes, err
	}
	return out, outcomes, nil
}

// Steps returns the cleaning steps in execution order.
func Steps(opts Options) []pipeline.Step {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return []pipeline.Step{
		pipeline.StepFunc{Label: "fill_age", Fn: func(df dataframe.DataFrame) (dataframe.DataFrame, error) {
			return fillAge(df, opts.AgeFallback, log)
		}},
		pipeline.StepFunc{Label: "fill_embarked", Fn: func(df dataframe.DataFrame) (dataframe.DataFrame, error) {
			out, mode, ok, err := ImputeMode(df, data.ColEmbarked)
			if err != nil {
				return df, skip(err)
			}
			if ok {
				log.Debug("embarked filled", "mode", mode)
			}
			return out, nil
		}},
		pipeline.StepFunc{Label: "fill_fare", Fn: func(df dataframe.DataFrame) (dataframe.DataFrame, error) {
			if !core.Has(df, data.ColPclass) {
				return df, skip(fmt.Errorf("%w: %s", core.ErrColumnNotFound, data.ColPclass))
			}
			out, left, err := ImputeGroupMedian(df, df, data.ColFare, data.ColPclass)
			if err != nil {
				return df, skip(err)
			}
			if left > 0 {
				log.Warn("fares left missing", "rows", left)
			}
			return out, nil
		}},
		derive("family_size", AddFamilySize),
		derive("age_group", AddAgeGroup),
		derive("fare_quartile", AddFareQuartile),
		derive("is_alone", AddIsAlone),
	}
}

func fillAge(df dataframe.DataFrame, fallback AgeFallback, log *slog.Logger) (dataframe.DataFrame, error) {
	if !core.Has(df, data.ColPclass, data.ColSex) {
		return df, skip(fmt.Errorf("%w: %s or %s", core.ErrColumnNotFound, data.ColPclass, data.ColSex))
	}
	ref := df
	out, left, err := ImputeGroupMedian(df, ref, data.ColAge, data.ColPclass, data.ColSex)
	if err != nil {
		return df, skip(err)
	}
	if left == 0 {
		return out, nil
	}

	switch fallback {
	case AgeFallbackClass:
		out, left, err = ImputeGroupMedian(out, ref, data.ColAge, data.ColPclass)
	case AgeFallbackGlobal:
		out, left, err = ImputeGroupMedian(out, ref, data.ColAge)
	}
	if err != nil {
		return df, skip(err)
	}
	if left > 0 {
		log.Warn("ages left missing", "rows", left, "fallback", string(fallback))
	}
	return out, nil
}

func derive(name string, fn func(dataframe.DataFrame) (dataframe.DataFrame, error)) pipeline.Step {
	return pipeline.StepFunc{Label: name, Fn: func(df dataframe.DataFrame) (dataframe.DataFrame, error) {
		out, err := fn(df)
		if err == nil {
			err = out.Err
		}
		if err != nil {
			return df, skip(err)
		}
		return out, nil
	}}
}

func skip(err error) error {
	return fmt.Errorf("%w: %v", pipeline.ErrSkip, err)
}
