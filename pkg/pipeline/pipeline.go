package pipeline

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gota/gota/dataframe"
)

// ErrSkip is returned by a Step whose prerequisite columns are absent.
var ErrSkip = errors.New("step skipped")

// Step returns a transformed copy of a table. gota frames are values, so a
// step never changes the frame it was given.
type Step interface {
	Name() string
	Apply(df dataframe.DataFrame) (dataframe.DataFrame, error)
}

// StepFunc adapts a function to the Step interface.
type StepFunc struct {
	Label string
	Fn    func(df dataframe.DataFrame) (dataframe.DataFrame, error)
}

func (s StepFunc) Name() string { return s.Label }

func (s StepFunc) Apply(df dataframe.DataFrame) (dataframe.DataFrame, error) { return s.Fn(df) }

// Outcome records what happened to one step of a run.
type Outcome struct {
	Step    string
	Skipped bool
	Reason  string
}

// Pipeline chains multiple steps.
type Pipeline struct {
	steps  []Step
	logger *slog.Logger
}

func NewPipeline(logger *slog.Logger, steps ...Step) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{steps: steps, logger: logger}
}

// Run applies every step in order, each to the previous step's result. A
// step returning ErrSkip is recorded and its input carried forward; any
// other error stops the run.
func (p *Pipeline) Run(df dataframe.DataFrame) (dataframe.DataFrame, []Outcome, error) {
	out := make([]Outcome, 0, len(p.steps))
	for _, step := range p.steps {
		next, err := step.Apply(df)
		if err == nil && next.Err != nil {
			err = next.Err
		}
		switch {
		case err == nil:
			df = next
			out = append(out, Outcome{Step: step.Name()})
		case errors.Is(err, ErrSkip):
			p.logger.Debug("step skipped", "step", step.Name(), "reason", err.Error())
			out = append(out, Outcome{Step: step.Name(), Skipped: true, Reason: err.Error()})
		default:
			return df, out, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}
	return df, out, nil
}
