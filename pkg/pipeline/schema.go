package pipeline

import (
	"github.com/go-gota/gota/dataframe"

	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/core"
)

// Schema describes the structure of a dataset.
type Schema struct {
	FeatureNames []string
	Types        []core.Kind
}

// SchemaOf reads the schema of df.
func SchemaOf(df dataframe.DataFrame) Schema {
	s := Schema{FeatureNames: df.Names()}
	for _, t := range df.Types() {
		s.Types = append(s.Types, core.KindOf(t))
	}
	return s
}

// Numeric returns the names of the numeric columns in order.
func (s Schema) Numeric() []string {
	var out []string
	for i, t := range s.Types {
		if t == core.Numeric {
			out = append(out, s.FeatureNames[i])
		}
	}
	return out
}
