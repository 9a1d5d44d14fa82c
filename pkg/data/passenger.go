package data

import (
	"math"

	"github.com/go-gota/gota/dataframe"

	"github.com/talla-sadhana/PRODIGY-DS-02/pkg/core"
)

// Column names of the passenger table.
const (
	ColSurvived = "survived"
	ColPclass   = "pclass"
	ColSex      = "sex"
	ColAge      = "age"
	ColSibSp    = "sibsp"
	ColParch    = "parch"
	ColFare     = "fare"
	ColEmbarked = "embarked"

	ColFamilySize   = "family_size"
	ColAgeGroup     = "age_group"
	ColFareQuartile = "fare_quartile"
	ColIsAlone      = "is_alone"
)

// BaseColumns lists the eight manifest columns in table order.
var BaseColumns = []string{ColSurvived, ColPclass, ColSex, ColAge, ColSibSp, ColParch, ColFare, ColEmbarked}

// Passenger is one manifest row. Nil pointers are missing values.
type Passenger struct {
	Survived bool
	Pclass   int
	Sex      string
	Age      *float64
	SibSp    int
	Parch    int
	Fare     *float64
	Embarked *string
}

type Passengers []Passenger

// Frame converts the records to the passenger table.
func (ps Passengers) Frame() dataframe.DataFrame {
	n := len(ps)
	survived := make([]float64, n)
	pclass := make([]float64, n)
	sex := make([]string, n)
	age := make([]float64, n)
	sibsp := make([]float64, n)
	parch := make([]float64, n)
	fare := make([]float64, n)
	embarked := make([]string, n)

	for i, p := range ps {
		if p.Survived {
			survived[i] = 1
		}
		pclass[i] = float64(p.Pclass)
		sex[i] = p.Sex
		age[i] = deref(p.Age)
		sibsp[i] = float64(p.SibSp)
		parch[i] = float64(p.Parch)
		fare[i] = deref(p.Fare)
		if p.Embarked != nil {
			embarked[i] = *p.Embarked
		}
	}

	return dataframe.New(
		core.NumericSeries(ColSurvived, survived),
		core.NumericSeries(ColPclass, pclass),
		core.CategoricalSeries(ColSex, sex),
		core.NumericSeries(ColAge, age),
		core.NumericSeries(ColSibSp, sibsp),
		core.NumericSeries(ColParch, parch),
		core.NumericSeries(ColFare, fare),
		core.CategoricalSeries(ColEmbarked, embarked),
	)
}

func deref(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

// Float and String build optional fields.
func Float(v float64) *float64 { return &v }

func String(s string) *string { return &s }
