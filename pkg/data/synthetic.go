package data

import (
	"math"
	"math/rand"

	"github.com/go-gota/gota/dataframe"
)

const (
	SyntheticSeed = 42
	SyntheticRows = 891

	syntheticMissingAge      = 177
	syntheticMissingEmbarked = 2
)

// choice draws an index according to the weights p, which sum to 1.
func choice(r *rand.Rand, p []float64) int {
	u := r.Float64()
	acc := 0.0
	for i, w := range p {
		acc += w
		if u < acc {
			return i
		}
	}
	return len(p) - 1
}

func round(v float64, places int) float64 {
	s := math.Pow(10, float64(places))
	return math.Round(v*s) / s
}

// GeneratePassengers creates n manifest rows from fixed per-field
// distributions, then blanks the age of 177 distinct rows and the port of 2
// distinct rows. The same seed always yields the same rows.
func GeneratePassengers(seed int64, n int) Passengers {
	r := rand.New(rand.NewSource(seed))
	classes := []int{1, 2, 3}
	sexes := []string{"male", "female"}
	ports := []string{"S", "C", "Q"}

	ps := make(Passengers, n)
	for i := range ps {
		age := math.Min(math.Max(r.NormFloat64()*14.5+29.7, 0.42), 80)
		fare := r.ExpFloat64() * 32.2
		ps[i] = Passenger{
			Survived: r.Float64() < 0.38,
			Pclass:   classes[choice(r, []float64{0.24, 0.21, 0.55})],
			Sex:      sexes[choice(r, []float64{0.65, 0.35})],
			Age:      Float(round(age, 2)),
			SibSp:    choice(r, []float64{0.68, 0.23, 0.05, 0.02, 0.02}),
			Parch:    choice(r, []float64{0.76, 0.13, 0.09, 0.02}),
			Fare:     Float(round(fare, 4)),
			Embarked: String(ports[choice(r, []float64{0.72, 0.19, 0.09})]),
		}
	}

	for _, i := range r.Perm(n)[:min(syntheticMissingAge, n)] {
		ps[i].Age = nil
	}
	for _, i := range r.Perm(n)[:min(syntheticMissingEmbarked, n)] {
		ps[i].Embarked = nil
	}
	return ps
}

// Synthetic returns GeneratePassengers as a table.
func Synthetic(seed int64, n int) dataframe.DataFrame {
	return GeneratePassengers(seed, n).Frame()
}
