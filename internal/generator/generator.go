// Package generator builds addition exercises.
package generator

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/addrill/internal/model"
)

// MaxSeed is the inclusive upper bound of generated seeds.
const MaxSeed = 10

// Source draws seed integers for the generator.
type Source interface {
	Seed() int
}

// RandomSource draws uniform seeds in [0, MaxSeed].
type RandomSource struct {
	rnd *rand.Rand
}

// NewRandomSource returns a RandomSource. A zero seed uses the current time.
func NewRandomSource(seed int64) *RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomSource{rnd: rand.New(rand.NewSource(seed))}
}

// Seed implements Source.
func (s *RandomSource) Seed() int {
	return s.rnd.Intn(MaxSeed + 1)
}

// triple holds a consistent a + b = c.
type triple struct {
	a, b, c int
}

// canonicalize orders the seeds so the larger one is the sum and every value
// is nonnegative.
func canonicalize(n1, n2 int) triple {
	d := n1 - n2
	if d >= 0 {
		return triple{a: d, b: n2, c: n1}
	}
	return triple{a: -d, b: n1, c: n2}
}

type hider func(t triple) (model.Equation, int)

var hiders = map[model.Variant]hider{
	model.FindLeft: func(t triple) (model.Equation, int) {
		return model.Equation{Left: model.Absent(), Right: model.Present(t.b), Sum: model.Present(t.c)}, t.a
	},
	model.FindRight: func(t triple) (model.Equation, int) {
		return model.Equation{Left: model.Present(t.a), Right: model.Absent(), Sum: model.Present(t.c)}, t.b
	},
	model.FindSum: func(t triple) (model.Equation, int) {
		return model.Equation{Left: model.Present(t.a), Right: model.Present(t.b), Sum: model.Absent()}, t.c
	},
}

// Generate builds the exercise for variant from two seeds in [0, MaxSeed].
// An unknown variant falls back to FindSum.
func Generate(variant model.Variant, n1, n2 int) model.Round {
	hide, ok := hiders[variant]
	if !ok {
		hide = hiders[model.FindSum]
	}
	eq, answer := hide(canonicalize(n1, n2))
	return model.Round{Equation: eq, Answer: answer}
}

// Next draws two seeds from src and generates an exercise.
func Next(src Source, variant model.Variant) model.Round {
	n1 := src.Seed()
	n2 := src.Seed()
	return Generate(variant, n1, n2)
}
