package model

import (
	"fmt"
	"math"
)

// Criterion decides after each completed iteration whether training
// has converged.
type Criterion interface {
	Done(stats IterationStats) bool
}

// CriterionFunc adapts a function to a Criterion.
type CriterionFunc func(stats IterationStats) bool

func (f CriterionFunc) Done(stats IterationStats) bool { return f(stats) }

// FixedCount stops once N iterations are done, counting those of a
// resumed table.
type FixedCount struct {
	N int
}

func (c FixedCount) Done(stats IterationStats) bool {
	return stats.Iteration >= c.N
}

// LikelihoodDelta stops once the corpus log-likelihood improves by less
// than Threshold between two consecutive iterations, or after
// MaxIterations. It remembers the previous iteration so a value must
// not be shared between training runs.
type LikelihoodDelta struct {
	Threshold     float64
	MaxIterations int

	prev    float64
	hasPrev bool
}

func (c *LikelihoodDelta) Done(stats IterationStats) bool {
	if c.MaxIterations > 0 && stats.Iteration >= c.MaxIterations {
		return true
	}
	prev, hasPrev := c.prev, c.hasPrev
	c.prev, c.hasPrev = stats.LogLikelihood, true
	return hasPrev && math.Abs(stats.LogLikelihood-prev) < c.Threshold
}

// TableDelta stops once the total absolute change of the table in one
// iteration drops below Threshold, or after MaxIterations.
type TableDelta struct {
	Threshold     float64
	MaxIterations int
}

func (c TableDelta) Done(stats IterationStats) bool {
	if c.MaxIterations > 0 && stats.Iteration >= c.MaxIterations {
		return true
	}
	return stats.TotalChange < c.Threshold
}

// iterationCap reports the iteration limit of the built-in criteria.
func iterationCap(crit Criterion) (int, bool) {
	switch c := crit.(type) {
	case FixedCount:
		return c.N, true
	case TableDelta:
		return c.MaxIterations, c.MaxIterations > 0
	case *LikelihoodDelta:
		return c.MaxIterations, c.MaxIterations > 0
	}
	return 0, false
}

// NewCriterion builds a criterion by name: "fixed" runs exactly
// iterations, "likelihood" and "delta" stop at threshold or after
// iterations, whichever comes first.
func NewCriterion(kind string, threshold float64, iterations int) (Criterion, error) {
	if iterations <= 0 {
		return nil, ErrBadIterations
	}
	switch kind {
	case "", "fixed":
		return FixedCount{N: iterations}, nil
	case "likelihood":
		return &LikelihoodDelta{Threshold: threshold, MaxIterations: iterations}, nil
	case "delta":
		return TableDelta{Threshold: threshold, MaxIterations: iterations}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrBadCriterion, kind)
}
