package model

import "github.com/emilwest/IBM-model-1/matrix"

// Counts are the expected counts gathered by one E-step and consumed
// by the following M-step. They are allocated once per model and
// cleared with Reset at the start of every iteration.
type Counts struct {
	// [e, f]-th element is the expected number of times source word f
	// generated target word e
	expected *matrix.Float64Matrix
	// [f]-th element is the expected number of target words generated
	// by source word f, i.e. the f-th column sum of expected
	totalForSource []float64
}

func NewCounts(targetSize, sourceSize uint32) *Counts {
	return &Counts{
		expected:       matrix.NewFloat64Matrix(targetSize, sourceSize),
		totalForSource: make([]float64, sourceSize),
	}
}

// Reset zeroes the counts without reallocating them.
func (c *Counts) Reset() {
	c.expected.Reset()
	clear(c.totalForSource)
}

func (c *Counts) add(e, f uint32, val float64) {
	c.expected.Incr(e, f, val)
	c.totalForSource[f] += val
}

// Expected returns the expected count of (e, f).
func (c *Counts) Expected(e, f uint32) float64 {
	return c.expected.Get(e, f)
}

// TotalForSource returns the expected count of source word f summed
// over all target words.
func (c *Counts) TotalForSource(f uint32) float64 {
	return c.totalForSource[f]
}
