package table

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/emilwest/IBM-model-1/matrix"
)

// Reader is a read-only view of a translation table.
type Reader interface {
	// number of target words (rows) and source words (columns)
	Shape() (uint32, uint32)
	// t(e|f) for target word e and source word f
	Get(e, f uint32) float64
	// whether e and f appear together in at least one sentence pair
	Observed(e, f uint32) bool
}

// TranslationTable holds t(e|f) for every target word e and source
// word f. The [e, f]-th element of prob is the probability that source
// word f translates to target word e. observed marks the cells whose
// words co-occur in some sentence pair; the others are never read by
// training.
type TranslationTable struct {
	prob     *matrix.Float64Matrix
	observed *bitset.BitSet
}

// New creates a zero table for targetSize target words and sourceSize
// source words. It panics with matrix.ErrBadShape if either is zero.
func New(targetSize, sourceSize uint32) *TranslationTable {
	return &TranslationTable{
		prob:     matrix.NewFloat64Matrix(targetSize, sourceSize),
		observed: bitset.New(uint(targetSize) * uint(sourceSize)),
	}
}

// get the shape of the table
func (t *TranslationTable) Shape() (uint32, uint32) {
	return t.prob.Shape()
}

// get t(e|f)
func (t *TranslationTable) Get(e, f uint32) float64 {
	return t.prob.Get(e, f)
}

// set t(e|f) to p, no normalization is done here
func (t *TranslationTable) Set(e, f uint32, p float64) {
	t.prob.Set(e, f, p)
}

// Observe marks e and f as co-occurring.
func (t *TranslationTable) Observe(e, f uint32) {
	t.observed.Set(t.bit(e, f))
}

// Observed reports whether e and f co-occur.
func (t *TranslationTable) Observed(e, f uint32) bool {
	return t.observed.Test(t.bit(e, f))
}

// ObservedCount returns the number of co-occurring cells.
func (t *TranslationTable) ObservedCount() uint {
	return t.observed.Count()
}

// InitializeUniform sets every co-occurring cell to value.
func (t *TranslationTable) InitializeUniform(value float64) {
	_, ncol := t.prob.Shape()
	for i, ok := t.observed.NextSet(0); ok; i, ok = t.observed.NextSet(i + 1) {
		t.prob.Set(uint32(i/uint(ncol)), uint32(i%uint(ncol)), value)
	}
}

// SourceSum returns sum over e of t(e|f).
func (t *TranslationTable) SourceSum(f uint32) float64 {
	return t.prob.ColSum(f)
}

// Clone returns a deep copy of the table.
func (t *TranslationTable) Clone() *TranslationTable {
	return &TranslationTable{
		prob:     t.prob.Clone(),
		observed: t.observed.Clone(),
	}
}

// Distance returns sum |t(e|f) - o(e|f)| over all cells.
func (t *TranslationTable) Distance(o *TranslationTable) float64 {
	return t.prob.Distance(o.prob)
}

func (t *TranslationTable) bit(e, f uint32) uint {
	nrow, ncol := t.prob.Shape()
	if e >= nrow || f >= ncol {
		panic(matrix.ErrIndexOutOfRange)
	}
	return uint(e)*uint(ncol) + uint(f)
}
