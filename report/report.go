// Package report formats training progress for humans. It only ever
// reads the translation table.
package report

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/emilwest/IBM-model-1/model"
	"github.com/emilwest/IBM-model-1/table"
	"github.com/emilwest/IBM-model-1/vocab"
)

// DefaultLimit is the number of rows printed per iteration.
const DefaultLimit = 10

// Entry is one cell of the translation table.
type Entry struct {
	Target uint32
	Source uint32
	Prob   float64
}

// TopK returns the k co-occurring cells with the highest probability.
// Cells are enumerated source word first, and ties keep that order.
func TopK(t table.Reader, k int) []Entry {
	nE, nF := t.Shape()
	var entries []Entry
	for f := uint32(0); f < nF; f += 1 {
		for e := uint32(0); e < nE; e += 1 {
			if t.Observed(e, f) {
				entries = append(entries, Entry{Target: e, Source: f, Prob: t.Get(e, f)})
			}
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Prob > entries[j].Prob
	})
	if k >= 0 && len(entries) > k {
		entries = entries[:k]
	}
	return entries
}

// Perplexity is -sum(log2 p) over the non-zero probabilities of
// entries. It only describes the displayed rows and says nothing about
// how well the table fits the corpus.
func Perplexity(entries []Entry) float64 {
	perplexity := float64(0.0)
	for _, en := range entries {
		if en.Prob != 0 {
			perplexity -= math.Log2(en.Prob)
		}
	}
	return perplexity
}

// Reporter writes one block per training iteration. The first write
// error is kept and returned by Err; later writes are skipped.
type Reporter struct {
	w     io.Writer
	src   *vocab.Vocab
	tgt   *vocab.Vocab
	limit int
	err   error
}

func New(w io.Writer, src, tgt *vocab.Vocab, limit int) *Reporter {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Reporter{w: w, src: src, tgt: tgt, limit: limit}
}

// Iteration prints the iteration header, the highest probabilities and
// their perplexity. It has the signature of model.Hook.
func (r *Reporter) Iteration(stats model.IterationStats, t table.Reader) {
	entries := TopK(t, r.limit)

	r.printf("\n-------------------\nIteration: %d\n-------------------\n", stats.Iteration)
	r.printf("%-20s %-20s\n", "word e given f", "t(e|f)")
	for _, en := range entries {
		r.printf("%-20s %-20.3f\n", r.Label(en), en.Prob)
	}
	r.printf("\nPerplexity: %.1f\n", Perplexity(entries))
}

// Label renders an entry as t(e|f).
func (r *Reporter) Label(en Entry) string {
	return fmt.Sprintf("t(%s|%s)", r.tgt.Word(en.Target), r.src.Word(en.Source))
}

func (r *Reporter) Err() error {
	return r.err
}

func (r *Reporter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}
