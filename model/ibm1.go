package model

import (
	"context"
	"fmt"
	"math"
	"slices"

	log "github.com/golang/glog"

	"github.com/emilwest/IBM-model-1/corpus"
	"github.com/emilwest/IBM-model-1/sstable"
	"github.com/emilwest/IBM-model-1/table"
)

func init() {
	Register("ibm1", NewIBM1)
}

// DefaultIterations is the iteration limit used when Train is given no
// criterion.
const DefaultIterations = 5

type IBM1 struct {
	data *corpus.Corpus
	opts Options

	tt     *table.TranslationTable // t(e|f), rows are target words
	counts *Counts                 // reused by every iteration
	z      []float64               // per target occurrence normalizer

	state     State
	iteration int
}

// NewIBM1 creates an IBM Model 1 trainer over dat. Every pair of words
// that co-occurs in a sentence pair starts with the uniform probability
// 1/|target vocabulary|.
func NewIBM1(dat *corpus.Corpus, opts Options) Model {
	nE, nF := dat.TargetVocab.Size(), dat.SourceVocab.Size()
	m := &IBM1{
		data:   dat,
		opts:   opts,
		tt:     table.New(nE, nF),
		counts: NewCounts(nE, nF),
	}

	maxLen := 0
	for _, p := range dat.Pairs {
		for _, e := range p.Target {
			for _, f := range p.Source {
				m.tt.Observe(e, f)
			}
		}
		maxLen = max(maxLen, len(p.Target))
	}
	m.z = make([]float64, maxLen)
	m.tt.InitializeUniform(1.0 / float64(nE))

	log.Infof("ibm1: %d x %d table, %d co-occurring pairs",
		nE, nF, m.tt.ObservedCount())
	return m
}

// Train runs EM iterations until crit is satisfied (DefaultIterations
// when crit is nil). After every iteration the table is a complete
// estimate and is handed to hook. If ctx is cancelled mid iteration the
// partial counts are discarded and the table keeps the estimate of the
// last completed iteration. Training a converged model is a no-op, and
// so is training a resumed model whose iterations already reach the
// iteration cap of crit.
func (m *IBM1) Train(ctx context.Context, crit Criterion, hook Hook) error {
	if m.state == Converged {
		return nil
	}
	if crit == nil {
		crit = FixedCount{N: DefaultIterations}
	}
	if n, ok := iterationCap(crit); ok && m.iteration >= n {
		log.Infof("ibm1: %d iterations already done, cap is %d", m.iteration, n)
		m.state = Converged
		return nil
	}
	m.state = Training

	for {
		m.counts.Reset()
		ll, err := m.expect(ctx, m.counts)
		if err != nil {
			return fmt.Errorf("iteration %d: %w", m.iteration+1, err)
		}
		change, updated, guarded := m.maximize(m.counts)
		m.iteration += 1

		stats := IterationStats{
			Iteration:      m.iteration,
			LogLikelihood:  ll,
			TotalChange:    change,
			UpdatedSources: updated,
			GuardedSources: guarded,
		}
		log.Infof("iter %5d, likelihood %f, change %f", stats.Iteration, ll, change)
		if log.V(1) {
			log.Infof("iter %5d, %d source words updated, %d below epsilon %g",
				stats.Iteration, updated, guarded, m.opts.Epsilon)
		}

		if hook != nil {
			hook(stats, readOnly{m.tt})
		}
		if crit.Done(stats) {
			m.state = Converged
			return nil
		}
	}
}

// expect is the E-step. For every sentence pair and every target word
// occurrence e it spreads one count over the source word occurrences f
// in proportion to t(e|f). It returns the corpus log-likelihood under
// the current table.
func (m *IBM1) expect(ctx context.Context, acc *Counts) (float64, error) {
	ll := float64(0.0)
	for _, p := range m.data.Pairs {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		lnF := math.Log(float64(len(p.Source)))
		z := m.z[:len(p.Target)]
		for i, e := range p.Target {
			z[i] = 0.0
			for _, f := range p.Source {
				z[i] += m.tt.Get(e, f)
			}
			if z[i] > 0 {
				ll += math.Log(z[i]) - lnF
			}
		}

		for i, e := range p.Target {
			// no source word can generate e under the current table
			if z[i] <= 0 {
				continue
			}
			for _, f := range p.Source {
				acc.add(e, f, m.tt.Get(e, f)/z[i])
			}
		}
	}
	return ll, nil
}

// maximize is the M-step: t(e|f) = count(e|f) / total(f) for every
// source word whose total exceeds the epsilon guard. Columns at or
// below the guard are left untouched.
func (m *IBM1) maximize(acc *Counts) (change float64, updated, guarded int) {
	nE, nF := m.tt.Shape()
	for f := uint32(0); f < nF; f += 1 {
		total := acc.totalForSource[f]
		if total <= m.opts.Epsilon {
			guarded += 1
			continue
		}
		updated += 1
		for e := uint32(0); e < nE; e += 1 {
			estimate := acc.expected.Get(e, f) / total
			change += math.Abs(estimate - m.tt.Get(e, f))
			m.tt.Set(e, f, estimate)
		}
	}
	return change, updated, guarded
}

func (m *IBM1) Table() table.Reader {
	return readOnly{m.tt}
}

func (m *IBM1) State() State {
	return m.state
}

func (m *IBM1) Iteration() int {
	return m.iteration
}

// serialize the translation table
func (m *IBM1) Save(fn string) error {
	return sstable.Save(fn, m.tt, m.data.SourceVocab, m.data.TargetVocab, m.opts.RunID, m.iteration)
}

// Load replaces the table with one saved by Save for a corpus with the
// same vocabularies, e.g. to continue training. Iteration numbering
// continues from the saved table. Pairs that co-occur in the current
// corpus stay observed even when the saved corpus never paired them;
// they start from the saved value, zero if it has none.
func (m *IBM1) Load(fn string) error {
	snap, err := sstable.Load(fn)
	if err != nil {
		return err
	}
	if !slices.Equal(snap.Source.Words(), m.data.SourceVocab.Words()) ||
		!slices.Equal(snap.Target.Words(), m.data.TargetVocab.Words()) {
		return fmt.Errorf("%w: %s", ErrVocabMismatch, fn)
	}
	for _, p := range m.data.Pairs {
		for _, e := range p.Target {
			for _, f := range p.Source {
				snap.Table.Observe(e, f)
			}
		}
	}
	m.tt = snap.Table
	m.iteration = snap.Iterations
	log.Infof("ibm1: loaded table of run %s after %d iterations from %s",
		snap.RunID, snap.Iterations, fn)
	return nil
}

// readOnly hides the mutators of the table from hooks.
type readOnly struct {
	t *table.TranslationTable
}

func (r readOnly) Shape() (uint32, uint32) { return r.t.Shape() }
func (r readOnly) Get(e, f uint32) float64 { return r.t.Get(e, f) }
func (r readOnly) Observed(e, f uint32) bool { return r.t.Observed(e, f) }
