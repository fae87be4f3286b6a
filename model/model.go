package model

import (
	"context"
	"fmt"

	"github.com/emilwest/IBM-model-1/corpus"
	"github.com/emilwest/IBM-model-1/table"
)

var constructors = make(map[string]ModelCtor)

// the common interface word alignment models should follow
type Model interface {
	// train until crit is satisfied, calling hook after every iteration
	Train(ctx context.Context, crit Criterion, hook Hook) error
	// read-only view of the current translation table
	Table() table.Reader
	// training state and number of completed iterations
	State() State
	Iteration() int
	// serialize the translation table
	Save(fn string) error
	// deserialize a translation table trained on the same corpus
	Load(fn string) error
}

// new models should register themselves using this function
func Register(modelType string, m ModelCtor) {
	constructors[modelType] = m
}

type ModelCtor func(dat *corpus.Corpus, opts Options) Model

func GetModel(modelType string) (ModelCtor, error) {
	if _, ok := constructors[modelType]; !ok {
		return nil, fmt.Errorf("model %s not registered", modelType)
	}
	return constructors[modelType], nil
}

// Options are the training hyperparameters shared by all models.
type Options struct {
	// source words whose expected count is at or below Epsilon in an
	// iteration keep their previous probabilities
	Epsilon float64
	// RunID tags saved tables
	RunID string
}

// DefaultEpsilon is the near-zero denominator guard of the M-step.
const DefaultEpsilon = 0.01

// Hook receives the table after every completed iteration.
type Hook func(stats IterationStats, t table.Reader)

// State is a model's training state.
type State int

const (
	Initialized State = iota
	Training
	Converged
)

func (s State) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case Training:
		return "training"
	case Converged:
		return "converged"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// IterationStats summarizes one completed EM iteration.
type IterationStats struct {
	// 1-based iteration number
	Iteration int
	// corpus log-likelihood (natural log) under the table the
	// iteration started from
	LogLikelihood float64
	// sum |t_before(e|f) - t_after(e|f)| over the whole table
	TotalChange float64
	// source words re-estimated and source words left unchanged by
	// the epsilon guard
	UpdatedSources int
	GuardedSources int
}
