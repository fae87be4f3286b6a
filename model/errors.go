package model

import "errors"

var (
	ErrBadIterations = errors.New("model: iteration limit must be positive")
	ErrBadCriterion  = errors.New("model: unknown convergence criterion")
	ErrVocabMismatch = errors.New("model: saved table does not match corpus vocabulary")
)
