package corpus

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCorpus   = errors.New("corpus: no sentence pairs")
	ErrEmptySentence = errors.New("corpus: sentence has no tokens")
	ErrMissingPath   = errors.New("corpus: missing corpus path")
)

// ReadError reports a corpus file that is missing or unreadable.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("corpus: read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// AlignmentError reports source and target corpora with differing
// sentence counts.
type AlignmentError struct {
	SourceLines int
	TargetLines int
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("corpus: source has %d sentences but target has %d",
		e.SourceLines, e.TargetLines)
}

// Side names one language of the parallel corpus.
type Side string

const (
	Source Side = "source"
	Target Side = "target"
)

// SentenceError reports a malformed sentence, Line is 1-based.
type SentenceError struct {
	Side Side
	Line int
	Err  error
}

func (e *SentenceError) Error() string {
	return fmt.Sprintf("corpus: %s line %d: %v", e.Side, e.Line, e.Err)
}

func (e *SentenceError) Unwrap() error { return e.Err }
