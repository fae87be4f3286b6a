package corpus

import (
	log "github.com/golang/glog"

	"github.com/emilwest/IBM-model-1/vocab"
)

// Corpus is a sentence aligned parallel corpus with both sides
// resolved to vocabulary ids.
type Corpus struct {
	SourceVocab *vocab.Vocab
	TargetVocab *vocab.Vocab
	Pairs       []Pair
}

// Pair is one aligned sentence pair. Every token occurrence is kept,
// repeated words included, in sentence order.
type Pair struct {
	Source []uint32
	Target []uint32
}

// Options controls how corpus files are read.
type Options struct {
	// Encoding of both files, "utf-8" when empty.
	Encoding string
}

// Load reads the source and target corpora, line i of one file being
// the translation of line i of the other.
func Load(sourceFn, targetFn string, opts Options) (*Corpus, error) {
	src, err := ReadLines(sourceFn, opts.Encoding)
	if err != nil {
		return nil, err
	}
	tgt, err := ReadLines(targetFn, opts.Encoding)
	if err != nil {
		return nil, err
	}

	c, err := New(src, tgt)
	if err != nil {
		return nil, err
	}

	log.Infof("number of sentence pairs %d", len(c.Pairs))
	log.Infof("source vocabulary size %d, target vocabulary size %d",
		c.SourceVocab.Size(), c.TargetVocab.Size())
	return c, nil
}

// New tokenizes aligned source and target sentences and builds both
// vocabularies. Corpora of different lengths, empty corpora and
// sentences without tokens are rejected, so training never sees them.
func New(sourceLines, targetLines []string) (*Corpus, error) {
	if len(sourceLines) != len(targetLines) {
		return nil, &AlignmentError{
			SourceLines: len(sourceLines),
			TargetLines: len(targetLines),
		}
	}
	if len(sourceLines) == 0 {
		return nil, ErrEmptyCorpus
	}

	src, err := tokenizeAll(sourceLines, Source)
	if err != nil {
		return nil, err
	}
	tgt, err := tokenizeAll(targetLines, Target)
	if err != nil {
		return nil, err
	}

	c := &Corpus{
		SourceVocab: vocab.Build(src),
		TargetVocab: vocab.Build(tgt),
		Pairs:       make([]Pair, len(src)),
	}
	for k := range src {
		c.Pairs[k] = Pair{
			Source: c.SourceVocab.Encode(src[k]),
			Target: c.TargetVocab.Encode(tgt[k]),
		}
	}
	return c, nil
}

func tokenizeAll(lines []string, side Side) ([][]string, error) {
	sentences := make([][]string, len(lines))
	for i, line := range lines {
		words := Tokenize(line)
		if len(words) == 0 {
			return nil, &SentenceError{Side: side, Line: i + 1, Err: ErrEmptySentence}
		}
		sentences[i] = words
	}
	return sentences, nil
}
