package sstable

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/golang/glog"

	"github.com/emilwest/IBM-model-1/table"
	"github.com/emilwest/IBM-model-1/vocab"
)

var ErrCorrupted = errors.New("sstable: table corrupted")

// Snapshot is a translation table read back from disk together with
// the vocabularies it is indexed by.
type Snapshot struct {
	Table  *table.TranslationTable
	Source *vocab.Vocab
	Target *vocab.Vocab
	RunID  string

	// Iterations is the number of EM iterations behind the table.
	Iterations int
}

// Save writes t to fn. The file is plain text, fields separated by
// tabs:
//
//	rows cols runID iterations
//	target word, one line per row
//	source word, one line per column
//	e f t(e|f), one line per co-occurring cell
//
// Words never contain whitespace since they come out of the tokenizer.
func Save(fn string, t table.Reader, src, tgt *vocab.Vocab, runID string, iterations int) error {
	out, err := os.OpenFile(fn, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	r, c := t.Shape()
	if r != tgt.Size() || c != src.Size() {
		return fmt.Errorf("sstable: table shape %dx%d does not match vocabularies %dx%d",
			r, c, tgt.Size(), src.Size())
	}

	w := bufio.NewWriter(out)
	// write the table shape
	fmt.Fprintf(w, "%d\t%d\t%s\t%d\n", r, c, runID, iterations)
	for _, word := range tgt.Words() {
		fmt.Fprintln(w, word)
	}
	for _, word := range src.Words() {
		fmt.Fprintln(w, word)
	}
	for e := uint32(0); e < r; e += 1 {
		for f := uint32(0); f < c; f += 1 {
			if t.Observed(e, f) {
				fmt.Fprintf(w, "%d\t%d\t%s\n", e, f, strconv.FormatFloat(t.Get(e, f), 'e', -1, 64))
			}
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return out.Close()
}

// Load reads a table written by Save. Cell lines with the wrong number
// of fields are logged and skipped; any other malformed line is
// ErrCorrupted. Headers without the iteration count load as zero
// iterations.
func Load(fn string) (*Snapshot, error) {
	file, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	if !scanner.Scan() {
		return nil, fmt.Errorf("%w: shape not found in %s", ErrCorrupted, fn)
	}
	header := strings.Split(scanner.Text(), "\t")
	if len(header) != 3 && len(header) != 4 {
		return nil, fmt.Errorf("%w: bad header %q", ErrCorrupted, scanner.Text())
	}
	row, err := strconv.ParseUint(header[0], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: line 1: %v", ErrCorrupted, err)
	}
	col, err := strconv.ParseUint(header[1], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: line 1: %v", ErrCorrupted, err)
	}
	iterations := 0
	if len(header) == 4 {
		n, err := strconv.ParseUint(header[3], 10, 31)
		if err != nil {
			return nil, fmt.Errorf("%w: line 1: %v", ErrCorrupted, err)
		}
		iterations = int(n)
	}
	if row == 0 || col == 0 {
		return nil, fmt.Errorf("%w: empty shape %dx%d", ErrCorrupted, row, col)
	}

	tgt, err := readWords(scanner, int(row))
	if err != nil {
		return nil, err
	}
	src, err := readWords(scanner, int(col))
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Table:  table.New(uint32(row), uint32(col)),
		Source: src,
		Target: tgt,
		RunID:  header[2],

		Iterations: iterations,
	}

	lineIdx := 1 + int(row) + int(col)
	for scanner.Scan() {
		lineIdx += 1
		txt := scanner.Text()
		value := strings.Split(txt, "\t")
		if len(value) != 3 {
			log.Infof("data corrupted, row %d, data %s", lineIdx, txt)
			continue
		}
		e, err := strconv.ParseUint(value[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrCorrupted, lineIdx, err)
		}
		f, err := strconv.ParseUint(value[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrCorrupted, lineIdx, err)
		}
		if e >= row || f >= col {
			return nil, fmt.Errorf("%w: cell %d,%d outside %dx%d at line %d",
				ErrCorrupted, e, f, row, col, lineIdx)
		}
		val, err := strconv.ParseFloat(value[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrCorrupted, lineIdx, err)
		}
		snap.Table.Observe(uint32(e), uint32(f))
		snap.Table.Set(uint32(e), uint32(f), val)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return snap, nil
}

func readWords(scanner *bufio.Scanner, n int) (*vocab.Vocab, error) {
	words := make([]string, 0, n)
	for len(words) < n {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: expected %d words, found %d", ErrCorrupted, n, len(words))
		}
		words = append(words, scanner.Text())
	}
	v, ok := vocab.FromWords(words)
	if !ok {
		return nil, fmt.Errorf("%w: duplicate words in vocabulary", ErrCorrupted)
	}
	return v, nil
}
