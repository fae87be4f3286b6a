package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

const maxLineSize = 1024 * 1024

// ReadLines reads fn one sentence per line, decoding it from the named
// encoding ("utf-8" when empty). Any failure is returned as *ReadError.
func ReadLines(fn string, encoding string) ([]string, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, &ReadError{Path: fn, Err: err}
	}
	defer f.Close()

	lines, err := readLines(f, encoding)
	if err != nil {
		return nil, &ReadError{Path: fn, Err: err}
	}
	return lines, nil
}

func readLines(r io.Reader, encoding string) ([]string, error) {
	if encoding == "" {
		encoding = "utf-8"
	}
	enc, err := htmlindex.Get(encoding)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", encoding, err)
	}

	var lines []string
	scanner := bufio.NewScanner(transform.NewReader(r, enc.NewDecoder()))
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
