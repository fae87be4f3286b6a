package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilwest/IBM-model-1/model"
	"github.com/emilwest/IBM-model-1/table"
	"github.com/emilwest/IBM-model-1/vocab"
)

func fixture() (*table.TranslationTable, *vocab.Vocab, *vocab.Vocab) {
	src := vocab.Build([][]string{{"das", "haus"}})
	tgt := vocab.Build([][]string{{"the", "house"}})
	tt := table.New(tgt.Size(), src.Size())
	for e := uint32(0); e < 2; e += 1 {
		for f := uint32(0); f < 2; f += 1 {
			tt.Observe(e, f)
		}
	}
	tt.Set(0, 0, 0.5)  // t(the|das)
	tt.Set(1, 0, 0.5)  // t(house|das)
	tt.Set(0, 1, 0.25) // t(the|haus)
	tt.Set(1, 1, 0.75) // t(house|haus)
	return tt, src, tgt
}

func TestTopKIsStableDescending(t *testing.T) {
	tt, _, _ := fixture()

	entries := TopK(tt, 10)

	require.Len(t, entries, 4)
	assert.Equal(t, Entry{Target: 1, Source: 1, Prob: 0.75}, entries[0])
	// equal probabilities keep source-major order
	assert.Equal(t, Entry{Target: 0, Source: 0, Prob: 0.5}, entries[1])
	assert.Equal(t, Entry{Target: 1, Source: 0, Prob: 0.5}, entries[2])
	assert.Equal(t, Entry{Target: 0, Source: 1, Prob: 0.25}, entries[3])

	assert.Len(t, TopK(tt, 2), 2)
	assert.Empty(t, TopK(tt, 0))
}

func TestTopKSkipsUnobservedCells(t *testing.T) {
	tt := table.New(2, 1)
	tt.Observe(1, 0)
	tt.Set(0, 0, 0.9)
	tt.Set(1, 0, 0.1)

	entries := TopK(tt, 10)

	require.Len(t, entries, 1)
	assert.Equal(t, uint32(1), entries[0].Target)
}

func TestPerplexity(t *testing.T) {
	entries := []Entry{{Prob: 0.5}, {Prob: 0.25}, {Prob: 0}, {Prob: 1}}
	assert.InDelta(t, 3.0, Perplexity(entries), 1e-12)
	assert.Equal(t, float64(0), Perplexity(nil))
}

func TestIteration(t *testing.T) {
	tt, src, tgt := fixture()
	var buf bytes.Buffer
	r := New(&buf, src, tgt, 3)

	r.Iteration(model.IterationStats{Iteration: 2}, tt)
	require.NoError(t, r.Err())

	out := buf.String()
	assert.Contains(t, out, "Iteration: 2\n")
	assert.Contains(t, out, "word e given f")
	lines := strings.Split(out, "\n")
	assert.Equal(t, "t(house|haus)        0.750               ", lines[5])
	assert.Equal(t, "t(the|das)           0.500               ", lines[6])
	assert.Equal(t, "t(house|das)         0.500               ", lines[7])
	assert.NotContains(t, out, "t(the|haus)")
	// -(log2 0.75 + 2 log2 0.5) = 2.415
	assert.Contains(t, out, "\nPerplexity: 2.4\n")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestReporterKeepsFirstError(t *testing.T) {
	tt, src, tgt := fixture()
	r := New(failingWriter{}, src, tgt, 0)

	r.Iteration(model.IterationStats{Iteration: 1}, tt)
	r.SystemInfo(time.Second, "")

	assert.EqualError(t, r.Err(), "disk full")
}

func TestSystemInfo(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, nil, nil, 0)

	r.SystemInfo(1500*time.Millisecond, "run-7")
	require.NoError(t, r.Err())

	out := buf.String()
	assert.Contains(t, out, "Elapsed time: 1.500 seconds.")
	assert.Contains(t, out, "Run ID: run-7")
	assert.Contains(t, out, "Available processor cores:")
	assert.Contains(t, out, "Go version: go")
	assert.Contains(t, out, "CPU: ")
}
