package sstable

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilwest/IBM-model-1/table"
	"github.com/emilwest/IBM-model-1/vocab"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	src := vocab.Build([][]string{{"ett", "hus"}})
	tgt := vocab.Build([][]string{{"a", "house", "the"}})
	tt := table.New(tgt.Size(), src.Size())
	tt.Observe(0, 0)
	tt.Observe(1, 1)
	tt.Observe(2, 1)
	tt.Set(0, 0, 1.0)
	tt.Set(1, 1, 0.625)
	tt.Set(2, 1, 0.0)

	fn := filepath.Join(t.TempDir(), "table.t1")
	require.NoError(t, Save(fn, tt, src, tgt, "run-1", 7))

	snap, err := Load(fn)
	require.NoError(t, err)

	assert.Equal(t, "run-1", snap.RunID)
	assert.Equal(t, 7, snap.Iterations)
	assert.Equal(t, src.Words(), snap.Source.Words())
	assert.Equal(t, tgt.Words(), snap.Target.Words())
	assert.Equal(t, uint(3), snap.Table.ObservedCount())
	assert.True(t, snap.Table.Observed(2, 1))
	assert.False(t, snap.Table.Observed(0, 1))
	assert.Equal(t, 0.625, snap.Table.Get(1, 1))
	assert.Equal(t, float64(0), snap.Table.Get(2, 1))
	assert.InDelta(t, 0.0, tt.Distance(snap.Table), 1e-12)
}

func TestSaveRejectsShapeMismatch(t *testing.T) {
	src := vocab.Build([][]string{{"ett"}})
	tgt := vocab.Build([][]string{{"a", "one"}})

	err := Save(filepath.Join(t.TempDir(), "t"), table.New(1, 1), src, tgt, "", 0)
	assert.Error(t, err)
}

func TestLoadCorrupted(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) string {
		fn := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
		return fn
	}

	_, err := Load(write("empty", ""))
	assert.ErrorIs(t, err, ErrCorrupted)

	_, err = Load(write("short", "2\t1\tr\na\n"))
	assert.ErrorIs(t, err, ErrCorrupted)

	_, err = Load(write("dup", "2\t1\tr\na\na\nett\n"))
	assert.ErrorIs(t, err, ErrCorrupted)

	_, err = Load(write("range", "1\t1\tr\na\nett\n3\t0\t1.0\n"))
	assert.ErrorIs(t, err, ErrCorrupted)

	_, err = Load(write("rows", "x\t1\tr\na\nett\n"))
	assert.ErrorIs(t, err, ErrCorrupted)

	_, err = Load(write("iterations", "1\t1\tr\t-2\na\nett\n"))
	assert.ErrorIs(t, err, ErrCorrupted)

	_, err = Load(write("id", "1\t1\tr\na\nett\nx\t0\t0.5\n"))
	assert.ErrorIs(t, err, ErrCorrupted)
	assert.ErrorContains(t, err, "line 4")

	_, err = Load(write("prob", "1\t1\tr\na\nett\n0\t0\tnope\n"))
	assert.ErrorIs(t, err, ErrCorrupted)
	assert.ErrorContains(t, err, "line 4")

	// lines with the wrong number of fields are skipped
	snap, err := Load(write("skip", "1\t1\tr\na\nett\nbogus\n0\t0\t5.000000e-01\n"))
	require.NoError(t, err)
	assert.Equal(t, 0.5, snap.Table.Get(0, 0))
	assert.Equal(t, 0, snap.Iterations)

	_, err = Load(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
