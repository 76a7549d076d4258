/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: counter_test.go
Description: Unit tests for the streaming n-gram counter. Covers chunk
boundary carry-over, short and empty inputs, and exact counts for known
byte patterns.
*/

package ngram_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/kleascm/akaylee-archrec/pkg/ngram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chunkReader returns at most chunk bytes per Read call, forcing the
// counter to handle n-grams that straddle read boundaries.
type chunkReader struct {
	data  []byte
	chunk int
	pos   int
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := r.chunk
	if n > len(p) {
		n = len(p)
	}
	if n > len(r.data)-r.pos {
		n = len(r.data) - r.pos
	}
	copy(p, r.data[r.pos:r.pos+n])
	r.pos += n
	return n, nil
}

// stuckReader never delivers data and never errors, which the io.Reader
// contract permits
type stuckReader struct{}

func (stuckReader) Read(p []byte) (int, error) {
	return 0, nil
}

// tableSum adds up every cell of a count table
func tableSum(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum
}

// assertTablesEqual compares two tables cell by cell without allocating
func assertTablesEqual(t *testing.T, want, got []float64, name string) {
	t.Helper()
	require.Equal(t, len(want), len(got))
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("%s table mismatch at index %#x: want %v, got %v", name, i, want[i], got[i])
		}
	}
}

// TestCountKnownPattern verifies exact counts for a small known input
func TestCountKnownPattern(t *testing.T) {
	model := ngram.NewModel("")
	require.NoError(t, model.CountReader(bytes.NewReader([]byte("abca"))))

	// Bigrams: ab, bc, ca
	assert.Equal(t, 1.0, model.Bigram[int('a')<<8|int('b')])
	assert.Equal(t, 1.0, model.Bigram[int('b')<<8|int('c')])
	assert.Equal(t, 1.0, model.Bigram[int('c')<<8|int('a')])
	assert.Equal(t, 3.0, tableSum(model.Bigram))

	// Trigrams: abc, bca
	assert.Equal(t, 1.0, model.Trigram[int('a')<<16|int('b')<<8|int('c')])
	assert.Equal(t, 1.0, model.Trigram[int('b')<<16|int('c')<<8|int('a')])
	assert.Equal(t, 2.0, tableSum(model.Trigram))
}

// TestCountChunkBoundary verifies that splitting a file into multiple
// read chunks yields identical counts to one contiguous read: every
// n-gram spanning the boundary must be counted exactly once.
func TestCountChunkBoundary(t *testing.T) {
	data := make([]byte, 200)
	for i := range data {
		data[i] = byte(i * 7)
	}

	whole := ngram.NewModel("")
	require.NoError(t, whole.CountReader(bytes.NewReader(data)))

	chunked := ngram.NewModel("")
	require.NoError(t, chunked.CountReader(&chunkReader{data: data, chunk: 100}))

	assert.Equal(t, 199.0, tableSum(whole.Bigram))
	assert.Equal(t, 198.0, tableSum(whole.Trigram))
	assertTablesEqual(t, whole.Bigram, chunked.Bigram, "bigram")
	assertTablesEqual(t, whole.Trigram, chunked.Trigram, "trigram")
}

// TestCountSingleByteChunks pushes the boundary handling to the extreme
// of one byte per read
func TestCountSingleByteChunks(t *testing.T) {
	data := []byte{0x00, 0x01, 0x00, 0x01, 0xff}

	whole := ngram.NewModel("")
	require.NoError(t, whole.CountReader(bytes.NewReader(data)))

	chunked := ngram.NewModel("")
	require.NoError(t, chunked.CountReader(&chunkReader{data: data, chunk: 1}))

	assertTablesEqual(t, whole.Bigram, chunked.Bigram, "bigram")
	assertTablesEqual(t, whole.Trigram, chunked.Trigram, "trigram")
}

// TestCountStuckReader verifies that a reader returning (0, nil)
// indefinitely surfaces io.ErrNoProgress instead of looping forever
func TestCountStuckReader(t *testing.T) {
	model := ngram.NewModel("")
	err := model.CountReader(stuckReader{})
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrNoProgress)
}

// TestCountShortInputs verifies the short-file edge cases: inputs
// shorter than two bytes yield zero bigram counts, inputs shorter than
// three bytes yield zero trigram counts.
func TestCountShortInputs(t *testing.T) {
	cases := []struct {
		name         string
		data         []byte
		wantBigrams  float64
		wantTrigrams float64
	}{
		{"empty", nil, 0, 0},
		{"one byte", []byte{0x42}, 0, 0},
		{"two bytes", []byte{0x42, 0x43}, 1, 0},
		{"three bytes", []byte{0x42, 0x43, 0x44}, 2, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			model := ngram.NewModel("")
			require.NoError(t, model.CountReader(bytes.NewReader(tc.data)))
			assert.Equal(t, tc.wantBigrams, tableSum(model.Bigram))
			assert.Equal(t, tc.wantTrigrams, tableSum(model.Trigram))
		})
	}
}
