/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: corpus_test.go
Description: Unit tests for the reference corpus. Covers label
derivation, suffix filtering, xz decompression, the corpus bound, and
smoothing of empty samples.
*/

package corpus_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/kleascm/akaylee-archrec/pkg/corpus"
	"github.com/kleascm/akaylee-archrec/pkg/ngram"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

// quietLogger returns a logger that swallows all output
func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// writeXZ writes data to path as an xz stream
func writeXZ(t *testing.T, path string, data []byte) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w, err := xz.NewWriter(f)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
}

// TestDirectorySourceLabels verifies suffix filtering and label
// derivation: "arm.corpus" produces the label "arm", ineligible files
// are skipped, and samples come back in lexicographic order.
func TestDirectorySourceLabels(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "arm.corpus"), []byte{1, 2, 3}, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x86.corpus"), []byte{4, 5, 6}, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.txt"), []byte("not a sample"), 0644))
	writeXZ(t, filepath.Join(dir, "mips.corpus.xz"), []byte{7, 8, 9})

	source := corpus.NewDirectorySource(dir, ".corpus")
	samples, err := source.Samples()
	require.NoError(t, err)
	require.Len(t, samples, 3)

	assert.Equal(t, "arm", samples[0].Label)
	assert.False(t, samples[0].Compressed)
	assert.Equal(t, "mips", samples[1].Label)
	assert.True(t, samples[1].Compressed)
	assert.Equal(t, "x86", samples[2].Label)
}

// TestXZSampleRoundTrip verifies that a compressed sample decompresses
// to its original bytes through the Open function
func TestXZSampleRoundTrip(t *testing.T) {
	dir := t.TempDir()
	payload := []byte("machine code goes here")
	writeXZ(t, filepath.Join(dir, "sparc.corpus.xz"), payload)

	samples, err := corpus.NewDirectorySource(dir, ".corpus").Samples()
	require.NoError(t, err)
	require.Len(t, samples, 1)

	r, err := samples[0].Open()
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

// TestSourceInaccessibleDir verifies that a missing corpus location
// surfaces as an error
func TestSourceInaccessibleDir(t *testing.T) {
	source := corpus.NewDirectorySource(filepath.Join(t.TempDir(), "nope"), ".corpus")
	_, err := source.Samples()
	assert.Error(t, err)
}

// TestBuildBound verifies that supplying more eligible samples than the
// bound does not crash and truncates the corpus to exactly the bound
func TestBuildBound(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.corpus"), []byte{1, 2, 3, 4}, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.corpus"), []byte{5, 6, 7, 8}, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.corpus"), []byte{9, 10, 11, 12}, 0644))

	cfg := &corpus.Config{SmoothingBase: 0.01, MaxModels: 2}
	rc, err := corpus.Build(corpus.NewDirectorySource(dir, ".corpus"), cfg, quietLogger())
	require.NoError(t, err)

	assert.Equal(t, 2, rc.Size())
	assert.Equal(t, []string{"a", "b"}, rc.Labels())
}

// TestBuildRejectsUnsmoothedReferences verifies that reference models
// can never be built without smoothing; strict positivity of reference
// cells is what keeps the divergence defined
func TestBuildRejectsUnsmoothedReferences(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.corpus"), []byte{1, 2}, 0644))

	for _, base := range []float64{0, -0.5} {
		cfg := &corpus.Config{SmoothingBase: base, MaxModels: 10}
		_, err := corpus.Build(corpus.NewDirectorySource(dir, ".corpus"), cfg, quietLogger())
		assert.Error(t, err, "base %g", base)
	}
}

// TestBuildEmptySampleUniform verifies that a zero-byte sample still
// yields a valid reference: smoothing turns the all-zero counts into
// the uniform distribution
func TestBuildEmptySampleUniform(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "void.corpus"), nil, 0644))

	rc, err := corpus.Build(corpus.NewDirectorySource(dir, ".corpus"), corpus.DefaultConfig(), quietLogger())
	require.NoError(t, err)
	require.Equal(t, 1, rc.Size())

	model := rc.Models()[0]
	assert.Equal(t, "void", model.Label)
	assert.InDelta(t, 1.0/float64(ngram.BigramSize), model.Bigram[0], 1e-12)
	assert.InDelta(t, 1.0/float64(ngram.BigramSize), model.Bigram[ngram.BigramSize-1], 1e-12)
	assert.InDelta(t, 1.0/float64(ngram.TrigramSize), model.Trigram[12345], 1e-10)

	sum := 0.0
	for _, v := range model.Bigram {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

// TestBuildNormalization verifies that built reference tables are
// proper probability distributions
func TestBuildNormalization(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "arm.corpus"), []byte{0, 1, 2, 3, 4, 5, 6, 7}, 0644))

	rc, err := corpus.Build(corpus.NewDirectorySource(dir, ".corpus"), corpus.DefaultConfig(), quietLogger())
	require.NoError(t, err)

	model := rc.Models()[0]
	for name, table := range map[string][]float64{"bigram": model.Bigram, "trigram": model.Trigram} {
		sum := 0.0
		for i, v := range table {
			if v < 0 {
				t.Fatalf("%s cell %#x is negative: %v", name, i, v)
			}
			sum += v
		}
		assert.InDelta(t, 1.0, sum, 1e-9, name)
	}
}
