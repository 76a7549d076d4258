/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: divergence_test.go
Description: Unit tests for the Kullback-Leibler divergence scorer.
Covers self-divergence, asymmetry, and the zero-probability skip
convention.
*/

package classify_test

import (
	"math"
	"testing"

	"github.com/kleascm/akaylee-archrec/pkg/classify"
	"github.com/stretchr/testify/assert"
)

// TestSelfDivergenceZero verifies D(P||P) == 0 for a valid distribution
func TestSelfDivergenceZero(t *testing.T) {
	p := []float64{0.5, 0.25, 0.125, 0.125}
	assert.InDelta(t, 0.0, classify.KLDivergence(p, p), 1e-12)
}

// TestDivergenceAsymmetry verifies that the divergence is directed:
// D(P||Q) and D(Q||P) differ for distinct distributions
func TestDivergenceAsymmetry(t *testing.T) {
	p := []float64{0.9, 0.1}
	q := []float64{0.5, 0.5}

	pq := classify.KLDivergence(p, q)
	qp := classify.KLDivergence(q, p)

	assert.Greater(t, pq, 0.0)
	assert.Greater(t, qp, 0.0)
	assert.Greater(t, math.Abs(pq-qp), 1e-6)
}

// TestDivergenceSkipsZeroQueryTerms verifies that cells with P[i] == 0
// contribute nothing, even where the reference has mass
func TestDivergenceSkipsZeroQueryTerms(t *testing.T) {
	p := []float64{1.0, 0.0, 0.0, 0.0}
	q := []float64{0.25, 0.25, 0.25, 0.25}

	// Only the first term contributes: 1 * log(1/0.25) = log 4
	assert.InDelta(t, 1.3862943611198906, classify.KLDivergence(p, q), 1e-12)
}

// TestDivergenceAllZeroQuery verifies that a degenerate all-zero query
// distribution (empty input, no smoothing) scores 0 everywhere
func TestDivergenceAllZeroQuery(t *testing.T) {
	p := make([]float64, 8)
	q := []float64{0.125, 0.125, 0.125, 0.125, 0.125, 0.125, 0.125, 0.125}

	assert.Equal(t, 0.0, classify.KLDivergence(p, q))
}

// TestDivergenceOrdering verifies that a closer reference scores lower
func TestDivergenceOrdering(t *testing.T) {
	p := []float64{0.7, 0.2, 0.1}
	near := []float64{0.6, 0.25, 0.15}
	far := []float64{0.05, 0.05, 0.9}

	assert.Less(t, classify.KLDivergence(p, near), classify.KLDivergence(p, far))
}
