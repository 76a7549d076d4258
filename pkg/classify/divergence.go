/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: divergence.go
Description: Kullback-Leibler divergence scorer for Akaylee ArchRec.
Computes the directed statistical distance between a query distribution
and a reference distribution of equal size.
*/

package classify

import (
	"math"
)

// KLDivergence computes D(P||Q) = sum over i of P[i] * log(P[i]/Q[i]),
// skipping indices where P[i] == 0 (those terms contribute 0 by
// convention). The measure is directed: it quantifies how surprising
// the reference Q is when the query P is taken as true, and is not a
// symmetric distance.
//
// Both distributions must have the same length, and Q[i] must be
// strictly positive wherever P[i] > 0. Reference distributions built
// with additive smoothing satisfy this everywhere; an unsmoothed query
// pattern absent from a reference still yields a defined, very large
// divergence.
func KLDivergence(p, q []float64) float64 {
	div := 0.0
	for i, pi := range p {
		if pi > 0 {
			div += pi * math.Log(pi/q[i])
		}
	}
	return div
}
