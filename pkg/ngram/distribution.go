/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: distribution.go
Description: Distribution builder for Akaylee ArchRec. Converts raw
n-gram count tables into probability distributions with optional
additive smoothing.
*/

package ngram

// Normalize turns a raw count table into a probability distribution in
// place: every element becomes (v + base) / sum(v + base).
//
// With base == 0 and an all-zero table the total mass is zero; the
// result is defined as the all-zero distribution rather than dividing
// by zero. With base > 0 an all-zero table normalizes to the uniform
// distribution.
func Normalize(values []float64, base float64) {
	sum := 0.0
	for i := range values {
		values[i] += base
		sum += values[i]
	}

	// Degenerate case: empty input and no smoothing.
	if sum == 0 {
		return
	}

	for i := range values {
		values[i] /= sum
	}
}
