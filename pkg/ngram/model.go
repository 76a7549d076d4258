/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: model.go
Description: Frequency model for Akaylee ArchRec. Holds the dense byte
bigram and trigram tables for one binary sample, either as raw counts or
as a normalized probability distribution. Tables are owned exclusively
by the model and written only during construction.
*/

package ngram

// Table dimensions. Dense storage is a deliberate trade of memory for
// speed: a single model holds roughly 128 MB, dominated by the trigram
// table.
const (
	// BigramSize is the number of ordered byte pairs (256 * 256).
	BigramSize = 256 * 256

	// TrigramSize is the number of ordered byte triples (256^3).
	TrigramSize = 256 * 256 * 256
)

// Model holds the bigram and trigram statistics of one binary sample.
// A reference model carries the architecture label it was trained on;
// a query model has an empty label.
type Model struct {
	Label   string
	Bigram  []float64
	Trigram []float64
}

// NewModel allocates a fresh zero-valued model. The caller owns the
// returned model and its backing tables; models are never copied.
func NewModel(label string) *Model {
	return &Model{
		Label:   label,
		Bigram:  make([]float64, BigramSize),
		Trigram: make([]float64, TrigramSize),
	}
}

// Normalize converts the raw counts of both tables into probability
// distributions using additive smoothing with the given base.
// Reference models must use base > 0 so that every cell is strictly
// positive; query models use base == 0 to preserve genuine structure.
func (m *Model) Normalize(base float64) {
	Normalize(m.Bigram, base)
	Normalize(m.Trigram, base)
}
