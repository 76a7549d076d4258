/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: classifier.go
Description: Classifier driver for Akaylee ArchRec. Builds an unsmoothed
frequency model for each query input and scores it against every model
in the reference corpus, emitting one row per reference architecture in
corpus insertion order.
*/

package classify

import (
	"fmt"
	"io"
	"os"

	"github.com/kleascm/akaylee-archrec/pkg/corpus"
	"github.com/kleascm/akaylee-archrec/pkg/interfaces"
	"github.com/kleascm/akaylee-archrec/pkg/ngram"
	"github.com/sirupsen/logrus"
)

// Classifier scores query inputs against an immutable reference corpus.
type Classifier struct {
	corpus *corpus.ReferenceCorpus
	logger *logrus.Logger
}

// NewClassifier creates a classifier over an already built corpus.
func NewClassifier(rc *corpus.ReferenceCorpus, logger *logrus.Logger) *Classifier {
	return &Classifier{
		corpus: rc,
		logger: logger,
	}
}

// ClassifyReader builds the unsmoothed frequency model of the stream and
// returns one result per reference architecture, in corpus insertion
// order. No sorting or score combination happens here; ranking policy
// belongs to the caller.
func (c *Classifier) ClassifyReader(r io.Reader) ([]interfaces.Result, error) {
	query := ngram.NewModel("")
	if err := query.CountReader(r); err != nil {
		return nil, err
	}
	// Queries are never smoothed so genuine structure is preserved.
	query.Normalize(0)

	return c.score(query), nil
}

// ClassifyFile streams one query file through the classifier.
func (c *Classifier) ClassifyFile(path string) ([]interfaces.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open query file %s: %w", path, err)
	}
	defer f.Close()

	results, err := c.ClassifyReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to classify %s: %w", path, err)
	}
	return results, nil
}

// score computes both divergences of a normalized query model against
// every reference model.
func (c *Classifier) score(query *ngram.Model) []interfaces.Result {
	refs := c.corpus.Models()
	results := make([]interfaces.Result, 0, len(refs))

	for _, ref := range refs {
		result := interfaces.Result{
			Arch:              ref.Label,
			BigramDivergence:  KLDivergence(query.Bigram, ref.Bigram),
			TrigramDivergence: KLDivergence(query.Trigram, ref.Trigram),
		}
		results = append(results, result)

		c.logger.WithFields(logrus.Fields{
			"arch":    result.Arch,
			"bigram":  result.BigramDivergence,
			"trigram": result.TrigramDivergence,
		}).Debug("Query scored against reference")
	}

	return results
}

// BestMatch is the caller-level decision policy: it returns the
// architecture ranked first by both the bigram and the trigram scores.
// When the two rankings disagree, or the result list is empty, the
// match is undetermined and ok is false.
func BestMatch(results []interfaces.Result) (arch string, ok bool) {
	if len(results) == 0 {
		return "", false
	}

	bestBi, bestTri := results[0], results[0]
	for _, r := range results[1:] {
		if r.BigramDivergence < bestBi.BigramDivergence {
			bestBi = r
		}
		if r.TrigramDivergence < bestTri.TrigramDivergence {
			bestTri = r
		}
	}

	if bestBi.Arch != bestTri.Arch {
		return "", false
	}
	return bestBi.Arch, true
}
