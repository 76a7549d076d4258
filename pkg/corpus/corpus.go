/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: corpus.go
Description: Reference corpus for Akaylee ArchRec. Builds an ordered,
bounded collection of smoothed frequency models from labeled sample
files, built once per run and immutable afterwards.
*/

package corpus

import (
	"fmt"

	"github.com/kleascm/akaylee-archrec/pkg/ngram"
	"github.com/sirupsen/logrus"
)

// Default corpus parameters, matching the reference implementation.
const (
	// DefaultSmoothingBase is the additive smoothing constant applied
	// to every reference cell before normalization.
	DefaultSmoothingBase = 0.01

	// DefaultMaxModels bounds the number of reference architectures.
	DefaultMaxModels = 1000
)

// Config holds the corpus build parameters.
type Config struct {
	// SmoothingBase must be strictly positive: it guarantees that no
	// reference probability is exactly zero, which the divergence
	// scorer relies on.
	SmoothingBase float64

	// MaxModels bounds the corpus size. Samples beyond the bound are
	// silently truncated.
	MaxModels int
}

// DefaultConfig returns the default corpus build parameters.
func DefaultConfig() *Config {
	return &Config{
		SmoothingBase: DefaultSmoothingBase,
		MaxModels:     DefaultMaxModels,
	}
}

// ReferenceCorpus is an ordered, read-only collection of labeled,
// smoothed frequency models. It is built once per process invocation
// and never mutated afterwards.
type ReferenceCorpus struct {
	models []*ngram.Model
}

// Build constructs a reference corpus from every sample the source
// yields, in source order: each sample is streamed through the n-gram
// counter, smoothed, normalized, and labeled. Ingestion stops once the
// configured bound is reached. Any unreadable sample aborts the build.
func Build(src Source, cfg *Config, logger *logrus.Logger) (*ReferenceCorpus, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.SmoothingBase <= 0 {
		return nil, fmt.Errorf("smoothing base must be positive, got %g", cfg.SmoothingBase)
	}
	if cfg.MaxModels <= 0 {
		return nil, fmt.Errorf("max models must be positive, got %d", cfg.MaxModels)
	}

	samples, err := src.Samples()
	if err != nil {
		return nil, fmt.Errorf("failed to list corpus samples: %w", err)
	}

	rc := &ReferenceCorpus{
		models: make([]*ngram.Model, 0, len(samples)),
	}

	for _, sample := range samples {
		if len(rc.models) >= cfg.MaxModels {
			logger.WithFields(logrus.Fields{
				"bound":   cfg.MaxModels,
				"skipped": len(samples) - cfg.MaxModels,
			}).Debug("Corpus bound reached, truncating remaining samples")
			break
		}

		model, err := buildModel(sample, cfg.SmoothingBase)
		if err != nil {
			return nil, err
		}

		rc.models = append(rc.models, model)
		logger.WithFields(logrus.Fields{
			"arch": sample.Label,
			"file": sample.Path,
		}).Info("Corpus sample trained")
	}

	return rc, nil
}

// buildModel trains one smoothed reference model from a sample.
func buildModel(sample Sample, base float64) (*ngram.Model, error) {
	r, err := sample.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	model := ngram.NewModel(sample.Label)
	if err := model.CountReader(r); err != nil {
		return nil, fmt.Errorf("failed to train sample %s: %w", sample.Path, err)
	}
	model.Normalize(base)

	return model, nil
}

// Models returns the reference models in insertion order. The returned
// slice and the models it holds must be treated as read-only.
func (rc *ReferenceCorpus) Models() []*ngram.Model {
	return rc.models
}

// Size returns the number of reference architectures in the corpus.
func (rc *ReferenceCorpus) Size() int {
	return len(rc.models)
}

// Labels returns the architecture labels in insertion order.
func (rc *ReferenceCorpus) Labels() []string {
	labels := make([]string, len(rc.models))
	for i, m := range rc.models {
		labels[i] = m.Label
	}
	return labels
}
