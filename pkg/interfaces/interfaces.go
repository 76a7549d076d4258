/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: interfaces.go
Description: Shared types for Akaylee ArchRec. Defines the result and
configuration structures used across all packages to break import cycles
and enable proper modular design.
*/

package interfaces

import (
	"time"
)

// Result holds the divergence scores of one query file against a single
// reference architecture. Lower scores indicate a better match.
type Result struct {
	Arch              string  `json:"arch"`
	BigramDivergence  float64 `json:"bigram_divergence"`
	TrigramDivergence float64 `json:"trigram_divergence"`
}

// FileReport holds the full scoring of one query file against the
// reference corpus, in corpus insertion order.
type FileReport struct {
	File        string   `json:"file"`
	Size        int64    `json:"size"`
	TextSection bool     `json:"text_section"`
	Results     []Result `json:"results"`
	BestMatch   string   `json:"best_match,omitempty"`
}

// RunReport aggregates the file reports of a single classification run
type RunReport struct {
	SessionID string       `json:"session_id"`
	CreatedAt time.Time    `json:"created_at"`
	CorpusDir string       `json:"corpus_dir"`
	Corpus    []string     `json:"corpus"`
	Files     []FileReport `json:"files"`
}

// ClassifierConfig represents the configuration for a classification run
type ClassifierConfig struct {
	CorpusDir     string
	CorpusSuffix  string
	SmoothingBase float64
	MaxModels     int
	ExtractText   bool
	ReportDir     string
	WriteJSON     bool
	WriteHTML     bool
	LogLevel      string
}
