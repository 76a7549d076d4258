/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: writer.go
Description: Report writer for Akaylee ArchRec. Handles timestamped,
session-tagged report files in the report directory. Ensures directories
exist and writes JSON files for easy downstream analysis.
*/

package reporting

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/kleascm/akaylee-archrec/pkg/interfaces"
)

// Writer persists classification run reports to a directory.
type Writer struct {
	outputDir string
}

// NewWriter creates a report writer for the given output directory.
func NewWriter(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

// NewRunReport creates an empty run report tagged with a fresh session
// ID and creation timestamp.
func NewRunReport(corpusDir string, labels []string) *interfaces.RunReport {
	return &interfaces.RunReport{
		SessionID: uuid.New().String(),
		CreatedAt: time.Now(),
		CorpusDir: corpusDir,
		Corpus:    labels,
	}
}

// WriteJSON writes the run report as an indented JSON file named with
// its timestamp and session ID, returning the written path.
func (w *Writer) WriteJSON(report *interfaces.RunReport) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	// Generate filename: 2024-06-11_01-30-00_archrec_<session>.json
	timestamp := report.CreatedAt.Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_archrec_%s.json", timestamp, report.SessionID)
	path := filepath.Join(w.outputDir, filename)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}

	return path, nil
}
