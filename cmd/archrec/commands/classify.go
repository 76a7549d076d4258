/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: classify.go
Description: Classify command implementation for Akaylee ArchRec. Builds
the reference corpus once, scores every query file against it, prints
the fixed-width score table per file, and optionally writes JSON/HTML
run reports.
*/

package commands

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/kleascm/akaylee-archrec/pkg/classify"
	"github.com/kleascm/akaylee-archrec/pkg/corpus"
	"github.com/kleascm/akaylee-archrec/pkg/extract"
	"github.com/kleascm/akaylee-archrec/pkg/interfaces"
	"github.com/kleascm/akaylee-archrec/pkg/logging"
	"github.com/kleascm/akaylee-archrec/pkg/reporting"
	"github.com/spf13/cobra"
)

// RunClassify executes the main classification process
func RunClassify(cmd *cobra.Command, args []string) error {
	fmt.Println("🔍 Akaylee ArchRec - Starting Classification Run")
	fmt.Println("================================================")
	fmt.Println()

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging
	logger, err := SetupLogging()
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer logger.Close()

	// Create classifier configuration
	config := createClassifierConfig()
	if err := validateClassifierConfig(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Build the reference corpus once; it is immutable for the run
	source := corpus.NewDirectorySource(config.CorpusDir, config.CorpusSuffix)
	refCorpus, err := corpus.Build(source, &corpus.Config{
		SmoothingBase: config.SmoothingBase,
		MaxModels:     config.MaxModels,
	}, logger.GetLogger())
	if err != nil {
		return fmt.Errorf("failed to build reference corpus: %w", err)
	}
	if refCorpus.Size() == 0 {
		return fmt.Errorf("no eligible samples with suffix %q in %s", config.CorpusSuffix, config.CorpusDir)
	}

	fmt.Printf("📚 Reference corpus: %d architectures from %s\n\n", refCorpus.Size(), config.CorpusDir)

	classifier := classify.NewClassifier(refCorpus, logger.GetLogger())
	report := reporting.NewRunReport(config.CorpusDir, refCorpus.Labels())

	// Score every query file
	for _, path := range args {
		fileReport, err := classifyOne(classifier, config, logger, path)
		if err != nil {
			return err
		}

		printFileReport(fileReport)
		report.Files = append(report.Files, *fileReport)
	}

	// Write run reports if requested
	if err := writeReports(logger, config, report); err != nil {
		return err
	}

	fmt.Printf("\n✨ Classification run completed: %d file(s) against %d architecture(s)\n",
		len(report.Files), refCorpus.Size())
	return nil
}

// classifyOne scores a single query file against the corpus
func classifyOne(classifier *classify.Classifier, config *interfaces.ClassifierConfig, logger *logging.Logger, path string) (*interfaces.FileReport, error) {
	start := time.Now()

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat query file %s: %w", path, err)
	}

	fileReport := &interfaces.FileReport{
		File: path,
		Size: stat.Size(),
	}

	var results []interfaces.Result
	if config.ExtractText {
		// Section extraction needs the whole file in memory
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read query file %s: %w", path, err)
		}
		section, extracted := extract.TextSection(data)
		fileReport.TextSection = extracted
		// Size stays the file size unless a section was actually pulled
		// out; only then does it mean classified bytes.
		if extracted {
			fileReport.Size = int64(len(section))
		}

		results, err = classifier.ClassifyReader(bytes.NewReader(section))
		if err != nil {
			return nil, fmt.Errorf("failed to classify %s: %w", path, err)
		}
	} else {
		results, err = classifier.ClassifyFile(path)
		if err != nil {
			return nil, err
		}
	}
	fileReport.Results = results

	// An input without a single byte pair carries no signal; leave the
	// best match undetermined instead of reporting a degenerate tie.
	if fileReport.Size >= 2 {
		if best, ok := classify.BestMatch(results); ok {
			fileReport.BestMatch = best
		}
	}

	logger.LogClassification(path, fileReport.BestMatch, time.Since(start), nil)
	return fileReport, nil
}

// printFileReport prints the fixed-width score table for one file
func printFileReport(r *interfaces.FileReport) {
	section := ""
	if r.TextSection {
		section = " (text section)"
	}
	fmt.Printf("📄 %s — %d bytes%s\n", r.File, r.Size, section)
	fmt.Print(reporting.FormatResults(r.Results))

	if r.BestMatch != "" {
		fmt.Printf("🏆 Best match: %s\n", r.BestMatch)
	} else {
		fmt.Println("🤷 Best match: undetermined (bigram and trigram rankings disagree)")
	}
	fmt.Println()
}

// writeReports persists the run report in the configured formats
func writeReports(logger *logging.Logger, config *interfaces.ClassifierConfig, report *interfaces.RunReport) error {
	if !config.WriteJSON && !config.WriteHTML {
		return nil
	}

	writer := reporting.NewWriter(config.ReportDir)

	if config.WriteJSON {
		path, err := writer.WriteJSON(report)
		if err != nil {
			return fmt.Errorf("failed to write JSON report: %w", err)
		}
		logger.LogReport(path, "json")
	}

	if config.WriteHTML {
		path, err := writer.WriteHTML(report)
		if err != nil {
			return fmt.Errorf("failed to write HTML report: %w", err)
		}
		logger.LogReport(path, "html")
	}

	return nil
}

// validateClassifierConfig validates the classifier configuration
func validateClassifierConfig(config *interfaces.ClassifierConfig) error {
	if config.CorpusDir == "" {
		return fmt.Errorf("corpus directory is required")
	}

	if _, err := os.Stat(config.CorpusDir); err != nil {
		return fmt.Errorf("corpus directory not accessible: %w", err)
	}

	if config.SmoothingBase <= 0 {
		return fmt.Errorf("smoothing base must be positive, got %g", config.SmoothingBase)
	}

	if config.MaxModels <= 0 {
		return fmt.Errorf("max models must be positive, got %d", config.MaxModels)
	}

	return nil
}
