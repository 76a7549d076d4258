/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the Akaylee ArchRec commands. Provides
common configuration loading, logging setup, and the classifier
configuration assembled from viper.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/akaylee-archrec/pkg/interfaces"
	"github.com/kleascm/akaylee-archrec/pkg/logging"
	"github.com/kleascm/akaylee-archrec/pkg/ngram"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	// Set config file if specified
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("ARCHREC")
	viper.AutomaticEnv()

	return nil
}

// SetupLogging configures the logging system and returns the run logger
func SetupLogging() (*logging.Logger, error) {
	format := logging.LogFormat(viper.GetString("log_format"))
	if viper.GetBool("json_logs") {
		format = logging.LogFormatJSON
	}

	config := &logging.LoggerConfig{
		Level:     logging.LogLevel(viper.GetString("log_level")),
		Format:    format,
		OutputDir: viper.GetString("log_dir"),
		MaxFiles:  viper.GetInt("log_max_files"),
		MaxSize:   viper.GetInt64("log_max_size"),
		Timestamp: true,
		Caller:    false,
		Colors:    true,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logging configuration: %w", err)
	}

	logger, err := logging.NewLogger(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return logger, nil
}

// createClassifierConfig creates the classifier configuration from viper
func createClassifierConfig() *interfaces.ClassifierConfig {
	return &interfaces.ClassifierConfig{
		CorpusDir:     viper.GetString("corpus_dir"),
		CorpusSuffix:  viper.GetString("corpus_suffix"),
		SmoothingBase: viper.GetFloat64("smoothing_base"),
		MaxModels:     viper.GetInt("max_models"),
		ExtractText:   viper.GetBool("text_section"),
		ReportDir:     viper.GetString("report_dir"),
		WriteJSON:     viper.GetBool("json_report"),
		WriteHTML:     viper.GetBool("html_report"),
		LogLevel:      viper.GetString("log_level"),
	}
}

// modelMemoryEstimate returns the resident memory in bytes needed for n
// frequency models (two float64 tables each).
func modelMemoryEstimate(n int) uint64 {
	perModel := uint64(ngram.BigramSize+ngram.TrigramSize) * 8
	return uint64(n) * perModel
}

// formatBytes renders a byte count in human-readable form
func formatBytes(n uint64) string {
	switch {
	case n >= 1024*1024*1024:
		return fmt.Sprintf("%.1f GB", float64(n)/(1024*1024*1024))
	case n >= 1024*1024:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	case n >= 1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
