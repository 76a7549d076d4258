/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for Akaylee ArchRec. Provides
comprehensive command-line options, configuration management, and a
beautiful user interface for recognizing the CPU architecture of binary
blobs with advanced logging capabilities.
*/

package main

import (
	"fmt"
	"os"

	"github.com/kleascm/akaylee-archrec/cmd/archrec/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	logLevel   string
	jsonLogs   bool

	// Corpus configuration
	corpusDir    string
	corpusSuffix string
	base         float64
	maxModels    int

	// Classification configuration
	textSection bool
	reportDir   string
	jsonReport  bool
	htmlReport  bool

	// Logging configuration
	logDir      string
	logFormat   string
	logMaxFiles int
	logMaxSize  int64
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "archrec",
		Short: "Akaylee ArchRec - Statistical CPU architecture recognizer",
		Long: `Akaylee ArchRec recognizes the probable machine-code architecture of an
arbitrary binary blob. It fingerprints byte bigram and trigram statistics and
ranks every reference architecture in a labeled sample corpus by
Kullback-Leibler divergence. Built for reverse-engineering and firmware
analysis workflows where no file header reveals the target architecture.`,
		Version: "1.0.0",
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Use JSON log format")

	// Add logging-specific flags
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "./logs", "Log output directory")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().IntVar(&logMaxFiles, "log-max-files", 10, "Maximum number of log files to keep")
	rootCmd.PersistentFlags().Int64Var(&logMaxSize, "log-max-size", 100*1024*1024, "Maximum log file size in bytes")

	// Add corpus flags
	rootCmd.PersistentFlags().StringVar(&corpusDir, "corpus", "./corpus", "Directory containing labeled reference samples")
	rootCmd.PersistentFlags().StringVar(&corpusSuffix, "suffix", ".corpus", "Recognized sample filename suffix")
	rootCmd.PersistentFlags().Float64Var(&base, "base", 0.01, "Additive smoothing constant for reference models")
	rootCmd.PersistentFlags().IntVar(&maxModels, "max-models", 1000, "Maximum number of reference architectures")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_max_files", rootCmd.PersistentFlags().Lookup("log-max-files"))
	viper.BindPFlag("log_max_size", rootCmd.PersistentFlags().Lookup("log-max-size"))
	viper.BindPFlag("corpus_dir", rootCmd.PersistentFlags().Lookup("corpus"))
	viper.BindPFlag("corpus_suffix", rootCmd.PersistentFlags().Lookup("suffix"))
	viper.BindPFlag("smoothing_base", rootCmd.PersistentFlags().Lookup("base"))
	viper.BindPFlag("max_models", rootCmd.PersistentFlags().Lookup("max-models"))

	// Add classify command
	classifyCmd := &cobra.Command{
		Use:   "classify [files...]",
		Short: "Classify the CPU architecture of binary files",
		Long: `Build the reference corpus, then score every given file against each
reference architecture. One row is printed per architecture with the bigram
and trigram divergence; lower scores indicate a better match.`,
		Args: cobra.MinimumNArgs(1),
		RunE: commands.RunClassify,
	}

	// Add classify command flags
	classifyCmd.Flags().BoolVar(&textSection, "text-section", false, "Extract the code section of ELF/PE/Mach-O query files")
	classifyCmd.Flags().StringVar(&reportDir, "report-dir", "./reports", "Directory for run reports")
	classifyCmd.Flags().BoolVar(&jsonReport, "json-report", false, "Write a JSON run report")
	classifyCmd.Flags().BoolVar(&htmlReport, "html-report", false, "Write an HTML run report")

	viper.BindPFlag("text_section", classifyCmd.Flags().Lookup("text-section"))
	viper.BindPFlag("report_dir", classifyCmd.Flags().Lookup("report-dir"))
	viper.BindPFlag("json_report", classifyCmd.Flags().Lookup("json-report"))
	viper.BindPFlag("html_report", classifyCmd.Flags().Lookup("html-report"))

	rootCmd.AddCommand(classifyCmd)

	// Add corpus inspection command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "corpus",
		Short: "List the eligible reference samples and their memory cost",
		Long: `List every eligible sample file in the corpus location with its derived
architecture label, size, and compression state, plus the estimated resident
memory a full corpus build would need.`,
		RunE: commands.RunCorpusInfo,
	})

	// Add check command for built-in self-checks
	rootCmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Perform built-in self-checks for system validation",
		Long: `Perform system checks to validate corpus accessibility, eligible sample
count, estimated table memory against available memory, and report/log
directory writability. Useful before long classification batches.`,
		RunE: commands.PerformSelfCheck,
	})

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
