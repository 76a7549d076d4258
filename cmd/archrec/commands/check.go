/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: check.go
Description: Self-check command for Akaylee ArchRec. Validates corpus
accessibility, eligible sample count, estimated frequency-table memory
against available system memory, and report/log directory writability.
The tables cannot be allocated incrementally or recovered from on OOM,
so the memory estimate runs up front.
*/

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kleascm/akaylee-archrec/pkg/corpus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// PerformSelfCheck performs system validation before a classification run
func PerformSelfCheck(cmd *cobra.Command, args []string) error {
	fmt.Println("🔍 Akaylee ArchRec - System Self-Check")
	fmt.Println("======================================")
	fmt.Println()

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	checks := []struct {
		name     string
		function func() error
	}{
		{"Corpus Location", checkCorpusLocation},
		{"Eligible Samples", checkEligibleSamples},
		{"Table Memory Estimate", checkTableMemory},
		{"Report Directory", checkReportDirectory},
		{"Log Directory", checkLogDirectory},
		{"Configuration Validation", checkConfigurationValidation},
	}

	passed := 0
	total := len(checks)

	for _, check := range checks {
		fmt.Printf("🔍 %s... ", check.name)
		if err := check.function(); err != nil {
			fmt.Printf("❌ FAILED: %v\n", err)
		} else {
			fmt.Println("✅ PASSED")
			passed++
		}
	}

	fmt.Println()
	fmt.Printf("📊 Results: %d/%d checks passed\n", passed, total)

	if passed == total {
		fmt.Println("✨ All checks passed! System is ready for classification.")
		return nil
	}
	fmt.Println("⚠️  Some checks failed. Please address the issues before classifying.")
	return fmt.Errorf("%d/%d checks failed", total-passed, total)
}

// checkCorpusLocation validates that the corpus directory is accessible
func checkCorpusLocation() error {
	dir := viper.GetString("corpus_dir")
	if dir == "" {
		return fmt.Errorf("corpus directory not configured")
	}

	stat, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("corpus directory not accessible: %w", err)
	}
	if !stat.IsDir() {
		return fmt.Errorf("corpus location %s is not a directory", dir)
	}

	return nil
}

// checkEligibleSamples validates that at least one eligible sample exists
func checkEligibleSamples() error {
	source := corpus.NewDirectorySource(viper.GetString("corpus_dir"), viper.GetString("corpus_suffix"))
	samples, err := source.Samples()
	if err != nil {
		return err
	}

	if len(samples) == 0 {
		return fmt.Errorf("no eligible samples with suffix %q", viper.GetString("corpus_suffix"))
	}

	return nil
}

// checkTableMemory estimates the resident memory of a full corpus build
// plus one query model and compares it against available system memory
func checkTableMemory() error {
	source := corpus.NewDirectorySource(viper.GetString("corpus_dir"), viper.GetString("corpus_suffix"))
	samples, err := source.Samples()
	if err != nil {
		return err
	}

	models := len(samples)
	if max := viper.GetInt("max_models"); models > max {
		models = max
	}

	// Corpus models plus the current query model
	needed := modelMemoryEstimate(models + 1)

	available, err := availableMemory()
	if err != nil {
		// Not fatal on systems without /proc/meminfo
		return nil
	}

	if needed > available {
		return fmt.Errorf("estimated table memory %s exceeds available memory %s",
			formatBytes(needed), formatBytes(available))
	}

	return nil
}

// availableMemory reads MemAvailable from /proc/meminfo
func availableMemory() (uint64, error) {
	data, err := os.ReadFile("/proc/meminfo")
	if err != nil {
		return 0, err
	}

	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != "MemAvailable:" {
			continue
		}
		kb, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return 0, err
		}
		return kb * 1024, nil
	}

	return 0, fmt.Errorf("MemAvailable not found in /proc/meminfo")
}

// checkReportDirectory validates that the report directory is writable
func checkReportDirectory() error {
	return checkWritableDir(viper.GetString("report_dir"))
}

// checkLogDirectory validates that the log directory is writable
func checkLogDirectory() error {
	return checkWritableDir(viper.GetString("log_dir"))
}

// checkWritableDir verifies a directory can be created and written to
func checkWritableDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("directory not configured")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", dir, err)
	}

	testFile := filepath.Join(dir, ".archrec_write_check")
	if err := os.WriteFile(testFile, []byte("check"), 0644); err != nil {
		return fmt.Errorf("cannot write to %s: %w", dir, err)
	}
	os.Remove(testFile)

	return nil
}

// checkConfigurationValidation validates configuration values
func checkConfigurationValidation() error {
	if viper.GetFloat64("smoothing_base") <= 0 {
		return fmt.Errorf("smoothing base must be positive")
	}

	if viper.GetInt("max_models") <= 0 {
		return fmt.Errorf("max models must be positive")
	}

	if viper.GetString("corpus_suffix") == "" {
		return fmt.Errorf("corpus suffix must not be empty")
	}

	return nil
}
