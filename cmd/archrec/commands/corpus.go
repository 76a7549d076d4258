/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: corpus.go
Description: Corpus inspection command for Akaylee ArchRec. Lists the
eligible reference samples, their derived labels, sizes, and compression
state, plus the estimated resident memory of a full corpus build.
*/

package commands

import (
	"fmt"
	"os"

	"github.com/kleascm/akaylee-archrec/pkg/corpus"
	"github.com/spf13/cobra"
)

// RunCorpusInfo lists the eligible samples in the corpus location
func RunCorpusInfo(cmd *cobra.Command, args []string) error {
	fmt.Println("📚 Akaylee ArchRec - Reference Corpus")
	fmt.Println("=====================================")
	fmt.Println()

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	config := createClassifierConfig()

	source := corpus.NewDirectorySource(config.CorpusDir, config.CorpusSuffix)
	samples, err := source.Samples()
	if err != nil {
		return err
	}

	if len(samples) == 0 {
		fmt.Printf("❌ No eligible samples with suffix %q in %s\n", config.CorpusSuffix, config.CorpusDir)
		return nil
	}

	fmt.Printf("Location: %s (suffix %q)\n\n", config.CorpusDir, config.CorpusSuffix)
	fmt.Printf("%-20s %12s %6s  %s\n", "ARCHITECTURE", "SIZE", "XZ", "FILE")

	for _, sample := range samples {
		size := int64(0)
		if stat, err := os.Stat(sample.Path); err == nil {
			size = stat.Size()
		}
		compressed := ""
		if sample.Compressed {
			compressed = "yes"
		}
		fmt.Printf("%-20s %12d %6s  %s\n", sample.Label, size, compressed, sample.Path)
	}

	trained := len(samples)
	if trained > config.MaxModels {
		trained = config.MaxModels
		fmt.Printf("\n⚠️  %d samples exceed the bound of %d; the overflow is truncated at build time\n",
			len(samples), config.MaxModels)
	}

	fmt.Printf("\n📊 %d sample(s); a full build holds ~%s of frequency tables\n",
		len(samples), formatBytes(modelMemoryEstimate(trained)))
	return nil
}
