/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: logger_test.go
Description: Unit tests for the logging system. Covers configuration
validation, log file creation, and the classifier-specific formatter
prefixes.
*/

package logging_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kleascm/akaylee-archrec/pkg/logging"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a LoggerConfig that passes validation
func validConfig(dir string) *logging.LoggerConfig {
	return &logging.LoggerConfig{
		Level:     logging.LogLevelInfo,
		Format:    logging.LogFormatCustom,
		OutputDir: dir,
		MaxFiles:  3,
		MaxSize:   1024 * 1024,
		Timestamp: true,
		Colors:    false,
	}
}

// TestConfigValidate verifies rejection of invalid configurations
func TestConfigValidate(t *testing.T) {
	assert.NoError(t, validConfig("./logs").Validate())

	bad := validConfig("./logs")
	bad.OutputDir = ""
	assert.Error(t, bad.Validate())

	bad = validConfig("./logs")
	bad.MaxFiles = 0
	assert.Error(t, bad.Validate())

	bad = validConfig("./logs")
	bad.Format = "yaml"
	assert.Error(t, bad.Validate())

	bad = validConfig("./logs")
	bad.Level = "loud"
	assert.Error(t, bad.Validate())
}

// TestNewLoggerWritesFile verifies that the logger creates a timestamped
// log file and records messages to it
func TestNewLoggerWritesFile(t *testing.T) {
	dir := t.TempDir()

	logger, err := logging.NewLogger(validConfig(dir))
	require.NoError(t, err)

	logger.LogClassification("firmware.bin", "arm", 150*time.Millisecond, nil)
	logger.LogReport("/tmp/report.json", "json")
	require.NoError(t, logger.Close())

	files, err := filepath.Glob(filepath.Join(dir, "akaylee-archrec_*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Query file classified")
	assert.Contains(t, content, "firmware.bin")
	assert.Contains(t, content, "Report written")
}

// TestArchRecFormatterPrefixes verifies the message-derived prefixes
func TestArchRecFormatterPrefixes(t *testing.T) {
	formatter := &logging.ArchRecFormatter{
		CustomFormatter: logging.CustomFormatter{Timestamp: false, Colors: false},
	}

	cases := map[string]string{
		"Corpus sample trained": "[CORPUS]",
		"Query file classified": "[CLASSIFY]",
		"Report written":        "[REPORT]",
	}

	for msg, prefix := range cases {
		entry := &logrus.Entry{
			Logger:  logrus.New(),
			Level:   logrus.InfoLevel,
			Message: msg,
		}
		out, err := formatter.Format(entry)
		require.NoError(t, err)
		assert.Contains(t, string(out), prefix, msg)
	}
}
