package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/pevans/newspulse/results"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helper: point the config at a one-row results CSV in a temp dir
func setupResultsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "result.csv")

	store, err := results.NewCSVStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Append(results.Result{
		Title:        "Rates cut",
		PrimaryLabel: "Positive",
		SubCategory:  "Hopeful",
		URL:          "https://x/a",
	}))

	t.Setenv("NEWSPULSE_CONFIG", filepath.Join(dir, "missing.yaml"))
	t.Setenv("NEWSPULSE_RESULTS_TYPE", "csv")
	t.Setenv("NEWSPULSE_RESULTS_DSN", path)
}

func TestRun_Compact(t *testing.T) {
	setupResultsFile(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-format", "compact"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, "[Positive/Hopeful] Rates cut\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRun_OffsetPastEnd(t *testing.T) {
	setupResultsFile(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-offset", "5"}, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Equal(t, "No results to display.\n", stdout.String())
}

func TestRun_InvalidPagination(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{"negative offset", []string{"-offset", "-1"}, "offset must not be negative"},
		{"negative limit", []string{"-limit", "-5"}, "limit must be at least 1"},
		{"zero limit", []string{"-limit", "0"}, "limit must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupResultsFile(t)

			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr)

			assert.Equal(t, 1, code)
			assert.Contains(t, stderr.String(), "Error: "+tt.message)
			assert.Empty(t, stdout.String())
		})
	}
}

func TestRun_InvalidFormat(t *testing.T) {
	setupResultsFile(t)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-format", "xml"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Error: invalid format: xml")
}
