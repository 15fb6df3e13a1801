package results

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
)

// Fields is the column order of the results CSV. The file has no header
// row.
var Fields = []string{"title", "palm_response", "palm_sub_response", "url"}

// CSVStore appends results to a header-less CSV file. Each Append opens,
// writes, flushes and closes the file.
type CSVStore struct {
	path string
}

// NewCSVStore creates a store for the file at path, creating the parent
// directory if needed. The file itself is created on first Append.
func NewCSVStore(path string) (*CSVStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
	}

	return &CSVStore{path: path}, nil
}

// Append writes one row at the end of the file.
func (s *CSVStore) Append(r Result) error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open results file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{r.Title, r.PrimaryLabel, r.SubCategory, r.URL}); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	return nil
}

// List reads every row in file order. A missing file is an empty store. A
// row equal to Fields is treated as a header and skipped.
func (s *CSVStore) List() ([]Result, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []Result{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open results file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(Fields)

	results := []Result{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read results file: %w", err)
		}
		if slices.Equal(record, Fields) {
			continue
		}

		results = append(results, Result{
			Title:        record[0],
			PrimaryLabel: record[1],
			SubCategory:  record[2],
			URL:          record[3],
		})
	}

	return results, nil
}

// Close is a no-op; the file is never held open between calls.
func (s *CSVStore) Close() error {
	return nil
}
