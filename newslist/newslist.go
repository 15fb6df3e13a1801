// Package newslist holds collected news items and the CSV file they are
// persisted to between the collection and analysis stages.
package newslist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Header is the first row of every URL list file.
var Header = []string{"title", "post_url"}

// NewsItem is a collected article reference. Title and URL are never empty.
type NewsItem struct {
	Title string `json:"title"`
	URL   string `json:"post_url"`
}

// ErrMissingURLColumn is returned by Load when the file has no post_url
// header.
var ErrMissingURLColumn = errors.New("url list has no post_url column")

// Store is a CSV-backed URL list. Every call opens the file, writes or reads,
// and closes it again, so rows written before a crash stay on disk.
type Store struct {
	path string
}

// NewStore creates a store for the CSV file at path, creating the parent
// directory if needed.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
	}

	return &Store{path: path}, nil
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

// Reset truncates the file and writes the header row.
func (s *Store) Reset() error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to reset url list: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("failed to write url list header: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write url list header: %w", err)
	}

	return nil
}

// Append adds items to the end of the file in order.
func (s *Store) Append(items []NewsItem) error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open url list: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, item := range items {
		if err := w.Write([]string{item.Title, item.URL}); err != nil {
			return fmt.Errorf("failed to write news item: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write news item: %w", err)
	}

	return nil
}

// Load reads the whole list into memory. Rows with an empty post_url are
// skipped; a row with a missing title keeps an empty Title.
func (s *Store) Load() ([]NewsItem, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open url list: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read url list header: %w", err)
	}

	titleCol, urlCol := -1, -1
	for i, name := range header {
		switch name {
		case "title":
			titleCol = i
		case "post_url":
			urlCol = i
		}
	}
	if urlCol < 0 {
		return nil, ErrMissingURLColumn
	}

	var items []NewsItem
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read url list: %w", err)
		}

		if urlCol >= len(record) || record[urlCol] == "" {
			continue
		}

		item := NewsItem{URL: record[urlCol]}
		if titleCol >= 0 && titleCol < len(record) {
			item.Title = record[titleCol]
		}
		items = append(items, item)
	}

	return items, nil
}
