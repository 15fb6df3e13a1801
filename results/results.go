// Package results stores analysis results and serves them over HTTP.
package results

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pevans/newspulse/config"
)

// Result is the classification of one article. ID and CreatedAt are only
// set by stores that track them.
type Result struct {
	ID           *uuid.UUID `json:"id,omitempty"`
	Title        string     `json:"title"`
	URL          string     `json:"url"`
	PrimaryLabel string     `json:"primary_label"`
	SubCategory  string     `json:"sub_category"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

// Store is an append-only sequence of results. Append never checks for
// existing rows, so analyzing the same URL twice stores it twice.
type Store interface {
	Append(r Result) error
	List() ([]Result, error)
	Close() error
}

// Open opens the store described by cfg.
func Open(cfg config.StoreConfig) (Store, error) {
	switch cfg.Type {
	case "csv":
		return NewCSVStore(cfg.DSN)
	case "sqlite":
		return NewSQLiteStore(cfg.DSN)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownStorage, cfg.Type)
	}
}
