package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pevans/newspulse/config"
	"github.com/pevans/newspulse/results"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the report and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("newspulse-report", flag.ContinueOnError)
	fs.SetOutput(stderr)
	primary := fs.String("primary", "", "Filter by primary label (substring, case-insensitive)")
	subCategory := fs.String("sub-category", "", "Filter by sub-category (case-insensitive)")
	limit := fs.Int("limit", 20, "Maximum number of results to display")
	offset := fs.Int("offset", 0, "Number of results to skip")
	format := fs.String("format", "table", "Output format: table, json, compact, summary")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	switch *format {
	case "table", "json", "compact", "summary":
	default:
		fmt.Fprintf(stderr, "Error: invalid format: %s (must be table, json, compact, or summary)\n", *format)
		return 1
	}

	cfg, err := config.Read()
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to load config: %v\n", err)
		return 1
	}

	store, err := results.Open(cfg.Storage.Results)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to open results store: %v\n", err)
		return 1
	}
	defer store.Close()

	all, err := store.List()
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to list results: %v\n", err)
		return 1
	}

	filtered := results.Filter(all, *primary, *subCategory)

	if *format == "summary" {
		printSummary(stdout, results.Summarize(filtered))
		return 0
	}

	total := len(filtered)
	paged, err := results.Paginate(filtered, *offset, *limit)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if len(paged) == 0 {
		fmt.Fprintln(stdout, "No results to display.")
		return 0
	}

	switch *format {
	case "json":
		if err := printListJSON(stdout, paged, total); err != nil {
			fmt.Fprintf(stderr, "Error: failed to marshal JSON: %v\n", err)
			return 1
		}
	case "compact":
		printListCompact(stdout, paged)
	default:
		printListTable(stdout, paged, total, *offset)
	}

	return 0
}
