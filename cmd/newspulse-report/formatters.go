package main

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/pevans/newspulse/results"
)

// printListTable prints results in human-readable table format
func printListTable(w io.Writer, items []results.Result, total, offset int) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No results to display.")
		return
	}

	fmt.Fprintf(w, "Showing %d-%d of %d results\n\n", offset+1, offset+len(items), total)

	for _, item := range items {
		fmt.Fprintf(w, "%s\n", truncate(item.Title, 70))
		fmt.Fprintf(w, "   %s | %s\n", truncate(strings.TrimSpace(item.PrimaryLabel), 40), item.SubCategory)
		if item.CreatedAt != nil {
			fmt.Fprintf(w, "   Analyzed: %s\n", item.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Fprintf(w, "   URL: %s\n", item.URL)
		fmt.Fprintln(w)
	}
}

// printListJSON prints results in JSON format
func printListJSON(w io.Writer, items []results.Result, total int) error {
	output := map[string]any{
		"results": items,
		"total":   total,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(w, string(data))
	return nil
}

// printListCompact prints one line per result
func printListCompact(w io.Writer, items []results.Result) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No results to display.")
		return
	}

	for _, item := range items {
		fmt.Fprintf(w, "[%s/%s] %s\n", strings.TrimSpace(item.PrimaryLabel), item.SubCategory, item.Title)
	}
}

// printSummary prints label counts, largest first
func printSummary(w io.Writer, summary results.SummaryResponse) {
	fmt.Fprintf(w, "Total results: %d\n", summary.Total)
	if summary.Total == 0 {
		return
	}

	fmt.Fprintln(w, "\nPrimary:")
	printCounts(w, summary.ByPrimary)

	fmt.Fprintln(w, "\nSub-category:")
	printCounts(w, summary.BySubCategory)
}

func printCounts(w io.Writer, counts map[string]int) {
	labels := slices.Collect(maps.Keys(counts))
	slices.SortFunc(labels, func(a, b string) int {
		if counts[a] != counts[b] {
			return counts[b] - counts[a]
		}
		return strings.Compare(a, b)
	})

	for _, label := range labels {
		fmt.Fprintf(w, "  %5d  %s\n", counts[label], label)
	}
}

// truncate shortens s to at most width runes, marking the cut with "..."
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}
