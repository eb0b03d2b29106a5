package kconfig

import (
	"fmt"
	"sort"
	"strings"
)

// FormatOptions controls Format output.
type FormatOptions struct {
	// PreserveComments keeps comment and blank entries in the output.
	PreserveComments bool
	// SortEntries sorts keyed entries lexicographically by key. Sorting only
	// takes effect together with comment removal: while PreserveComments is
	// true the original order is always retained, since sorting around
	// comments would detach them from the entries they describe.
	SortEntries bool
}

// DefaultFormatOptions returns the options used for faithful round-trip
// output: comments preserved, original order.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		PreserveComments: true,
	}
}

// Format renders the config back to its textual form. Lines are joined with
// a single newline and no trailing newline is appended.
func Format(c *Config, opts FormatOptions) string {
	entries := c.Entries()

	if !opts.PreserveComments {
		kept := entries[:0]
		for _, e := range entries {
			if e.Kind() == KindComment || e.Kind() == KindBlank {
				continue
			}
			kept = append(kept, e)
		}
		entries = kept

		if opts.SortEntries {
			sort.SliceStable(entries, func(i, j int) bool {
				return entries[i].Key() < entries[j].Key()
			})
		}
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.Render(c.Prefix()))
	}

	return strings.Join(lines, "\n")
}

// FormatDefault renders the config with DefaultFormatOptions.
func FormatDefault(c *Config) string {
	return Format(c, DefaultFormatOptions())
}

// FormatMinimal renders only the keyed entries, sorted by key.
func FormatMinimal(c *Config) string {
	return Format(c, FormatOptions{SortEntries: true})
}

// FormatDiff renders a human-readable diff report. Empty sections are
// omitted; the unchanged count is always reported last.
func FormatDiff(d *DiffResult, prefix string) string {
	lines := make([]string, 0, 8)

	if len(d.Added) > 0 {
		lines = append(lines, "Added entries:")
		for _, e := range d.Added {
			lines = append(lines, "+ "+e.Render(prefix))
		}
	}
	if len(d.Removed) > 0 {
		lines = append(lines, "Removed entries:")
		for _, e := range d.Removed {
			lines = append(lines, "- "+e.Render(prefix))
		}
	}
	if len(d.Changed) > 0 {
		lines = append(lines, "Changed entries:")
		for _, ch := range d.Changed {
			lines = append(lines, "- "+ch.Old.Render(prefix))
			lines = append(lines, "+ "+ch.New.Render(prefix))
		}
	}
	lines = append(lines, fmt.Sprintf("Unchanged entries: %d", d.Unchanged))

	return strings.Join(lines, "\n")
}
