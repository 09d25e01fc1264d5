package logger

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// ErrorEntry is one layer of an error chain as shown to the user.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks the chain of err. zerr layers contribute their own
// message and metadata; a layer with an empty message only carries metadata and is
// folded into the next visible layer. Joined errors are flattened in order.
func collectErrorEntries(err error) []ErrorEntry {
	var entries []ErrorEntry
	var pending map[string]any

	current := err
	for current != nil {
		switch e := current.(type) {
		case *zerr.Error:
			meta := e.Metadata()
			if e.Message() == "" {
				if pending == nil {
					pending = map[string]any{}
				}
				maps.Copy(pending, meta)
				current = e.Unwrap()
				continue
			}
			maps.Copy(meta, pending)
			pending = nil
			entries = append(entries, ErrorEntry{Message: e.Message(), Metadata: meta})
			current = e.Unwrap()
		case interface{ Unwrap() []error }:
			for _, inner := range e.Unwrap() {
				entries = append(entries, collectErrorEntries(inner)...)
			}
			return entries
		default:
			entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: pending})
			return entries
		}
	}
	return entries
}

// formatErrorEntries renders entries as the main error followed by a "Caused by" list.
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		lead, indent := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			lead, indent = "    → ", "      "
		}

		lines = append(lines, lead+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, key, entry.Metadata[key]))
		}
	}

	return strings.Join(lines, "\n")
}
