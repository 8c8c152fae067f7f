// Package row flattens harvest results into fixed-width CSV records.
package row

import (
	"strconv"

	"github.com/bastiangx/suggestlog/pkg/harvest"
)

// Slots is the number of cells reserved for each suggestion list.
const Slots = 10

// Width returns the number of cells Flatten emits for k slots.
func Width(k int) int {
	return 3*k + 3
}

// Pad returns exactly k cells: the first k entries of list followed by empty
// strings. Entries past k are dropped, the order is kept.
func Pad(list []string, k int) []string {
	out := make([]string, k)
	copy(out, list)
	return out
}

// Flatten lays res out as: last word, k completions, k guesses, correction,
// corrected sentence, k completions on correction.
func Flatten(res harvest.Result, k int) []string {
	cells := make([]string, 0, Width(k))
	cells = append(cells, res.LastWord)
	cells = append(cells, Pad(res.Completions, k)...)
	cells = append(cells, Pad(res.Guesses, k)...)
	if res.HasCorrection {
		cells = append(cells, res.Correction)
	} else {
		cells = append(cells, "")
	}
	cells = append(cells, res.CorrectedSentence)
	cells = append(cells, Pad(res.CompletionsOnCorrection, k)...)
	return cells
}

// SuggestionHeader names the cells produced by Flatten, with lastWord as the
// name of the first one.
func SuggestionHeader(lastWord string, k int) []string {
	header := make([]string, 0, Width(k))
	header = append(header, lastWord)
	header = append(header, numbered("completion_", k)...)
	header = append(header, numbered("guess_", k)...)
	header = append(header, "correction", "corrected_sentence")
	header = append(header, numbered("completion_on_correction_", k)...)
	return header
}

func numbered(prefix string, k int) []string {
	out := make([]string, k)
	for i := range out {
		out[i] = prefix + strconv.Itoa(i+1)
	}
	return out
}
