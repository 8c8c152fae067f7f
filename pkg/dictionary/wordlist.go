// Package dictionary loads ranked word lists from disk.
//
// Three on-disk formats are understood: plain text lists, the chunked binary
// format (dict_0001.bin, dict_0002.bin, ...) and msgpack snapshots written by
// WriteSnapshot. Every loader produces a WordList, a lowercase word to
// frequency map that the oracle builds its trie and spellchecker from.
package dictionary

import (
	"sort"
	"strings"
)

// Entry is one ranked word.
type Entry struct {
	Word      string `msgpack:"w"`
	Frequency int    `msgpack:"f"`
}

// WordList is a set of lowercase words with their frequencies.
// It is not safe for concurrent mutation.
type WordList struct {
	freqs        map[string]int
	maxFrequency int
}

// NewWordList creates an empty list.
func NewWordList() *WordList {
	return &WordList{freqs: make(map[string]int)}
}

// Add records word with frequency. Words are lowercased and a word that is
// already present keeps the higher of the two frequencies.
func (wl *WordList) Add(word string, frequency int) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return
	}
	if old, ok := wl.freqs[word]; ok && old >= frequency {
		return
	}
	wl.freqs[word] = frequency
	if frequency > wl.maxFrequency {
		wl.maxFrequency = frequency
	}
}

// Merge adds every word of other.
func (wl *WordList) Merge(other *WordList) {
	if other == nil {
		return
	}
	for w, f := range other.freqs {
		wl.Add(w, f)
	}
}

// Frequency returns the frequency of word, case-insensitively.
func (wl *WordList) Frequency(word string) (int, bool) {
	f, ok := wl.freqs[strings.ToLower(word)]
	return f, ok
}

// Len returns the number of distinct words.
func (wl *WordList) Len() int {
	return len(wl.freqs)
}

// MaxFrequency returns the highest frequency seen.
func (wl *WordList) MaxFrequency() int {
	return wl.maxFrequency
}

// Entries returns all words ordered by descending frequency, ties broken
// alphabetically so the order is stable across runs.
func (wl *WordList) Entries() []Entry {
	entries := make([]Entry, 0, len(wl.freqs))
	for w, f := range wl.freqs {
		entries = append(entries, Entry{Word: w, Frequency: f})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Frequency != entries[j].Frequency {
			return entries[i].Frequency > entries[j].Frequency
		}
		return entries[i].Word < entries[j].Word
	})
	return entries
}

// Words returns the words in Entries order.
func (wl *WordList) Words() []string {
	entries := wl.Entries()
	words := make([]string, len(entries))
	for i, e := range entries {
		words[i] = e.Word
	}
	return words
}
