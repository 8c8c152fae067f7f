// Package boundary locates words inside partially typed sentences.
//
// All offsets and lengths are counted in runes, never in bytes, so a prefix
// built from a range never splits a multi-byte character.
package boundary

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrWordOutOfBounds is returned when an offset lies past the end of a sentence.
var ErrWordOutOfBounds = errors.New("word offset out of bounds")

// Range is a rune span inside a text.
type Range struct {
	Start  int
	Length int
}

// End returns the rune offset right after the range.
func (r Range) End() int {
	return r.Start + r.Length
}

// Of returns the part of text covered by r.
// Out of range spans are clamped to the text.
func (r Range) Of(text string) string {
	runes := []rune(text)
	start := min(max(r.Start, 0), len(runes))
	end := min(max(r.End(), start), len(runes))
	return string(runes[start:end])
}

// LastWordRange returns the span of the word being typed at the end of prefix.
//
// The word starts right after the last space and runs to the end of prefix.
// Without a space the whole prefix is the word; with a trailing space the
// word is empty and starts at the end of prefix.
func LastWordRange(prefix string) Range {
	n := utf8.RuneCountInString(prefix)
	i := strings.LastIndexByte(prefix, ' ')
	if i < 0 {
		return Range{Start: 0, Length: n}
	}
	start := utf8.RuneCountInString(prefix[:i]) + 1
	return Range{Start: start, Length: n - start}
}

// Prefix returns the first n runes of sentence.
func Prefix(sentence string, n int) string {
	if n <= 0 {
		return ""
	}
	for i := range sentence {
		if n == 0 {
			return sentence[:i]
		}
		n--
	}
	return sentence
}

// FindWordContaining returns the index and text of the word of sentence that
// contains the rune offset. Words are separated by single spaces, so repeated
// spaces yield empty words. An offset that sits on a separating space belongs
// to the word before it.
func FindWordContaining(sentence string, offset int) (int, string, error) {
	consumed := 0
	for i, word := range strings.Split(sentence, " ") {
		n := utf8.RuneCountInString(word)
		if consumed+n >= offset {
			return i, word, nil
		}
		consumed += n + 1
	}
	return 0, "", fmt.Errorf("offset %d in %q (%d chars): %w",
		offset, sentence, utf8.RuneCountInString(sentence), ErrWordOutOfBounds)
}
