// Package suggest is the completion engine, providing trie traversals for
// prefix lookups and ranking the words found under a prefix.
package suggest

// ICompleter defines the interface for word completion engines
type ICompleter interface {
	// Complete returns suggestions for a given prefix with a limit
	Complete(prefix string, limit int) []Suggestion

	// AddWord adds a word with its frequency to the completer
	AddWord(word string, frequency int)

	// Contains reports whether word is in the dictionary
	Contains(word string) bool

	// Stats returns statistics about the loaded dictionary
	Stats() map[string]int
}

var _ ICompleter = (*Completer)(nil)
