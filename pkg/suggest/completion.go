package suggest

import (
	"sort"
	"strings"
	"sync"

	"github.com/bastiangx/suggestlog/pkg/dictionary"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

var stringPool = sync.Map{}

func internString(s string) string {
	if cached, exists := stringPool.Load(s); exists {
		return cached.(string)
	}
	stringPool.Store(s, s)
	return s
}

type Suggestion struct {
	Word      string
	Frequency int
}

// Completer ranks the dictionary words found under a prefix.
type Completer struct {
	trie         *patricia.Trie
	totalWords   int
	maxFrequency int
	minFrequency int
	top          []Suggestion
}

func NewCompleter() *Completer {
	return &Completer{
		trie: patricia.NewTrie(),
	}
}

// FromWordList builds a completer holding every word of wl whose frequency
// is at least minFrequency.
func FromWordList(wl *dictionary.WordList, minFrequency int) *Completer {
	c := NewCompleter()
	c.minFrequency = minFrequency
	for _, e := range wl.Entries() {
		c.AddWord(e.Word, e.Frequency)
	}
	log.Debugf("Completer built: words=[%d], minFrequency=[%d]", c.totalWords, minFrequency)
	return c
}

func (c *Completer) AddWord(word string, frequency int) {
	word = strings.ToLower(word)
	if c.trie.Get(patricia.Prefix(word)) == nil {
		c.totalWords++
	}
	c.trie.Set(patricia.Prefix(word), frequency)
	if frequency > c.maxFrequency {
		c.maxFrequency = frequency
	}
	c.top = nil
}

// Complete returns the words starting with prefix, most frequent first.
// The prefix itself is never returned and the capitalization typed in the
// prefix is carried over to each suggestion. An empty prefix yields the most
// frequent words of the dictionary.
func (c *Completer) Complete(prefix string, limit int) []Suggestion {
	if prefix == "" {
		return c.mostFrequent(limit)
	}

	lowerPrefix := strings.ToLower(prefix)

	// Remember which positions were capitalized
	var capitalPositions []bool
	for _, r := range prefix {
		capitalPositions = append(capitalPositions, r >= 'A' && r <= 'Z')
	}

	suggestions := SearchTrie(c.trie, lowerPrefix, capitalPositions, c.minFrequency)
	sortSuggestions(suggestions)

	if len(suggestions) > limit && limit > 0 {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

func (c *Completer) mostFrequent(limit int) []Suggestion {
	if c.top == nil {
		c.top = SearchTrie(c.trie, "", nil, c.minFrequency)
		sortSuggestions(c.top)
	}
	n := len(c.top)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Suggestion, n)
	copy(out, c.top)
	return out
}

// sortSuggestions orders by frequency, highest first, then alphabetically so
// that ties come out the same on every run.
func sortSuggestions(s []Suggestion) {
	sort.Slice(s, func(i, j int) bool {
		if s[i].Frequency != s[j].Frequency {
			return s[i].Frequency > s[j].Frequency
		}
		return s[i].Word < s[j].Word
	})
}

// Contains reports whether word is in the dictionary, ignoring case.
func (c *Completer) Contains(word string) bool {
	return c.trie.Get(patricia.Prefix(strings.ToLower(word))) != nil
}

func (c *Completer) Stats() map[string]int {
	return map[string]int{
		"totalWords":   c.totalWords,
		"maxFrequency": c.maxFrequency,
		"minFrequency": c.minFrequency,
	}
}
