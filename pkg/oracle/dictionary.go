package oracle

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bastiangx/suggestlog/pkg/boundary"
	"github.com/bastiangx/suggestlog/pkg/dictionary"
	"github.com/bastiangx/suggestlog/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/f1monkey/spellchecker"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Options tune the Dictionary oracle.
type Options struct {
	// Alphabet is the set of runes the spellchecker indexes.
	Alphabet string
	// MaxErrors is the edit budget of the spellchecker when guessing.
	MaxErrors int
	// MaxCorrectionDistance caps the Levenshtein distance between a word
	// and its auto-correction.
	MaxCorrectionDistance int
	// MinFrequency hides rare words from completions.
	MinFrequency int
	// Limit is the number of candidates returned per lookup.
	Limit int
	// CacheSize is the number of memoized lookups, 0 disables the cache.
	CacheSize int
}

// DefaultOptions returns the options used when the config leaves them unset.
func DefaultOptions() Options {
	return Options{
		Alphabet:              "abcdefghijklmnopqrstuvwxyz'",
		MaxErrors:             2,
		MaxCorrectionDistance: 2,
		MinFrequency:          0,
		Limit:                 32,
		CacheSize:             4096,
	}
}

const (
	opCompletions = "c"
	opGuesses     = "g"
	opCorrection  = "x"
)

// Dictionary is an Oracle backed by a ranked word list. Completions come from
// a prefix trie, guesses and corrections from a symmetric-delete
// spellchecker. It only looks at the word under the range, so answers are
// memoized per word.
type Dictionary struct {
	language  string
	opts      Options
	completer suggest.ICompleter
	checker   *spellchecker.Spellchecker
	cache     *lru.Cache[string, []string]
}

// NewDictionary builds an oracle for language from wl.
func NewDictionary(language string, wl *dictionary.WordList, opts Options) (*Dictionary, error) {
	checker, err := spellchecker.New(opts.Alphabet, spellchecker.WithMaxErrors(opts.MaxErrors))
	if err != nil {
		return nil, fmt.Errorf("failed to create spellchecker: %w", err)
	}
	words := wl.Words()
	checker.Add(words...)

	d := &Dictionary{
		language:  language,
		opts:      opts,
		completer: suggest.FromWordList(wl, opts.MinFrequency),
		checker:   checker,
	}
	if opts.CacheSize > 0 {
		cache, err := lru.New[string, []string](opts.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create lookup cache: %w", err)
		}
		d.cache = cache
	}

	log.Debug("Dictionary oracle ready", "language", language, "words", len(words), "cache", opts.CacheSize,
		"stats", d.completer.Stats())
	return d, nil
}

func (d *Dictionary) Language() string {
	return d.language
}

// Completions returns the dictionary words extending the partial word at r.
func (d *Dictionary) Completions(r boundary.Range, text string) ([]string, error) {
	word := r.Of(text)
	return d.memo(opCompletions, word, func() ([]string, error) {
		suggestions := d.completer.Complete(word, d.opts.Limit)
		out := make([]string, len(suggestions))
		for i, s := range suggestions {
			out[i] = s.Word
		}
		return out, nil
	})
}

// Guesses returns the known words within the spellchecker's edit budget of
// the word at r, best first, excluding the word itself.
func (d *Dictionary) Guesses(r boundary.Range, text string) ([]string, error) {
	word := r.Of(text)
	return d.memo(opGuesses, word, func() ([]string, error) {
		return d.guess(word)
	})
}

// Correction returns the best guess for an unknown word when it lies within
// MaxCorrectionDistance edits of it.
func (d *Dictionary) Correction(r boundary.Range, text string) (string, bool, error) {
	word := r.Of(text)
	out, err := d.memo(opCorrection, word, func() ([]string, error) {
		if word == "" || d.completer.Contains(word) {
			return nil, nil
		}
		guesses, err := d.guess(word)
		if err != nil {
			return nil, err
		}
		lower := strings.ToLower(word)
		for _, g := range guesses {
			if fuzzy.LevenshteinDistance(lower, strings.ToLower(g)) <= d.opts.MaxCorrectionDistance {
				return []string{g}, nil
			}
		}
		return nil, nil
	})
	if err != nil || len(out) == 0 {
		return "", false, err
	}
	return out[0], true, nil
}

func (d *Dictionary) guess(word string) ([]string, error) {
	if !checkable(word) {
		return nil, nil
	}
	lower := strings.ToLower(word)
	candidates, err := d.checker.Suggest(lower, d.opts.Limit+1)
	if err != nil {
		return nil, fmt.Errorf("suggest %q: %w", word, err)
	}

	capitals := make([]bool, 0, len(word))
	for _, r := range word {
		capitals = append(capitals, r >= 'A' && r <= 'Z')
	}

	guesses := newGuessSet(word, d.opts.Limit)
	for _, c := range candidates {
		guesses.add(suggest.ApplyCapitalization(c, capitals))
		if guesses.full() {
			break
		}
	}
	return guesses.out, nil
}

func (d *Dictionary) memo(op, word string, fn func() ([]string, error)) ([]string, error) {
	if d.cache == nil {
		return fn()
	}
	key := op + "\x00" + word
	if v, ok := d.cache.Get(key); ok {
		return slices.Clone(v), nil
	}
	v, err := fn()
	if err != nil {
		return nil, err
	}
	d.cache.Add(key, v)
	return slices.Clone(v), nil
}
