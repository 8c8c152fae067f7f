/*
Package oracle defines the spelling oracle the harvester queries and ships
the implementations used by suggestlog.

An Oracle answers three questions about the word covered by a range inside a
piece of text: which words could complete it, which words it might be a
misspelling of, and which single word it should be auto-corrected to. All
three are lookups without side effects and may legitimately return nothing.

	o, err := oracle.NewDictionary(wl, oracle.DefaultOptions())
	r := boundary.LastWordRange("I lik")
	completions, err := o.Completions(r, "I lik")

The Dictionary oracle is backed by a ranked word list. Static is a fixed
table, handy in tests.
*/
package oracle

import (
	"github.com/bastiangx/suggestlog/pkg/boundary"
)

// Oracle supplies completions, guesses and corrections for the word at r
// within text.
type Oracle interface {
	// Completions returns ranked continuations of the partial word at r.
	Completions(r boundary.Range, text string) ([]string, error)

	// Guesses returns ranked spelling alternatives for the word at r.
	Guesses(r boundary.Range, text string) ([]string, error)

	// Correction returns the best auto-correction for the word at r, and
	// false when the word is acceptable or nothing fits.
	Correction(r boundary.Range, text string) (string, bool, error)

	// Language returns the language the oracle answers for.
	Language() string
}
