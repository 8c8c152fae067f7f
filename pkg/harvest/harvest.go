// Package harvest collects everything an oracle has to say about the word
// being typed at the end of a sentence prefix.
package harvest

import (
	"github.com/bastiangx/suggestlog/pkg/boundary"
	"github.com/bastiangx/suggestlog/pkg/oracle"
	"github.com/charmbracelet/log"
)

// Result is the outcome of one harvest.
type Result struct {
	LastWord                string
	Completions             []string
	Guesses                 []string
	Correction              string
	HasCorrection           bool
	CorrectedSentence       string
	CompletionsOnCorrection []string
}

// Harvester queries an oracle for a prefix and assembles a Result.
type Harvester struct {
	oracle oracle.Oracle
}

// New returns a Harvester asking o.
func New(o oracle.Oracle) *Harvester {
	return &Harvester{oracle: o}
}

// Harvest looks up the last word of text. The oracle is always queried, even
// when the last word is empty. Oracle failures are logged and count as "no
// suggestions".
func (h *Harvester) Harvest(text string) Result {
	r := boundary.LastWordRange(text)
	res := h.query(text, r)
	h.requery(&res, text, r)
	return res
}

// query asks for completions, guesses and a correction of the word at r.
func (h *Harvester) query(text string, r boundary.Range) Result {
	res := Result{
		LastWord:          r.Of(text),
		CorrectedSentence: text,
	}

	completions, err := h.oracle.Completions(r, text)
	if err != nil {
		log.Debug("completions failed", "text", text, "err", err)
	}
	res.Completions = completions

	guesses, err := h.oracle.Guesses(r, text)
	if err != nil {
		log.Debug("guesses failed", "text", text, "err", err)
	}
	res.Guesses = guesses

	correction, ok, err := h.oracle.Correction(r, text)
	if err != nil {
		log.Debug("correction failed", "text", text, "err", err)
		ok = false
	}
	res.Correction, res.HasCorrection = correction, ok
	return res
}

// requery applies the correction found by query, if any, and asks for the
// completions of the corrected word. Without a correction the sentence is
// left untouched and there are no completions on correction.
func (h *Harvester) requery(res *Result, text string, r boundary.Range) {
	if !res.HasCorrection {
		res.Correction = ""
		return
	}

	res.CorrectedSentence = boundary.Prefix(text, r.Start) + res.Correction
	corrected := boundary.Range{Start: r.Start, Length: len([]rune(res.Correction))}

	completions, err := h.oracle.Completions(corrected, res.CorrectedSentence)
	if err != nil {
		log.Debug("completions on correction failed", "text", res.CorrectedSentence, "err", err)
	}
	res.CompletionsOnCorrection = completions
}
