package oracle

import (
	"slices"

	"github.com/bastiangx/suggestlog/pkg/boundary"
)

// Call records one lookup made against a Static oracle.
type Call struct {
	Op   string
	Word string
	Text string
}

// Static answers from fixed tables keyed by the word under the range. Every
// lookup is recorded in Calls. When Err is set each lookup fails with it.
type Static struct {
	Lang            string
	CompletionTable map[string][]string
	GuessTable      map[string][]string
	CorrectionTable map[string]string
	Err             error
	Calls           []Call
}

func (s *Static) record(op string, r boundary.Range, text string) string {
	word := r.Of(text)
	s.Calls = append(s.Calls, Call{Op: op, Word: word, Text: text})
	return word
}

func (s *Static) Completions(r boundary.Range, text string) ([]string, error) {
	word := s.record("completions", r, text)
	if s.Err != nil {
		return nil, s.Err
	}
	return slices.Clone(s.CompletionTable[word]), nil
}

func (s *Static) Guesses(r boundary.Range, text string) ([]string, error) {
	word := s.record("guesses", r, text)
	if s.Err != nil {
		return nil, s.Err
	}
	return slices.Clone(s.GuessTable[word]), nil
}

func (s *Static) Correction(r boundary.Range, text string) (string, bool, error) {
	word := s.record("correction", r, text)
	if s.Err != nil {
		return "", false, s.Err
	}
	c, ok := s.CorrectionTable[word]
	return c, ok, nil
}

func (s *Static) Language() string {
	if s.Lang == "" {
		return DefaultLanguage
	}
	return s.Lang
}
