package oracle

import (
	"strings"
	"unicode"
)

// guessSet collects the guesses for one typed word. Guesses are keyed as
// emitted, after the typed capitals are applied, so candidates that end up
// spelled the same are kept once. The typed word is never its own guess.
type guessSet struct {
	typed string
	limit int
	seen  map[string]struct{}
	out   []string
}

func newGuessSet(typed string, limit int) *guessSet {
	return &guessSet{
		typed: typed,
		limit: limit,
		seen:  make(map[string]struct{}, limit),
		out:   make([]string, 0, limit),
	}
}

// add keeps guess unless it repeats the typed word or an earlier guess.
func (g *guessSet) add(guess string) {
	if strings.EqualFold(guess, g.typed) {
		return
	}
	if _, ok := g.seen[guess]; ok {
		return
	}
	g.seen[guess] = struct{}{}
	g.out = append(g.out, guess)
}

func (g *guessSet) full() bool {
	return g.limit > 0 && len(g.out) >= g.limit
}

// checkable reports whether the spellchecker can say anything useful about
// word. It needs a letter, only letters, digits, apostrophes and joiners
// (-_./), and not one character typed three or more times ("aaa").
func checkable(word string) bool {
	var first rune
	letters, n := 0, 0
	repeated := true
	for _, r := range word {
		switch {
		case r == '\'':
			continue
		case unicode.IsLetter(r):
			letters++
		case unicode.IsDigit(r), r == '-', r == '_', r == '.', r == '/':
		default:
			return false
		}
		if n == 0 {
			first = r
		} else if r != first {
			repeated = false
		}
		n++
	}
	return letters > 0 && !(repeated && n > 2)
}
