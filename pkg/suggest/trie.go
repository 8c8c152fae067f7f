package suggest

import (
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// SearchTrie collects the words stored under lowerPrefix whose frequency is
// at least minThreshold. The prefix itself is skipped.
func SearchTrie(trie *patricia.Trie, lowerPrefix string, capitalPositions []bool, minThreshold int) []Suggestion {
	if trie == nil {
		return []Suggestion{}
	}

	var suggestions []Suggestion

	err := trie.VisitSubtree(patricia.Prefix(lowerPrefix), func(p patricia.Prefix, item patricia.Item) error {
		prefixStr := string(p)
		if prefixStr == lowerPrefix {
			return nil
		}

		freq := 1

		switch v := item.(type) {
		case int:
			freq = v
		case int32:
			freq = int(v)
		case uint32:
			freq = int(v)
		case float64:
			freq = int(v)
		default:
			log.Errorf("Unknown item type: %T for word %s", item, p)
		}

		if freq < minThreshold {
			return nil
		}

		suggestions = append(suggestions, Suggestion{
			Word:      ApplyCapitalization(internString(prefixStr), capitalPositions),
			Frequency: freq,
		})
		return nil
	})

	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
	}

	return suggestions
}

// ApplyCapitalization upper-cases the runes of word at the positions that
// were capitalized in the typed prefix.
func ApplyCapitalization(word string, capitalPositions []bool) string {
	if len(capitalPositions) == 0 {
		return word
	}

	wordRunes := []rune(word)
	for i := 0; i < len(wordRunes) && i < len(capitalPositions); i++ {
		if capitalPositions[i] && wordRunes[i] >= 'a' && wordRunes[i] <= 'z' {
			wordRunes[i] = wordRunes[i] - 'a' + 'A'
		}
	}
	return string(wordRunes)
}
