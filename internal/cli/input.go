// Package cli handles cmd line input for probing the oracle interactively.
// It harvests each line typed and prints what a CSV row would hold.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/suggestlog/internal/logger"
	"github.com/bastiangx/suggestlog/pkg/harvest"
	"github.com/charmbracelet/log"
)

// InputHandler reads sentence prefixes from a reader and prints their
// harvest. Trailing spaces are kept, they move the cursor past a word.
type InputHandler struct {
	harvester       *harvest.Harvester
	logger          *log.Logger
	maxPrefixLength int
	requestCount    int
}

// NewInputHandler handles initialization of the InputHandler. Output goes to
// out; prefixes longer than maxLength runes are refused.
func NewInputHandler(h *harvest.Harvester, out io.Writer, maxLength int) *InputHandler {
	return &InputHandler{
		harvester:       h,
		logger:          logger.NewWithConfig(out, "", false, false),
		maxPrefixLength: maxLength,
	}
}

// Start begins the interface loop. It returns nil once in is exhausted.
func (h *InputHandler) Start(in io.Reader) error {
	h.logger.Print("suggestlog probe")
	h.logger.Print("type a sentence and press Enter to see the suggestions (Ctrl+D to exit):")

	reader := bufio.NewReader(in)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if prefix := strings.TrimRight(line, "\r\n"); prefix != "" {
			h.handleInput(prefix)
		}
		if err != nil {
			return nil
		}
	}
}

// Requests returns how many prefixes were harvested.
func (h *InputHandler) Requests() int {
	return h.requestCount
}

// handleInput harvests a single prefix and prints each part of the result.
func (h *InputHandler) handleInput(prefix string) {
	if h.maxPrefixLength > 0 && utf8.RuneCountInString(prefix) > h.maxPrefixLength {
		h.logger.Errorf("Prefix too long: %s", prefix)
		return
	}
	h.requestCount++

	start := time.Now()
	res := h.harvester.Harvest(prefix)
	log.Debugf("Took [ %v ] for prefix '%s'", time.Since(start), prefix)

	h.logger.Printf("last word: '%s'", res.LastWord)
	h.printList("completions", res.Completions)
	h.printList("guesses", res.Guesses)
	if !res.HasCorrection {
		h.logger.Print("no correction")
		return
	}
	h.logger.Printf("correction: %s -> %s", res.LastWord, colored(res.Correction))
	h.logger.Printf("corrected sentence: '%s'", res.CorrectedSentence)
	h.printList("completions on correction", res.CompletionsOnCorrection)
}

func (h *InputHandler) printList(name string, words []string) {
	if len(words) == 0 {
		h.logger.Printf("no %s", name)
		return
	}
	h.logger.Printf("%d %s:", len(words), name)
	for i, w := range words {
		h.logger.Printf("%2d. %s", i+1, colored(w))
	}
}

func colored(word string) string {
	return fmt.Sprintf("\033[38;5;75m%s\033[0m", word)
}
