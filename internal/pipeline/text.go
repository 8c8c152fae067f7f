package pipeline

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bastiangx/suggestlog/pkg/boundary"
	"github.com/bastiangx/suggestlog/pkg/row"
)

// textHeader names the cells written before the suggestions in text mode.
var textHeader = []string{"sentence_num", "full_sentence", "char_num", "input", "full_last_word", "word_num"}

// TextHeader returns the full text mode header for k slots.
func TextHeader(k int) []string {
	header := append([]string{}, textHeader...)
	return append(header, row.SuggestionHeader("last_word_input", k)...)
}

// Sentences splits a line on '.' and trims each part. Parts left empty are
// dropped. Abbreviations and decimals are split too.
func Sentences(line string) []string {
	var out []string
	for _, part := range strings.Split(line, ".") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Text reads r line by line and writes one row for every prefix of every
// sentence. Sentences are numbered from 0 across the whole input.
func (d *Driver) Text(r io.Reader, w *csv.Writer) (int, error) {
	if err := write(w, TextHeader(d.Slots)); err != nil {
		return 0, err
	}

	reader := bufio.NewReader(r)
	d.Progress.Start()
	sentenceNum := 0
	rows := 0
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return rows, fmt.Errorf("failed to read input: %w", readErr)
		}

		for _, sentence := range Sentences(line) {
			n, err := d.sentence(w, sentenceNum, sentence)
			rows += n
			if err != nil {
				return rows, err
			}
			sentenceNum++
		}

		if readErr != nil {
			break
		}
	}
	d.Progress.Done()
	return rows, nil
}

// sentence writes the len(sentence)+1 rows of one sentence.
func (d *Driver) sentence(w *csv.Writer, num int, sentence string) (int, error) {
	length := utf8.RuneCountInString(sentence)
	d.Progress.Sentence(num, length)

	numCell := strconv.Itoa(num)
	rows := 0
	for charNum := 0; charNum <= length; charNum++ {
		input := boundary.Prefix(sentence, charNum)
		wordNum, word, err := boundary.FindWordContaining(sentence, charNum)
		if err != nil {
			return rows, fmt.Errorf("sentence %d: %w", num, err)
		}

		cells := []string{numCell, sentence, strconv.Itoa(charNum), input, word, strconv.Itoa(wordNum)}
		res := d.Harvester.Harvest(input)
		if err := write(w, append(cells, row.Flatten(res, d.Slots)...)); err != nil {
			return rows, err
		}
		rows++
	}
	return rows, nil
}
