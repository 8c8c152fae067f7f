package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"unicode/utf8"

	"github.com/bastiangx/suggestlog/pkg/row"
)

// CSV harvests one sentence per input row and writes one output row per input
// row, in order. With a SentenceColumn every input column is copied through
// (padded or cut to the header width); without one only the sentence is.
func (d *Driver) CSV(r io.Reader, w *csv.Writer) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	inputHeader := []string{"sentence"}
	column := 0
	if d.SentenceColumn != "" {
		header, done, err := readRecord(reader)
		if err != nil {
			return 0, err
		}
		if done {
			return 0, ErrMissingHeader
		}
		column = slices.Index(header, d.SentenceColumn)
		if column < 0 {
			return 0, fmt.Errorf("%q not in %v: %w", d.SentenceColumn, header, ErrColumnNotFound)
		}
		inputHeader = header
	}

	header := append(slices.Clone(inputHeader), row.SuggestionHeader("last_word", d.Slots)...)
	if err := write(w, header); err != nil {
		return 0, err
	}

	d.Progress.Start()
	rows := 0
	for {
		record, done, err := readRecord(reader)
		if err != nil {
			return rows, err
		}
		if done {
			break
		}
		if column >= len(record) {
			return rows, fmt.Errorf("row %d has %d columns, sentence column is %d: %w",
				rows+1, len(record), column+1, ErrColumnNotFound)
		}

		sentence := record[column]
		d.Progress.Sentence(rows, utf8.RuneCountInString(sentence))

		cells := []string{sentence}
		if d.SentenceColumn != "" {
			cells = row.Pad(record, len(inputHeader))
		}
		res := d.Harvester.Harvest(sentence)
		if err := write(w, append(cells, row.Flatten(res, d.Slots)...)); err != nil {
			return rows, err
		}
		rows++
	}
	d.Progress.Done()
	return rows, nil
}
