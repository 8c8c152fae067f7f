/*
Package pipeline drives harvests over input files and writes the flattened
rows as CSV.

Two input types are supported. In csv mode every input row is one sentence
and yields exactly one output row. In text mode every line is split on '.'
into sentences and every prefix of every sentence, from the empty one to the
full sentence, yields a row, which models a user typing it character by
character.

	d := pipeline.NewDriver(harvest.New(o))
	d.Progress = pipeline.NewProgress(logger.Progress(os.Stderr), 1)
	err := d.Run(pipeline.InputText, "in.txt", "out.csv")

Work is strictly sequential: one harvest at a time, each row written as soon
as it is built.
*/
package pipeline

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bastiangx/suggestlog/pkg/harvest"
	"github.com/bastiangx/suggestlog/pkg/row"
	"github.com/charmbracelet/log"
)

var (
	// ErrFileNotFound is returned when the input path does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrColumnNotFound is returned when the sentence column is not in the header.
	ErrColumnNotFound = errors.New("sentence column not found")
	// ErrMissingHeader is returned when a header is expected but the input is empty.
	ErrMissingHeader = errors.New("missing header row")
	// ErrInputType is returned for an unknown input type.
	ErrInputType = errors.New("invalid input type")
)

// InputType selects how the input file is read.
type InputType string

const (
	InputCSV  InputType = "csv"
	InputText InputType = "text"
)

// ParseInputType validates s.
func ParseInputType(s string) (InputType, error) {
	switch t := InputType(s); t {
	case InputCSV, InputText:
		return t, nil
	}
	return "", fmt.Errorf("%q (expected csv or text): %w", s, ErrInputType)
}

// Driver runs harvests over an input and writes rows.
type Driver struct {
	Harvester *harvest.Harvester
	// Slots is the number of cells per suggestion list.
	Slots int
	// SentenceColumn names the csv column holding sentences. When empty the
	// first column is used and the input has no header row.
	SentenceColumn string
	// Progress receives per-sentence updates, nil disables reporting.
	Progress *Progress
}

// NewDriver returns a driver writing row.Slots cells per suggestion list.
func NewDriver(h *harvest.Harvester) *Driver {
	return &Driver{Harvester: h, Slots: row.Slots}
}

// Run reads inputPath as t and writes the CSV result to outputPath. The input
// is checked before the output is created, and the output is closed on every
// return path.
func (d *Driver) Run(t InputType, inputPath, outputPath string) (err error) {
	in, err := os.Open(inputPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: %w", inputPath, ErrFileNotFound)
		}
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()

	w := csv.NewWriter(out)
	var rows int
	switch t {
	case InputCSV:
		rows, err = d.CSV(in, w)
	case InputText:
		rows, err = d.Text(in, w)
	default:
		err = fmt.Errorf("%q: %w", t, ErrInputType)
	}

	w.Flush()
	if err != nil {
		return err
	}
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	log.Debugf("Wrote %d rows to %s", rows, outputPath)
	return nil
}

// write emits one record; csv.Writer buffers, so errors surface on Flush.
func write(w *csv.Writer, record []string) error {
	if err := w.Write(record); err != nil {
		return fmt.Errorf("failed to write row: %w", err)
	}
	return nil
}

// readRecord reads the next csv record, mapping io.EOF to done.
func readRecord(r *csv.Reader) (record []string, done bool, err error) {
	record, err = r.Read()
	if err == io.EOF {
		return nil, true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("malformed CSV: %w", err)
	}
	return record, false, nil
}
