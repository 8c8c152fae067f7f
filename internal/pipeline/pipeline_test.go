package pipeline

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bastiangx/suggestlog/pkg/harvest"
	"github.com/bastiangx/suggestlog/pkg/oracle"
	"github.com/bastiangx/suggestlog/pkg/row"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDriver() (*Driver, *oracle.Static) {
	o := &oracle.Static{
		CompletionTable: map[string][]string{
			"lik":  {"like", "likely"},
			"like": {"liked"},
		},
		GuessTable:      map[string][]string{"lik": {"like", "liked"}},
		CorrectionTable: map[string]string{"lik": "like"},
	}
	return NewDriver(harvest.New(o)), o
}

func readAll(t *testing.T, data []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return records
}

func runCSV(t *testing.T, d *Driver, input string) ([][]string, int, error) {
	t.Helper()
	var out bytes.Buffer
	w := csv.NewWriter(&out)
	n, err := d.CSV(strings.NewReader(input), w)
	w.Flush()
	require.NoError(t, w.Error())
	return readAll(t, out.Bytes()), n, err
}

func TestParseInputType(t *testing.T) {
	typ, err := ParseInputType("csv")
	require.NoError(t, err)
	assert.Equal(t, InputCSV, typ)

	_, err = ParseInputType("xml")
	require.ErrorIs(t, err, ErrInputType)
}

func TestCSVWithoutHeader(t *testing.T) {
	d, _ := newTestDriver()

	records, n, err := runCSV(t, d, "I lik\nhello world\n")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, records, 3)

	header := records[0]
	assert.Equal(t, "sentence", header[0])
	assert.Equal(t, "last_word", header[1])
	assert.Equal(t, "completion_on_correction_10", header[len(header)-1])

	first := records[1]
	require.Len(t, first, 1+row.Width(row.Slots))
	assert.Equal(t, "I lik", first[0])
	assert.Equal(t, "lik", first[1])
	assert.Equal(t, []string{"like", "liked", "", "", "", "", "", "", "", ""}, first[12:22])
	assert.Equal(t, "like", first[22])
	assert.Equal(t, "I like", first[23])
	assert.Equal(t, "liked", first[24])

	second := records[2]
	require.Len(t, second, len(first))
	assert.Equal(t, "world", second[1])
	assert.Equal(t, "", second[22])
	assert.Equal(t, "hello world", second[23])
}

func TestCSVWithSentenceColumn(t *testing.T) {
	d, _ := newTestDriver()
	d.SentenceColumn = "text"

	records, n, err := runCSV(t, d, "id,text,extra\n1,I lik,x\n2,hello\n")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"id", "text", "extra", "last_word"}, records[0][:4])
	for _, rec := range records {
		assert.Len(t, rec, 3+row.Width(row.Slots))
	}
	assert.Equal(t, []string{"1", "I lik", "x", "lik"}, records[1][:4])
	assert.Equal(t, []string{"2", "hello", "", "hello"}, records[2][:4])
}

func TestCSVMissingColumn(t *testing.T) {
	d, _ := newTestDriver()
	d.SentenceColumn = "sentence"

	_, _, err := runCSV(t, d, "id,text\n1,hi\n")
	require.ErrorIs(t, err, ErrColumnNotFound)
}

func TestCSVMissingHeader(t *testing.T) {
	d, _ := newTestDriver()
	d.SentenceColumn = "text"

	_, _, err := runCSV(t, d, "")
	require.ErrorIs(t, err, ErrMissingHeader)
}

func TestCSVMalformed(t *testing.T) {
	d, _ := newTestDriver()

	_, _, err := runCSV(t, d, "ok\n\"unterminated\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed CSV")
}

func TestCSVRowCountMatchesInput(t *testing.T) {
	d, _ := newTestDriver()
	input := strings.Repeat("a\n", 50)

	records, n, err := runCSV(t, d, input)
	require.NoError(t, err)
	assert.Equal(t, 50, n)
	assert.Len(t, records, 51)
}

func TestSentences(t *testing.T) {
	assert.Equal(t, []string{"Hi there", "Go now"}, Sentences("Hi there. Go now."))
	assert.Equal(t, []string{"3", "14 is pi"}, Sentences("3.14 is pi"))
	assert.Empty(t, Sentences("  . ..\n"))
}

func TestTextScenario(t *testing.T) {
	d, o := newTestDriver()

	var out bytes.Buffer
	w := csv.NewWriter(&out)
	n, err := d.Text(strings.NewReader("Hi there. Go now."), w)
	require.NoError(t, err)
	w.Flush()
	require.NoError(t, w.Error())

	assert.Equal(t, 16, n)
	records := readAll(t, out.Bytes())
	require.Len(t, records, 17)

	header := records[0]
	assert.Equal(t, TextHeader(row.Slots), header)
	assert.Equal(t, "last_word_input", header[6])

	for i, rec := range records[1:] {
		require.Len(t, rec, len(header))
		if i < 9 {
			assert.Equal(t, "0", rec[0])
			assert.Equal(t, "Hi there", rec[1])
		} else {
			assert.Equal(t, "1", rec[0])
			assert.Equal(t, "Go now", rec[1])
		}
	}

	// "Hi " typed: the cursor sits in "there", the harvested word is empty
	rec := records[4]
	assert.Equal(t, []string{"0", "Hi there", "3", "Hi ", "there", "1", ""}, rec[:7])
	assert.Equal(t, "Hi ", rec[28])

	assert.Equal(t, []string{"0", "Hi there", "0", "", "Hi", "0", ""}, records[1][:7])
	assert.Equal(t, []string{"1", "Go now", "6", "Go now", "now", "1", "now"}, records[16][:7])

	// 16 harvests of three queries each, none corrected
	assert.Len(t, o.Calls, 48)
}

func TestTextNumbersSentencesAcrossLines(t *testing.T) {
	d, _ := newTestDriver()

	var out bytes.Buffer
	w := csv.NewWriter(&out)
	_, err := d.Text(strings.NewReader("A.\r\n\nB. C\n"), w)
	require.NoError(t, err)
	w.Flush()

	var nums []string
	for _, rec := range readAll(t, out.Bytes())[1:] {
		nums = append(nums, rec[0])
	}
	assert.Equal(t, []string{"0", "0", "1", "1", "2", "2"}, nums)
}

func TestTextLastCorrection(t *testing.T) {
	d, _ := newTestDriver()

	var out bytes.Buffer
	w := csv.NewWriter(&out)
	_, err := d.Text(strings.NewReader("I lik"), w)
	require.NoError(t, err)
	w.Flush()

	records := readAll(t, out.Bytes())
	last := records[len(records)-1]
	assert.Equal(t, "lik", last[6])
	assert.Equal(t, "like", last[27])
	assert.Equal(t, "I like", last[28])
	assert.Equal(t, "liked", last[29])
}

func TestRunMissingInput(t *testing.T) {
	d, _ := newTestDriver()
	dir := t.TempDir()
	output := filepath.Join(dir, "out.csv")

	err := d.Run(InputText, filepath.Join(dir, "missing.txt"), output)
	require.ErrorIs(t, err, ErrFileNotFound)

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunWritesFile(t *testing.T) {
	d, _ := newTestDriver()
	var logs bytes.Buffer
	d.Progress = NewProgress(log.New(&logs), 1)

	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	output := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(input, []byte("Go now."), 0o644))

	require.NoError(t, d.Run(InputText, input, output))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Len(t, readAll(t, data), 8)
	assert.Contains(t, logs.String(), "Done!")

	sentences, chars := d.Progress.Totals()
	assert.Equal(t, 1, sentences)
	assert.Equal(t, 6, chars)
}

func TestRunFailureStillClosesOutput(t *testing.T) {
	d, _ := newTestDriver()
	d.SentenceColumn = "missing"

	dir := t.TempDir()
	input := filepath.Join(dir, "in.csv")
	output := filepath.Join(dir, "out.csv")
	require.NoError(t, os.WriteFile(input, []byte("text\nhi\n"), 0o644))

	err := d.Run(InputCSV, input, output)
	require.ErrorIs(t, err, ErrColumnNotFound)

	// the file was closed and can be removed
	require.NoError(t, os.Remove(output))
}

func TestProgressSpeed(t *testing.T) {
	now := time.Unix(100, 0)
	p := NewProgress(log.New(&bytes.Buffer{}), 0)
	p.now = func() time.Time { return now }

	p.Start()
	assert.Equal(t, 0.0, p.Speed())

	p.Sentence(0, 40)
	now = now.Add(2 * time.Second)
	assert.Equal(t, 20.0, p.Speed())
}

func TestNilProgressIsSafe(t *testing.T) {
	var p *Progress
	p.Start()
	p.Sentence(0, 10)
	p.Done()
	assert.Equal(t, 0.0, p.Speed())
}
