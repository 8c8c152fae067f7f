package dictionary

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/edsrzf/mmap-go"
)

const maxChunkWords = 1000000

// MaxChunkEntries is the most words a written chunk can rank.
const MaxChunkEntries = math.MaxUint16

var (
	// ErrNoDictionary is returned when a directory holds no recognized files.
	ErrNoDictionary = errors.New("no dictionary files found")
	// ErrChunkTooLarge is returned when entries do not fit the chunk layout.
	ErrChunkTooLarge = errors.New("too large for a chunk")
)

// Load reads a dictionary from path. A file is parsed according to its
// detected format; a directory loads every recognized file in it, chunk
// files in ID order, and merges them.
func Load(path string) (*WordList, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat dictionary %s: %w", path, err)
	}
	if !info.IsDir() {
		return LoadFile(path)
	}

	files, err := dictionaryFiles(path)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoDictionary)
	}

	wl := NewWordList()
	for _, file := range files {
		part, err := LoadFile(file)
		if err != nil {
			return nil, err
		}
		wl.Merge(part)
	}
	log.Debugf("Loaded %d words from %d files in %s", wl.Len(), len(files), path)
	return wl, nil
}

// dictionaryFiles lists the loadable files of dir, sorted by name so chunk
// IDs come in order.
func dictionaryFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan dictionary dir %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		full := filepath.Join(dir, e.Name())
		if _, err := DetectFileFormat(full); err != nil {
			log.Debugf("Skipping %s: %v", full, err)
			continue
		}
		files = append(files, full)
	}
	sort.Strings(files)
	return files, nil
}

// LoadFile parses a single dictionary file.
func LoadFile(filename string) (*WordList, error) {
	format, err := DetectFileFormat(filename)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatChunk:
		return LoadChunk(filename)
	case FormatSnapshot:
		file, err := os.Open(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to open snapshot %s: %w", filename, err)
		}
		defer file.Close()
		snap, err := ReadSnapshot(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		return snap.WordList(), nil
	default:
		file, err := os.Open(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to open word list %s: %w", filename, err)
		}
		defer file.Close()
		wl, err := ReadText(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		return wl, nil
	}
}

// ReadText parses a plain text word list. Each non-empty line holds a word,
// optionally followed by whitespace and an integer frequency (default 1).
// Lines starting with # are comments.
func ReadText(r io.Reader) (*WordList, error) {
	wl := NewWordList()
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		freq := 1
		if len(fields) > 1 {
			f, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid frequency %q: %w", lineNum, fields[1], err)
			}
			freq = f
		}
		wl.Add(fields[0], freq)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return wl, nil
}

// LoadChunk reads a chunked binary dictionary through a read-only memory map.
//
// Layout: int32 word count, then per word a uint16 length, the word bytes
// and a uint16 rank, all little endian. Rank 1 is the most frequent word and
// is turned into the highest score.
func LoadChunk(filename string) (*WordList, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open chunk file %s: %w", filename, err)
	}
	defer file.Close()

	data, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to map chunk file %s: %w", filename, err)
	}
	defer data.Unmap()

	wl, err := parseChunk(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	log.Debugf("Chunk %s loaded: %d words", filename, wl.Len())
	return wl, nil
}

func parseChunk(data []byte) (*WordList, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("failed to read chunk header: %w", io.ErrUnexpectedEOF)
	}
	total := int32(binary.LittleEndian.Uint32(data))
	if total < 0 || total > maxChunkWords {
		return nil, fmt.Errorf("invalid word count %d", total)
	}

	wl := NewWordList()
	off := 4
	for count := 0; count < int(total); count++ {
		if off+2 > len(data) {
			return nil, fmt.Errorf("failed to read word %d of %d: %w", count, total, io.ErrUnexpectedEOF)
		}
		wordLen := int(binary.LittleEndian.Uint16(data[off:]))
		off += 2
		if off+wordLen+2 > len(data) {
			return nil, fmt.Errorf("failed to read word %d: %w", count, io.ErrUnexpectedEOF)
		}
		word := string(data[off : off+wordLen])
		off += wordLen
		rank := binary.LittleEndian.Uint16(data[off:])
		off += 2

		// rank 1 becomes 65535, rank 2 becomes 65534, ...
		wl.Add(word, 65536-int(rank))
	}
	return wl, nil
}

// WriteChunk encodes entries in the chunked binary layout, ranking them by
// their order in the slice. Ranks are uint16, so a chunk holds at most
// MaxChunkEntries words.
func WriteChunk(w io.Writer, entries []Entry) error {
	if len(entries) > MaxChunkEntries {
		return fmt.Errorf("%d words: %w", len(entries), ErrChunkTooLarge)
	}
	if err := binary.Write(w, binary.LittleEndian, int32(len(entries))); err != nil {
		return err
	}
	for i, e := range entries {
		if len(e.Word) > math.MaxUint16 {
			return fmt.Errorf("word %d is %d bytes long: %w", i, len(e.Word), ErrChunkTooLarge)
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(len(e.Word))); err != nil {
			return err
		}
		if _, err := io.WriteString(w, e.Word); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(i+1)); err != nil {
			return err
		}
	}
	return nil
}
