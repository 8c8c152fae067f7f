package dictionary

import (
	"fmt"
	"io"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot is the msgpack form of a compiled word list.
type Snapshot struct {
	Language string  `msgpack:"lang"`
	Created  int64   `msgpack:"ts"`
	Words    []Entry `msgpack:"words"`
}

// NewSnapshot captures wl for language.
func NewSnapshot(language string, wl *WordList) *Snapshot {
	return &Snapshot{
		Language: language,
		Created:  time.Now().Unix(),
		Words:    wl.Entries(),
	}
}

// WordList rebuilds the list held by the snapshot.
func (s *Snapshot) WordList() *WordList {
	wl := NewWordList()
	for _, e := range s.Words {
		wl.Add(e.Word, e.Frequency)
	}
	return wl
}

// WriteSnapshot encodes s to w.
func WriteSnapshot(w io.Writer, s *Snapshot) error {
	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// ReadSnapshot decodes a snapshot from r.
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := msgpack.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &s, nil
}
