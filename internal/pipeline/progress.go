package pipeline

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Progress reports how far a run is to the operator. It only observes; a nil
// *Progress is valid and reports nothing.
type Progress struct {
	logger    *log.Logger
	every     int
	now       func() time.Time
	start     time.Time
	sentences int
	chars     int
}

// NewProgress reports through logger every `every` sentences.
func NewProgress(logger *log.Logger, every int) *Progress {
	if every < 1 {
		every = 1
	}
	return &Progress{logger: logger, every: every, now: time.Now}
}

// Start resets the counters and the clock.
func (p *Progress) Start() {
	if p == nil {
		return
	}
	p.start = p.now()
	p.sentences = 0
	p.chars = 0
}

// Speed returns the characters processed per second since Start, or 0 when
// no time has elapsed.
func (p *Progress) Speed() float64 {
	if p == nil {
		return 0
	}
	elapsed := p.now().Sub(p.start).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(p.chars) / elapsed
}

// Sentence reports that sentence num, holding chars characters, is about to
// be processed. The speed shown covers the sentences before it.
func (p *Progress) Sentence(num, chars int) {
	if p == nil {
		return
	}
	if num%p.every == 0 {
		p.logger.Info("Creating suggestions", "sentence", num, "chars", p.chars, "speed", formatSpeed(p.Speed()))
	}
	p.sentences++
	p.chars += chars
}

// Done logs the totals.
func (p *Progress) Done() {
	if p == nil {
		return
	}
	p.logger.Info("Done!", "sentences", p.sentences, "chars", p.chars, "speed", formatSpeed(p.Speed()))
}

// Totals returns the sentences and characters seen since Start.
func (p *Progress) Totals() (sentences, chars int) {
	if p == nil {
		return 0, 0
	}
	return p.sentences, p.chars
}

func formatSpeed(v float64) string {
	return fmt.Sprintf("%.1f char/s", v)
}
