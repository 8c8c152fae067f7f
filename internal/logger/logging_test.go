package logger

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestProgressWritesToGivenWriter(t *testing.T) {
	var buf bytes.Buffer
	l := Progress(&buf)
	l.SetLevel(log.InfoLevel)
	l.Info("Done!", "sentences", 3, "speed", "1.0 char/s")

	out := buf.String()
	assert.Contains(t, out, "suggestlog")
	assert.Contains(t, out, "Done!")
	assert.Contains(t, out, "sentences")
}

func TestNewWithConfigCapsLevelAtInfo(t *testing.T) {
	prev := log.GetLevel()
	t.Cleanup(func() { log.SetLevel(prev) })

	log.SetLevel(log.ErrorLevel)
	var buf bytes.Buffer
	l := NewWithConfig(&buf, "pfx", false, false)
	assert.Equal(t, log.InfoLevel, l.GetLevel())
	l.Info("shown")
	assert.Contains(t, buf.String(), "pfx")
	assert.Contains(t, buf.String(), "shown")

	log.SetLevel(log.DebugLevel)
	assert.Equal(t, log.DebugLevel, NewWithConfig(&buf, "", false, false).GetLevel())
}

func TestProgressStylesKnowCounters(t *testing.T) {
	styles := ProgressStyles()
	assert.Contains(t, styles.Values, "speed")
	assert.Contains(t, styles.Values, "sentence")
}

func TestBanner(t *testing.T) {
	var buf bytes.Buffer
	Banner(&buf).Print("", "version", "1.2.3")
	assert.Contains(t, buf.String(), "1.2.3")
}
