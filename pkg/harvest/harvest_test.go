package harvest

import (
	"errors"
	"testing"

	"github.com/bastiangx/suggestlog/pkg/oracle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHarvestWithCorrection(t *testing.T) {
	o := &oracle.Static{
		CompletionTable: map[string][]string{
			"lik":  {"like", "likely"},
			"like": {"liked", "likely", "likes"},
		},
		GuessTable:      map[string][]string{"lik": {"like", "liked"}},
		CorrectionTable: map[string]string{"lik": "like"},
	}

	res := New(o).Harvest("I lik")

	assert.Equal(t, "lik", res.LastWord)
	assert.Equal(t, []string{"like", "likely"}, res.Completions)
	assert.Equal(t, []string{"like", "liked"}, res.Guesses)
	assert.True(t, res.HasCorrection)
	assert.Equal(t, "like", res.Correction)
	assert.Equal(t, "I like", res.CorrectedSentence)
	assert.Equal(t, []string{"liked", "likely", "likes"}, res.CompletionsOnCorrection)

	require.Len(t, o.Calls, 4)
	assert.Equal(t, oracle.Call{Op: "completions", Word: "like", Text: "I like"}, o.Calls[3])
}

func TestHarvestWithoutCorrection(t *testing.T) {
	o := &oracle.Static{
		CompletionTable: map[string][]string{"like": {"liked"}},
	}

	res := New(o).Harvest("I like")

	assert.False(t, res.HasCorrection)
	assert.Empty(t, res.Correction)
	assert.Equal(t, "I like", res.CorrectedSentence)
	assert.Empty(t, res.CompletionsOnCorrection)
	assert.Len(t, o.Calls, 3)
}

func TestHarvestEmptyPrefixStillQueries(t *testing.T) {
	o := &oracle.Static{}

	res := New(o).Harvest("")

	assert.Equal(t, "", res.LastWord)
	assert.Equal(t, "", res.CorrectedSentence)
	require.Len(t, o.Calls, 3)
	for _, c := range o.Calls {
		assert.Equal(t, "", c.Word)
	}
}

func TestHarvestTrailingSpace(t *testing.T) {
	o := &oracle.Static{CorrectionTable: map[string]string{"": "the"}}

	res := New(o).Harvest("I like ")

	assert.Equal(t, "", res.LastWord)
	assert.Equal(t, "I like the", res.CorrectedSentence)
}

func TestHarvestCorrectionWithMultibytePrefix(t *testing.T) {
	o := &oracle.Static{CorrectionTable: map[string]string{"caf": "café"}}

	res := New(o).Harvest("déjà caf")

	assert.Equal(t, "déjà café", res.CorrectedSentence)
	assert.Equal(t, "café", o.Calls[3].Word)
}

func TestHarvestOracleFailureMeansNoSuggestions(t *testing.T) {
	o := &oracle.Static{
		CorrectionTable: map[string]string{"lik": "like"},
		Err:             errors.New("service unavailable"),
	}

	res := New(o).Harvest("I lik")

	assert.Equal(t, "lik", res.LastWord)
	assert.Empty(t, res.Completions)
	assert.Empty(t, res.Guesses)
	assert.False(t, res.HasCorrection)
	assert.Equal(t, "I lik", res.CorrectedSentence)
	assert.Empty(t, res.CompletionsOnCorrection)
}
