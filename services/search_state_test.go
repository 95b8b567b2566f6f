package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchState_CompletePublishesResults(t *testing.T) {
	state := &SearchState{}

	seq := state.Begin()
	isLoading, _, _ := state.Snapshot()
	assert.True(t, isLoading)

	state.Complete(seq, []FetchedRecipe{{URI: "uri-1"}}, nil)

	isLoading, results, err := state.Snapshot()
	assert.False(t, isLoading)
	assert.Len(t, results, 1)
	assert.NoError(t, err)
}

func TestSearchState_StaleCompletionDropped(t *testing.T) {
	state := &SearchState{}

	oldSeq := state.Begin()
	newSeq := state.Begin()

	state.Complete(newSeq, []FetchedRecipe{{URI: "fresh"}}, nil)

	// the older search finishing late must not overwrite the newer result
	state.Complete(oldSeq, []FetchedRecipe{{URI: "stale"}}, nil)

	_, results, _ := state.Snapshot()
	assert.Len(t, results, 1)
	assert.Equal(t, "fresh", results[0].URI)
}

func TestSearchState_StaleErrorDropped(t *testing.T) {
	state := &SearchState{}

	oldSeq := state.Begin()
	newSeq := state.Begin()

	state.Complete(newSeq, []FetchedRecipe{{URI: "fresh"}}, nil)
	state.Complete(oldSeq, nil, ErrTransport)

	isLoading, results, err := state.Snapshot()
	assert.False(t, isLoading)
	assert.Len(t, results, 1)
	assert.NoError(t, err)
}

func TestSearchState_ErrorPublished(t *testing.T) {
	state := &SearchState{}

	seq := state.Begin()
	state.Complete(seq, nil, ErrNoMatches)

	isLoading, results, err := state.Snapshot()
	assert.False(t, isLoading)
	assert.Empty(t, results)
	assert.ErrorIs(t, err, ErrNoMatches)
}
