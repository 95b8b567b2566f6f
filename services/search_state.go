package services

import "sync"

// SearchState is the advisory loading/result pair observers may read while a
// search is running. It is not a cache; every search re-fetches. Each search
// gets a monotonic sequence number and a completion whose sequence is older
// than the newest issued one is dropped, so a slow stale request cannot
// overwrite a newer result.
type SearchState struct {
	mu        sync.RWMutex
	nextSeq   uint64
	isLoading bool
	results   []FetchedRecipe
	err       error
}

var sharedSearchState = &SearchState{}

// SharedSearchState returns the process-wide state all EdamamService
// instances publish to.
func SharedSearchState() *SearchState {
	return sharedSearchState
}

// Begin marks a new search in flight and returns its sequence number.
func (s *SearchState) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSeq++
	s.isLoading = true
	s.err = nil
	return s.nextSeq
}

// Complete publishes the outcome of the search with the given sequence.
// Stale completions are ignored.
func (s *SearchState) Complete(seq uint64, results []FetchedRecipe, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.nextSeq {
		return
	}
	s.isLoading = false
	s.results = results
	s.err = err
}

// Snapshot returns the current loading flag, last published results, and
// last error.
func (s *SearchState) Snapshot() (isLoading bool, results []FetchedRecipe, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isLoading, s.results, s.err
}
