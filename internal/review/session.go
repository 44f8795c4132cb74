// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package review

import (
	"fmt"
	"sync"
	"time"

	"github.com/pdiddy/thesaurus-engine/internal/merge"
	"github.com/pdiddy/thesaurus-engine/internal/stats"
	"github.com/pdiddy/thesaurus-engine/internal/thesaurus"
	"github.com/pdiddy/thesaurus-engine/pkg/types"
)

// DefaultBatchSize is the number of terms shown per review page.
const DefaultBatchSize = 20

// Session holds one uploaded term list for the duration of a review. It is
// safe for concurrent use; each decision replaces a single record under the
// write lock.
type Session struct {
	mu        sync.RWMutex
	records   []types.TermRecord
	index     map[int]int // record id -> position
	batchSize int
	created   time.Time
}

// NewSession takes ownership of records. batchSize <= 0 selects
// DefaultBatchSize.
func NewSession(records []types.TermRecord, batchSize int) *Session {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	index := make(map[int]int, len(records))
	for i, r := range records {
		index[r.ID] = i
	}
	return &Session{
		records:   records,
		index:     index,
		batchSize: batchSize,
		created:   time.Now(),
	}
}

// Created returns when the session was opened.
func (s *Session) Created() time.Time { return s.created }

// Len returns the number of records.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Records returns a snapshot of all records.
func (s *Session) Records() []types.TermRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.TermRecord(nil), s.records...)
}

// Record returns the record with the given id.
func (s *Session) Record(id int) (types.TermRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return types.TermRecord{}, fmt.Errorf("%w: id %d", ErrRecordNotFound, id)
	}
	return s.records[i], nil
}

// Decide records a human decision on the record with the given id and
// returns the updated record.
func (s *Session) Decide(id int, action types.Action, mergeTarget string) (types.TermRecord, error) {
	d, err := Decision{ID: id, Action: action, MergeTarget: mergeTarget}.validate()
	if err != nil {
		return types.TermRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[id]
	if !ok {
		return types.TermRecord{}, fmt.Errorf("%w: id %d", ErrRecordNotFound, id)
	}
	s.records[i] = d.apply(s.records[i])
	return s.records[i], nil
}

// Statistics aggregates the current records.
func (s *Session) Statistics() types.Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return stats.Aggregate(s.records)
}

// Candidates suggests merge targets for the record with the given id.
func (s *Session) Candidates(id int) ([]types.TermRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: id %d", ErrRecordNotFound, id)
	}
	return merge.FindCandidates(s.records[i].Term, s.records), nil
}

// Export renders the thesaurus for the current records.
func (s *Session) Export() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return thesaurus.Export(s.records)
}

// Page returns the n-th batch of records, 1-based. See Paginate.
func (s *Session) Page(n int) Page {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Paginate(s.records, n, s.batchSize)
}
