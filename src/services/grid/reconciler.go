package grid

import (
	"sync"

	"Backend-ECW-B2S/src/models"
	"Backend-ECW-B2S/src/services/reports"
)

// ChangeType classifies a store notification.
type ChangeType string

const (
	Added   ChangeType = "added"
	Changed ChangeType = "changed"
	Removed ChangeType = "removed"
)

// ChangeEvent is one typed store notification: a submission appeared, was
// rewritten, or disappeared. Submission is nil for Removed.
type ChangeEvent struct {
	Type       ChangeType
	Key        string
	Submission *models.Submission
}

// RowSet is the materialized flattened view the grid serves. It is rebuilt
// wholesale on full reload and patched row-by-row from change events, so a
// single edited submission never forces re-flattening the whole dataset.
// Rows are keyed by (SubKey, ActivityIndex); within one submission the
// activity index order is preserved, across submissions no order is promised.
type RowSet struct {
	mu   sync.RWMutex
	rows []models.FlatRow
}

func NewRowSet() *RowSet {
	return &RowSet{}
}

// Reload replaces the entire row set from a fresh id→submission mapping.
func (s *RowSet) Reload(subs map[string]models.Submission) {
	rows := reports.FlattenAll(subs)
	s.mu.Lock()
	s.rows = rows
	s.mu.Unlock()
}

// Rows returns a copy of the current rows.
func (s *RowSet) Rows() []models.FlatRow {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.FlatRow, len(s.rows))
	copy(out, s.rows)
	return out
}

func (s *RowSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

// Apply patches the row set with one store notification.
func (s *RowSet) Apply(ev ChangeEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev.Type {
	case Added:
		if ev.Submission == nil {
			return
		}
		// The initial bulk load races the live listener; if rows for this
		// submission already exist the event is a duplicate, not an append.
		for i := range s.rows {
			if s.rows[i].SubKey == ev.Key {
				return
			}
		}
		s.rows = append(s.rows, reports.FlattenOne(ev.Key, *ev.Submission)...)

	case Changed:
		if ev.Submission == nil {
			return
		}
		candidate := reports.FlattenOne(ev.Key, *ev.Submission)
		kept := make([]models.FlatRow, 0, len(s.rows))
		seen := make(map[int]bool, len(candidate))
		for _, row := range s.rows {
			if row.SubKey != ev.Key {
				kept = append(kept, row)
				continue
			}
			if row.ActivityIndex < len(candidate) {
				// update in place, keeping the row's position
				kept = append(kept, candidate[row.ActivityIndex])
				seen[row.ActivityIndex] = true
			}
			// otherwise the activity was deleted; drop the stale row
		}
		for _, row := range candidate {
			if !seen[row.ActivityIndex] {
				kept = append(kept, row)
			}
		}
		s.rows = kept

	case Removed:
		kept := s.rows[:0]
		for _, row := range s.rows {
			if row.SubKey != ev.Key {
				kept = append(kept, row)
			}
		}
		s.rows = kept
	}
}
