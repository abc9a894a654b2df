package activitylog

import (
	"github.com/auditra/auditra/domain/entity"
)

// Session is the session-scoped controller that owns the in-memory
// authoritative collection, the current filter, and the deletion
// state. The visible set is never stored; it is always derived from
// (collection, filter), so the two cannot drift apart.
type Session struct {
	records  []entity.ActivityRecord
	filter   FilterSpec
	deletion DeletionState
}

// NewSession starts a session over an already-loaded collection with
// the identity filter and an idle deletion workflow.
func NewSession(records []entity.ActivityRecord) *Session {
	return &Session{
		records: records,
		filter:  DefaultFilter(),
	}
}

// Records returns the authoritative collection.
func (s *Session) Records() []entity.ActivityRecord {
	return s.records
}

// SetFilter replaces the filter wholesale.
func (s *Session) SetFilter(spec FilterSpec) {
	s.filter = spec
}

// Filter returns the current filter criteria.
func (s *Session) Filter() FilterSpec {
	return s.filter
}

// Visible recomputes the visible set from the authoritative collection
// and the current filter.
func (s *Session) Visible() []entity.ActivityRecord {
	return Apply(s.records, s.filter)
}

// Deletion returns the current deletion workflow state.
func (s *Session) Deletion() DeletionState {
	return s.deletion
}

// replace swaps in a new authoritative collection. Only the deletion
// workflow calls this, and only after a successful save.
func (s *Session) replace(records []entity.ActivityRecord) {
	s.records = records
}
