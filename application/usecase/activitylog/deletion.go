package activitylog

import (
	"context"
	"fmt"

	"github.com/auditra/auditra/application/port/outbound"
)

// DeletionState is the two-step destructive-action guard: Idle, or
// pending confirmation for exactly one record.
type DeletionState struct {
	PendingID string
}

// Pending reports whether a deletion is armed.
func (d DeletionState) Pending() bool {
	return d.PendingID != ""
}

// DeletionWorkflow guards removal of a single record. Arming never
// mutates anything; only a confirmation for the armed record does, and
// the persisted collection and the session's in-memory collection are
// updated together or not at all.
type DeletionWorkflow struct {
	store outbound.RecordStore
}

func NewDeletionWorkflow(store outbound.RecordStore) *DeletionWorkflow {
	return &DeletionWorkflow{store: store}
}

// RequestDelete arms deletion of id, replacing any previously armed
// target (an implicit cancel). A second request for the already-armed
// id acts as the confirmation and performs the deletion.
func (w *DeletionWorkflow) RequestDelete(ctx context.Context, session *Session, id string) (deleted bool, err error) {
	if session.deletion.PendingID == id && id != "" {
		if err := w.Confirm(ctx, session, id); err != nil {
			return false, err
		}
		return true, nil
	}
	session.deletion = DeletionState{PendingID: id}
	return false, nil
}

// Confirm removes the record from the authoritative collection,
// persists the result, and transitions back to Idle. When the save
// fails the in-memory collection is left untouched so it never
// diverges from durable storage.
func (w *DeletionWorkflow) Confirm(ctx context.Context, session *Session, id string) error {
	session.deletion = DeletionState{}

	next := DeleteByID(session.Records(), id)
	if err := w.store.Save(ctx, next); err != nil {
		return fmt.Errorf("confirm delete %s: %w", id, err)
	}
	session.replace(next)
	return nil
}

// Cancel disarms any pending deletion. It always succeeds; there is no
// partial state to unwind.
func (w *DeletionWorkflow) Cancel(session *Session) {
	session.deletion = DeletionState{}
}
