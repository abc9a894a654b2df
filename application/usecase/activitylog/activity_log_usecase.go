package activitylog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/auditra/auditra/application/port/inbound"
	"github.com/auditra/auditra/application/port/outbound"
	"github.com/auditra/auditra/domain/entity"
)

// ActivityLogUseCaseImpl serves one logical admin session over the
// record store. The store is single-owner and single-writer; the mutex
// only serializes the HTTP server's concurrent handlers onto that one
// session.
type ActivityLogUseCaseImpl struct {
	mu       sync.Mutex
	store    outbound.RecordStore
	session  *Session
	deletion *DeletionWorkflow
}

// NewActivityLogUseCase boots the session: loads the authoritative
// collection (seeding an empty store first when asked to) and starts
// with the identity filter.
func NewActivityLogUseCase(ctx context.Context, store outbound.RecordStore, seedOnStart bool) (inbound.ActivityLogUseCase, error) {
	var records []entity.ActivityRecord
	var err error
	if seedOnStart {
		records, err = EnsureSeeded(ctx, store)
	} else {
		records, err = store.Load(ctx)
		if errors.Is(err, outbound.ErrNoRecords) {
			records, err = nil, nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("load activity log: %w", err)
	}

	return &ActivityLogUseCaseImpl{
		store:    store,
		session:  NewSession(records),
		deletion: NewDeletionWorkflow(store),
	}, nil
}

func (uc *ActivityLogUseCaseImpl) List(ctx context.Context, req inbound.ListActivityRequest) (*inbound.ListActivityResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	spec := FilterSpec{Role: req.Role, Search: req.Search}
	if spec.Role == "" {
		spec.Role = inbound.RoleAll
	}
	uc.session.SetFilter(spec)

	visible := uc.session.Visible()
	items := make([]inbound.ActivityListItem, len(visible))
	for i, r := range visible {
		items[i] = inbound.ItemFromRecord(r)
	}

	return &inbound.ListActivityResponse{
		Records:  items,
		Total:    len(items),
		Filter:   inbound.ListActivityRequest{Role: spec.Role, Search: spec.Search},
		Deletion: uc.deletionStatus(),
	}, nil
}

func (uc *ActivityLogUseCaseImpl) RequestDelete(ctx context.Context, id string) (*inbound.DeleteActivityResponse, error) {
	if id == "" {
		return nil, fmt.Errorf("record ID cannot be empty")
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	deleted, err := uc.deletion.RequestDelete(ctx, uc.session, id)
	if err != nil {
		return nil, err
	}
	return &inbound.DeleteActivityResponse{
		Deleted:  deleted,
		Deletion: uc.deletionStatus(),
	}, nil
}

func (uc *ActivityLogUseCaseImpl) ConfirmDelete(ctx context.Context, id string) (*inbound.DeleteActivityResponse, error) {
	if id == "" {
		return nil, fmt.Errorf("record ID cannot be empty")
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.deletion.Confirm(ctx, uc.session, id); err != nil {
		return nil, err
	}
	return &inbound.DeleteActivityResponse{
		Deleted:  true,
		Deletion: uc.deletionStatus(),
	}, nil
}

func (uc *ActivityLogUseCaseImpl) CancelDelete(ctx context.Context) inbound.DeletionStatus {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.deletion.Cancel(uc.session)
	return uc.deletionStatus()
}

func (uc *ActivityLogUseCaseImpl) deletionStatus() inbound.DeletionStatus {
	state := uc.session.Deletion()
	if state.Pending() {
		return inbound.DeletionStatus{State: inbound.DeletionStatePending, PendingID: state.PendingID}
	}
	return inbound.DeletionStatus{State: inbound.DeletionStateIdle}
}
