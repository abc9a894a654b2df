package activitylog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/auditra/auditra/application/port/outbound"
	"github.com/auditra/auditra/domain/entity"
)

// SampleRecords is the fixed collection the seeder writes into an
// empty store: both roles represented, open and closed sessions, and
// deterministic timestamps so repeated seeding is reproducible.
func SampleRecords() []entity.ActivityRecord {
	logout1 := time.Date(2026, time.March, 2, 9, 42, 0, 0, time.UTC)
	logout2 := time.Date(2026, time.March, 2, 11, 5, 0, 0, time.UTC)
	return []entity.ActivityRecord{
		{
			ID:         "1",
			UserID:     "u-alice",
			Username:   "alice@example.com",
			Role:       entity.RoleAdmin,
			Action:     "login",
			LoginTime:  time.Date(2026, time.March, 2, 8, 30, 0, 0, time.UTC),
			LogoutTime: &logout1,
			IPAddress:  "192.168.1.1",
			TokenName:  "tok_a1f3…",
		},
		{
			ID:         "2",
			UserID:     "u-bob",
			Username:   "bob@example.com",
			Role:       entity.RoleUser,
			Action:     "login",
			LoginTime:  time.Date(2026, time.March, 2, 10, 12, 0, 0, time.UTC),
			LogoutTime: &logout2,
			IPAddress:  "192.168.1.2",
			TokenName:  "tok_9bd0…",
		},
		{
			ID:        "3",
			UserID:    "u-carol",
			Username:  "carol@example.com",
			Role:      entity.RoleUser,
			Action:    "login",
			LoginTime: time.Date(2026, time.March, 2, 12, 1, 0, 0, time.UTC),
			IPAddress: "192.168.1.3",
			TokenName: "tok_55ce…",
		},
	}
}

// EnsureSeeded loads the persisted collection, seeding the fixed
// sample set only when nothing has been persisted yet. Against an
// already-seeded store it is a no-op that returns the loaded data;
// load or write failures propagate without seeding.
func EnsureSeeded(ctx context.Context, store outbound.RecordStore) ([]entity.ActivityRecord, error) {
	records, err := store.Load(ctx)
	if err == nil {
		return records, nil
	}
	if !errors.Is(err, outbound.ErrNoRecords) {
		return nil, err
	}

	seeded := SampleRecords()
	if err := store.Save(ctx, seeded); err != nil {
		return nil, fmt.Errorf("seed activity log: %w", err)
	}
	return seeded, nil
}
