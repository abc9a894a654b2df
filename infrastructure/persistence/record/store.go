package record

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/auditra/auditra/application/port/outbound"
	"github.com/auditra/auditra/domain/entity"
)

// StorageKey is the single fixed key the activity-log collection lives
// under in the key-value store.
const StorageKey = "activity:records"

// Store persists the authoritative collection as one JSON array under
// StorageKey. The whole collection is serialized and written in one
// operation, so readers never observe a partial write.
type Store struct {
	kv  outbound.KVStore
	key string
}

func NewStore(kv outbound.KVStore) *Store {
	return &Store{kv: kv, key: StorageKey}
}

// Load reads and validates the persisted collection. A payload that
// fails to parse, or any record missing required fields, is reported
// as corrupt rather than returned partially typed.
func (s *Store) Load(ctx context.Context) ([]entity.ActivityRecord, error) {
	payload, found, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("read activity log: %w", err)
	}
	if !found {
		return nil, outbound.ErrNoRecords
	}

	var records []entity.ActivityRecord
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		return nil, fmt.Errorf("%w: %v", outbound.ErrCorruptPayload, err)
	}
	for i := range records {
		if err := records[i].Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", outbound.ErrCorruptPayload, err)
		}
	}
	return records, nil
}

// Save overwrites the persisted collection.
func (s *Store) Save(ctx context.Context, records []entity.ActivityRecord) error {
	if records == nil {
		records = []entity.ActivityRecord{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode activity log: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, string(payload)); err != nil {
		return fmt.Errorf("%w: %v", outbound.ErrWriteFailed, err)
	}
	return nil
}
