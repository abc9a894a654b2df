package outbound

import (
	"context"
	"errors"

	"github.com/auditra/auditra/domain/entity"
)

var (
	// ErrNoRecords means no collection has been persisted yet. It is an
	// expected condition handled by the bootstrap seeder, not a failure.
	ErrNoRecords = errors.New("no activity records persisted")

	// ErrCorruptPayload means the persisted payload could not be parsed
	// into well-formed records. Wrapped around the underlying cause.
	ErrCorruptPayload = errors.New("activity log payload is corrupt")

	// ErrWriteFailed means the persistence medium rejected a write.
	// The in-memory collection must not be mutated when this is returned.
	ErrWriteFailed = errors.New("activity log write failed")
)

// RecordStore owns the authoritative ordered collection of activity
// records. It is the single writer to persistent storage; everything
// else mutates the collection only through it.
type RecordStore interface {
	Load(ctx context.Context) ([]entity.ActivityRecord, error)
	Save(ctx context.Context, records []entity.ActivityRecord) error
}

// KVStore is the persistence boundary the record store sits on: a
// string key-value surface with whole-value get/set semantics.
type KVStore interface {
	// Get returns the value for key; found is false when the key has
	// never been written.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}
