package activitylog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditra/auditra/application/port/outbound"
	"github.com/auditra/auditra/infrastructure/persistence/record"
)

// memKV is an in-memory key-value fake for exercising the real record
// store codec.
type memKV struct {
	data     map[string]string
	setCalls int
	setErr   error
}

func newMemKV() *memKV {
	return &memKV{data: map[string]string{}}
}

func (m *memKV) Get(ctx context.Context, key string) (string, bool, error) {
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *memKV) Set(ctx context.Context, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.setCalls++
	m.data[key] = value
	return nil
}

func TestEnsureSeeded_SeedsEmptyStore(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	store := record.NewStore(kv)

	records, err := EnsureSeeded(ctx, store)

	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, ids(records))
	assert.Equal(t, 1, kv.setCalls)

	// seeded data must round-trip through the store
	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, loaded)
}

func TestEnsureSeeded_SecondCallIsNoOp(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	store := record.NewStore(kv)

	first, err := EnsureSeeded(ctx, store)
	require.NoError(t, err)

	second, err := EnsureSeeded(ctx, store)

	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, kv.setCalls)
}

func TestEnsureSeeded_DoesNotMaskCorruption(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	kv.data[record.StorageKey] = "{not json"
	store := record.NewStore(kv)

	_, err := EnsureSeeded(ctx, store)

	assert.ErrorIs(t, err, outbound.ErrCorruptPayload)
	assert.Equal(t, 0, kv.setCalls)
}

func TestEnsureSeeded_WriteFailurePropagates(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	kv.setErr = errors.New("quota exceeded")
	store := record.NewStore(kv)

	_, err := EnsureSeeded(ctx, store)

	assert.ErrorIs(t, err, outbound.ErrWriteFailed)
}

func TestSampleRecords_AreWellFormed(t *testing.T) {
	for _, r := range SampleRecords() {
		assert.NoError(t, r.Validate())
		if r.LogoutTime != nil {
			assert.False(t, r.LogoutTime.Before(r.LoginTime), "record %s logs out before logging in", r.ID)
		}
	}
}

func TestSampleRecords_SpanRolesAndSessionStates(t *testing.T) {
	records := SampleRecords()

	roles := map[string]bool{}
	open := 0
	for _, r := range records {
		roles[string(r.Role)] = true
		if r.SessionOpen() {
			open++
		}
	}

	assert.True(t, roles["admin"])
	assert.True(t, roles["user"])
	assert.Equal(t, 1, open)
}
