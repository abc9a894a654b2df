package activitylog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/auditra/auditra/domain/entity"
)

func testRecords() []entity.ActivityRecord {
	login := time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)
	return []entity.ActivityRecord{
		{ID: "1", UserID: "u-alice", Username: "alice@example.com", Role: entity.RoleAdmin, Action: "login", LoginTime: login, IPAddress: "192.168.1.1"},
		{ID: "2", UserID: "u-bob", Username: "bob@example.com", Role: entity.RoleUser, Action: "login", LoginTime: login, IPAddress: "192.168.1.2"},
		{ID: "3", UserID: "u-carol", Username: "carol@example.com", Role: entity.RoleUser, Action: "login", LoginTime: login, IPAddress: "192.168.1.3"},
	}
}

func ids(records []entity.ActivityRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestApply_IdentityFilter(t *testing.T) {
	all := testRecords()

	visible := Apply(all, DefaultFilter())

	assert.Equal(t, all, visible)
}

func TestApply_RoleFilter(t *testing.T) {
	all := testRecords()

	visible := Apply(all, FilterSpec{Role: "user"})

	assert.Equal(t, []string{"2", "3"}, ids(visible))
}

func TestApply_SearchCaseInsensitiveOnUsername(t *testing.T) {
	all := testRecords()

	visible := Apply(all, FilterSpec{Role: "all", Search: "ALICE"})

	assert.Equal(t, []string{"1"}, ids(visible))
}

func TestApply_SearchMatchesUserID(t *testing.T) {
	all := testRecords()

	visible := Apply(all, FilterSpec{Role: "all", Search: "U-CAROL"})

	assert.Equal(t, []string{"3"}, ids(visible))
}

func TestApply_SearchByIPAddress(t *testing.T) {
	all := testRecords()

	visible := Apply(all, FilterSpec{Role: "all", Search: "192.168.1.2"})

	assert.Equal(t, []string{"2"}, ids(visible))
}

func TestApply_IPSearchIsCaseSensitive(t *testing.T) {
	login := time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)
	all := []entity.ActivityRecord{
		{ID: "1", UserID: "u-dave", Username: "dave@example.com", Role: entity.RoleUser, Action: "login", LoginTime: login, IPAddress: "FE80::1"},
	}

	assert.Empty(t, Apply(all, FilterSpec{Role: "all", Search: "fe80::1"}))
	assert.Equal(t, []string{"1"}, ids(Apply(all, FilterSpec{Role: "all", Search: "FE80::1"})))
}

func TestApply_RoleAndSearchCompose(t *testing.T) {
	all := testRecords()

	// alice matches the search but not the role
	visible := Apply(all, FilterSpec{Role: "user", Search: "example.com"})

	assert.Equal(t, []string{"2", "3"}, ids(visible))
}

func TestApply_WhitespaceSearchIsIgnored(t *testing.T) {
	all := testRecords()

	visible := Apply(all, FilterSpec{Role: "all", Search: "   "})

	assert.Equal(t, all, visible)
}

func TestApply_EmptyCollection(t *testing.T) {
	visible := Apply(nil, FilterSpec{Role: "user", Search: "bob"})

	assert.Empty(t, visible)
}

func TestApply_PreservesRelativeOrder(t *testing.T) {
	all := testRecords()

	visible := Apply(all, FilterSpec{Role: "all", Search: "example.com"})

	assert.Equal(t, []string{"1", "2", "3"}, ids(visible))
}

func TestDeleteByID_RemovesMatchingRecord(t *testing.T) {
	all := testRecords()

	out := DeleteByID(all, "2")

	assert.Len(t, out, len(all)-1)
	assert.Equal(t, []string{"1", "3"}, ids(out))
}

func TestDeleteByID_AbsentIDIsNoOp(t *testing.T) {
	all := testRecords()

	out := DeleteByID(all, "missing")

	assert.Equal(t, all, out)
}

func TestDeleteByID_Idempotent(t *testing.T) {
	all := testRecords()

	once := DeleteByID(all, "2")
	twice := DeleteByID(once, "2")

	assert.Equal(t, once, twice)
}

func TestDeleteByID_DoesNotMutateInput(t *testing.T) {
	all := testRecords()

	_ = DeleteByID(all, "1")

	assert.Equal(t, []string{"1", "2", "3"}, ids(all))
}
