package activitylog

import (
	"strings"

	"github.com/auditra/auditra/application/port/inbound"
	"github.com/auditra/auditra/domain/entity"
)

// FilterSpec is the current role/search criteria. It is replaced
// wholesale on every filter change and never persisted.
type FilterSpec struct {
	Role   string
	Search string
}

// DefaultFilter matches everything.
func DefaultFilter() FilterSpec {
	return FilterSpec{Role: inbound.RoleAll, Search: ""}
}

// Apply derives the visible set from the authoritative collection. It
// is pure and stable: the result is a subset of all in the same
// relative order. Role narrows first, then search; both compose by AND.
func Apply(all []entity.ActivityRecord, spec FilterSpec) []entity.ActivityRecord {
	role := spec.Role
	if role == "" {
		role = inbound.RoleAll
	}
	search := strings.TrimSpace(spec.Search)
	folded := strings.ToLower(search)

	filtered := make([]entity.ActivityRecord, 0, len(all))
	for _, r := range all {
		if role != inbound.RoleAll && string(r.Role) != role {
			continue
		}
		if search != "" && !matchesSearch(r, folded, search) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// matchesSearch is case-insensitive on username and userId, but
// case-sensitive on the IP address (a literal substring match).
func matchesSearch(r entity.ActivityRecord, folded, literal string) bool {
	if strings.Contains(strings.ToLower(r.Username), folded) {
		return true
	}
	if strings.Contains(strings.ToLower(r.UserID), folded) {
		return true
	}
	return r.IPAddress != "" && strings.Contains(r.IPAddress, literal)
}

// DeleteByID returns a new sequence with the matching record removed.
// Removing an absent id is a no-op, not an error, so the transform is
// idempotent. Relative order of the survivors is preserved.
func DeleteByID(records []entity.ActivityRecord, id string) []entity.ActivityRecord {
	out := make([]entity.ActivityRecord, 0, len(records))
	for _, r := range records {
		if r.ID == id {
			continue
		}
		out = append(out, r)
	}
	return out
}
