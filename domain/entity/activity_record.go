package entity

import (
	"fmt"
	"time"
)

// Role classifies the subject of an activity record. The set is
// extensible: unknown values loaded from storage are kept as-is.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ActivityRecord is a single session-activity event (login/logout) as
// persisted in the activity log. Records are immutable once created;
// identity is the ID field.
type ActivityRecord struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	Username   string     `json:"username"`
	Role       Role       `json:"role"`
	Action     string     `json:"action"`
	LoginTime  time.Time  `json:"loginTime"`
	LogoutTime *time.Time `json:"logoutTime,omitempty"`
	IPAddress  string     `json:"ipAddress,omitempty"`
	// TokenName is a truncated, display-safe reference to the credential
	// used for the session, never the raw token itself.
	TokenName string `json:"tokenName,omitempty"`
}

// SessionOpen reports whether the session has not been logged out yet.
func (r *ActivityRecord) SessionOpen() bool {
	return r.LogoutTime == nil
}

// Validate checks the record against the storage schema. It is applied
// at the load boundary so partially-typed data never leaves the store.
// LoginTime <= LogoutTime is deliberately not enforced here.
func (r *ActivityRecord) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("record ID is required")
	}
	if r.UserID == "" {
		return fmt.Errorf("record %s: user ID is required", r.ID)
	}
	if r.Username == "" {
		return fmt.Errorf("record %s: username is required", r.ID)
	}
	if r.Role == "" {
		return fmt.Errorf("record %s: role is required", r.ID)
	}
	if r.LoginTime.IsZero() {
		return fmt.Errorf("record %s: login time is required", r.ID)
	}
	return nil
}
