package inbound

import (
	"context"
	"time"

	"github.com/auditra/auditra/domain/entity"
)

// RoleAll is the filter value that matches every role.
const RoleAll = "all"

// List activity

type ListActivityRequest struct {
	Role   string `json:"role,omitempty"`
	Search string `json:"search,omitempty"`
}

type ActivityListItem struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	Username   string     `json:"username"`
	Role       string     `json:"role"`
	Action     string     `json:"action"`
	LoginTime  time.Time  `json:"loginTime"`
	LogoutTime *time.Time `json:"logoutTime,omitempty"`
	IPAddress  string     `json:"ipAddress,omitempty"`
	TokenName  string     `json:"tokenName,omitempty"`
}

type ListActivityResponse struct {
	Records  []ActivityListItem  `json:"records"`
	Total    int                 `json:"total"`
	Filter   ListActivityRequest `json:"filter"`
	Deletion DeletionStatus      `json:"deletion"`
}

// Deletion workflow

const (
	DeletionStateIdle    = "idle"
	DeletionStatePending = "pending_confirmation"
)

type DeletionStatus struct {
	State     string `json:"state"`
	PendingID string `json:"pendingId,omitempty"`
}

type DeleteActivityResponse struct {
	Deleted  bool           `json:"deleted"`
	Deletion DeletionStatus `json:"deletion"`
}

// ActivityLogUseCase is the admin-facing surface over the activity log:
// filtered listing plus the two-step deletion workflow.
type ActivityLogUseCase interface {
	List(ctx context.Context, req ListActivityRequest) (*ListActivityResponse, error)
	// RequestDelete arms deletion of the record, or performs it when the
	// same record is already pending confirmation.
	RequestDelete(ctx context.Context, id string) (*DeleteActivityResponse, error)
	// ConfirmDelete performs a pending deletion for the record.
	ConfirmDelete(ctx context.Context, id string) (*DeleteActivityResponse, error)
	// CancelDelete clears any pending deletion. It never fails.
	CancelDelete(ctx context.Context) DeletionStatus
}

// ItemFromRecord maps a domain record onto the list DTO.
func ItemFromRecord(r entity.ActivityRecord) ActivityListItem {
	return ActivityListItem{
		ID:         r.ID,
		UserID:     r.UserID,
		Username:   r.Username,
		Role:       string(r.Role),
		Action:     r.Action,
		LoginTime:  r.LoginTime,
		LogoutTime: r.LogoutTime,
		IPAddress:  r.IPAddress,
		TokenName:  r.TokenName,
	}
}
