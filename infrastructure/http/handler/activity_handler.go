package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/auditra/auditra/application/port/inbound"
	"github.com/auditra/auditra/infrastructure/http/middleware"
	"github.com/auditra/auditra/infrastructure/http/response"
	apperror "github.com/auditra/auditra/pkg/error"
)

// ActivityHandler exposes the activity log admin surface: filtered
// listing and the two-step deletion workflow.
type ActivityHandler struct {
	activityLogUseCase inbound.ActivityLogUseCase
	authMiddleware     *middleware.AuthMiddleware
}

func NewActivityHandler(
	activityLogUseCase inbound.ActivityLogUseCase,
	authMiddleware *middleware.AuthMiddleware,
) *ActivityHandler {
	return &ActivityHandler{
		activityLogUseCase: activityLogUseCase,
		authMiddleware:     authMiddleware,
	}
}

func (h *ActivityHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/v1/activity", h.authMiddleware.RequireAdmin(h.ListActivity)).Methods("GET")
	router.HandleFunc("/v1/activity/cancel", h.authMiddleware.RequireAdmin(h.CancelDelete)).Methods("POST")
	router.HandleFunc("/v1/activity/{id}/delete", h.authMiddleware.RequireAdmin(h.RequestDelete)).Methods("POST")
	router.HandleFunc("/v1/activity/{id}/confirm", h.authMiddleware.RequireAdmin(h.ConfirmDelete)).Methods("POST")
}

// ListActivity returns the visible set for the requested filter along
// with the echoed filter and the current deletion state.
func (h *ActivityHandler) ListActivity(w http.ResponseWriter, r *http.Request) {
	req := inbound.ListActivityRequest{
		Role:   r.URL.Query().Get("role"),
		Search: r.URL.Query().Get("search"),
	}

	resp, err := h.activityLogUseCase.List(r.Context(), req)
	if err != nil {
		appErr := apperror.MapError(err)
		response.Error(w, appErr.Status, appErr.Message)
		return
	}

	response.Success(w, http.StatusOK, "Activity records retrieved", resp)
}

// RequestDelete arms deletion of a record; a repeated request for the
// record already pending confirmation performs the deletion.
func (h *ActivityHandler) RequestDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		response.BadRequest(w, "Record ID is required")
		return
	}

	resp, err := h.activityLogUseCase.RequestDelete(r.Context(), id)
	if err != nil {
		appErr := apperror.MapError(err)
		response.Error(w, appErr.Status, appErr.Message)
		return
	}

	message := "Deletion pending confirmation"
	if resp.Deleted {
		message = "Record deleted"
	}
	response.Success(w, http.StatusOK, message, resp)
}

// ConfirmDelete performs a pending deletion explicitly.
func (h *ActivityHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		response.BadRequest(w, "Record ID is required")
		return
	}

	resp, err := h.activityLogUseCase.ConfirmDelete(r.Context(), id)
	if err != nil {
		appErr := apperror.MapError(err)
		response.Error(w, appErr.Status, appErr.Message)
		return
	}

	response.Success(w, http.StatusOK, "Record deleted", resp)
}

// CancelDelete clears any pending deletion without mutating anything.
func (h *ActivityHandler) CancelDelete(w http.ResponseWriter, r *http.Request) {
	status := h.activityLogUseCase.CancelDelete(r.Context())
	response.Success(w, http.StatusOK, "Deletion cancelled", status)
}
