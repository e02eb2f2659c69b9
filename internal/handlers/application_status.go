package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hirehub/internship-portal/internal/logger"
	"github.com/hirehub/internship-portal/internal/middlewares"
	"github.com/hirehub/internship-portal/internal/models"
	"github.com/hirehub/internship-portal/internal/services"
)

// StatusUpdater defines the interface that the service must implement.
type StatusUpdater interface {
	UpdateStatus(ctx context.Context, facultyID, applicationID int64, status models.ApplicationStatus) error
}

// UpdateStatusRequest represents the JSON body for a status decision
// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	// Accepted or Rejected
	// required: true
	Status models.ApplicationStatus `json:"status"`
}

// UpdateStatusResponse represents a successful status update
// swagger:model UpdateStatusResponse
type UpdateStatusResponse struct {
	Message string `json:"message"`
}

// NewUpdateApplicationStatusHandler returns an HTTP handler for status
// decisions on applications.
// @Summary Update application status
// @Description Sets an application to Accepted or Rejected. Only the faculty owning the listing may decide.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param statusRequest body handlers.UpdateStatusRequest true "New status"
// @Success 200 {object} handlers.UpdateStatusResponse "Status updated"
// @Failure 400 {object} handlers.ErrorResponse "Status not Accepted or Rejected"
// @Failure 403 {object} handlers.ErrorResponse "Not the listing owner"
// @Failure 404 {object} handlers.ErrorResponse "Application not found"
// @Router /api/applications/{id} [patch]
func NewUpdateApplicationStatusHandler(svc StatusUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())
		if claims == nil {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Access token required"})
			return
		}

		var req UpdateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}
		if !req.Status.Decision() {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: `Status must be either "Accepted" or "Rejected"`})
			return
		}

		applicationID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Application not found"})
			return
		}

		if err := svc.UpdateStatus(r.Context(), claims.UserID, applicationID, req.Status); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidStatus):
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: `Status must be either "Accepted" or "Rejected"`})
			case errors.Is(err, services.ErrApplicationNotFound):
				writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Application not found"})
			case errors.Is(err, services.ErrNotListingOwner):
				writeJSON(w, http.StatusForbidden, ErrorResponse{Error: "Access denied. You can only update applications for your own internships."})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		writeJSON(w, http.StatusOK, UpdateStatusResponse{Message: "Application status updated successfully"})
	}
}
