package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hirehub/internship-portal/internal/logger"
	"github.com/hirehub/internship-portal/internal/middlewares"
	"github.com/hirehub/internship-portal/internal/models"
	"github.com/hirehub/internship-portal/internal/services"
)

// ApplicationLister defines the interface that the service must implement.
type ApplicationLister interface {
	ListForListing(ctx context.Context, facultyID, listingID int64) ([]models.ApplicationSummary, error)
}

// NewListApplicationsHandler returns an HTTP handler for the faculty
// application view. Non-owners get the same 404 as a missing listing.
// @Summary View applications for an internship
// @Description Lists applications for a listing owned by the calling faculty, enriched with applicant details.
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Internship ID"
// @Success 200 {array} models.ApplicationSummary "Applications"
// @Failure 403 {object} handlers.ErrorResponse "Faculty role required"
// @Failure 404 {object} handlers.ErrorResponse "Internship not found or access denied"
// @Router /api/internships/{id}/applications [get]
func NewListApplicationsHandler(svc ApplicationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())
		if claims == nil {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Access token required"})
			return
		}

		listingID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Internship not found or access denied"})
			return
		}

		summaries, err := svc.ListForListing(r.Context(), claims.UserID, listingID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrListingNotFound):
				writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Internship not found or access denied"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		writeJSON(w, http.StatusOK, summaries)
	}
}
