package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hirehub/internship-portal/internal/logger"
	"github.com/hirehub/internship-portal/internal/models"
	"github.com/hirehub/internship-portal/internal/services"
)

// ListingGetter defines the interface that the service must implement.
type ListingGetter interface {
	Get(ctx context.Context, id int64) (*models.ListingDB, error)
}

// InternshipDetail is the full detail view, minus the owner id and
// creation timestamp.
// swagger:model InternshipDetail
type InternshipDetail struct {
	ID             int64            `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	SkillsRequired models.SkillList `json:"skillsRequired"`
	Stipend        string           `json:"stipend"`
	Deadline       string           `json:"applicationDeadline"`
	Location       string           `json:"location"`
	CompanyName    string           `json:"companyName"`
	Duration       string           `json:"duration"`
}

// NewGetInternshipHandler returns an HTTP handler for the detail view.
// @Summary Get internship by ID
// @Tags internships
// @Produce json
// @Param id path int true "Internship ID"
// @Success 200 {object} handlers.InternshipDetail "Internship details"
// @Failure 404 {object} handlers.ErrorResponse "Internship not found"
// @Router /api/internships/{id} [get]
func NewGetInternshipHandler(svc ListingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Internship not found"})
			return
		}

		listing, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrListingNotFound):
				writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Internship not found"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		writeJSON(w, http.StatusOK, InternshipDetail{
			ID:             listing.ID,
			Title:          listing.Title,
			Description:    listing.Description,
			SkillsRequired: listing.SkillsRequired,
			Stipend:        listing.Stipend,
			Deadline:       listing.Deadline,
			Location:       listing.Location,
			CompanyName:    listing.CompanyName,
			Duration:       listing.Duration,
		})
	}
}
