package handlers

import (
	"context"
	"net/http"

	"github.com/hirehub/internship-portal/internal/logger"
	"github.com/hirehub/internship-portal/internal/models"
)

// ListingLister defines the interface that the service must implement.
type ListingLister interface {
	List(ctx context.Context) ([]models.ListingDB, error)
}

// InternshipSummary is the reduced projection used by the public list
// view; description, skills and owner are deliberately omitted.
// swagger:model InternshipSummary
type InternshipSummary struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	CompanyName string `json:"companyName"`
	Location    string `json:"location"`
	Stipend     string `json:"stipend"`
	Deadline    string `json:"applicationDeadline"`
}

// NewListInternshipsHandler returns an HTTP handler for the summary list.
// @Summary List all internships
// @Description Returns a summary projection of every internship posting.
// @Tags internships
// @Produce json
// @Success 200 {array} handlers.InternshipSummary "Summary list"
// @Router /api/internships [get]
func NewListInternshipsHandler(svc ListingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listings, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}

		summaries := make([]InternshipSummary, 0, len(listings))
		for _, listing := range listings {
			summaries = append(summaries, InternshipSummary{
				ID:          listing.ID,
				Title:       listing.Title,
				CompanyName: listing.CompanyName,
				Location:    listing.Location,
				Stipend:     listing.Stipend,
				Deadline:    listing.Deadline,
			})
		}

		writeJSON(w, http.StatusOK, summaries)
	}
}
