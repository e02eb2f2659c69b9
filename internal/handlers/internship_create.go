package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hirehub/internship-portal/internal/logger"
	"github.com/hirehub/internship-portal/internal/middlewares"
	"github.com/hirehub/internship-portal/internal/models"
)

// ListingCreator defines the interface that the service must implement.
type ListingCreator interface {
	Create(ctx context.Context, facultyID int64, listing *models.ListingDB) (int64, error)
}

// CreateInternshipRequest represents the JSON body for listing creation
// swagger:model CreateInternshipRequest
type CreateInternshipRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	// Accepts an array of strings or a single string
	SkillsRequired models.SkillList `json:"skillsRequired"`
	Stipend        string           `json:"stipend"`
	Deadline       string           `json:"applicationDeadline"`
	Location       string           `json:"location"`
	CompanyName    string           `json:"companyName"`
	Duration       string           `json:"duration"`
}

// CreateInternshipResponse represents a successful creation response
// swagger:model CreateInternshipResponse
type CreateInternshipResponse struct {
	Message      string `json:"message"`
	InternshipID int64  `json:"internshipId"`
}

// NewCreateInternshipHandler returns an HTTP handler for listing creation.
// @Summary Create a new internship
// @Description Creates an internship posting owned by the calling faculty account.
// @Tags internships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createRequest body handlers.CreateInternshipRequest true "Internship fields"
// @Success 201 {object} handlers.CreateInternshipResponse "Internship created"
// @Failure 400 {object} handlers.ErrorResponse "Missing field"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} handlers.ErrorResponse "Faculty role required"
// @Router /api/internships [post]
func NewCreateInternshipHandler(svc ListingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())
		if claims == nil {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Access token required"})
			return
		}

		var req CreateInternshipRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.Title == "" || req.Description == "" || len(req.SkillsRequired) == 0 ||
			req.Stipend == "" || req.Deadline == "" || req.Location == "" ||
			req.CompanyName == "" || req.Duration == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "All fields are required"})
			return
		}

		listing := &models.ListingDB{
			Title:          req.Title,
			Description:    req.Description,
			SkillsRequired: req.SkillsRequired,
			Stipend:        req.Stipend,
			Deadline:       req.Deadline,
			Location:       req.Location,
			CompanyName:    req.CompanyName,
			Duration:       req.Duration,
		}

		id, err := svc.Create(r.Context(), claims.UserID, listing)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusCreated, CreateInternshipResponse{
			Message:      "Internship created successfully",
			InternshipID: id,
		})
	}
}
