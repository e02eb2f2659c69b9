package handlers

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/hirehub/internship-portal/internal/logger"
	"github.com/hirehub/internship-portal/internal/middlewares"
	"github.com/hirehub/internship-portal/internal/services"
	"github.com/hirehub/internship-portal/internal/uploads"
)

// Applier defines the interface that the service must implement.
type Applier interface {
	Apply(ctx context.Context, studentID, listingID int64, resumeURL string) (int64, error)
}

// ResumeSaver defines the interface the upload store must implement.
type ResumeSaver interface {
	SaveResume(ctx context.Context, header *multipart.FileHeader) (string, error)
}

// ApplyResponse represents a successful application response
// swagger:model ApplyResponse
type ApplyResponse struct {
	Message       string `json:"message"`
	ApplicationID int64  `json:"applicationId"`
}

// NewApplyHandler returns an HTTP handler for internship applications.
// The resume file is stored before the record is created; a failed
// record creation does not remove the stored file.
// @Summary Apply for an internship
// @Description Multipart form with an internshipId field and a single PDF resume file (max 5 MiB).
// @Tags applications
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param internshipId formData string true "Internship ID"
// @Param resume formData file true "Resume, PDF only"
// @Success 201 {object} handlers.ApplyResponse "Application submitted"
// @Failure 400 {object} handlers.ErrorResponse "Missing field, non-PDF file, or file over 5 MiB"
// @Failure 403 {object} handlers.ErrorResponse "Student role required"
// @Failure 404 {object} handlers.ErrorResponse "Internship not found"
// @Failure 409 {object} handlers.ErrorResponse "Already applied"
// @Router /api/applications [post]
func NewApplyHandler(svc Applier, files ResumeSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())
		if claims == nil {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Access token required"})
			return
		}

		if err := r.ParseMultipartForm(uploads.MaxResumeSize + 1<<20); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid multipart form"})
			return
		}

		rawID := r.FormValue("internshipId")
		if rawID == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Internship ID is required"})
			return
		}

		file, header, err := r.FormFile("resume")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Resume file is required"})
			return
		}
		file.Close()

		listingID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Internship not found"})
			return
		}

		resumeURL, err := files.SaveResume(r.Context(), header)
		if err != nil {
			switch {
			case errors.Is(err, uploads.ErrNotPDF):
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Only PDF files are allowed for resume upload."})
			case errors.Is(err, uploads.ErrTooLarge):
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "File size too large. Maximum size is 5MB."})
			default:
				logger.Log.Errorw("failed to store resume", "err", err)
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		id, err := svc.Apply(r.Context(), claims.UserID, listingID, resumeURL)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrListingNotFound):
				writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Internship not found"})
			case errors.Is(err, services.ErrAlreadyApplied):
				writeJSON(w, http.StatusConflict, ErrorResponse{Error: "You have already applied for this internship"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			}
			return
		}

		writeJSON(w, http.StatusCreated, ApplyResponse{
			Message:       "Application submitted successfully",
			ApplicationID: id,
		})
	}
}
