package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hirehub/internship-portal/internal/logger"
)

// EmailSender defines the interface that the service must implement.
type EmailSender interface {
	SendEmail(ctx context.Context, recipient, subject, message string) error
}

// EmailNotificationRequest represents the JSON body for a notification
// swagger:model EmailNotificationRequest
type EmailNotificationRequest struct {
	RecipientEmail string `json:"recipientEmail"`
	Subject        string `json:"subject"`
	Message        string `json:"message"`
}

// EmailNotificationResponse represents a successful notification
// swagger:model EmailNotificationResponse
type EmailNotificationResponse struct {
	Message string `json:"message"`
}

// NewEmailNotificationHandler returns an HTTP handler for the email
// notification stub.
// @Summary Send email notification
// @Description Logs the notification; no mail is actually delivered.
// @Tags notifications
// @Accept json
// @Produce json
// @Param notificationRequest body handlers.EmailNotificationRequest true "Notification"
// @Success 200 {object} handlers.EmailNotificationResponse "Notification logged"
// @Failure 400 {object} handlers.ErrorResponse "Missing field"
// @Router /api/notifications/email [post]
func NewEmailNotificationHandler(svc EmailSender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EmailNotificationRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		if req.RecipientEmail == "" || req.Subject == "" || req.Message == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "All fields are required"})
			return
		}

		if err := svc.SendEmail(r.Context(), req.RecipientEmail, req.Subject, req.Message); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
			return
		}

		writeJSON(w, http.StatusOK, EmailNotificationResponse{Message: "Email sent successfully"})
	}
}
