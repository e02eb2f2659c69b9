package services

import (
	"context"
	"time"

	"github.com/hirehub/internship-portal/internal/logger"
)

// NotificationService is a logging stub: it records the email that
// would have been sent instead of talking to an SMTP relay.
type NotificationService struct{}

// NewNotificationService creates a new NotificationService instance.
func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// SendEmail logs the notification and reports success.
func (svc *NotificationService) SendEmail(ctx context.Context, recipient, subject, message string) error {
	logger.Log.Infow("email notification",
		"to", recipient,
		"subject", subject,
		"message", message,
		"timestamp", time.Now().Format(time.RFC3339),
	)
	return nil
}
