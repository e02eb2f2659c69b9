package services

import (
	"context"
	"errors"

	"github.com/hirehub/internship-portal/internal/logger"
	"github.com/hirehub/internship-portal/internal/models"
)

// Error variables
var (
	ErrAlreadyApplied      = errors.New("already applied for this internship")
	ErrApplicationNotFound = errors.New("application not found")
	ErrNotListingOwner     = errors.New("application belongs to another faculty's internship")
	ErrInvalidStatus       = errors.New("status must be Accepted or Rejected")
)

// unknownApplicant is the fallback shown when an application references
// a missing account. Should not happen; tolerated defensively.
const unknownApplicant = "Unknown"

// ApplicationReader defines read-only operations for applications.
type ApplicationReader interface {
	GetByStudentAndListing(ctx context.Context, studentID, listingID int64) (*models.ApplicationDB, error)
	GetByID(ctx context.Context, id int64) (*models.ApplicationDB, error)
	ListByListing(ctx context.Context, listingID int64) ([]models.ApplicationDB, error)
}

// ApplicationWriter defines write operations for applications.
type ApplicationWriter interface {
	Save(ctx context.Context, app *models.ApplicationDB) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error
}

// ApplicationService handles the application lifecycle: apply,
// faculty review, and status decisions.
type ApplicationService struct {
	reader   ApplicationReader
	writer   ApplicationWriter
	listings ListingReader
	accounts AccountReader
}

// NewApplicationService creates a new ApplicationService instance.
func NewApplicationService(reader ApplicationReader, writer ApplicationWriter, listings ListingReader, accounts AccountReader) *ApplicationService {
	return &ApplicationService{
		reader:   reader,
		writer:   writer,
		listings: listings,
		accounts: accounts,
	}
}

// Apply creates a Pending application for the student. The resume must
// already be stored; resumeURL points at it.
func (svc *ApplicationService) Apply(ctx context.Context, studentID, listingID int64, resumeURL string) (int64, error) {
	listing, err := svc.listings.GetByID(ctx, listingID)
	if err != nil {
		logger.Log.Errorw("failed to get listing", "err", err, "listing_id", listingID)
		return 0, err
	}
	if listing == nil {
		return 0, ErrListingNotFound
	}

	existing, err := svc.reader.GetByStudentAndListing(ctx, studentID, listingID)
	if err != nil {
		logger.Log.Errorw("failed to check existing application", "err", err)
		return 0, err
	}
	if existing != nil {
		logger.Log.Errorw("duplicate application", "student_id", studentID, "listing_id", listingID)
		return 0, ErrAlreadyApplied
	}

	app := &models.ApplicationDB{
		ListingID: listingID,
		StudentID: studentID,
		ResumeURL: resumeURL,
		Status:    models.StatusPending,
	}
	id, err := svc.writer.Save(ctx, app)
	if err != nil {
		logger.Log.Errorw("failed to save application", "err", err)
		return 0, err
	}
	return id, nil
}

// ListForListing returns the applications for a listing owned by the
// calling faculty, enriched with each applicant's name and email.
// A listing that does not exist and a listing owned by someone else both
// yield ErrListingNotFound, so non-owners learn nothing.
func (svc *ApplicationService) ListForListing(ctx context.Context, facultyID, listingID int64) ([]models.ApplicationSummary, error) {
	listing, err := svc.listings.GetByID(ctx, listingID)
	if err != nil {
		logger.Log.Errorw("failed to get listing", "err", err, "listing_id", listingID)
		return nil, err
	}
	if listing == nil || listing.FacultyID != facultyID {
		return nil, ErrListingNotFound
	}

	apps, err := svc.reader.ListByListing(ctx, listingID)
	if err != nil {
		logger.Log.Errorw("failed to list applications", "err", err, "listing_id", listingID)
		return nil, err
	}

	summaries := make([]models.ApplicationSummary, 0, len(apps))
	for _, app := range apps {
		summary := models.ApplicationSummary{
			ApplicationID: app.ID,
			StudentName:   unknownApplicant,
			Email:         unknownApplicant,
			ResumeURL:     app.ResumeURL,
			Status:        app.Status,
		}
		student, err := svc.accounts.GetByID(ctx, app.StudentID)
		if err != nil {
			logger.Log.Errorw("failed to get applicant account", "err", err, "student_id", app.StudentID)
			return nil, err
		}
		if student != nil {
			summary.StudentName = student.Name
			summary.Email = student.Email
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

// UpdateStatus sets an application's status to Accepted or Rejected on
// behalf of the owning faculty. The machine is deliberately permissive:
// a repeated update may flip an already decided application, matching
// the observed behavior even though it is probably unintended.
func (svc *ApplicationService) UpdateStatus(ctx context.Context, facultyID, applicationID int64, status models.ApplicationStatus) error {
	if !status.Decision() {
		return ErrInvalidStatus
	}

	app, err := svc.reader.GetByID(ctx, applicationID)
	if err != nil {
		logger.Log.Errorw("failed to get application", "err", err, "application_id", applicationID)
		return err
	}
	if app == nil {
		return ErrApplicationNotFound
	}

	listing, err := svc.listings.GetByID(ctx, app.ListingID)
	if err != nil {
		logger.Log.Errorw("failed to get listing", "err", err, "listing_id", app.ListingID)
		return err
	}
	if listing == nil || listing.FacultyID != facultyID {
		return ErrNotListingOwner
	}

	if err := svc.writer.UpdateStatus(ctx, applicationID, status); err != nil {
		logger.Log.Errorw("failed to update application status", "err", err)
		return err
	}
	return nil
}
