package services

import (
	"context"
	"errors"

	"github.com/hirehub/internship-portal/internal/logger"
	"github.com/hirehub/internship-portal/internal/models"
)

// ErrListingNotFound is returned for unknown listings and, deliberately,
// for listings the caller does not own.
var ErrListingNotFound = errors.New("internship not found")

// ListingReader defines read-only operations for listings.
type ListingReader interface {
	List(ctx context.Context) ([]models.ListingDB, error)
	GetByID(ctx context.Context, id int64) (*models.ListingDB, error)
}

// ListingWriter defines write operations for listings.
type ListingWriter interface {
	Save(ctx context.Context, listing *models.ListingDB) (int64, error)
}

// ListingService handles creation and retrieval of internship postings.
type ListingService struct {
	reader ListingReader
	writer ListingWriter
}

// NewListingService creates a new ListingService instance.
func NewListingService(reader ListingReader, writer ListingWriter) *ListingService {
	return &ListingService{
		reader: reader,
		writer: writer,
	}
}

// Create stores a listing tagged with the creating faculty account.
// Role is enforced at the route; the deadline is stored verbatim.
func (svc *ListingService) Create(ctx context.Context, facultyID int64, listing *models.ListingDB) (int64, error) {
	listing.FacultyID = facultyID

	id, err := svc.writer.Save(ctx, listing)
	if err != nil {
		logger.Log.Errorw("failed to save listing", "err", err)
		return 0, err
	}
	return id, nil
}

// List returns every listing.
func (svc *ListingService) List(ctx context.Context) ([]models.ListingDB, error) {
	listings, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list listings", "err", err)
		return nil, err
	}
	return listings, nil
}

// Get returns a listing by id.
func (svc *ListingService) Get(ctx context.Context, id int64) (*models.ListingDB, error) {
	listing, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get listing", "err", err, "id", id)
		return nil, err
	}
	if listing == nil {
		return nil, ErrListingNotFound
	}
	return listing, nil
}
