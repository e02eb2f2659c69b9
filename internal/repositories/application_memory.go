package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/hirehub/internship-portal/internal/models"
)

// ApplicationMemoryRepository is the default process-local application
// store. Records are never deleted; status updates mutate in place.
type ApplicationMemoryRepository struct {
	mu           sync.Mutex
	nextID       int64
	applications []models.ApplicationDB
}

func NewApplicationMemoryRepository() *ApplicationMemoryRepository {
	return &ApplicationMemoryRepository{}
}

// Save assigns the next id and submission timestamp, then appends.
func (r *ApplicationMemoryRepository) Save(ctx context.Context, app *models.ApplicationDB) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	app.ID = r.nextID
	app.AppliedAt = time.Now()
	r.applications = append(r.applications, *app)
	return app.ID, nil
}

// GetByStudentAndListing returns nil without error when the student has
// not applied to the listing.
func (r *ApplicationMemoryRepository) GetByStudentAndListing(ctx context.Context, studentID, listingID int64) (*models.ApplicationDB, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, app := range r.applications {
		if app.StudentID == studentID && app.ListingID == listingID {
			a := app
			return &a, nil
		}
	}
	return nil, nil
}

// GetByID returns nil without error when no application matches.
func (r *ApplicationMemoryRepository) GetByID(ctx context.Context, id int64) (*models.ApplicationDB, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, app := range r.applications {
		if app.ID == id {
			a := app
			return &a, nil
		}
	}
	return nil, nil
}

func (r *ApplicationMemoryRepository) ListByListing(ctx context.Context, listingID int64) ([]models.ApplicationDB, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.ApplicationDB
	for _, app := range r.applications {
		if app.ListingID == listingID {
			out = append(out, app)
		}
	}
	return out, nil
}

// UpdateStatus sets the status and updated timestamp in place. Updating
// an unknown id is a no-op; existence is checked by the service first.
func (r *ApplicationMemoryRepository) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.applications {
		if r.applications[i].ID == id {
			now := time.Now()
			r.applications[i].Status = status
			r.applications[i].UpdatedAt = &now
			break
		}
	}
	return nil
}
