package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/hirehub/internship-portal/internal/models"
)

// ListingMemoryRepository is the default process-local listing store.
// Listings are append-only; List preserves insertion order.
type ListingMemoryRepository struct {
	mu       sync.Mutex
	nextID   int64
	listings []models.ListingDB
}

func NewListingMemoryRepository() *ListingMemoryRepository {
	return &ListingMemoryRepository{}
}

// Save assigns the next id and creation timestamp, then appends.
func (r *ListingMemoryRepository) Save(ctx context.Context, listing *models.ListingDB) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	listing.ID = r.nextID
	listing.CreatedAt = time.Now()
	r.listings = append(r.listings, *listing)
	return listing.ID, nil
}

func (r *ListingMemoryRepository) List(ctx context.Context) ([]models.ListingDB, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.ListingDB, len(r.listings))
	copy(out, r.listings)
	return out, nil
}

// GetByID returns nil without error when no listing matches.
func (r *ListingMemoryRepository) GetByID(ctx context.Context, id int64) (*models.ListingDB, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, listing := range r.listings {
		if listing.ID == id {
			l := listing
			return &l, nil
		}
	}
	return nil, nil
}
