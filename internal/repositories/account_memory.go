package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/hirehub/internship-portal/internal/models"
)

// AccountMemoryRepository is the default process-local account store.
// The mutex only guards the map itself; uniqueness checks stay in the
// service layer as check-then-insert.
type AccountMemoryRepository struct {
	mu       sync.Mutex
	nextID   int64
	accounts map[int64]models.AccountDB
}

func NewAccountMemoryRepository() *AccountMemoryRepository {
	return &AccountMemoryRepository{accounts: make(map[int64]models.AccountDB)}
}

func (r *AccountMemoryRepository) Save(ctx context.Context, name, email, passwordHash string, role models.Role) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	account := models.AccountDB{
		ID:           r.nextID,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	r.accounts[account.ID] = account
	return account.ID, nil
}

// GetByEmail returns nil without error when no account matches.
func (r *AccountMemoryRepository) GetByEmail(ctx context.Context, email string) (*models.AccountDB, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, account := range r.accounts {
		if account.Email == email {
			a := account
			return &a, nil
		}
	}
	return nil, nil
}

// GetByID returns nil without error when no account matches.
func (r *AccountMemoryRepository) GetByID(ctx context.Context, id int64) (*models.AccountDB, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	a := account
	return &a, nil
}
