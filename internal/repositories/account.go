package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/hirehub/internship-portal/internal/logger"
	"github.com/hirehub/internship-portal/internal/models"
)

// AccountPostgresRepository is the SQL-backed account store, selected
// with STORAGE_DRIVER=postgres.
type AccountPostgresRepository struct {
	db *sqlx.DB
}

func NewAccountPostgresRepository(db *sqlx.DB) *AccountPostgresRepository {
	return &AccountPostgresRepository{db: db}
}

func (r *AccountPostgresRepository) Save(ctx context.Context, name, email, passwordHash string, role models.Role) (int64, error) {
	const query = `
		INSERT INTO accounts (name, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`

	var id int64
	err := r.db.GetContext(ctx, &id, query, name, email, passwordHash, role)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, email, role},
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetByEmail returns nil without error when no account matches.
func (r *AccountPostgresRepository) GetByEmail(ctx context.Context, email string) (*models.AccountDB, error) {
	const query = `
		SELECT id, name, email, password_hash, role, created_at
		FROM accounts
		WHERE email = $1
		LIMIT 1
	`

	var account models.AccountDB
	err := r.db.GetContext(ctx, &account, query, email)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetByID returns nil without error when no account matches.
func (r *AccountPostgresRepository) GetByID(ctx context.Context, id int64) (*models.AccountDB, error) {
	const query = `
		SELECT id, name, email, password_hash, role, created_at
		FROM accounts
		WHERE id = $1
		LIMIT 1
	`

	var account models.AccountDB
	err := r.db.GetContext(ctx, &account, query, id)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}
