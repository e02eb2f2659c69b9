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

// ApplicationPostgresRepository is the SQL-backed application store.
type ApplicationPostgresRepository struct {
	db *sqlx.DB
}

func NewApplicationPostgresRepository(db *sqlx.DB) *ApplicationPostgresRepository {
	return &ApplicationPostgresRepository{db: db}
}

func (r *ApplicationPostgresRepository) Save(ctx context.Context, app *models.ApplicationDB) (int64, error) {
	const query = `
		INSERT INTO applications
			(listing_id, student_id, resume_url, status, applied_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`

	var id int64
	err := r.db.GetContext(ctx, &id, query,
		app.ListingID, app.StudentID, app.ResumeURL, app.Status,
	)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{app.ListingID, app.StudentID, app.Status},
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	app.ID = id
	return id, nil
}

// GetByStudentAndListing returns nil without error when the student has
// not applied to the listing.
func (r *ApplicationPostgresRepository) GetByStudentAndListing(ctx context.Context, studentID, listingID int64) (*models.ApplicationDB, error) {
	const query = `
		SELECT id, listing_id, student_id, resume_url, status, applied_at, updated_at
		FROM applications
		WHERE student_id = $1 AND listing_id = $2
		LIMIT 1
	`

	var app models.ApplicationDB
	err := r.db.GetContext(ctx, &app, query, studentID, listingID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{studentID, listingID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// GetByID returns nil without error when no application matches.
func (r *ApplicationPostgresRepository) GetByID(ctx context.Context, id int64) (*models.ApplicationDB, error) {
	const query = `
		SELECT id, listing_id, student_id, resume_url, status, applied_at, updated_at
		FROM applications
		WHERE id = $1
		LIMIT 1
	`

	var app models.ApplicationDB
	err := r.db.GetContext(ctx, &app, query, id)

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
	return &app, nil
}

func (r *ApplicationPostgresRepository) ListByListing(ctx context.Context, listingID int64) ([]models.ApplicationDB, error) {
	const query = `
		SELECT id, listing_id, student_id, resume_url, status, applied_at, updated_at
		FROM applications
		WHERE listing_id = $1
		ORDER BY id
	`

	var apps []models.ApplicationDB
	err := r.db.SelectContext(ctx, &apps, query, listingID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{listingID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationPostgresRepository) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) error {
	const query = `
		UPDATE applications
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id, status)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, status},
		"error", err,
	)

	return err
}
