package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/hirehub/internship-portal/internal/logger"
	"github.com/hirehub/internship-portal/internal/models"
)

// ListingPostgresRepository is the SQL-backed listing store. Skills are
// kept as a JSONB column to preserve their order.
type ListingPostgresRepository struct {
	db *sqlx.DB
}

func NewListingPostgresRepository(db *sqlx.DB) *ListingPostgresRepository {
	return &ListingPostgresRepository{db: db}
}

type listingRow struct {
	models.ListingDB
	SkillsJSON []byte `db:"skills_required"`
}

func (row *listingRow) toModel() (*models.ListingDB, error) {
	listing := row.ListingDB
	if len(row.SkillsJSON) > 0 {
		if err := json.Unmarshal(row.SkillsJSON, &listing.SkillsRequired); err != nil {
			return nil, err
		}
	}
	return &listing, nil
}

func (r *ListingPostgresRepository) Save(ctx context.Context, listing *models.ListingDB) (int64, error) {
	const query = `
		INSERT INTO listings
			(title, description, skills_required, stipend, application_deadline,
			 location, company_name, duration, faculty_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id
	`

	skills, err := json.Marshal([]string(listing.SkillsRequired))
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.db.GetContext(ctx, &id, query,
		listing.Title, listing.Description, skills, listing.Stipend,
		listing.Deadline, listing.Location, listing.CompanyName,
		listing.Duration, listing.FacultyID,
	)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{listing.Title, listing.CompanyName, listing.FacultyID},
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	listing.ID = id
	return id, nil
}

func (r *ListingPostgresRepository) List(ctx context.Context) ([]models.ListingDB, error) {
	const query = `
		SELECT id, title, description, skills_required, stipend,
		       application_deadline, location, company_name, duration,
		       faculty_id, created_at
		FROM listings
		ORDER BY id
	`

	var rows []listingRow
	err := r.db.SelectContext(ctx, &rows, query)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	listings := make([]models.ListingDB, 0, len(rows))
	for i := range rows {
		listing, err := rows[i].toModel()
		if err != nil {
			return nil, err
		}
		listings = append(listings, *listing)
	}
	return listings, nil
}

// GetByID returns nil without error when no listing matches.
func (r *ListingPostgresRepository) GetByID(ctx context.Context, id int64) (*models.ListingDB, error) {
	const query = `
		SELECT id, title, description, skills_required, stipend,
		       application_deadline, location, company_name, duration,
		       faculty_id, created_at
		FROM listings
		WHERE id = $1
		LIMIT 1
	`

	var row listingRow
	err := r.db.GetContext(ctx, &row, query, id)

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
	return row.toModel()
}
