// internal/listings/repository.go
package listings

import (
	"context"
	"database/sql"
	"encoding/json"

	"deal-analyzer/internal/common/errors"
	"deal-analyzer/internal/models"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS listings (
	id   TEXT PRIMARY KEY,
	page INT NOT NULL,
	data JSONB NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_listings_page ON listings (page);
`

// Repository persists listing pages in Postgres. Listings are stored as
// JSONB documents keyed by id, with the page number alongside for
// page-level reads.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the listings table when it does not exist yet.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schemaDDL); err != nil {
		return errors.Wrap(errors.ErrorCodeQueryExecution, "failed to create listings schema", err)
	}
	return nil
}

// SavePage upserts every listing of a page.
func (r *Repository) SavePage(ctx context.Context, page int, props []models.Property) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(errors.ErrorCodeQueryExecution, "failed to begin transaction", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO listings (id, page, data)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET page = EXCLUDED.page, data = EXCLUDED.data`)
	if err != nil {
		return errors.Wrap(errors.ErrorCodeQueryExecution, "failed to prepare upsert", err)
	}
	defer stmt.Close()

	for _, p := range props {
		data, err := json.Marshal(p)
		if err != nil {
			return errors.Wrap(errors.ErrorCodeQueryExecution, "failed to marshal listing", err).
				WithDetail("listing_id", p.ID)
		}
		if _, err := stmt.ExecContext(ctx, p.ID, page, data); err != nil {
			return errors.Wrap(errors.ErrorCodeQueryExecution, "failed to upsert listing", err).
				WithDetail("listing_id", p.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(errors.ErrorCodeQueryExecution, "failed to commit listing page", err)
	}
	return nil
}

// GetPage returns the stored listings for a page, at most limit rows.
// An empty slice means the page was never persisted.
func (r *Repository) GetPage(ctx context.Context, page, limit int) ([]models.Property, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT data FROM listings WHERE page = $1 ORDER BY id LIMIT $2`, page, limit)
	if err != nil {
		return nil, errors.Wrap(errors.ErrorCodeQueryExecution, "failed to query listing page", err)
	}
	defer rows.Close()

	var out []models.Property
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, errors.Wrap(errors.ErrorCodeQueryExecution, "failed to scan listing row", err)
		}
		var p models.Property
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, errors.Wrap(errors.ErrorCodeQueryExecution, "failed to unmarshal listing", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrorCodeQueryExecution, "failed reading listing rows", err)
	}
	return out, nil
}

// GetByID returns a single listing by id.
func (r *Repository) GetByID(ctx context.Context, id string) (*models.Property, error) {
	var data []byte
	err := r.db.QueryRowContext(ctx, `SELECT data FROM listings WHERE id = $1`, id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, errors.New(errors.ErrorCodeListingNotFound, "listing not found").
			WithDetail("listing_id", id)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrorCodeQueryExecution, "failed to query listing", err)
	}

	var p models.Property
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(errors.ErrorCodeQueryExecution, "failed to unmarshal listing", err)
	}
	return &p, nil
}
