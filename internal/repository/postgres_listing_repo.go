package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Kel2793/Homely-Real-Estate-App/internal/domain"
	"github.com/Kel2793/Homely-Real-Estate-App/internal/search"
)

// PostgresListingRepository stores each listing as a jsonb payload
// keyed by listing number. Scans come back in insertion order.
type PostgresListingRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresListingRepository(pool *pgxpool.Pool) *PostgresListingRepository {
	return &PostgresListingRepository{pool: pool}
}

func (r *PostgresListingRepository) Save(ctx context.Context, rec Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	const q = `INSERT INTO listings (listing_number, payload) VALUES ($1, $2::jsonb)
               ON CONFLICT (listing_number) DO UPDATE SET payload = EXCLUDED.payload`
	_, err = r.pool.Exec(ctx, q, rec.ListingNumber, string(payload))
	return err
}

func (r *PostgresListingRepository) Get(ctx context.Context, listingNumber string) (Record, error) {
	const q = `SELECT payload FROM listings WHERE listing_number = $1`
	var raw []byte
	err := r.pool.QueryRow(ctx, q, listingNumber).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, domain.ErrNotFound
	}
	if err != nil {
		return Record{}, err
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (r *PostgresListingRepository) Exists(ctx context.Context, listingNumber string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM listings WHERE listing_number = $1)`
	var exists bool
	if err := r.pool.QueryRow(ctx, q, listingNumber).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresListingRepository) Delete(ctx context.Context, listingNumber string) error {
	const q = `DELETE FROM listings WHERE listing_number = $1`
	_, err := r.pool.Exec(ctx, q, listingNumber)
	return err
}

func (r *PostgresListingRepository) List(ctx context.Context) ([]Record, error) {
	const q = `SELECT payload FROM listings ORDER BY created_at`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecords(rows)
}

// Search runs the one enumerated predicate matching the filter mask.
// The caller guarantees a non-empty mask; an unknown mask would mean a
// hole in the predicate table and is reported as an error rather than
// silently scanning everything.
func (r *PostgresListingRepository) Search(ctx context.Context, f search.Filters) ([]Record, error) {
	mask := f.Mask()
	predicate, ok := searchPredicates[mask]
	if !ok {
		return nil, fmt.Errorf("no search predicate for filter combination %05b", mask)
	}
	q := `SELECT payload FROM listings WHERE ` + predicate + ` ORDER BY created_at`
	rows, err := r.pool.Query(ctx, q, f.Args()...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecords(rows)
}

func collectRecords(rows pgx.Rows) ([]Record, error) {
	recs := make([]Record, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var rec Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return recs, nil
}
