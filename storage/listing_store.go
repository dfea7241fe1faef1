package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"house-price-predictor/models"
	"house-price-predictor/utils"
)

// ListingStore persists the reference dataset in PostgreSQL so the process
// can serve it without re-parsing the CSV export.
type ListingStore struct {
	db     *sql.DB
	logger *utils.Logger
}

// NewListingStore opens a connection to PostgreSQL, runs schema migrations,
// and returns a ready-to-use ListingStore.
func NewListingStore(dsn string, maxRetries int, logger *utils.Logger) (*ListingStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	retry := &utils.RetryConfig{MaxAttempts: maxRetries, BaseDelay: 2 * time.Second, Logger: logger}
	if err := retry.Do("postgres ping", db.Ping); err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}

	ls := &ListingStore{db: db, logger: logger}
	if err := ls.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return ls, nil
}

func (ls *ListingStore) migrate() error {
	_, err := ls.db.Exec(`
		CREATE TABLE IF NOT EXISTS listings (
			id         SERIAL PRIMARY KEY,
			location   TEXT          NOT NULL,
			total_sqft NUMERIC(8,1)  NOT NULL,
			bath       INT           NOT NULL DEFAULT 0,
			balcony    INT           NOT NULL DEFAULT 0,
			bedrooms   INT           NOT NULL DEFAULT 0,
			price      NUMERIC(10,2) NOT NULL DEFAULT 0
		);

		CREATE INDEX IF NOT EXISTS idx_listings_location ON listings(location);
		CREATE INDEX IF NOT EXISTS idx_listings_bedrooms ON listings(bedrooms);
		CREATE INDEX IF NOT EXISTS idx_listings_sqft     ON listings(total_sqft);
	`)
	return err
}

// Clear deletes all existing listings from the table.
func (ls *ListingStore) Clear() error {
	_, err := ls.db.Exec("DELETE FROM listings")
	if err != nil {
		return fmt.Errorf("postgres: clear: %w", err)
	}
	return nil
}

// Seed batch-inserts the full dataset, clearing old rows first.
func (ls *ListingStore) Seed(listings []*models.ListingRecord) error {
	if len(listings) == 0 {
		return nil
	}

	if err := ls.Clear(); err != nil {
		return err
	}

	const batchSize = 50
	for i := 0; i < len(listings); i += batchSize {
		end := i + batchSize
		if end > len(listings) {
			end = len(listings)
		}
		if err := ls.insertBatch(listings[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (ls *ListingStore) insertBatch(batch []*models.ListingRecord) error {
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*6)

	for idx, l := range batch {
		base := idx * 6
		valueStrings = append(valueStrings,
			fmt.Sprintf("($%d,$%d,$%d,$%d,$%d,$%d)",
				base+1, base+2, base+3, base+4, base+5, base+6))
		valueArgs = append(valueArgs,
			l.Location, l.TotalSqft, l.Bath, l.Balcony, l.Bedrooms, l.Price)
	}

	query := fmt.Sprintf(`
		INSERT INTO listings (location, total_sqft, bath, balcony, bedrooms, price)
		VALUES %s
	`, strings.Join(valueStrings, ","))

	_, err := ls.db.Exec(query, valueArgs...)
	return err
}

// FetchAll retrieves the dataset ordered by id. The derived price-per-sqft
// rate is recomputed after the scan; it is never stored.
func (ls *ListingStore) FetchAll() ([]*models.ListingRecord, error) {
	rows, err := ls.db.Query(`
		SELECT id, location, total_sqft, bath, balcony, bedrooms, price
		FROM listings
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch all: %w", err)
	}
	defer rows.Close()

	var listings []*models.ListingRecord
	for rows.Next() {
		l := &models.ListingRecord{}
		if err := rows.Scan(
			&l.ID, &l.Location, &l.TotalSqft, &l.Bath, &l.Balcony, &l.Bedrooms, &l.Price,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan row: %w", err)
		}
		if l.TotalSqft > 0 {
			l.PricePerSqft = l.Price * 100000 / l.TotalSqft
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

func (ls *ListingStore) Close() error {
	return ls.db.Close()
}
