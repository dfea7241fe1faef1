package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"house-price-predictor/models"
	"house-price-predictor/utils"
)

// LoadListings reads the reference dataset from a CSV file with columns
// location, total_sqft, bath, balcony, bedrooms, price. The derived
// price-per-sqft column is recomputed unconditionally on every load. Rows
// with a non-positive area are dropped with a warning, since the derived
// rate is undefined for them.
func LoadListings(path string, logger *utils.Logger) ([]*models.ListingRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open dataset %q: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: read dataset %q: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("csv: dataset %q is empty", path)
	}

	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[name] = i
	}
	for _, required := range []string{"location", "total_sqft", "bath", "balcony", "bedrooms", "price"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("csv: dataset %q missing column %q", path, required)
		}
	}

	listings := make([]*models.ListingRecord, 0, len(rows)-1)
	dropped := 0
	for i, row := range rows[1:] {
		sqft := parseFloatCell(row, col["total_sqft"])
		if sqft <= 0 {
			logger.Warn("[csv] Dropping row %d: non-positive total_sqft", i+2)
			dropped++
			continue
		}

		price := parseFloatCell(row, col["price"])
		listings = append(listings, &models.ListingRecord{
			ID:           int64(len(listings) + 1),
			Location:     row[col["location"]],
			TotalSqft:    sqft,
			Bath:         parseIntCell(row, col["bath"]),
			Balcony:      parseIntCell(row, col["balcony"]),
			Bedrooms:     parseIntCell(row, col["bedrooms"]),
			Price:        price,
			PricePerSqft: price * 100000 / sqft,
		})
	}

	logger.Info("[csv] Loaded %d listings from %s (dropped %d)", len(listings), path, dropped)
	return listings, nil
}

// ExportProperties writes records to a CSV file with the canonical header,
// the download offered on the history page. Intermediate directories are
// created automatically.
func ExportProperties(path string, records []*models.PropertyRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv: create file %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(PropertyHeader); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}
	for _, rec := range records {
		if err := w.Write(rowFromRecord(rec)); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

func parseFloatCell(row []string, idx int) float64 {
	if idx >= len(row) {
		return 0
	}
	v, err := strconv.ParseFloat(row[idx], 64)
	if err != nil {
		return 0
	}
	return v
}

func parseIntCell(row []string, idx int) int {
	if idx >= len(row) {
		return 0
	}
	// Some exports carry integer columns as floats ("2.0").
	v, err := strconv.ParseFloat(row[idx], 64)
	if err != nil {
		return 0
	}
	return int(v)
}
