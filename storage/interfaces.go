package storage

import "house-price-predictor/models"

// TableAPI is the minimal surface of the remote spreadsheet service: read
// every cell, append one row, wipe the table. There is no row-level update
// or delete and no transaction mechanism.
type TableAPI interface {
	Values(tableID string) ([][]string, error)
	AppendRow(tableID string, row []string) error
	Clear(tableID string) error
}

// DatasetSource loads the reference listings dataset.
type DatasetSource interface {
	FetchAll() ([]*models.ListingRecord, error)
}
