package storage

import (
	"strconv"

	"house-price-predictor/models"
	"house-price-predictor/utils"
)

// PropertyHeader is the canonical header row of both per-user tables.
// Column order is significant on the wire.
var PropertyHeader = []string{
	"User", "Location", "Sqft", "Bedrooms", "Bathrooms", "Balconies", "Predicted Price",
}

// PropertyStore is a typed adapter over one per-user remote table. Two
// independent instances exist: prediction history and saved comparisons.
// They share the protocol but never the backing table.
type PropertyStore struct {
	table *RemoteTable
}

// NewHistoryStore creates the store for prediction history.
func NewHistoryStore(api TableAPI, tableID string, logger *utils.Logger) *PropertyStore {
	return &PropertyStore{table: NewRemoteTable(api, tableID, PropertyHeader, logger)}
}

// NewSavedPropertyStore creates the store for saved comparisons.
func NewSavedPropertyStore(api TableAPI, tableID string, logger *utils.Logger) *PropertyStore {
	return &PropertyStore{table: NewRemoteTable(api, tableID, PropertyHeader, logger)}
}

// Init writes the header row if the table is empty.
func (s *PropertyStore) Init() error {
	return s.table.EnsureHeader()
}

// Append adds one record at the end of the table.
func (s *PropertyStore) Append(rec *models.PropertyRecord) error {
	return s.table.Append(rowFromRecord(rec))
}

// ForUser returns the user's records in table order.
func (s *PropertyStore) ForUser(user string) ([]*models.PropertyRecord, error) {
	records, err := s.table.ReadForUser(user)
	if err != nil {
		return nil, err
	}

	out := make([]*models.PropertyRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, recordFromRow(rec))
	}
	return out, nil
}

// All returns every record in the table regardless of owner.
func (s *PropertyStore) All() ([]*models.PropertyRecord, error) {
	records, err := s.table.ReadAll()
	if err != nil {
		return nil, err
	}

	out := make([]*models.PropertyRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, recordFromRow(rec))
	}
	return out, nil
}

// PurgeUser removes the user's records via the table's clear-and-rewrite
// protocol. See RemoteTable.PurgeUser for the consistency caveats.
func (s *PropertyStore) PurgeUser(user string) error {
	return s.table.PurgeUser(user)
}

func rowFromRecord(rec *models.PropertyRecord) []string {
	return []string{
		rec.User,
		rec.Location,
		strconv.FormatFloat(rec.Sqft, 'f', -1, 64),
		strconv.Itoa(rec.Bedrooms),
		strconv.Itoa(rec.Bathrooms),
		strconv.Itoa(rec.Balconies),
		strconv.FormatFloat(rec.PredictedPrice, 'f', 2, 64),
	}
}

// recordFromRow is lenient: cells that fail to parse read as zero, the same
// way the sheet's string cells coerce downstream.
func recordFromRow(rec Record) *models.PropertyRecord {
	sqft, _ := strconv.ParseFloat(rec["Sqft"], 64)
	bedrooms, _ := strconv.Atoi(rec["Bedrooms"])
	bathrooms, _ := strconv.Atoi(rec["Bathrooms"])
	balconies, _ := strconv.Atoi(rec["Balconies"])
	price, _ := strconv.ParseFloat(rec["Predicted Price"], 64)

	return &models.PropertyRecord{
		User:           rec["User"],
		Location:       rec["Location"],
		Sqft:           sqft,
		Bedrooms:       bedrooms,
		Bathrooms:      bathrooms,
		Balconies:      balconies,
		PredictedPrice: price,
	}
}
