// Package model wraps the trained regression artifact. Callers only see the
// Predictor interface; the artifact's internals never leak past this package.
package model

import (
	"encoding/json"
	"fmt"
	"os"

	"house-price-predictor/models"
)

// Predictor estimates a property price in lakhs from the feature record.
// Implementations are opaque to the rest of the system.
type Predictor interface {
	Predict(q *models.PredictionQuery) (float64, error)
}

// LinearModel is a one-hot linear regression exported from the training
// pipeline as a JSON coefficient file.
type LinearModel struct {
	Intercept float64            `json:"intercept"`
	SqftW     float64            `json:"total_sqft"`
	BathW     float64            `json:"bath"`
	BalconyW  float64            `json:"balcony"`
	BedroomsW float64            `json:"bedrooms"`
	Locations map[string]float64 `json:"locations"`
}

// Load reads a LinearModel from the JSON artifact at path.
func Load(path string) (*LinearModel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("model: read artifact %q: %w", path, err)
	}

	m := &LinearModel{}
	if err := json.Unmarshal(raw, m); err != nil {
		return nil, fmt.Errorf("model: parse artifact %q: %w", path, err)
	}
	if len(m.Locations) == 0 {
		return nil, fmt.Errorf("model: artifact %q has no location coefficients", path)
	}
	return m, nil
}

// Predict applies the coefficients to the ordered feature record
// (location, total_sqft, bath, balcony, bedrooms) and returns the estimated
// price in lakhs. A location absent from the training set is an inference
// failure, not a zero-weight default.
func (m *LinearModel) Predict(q *models.PredictionQuery) (float64, error) {
	locW, ok := m.Locations[q.Location]
	if !ok {
		return 0, fmt.Errorf("model: location %q not in training vocabulary", q.Location)
	}

	price := m.Intercept +
		locW +
		m.SqftW*q.TotalSqft +
		m.BathW*float64(q.Bath) +
		m.BalconyW*float64(q.Balcony) +
		m.BedroomsW*float64(q.Bedrooms)

	return price, nil
}
