package services

import (
	"errors"
	"testing"

	"house-price-predictor/models"
	"house-price-predictor/utils"
)

type stubPredictor struct {
	out float64
	err error
}

func (s *stubPredictor) Predict(q *models.PredictionQuery) (float64, error) {
	return s.out, s.err
}

func validQuery() *models.PredictionQuery {
	return &models.PredictionQuery{
		Location:  "Whitefield",
		TotalSqft: 1000,
		Bath:      2,
		Balcony:   1,
		Bedrooms:  2,
	}
}

func TestPredictScalesAndBounds(t *testing.T) {
	svc := NewPredictionService(&stubPredictor{out: 95}, utils.NewLogger())

	res, err := svc.Predict(validQuery())
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}

	if res.PointEstimate != 9500000 {
		t.Errorf("PointEstimate: got %.2f, want 9500000 (95 lakhs scaled)", res.PointEstimate)
	}
	if res.LowerBound != 8550000 {
		t.Errorf("LowerBound: got %.2f, want 8550000 (90%% of point)", res.LowerBound)
	}
	if res.UpperBound != 10450000 {
		t.Errorf("UpperBound: got %.2f, want 10450000 (110%% of point)", res.UpperBound)
	}
}

func TestPredictRoundsToTwoDecimals(t *testing.T) {
	svc := NewPredictionService(&stubPredictor{out: 95.123456}, utils.NewLogger())

	res, err := svc.Predict(validQuery())
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}

	if res.PointEstimate != 9512345.6 {
		t.Errorf("PointEstimate: got %v, want 9512345.6", res.PointEstimate)
	}
}

func TestPredictValidation(t *testing.T) {
	svc := NewPredictionService(&stubPredictor{out: 95}, utils.NewLogger())

	tests := []struct {
		name   string
		mutate func(q *models.PredictionQuery)
	}{
		{"sqft below 200", func(q *models.PredictionQuery) { q.TotalSqft = 100 }},
		{"sqft above 10000", func(q *models.PredictionQuery) { q.TotalSqft = 10001 }},
		{"zero bedrooms", func(q *models.PredictionQuery) { q.Bedrooms = 0 }},
		{"eleven bathrooms", func(q *models.PredictionQuery) { q.Bath = 11 }},
		{"negative balconies", func(q *models.PredictionQuery) { q.Balcony = -1 }},
		{"six balconies", func(q *models.PredictionQuery) { q.Balcony = 6 }},
		{"empty location", func(q *models.PredictionQuery) { q.Location = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuery()
			tt.mutate(q)

			_, err := svc.Predict(q)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Error() == "" {
				t.Error("validation error should carry a message")
			}
		})
	}
}

func TestPredictBoundaryValuesAccepted(t *testing.T) {
	svc := NewPredictionService(&stubPredictor{out: 95}, utils.NewLogger())

	q := validQuery()
	q.TotalSqft = 200
	q.Bedrooms = 10
	q.Bath = 1
	q.Balcony = 0

	if _, err := svc.Predict(q); err != nil {
		t.Errorf("boundary values should pass validation, got %v", err)
	}
}

func TestPredictModelFailure(t *testing.T) {
	svc := NewPredictionService(&stubPredictor{err: errors.New("boom")}, utils.NewLogger())

	_, err := svc.Predict(validQuery())
	if !errors.Is(err, ErrModelInference) {
		t.Errorf("expected ErrModelInference, got %v", err)
	}
}
