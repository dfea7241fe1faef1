package services

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"house-price-predictor/model"
	"house-price-predictor/models"
	"house-price-predictor/utils"
)

// PriceScale converts the model's output (lakhs) into currency units.
const PriceScale = 100000

// PredictionService validates a query, invokes the black-box price model and
// scales its output into a point estimate with a ±10% band.
type PredictionService struct {
	predictor model.Predictor
	validate  *validator.Validate
	logger    *utils.Logger
}

// NewPredictionService creates a PredictionService around the given model.
func NewPredictionService(predictor model.Predictor, logger *utils.Logger) *PredictionService {
	return &PredictionService{
		predictor: predictor,
		validate:  validator.New(),
		logger:    logger,
	}
}

// Predict runs the full prediction flow for one query. Out-of-range input
// returns a *ValidationError; a model failure wraps ErrModelInference.
func (s *PredictionService) Predict(q *models.PredictionQuery) (*models.PredictionResult, error) {
	if err := s.validate.Struct(q); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return nil, &ValidationError{Field: fe.Field(), Message: describe(fe)}
		}
		return nil, &ValidationError{Message: err.Error()}
	}

	raw, err := s.predictor.Predict(q)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelInference, err)
	}

	point := raw * PriceScale
	result := &models.PredictionResult{
		PointEstimate: round2(point),
		LowerBound:    round2(point * 0.9),
		UpperBound:    round2(point * 1.1),
	}

	s.logger.Debug("[predict] %s %.0f sqft → %.2f (%.2f – %.2f)",
		q.Location, q.TotalSqft, result.PointEstimate, result.LowerBound, result.UpperBound)
	return result, nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	}
	return fmt.Sprintf("failed %q validation", fe.Tag())
}
