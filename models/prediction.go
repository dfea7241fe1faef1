package models

// PredictionQuery carries the user-supplied property features. Bounds match
// the input widgets of the front end; anything outside them is rejected
// before the model is invoked.
type PredictionQuery struct {
	Location  string  `validate:"required"`
	TotalSqft float64 `validate:"gte=200,lte=10000"`
	Bath      int     `validate:"gte=1,lte=10"`
	Balcony   int     `validate:"gte=0,lte=5"`
	Bedrooms  int     `validate:"gte=1,lte=10"`
}

// PredictionResult is the scaled model output with a ±10% band around the
// point estimate. All three values are rounded to 2 decimal places.
type PredictionResult struct {
	PointEstimate float64
	LowerBound    float64
	UpperBound    float64
}

// PropertyRecord is one row of a per-user remote table: a prediction the
// user made (history) or explicitly saved (comparison). The same shape backs
// both tables.
type PropertyRecord struct {
	User           string
	Location       string
	Sqft           float64
	Bedrooms       int
	Bathrooms      int
	Balconies      int
	PredictedPrice float64
}
