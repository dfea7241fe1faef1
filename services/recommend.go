package services

import (
	"math"
	"sort"

	"house-price-predictor/models"
	"house-price-predictor/utils"
)

// DefaultTopN is the number of recommendations shown next to a prediction.
const DefaultTopN = 5

// RecommendationEngine finds listings comparable to a predicted property.
// It holds the immutable reference dataset and is safe for concurrent use.
type RecommendationEngine struct {
	dataset []*models.ListingRecord
	logger  *utils.Logger
}

// NewRecommendationEngine creates an engine over the loaded dataset.
func NewRecommendationEngine(dataset []*models.ListingRecord, logger *utils.Logger) *RecommendationEngine {
	return &RecommendationEngine{dataset: dataset, logger: logger}
}

// Recommend returns up to topN listings similar to the query, ranked by how
// close each candidate's price per sqft is to the query's implied rate
// (price / sqft). Candidates from the query's own location are excluded;
// bedrooms must be within ±1 and sqft within ±200 of the query, inclusive.
// Ties keep dataset order. The caller guarantees sqft > 0.
func (e *RecommendationEngine) Recommend(location string, sqft float64, bedrooms int, price float64, topN int) []models.Recommendation {
	impliedRate := price / sqft

	type candidate struct {
		rec  *models.ListingRecord
		diff float64
	}

	var candidates []candidate
	for _, l := range e.dataset {
		if l.Location == location {
			continue
		}
		if l.Bedrooms < bedrooms-1 || l.Bedrooms > bedrooms+1 {
			continue
		}
		if l.TotalSqft < sqft-200 || l.TotalSqft > sqft+200 {
			continue
		}
		candidates = append(candidates, candidate{l, math.Abs(l.PricePerSqft - impliedRate)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].diff < candidates[j].diff
	})

	if topN > 0 && len(candidates) > topN {
		candidates = candidates[:topN]
	}

	out := make([]models.Recommendation, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, models.Recommendation{
			Location:  c.rec.Location,
			TotalSqft: c.rec.TotalSqft,
			Bedrooms:  c.rec.Bedrooms,
			Price:     c.rec.Price,
		})
	}

	e.logger.Debug("[recommend] %s %.0f sqft: %d candidates", location, sqft, len(out))
	return out
}

// Locations returns the sorted unique locations in the dataset, the source
// for the location picker.
func Locations(dataset []*models.ListingRecord) []string {
	set := utils.NewStringSet()
	for _, l := range dataset {
		if l.Location != "" {
			set.Add(l.Location)
		}
	}
	return set.Sorted()
}
