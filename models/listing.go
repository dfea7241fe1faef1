package models

// ListingRecord is one row of the reference dataset, loaded once at startup
// and treated as immutable afterwards. PricePerSqft is derived from price and
// area on every load, never read from the source.
type ListingRecord struct {
	ID           int64
	Location     string
	TotalSqft    float64
	Bath         int
	Balcony      int
	Bedrooms     int
	Price        float64
	PricePerSqft float64
}

// Recommendation is a comparable listing surfaced next to a prediction.
// Only the user-facing columns are exposed; the ranking metric stays internal.
type Recommendation struct {
	Location  string
	TotalSqft float64
	Bedrooms  int
	Price     float64
}

// MarketReport holds the computed analytics over the reference dataset.
type MarketReport struct {
	TotalListings      int
	AveragePrice       float64
	MinPrice           float64
	MaxPrice           float64
	MostExpensive      *ListingRecord
	TopLocationsByRate []LocationRate
	BedroomCounts      map[int]int
	ListingsByLocation map[string]int
}

// LocationRate pairs a location with its average price per sqft.
type LocationRate struct {
	Location    string
	AvgSqftRate float64
}
