package services

import (
	"fmt"
	"sort"
	"strings"

	"house-price-predictor/models"
	"house-price-predictor/utils"
)

type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// Generate computes the market analytics shown on the insights page.
func (s *InsightService) Generate(listings []*models.ListingRecord) *models.MarketReport {
	report := &models.MarketReport{
		BedroomCounts:      make(map[int]int),
		ListingsByLocation: make(map[string]int),
	}

	if len(listings) == 0 {
		return report
	}

	report.TotalListings = len(listings)

	type rateAcc struct {
		sum   float64
		count int
	}
	rates := make(map[string]*rateAcc)

	var priced []*models.ListingRecord
	for _, l := range listings {
		if l.Price > 0 {
			priced = append(priced, l)
		}
		report.BedroomCounts[l.Bedrooms]++
		if l.Location != "" {
			report.ListingsByLocation[l.Location]++
			acc, ok := rates[l.Location]
			if !ok {
				acc = &rateAcc{}
				rates[l.Location] = acc
			}
			acc.sum += l.PricePerSqft
			acc.count++
		}
	}

	// Price stats (only listings with price > 0)
	if len(priced) > 0 {
		report.MinPrice = priced[0].Price
		report.MaxPrice = priced[0].Price
		report.MostExpensive = priced[0]
		var total float64
		for _, l := range priced {
			total += l.Price
			if l.Price < report.MinPrice {
				report.MinPrice = l.Price
			}
			if l.Price > report.MaxPrice {
				report.MaxPrice = l.Price
				report.MostExpensive = l
			}
		}
		report.AveragePrice = round2(total / float64(len(priced)))
		report.MinPrice = round2(report.MinPrice)
		report.MaxPrice = round2(report.MaxPrice)
	}

	// Top 10 locations by average price per sqft
	for loc, acc := range rates {
		report.TopLocationsByRate = append(report.TopLocationsByRate, models.LocationRate{
			Location:    loc,
			AvgSqftRate: round2(acc.sum / float64(acc.count)),
		})
	}
	sort.Slice(report.TopLocationsByRate, func(i, j int) bool {
		a, b := report.TopLocationsByRate[i], report.TopLocationsByRate[j]
		if a.AvgSqftRate != b.AvgSqftRate {
			return a.AvgSqftRate > b.AvgSqftRate
		}
		return a.Location < b.Location
	})
	if len(report.TopLocationsByRate) > 10 {
		report.TopLocationsByRate = report.TopLocationsByRate[:10]
	}

	return report
}

func (s *InsightService) Print(r *models.MarketReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  📊 HOUSING MARKET INSIGHTS\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	// Overview
	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Total listings : \033[1m%d\033[0m\n", r.TotalListings)
	fmt.Println()

	// Price Stats
	fmt.Printf("\033[1;33m  Price Statistics (lakhs)\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if r.AveragePrice > 0 {
		fmt.Printf("  Average price : \033[1;32m₹%.2fL\033[0m\n", r.AveragePrice)
		fmt.Printf("  Minimum price : \033[1;32m₹%.2fL\033[0m\n", r.MinPrice)
		fmt.Printf("  Maximum price : \033[1;32m₹%.2fL\033[0m\n", r.MaxPrice)
	} else {
		fmt.Printf("  No price data available\n")
	}
	fmt.Println()

	// Most Expensive
	if r.MostExpensive != nil {
		fmt.Printf("\033[1;33m  Most Expensive Listing\033[0m\n")
		fmt.Printf("  %s\n", thin)
		fmt.Printf("  %s\n", truncate(r.MostExpensive.Location, 50))
		fmt.Printf("  Area  : %.0f sqft, %d BHK\n", r.MostExpensive.TotalSqft, r.MostExpensive.Bedrooms)
		fmt.Printf("  Price : \033[1;31m₹%.2fL\033[0m\n", r.MostExpensive.Price)
		fmt.Println()
	}

	// Top locations by rate
	fmt.Printf("\033[1;33m  Top Locations by Avg Price/Sqft\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.TopLocationsByRate) == 0 {
		fmt.Printf("  No location data\n")
	} else {
		for i, lr := range r.TopLocationsByRate {
			fmt.Printf("  \033[1m%2d.\033[0m %-30s \033[1;32m₹%.2f\033[0m\n",
				i+1, truncate(lr.Location, 28), lr.AvgSqftRate)
		}
	}
	fmt.Println()

	// Bedroom distribution
	fmt.Printf("\033[1;33m  Bedroom Distribution\033[0m\n")
	fmt.Printf("  %s\n", thin)
	var beds []int
	for b := range r.BedroomCounts {
		beds = append(beds, b)
	}
	sort.Ints(beds)
	for _, b := range beds {
		count := r.BedroomCounts[b]
		bar := strings.Repeat("█", scaleBar(count, r.TotalListings))
		fmt.Printf("  %d BHK %-40s (%d)\n", b, bar, count)
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

// scaleBar fits a histogram bar into 40 columns.
func scaleBar(count, total int) int {
	if total == 0 {
		return 0
	}
	n := count * 40 / total
	if n == 0 && count > 0 {
		n = 1
	}
	return n
}

func round2(f float64) float64 {
	return float64(int64(f*100+0.5)) / 100
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
