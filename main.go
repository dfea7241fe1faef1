package main

import (
	"os"

	"house-price-predictor/config"
	"house-price-predictor/model"
	"house-price-predictor/models"
	"house-price-predictor/services"
	"house-price-predictor/storage"
	"house-price-predictor/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== House Price Prediction System starting ===")
	logger.Info("Config — dataset: %s | model: %s | sheet API: %s",
		cfg.DatasetPath, cfg.ModelPath, cfg.SheetAPIURL)

	listings, err := storage.LoadListings(cfg.DatasetPath, logger)
	if err != nil {
		logger.Error("Failed to load dataset: %v", err)
		os.Exit(1)
	}

	predictor, err := model.Load(cfg.ModelPath)
	if err != nil {
		logger.Error("Failed to load model artifact: %v", err)
		os.Exit(1)
	}

	// Seed PostgreSQL and serve the dataset from there; fall back to the
	// CSV copy if the database is unreachable.
	store, err := storage.NewListingStore(cfg.DSN(), cfg.MaxRetries, logger)
	if err != nil {
		logger.Warn("PostgreSQL unavailable, serving dataset from CSV: %v", err)
	} else {
		defer store.Close()
		if err := store.Seed(listings); err != nil {
			logger.Error("Failed to seed listings: %v", err)
		} else if fetched, err := store.FetchAll(); err == nil {
			listings = fetched
			logger.Info("Dataset served from PostgreSQL: %d listings", len(listings))
		}
	}

	locations := services.Locations(listings)
	logger.Info("Dataset ready: %d listings across %d locations", len(listings), len(locations))

	// Make sure both per-user tables carry their header row before the
	// front end starts appending.
	sheets := storage.NewSheetClient(cfg.SheetAPIURL, cfg.SheetAPIToken)
	if err := storage.NewHistoryStore(sheets, cfg.HistoryTableID, logger).Init(); err != nil {
		logger.Warn("History table unreachable: %v", err)
	}
	if err := storage.NewSavedPropertyStore(sheets, cfg.SavedTableID, logger).Init(); err != nil {
		logger.Warn("Saved-properties table unreachable: %v", err)
	}

	// Smoke-check the prediction path against the first dataset row so a
	// broken model artifact fails loudly at startup, not on the first
	// user request.
	predictionSvc := services.NewPredictionService(predictor, logger)
	recommender := services.NewRecommendationEngine(listings, logger)
	if len(listings) > 0 {
		sample := listings[0]
		query := &models.PredictionQuery{
			Location:  sample.Location,
			TotalSqft: sample.TotalSqft,
			Bath:      sample.Bath,
			Balcony:   sample.Balcony,
			Bedrooms:  sample.Bedrooms,
		}
		result, err := predictionSvc.Predict(query)
		if err != nil {
			logger.Warn("Smoke prediction failed: %v", err)
		} else {
			recs := recommender.Recommend(query.Location, query.TotalSqft,
				query.Bedrooms, result.PointEstimate, services.DefaultTopN)
			logger.Info("Smoke prediction: %s %.0f sqft → ₹%.2f (%.2f – %.2f), %d comparables",
				query.Location, query.TotalSqft, result.PointEstimate,
				result.LowerBound, result.UpperBound, len(recs))
		}
	}

	insightSvc := services.NewInsightService(logger)
	report := insightSvc.Generate(listings)
	insightSvc.Print(report)

	logger.Info("Core ready — prediction, recommendation and persistence services initialised")
}
