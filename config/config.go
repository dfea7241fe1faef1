package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	DatasetPath string
	ModelPath   string
	UsersFile   string

	SheetAPIURL    string
	SheetAPIToken  string
	HistoryTableID string
	SavedTableID   string

	MaxRetries int
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "predictor"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "predictor123"),
		PostgresDB:       getEnv("POSTGRES_DB", "housing_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		DatasetPath: getEnv("DATASET_PATH", "./data/Cleaned_data.csv"),
		ModelPath:   getEnv("MODEL_PATH", "./data/house_prediction_model.json"),
		UsersFile:   getEnv("USERS_FILE", "./users.json"),

		SheetAPIURL:    getEnv("SHEET_API_URL", "http://localhost:8090"),
		SheetAPIToken:  getEnv("SHEET_API_TOKEN", ""),
		HistoryTableID: getEnv("HISTORY_TABLE_ID", "prediction_history"),
		SavedTableID:   getEnv("SAVED_TABLE_ID", "saved_properties"),

		MaxRetries: getEnvInt("MAX_RETRIES", 3),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
