package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Firebase  FirebaseConfig
	Storage   StorageConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Dashboard DashboardConfig
	Events    EventsConfig
	Tracing   TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	StoreDriver        string // "firebase" or "memory"
}

type FirebaseConfig struct {
	CredentialsPath string
	DatabaseURL     string
	StorageBucket   string
}

type StorageConfig struct {
	Provider   string // "firebase" or "s3"
	S3Bucket   string
	AWSRegion  string
	FileURLTTL time.Duration
}

type DatabaseConfig struct {
	Connection string // empty keeps the audit log in memory
}

type AuthConfig struct {
	JWTSecret string
}

type DashboardConfig struct {
	Timezone          string
	RequirementPolicy string
}

type EventsConfig struct {
	NatsURL string // empty disables event publishing
}

type TracingConfig struct {
	Enabled  bool
	Endpoint string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.json"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			StoreDriver:        strings.ToLower(getEnv("STORE_DRIVER", "firebase")),
		},
		Firebase: FirebaseConfig{
			CredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", "serviceAccountKey.json"),
			DatabaseURL:     getEnv("FIREBASE_DATABASE_URL", ""),
			StorageBucket:   getEnv("FIREBASE_STORAGE_BUCKET", ""),
		},
		Storage: StorageConfig{
			Provider:   strings.ToLower(getEnv("BLOB_PROVIDER", "firebase")),
			S3Bucket:   getEnv("S3_BUCKET", ""),
			AWSRegion:  getEnv("AWS_REGION", ""),
			FileURLTTL: time.Duration(getEnvAsInt("FILE_URL_TTL_SECONDS", 3600)) * time.Second,
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", "default_secret"),
		},
		Dashboard: DashboardConfig{
			Timezone:          getEnv("DASHBOARD_TIMEZONE", "Local"),
			RequirementPolicy: getEnv("REQUIREMENT_POLICY", "strict"),
		},
		Events: EventsConfig{
			NatsURL: getEnv("NATS_URL", ""),
		},
		Tracing: TracingConfig{
			Enabled:  getEnvAsBool("OTEL_ENABLED", false),
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
	}
}

// Location resolves DASHBOARD_TIMEZONE, falling back to time.Local.
func (c DashboardConfig) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("[WARN] Unknown DASHBOARD_TIMEZONE %q, using local time: %v", c.Timezone, err)
		return time.Local
	}
	return loc
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
