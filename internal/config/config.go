package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	MongoURI       string
	MongoDatabase  string
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
	JWTSecret      string
	TokenTTL       time.Duration
	URLExpiry      time.Duration
	AdminEmail     string
}

// Load reads configuration from the environment, falling back to a .env
// file when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017/appdrop"),
		MongoDatabase:  getEnv("MONGO_DB", "appdrop"),
		MinioEndpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinioAccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinioSecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinioBucket:    getEnv("MINIO_BUCKET", "user-files"),
		MinioUseSSL:    getEnv("MINIO_USE_SSL", "false") == "true",
		JWTSecret:      jwtSecret,
		TokenTTL:       getDuration("TOKEN_TTL", 4*time.Hour),
		URLExpiry:      getDuration("DOWNLOAD_URL_EXPIRY", 1*time.Hour),
		AdminEmail:     getEnv("ADMIN_EMAIL", ""),
	}
}

func getEnv(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid duration for %s: %v, using default", key, err)
		return defaultValue
	}
	return d
}
