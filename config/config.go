package config

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port string
	Env  string

	MongoURI     string
	DatabaseName string

	JWTSecret     string
	JWTExpiration time.Duration

	// StorageDir is the root under which uploaded bytes are written,
	// laid out as <StorageDir>/<user_id>/<folder_id>/<file_id>.<ext>.
	StorageDir string

	// ExtractorURL receives the new-file hook; ClassifierURL receives
	// classification submissions.
	ExtractorURL  string
	ClassifierURL string
	NotifyTimeout time.Duration
	NotifyWorkers int

	MaxFileSize int64

	AllowedOrigins []string
}

func LoadConfig() *Config {
	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DatabaseName: getEnv("DATABASE_NAME", "docuvault"),

		JWTSecret:     getEnv("JWT_SECRET", ""),
		JWTExpiration: parseDuration(getEnv("JWT_EXPIRATION", "1h")),

		StorageDir: getEnv("STORAGE_DIR", "./uploaded_files"),

		ExtractorURL:  getEnv("EXTRACTOR_URL", "http://localhost:8001/new_file/"),
		ClassifierURL: getEnv("CLASSIFIER_URL", "http://localhost:8002/classify/"),
		NotifyTimeout: parseDuration(getEnv("NOTIFY_TIMEOUT", "5s")),
		NotifyWorkers: parseInt(getEnv("NOTIFY_WORKERS", "4")),

		MaxFileSize: parseInt64(getEnv("MAX_FILE_SIZE", "104857600")),

		AllowedOrigins: parseStringSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
	}

	logConfig(cfg)
	validateConfig(cfg)
	return cfg
}

func logConfig(cfg *Config) {
	log.Println("Configuration loaded:")
	log.Printf("  Port: %s", cfg.Port)
	log.Printf("  Environment: %s", cfg.Env)
	log.Printf("  Database: %s", cfg.DatabaseName)
	log.Printf("  MongoDB URI: %s", maskConnectionString(cfg.MongoURI))
	log.Printf("  JWT Secret: %s", maskSecret(cfg.JWTSecret))
	log.Printf("  JWT Expiration: %v", cfg.JWTExpiration)
	log.Printf("  Storage Dir: %s", cfg.StorageDir)
	log.Printf("  Extractor URL: %s", cfg.ExtractorURL)
	log.Printf("  Classifier URL: %s", cfg.ClassifierURL)
	log.Printf("  Notify Timeout: %v", cfg.NotifyTimeout)
	log.Printf("  Notify Workers: %d", cfg.NotifyWorkers)
	log.Printf("  Max File Size: %d bytes", cfg.MaxFileSize)
	log.Printf("  Allowed Origins: %v", cfg.AllowedOrigins)
}

func validateConfig(cfg *Config) {
	var missingVars []string

	required := map[string]string{
		"MONGO_URI":  cfg.MongoURI,
		"JWT_SECRET": cfg.JWTSecret,
	}

	for key, value := range required {
		if value == "" {
			missingVars = append(missingVars, key)
		}
	}

	if len(missingVars) > 0 {
		log.Printf("Missing required environment variables: %v", missingVars)
		log.Fatal("Please set all required environment variables")
	}
}

func maskSecret(secret string) string {
	if secret == "" {
		return "[NOT SET]"
	}
	if len(secret) <= 8 {
		return "[HIDDEN]"
	}
	return secret[:4] + "***" + secret[len(secret)-4:]
}

func maskConnectionString(uri string) string {
	if uri == "" {
		return "[NOT SET]"
	}
	if strings.Contains(uri, "@") {
		parts := strings.Split(uri, "@")
		if len(parts) >= 2 {
			return "[CREDENTIALS_HIDDEN]@" + parts[len(parts)-1]
		}
	}
	return uri
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseInt(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("Failed to parse int: %s", s)
	}
	return i
}

func parseInt64(s string) int64 {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		log.Fatalf("Failed to parse int64: %s", s)
	}
	return i
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Fatalf("Failed to parse duration: %s", s)
	}
	return d
}

func parseStringSlice(s string) []string {
	if s == "" {
		return []string{}
	}

	parts := strings.Split(s, ",")
	var result []string
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func CreateContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
