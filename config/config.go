package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	MongoURI       string
	DatabaseName   string
	TokenSecret    string
	TokenTTL       time.Duration
	StripeKey      string
	Currency       string
	AllowedOrigins []string
	AdminEmail     string
	SeedBrands     []string
	Storage        StorageConfig
}

// StorageConfig selects the bucket phone photos are written to. An empty
// Driver disables uploads.
type StorageConfig struct {
	Driver          string
	R2Bucket        string
	R2AccessKey     string
	R2SecretKey     string
	R2Endpoint      string
	R2PublicDomain  string
	GCSBucket       string
	GCSCredentials  string
	MaxImages       int
	MaxUploadSizeMB int
	AllowedExt      []string
	AllowedMime     []string
}

func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := Config{
		Port:           getenv("PORT", "5000"),
		MongoURI:       getenv("MONGODB_URI", "mongodb://localhost:27017"),
		DatabaseName:   getenv("DATABASE_NAME", "resaleMarket"),
		TokenSecret:    os.Getenv("ACCESS_TOKEN_SECRET"),
		TokenTTL:       time.Duration(getint("TOKEN_TTL_DAYS", 365)) * 24 * time.Hour,
		StripeKey:      os.Getenv("STRIPE_SECRET_KEY"),
		Currency:       strings.ToLower(getenv("PAYMENT_CURRENCY", "usd")),
		AllowedOrigins: splitList(os.Getenv("ALLOWED_ORIGINS")),
		AdminEmail:     strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))),
		SeedBrands:     splitList(os.Getenv("SEED_BRANDS")),
		Storage: StorageConfig{
			Driver:          strings.ToLower(os.Getenv("STORAGE_DRIVER")),
			R2Bucket:        os.Getenv("R2_BUCKET"),
			R2AccessKey:     os.Getenv("R2_ACCESS_KEY_ID"),
			R2SecretKey:     os.Getenv("R2_SECRET_ACCESS_KEY"),
			R2Endpoint:      os.Getenv("R2_ENDPOINT"),
			R2PublicDomain:  strings.TrimRight(os.Getenv("R2_PUBLIC_DOMAIN"), "/"),
			GCSBucket:       os.Getenv("GCS_BUCKET"),
			GCSCredentials:  os.Getenv("CREDENTIALS_FILE_LOCATION"),
			MaxImages:       getint("MAX_PHONE_IMAGES", 4),
			MaxUploadSizeMB: getint("MAX_UPLOAD_SIZE_MB", 5),
			AllowedExt:      splitList(getenv("ALLOWED_FILE_EXTENSIONS", ".jpg,.jpeg,.png,.webp")),
			AllowedMime:     splitList(getenv("ALLOWED_FILE_MIME_TYPES", "image/jpeg,image/png,image/webp")),
		},
	}

	if cfg.TokenSecret == "" {
		return cfg, errors.New("missing ACCESS_TOKEN_SECRET env var")
	}
	if cfg.StripeKey == "" {
		log.Println("STRIPE_SECRET_KEY not set, payment intents will fail")
	}
	log.Printf("[config] PORT=%s DATABASE_NAME=%s STORAGE_DRIVER=%q origins=%v",
		cfg.Port, cfg.DatabaseName, cfg.Storage.Driver, cfg.AllowedOrigins)
	return cfg, nil
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func splitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
