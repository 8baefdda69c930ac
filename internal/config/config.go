package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI    string
	MongoDB     string
	JWTSecret   []byte
	TokenTTL    time.Duration
	Port        string
	CORSOrigins []string
}

// Load reads the process configuration. A .env file in the working directory
// is applied first when present; real environment variables win.
func Load() (*Config, error) {
	loadDotEnv()
	return FromEnv(os.LookupEnv)
}

// LoadDatabase reads only the MongoDB settings, for tools that never serve
// HTTP or issue tokens.
func LoadDatabase() (*Config, error) {
	loadDotEnv()
	cfg, missing := databaseFromEnv(envGetter(os.LookupEnv))
	if len(missing) > 0 {
		return nil, missingError(missing)
	}
	return cfg, nil
}

func loadDotEnv() {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("error loading .env file:", err)
		}
	}
}

func envGetter(lookup func(string) (string, bool)) func(key, fallback string) string {
	return func(key, fallback string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return fallback
	}
}

func databaseFromEnv(get func(key, fallback string) string) (*Config, []string) {
	cfg := &Config{
		MongoURI: get("MONGO_URL", ""),
		MongoDB:  get("DB_NAME", ""),
	}
	var missing []string
	if cfg.MongoURI == "" {
		missing = append(missing, "MONGO_URL")
	}
	if cfg.MongoDB == "" {
		missing = append(missing, "DB_NAME")
	}
	return cfg, missing
}

func missingError(keys []string) error {
	return fmt.Errorf("missing required environment variables: %s", strings.Join(keys, ", "))
}

// FromEnv builds a Config from an environment lookup function.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	get := envGetter(lookup)

	cfg, missing := databaseFromEnv(get)
	cfg.Port = get("PORT", "8080")

	secret := get("JWT_SECRET", "")
	if secret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return nil, missingError(missing)
	}
	cfg.JWTSecret = []byte(secret)

	ttl, err := time.ParseDuration(get("TOKEN_TTL", "24h"))
	if err != nil || ttl <= 0 {
		return nil, fmt.Errorf("invalid TOKEN_TTL %q", get("TOKEN_TTL", ""))
	}
	cfg.TokenTTL = ttl

	for _, origin := range strings.Split(get("CORS_ORIGINS", "*"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	return cfg, nil
}
