package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv          string
	HTTPAddr        string
	MetricsAddr     string
	RedisAddr       string
	RedisDB         int
	RedisPass       string
	CatalogPath     string
	ReviewsPath     string
	GeoPrimaryURL   string
	GeoSecondaryURL string
	GeoCacheTTL     time.Duration
	RateRefresh     time.Duration
	Workers         int
	CacheTTL        time.Duration
	SelectionKey    string
}

func Load() Config {
	// best-effort .env for local dev; real deployments set the environment
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:          env("APP_ENV", "prod"),
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		MetricsAddr:     env("METRICS_ADDR", ":9100"),
		RedisAddr:       env("REDIS_ADDR", "localhost:6379"),
		RedisPass:       env("REDIS_PASSWORD", ""),
		RedisDB:         atoi("REDIS_DB", 0),
		CatalogPath:     env("CATALOG_PATH", "data/catalog.csv"),
		ReviewsPath:     env("REVIEWS_PATH", ""),
		GeoPrimaryURL:   env("GEO_PRIMARY_URL", "https://ipapi.co/json/"),
		GeoSecondaryURL: env("GEO_SECONDARY_URL", "https://ipwho.is/"),
		GeoCacheTTL:     time.Duration(atoi("GEO_CACHE_TTL_SECONDS", 3600)) * time.Second,
		RateRefresh:     time.Duration(atoi("RATE_REFRESH_SECONDS", 1800)) * time.Second,
		Workers:         atoi("WARM_WORKERS", 8),
		CacheTTL:        time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		SelectionKey:    env("SELECTION_KEY", "viewer:currency"),
	}
	if _, err := os.Stat(c.CatalogPath); err != nil {
		log.Warn().Str("path", c.CatalogPath).Msg("catalog source missing, fallback catalog will serve")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
