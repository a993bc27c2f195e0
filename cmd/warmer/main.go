// warmer enriches every source row through the full pipeline and primes
// the redis cache with the resulting product views, so a cold API start
// serves hot reads immediately.
package main

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"travel_catalog/internal/adapters/observability"
	redisad "travel_catalog/internal/adapters/redis"
	"travel_catalog/internal/catalog"
	"travel_catalog/internal/currency"
	"travel_catalog/internal/shared"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("catalog", cfg.CatalogPath).
		Int("workers", cfg.Workers).
		Msg("warmer starting")

	// enrich against a nil cache so the load itself doesn't churn redis
	cat := catalog.New(catalog.FileSource{Path: cfg.CatalogPath, ReviewsPath: cfg.ReviewsPath}, nil, cfg.CacheTTL, currency.BaseCode)
	if err := cat.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("catalog load failed")
	}

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for _, p := range cat.All() {
		p := p

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			if err := cache.Set(ctx, "product:"+p.ID, p, int(cfg.CacheTTL.Seconds())); err != nil {
				log.Warn().Str("id", p.ID).Err(err).Msg("warm failed")
				return
			}
			rs := cat.Reviews(ctx, p.ID)
			if len(rs) > 0 {
				if err := cache.Set(ctx, "reviews:"+p.ID, rs, int(cfg.CacheTTL.Seconds())); err != nil {
					log.Warn().Str("id", p.ID).Err(err).Msg("reviews warm failed")
				}
			}
			log.Info().Str("id", p.ID).Int("adult", p.Pricing.Adult).Msg("warm ok")
		}()
	}

	wg.Wait()
	log.Info().Int("products", len(cat.All())).Msg("warm-up completed")
}
