package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	server "travel_catalog/internal/adapters/http_server"
	"travel_catalog/internal/adapters/observability"
	redisad "travel_catalog/internal/adapters/redis"
	"travel_catalog/internal/catalog"
	"travel_catalog/internal/currency"
	"travel_catalog/internal/geoip"
	"travel_catalog/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// deps
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	store := redisad.NewSelection(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.SelectionKey)

	cat := catalog.New(catalog.FileSource{Path: cfg.CatalogPath, ReviewsPath: cfg.ReviewsPath}, cache, cfg.CacheTTL, currency.BaseCode)
	if err := cat.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("catalog load failed")
	}

	resolver := geoip.NewDefaultChain(cfg.GeoPrimaryURL, cfg.GeoSecondaryURL, cfg.GeoCacheTTL)

	cur := currency.New(store, currency.StaticRateSource{})
	cur.Init(ctx, resolver.Resolve)
	go cur.RefreshLoop(ctx, cfg.RateRefresh)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Catalog: cat, Currency: cur, Locator: resolver})

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}
	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}
