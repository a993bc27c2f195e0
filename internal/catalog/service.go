// Package catalog is the enrichment orchestrator: it turns raw tabular
// source records into priced, imaged, categorized products and serves the
// read API the presentation layer consumes. Catalog data is load-once-
// then-immutable per snapshot; Reload publishes a whole new snapshot
// atomically, so readers never observe a partial state.
package catalog

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"travel_catalog/internal/adapters/observability"
	"travel_catalog/internal/domain"
	"travel_catalog/internal/ingest"
	"travel_catalog/internal/media"
	"travel_catalog/internal/pricing"
)

type Service struct {
	src          domain.CatalogSource
	cache        domain.Cache
	cacheTTL     time.Duration
	baseCurrency string
	snap         atomic.Pointer[snapshot]
}

type snapshot struct {
	products []domain.Product
	byID     map[string]domain.Product
	reviews  map[string][]domain.Review
}

func New(src domain.CatalogSource, cache domain.Cache, cacheTTL time.Duration, baseCurrency string) *Service {
	s := &Service{src: src, cache: cache, cacheTTL: cacheTTL, baseCurrency: baseCurrency}
	s.snap.Store(&snapshot{byID: map[string]domain.Product{}, reviews: map[string][]domain.Review{}})
	return s
}

// Load builds a fresh snapshot from the source and publishes it. An
// unavailable source degrades to the built-in fallback catalog: browsing
// must never hard-fail, so Load only errors on context cancellation.
func (s *Service) Load(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := s.src.Fetch(ctx)
	if err != nil || strings.TrimSpace(raw) == "" {
		log.Warn().Err(err).Msg("catalog source unavailable, serving fallback catalog")
		raw = fallbackCSV
	}

	var products []domain.Product
	byID := make(map[string]domain.Product)
	for _, row := range ingest.Parse(raw) {
		p, ok := s.enrich(row)
		if !ok {
			observability.ObserveRow("skipped")
			continue
		}
		if _, dup := byID[p.ID]; dup {
			log.Warn().Str("id", p.ID).Msg("duplicate product id, keeping first")
			observability.ObserveRow("skipped")
			continue
		}
		observability.ObserveRow("ok")
		byID[p.ID] = p
		products = append(products, p)
	}

	reviews := s.loadReviews(ctx, byID)

	old := s.snap.Load()
	s.snap.Store(&snapshot{products: products, byID: byID, reviews: reviews})
	observability.SetProducts(len(products))
	log.Info().Int("products", len(products)).Int("reviewed", len(reviews)).Msg("catalog snapshot published")

	// Evict per-product cached views for both the new ids and any ids the
	// reload removed, so readers never see a product from the old snapshot.
	if s.cache != nil {
		evict := func(id string) {
			_ = s.cache.Del(ctx, "product:"+id)
			_ = s.cache.Del(ctx, "reviews:"+id)
		}
		for id := range byID {
			evict(id)
		}
		for id := range old.byID {
			if _, kept := byID[id]; !kept {
				evict(id)
			}
		}
	}
	return nil
}

// Reload replaces the whole snapshot; readers keep the old one until the
// swap.
func (s *Service) Reload(ctx context.Context) error { return s.Load(ctx) }

func (s *Service) loadReviews(ctx context.Context, byID map[string]domain.Product) map[string][]domain.Review {
	out := make(map[string][]domain.Review)
	raw, err := s.src.FetchReviews(ctx)
	if err != nil || strings.TrimSpace(raw) == "" {
		return out
	}
	for _, row := range ingest.Parse(raw) {
		id, pid := row.Str("id"), strings.ToLower(row.Str("product_id"))
		if id == "" || pid == "" {
			continue
		}
		if _, ok := byID[pid]; !ok {
			continue
		}
		out[pid] = append(out[pid], domain.Review{
			ID:        id,
			ProductID: pid,
			Author:    row.Str("author"),
			Rating:    clamp(row.Float("rating"), 0, 5),
			Title:     row.Str("title"),
			Text:      row.Str("text"),
		})
	}
	return out
}

// imageColumns is the fixed explicit-image column order.
var imageColumns = []string{"image_1", "image_2", "image_3", "image_4", "image_5"}

// enrich maps one raw row to a product. Rows without an id are skipped;
// every other defect resolves field-locally through the row accessors and
// the total pricing/media pipelines.
func (s *Service) enrich(r ingest.Row) (domain.Product, bool) {
	id := strings.ToLower(r.Str("id"))
	if id == "" {
		return domain.Product{}, false
	}

	destName := r.Str("destination")
	country, continent := r.Str("country"), r.Str("continent")
	if d, ok := destinationByName(destName); ok {
		if country == "" {
			country = d.Country
		}
		if continent == "" {
			continent = d.Continent
		}
	}

	hours := r.Float("duration_hours")
	if hours < 0 {
		hours = 0
	}
	cats := r.List("categories")
	if len(cats) > 3 {
		cats = cats[:3]
	}
	rating := clamp(r.Float("rating"), 0, 5)
	reviewCount := r.Int("review_count")
	if reviewCount < 0 {
		reviewCount = 0
	}

	explicit := make([]string, 0, len(imageColumns))
	for _, col := range imageColumns {
		explicit = append(explicit, r.Str(col))
	}

	return domain.Product{
		ID:                 id,
		Name:               r.Str("name"),
		DestinationName:    destName,
		DestinationCountry: country,
		Continent:          continent,
		DurationHours:      hours,
		DurationLabel:      durationLabel(hours),
		Private:            r.Bool("private"),
		Overview:           r.Str("overview"),
		Highlights:         r.List("highlights"),
		Inclusions:         r.List("inclusions"),
		Exclusions:         r.List("exclusions"),
		Currency:           s.baseCurrency,
		Pricing: pricing.Quote(pricing.Input{
			Country:       country,
			Continent:     continent,
			Categories:    cats,
			DurationHours: hours,
			Rating:        rating,
			Private:       r.Bool("private"),
		}),
		Categories: cats,
		Images: media.Resolve(media.Input{
			Explicit:    explicit,
			Destination: destName,
			Categories:  cats,
		}),
		Rating:      rating,
		ReviewCount: reviewCount,
		Popular:     rating >= 4.4 && reviewCount >= 30,
	}, true
}

func durationLabel(hours float64) string {
	switch {
	case hours <= 0:
		return "Flexible duration"
	case hours < 1:
		return "Under 1 hour"
	case hours < 1.5:
		return "1 hour"
	case hours < 24:
		return strconv.FormatFloat(hours, 'f', -1, 64) + " hours"
	default:
		days := int(math.Round(hours / 24))
		if days <= 1 {
			return "1 day"
		}
		return fmt.Sprintf("%d days", days)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
