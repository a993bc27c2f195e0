package geoip

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"travel_catalog/internal/domain"
)

// DefaultTTL is how long a resolved location stays cached before the next
// call re-probes the chain.
const DefaultTTL = time.Hour

// cached pairs a value with its expiry; validity is a pure predicate so it
// stays decoupled from the fetch logic.
type cached struct {
	value     domain.Location
	expiresAt time.Time
}

func (c *cached) isValid(now time.Time) bool {
	return c != nil && now.Before(c.expiresAt)
}

// Resolver walks an ordered provider chain and caches the winning result.
// It is the cache's single writer; concurrent readers share the cached
// value for its TTL window.
type Resolver struct {
	providers []domain.LocationProvider
	ttl       time.Duration
	now       func() time.Time

	mu   sync.Mutex
	last *cached
}

// NewResolver builds a resolver over the given chain. Order is priority
// order; the first provider returning a usable result wins.
func NewResolver(ttl time.Duration, providers ...domain.LocationProvider) *Resolver {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Resolver{providers: providers, ttl: ttl, now: time.Now}
}

// NewDefaultChain wires the production chain: primary and secondary HTTP
// geolocation providers, the timezone heuristic, then the hard default.
func NewDefaultChain(primaryURL, secondaryURL string, ttl time.Duration) *Resolver {
	return NewResolver(ttl,
		NewHTTPProvider("geo_primary", primaryURL, 2),
		NewHTTPProvider("geo_secondary", secondaryURL, 2),
		TimezoneHeuristic{},
	)
}

// Resolve returns the viewer's location. It always succeeds: a valid
// cached value is returned without re-probing; otherwise providers are
// tried in order and any that errors or returns an unusable payload simply
// falls through. When the whole chain misses, the hard-coded default wins.
func (r *Resolver) Resolve(ctx context.Context) domain.Location {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if r.last.isValid(now) {
		return r.last.value
	}

	loc := DefaultLocation
	for _, p := range r.providers {
		start := time.Now()
		got, err := p.Probe(ctx)
		observeProbe(p.Name(), err, start)
		if err != nil {
			log.Debug().Err(err).Str("provider", p.Name()).Msg("location probe missed")
			continue
		}
		if !got.Usable() {
			continue
		}
		log.Info().Str("provider", p.Name()).Str("country", got.CountryCode).
			Str("currency", got.CurrencyCode).Msg("location resolved")
		loc = got
		break
	}

	r.last = &cached{value: loc, expiresAt: now.Add(r.ttl)}
	return loc
}

// Invalidate drops the cached value so the next Resolve re-probes.
func (r *Resolver) Invalidate() {
	r.mu.Lock()
	r.last = nil
	r.mu.Unlock()
}
