// Package geoip resolves a viewer's country and currency through an
// ordered provider fallback chain with a TTL'd cache. Resolve always
// succeeds: any provider failure falls through to the next strategy and
// the chain bottoms out on a hard-coded default.
package geoip

import (
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"travel_catalog/internal/adapters/observability"
	"travel_catalog/internal/domain"
)

var errUnusable = errors.New("geoip: unusable payload")

// HTTPProvider probes one JSON IP-geolocation endpoint. Different vendors
// shape their payloads differently, so decoding is alias-tolerant.
type HTTPProvider struct {
	name string
	url  string
	hc   *http.Client
	rl   *rate.Limiter
}

func NewHTTPProvider(name, url string, rps int) *HTTPProvider {
	if rps <= 0 {
		rps = 2
	}
	return &HTTPProvider{
		name: name,
		url:  url,
		hc:   &http.Client{Timeout: 10 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

func (p *HTTPProvider) Name() string { return p.name }

// Probe fetches and maps the endpoint's payload. A transport failure, a
// non-2xx status or a payload without country/currency data comes back as
// an error; the resolver treats all of them as a miss.
func (p *HTTPProvider) Probe(ctx context.Context) (domain.Location, error) {
	var raw map[string]any
	if err := p.get(ctx, p.url, &raw); err != nil {
		return domain.Location{}, err
	}
	loc, ok := mapPayload(raw)
	if !ok {
		return domain.Location{}, errUnusable
	}
	return loc, nil
}

// get performs a GET with client-side rate limiting, retries on transient
// failures, honors Retry-After, and decodes JSON into out.
func (p *HTTPProvider) get(ctx context.Context, url string, out any) error {
	if err := p.rl.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for i := 0; i < 3; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "travel-catalog/1.0")

		resp, err := p.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if i < 2 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			return lastErr
		}

		switch resp.StatusCode {
		case http.StatusOK:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			return err

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("geoip: remote %d", resp.StatusCode)
			if i < 2 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			resp.Body.Close()
			return fmt.Errorf("geoip: bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}

	return lastErr
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After (seconds or HTTP-date). 0 if absent/invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff doubles per attempt (150ms, 300ms, ...) with up to +50% jitter.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 150 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	return base + time.Duration(0.5*f*float64(base))
}

var _ domain.LocationProvider = (*HTTPProvider)(nil)

// observeProbe is shared by every provider in the chain.
func observeProbe(name string, err error, start time.Time) {
	outcome := "ok"
	if err != nil {
		outcome = "miss"
	}
	observability.ObserveProvider(name, outcome, time.Since(start))
}
