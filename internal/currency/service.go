// Package currency holds the base-currency rate table, converts and
// formats prices, and persists the viewer's currency choice. Selection
// changes are user-driven and serialized; the refresh loop is the single
// background writer of the rate table.
package currency

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"travel_catalog/internal/adapters/observability"
	"travel_catalog/internal/domain"
)

// DefaultRefreshInterval paces the background rate refresh.
const DefaultRefreshInterval = 30 * time.Minute

type Service struct {
	store  domain.SelectionStore
	source domain.RateSource

	mu     sync.RWMutex
	active string
	rates  map[string]float64
}

func New(store domain.SelectionStore, source domain.RateSource) *Service {
	if source == nil {
		source = StaticRateSource{}
	}
	rates := make(map[string]float64, len(defaultRates))
	for k, v := range defaultRates {
		rates[k] = v
	}
	return &Service{store: store, source: source, active: BaseCode, rates: rates}
}

// Init picks the starting selection: the persisted choice when present and
// supported, else the resolved viewer currency when supported, else the
// base currency. resolve may be nil (tests, cold paths).
func (s *Service) Init(ctx context.Context, resolve func(context.Context) domain.Location) {
	if s.store != nil {
		if code, err := s.store.Read(ctx); err != nil {
			log.Warn().Err(err).Msg("currency selection read failed, using defaults")
		} else if code != "" {
			if _, ok := s.lookup(code); ok {
				s.setActive(code)
				return
			}
			log.Warn().Str("code", code).Msg("persisted currency no longer supported")
		}
	}
	if resolve != nil {
		loc := resolve(ctx)
		if _, ok := s.lookup(loc.CurrencyCode); ok {
			s.setActive(loc.CurrencyCode)
			return
		}
	}
	s.setActive(BaseCode)
}

// Convert converts price into the active currency. from names the
// currency price is denominated in; empty means the base currency.
func (s *Service) Convert(price float64, from string) float64 {
	return s.ConvertTo(price, from, s.ActiveCode())
}

// ConvertTo is the two-hop conversion: identity when from equals the
// target, otherwise normalize into base units then scale by the target's
// rate. Unknown codes degrade to the identity rather than failing a price
// display.
func (s *Service) ConvertTo(price float64, from, to string) float64 {
	from, to = normalize(from), normalize(to)
	if from == to {
		return price
	}

	s.mu.RLock()
	fromRate, fromOK := s.rates[from]
	toRate, toOK := s.rates[to]
	s.mu.RUnlock()

	if !fromOK || !toOK || fromRate <= 0 || toRate <= 0 {
		log.Warn().Str("from", from).Str("to", to).Msg("missing conversion rate, price unconverted")
		return price
	}
	return price / fromRate * toRate
}

// Format renders price in the given currency: symbol plus locale-aware
// digits, 0 fraction digits for zero-decimal currencies, 2 otherwise.
func (s *Service) Format(price float64, code string) string {
	code = normalize(code)
	digits := 2
	if zeroDecimal[code] {
		digits = 0
	}
	sym := code + " "
	if c, ok := s.lookup(code); ok {
		sym = c.Symbol
	}
	p := message.NewPrinter(language.English)
	return sym + p.Sprintf("%v", number.Decimal(price, number.Scale(digits)))
}

// SetCurrency updates the active selection and persists it. Unsupported
// codes are rejected; a store failure keeps the in-memory selection (the
// viewer keeps what they chose, persistence catches up on the next change).
func (s *Service) SetCurrency(ctx context.Context, code string) error {
	c, ok := s.lookup(code)
	if !ok {
		return fmt.Errorf("currency: unsupported code %q", code)
	}
	s.setActive(c.Code)
	if s.store != nil {
		if err := s.store.Write(ctx, c.Code); err != nil {
			log.Warn().Err(err).Str("code", c.Code).Msg("currency selection persist failed")
		}
	}
	return nil
}

// Active returns the full record of the selected currency.
func (s *Service) Active() domain.Currency {
	c, _ := s.lookup(s.ActiveCode())
	return c
}

func (s *Service) ActiveCode() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// Currencies returns the fixed reference set.
func (s *Service) Currencies() []domain.Currency {
	out := make([]domain.Currency, len(reference))
	copy(out, reference)
	return out
}

// RefreshLoop refreshes the rate table on a fixed interval until ctx is
// cancelled. A failed refresh retains the previous table: stale-but-
// available beats unavailable.
func (s *Service) RefreshLoop(ctx context.Context, every time.Duration) {
	if every <= 0 {
		every = DefaultRefreshInterval
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("rate refresh loop stopped")
			return
		case <-t.C:
			s.Refresh(ctx)
		}
	}
}

// Refresh pulls a fresh table from the rate source. Invalid entries are
// dropped, the base rate is pinned to 1.0, and any failure leaves the
// current table in place.
func (s *Service) Refresh(ctx context.Context) {
	start := time.Now()
	fresh, err := s.source.Rates(ctx)
	if err != nil || len(fresh) == 0 {
		observability.ObserveProvider("rates", "error", time.Since(start))
		log.Warn().Err(err).Msg("rate refresh failed, retaining previous table")
		return
	}
	observability.ObserveProvider("rates", "ok", time.Since(start))

	next := make(map[string]float64, len(fresh))
	for code, rate := range fresh {
		if rate > 0 {
			next[normalize(code)] = rate
		}
	}
	next[BaseCode] = 1.0

	s.mu.Lock()
	s.rates = next
	s.mu.Unlock()
	log.Info().Int("rates", len(next)).Msg("rate table refreshed")
}

func (s *Service) setActive(code string) {
	s.mu.Lock()
	s.active = normalize(code)
	s.mu.Unlock()
}

func (s *Service) lookup(code string) (domain.Currency, bool) {
	code = normalize(code)
	for _, c := range reference {
		if c.Code == code {
			return c, true
		}
	}
	return domain.Currency{}, false
}

func normalize(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return BaseCode
	}
	return code
}
