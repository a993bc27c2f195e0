package currency_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"travel_catalog/internal/currency"
	"travel_catalog/internal/domain"
)

// ---- fakes ----

type fakeStore struct {
	code     string
	writeErr error
	writes   int
}

func (f *fakeStore) Read(ctx context.Context) (string, error) { return f.code, nil }
func (f *fakeStore) Write(ctx context.Context, code string) error {
	f.writes++
	if f.writeErr != nil {
		return f.writeErr
	}
	f.code = code
	return nil
}

type fakeRates struct {
	rates map[string]float64
	err   error
}

func (f *fakeRates) Rates(ctx context.Context) (map[string]float64, error) {
	return f.rates, f.err
}

// ---- tests ----

func TestConvert_IdentityLaw(t *testing.T) {
	s := currency.New(nil, nil)
	if err := s.SetCurrency(context.Background(), "USD"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := s.Convert(123.45, "USD"); got != 123.45 {
		t.Fatalf("identity conversion must return the exact input, got %v", got)
	}
}

func TestConvert_RoundTrips(t *testing.T) {
	s := currency.New(nil, nil)
	codes := []string{"AUD", "USD", "EUR", "JPY", "THB"}
	for _, from := range codes {
		for _, to := range codes {
			there := s.ConvertTo(250, from, to)
			back := s.ConvertTo(there, to, from)
			if math.Abs(back-250) > 1e-9 {
				t.Errorf("%s->%s->%s: 250 round-tripped to %v", from, to, from, back)
			}
		}
	}
}

func TestConvert_TwoHopThroughBase(t *testing.T) {
	s := currency.New(nil, nil)
	// 65 USD -> base (65/0.65 = 100 AUD) -> JPY (100*97 = 9700).
	got := s.ConvertTo(65, "USD", "JPY")
	if math.Abs(got-9700) > 1e-9 {
		t.Fatalf("got %v, want 9700", got)
	}
}

func TestConvert_UnknownRateDegradesToIdentity(t *testing.T) {
	s := currency.New(nil, nil)
	if got := s.ConvertTo(100, "XXX", "USD"); got != 100 {
		t.Fatalf("unknown rate should leave the price unchanged, got %v", got)
	}
}

func TestFormat_FractionDigits(t *testing.T) {
	s := currency.New(nil, nil)
	if got := s.Format(1234.5, "USD"); got != "$1,234.50" {
		t.Fatalf("USD format = %q", got)
	}
	if got := s.Format(9700, "JPY"); got != "¥9,700" {
		t.Fatalf("zero-decimal JPY format = %q", got)
	}
}

func TestSetCurrency_PersistsSelection(t *testing.T) {
	store := &fakeStore{}
	s := currency.New(store, nil)

	if err := s.SetCurrency(context.Background(), "eur"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if s.ActiveCode() != "EUR" || store.code != "EUR" {
		t.Fatalf("active=%s persisted=%s", s.ActiveCode(), store.code)
	}
	if err := s.SetCurrency(context.Background(), "DOGE"); err == nil {
		t.Fatalf("unsupported code must be rejected")
	}
}

func TestSetCurrency_StoreFailureKeepsSelection(t *testing.T) {
	store := &fakeStore{writeErr: errors.New("redis down")}
	s := currency.New(store, nil)
	if err := s.SetCurrency(context.Background(), "GBP"); err != nil {
		t.Fatalf("persist failure must not fail the user action: %v", err)
	}
	if s.ActiveCode() != "GBP" {
		t.Fatalf("selection should stick in memory, got %s", s.ActiveCode())
	}
}

func TestInit_Order(t *testing.T) {
	resolveJPY := func(ctx context.Context) domain.Location {
		return domain.Location{Country: "Japan", CountryCode: "JP", CurrencyCode: "JPY"}
	}

	// persisted selection wins over the resolver
	s := currency.New(&fakeStore{code: "EUR"}, nil)
	s.Init(context.Background(), resolveJPY)
	if s.ActiveCode() != "EUR" {
		t.Fatalf("persisted choice should win, got %s", s.ActiveCode())
	}

	// no persisted selection: resolver's currency when supported
	s = currency.New(&fakeStore{}, nil)
	s.Init(context.Background(), resolveJPY)
	if s.ActiveCode() != "JPY" {
		t.Fatalf("resolver currency should win, got %s", s.ActiveCode())
	}

	// unsupported resolver currency: base
	s = currency.New(&fakeStore{}, nil)
	s.Init(context.Background(), func(ctx context.Context) domain.Location {
		return domain.Location{CountryCode: "XX", CurrencyCode: "XXX"}
	})
	if s.ActiveCode() != currency.BaseCode {
		t.Fatalf("unsupported resolver currency should fall back to base, got %s", s.ActiveCode())
	}
}

func TestRefresh_FailureRetainsPreviousTable(t *testing.T) {
	src := &fakeRates{rates: map[string]float64{"AUD": 1, "USD": 0.5}}
	s := currency.New(nil, src)

	s.Refresh(context.Background())
	if got := s.ConvertTo(100, "AUD", "USD"); math.Abs(got-50) > 1e-9 {
		t.Fatalf("fresh table not applied: %v", got)
	}

	src.err = errors.New("feed down")
	src.rates = nil
	s.Refresh(context.Background())
	if got := s.ConvertTo(100, "AUD", "USD"); math.Abs(got-50) > 1e-9 {
		t.Fatalf("failed refresh must retain the previous table, got %v", got)
	}
}

func TestRefresh_PinsBaseRate(t *testing.T) {
	src := &fakeRates{rates: map[string]float64{"AUD": 3.0, "USD": 0.65, "BAD": -2}}
	s := currency.New(nil, src)
	s.Refresh(context.Background())

	if got := s.ConvertTo(100, "AUD", "AUD"); got != 100 {
		t.Fatalf("base identity broken: %v", got)
	}
	// base pinned to 1.0 regardless of the payload
	if got := s.ConvertTo(1, "AUD", "USD"); math.Abs(got-0.65) > 1e-9 {
		t.Fatalf("base rate not pinned: %v", got)
	}
	if got := s.ConvertTo(100, "BAD", "USD"); got != 100 {
		t.Fatalf("non-positive rate should be dropped, got %v", got)
	}
}
