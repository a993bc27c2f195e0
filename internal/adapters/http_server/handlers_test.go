package httpserver_test

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpserver "travel_catalog/internal/adapters/http_server"
	"travel_catalog/internal/catalog"
	"travel_catalog/internal/currency"
	"travel_catalog/internal/domain"
)

type fakeSource struct{ data string }

func (f fakeSource) Fetch(ctx context.Context) (string, error)        { return f.data, nil }
func (f fakeSource) FetchReviews(ctx context.Context) (string, error) { return "", nil }

type fakeLocator struct{ loc domain.Location }

func (f fakeLocator) Resolve(ctx context.Context) domain.Location { return f.loc }

const csvData = `id,name,destination,country,continent,duration_hours,private,overview,highlights,inclusions,exclusions,categories,rating,review_count,image_1,image_2,image_3,image_4,image_5
jp-1,Tokyo Street Food Discovery,Tokyo,Japan,Asia,3,false,Eat your way through Shibuya.,,,,Food & Drink,4.6,182,,,,,
fr-1,Paris Food Walk,Paris,France,Europe,3,true,Cheese and wine.,,,,Food & Drink,4.2,25,,,,,
`

func newServer(t *testing.T) (*httpserver.Server, *currency.Service) {
	t.Helper()
	cat := catalog.New(fakeSource{data: csvData}, nil, time.Minute, "AUD")
	if err := cat.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	cur := currency.New(nil, nil)
	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{
		Catalog:  cat,
		Currency: cur,
		Locator: fakeLocator{loc: domain.Location{
			Country: "Japan", CountryCode: "JP", CurrencyCode: "JPY",
		}},
	})
	return srv, cur
}

func get(t *testing.T, srv *httpserver.Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rr, httptest.NewRequest("GET", path, nil))
	return rr
}

func TestListProducts(t *testing.T) {
	srv, _ := newServer(t)
	rr := get(t, srv, "/v1/products")
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	var out []map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("want 2 products, got %d", len(out))
	}
}

func TestListProducts_FiltersAndDisplayCurrency(t *testing.T) {
	srv, _ := newServer(t)

	rr := get(t, srv, "/v1/products?destination=tokyo&currency=JPY")
	var out []struct {
		ID      string `json:"id"`
		Display struct {
			Currency string `json:"currency"`
			Adult    string `json:"adult"`
		} `json:"display"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 1 || out[0].ID != "jp-1" {
		t.Fatalf("filter failed: %+v", out)
	}
	if out[0].Display.Currency != "JPY" || !strings.HasPrefix(out[0].Display.Adult, "¥") {
		t.Fatalf("display conversion missing: %+v", out[0].Display)
	}
}

func TestGetProduct_ETagRoundTrip(t *testing.T) {
	srv, _ := newServer(t)

	rr := get(t, srv, "/v1/products/jp-1")
	if rr.Code != http.StatusOK {
		t.Fatalf("status %d", rr.Code)
	}
	etag := rr.Header().Get("ETag")
	if etag == "" {
		t.Fatal("missing ETag")
	}

	req := httptest.NewRequest("GET", "/v1/products/jp-1", nil)
	req.Header.Set("If-None-Match", etag)
	rr2 := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rr2, req)
	if rr2.Code != http.StatusNotModified {
		t.Fatalf("want 304, got %d", rr2.Code)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	srv, _ := newServer(t)
	rr := get(t, srv, "/v1/products/nope")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Fatalf("content type %q", ct)
	}
}

func TestFeatured_InvalidLimit(t *testing.T) {
	srv, _ := newServer(t)
	if rr := get(t, srv, "/v1/products/featured?limit=9000"); rr.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", rr.Code)
	}
}

func TestLocationEndpoint(t *testing.T) {
	srv, _ := newServer(t)
	rr := get(t, srv, "/v1/location")
	var loc domain.Location
	if err := json.Unmarshal(rr.Body.Bytes(), &loc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if loc.CurrencyCode != "JPY" {
		t.Fatalf("location = %+v", loc)
	}
}

func TestCurrencySelectionFlow(t *testing.T) {
	srv, cur := newServer(t)

	req := httptest.NewRequest("PUT", "/v1/currency", strings.NewReader(`{"code":"EUR"}`))
	rr := httptest.NewRecorder()
	srv.Mux().ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("put status %d", rr.Code)
	}
	if cur.ActiveCode() != "EUR" {
		t.Fatalf("active = %s", cur.ActiveCode())
	}

	req = httptest.NewRequest("PUT", "/v1/currency", strings.NewReader(`{"code":"DOGE"}`))
	rr = httptest.NewRecorder()
	srv.Mux().ServeHTTP(rr, req)
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("unsupported code: want 422, got %d", rr.Code)
	}
}

func TestConvertEndpoint(t *testing.T) {
	srv, cur := newServer(t)
	if err := cur.SetCurrency(context.Background(), "JPY"); err != nil {
		t.Fatalf("set: %v", err)
	}

	rr := get(t, srv, "/v1/convert?amount=65&from=USD")
	var out struct {
		Converted float64 `json:"converted"`
		Formatted string  `json:"formatted"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if math.Abs(out.Converted-9700) > 1e-6 {
		t.Fatalf("converted = %v, want 9700", out.Converted)
	}
	if out.Formatted != "¥9,700" {
		t.Fatalf("formatted = %q", out.Formatted)
	}

	if rr := get(t, srv, "/v1/convert?amount=abc"); rr.Code != http.StatusBadRequest {
		t.Fatalf("bad amount: want 400, got %d", rr.Code)
	}
}
