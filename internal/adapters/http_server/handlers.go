package httpserver

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"travel_catalog/internal/catalog"
	"travel_catalog/internal/currency"
	"travel_catalog/internal/domain"
)

// Locator is the read side of the location resolver.
type Locator interface {
	Resolve(ctx context.Context) domain.Location
}

type Handlers struct {
	Catalog  *catalog.Service
	Currency *currency.Service
	Locator  Locator
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/products", h.listProducts)
	s.mux.Get("/v1/products/featured", h.featuredProducts)
	s.mux.Get("/v1/products/popular", h.popularProducts)
	s.mux.Get("/v1/products/{id}", h.getProduct)
	s.mux.Get("/v1/products/{id}/reviews", h.listReviews)
	s.mux.Get("/v1/destinations", h.listDestinations)
	s.mux.Get("/v1/categories", h.listCategories)
	s.mux.Get("/v1/location", h.getLocation)
	s.mux.Get("/v1/currencies", h.listCurrencies)
	s.mux.Get("/v1/currency", h.getCurrency)
	s.mux.Put("/v1/currency", h.putCurrency)
	s.mux.Get("/v1/convert", h.convertPrice)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeWithETag(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// ---- product views ----

// display carries the price set converted into the viewer's currency for
// rendering; stored pricing stays in the base currency.
type display struct {
	Currency string `json:"currency"`
	Adult    string `json:"adult"`
	Child    string `json:"child"`
	Infant   string `json:"infant"`
}

type productView struct {
	domain.Product
	Display *display `json:"display,omitempty"`
}

func (h *Handlers) view(p domain.Product, cur string) productView {
	v := productView{Product: p}
	if cur == "" {
		return v
	}
	v.Display = &display{
		Currency: cur,
		Adult:    h.Currency.Format(h.Currency.ConvertTo(float64(p.Pricing.Adult), p.Currency, cur), cur),
		Child:    h.Currency.Format(h.Currency.ConvertTo(float64(p.Pricing.Child), p.Currency, cur), cur),
		Infant:   h.Currency.Format(h.Currency.ConvertTo(float64(p.Pricing.Infant), p.Currency, cur), cur),
	}
	return v
}

func (h *Handlers) views(ps []domain.Product, cur string) []productView {
	out := make([]productView, 0, len(ps))
	for _, p := range ps {
		out = append(out, h.view(p, cur))
	}
	return out
}

// ---- handlers ----

func (h *Handlers) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var ps []domain.Product
	switch {
	case q.Get("destination") != "":
		ps = h.Catalog.ByDestination(q.Get("destination"))
	case q.Get("category") != "":
		ps = h.Catalog.ByCategory(q.Get("category"))
	case q.Get("q") != "":
		ps = h.Catalog.Search(q.Get("q"))
	default:
		ps = h.Catalog.All()
	}
	writeWithETag(w, r, h.views(ps, q.Get("currency")))
}

func parseLimit(r *http.Request, def int) (int, bool) {
	ls := r.URL.Query().Get("limit")
	if ls == "" {
		return def, true
	}
	l, err := strconv.Atoi(ls)
	if err != nil || l <= 0 || l > 50 {
		return 0, false
	}
	return l, true
}

func (h *Handlers) featuredProducts(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(r, 8)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid limit", "limit must be an integer between 1 and 50")
		return
	}
	writeWithETag(w, r, h.views(h.Catalog.Featured(limit), r.URL.Query().Get("currency")))
}

func (h *Handlers) popularProducts(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseLimit(r, 8)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid limit", "limit must be an integer between 1 and 50")
		return
	}
	writeWithETag(w, r, h.views(h.Catalog.Popular(limit), r.URL.Query().Get("currency")))
}

func (h *Handlers) getProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := h.Catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "product not found")
		return
	}
	writeWithETag(w, r, h.view(p, r.URL.Query().Get("currency")))
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.Catalog.Get(r.Context(), id); !ok {
		writeProblem(w, http.StatusNotFound, "Not Found", "product not found")
		return
	}
	writeWithETag(w, r, h.Catalog.Reviews(r.Context(), id))
}

func (h *Handlers) listDestinations(w http.ResponseWriter, r *http.Request) {
	writeWithETag(w, r, h.Catalog.Destinations())
}

func (h *Handlers) listCategories(w http.ResponseWriter, r *http.Request) {
	writeWithETag(w, r, h.Catalog.Categories())
}

func (h *Handlers) getLocation(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Locator.Resolve(r.Context()))
}

func (h *Handlers) listCurrencies(w http.ResponseWriter, r *http.Request) {
	writeWithETag(w, r, h.Currency.Currencies())
}

func (h *Handlers) getCurrency(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Currency.Active())
}

func (h *Handlers) putCurrency(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Code == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid body", `expected {"code":"USD"}`)
		return
	}
	if err := h.Currency.SetCurrency(r.Context(), in.Code); err != nil {
		writeProblem(w, http.StatusUnprocessableEntity, "Unsupported currency", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.Currency.Active())
}

func (h *Handlers) convertPrice(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	amount, err := strconv.ParseFloat(q.Get("amount"), 64)
	if err != nil || amount < 0 {
		writeProblem(w, http.StatusBadRequest, "Invalid amount", "amount must be a non-negative number")
		return
	}
	from := q.Get("from")
	converted := h.Currency.Convert(amount, from)
	writeJSON(w, http.StatusOK, map[string]any{
		"amount":    amount,
		"from":      from,
		"currency":  h.Currency.ActiveCode(),
		"converted": converted,
		"formatted": h.Currency.Format(converted, h.Currency.ActiveCode()),
	})
}
