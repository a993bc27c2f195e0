package catalog

import (
	"context"
	"sort"
	"strings"

	"travel_catalog/internal/domain"
)

// All returns every product in the current snapshot.
func (s *Service) All() []domain.Product {
	snap := s.snap.Load()
	out := make([]domain.Product, len(snap.products))
	copy(out, snap.products)
	return out
}

// ByDestination matches the destination name case-insensitively as a
// substring.
func (s *Service) ByDestination(name string) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(name))
	if q == "" {
		return nil
	}
	var out []domain.Product
	for _, p := range s.snap.Load().products {
		if strings.Contains(strings.ToLower(p.DestinationName), q) {
			out = append(out, p)
		}
	}
	return out
}

// ByCategory matches any of the item's categories case-insensitively as a
// substring.
func (s *Service) ByCategory(name string) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(name))
	if q == "" {
		return nil
	}
	var out []domain.Product
	for _, p := range s.snap.Load().products {
		for _, c := range p.Categories {
			if strings.Contains(strings.ToLower(c), q) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// Featured sorts descending by rating x review count.
func (s *Service) Featured(limit int) []domain.Product {
	out := s.All()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rating*float64(out[i].ReviewCount) > out[j].Rating*float64(out[j].ReviewCount)
	})
	return truncate(out, limit)
}

// Popular sorts descending by review count.
func (s *Service) Popular(limit int) []domain.Product {
	out := s.All()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ReviewCount > out[j].ReviewCount
	})
	return truncate(out, limit)
}

// Search matches case-insensitively across name, destination, overview and
// categories.
func (s *Service) Search(query string) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []domain.Product
	for _, p := range s.snap.Load().products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.DestinationName), q) ||
			strings.Contains(strings.ToLower(p.Overview), q) {
			out = append(out, p)
			continue
		}
		for _, c := range p.Categories {
			if strings.Contains(strings.ToLower(c), q) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// Get serves a single product, read-through cached when a cache is wired.
func (s *Service) Get(ctx context.Context, id string) (domain.Product, bool) {
	key := "product:" + strings.ToLower(id)
	if s.cache != nil {
		var p domain.Product
		if ok, _ := s.cache.Get(ctx, key, &p); ok {
			return p, true
		}
	}
	p, ok := s.snap.Load().byID[strings.ToLower(id)]
	if !ok {
		return domain.Product{}, false
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, p, int(s.cacheTTL.Seconds()))
	}
	return p, true
}

// Reviews serves the product's review list from the auxiliary table.
func (s *Service) Reviews(ctx context.Context, id string) []domain.Review {
	key := "reviews:" + strings.ToLower(id)
	if s.cache != nil {
		var rs []domain.Review
		if ok, _ := s.cache.Get(ctx, key, &rs); ok {
			return rs
		}
	}
	rs := s.snap.Load().reviews[strings.ToLower(id)]
	// copy to avoid aliasing the snapshot's backing array
	out := make([]domain.Review, len(rs))
	copy(out, rs)
	if s.cache != nil && len(out) > 0 {
		_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	}
	return out
}

// Destinations returns the immutable destination reference table.
func (s *Service) Destinations() []domain.Destination {
	out := make([]domain.Destination, len(destinations))
	copy(out, destinations)
	return out
}

// Categories returns the immutable category reference table.
func (s *Service) Categories() []domain.Category {
	out := make([]domain.Category, len(categories))
	copy(out, categories)
	return out
}

func truncate(in []domain.Product, limit int) []domain.Product {
	if limit > 0 && limit < len(in) {
		return in[:limit]
	}
	return in
}
