package currency

import (
	"context"

	"travel_catalog/internal/domain"
)

// StaticRateSource serves the built-in reference table. The live
// rate-fetching protocol is out of scope; anything implementing
// domain.RateSource can stand in here.
type StaticRateSource struct{}

func (StaticRateSource) Rates(ctx context.Context) (map[string]float64, error) {
	out := make(map[string]float64, len(defaultRates))
	for k, v := range defaultRates {
		out[k] = v
	}
	return out, nil
}

var _ domain.RateSource = StaticRateSource{}
