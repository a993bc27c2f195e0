// Package media assigns a hero image and gallery to each catalog item,
// topping up sparse rows from destination- and category-keyed fallback
// pools.
package media

import (
	"strings"

	"travel_catalog/internal/domain"
)

// targetCount is the collection size we aim for before the pools stop
// contributing.
const targetCount = 4

// maxGallery caps the gallery length after the hero is split off.
const maxGallery = 5

// Input carries the row fields the resolver works from. Explicit holds the
// row's own image columns in their fixed column order.
type Input struct {
	Explicit    []string
	Destination string
	Categories  []string
}

// Resolve builds the image set: explicit images first, then the destination
// pool, then category pools, until targetCount is reached or the pools run
// dry. The combined list is deduplicated preserving first-seen order; an
// empty result falls back to one generic image so Hero is never empty.
func Resolve(in Input) domain.ImageSet {
	var imgs []string
	for _, u := range in.Explicit {
		if t := strings.TrimSpace(u); t != "" {
			imgs = append(imgs, t)
		}
	}

	if len(imgs) < targetCount {
		imgs = topUp(imgs, destinationPool[strings.ToLower(strings.TrimSpace(in.Destination))])
	}
	for _, c := range in.Categories {
		if len(imgs) >= targetCount {
			break
		}
		imgs = topUp(imgs, categoryPool[strings.ToLower(strings.TrimSpace(c))])
	}

	imgs = dedupe(imgs)
	if len(imgs) == 0 {
		imgs = []string{genericFallback}
	}

	gallery := imgs[1:]
	if len(gallery) > maxGallery {
		gallery = gallery[:maxGallery]
	}
	return domain.ImageSet{Hero: imgs[0], Gallery: gallery}
}

func topUp(imgs, pool []string) []string {
	for _, u := range pool {
		if len(imgs) >= targetCount {
			break
		}
		imgs = append(imgs, u)
	}
	return imgs
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, u := range in {
		if _, ok := seen[u]; ok {
			continue
		}
		seen[u] = struct{}{}
		out = append(out, u)
	}
	return out
}
