// Package catalog turns storefront page selections into backend queries and
// shapes the answers for display.
package catalog

import (
	"context"
	"net/url"
	"sort"

	"milan/internal/backend"
)

// PlaceholderImage is shown for products without any image.
const PlaceholderImage = "/placeholder-image.png"

type Lister interface {
	ListProducts(ctx context.Context, q url.Values) ([]backend.Product, error)
}

type Summary struct {
	backend.Product
	DisplayImage string `json:"display_image"`
}

type Service struct {
	api Lister
}

func NewService(api Lister) *Service {
	return &Service{api: api}
}

func (s *Service) List(ctx context.Context, f Filter) ([]Summary, error) {
	products, err := s.api.ListProducts(ctx, f.Values())
	if err != nil {
		return nil, err
	}

	Sort(products)

	out := make([]Summary, 0, len(products))
	for _, p := range products {
		out = append(out, Summary{Product: p, DisplayImage: DisplayImage(p)})
	}
	return out, nil
}

// Sort places new arrivals first and otherwise keeps the backend's order.
func Sort(products []backend.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].IsNewArrival && !products[j].IsNewArrival
	})
}

// DisplayImage resolves the card image: the primary one, else the first,
// else the placeholder.
func DisplayImage(p backend.Product) string {
	if len(p.Images) == 0 {
		return PlaceholderImage
	}
	for _, img := range p.Images {
		if img.IsPrimary {
			return img.URL
		}
	}
	return p.Images[0].URL
}
