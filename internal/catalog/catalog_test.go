package catalog_test

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"milan/internal/backend"
	"milan/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLister struct {
	ListProductsFn func(ctx context.Context, q url.Values) ([]backend.Product, error)
}

func (f *fakeLister) ListProducts(ctx context.Context, q url.Values) ([]backend.Product, error) {
	return f.ListProductsFn(ctx, q)
}

func names(ps []backend.Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Name)
	}
	return out
}

func TestSort_NewArrivalsFirstStable(t *testing.T) {
	ps := []backend.Product{
		{Name: "A", IsNewArrival: true},
		{Name: "B", IsNewArrival: false},
		{Name: "C", IsNewArrival: true},
	}
	catalog.Sort(ps)
	assert.Equal(t, []string{"A", "C", "B"}, names(ps))

	ps = []backend.Product{
		{Name: "D"}, {Name: "E", IsNewArrival: true}, {Name: "F"}, {Name: "G", IsNewArrival: true},
	}
	catalog.Sort(ps)
	assert.Equal(t, []string{"E", "G", "D", "F"}, names(ps))
}

func TestDisplayImage(t *testing.T) {
	tests := []struct {
		name   string
		images []backend.ProductImage
		want   string
	}{
		{"no_images", nil, catalog.PlaceholderImage},
		{"primary_flagged", []backend.ProductImage{{URL: "a"}, {URL: "b", IsPrimary: true}}, "b"},
		{"first_when_none_flagged", []backend.ProductImage{{URL: "a"}, {URL: "b"}}, "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.DisplayImage(backend.Product{Images: tt.images}))
		})
	}
}

func TestFilter_Values(t *testing.T) {
	t.Run("flat_category", func(t *testing.T) {
		q := catalog.ForListing("men", "shirts", "", "").Values()
		assert.Equal(t, url.Values{"category": {"men"}, "subcategory": {"shirts"}}, q)
	})

	t.Run("kids", func(t *testing.T) {
		q := catalog.ForListing("kids", "party", "girl", "4-7").Values()
		assert.Equal(t, "kids", q.Get("category"))
		assert.Equal(t, "party", q.Get("subcategory"))
		assert.Equal(t, "girl", q.Get("gender"))
		assert.Equal(t, "4-7", q.Get("age_group"))
	})

	t.Run("fresh_arrivals", func(t *testing.T) {
		assert.Equal(t, "show_in_fresh_arrivals=true", catalog.FreshArrivals().Values().Encode())
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, catalog.Filter{}.Values())
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		api := &fakeLister{ListProductsFn: func(ctx context.Context, q url.Values) ([]backend.Product, error) {
			assert.Equal(t, "women", q.Get("category"))
			return []backend.Product{
				{Name: "old"},
				{Name: "new", IsNewArrival: true, Images: []backend.ProductImage{{URL: "n.jpg"}}},
			}, nil
		}}

		got, err := catalog.NewService(api).List(ctx, catalog.Filter{Category: "women"})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "new", got[0].Name)
		assert.Equal(t, "n.jpg", got[0].DisplayImage)
		assert.Equal(t, catalog.PlaceholderImage, got[1].DisplayImage)
	})

	t.Run("backend_error", func(t *testing.T) {
		api := &fakeLister{ListProductsFn: func(ctx context.Context, q url.Values) ([]backend.Product, error) {
			return nil, errors.New("boom")
		}}

		_, err := catalog.NewService(api).List(ctx, catalog.Filter{})
		assert.Error(t, err)
	})
}
