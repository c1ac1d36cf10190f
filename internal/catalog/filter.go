package catalog

import (
	"net/url"
	"strconv"
)

// Filter is the set of dimensions a storefront page narrows the catalog by.
// Empty dimensions are left out of the query.
type Filter struct {
	Category      string
	Subcategory   string
	Gender        string
	AgeGroup      string
	FreshArrivals *bool
}

func (f Filter) Values() url.Values {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Subcategory != "" {
		q.Set("subcategory", f.Subcategory)
	}
	if f.Gender != "" {
		q.Set("gender", f.Gender)
	}
	if f.AgeGroup != "" {
		q.Set("age_group", f.AgeGroup)
	}
	if f.FreshArrivals != nil {
		q.Set("show_in_fresh_arrivals", strconv.FormatBool(*f.FreshArrivals))
	}
	return q
}

// ForListing builds the filter of a product listing page. Kids pages carry
// the child's gender and age group; every other section is a flat category.
func ForListing(gender, subcategory, kidsGender, ageGroup string) Filter {
	if gender == "kids" {
		return Filter{
			Category:    "kids",
			Subcategory: subcategory,
			Gender:      kidsGender,
			AgeGroup:    ageGroup,
		}
	}
	return Filter{Category: gender, Subcategory: subcategory}
}

// FreshArrivals is the homepage's curated list.
func FreshArrivals() Filter {
	yes := true
	return Filter{FreshArrivals: &yes}
}
