// Package taxonomy is the owner's navigation tree: the store's sections,
// their categories and, for kids, the age group and gender branches. A leaf
// of the tree is a Slot that products are filed under.
package taxonomy

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
)

const Kids = "kids"

var (
	ErrUnknownSection  = errors.New("unknown section")
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidPath     = errors.New("invalid add-product path")
)

type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	AgeGroup string `json:"age_group,omitempty"`
	Gender   string `json:"gender,omitempty"`
}

type Section struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Categories []Category `json:"categories"`
}

var (
	AgeGroups = []string{"0-3", "4-7", "8-11", "12-15"}
	Genders   = []string{"boy", "girl"}
)

var kidsSubcategories = []Category{
	{ID: "traditional", Name: "Traditional"},
	{ID: "casual", Name: "Casual"},
	{ID: "party", Name: "Party Wears"},
	{ID: "nightwear", Name: "Night Wears"},
}

var sections = []Section{
	{ID: "men", Name: "Men", Categories: []Category{
		{ID: "traditional", Name: "Traditional Wear"},
		{ID: "shirts", Name: "Shirts"},
		{ID: "pants", Name: "Pants"},
		{ID: "inner-wears", Name: "Inner Wears"},
		{ID: "accessories", Name: "Accessories"},
	}},
	{ID: "women", Name: "Women", Categories: []Category{
		{ID: "traditional", Name: "Traditional"},
		{ID: "ethnic", Name: "Ethnic"},
		{ID: "western", Name: "Western Wears"},
		{ID: "bottomwear", Name: "Bottom Wears"},
		{ID: "casual", Name: "Casual Wears"},
		{ID: "inner-wears", Name: "Inner Wears"},
	}},
	{ID: Kids, Name: "Kids", Categories: kidsBranches()},
	{ID: "accessories", Name: "Accessories", Categories: []Category{
		{ID: "belts", Name: "Belts"},
		{ID: "towels", Name: "Towels"},
		{ID: "handkerchiefs", Name: "Handkerchiefs"},
		{ID: "others", Name: "Others"},
	}},
}

// aliases maps the category ids the add-product launcher uses to the ids
// products are filed under, per section.
var aliases = map[string]map[string]string{
	"women": {
		"western-wears": "western",
		"bottom-wears":  "bottomwear",
		"casual-wears":  "casual",
	},
	"accessories": {
		"kerchief": "handkerchiefs",
	},
}

func kidsBranches() []Category {
	var out []Category
	for _, g := range Genders {
		label := strings.ToUpper(g[:1]) + g[1:] + "s"
		for _, age := range AgeGroups {
			out = append(out, Category{
				ID:       fmt.Sprintf("%ss-%s", g, age),
				Name:     fmt.Sprintf("%s (%s years)", label, age),
				AgeGroup: age,
				Gender:   g,
			})
		}
	}
	return out
}

// Sections returns the top level of the tree.
func Sections() []Section {
	out := make([]Section, len(sections))
	for i, s := range sections {
		s.Categories = slices.Clone(s.Categories)
		out[i] = s
	}
	return out
}

func Lookup(id string) (Section, bool) {
	for _, s := range Sections() {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

func IsSection(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// KidsSubcategories lists what a kids age group and gender branch splits into.
func KidsSubcategories() []Category {
	return slices.Clone(kidsSubcategories)
}

// Slot identifies where a product is filed. Category is the section id;
// Gender and AgeGroup are only set in the kids section.
type Slot struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	Gender      string `json:"gender,omitempty"`
	AgeGroup    string `json:"age_group,omitempty"`
}

func (s Slot) IsKids() bool { return s.Category == Kids }

// Canonical rewrites a launcher alias of the subcategory to its filed id.
func (s Slot) Canonical() Slot {
	if id, ok := aliases[s.Category][s.Subcategory]; ok {
		s.Subcategory = id
	}
	return s
}

func (s Slot) Validate() error {
	sec, ok := Lookup(s.Category)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSection, s.Category)
	}

	if s.IsKids() {
		if !slices.Contains(AgeGroups, s.AgeGroup) {
			return fmt.Errorf("%w: age group %q", ErrUnknownCategory, s.AgeGroup)
		}
		if !slices.Contains(Genders, s.Gender) {
			return fmt.Errorf("%w: gender %q", ErrUnknownCategory, s.Gender)
		}
		if !containsID(kidsSubcategories, s.Subcategory) {
			return fmt.Errorf("%w: %q", ErrUnknownCategory, s.Subcategory)
		}
		return nil
	}

	if s.Gender != "" || s.AgeGroup != "" {
		return fmt.Errorf("%w: %s has no age groups", ErrUnknownCategory, s.Category)
	}
	if !containsID(sec.Categories, s.Subcategory) {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, s.Subcategory)
	}
	return nil
}

func containsID(cats []Category, id string) bool {
	return slices.ContainsFunc(cats, func(c Category) bool { return c.ID == id })
}

// AddProductPath is the owner route that opens the wizard for this slot.
func (s Slot) AddProductPath() string {
	if s.IsKids() {
		return fmt.Sprintf("/owner/add-product/%s/%s/%s/%s", s.Category, s.AgeGroup, s.Gender, s.Subcategory)
	}
	return fmt.Sprintf("/owner/add-product/%s/%s", s.Category, s.Subcategory)
}

// ListingPath is the owner listing a product in this slot shows up in.
// Kids listings are keyed by age group and gender only.
func (s Slot) ListingPath() string {
	if s.IsKids() && s.AgeGroup != "" && s.Gender != "" {
		return fmt.Sprintf("/owner/products/%s/%s/%s", Kids, s.AgeGroup, s.Gender)
	}
	return fmt.Sprintf("/owner/products/%s/%s", s.Category, s.Subcategory)
}

// Query is the backend product query of the owner listing for this slot.
// Empty dimensions are left out so a partial slot lists a whole branch.
func (s Slot) Query() url.Values {
	q := url.Values{}
	q.Set("category", s.Category)
	if s.AgeGroup != "" {
		q.Set("age_group", s.AgeGroup)
	}
	if s.Gender != "" {
		q.Set("gender", s.Gender)
	}
	if s.Subcategory != "" {
		q.Set("subcategory", s.Subcategory)
	}
	return q
}

// ParseAddProductPath reads the segments following /owner/add-product/,
// either "section/category" or "kids/age/gender/subcategory".
func ParseAddProductPath(path string) (Slot, error) {
	path = strings.TrimPrefix(path, "/owner/add-product")
	parts := strings.Split(strings.Trim(path, "/"), "/")

	var s Slot
	switch {
	case len(parts) == 2 && parts[0] != Kids:
		s = Slot{Category: parts[0], Subcategory: parts[1]}.Canonical()
	case len(parts) == 4 && parts[0] == Kids:
		s = Slot{Category: Kids, AgeGroup: parts[1], Gender: parts[2], Subcategory: parts[3]}
	default:
		return Slot{}, fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}

	if err := s.Validate(); err != nil {
		return Slot{}, err
	}
	return s, nil
}
