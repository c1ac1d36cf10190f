package wizard

import (
	"slices"
	"strings"

	"milan/internal/backend"
	"milan/internal/taxonomy"

	"github.com/shopspring/decimal"
)

const (
	MinImages = 2
	MaxImages = 10

	// CustomFabric is the fabric choice that opens the custom fabric input.
	// It is never a valid fabric.
	CustomFabric = "__custom__"
)

var (
	sliderStep = decimal.NewFromInt(100)
	sliderMax  = decimal.NewFromInt(10000)
)

// Image is an uploaded product image. Base64 is the encoded copy used for
// colour detection; images of an existing product do not have one.
type Image struct {
	URL       string
	Base64    string
	IsPrimary bool
}

// Draft is the product being authored.
type Draft struct {
	Slot taxonomy.Slot

	Images              []Image
	Fabric              string
	PrimaryColor        string
	HasOtherColors      bool
	AvailableColors     []string
	Sizes               []string
	ItemName            string
	ShortDescription    string
	DetailedDescription string
	Price               decimal.Decimal
	IsFreshArrivalTag   bool
	ShowInFreshArrivals bool
}

func (d Draft) clone() Draft {
	d.Images = slices.Clone(d.Images)
	d.AvailableColors = slices.Clone(d.AvailableColors)
	d.Sizes = slices.Clone(d.Sizes)
	return d
}

func filled(s string) bool { return strings.TrimSpace(s) != "" }

// CanAdvance reports whether step is complete. It only reads the draft.
func (d *Draft) CanAdvance(step Step) bool {
	switch step {
	case StepImages:
		return len(d.Images) >= MinImages
	case StepFabric:
		return filled(d.Fabric) && d.Fabric != CustomFabric
	case StepPrimaryColor:
		return filled(d.PrimaryColor)
	case StepSizes:
		return len(d.Sizes) > 0
	case StepItemDetails:
		return filled(d.ItemName) && filled(d.ShortDescription)
	case StepDescription:
		return filled(d.DetailedDescription)
	case StepPrice:
		return d.Price.IsPositive()
	default:
		return step.Valid()
	}
}

// addImage appends img. The first image of the draft becomes primary.
func (d *Draft) addImage(img Image) {
	img.IsPrimary = len(d.Images) == 0
	d.Images = append(d.Images, img)
}

// RemoveImage drops the image at i. If it was primary, the new first image
// takes over.
func (d *Draft) RemoveImage(i int) error {
	if i < 0 || i >= len(d.Images) {
		return ErrImageIndex
	}
	wasPrimary := d.Images[i].IsPrimary
	d.Images = slices.Delete(d.Images, i, i+1)
	if wasPrimary && len(d.Images) > 0 {
		d.Images[0].IsPrimary = true
	}
	return nil
}

func (d *Draft) MakePrimary(i int) error {
	if i < 0 || i >= len(d.Images) {
		return ErrImageIndex
	}
	for j := range d.Images {
		d.Images[j].IsPrimary = j == i
	}
	return nil
}

// PrimaryImage returns the flagged image, or the first one when none is.
func (d *Draft) PrimaryImage() (Image, bool) {
	if len(d.Images) == 0 {
		return Image{}, false
	}
	for _, img := range d.Images {
		if img.IsPrimary {
			return img, true
		}
	}
	return d.Images[0], true
}

// SetHasOtherColors switches the other colours step. Switching it off
// forgets every colour chosen so far.
func (d *Draft) SetHasOtherColors(on bool) {
	d.HasOtherColors = on
	if !on {
		d.AvailableColors = nil
	}
}

func (d *Draft) SetAvailableColors(colors []string) error {
	if !d.HasOtherColors && len(colors) > 0 {
		return ErrNoOtherColors
	}
	d.AvailableColors = dedupe(colors)
	return nil
}

func (d *Draft) ToggleColor(c string) error {
	if !d.HasOtherColors {
		return ErrNoOtherColors
	}
	d.AvailableColors = toggle(d.AvailableColors, c)
	return nil
}

func (d *Draft) SetSizes(sizes []string) { d.Sizes = dedupe(sizes) }

func (d *Draft) ToggleSize(s string) { d.Sizes = toggle(d.Sizes, s) }

func toggle(set []string, v string) []string {
	if i := slices.Index(set, v); i >= 0 {
		return slices.Delete(slices.Clone(set), i, i+1)
	}
	return append(slices.Clone(set), v)
}

func dedupe(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v != "" && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

// SetSliderPrice takes the coarse price slider's value: it is clamped to
// [0, 10000] and rounded to the nearest hundred.
func (d *Draft) SetSliderPrice(v decimal.Decimal) {
	switch {
	case v.IsNegative():
		v = decimal.Zero
	case v.GreaterThan(sliderMax):
		v = sliderMax
	}
	d.Price = v.Div(sliderStep).Round(0).Mul(sliderStep)
}

// SetExactPrice takes the exact price field. Any non-negative amount is kept
// as typed.
func (d *Draft) SetExactPrice(v decimal.Decimal) error {
	if v.IsNegative() {
		return ErrInvalidPrice
	}
	d.Price = v
	return nil
}

// ParsePrice reads the exact price field. An empty field is zero.
func ParsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	v, err := decimal.NewFromString(s)
	if err != nil || v.IsNegative() {
		return decimal.Zero, ErrInvalidPrice
	}
	return v, nil
}

// SliderPrice is where the slider sits for the current price.
func (d *Draft) SliderPrice() decimal.Decimal {
	if d.Price.GreaterThan(sliderMax) {
		return sliderMax
	}
	return d.Price
}

// Payload is what gets published. Encoded image content stays behind.
func (d *Draft) Payload() backend.ProductPayload {
	images := make([]backend.ProductImage, 0, len(d.Images))
	for _, img := range d.Images {
		images = append(images, backend.ProductImage{URL: img.URL, IsPrimary: img.IsPrimary})
	}

	colors := d.AvailableColors
	if colors == nil {
		colors = []string{}
	}

	return backend.ProductPayload{
		Name:                strings.TrimSpace(d.ItemName),
		ShortDescription:    strings.TrimSpace(d.ShortDescription),
		Description:         strings.TrimSpace(d.DetailedDescription),
		Category:            d.Slot.Category,
		Subcategory:         d.Slot.Subcategory,
		Gender:              d.Slot.Gender,
		AgeGroup:            d.Slot.AgeGroup,
		Fabric:              d.Fabric,
		PrimaryColor:        d.PrimaryColor,
		AvailableColors:     slices.Clone(colors),
		Sizes:               slices.Clone(d.Sizes),
		Price:               d.Price.InexactFloat64(),
		IsNewArrival:        d.IsFreshArrivalTag,
		ShowInFreshArrivals: d.ShowInFreshArrivals,
		Images:              images,
	}
}

// draftFromProduct loads an existing product for editing.
func draftFromProduct(p backend.Product) Draft {
	d := Draft{
		Slot: taxonomy.Slot{
			Category:    p.Category,
			Subcategory: p.Subcategory,
			Gender:      p.Gender,
			AgeGroup:    p.AgeGroup,
		},
		Fabric:              p.Fabric,
		PrimaryColor:        p.PrimaryColor,
		HasOtherColors:      len(p.AvailableColors) > 0,
		AvailableColors:     slices.Clone(p.AvailableColors),
		Sizes:               slices.Clone(p.Sizes),
		ItemName:            p.Name,
		ShortDescription:    p.ShortDescription,
		DetailedDescription: p.Description,
		Price:               decimal.NewFromFloat(p.Price),
		IsFreshArrivalTag:   p.IsNewArrival,
		ShowInFreshArrivals: p.ShowInFreshArrivals,
	}

	primary := -1
	for i, img := range p.Images {
		d.Images = append(d.Images, Image{URL: img.URL})
		if img.IsPrimary && primary < 0 {
			primary = i
		}
	}
	if len(d.Images) > 0 {
		d.Images[max(primary, 0)].IsPrimary = true
	}
	return d
}
