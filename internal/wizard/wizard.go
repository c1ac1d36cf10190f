// Package wizard is the owner's product authoring flow: an ordered set of
// steps that each have to be complete before the next one opens, a preview
// that can send the owner back to any step, and the side effects (uploads,
// colour detection, description generation, publishing) that fill the draft.
package wizard

import (
	"fmt"
	"slices"

	"milan/internal/backend"
	"milan/internal/taxonomy"

	"github.com/shopspring/decimal"
)

type Mode int

const (
	ModeAdd Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "add"
}

func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// Options are the choices offered by the backend's metadata.
type Options struct {
	Fabrics []string            `json:"fabrics"`
	Colors  []string            `json:"colors"`
	Sizes   backend.SizeOptions `json:"sizes"`
}

// Wizard is not safe for concurrent use; Registry serialises access.
type Wizard struct {
	mode      Mode
	productID string
	step      Step
	// returnTo is set while a step is being revisited from the preview.
	returnTo *Step

	draft         Draft
	options       Options
	detectedColor string
	autoGenerated bool
}

// NewAdd starts an empty draft filed under slot.
func NewAdd(slot taxonomy.Slot) (*Wizard, error) {
	if err := slot.Validate(); err != nil {
		return nil, err
	}
	return &Wizard{mode: ModeAdd, draft: Draft{Slot: slot}}, nil
}

// NewEdit starts a draft from an existing product. Its taxonomy slot is
// kept as is.
func NewEdit(p backend.Product) *Wizard {
	return &Wizard{
		mode:      ModeEdit,
		productID: p.ID,
		draft:     draftFromProduct(p),
	}
}

func (w *Wizard) Mode() Mode { return w.mode }
func (w *Wizard) ProductID() string { return w.productID }
func (w *Wizard) Step() Step { return w.step }
func (w *Wizard) Draft() *Draft { return &w.draft }
func (w *Wizard) Options() Options { return w.options }
func (w *Wizard) DetectedColor() string { return w.detectedColor }

// EditingFromPreview reports whether Next and Previous lead back to the
// preview.
func (w *Wizard) EditingFromPreview() bool { return w.returnTo != nil }

func (w *Wizard) CanAdvance() bool { return w.draft.CanAdvance(w.step) }

// Next leaves the current step if it is complete.
func (w *Wizard) Next() error {
	if w.step == StepPreview {
		return ErrNoNextStep
	}
	if !w.CanAdvance() {
		return fmt.Errorf("%w: %s", ErrStepIncomplete, w.step)
	}
	if w.takeReturn() {
		return nil
	}
	w.step = transitions[w.step].next
	return nil
}

// Previous goes one step back. A pending return to the preview wins over
// that, even on the first step where Previous is otherwise a no-op: an edit
// of the images opened from the preview goes back to the preview.
func (w *Wizard) Previous() {
	if w.takeReturn() {
		return
	}
	w.step = transitions[w.step].prev
}

func (w *Wizard) takeReturn() bool {
	if w.returnTo == nil {
		return false
	}
	w.step = *w.returnTo
	w.returnTo = nil
	return true
}

// EditFromPreview reopens step from the preview. The next Next or Previous
// returns to the preview.
func (w *Wizard) EditFromPreview(step Step) error {
	if w.step != StepPreview {
		return ErrNotAtPreview
	}
	if !step.Editable() {
		return fmt.Errorf("%w: %s", ErrInvalidStep, step)
	}
	back := StepPreview
	w.returnTo = &back
	w.step = step
	return nil
}

// Patch is a set of field edits. Nil fields are left alone.
type Patch struct {
	Fabric              *string          `json:"fabric"`
	PrimaryColor        *string          `json:"primary_color"`
	HasOtherColors      *bool            `json:"has_other_colors"`
	AvailableColors     []string         `json:"available_colors"`
	ToggleColor         *string          `json:"toggle_color"`
	Sizes               []string         `json:"sizes"`
	ToggleSize          *string          `json:"toggle_size"`
	ItemName            *string          `json:"item_name" validate:"omitempty,max=200"`
	ShortDescription    *string          `json:"short_description" validate:"omitempty,max=500"`
	DetailedDescription *string          `json:"detailed_description"`
	SliderPrice         *decimal.Decimal `json:"slider_price" swaggertype:"number"`
	ExactPrice          *decimal.Decimal `json:"exact_price" swaggertype:"number"`
	IsFreshArrivalTag   *bool            `json:"is_fresh_arrival_tag"`
	ShowInFreshArrivals *bool            `json:"show_in_fresh_arrivals"`
}

// Apply edits the draft. Either every edit in p is applied or none is.
// Field edits never move the wizard or touch a pending return to the preview.
func (w *Wizard) Apply(p Patch) error {
	d := w.draft.clone()

	if p.Fabric != nil {
		d.Fabric = *p.Fabric
	}
	if p.PrimaryColor != nil {
		d.PrimaryColor = *p.PrimaryColor
	}
	if p.HasOtherColors != nil {
		d.SetHasOtherColors(*p.HasOtherColors)
	}
	if p.AvailableColors != nil {
		if err := d.SetAvailableColors(p.AvailableColors); err != nil {
			return err
		}
	}
	if p.ToggleColor != nil {
		if err := d.ToggleColor(*p.ToggleColor); err != nil {
			return err
		}
	}
	if p.Sizes != nil {
		d.SetSizes(p.Sizes)
	}
	if p.ToggleSize != nil {
		d.ToggleSize(*p.ToggleSize)
	}
	if p.ItemName != nil {
		d.ItemName = *p.ItemName
	}
	if p.ShortDescription != nil {
		d.ShortDescription = *p.ShortDescription
	}
	if p.DetailedDescription != nil {
		d.DetailedDescription = *p.DetailedDescription
	}
	if p.SliderPrice != nil {
		d.SetSliderPrice(*p.SliderPrice)
	}
	if p.ExactPrice != nil {
		if err := d.SetExactPrice(*p.ExactPrice); err != nil {
			return err
		}
	}
	if p.IsFreshArrivalTag != nil {
		d.IsFreshArrivalTag = *p.IsFreshArrivalTag
	}
	if p.ShowInFreshArrivals != nil {
		d.ShowInFreshArrivals = *p.ShowInFreshArrivals
	}

	w.draft = d
	return nil
}

func (w *Wizard) RemoveImage(i int) error { return w.draft.RemoveImage(i) }

func (w *Wizard) MakePrimary(i int) error { return w.draft.MakePrimary(i) }

type ImageView struct {
	URL        string `json:"url"`
	IsPrimary  bool   `json:"is_primary"`
	HasContent bool   `json:"has_content"`
}

// View is a read-only snapshot of the wizard for rendering.
type View struct {
	Mode               Mode          `json:"mode"`
	ProductID          string        `json:"product_id,omitempty"`
	Step               Step          `json:"step"`
	StepNumber         int           `json:"step_number"`
	Steps              []Step        `json:"steps"`
	CanAdvance         bool          `json:"can_advance"`
	EditingFromPreview bool          `json:"editing_from_preview"`
	Slot               taxonomy.Slot `json:"slot"`
	ListingPath        string        `json:"listing_path"`

	Images              []ImageView `json:"images"`
	Fabric              string      `json:"fabric"`
	PrimaryColor        string      `json:"primary_color"`
	DetectedColor       string      `json:"detected_color,omitempty"`
	HasOtherColors      bool        `json:"has_other_colors"`
	AvailableColors     []string    `json:"available_colors"`
	Sizes               []string    `json:"sizes"`
	ItemName            string      `json:"item_name"`
	ShortDescription    string      `json:"short_description"`
	DetailedDescription string      `json:"detailed_description"`
	Price               float64     `json:"price"`
	SliderPrice         float64     `json:"slider_price"`
	IsFreshArrivalTag   bool        `json:"is_fresh_arrival_tag"`
	ShowInFreshArrivals bool        `json:"show_in_fresh_arrivals"`

	Options Options `json:"options"`
}

func (w *Wizard) View() View {
	d := &w.draft
	images := make([]ImageView, 0, len(d.Images))
	for _, img := range d.Images {
		images = append(images, ImageView{URL: img.URL, IsPrimary: img.IsPrimary, HasContent: img.Base64 != ""})
	}

	return View{
		Mode:                w.mode,
		ProductID:           w.productID,
		Step:                w.step,
		StepNumber:          int(w.step),
		Steps:               Steps(),
		CanAdvance:          w.CanAdvance(),
		EditingFromPreview:  w.EditingFromPreview(),
		Slot:                d.Slot,
		ListingPath:         d.Slot.ListingPath(),
		Images:              images,
		Fabric:              d.Fabric,
		PrimaryColor:        d.PrimaryColor,
		DetectedColor:       w.detectedColor,
		HasOtherColors:      d.HasOtherColors,
		AvailableColors:     slices.Clone(d.AvailableColors),
		Sizes:               slices.Clone(d.Sizes),
		ItemName:            d.ItemName,
		ShortDescription:    d.ShortDescription,
		DetailedDescription: d.DetailedDescription,
		Price:               d.Price.InexactFloat64(),
		SliderPrice:         d.SliderPrice().InexactFloat64(),
		IsFreshArrivalTag:   d.IsFreshArrivalTag,
		ShowInFreshArrivals: d.ShowInFreshArrivals,
		Options: Options{
			Fabrics: slices.Clone(w.options.Fabrics),
			Colors:  slices.Clone(w.options.Colors),
			Sizes:   w.options.Sizes,
		},
	}
}
