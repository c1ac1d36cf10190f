package wizard

import (
	"fmt"
)

// Step is one screen of the wizard. The set is closed: a Step outside
// StepImages..StepPreview is never stored in a Wizard.
type Step int

const (
	StepImages Step = iota
	StepFabric
	StepPrimaryColor
	StepOtherColors
	StepSizes
	StepItemDetails
	StepDescription
	StepPrice
	StepFreshArrivalTag
	StepShowInFreshArrivals
	StepPreview
)

var stepNames = [...]string{
	StepImages:              "images",
	StepFabric:              "fabric",
	StepPrimaryColor:        "primary-color",
	StepOtherColors:         "other-colors",
	StepSizes:               "sizes",
	StepItemDetails:         "item-details",
	StepDescription:         "description",
	StepPrice:               "price",
	StepFreshArrivalTag:     "fresh-arrival-tag",
	StepShowInFreshArrivals: "show-in-fresh-arrivals",
	StepPreview:             "preview",
}

// transitions is the linear order of the wizard. The first step has no
// predecessor and the preview has no successor; both point at themselves.
var transitions = [...]struct{ prev, next Step }{
	StepImages:              {prev: StepImages, next: StepFabric},
	StepFabric:              {prev: StepImages, next: StepPrimaryColor},
	StepPrimaryColor:        {prev: StepFabric, next: StepOtherColors},
	StepOtherColors:         {prev: StepPrimaryColor, next: StepSizes},
	StepSizes:               {prev: StepOtherColors, next: StepItemDetails},
	StepItemDetails:         {prev: StepSizes, next: StepDescription},
	StepDescription:         {prev: StepItemDetails, next: StepPrice},
	StepPrice:               {prev: StepDescription, next: StepFreshArrivalTag},
	StepFreshArrivalTag:     {prev: StepPrice, next: StepShowInFreshArrivals},
	StepShowInFreshArrivals: {prev: StepFreshArrivalTag, next: StepPreview},
	StepPreview:             {prev: StepShowInFreshArrivals, next: StepPreview},
}

func (s Step) Valid() bool {
	return s >= StepImages && s <= StepPreview
}

func (s Step) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Step(%d)", int(s))
	}
	return stepNames[s]
}

// Editable reports whether the preview can send the owner back to s.
func (s Step) Editable() bool {
	return s.Valid() && s != StepPreview
}

func ParseStep(name string) (Step, error) {
	for i, n := range stepNames {
		if n == name {
			return Step(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStep, name)
}

func (s Step) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStep, int(s))
	}
	return []byte(stepNames[s]), nil
}

func (s *Step) UnmarshalText(b []byte) error {
	v, err := ParseStep(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Steps lists every step in wizard order.
func Steps() []Step {
	out := make([]Step, 0, len(stepNames))
	for s := StepImages; s <= StepPreview; s++ {
		out = append(out, s)
	}
	return out
}
