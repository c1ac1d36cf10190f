// Package viewer holds the state of the product detail page: the image
// carousel, the swipe gesture and the enquiry confirmation.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"milan/internal/backend"
	"milan/internal/catalog"
	"milan/internal/whatsapp"
)

// SwipeThreshold is the horizontal distance in pixels a drag has to cover
// before it changes the image.
const SwipeThreshold = 50

var (
	ErrNotFound            = errors.New("product not found")
	ErrEnquiryNotRequested = errors.New("enquiry was not requested")
	ErrNoSuchImage         = errors.New("no such image")
)

type Getter interface {
	GetProduct(ctx context.Context, id string) (*backend.Product, error)
}

type Viewer struct {
	Product backend.Product

	index   int
	enquiry bool
}

// Open loads product id. A product the backend does not know is reported as
// ErrNotFound so the page can offer a way back to the catalog.
func Open(ctx context.Context, api Getter, id string) (*Viewer, error) {
	p, err := api.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch product %s: %w", id, err)
	}
	return New(*p), nil
}

// New starts the carousel on the primary image, or the first one.
func New(p backend.Product) *Viewer {
	v := &Viewer{Product: p}
	for i, img := range p.Images {
		if img.IsPrimary {
			v.index = i
			break
		}
	}
	return v
}

func (v *Viewer) Index() int { return v.index }

func (v *Viewer) CurrentImage() string {
	if len(v.Product.Images) == 0 {
		return catalog.PlaceholderImage
	}
	return v.Product.Images[v.index].URL
}

// Show jumps to image i. A product without images only has image 0, the
// placeholder.
func (v *Viewer) Show(i int) error {
	n := max(len(v.Product.Images), 1)
	if i < 0 || i >= n {
		return fmt.Errorf("%w: %d of %d", ErrNoSuchImage, i, n)
	}
	v.index = i
	return nil
}

func (v *Viewer) Next() {
	n := len(v.Product.Images)
	if n < 2 {
		return
	}
	v.index = (v.index + 1) % n
}

func (v *Viewer) Previous() {
	n := len(v.Product.Images)
	if n < 2 {
		return
	}
	v.index = (v.index - 1 + n) % n
}

// Swipe applies a finished horizontal drag from startX to endX.
func (v *Viewer) Swipe(startX, endX float64) {
	switch d := endX - startX; {
	case d < -SwipeThreshold:
		v.Next()
	case d > SwipeThreshold:
		v.Previous()
	}
}

// Gesture tracks one touch or mouse drag. A drag that never moved is a tap
// and does not navigate.
type Gesture struct {
	startX, endX float64
	active       bool
	moved        bool
}

func (g *Gesture) Begin(x float64) {
	*g = Gesture{startX: x, active: true}
}

func (g *Gesture) Move(x float64) {
	if !g.active {
		return
	}
	g.endX = x
	g.moved = true
}

// End closes the gesture and, if it moved, swipes v.
func (g *Gesture) End(v *Viewer) {
	if g.active && g.moved {
		v.Swipe(g.startX, g.endX)
	}
	*g = Gesture{}
}

// EnquiryMessage is the text sent to the store about this product.
func (v *Viewer) EnquiryMessage() string {
	p := v.Product
	return fmt.Sprintf("Hi! I'm interested in:\n\nProduct: %s\nCategory: %s\nAvailable Sizes: %s\n\nCould you please provide more details?",
		p.Name, p.Category, strings.Join(p.Sizes, ", "))
}

// RequestEnquiry opens the confirmation step and returns the message the
// shopper is about to send.
func (v *Viewer) RequestEnquiry() string {
	v.enquiry = true
	return v.EnquiryMessage()
}

func (v *Viewer) CancelEnquiry() {
	v.enquiry = false
}

func (v *Viewer) EnquiryPending() bool { return v.enquiry }

// ConfirmEnquiry closes the confirmation step and returns the deep link
// that opens the chat with the store.
func (v *Viewer) ConfirmEnquiry(number string) (string, error) {
	if !v.enquiry {
		return "", ErrEnquiryNotRequested
	}
	v.enquiry = false
	return whatsapp.Link(number, v.EnquiryMessage()), nil
}
