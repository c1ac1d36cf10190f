package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"sort"
	"strings"

	"milan/internal/backend"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Backend is the part of the backend API the wizard writes through. It has
// to be authenticated as the owner.
type Backend interface {
	UploadImage(ctx context.Context, filename string, content io.Reader) (*backend.UploadedImage, error)
	DetectColor(ctx context.Context, imageBase64 string) (string, error)
	GenerateDescription(ctx context.Context, req backend.DescriptionRequest) (string, error)
	AllFabrics(ctx context.Context) ([]string, error)
	Colors(ctx context.Context) ([]string, error)
	Sizes(ctx context.Context) (backend.SizeOptions, error)
	AddFabric(ctx context.Context, name string) error
	CreateProduct(ctx context.Context, p backend.ProductPayload) (*backend.Product, error)
	UpdateProduct(ctx context.Context, id string, p backend.ProductPayload) (*backend.Product, error)
}

// Author runs the wizard actions that talk to the backend. A failed request
// leaves the wizard as it was before the call.
type Author struct {
	api Backend
}

func NewAuthor(api Backend) *Author {
	return &Author{api: api}
}

// LoadOptions fetches fabrics, colours and sizes in parallel.
func (a *Author) LoadOptions(ctx context.Context, w *Wizard) error {
	var opts Options
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		opts.Fabrics, err = a.api.AllFabrics(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		opts.Colors, err = a.api.Colors(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		opts.Sizes, err = a.api.Sizes(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("load form data: %w", err)
	}
	w.options = opts
	return nil
}

type Upload struct {
	Filename string
	Content  io.Reader
}

// UploadImages sends files one at a time, in order. A batch that would take
// the draft past MaxImages is refused up front. The first failure stops the
// batch; images uploaded before it stay in the draft. It returns how many
// images were added.
func (a *Author) UploadImages(ctx context.Context, w *Wizard, files []Upload) (int, error) {
	if len(w.draft.Images)+len(files) > MaxImages {
		return 0, ErrTooManyImages
	}

	for i, f := range files {
		up, err := a.api.UploadImage(ctx, f.Filename, f.Content)
		if err != nil {
			return i, fmt.Errorf("upload image %q: %w", f.Filename, err)
		}
		w.draft.addImage(Image{URL: up.URL, Base64: up.Base64})
	}
	return len(files), nil
}

// DetectColor asks the backend for the dominant colour of the primary image
// and uses it as the primary colour.
func (a *Author) DetectColor(ctx context.Context, w *Wizard) (string, error) {
	img, ok := w.draft.PrimaryImage()
	if !ok {
		return "", ErrNoImages
	}
	if img.Base64 == "" {
		return "", ErrNoImageContent
	}

	color, err := a.api.DetectColor(ctx, img.Base64)
	if err != nil {
		return "", fmt.Errorf("detect color: %w", err)
	}
	w.detectedColor = color
	w.draft.PrimaryColor = color
	return color, nil
}

// AddCustomFabric registers a new fabric with the backend, adds it to the
// sorted choices and selects it.
func (a *Author) AddCustomFabric(ctx context.Context, w *Wizard, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBlankFabric
	}

	if err := a.api.AddFabric(ctx, name); err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest {
			return fmt.Errorf("%w: %s", ErrFabricExists, name)
		}
		return fmt.Errorf("add fabric: %w", err)
	}

	if !slices.Contains(w.options.Fabrics, name) {
		fabrics := append(slices.Clone(w.options.Fabrics), name)
		sort.Strings(fabrics)
		w.options.Fabrics = fabrics
	}
	w.draft.Fabric = name
	return nil
}

// GenerateDescription fills the detailed description from the item details.
func (a *Author) GenerateDescription(ctx context.Context, w *Wizard) error {
	d := &w.draft
	if !filled(d.ItemName) || !filled(d.ShortDescription) {
		return ErrMissingDetails
	}

	text, err := a.api.GenerateDescription(ctx, backend.DescriptionRequest{
		ItemName:         d.ItemName,
		ShortDescription: d.ShortDescription,
		Category:         d.Slot.Category,
		Subcategory:      d.Slot.Subcategory,
		Fabric:           d.Fabric,
	})
	if err != nil {
		return fmt.Errorf("generate description: %w", err)
	}
	d.DetailedDescription = text
	return nil
}

// Next is Wizard.Next with one addition: leaving the description step with
// an empty description generates one the first time instead of moving on,
// so the owner gets to read it. generated reports that case.
func (a *Author) Next(ctx context.Context, w *Wizard) (generated bool, err error) {
	if w.step == StepDescription && !filled(w.draft.DetailedDescription) && !w.autoGenerated {
		w.autoGenerated = true
		if err := a.GenerateDescription(ctx, w); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, w.Next()
}

// Result is a published product and the owner listing it belongs to.
type Result struct {
	Product *backend.Product `json:"product"`
	Route   string           `json:"route"`
}

// Publish creates or updates the product from the preview. On failure the
// draft is kept so the owner can retry.
func (a *Author) Publish(ctx context.Context, w *Wizard) (*Result, error) {
	if w.step != StepPreview {
		return nil, ErrNotAtPreview
	}

	payload := w.draft.Payload()
	if err := validate.Struct(payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIncomplete, err)
	}

	var (
		p   *backend.Product
		err error
	)
	switch w.mode {
	case ModeEdit:
		p, err = a.api.UpdateProduct(ctx, w.productID, payload)
	default:
		if err := w.draft.Slot.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIncomplete, err)
		}
		p, err = a.api.CreateProduct(ctx, payload)
	}
	if err != nil {
		return nil, fmt.Errorf("publish product: %w", err)
	}

	return &Result{Product: p, Route: w.draft.Slot.ListingPath()}, nil
}
