package main

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"milan/internal/backend"
	"milan/internal/taxonomy"
	"milan/internal/wizard"

	"github.com/go-chi/chi/v5"
)

const maxUploadMemory = 32 << 20

type draftResponse struct {
	DraftID string      `json:"draft_id"`
	Draft   wizard.View `json:"draft"`
	Warning string      `json:"warning,omitempty"`
}

// author returns wizard actions that call the backend as the current owner.
func (app *application) author(r *http.Request) *wizard.Author {
	return wizard.NewAuthor(app.backend.WithToken(getSessionFromContext(r).Token))
}

// draftError maps wizard and backend failures to responses. Validation
// errors never reached the backend; backend failures left the draft as it was.
func (app *application) draftError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, wizard.ErrDraftNotFound):
		app.notFoundResponse(w, r, err)
	case errors.Is(err, wizard.ErrFabricExists):
		app.conflictResponse(w, r, err)
	case wizard.IsValidation(err):
		app.badRequestResponse(w, r, err)
	default:
		app.ownerBackendError(w, r, err)
	}
}

// withDraft runs fn on the draft named in the url and answers with the
// resulting view, or with fn's error.
func (app *application) withDraft(w http.ResponseWriter, r *http.Request, fn func(wz *wizard.Wizard) error) {
	id := chi.URLParam(r, "draftID")
	owner := ownerKey(getSessionFromContext(r))

	var view wizard.View
	err := app.drafts.With(id, owner, func(wz *wizard.Wizard) error {
		if err := fn(wz); err != nil {
			return err
		}
		view = wz.View()
		return nil
	})
	if err != nil {
		app.draftError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, draftResponse{DraftID: id, Draft: view})
}

// startDraft registers wz and loads the form choices. A draft whose
// choices could not be loaded is still usable; the owner gets a warning.
func (app *application) startDraft(w http.ResponseWriter, r *http.Request, wz *wizard.Wizard) {
	resp := draftResponse{}
	if err := app.author(r).LoadOptions(r.Context(), wz); err != nil {
		app.logger.Warnw("failed to load form data", "error", err.Error())
		resp.Warning = "failed to load form data"
	}

	session := getSessionFromContext(r)
	resp.DraftID = app.drafts.Create(ownerKey(session), wz)
	resp.Draft = wz.View()

	app.logger.Infow("draft started", "draft_id", resp.DraftID, "mode", wz.Mode().String(), "subject", session.Subject)
	app.jsonResponse(w, http.StatusCreated, resp)
}

type createDraftPayload struct {
	Path        string `json:"path"`
	Section     string `json:"section" validate:"omitempty,taxonomy_section"`
	Subcategory string `json:"subcategory"`
	Gender      string `json:"gender"`
	AgeGroup    string `json:"age_group"`
}

// createDraftHandler opens the wizard for a new product, either from the
// add-product route (path) or from the slot fields.
//
//	@Summary		Open the wizard for a new product
//	@Tags			Drafts
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	createDraftPayload	true	"Catalog slot"
//	@Success		201	{object}	map[string]interface{}	"Draft"
//	@Failure		400	{object}	error	"Invalid slot"
//	@Security		ApiKeyAuth
//	@Router			/owner/drafts [post]
func (app *application) createDraftHandler(w http.ResponseWriter, r *http.Request) {
	var payload createDraftPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var (
		slot taxonomy.Slot
		err  error
	)
	if payload.Path != "" {
		slot, err = taxonomy.ParseAddProductPath(payload.Path)
	} else {
		slot = taxonomy.Slot{
			Category:    payload.Section,
			Subcategory: payload.Subcategory,
			Gender:      payload.Gender,
			AgeGroup:    payload.AgeGroup,
		}.Canonical()
		err = slot.Validate()
	}
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	wz, err := wizard.NewAdd(slot)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	app.startDraft(w, r, wz)
}

// EditProductDraft godoc
//
//	@Summary		Open the wizard on an existing product
//	@Tags			Drafts
//	@Produce		json
//	@Param			productID	path	string	true	"Product ID"
//	@Success		201	{object}	map[string]interface{}	"Draft"
//	@Failure		404	{object}	error	"Product not found"
//	@Security		ApiKeyAuth
//	@Router			/owner/products/{productID}/draft [post]
func (app *application) editProductDraftHandler(w http.ResponseWriter, r *http.Request) {
	product, err := app.backend.GetProduct(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		app.ownerBackendError(w, r, err)
		return
	}

	app.startDraft(w, r, wizard.NewEdit(*product))
}

// GetDraft godoc
//
//	@Summary		Get a draft
//	@Tags			Drafts
//	@Produce		json
//	@Param			draftID	path	string	true	"Draft ID"
//	@Success		200	{object}	map[string]interface{}	"Draft"
//	@Failure		404	{object}	error	"Draft not found"
//	@Security		ApiKeyAuth
//	@Router			/owner/drafts/{draftID} [get]
func (app *application) getDraftHandler(w http.ResponseWriter, r *http.Request) {
	app.withDraft(w, r, func(wz *wizard.Wizard) error { return nil })
}

// UpdateDraft godoc
//
//	@Summary		Edit draft fields
//	@Tags			Drafts
//	@Accept			json
//	@Produce		json
//	@Param			draftID	path	string	true	"Draft ID"
//	@Param			payload	body	wizard.Patch	true	"Field edits"
//	@Success		200	{object}	map[string]interface{}	"Draft"
//	@Failure		400	{object}	error	"Invalid edit"
//	@Failure		404	{object}	error	"Draft not found"
//	@Security		ApiKeyAuth
//	@Router			/owner/drafts/{draftID} [patch]
func (app *application) updateDraftHandler(w http.ResponseWriter, r *http.Request) {
	var patch wizard.Patch
	if err := readJSON(w, r, &patch); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(patch); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	app.withDraft(w, r, func(wz *wizard.Wizard) error {
		return wz.Apply(patch)
	})
}

// DiscardDraft godoc
//
//	@Summary		Discard a draft
//	@Tags			Drafts
//	@Param			draftID	path	string	true	"Draft ID"
//	@Success		204	"No Content"
//	@Failure		404	{object}	error	"Draft not found"
//	@Security		ApiKeyAuth
//	@Router			/owner/drafts/{draftID} [delete]
func (app *application) discardDraftHandler(w http.ResponseWriter, r *http.Request) {
	session := getSessionFromContext(r)
	if err := app.drafts.Discard(chi.URLParam(r, "draftID"), ownerKey(session)); err != nil {
		app.draftError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// uploadDraftImagesHandler takes a multipart form with one or more "images"
// files and uploads them in the order given.
//
//	@Summary		Upload product images
//	@Tags			Drafts
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			draftID	path	string	true	"Draft ID"
//	@Param			images	formData	file	true	"Image files"
//	@Success		200	{object}	map[string]interface{}	"Draft"
//	@Failure		400	{object}	error	"Too many images"
//	@Failure		502	{object}	error	"Upload failed"
//	@Security		ApiKeyAuth
//	@Router			/owner/drafts/{draftID}/images [post]
func (app *application) uploadDraftImagesHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, wizard.MaxImages*10<<20)
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid upload: %w", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	headers := r.MultipartForm.File["images"]
	if len(headers) == 0 {
		app.badRequestResponse(w, r, errors.New("no images in the upload"))
		return
	}

	var files []multipart.File
	defer func() {
		for _, f := range files {
			f.Close()
		}
	}()

	uploads := make([]wizard.Upload, 0, len(headers))
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
		files = append(files, f)
		uploads = append(uploads, wizard.Upload{Filename: h.Filename, Content: f})
	}

	author := app.author(r)
	app.withDraft(w, r, func(wz *wizard.Wizard) error {
		n, err := author.UploadImages(r.Context(), wz, uploads)
		if err != nil && n > 0 {
			app.logger.Warnw("image batch stopped", "uploaded", n, "requested", len(uploads), "error", err.Error())
		}
		return err
	})
}

func imageIndex(r *http.Request) (int, error) {
	i, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return 0, wizard.ErrImageIndex
	}
	return i, nil
}

// RemoveDraftImage godoc
//
//	@Summary		Remove a draft image
//	@Tags			Drafts
//	@Produce		json
//	@Param			draftID	path	string	true	"Draft ID"
//	@Param			index	path	int	true	"Image index"
//	@Success		200	{object}	map[string]interface{}	"Draft"
//	@Failure		400	{object}	error	"No such image"
//	@Security		ApiKeyAuth
//	@Router			/owner/drafts/{draftID}/images/{index} [delete]
func (app *application) removeDraftImageHandler(w http.ResponseWriter, r *http.Request) {
	app.withDraft(w, r, func(wz *wizard.Wizard) error {
		i, err := imageIndex(r)
		if err != nil {
			return err
		}
		return wz.RemoveImage(i)
	})
}

// MakePrimaryImage godoc
//
//	@Summary		Mark an image as primary
//	@Tags			Drafts
//	@Produce		json
//	@Param			draftID	path	string	true	"Draft ID"
//	@Param			index	path	int	true	"Image index"
//	@Success		200	{object}	map[string]interface{}	"Draft"
//	@Failure		400	{object}	error	"No such image"
//	@Security		ApiKeyAuth
//	@Router			/owner/drafts/{draftID}/images/{index}/primary [post]
func (app *application) makePrimaryImageHandler(w http.ResponseWriter, r *http.Request) {
	app.withDraft(w, r, func(wz *wizard.Wizard) error {
		i, err := imageIndex(r)
		if err != nil {
			return err
		}
		return wz.MakePrimary(i)
	})
}

// DetectColor godoc
//
//	@Summary		Detect the primary colour
//	@Tags			Drafts
//	@Produce		json
//	@Param			draftID	path	string	true	"Draft ID"
//	@Success		200	{object}	map[string]interface{}	"Draft"
//	@Failure		400	{object}	error	"No image content"
//	@Failure		502	{object}	error	"Detection failed"
//	@Security		ApiKeyAuth
//	@Router			/owner/drafts/{draftID}/detect-color [post]
func (app *application) detectColorHandler(w http.ResponseWriter, r *http.Request) {
	author := app.author(r)
	app.withDraft(w, r, func(wz *wizard.Wizard) error {
		_, err := author.DetectColor(r.Context(), wz)
		return err
	})
}

type addFabricPayload struct {
	FabricName string `json:"fabric_name" validate:"required,max=100"`
}

// AddFabric godoc
//
//	@Summary		Add a custom fabric
//	@Tags			Drafts
//	@Accept			json
//	@Produce		json
//	@Param			draftID	path	string	true	"Draft ID"
//	@Param			payload	body	addFabricPayload	true	"Fabric"
//	@Success		200	{object}	map[string]interface{}	"Draft"
//	@Failure		400	{object}	error	"Blank fabric"
//	@Failure		409	{object}	error	"Fabric exists"
//	@Security		ApiKeyAuth
//	@Router			/owner/drafts/{draftID}/fabrics [post]
func (app *application) addFabricHandler(w http.ResponseWriter, r *http.Request) {
	var payload addFabricPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, wizard.ErrBlankFabric)
		return
	}

	author := app.author(r)
	app.withDraft(w, r, func(wz *wizard.Wizard) error {
		return author.AddCustomFabric(r.Context(), wz, payload.FabricName)
	})
}

// GenerateDescription godoc
//
//	@Summary		Generate the detailed description
//	@Tags			Drafts
//	@Produce		json
//	@Param			draftID	path	string	true	"Draft ID"
//	@Success		200	{object}	map[string]interface{}	"Draft"
//	@Failure		400	{object}	error	"Missing item details"
//	@Failure		502	{object}	error	"Generation failed"
//	@Security		ApiKeyAuth
//	@Router			/owner/drafts/{draftID}/generate-description [post]
func (app *application) generateDescriptionHandler(w http.ResponseWriter, r *http.Request) {
	author := app.author(r)
	app.withDraft(w, r, func(wz *wizard.Wizard) error {
		return author.GenerateDescription(r.Context(), wz)
	})
}

// nextStepHandler may generate the description instead of moving on; the
// draft's step tells the client which happened.
//
//	@Summary		Go to the next step
//	@Tags			Drafts
//	@Produce		json
//	@Param			draftID	path	string	true	"Draft ID"
//	@Success		200	{object}	map[string]interface{}	"Draft"
//	@Failure		400	{object}	error	"Step incomplete"
//	@Security		ApiKeyAuth
//	@Router			/owner/drafts/{draftID}/next [post]
func (app *application) nextStepHandler(w http.ResponseWriter, r *http.Request) {
	author := app.author(r)
	app.withDraft(w, r, func(wz *wizard.Wizard) error {
		_, err := author.Next(r.Context(), wz)
		return err
	})
}

// PreviousStep godoc
//
//	@Summary		Go to the previous step
//	@Tags			Drafts
//	@Produce		json
//	@Param			draftID	path	string	true	"Draft ID"
//	@Success		200	{object}	map[string]interface{}	"Draft"
//	@Failure		404	{object}	error	"Draft not found"
//	@Security		ApiKeyAuth
//	@Router			/owner/drafts/{draftID}/previous [post]
func (app *application) previousStepHandler(w http.ResponseWriter, r *http.Request) {
	app.withDraft(w, r, func(wz *wizard.Wizard) error {
		wz.Previous()
		return nil
	})
}

// EditFromPreview godoc
//
//	@Summary		Jump from the preview to a step
//	@Tags			Drafts
//	@Produce		json
//	@Param			draftID	path	string	true	"Draft ID"
//	@Param			step	path	string	true	"Step name"
//	@Success		200	{object}	map[string]interface{}	"Draft"
//	@Failure		400	{object}	error	"Not at preview"
//	@Security		ApiKeyAuth
//	@Router			/owner/drafts/{draftID}/edit/{step} [post]
func (app *application) editFromPreviewHandler(w http.ResponseWriter, r *http.Request) {
	app.withDraft(w, r, func(wz *wizard.Wizard) error {
		step, err := wizard.ParseStep(chi.URLParam(r, "step"))
		if err != nil {
			return err
		}
		return wz.EditFromPreview(step)
	})
}

// publishDraftHandler creates or updates the product and, on success,
// closes the draft.
//
//	@Summary		Publish the draft
//	@Tags			Drafts
//	@Produce		json
//	@Param			draftID	path	string	true	"Draft ID"
//	@Success		200	{object}	map[string]interface{}	"Product and owner listing route"
//	@Failure		400	{object}	error	"Draft incomplete"
//	@Failure		502	{object}	error	"Backend unavailable"
//	@Security		ApiKeyAuth
//	@Router			/owner/drafts/{draftID}/publish [post]
func (app *application) publishDraftHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "draftID")
	session := getSessionFromContext(r)
	owner := ownerKey(session)
	author := app.author(r)

	var res *wizard.Result
	err := app.drafts.With(id, owner, func(wz *wizard.Wizard) error {
		var err error
		res, err = author.Publish(r.Context(), wz)
		return err
	})
	if err != nil {
		app.draftError(w, r, err)
		return
	}

	if err := app.drafts.Discard(id, owner); err != nil && !errors.Is(err, wizard.ErrDraftNotFound) {
		app.logger.Warnw("failed to close published draft", "draft_id", id, "error", err.Error())
	}

	productID := ""
	if res.Product != nil {
		productID = res.Product.ID
	}
	app.logger.Infow("product published", "draft_id", id, "product_id", productID, "route", res.Route, "subject", session.Subject)

	app.jsonResponse(w, http.StatusOK, res)
}

var _ wizard.Backend = (*backend.Client)(nil)
