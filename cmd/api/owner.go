package main

import (
	"errors"
	"net/http"

	"milan/internal/backend"
	"milan/internal/catalog"
	"milan/internal/taxonomy"

	"github.com/go-chi/chi/v5"
)

// ListSections godoc
//
//	@Summary		List catalog sections
//	@Tags			Owner
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}	"Sections"
//	@Failure		401	{object}	error	"Unauthorized"
//	@Security		ApiKeyAuth
//	@Router			/owner/sections [get]
func (app *application) listSectionsHandler(w http.ResponseWriter, r *http.Request) {
	app.jsonResponse(w, http.StatusOK, taxonomy.Sections())
}

type sectionResponse struct {
	taxonomy.Section
	Subcategories []taxonomy.Category `json:"subcategories,omitempty"`
}

// GetSection godoc
//
//	@Summary		Get a catalog section
//	@Tags			Owner
//	@Produce		json
//	@Param			section	path	string	true	"Section ID"
//	@Success		200	{object}	map[string]interface{}	"Section"
//	@Failure		404	{object}	error	"Unknown section"
//	@Security		ApiKeyAuth
//	@Router			/owner/sections/{section} [get]
func (app *application) getSectionHandler(w http.ResponseWriter, r *http.Request) {
	sec, ok := taxonomy.Lookup(chi.URLParam(r, "section"))
	if !ok {
		app.notFoundResponse(w, r, taxonomy.ErrUnknownSection)
		return
	}

	resp := sectionResponse{Section: sec}
	if sec.ID == taxonomy.Kids {
		resp.Subcategories = taxonomy.KidsSubcategories()
	}
	app.jsonResponse(w, http.StatusOK, resp)
}

type ownerListing struct {
	Slot           taxonomy.Slot     `json:"slot"`
	AddProductPath string            `json:"add_product_path,omitempty"`
	Products       []catalog.Summary `json:"products"`
}

// listOwnerProductsHandler lists one branch of the owner tree:
// ?section=men&subcategory=shirts or ?section=kids&age_group=0-3&gender=boy[&subcategory=party].
//
//	@Summary		List products of a catalog branch
//	@Tags			Owner
//	@Produce		json
//	@Param			section		query	string	true	"Section"
//	@Param			subcategory	query	string	false	"Subcategory"
//	@Param			gender		query	string	false	"Kids gender"
//	@Param			age_group	query	string	false	"Kids age group"
//	@Success		200	{object}	map[string]interface{}	"Products"
//	@Failure		400	{object}	error	"Invalid branch"
//	@Failure		401	{object}	error	"Unauthorized"
//	@Security		ApiKeyAuth
//	@Router			/owner/products [get]
func (app *application) listOwnerProductsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	slot := taxonomy.Slot{
		Category:    q.Get("section"),
		Subcategory: q.Get("subcategory"),
		Gender:      q.Get("gender"),
		AgeGroup:    q.Get("age_group"),
	}.Canonical()
	if !taxonomy.IsSection(slot.Category) {
		app.badRequestResponse(w, r, taxonomy.ErrUnknownSection)
		return
	}

	products, err := app.backend.ListProducts(r.Context(), slot.Query())
	if err != nil {
		app.badGatewayResponse(w, r, err)
		return
	}
	catalog.Sort(products)

	listing := ownerListing{Slot: slot, Products: make([]catalog.Summary, 0, len(products))}
	for _, p := range products {
		listing.Products = append(listing.Products, catalog.Summary{Product: p, DisplayImage: catalog.DisplayImage(p)})
	}
	// Kids branches need a subcategory before a product can be added.
	if slot.Validate() == nil {
		listing.AddProductPath = slot.AddProductPath()
	}

	app.jsonResponse(w, http.StatusOK, listing)
}

// DeleteProduct godoc
//
//	@Summary		Delete a product
//	@Tags			Owner
//	@Param			productID	path	string	true	"Product ID"
//	@Success		204	"No Content"
//	@Failure		404	{object}	error	"Product not found"
//	@Failure		401	{object}	error	"Unauthorized"
//	@Security		ApiKeyAuth
//	@Router			/owner/products/{productID} [delete]
func (app *application) deleteProductHandler(w http.ResponseWriter, r *http.Request) {
	session := getSessionFromContext(r)
	id := chi.URLParam(r, "productID")

	if err := app.backend.WithToken(session.Token).DeleteProduct(r.Context(), id); err != nil {
		app.ownerBackendError(w, r, err)
		return
	}

	app.logger.Infow("product deleted", "product_id", id, "subject", session.Subject)
	w.WriteHeader(http.StatusNoContent)
}

// ownerBackendError maps a failed owner call to the backend. A token the
// backend no longer accepts sends the owner back to login.
func (app *application) ownerBackendError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *backend.APIError
	switch {
	case errors.Is(err, backend.ErrNotFound):
		app.notFoundResponse(w, r, err)
	case errors.As(err, &apiErr) && (apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden):
		app.unauthorizedErrorResponse(w, r, err)
	default:
		app.badGatewayResponse(w, r, err)
	}
}
