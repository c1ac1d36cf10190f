package main

import (
	"errors"
	"net/http"

	"milan/internal/catalog"
	"milan/internal/params"
	"milan/internal/taxonomy"
)

type catalogPage struct {
	Products   []catalog.Summary `json:"products"`
	Pagination params.Pagination `json:"pagination"`
}

// listCatalogHandler serves the storefront listing pages:
// /catalog?gender=men&subcategory=shirts or
// /catalog?gender=kids&kids_gender=girl&age_group=4-7&subcategory=party.
//
//	@Summary		List products of a storefront page
//	@Description	New arrivals first. Kids pages also take kids_gender and age_group.
//	@Tags			Storefront
//	@Produce		json
//	@Param			gender		query	string	false	"Section: men, women, kids or accessories"
//	@Param			subcategory	query	string	false	"Subcategory"
//	@Param			kids_gender	query	string	false	"boy or girl"
//	@Param			age_group	query	string	false	"0-3, 4-7, 8-11 or 12-15"
//	@Param			page		query	int		false	"Page number"
//	@Param			limit		query	int		false	"Page size"
//	@Success		200	{object}	map[string]interface{}	"Products page"
//	@Failure		400	{object}	error	"Unknown section"
//	@Failure		502	{object}	error	"Backend unavailable"
//	@Router			/catalog [get]
func (app *application) listCatalogHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	gender := q.Get("gender")
	if gender != "" && !taxonomy.IsSection(gender) {
		app.badRequestResponse(w, r, errors.New("unknown section"))
		return
	}

	f := catalog.ForListing(gender, q.Get("subcategory"), q.Get("kids_gender"), q.Get("age_group"))
	app.writeCatalogPage(w, r, f)
}

// FreshArrivals godoc
//
//	@Summary		List fresh arrivals
//	@Tags			Storefront
//	@Produce		json
//	@Param			page	query	int	false	"Page number"
//	@Param			limit	query	int	false	"Page size"
//	@Success		200	{object}	map[string]interface{}	"Products page"
//	@Failure		502	{object}	error	"Backend unavailable"
//	@Router			/fresh-arrivals [get]
func (app *application) freshArrivalsHandler(w http.ResponseWriter, r *http.Request) {
	app.writeCatalogPage(w, r, catalog.FreshArrivals())
}

func (app *application) writeCatalogPage(w http.ResponseWriter, r *http.Request, f catalog.Filter) {
	products, err := app.catalog.List(r.Context(), f)
	if err != nil {
		app.badGatewayResponse(w, r, err)
		return
	}

	p := params.ParsePagination(r.URL.Query())
	page := catalogPage{
		Products:   params.Slice(products, &p),
		Pagination: p,
	}

	if err := app.jsonResponse(w, http.StatusOK, page); err != nil {
		app.internalServerError(w, r, err)
	}
}
