package main

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"milan/internal/backend"
	"milan/internal/viewer"

	"github.com/go-chi/chi/v5"
)

type productDetail struct {
	Product      backend.Product `json:"product"`
	ImageIndex   int             `json:"image_index"`
	ImageCount   int             `json:"image_count"`
	DisplayImage string          `json:"display_image"`
}

func (app *application) productNotFound(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("product not found", "path", r.URL.Path, "error", err.Error())

	type envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Status  int    `json:"status"`
		Back    string `json:"back"`
	}
	writeJSON(w, http.StatusNotFound, &envelope{
		Message: "product not found",
		Status:  http.StatusNotFound,
		Back:    "/",
	})
}

func (app *application) openViewer(w http.ResponseWriter, r *http.Request) (*viewer.Viewer, bool) {
	v, err := viewer.Open(r.Context(), app.backend, chi.URLParam(r, "productID"))
	if err != nil {
		if errors.Is(err, viewer.ErrNotFound) {
			app.productNotFound(w, r, err)
		} else {
			app.badGatewayResponse(w, r, err)
		}
		return nil, false
	}
	return v, true
}

// navigate moves the carousel of v as the query asks: image picks an image,
// then a swipe of swipe_dx pixels is applied, then nav steps next or prev.
func navigate(v *viewer.Viewer, q url.Values) error {
	if raw := q.Get("image"); raw != "" {
		i, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid image: %q", raw)
		}
		if err := v.Show(i); err != nil {
			return err
		}
	}

	if raw := q.Get("swipe_dx"); raw != "" {
		dx, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("invalid swipe_dx: %q", raw)
		}
		v.Swipe(0, dx)
	}

	switch nav := q.Get("nav"); nav {
	case "":
	case "next":
		v.Next()
	case "prev":
		v.Previous()
	default:
		return fmt.Errorf("invalid nav: %q", nav)
	}
	return nil
}

// GetProduct godoc
//
//	@Summary		Get product detail
//	@Description	Starts the carousel on the primary image. image, swipe_dx and nav move it, in that order.
//	@Tags			Storefront
//	@Produce		json
//	@Param			productID	path	string	true	"Product ID"
//	@Param			image		query	int		false	"Image index to show"
//	@Param			swipe_dx	query	number	false	"Horizontal drag distance in pixels; left swipes go to the next image"
//	@Param			nav			query	string	false	"Step the carousel"	Enums(next, prev)
//	@Success		200	{object}	map[string]interface{}	"Product with viewer state"
//	@Failure		400	{object}	error	"Invalid navigation"
//	@Failure		404	{object}	error	"Product not found"
//	@Failure		502	{object}	error	"Backend unavailable"
//	@Router			/products/{productID} [get]
func (app *application) getProductHandler(w http.ResponseWriter, r *http.Request) {
	v, ok := app.openViewer(w, r)
	if !ok {
		return
	}

	if err := navigate(v, r.URL.Query()); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	detail := productDetail{
		Product:      v.Product,
		ImageIndex:   v.Index(),
		ImageCount:   len(v.Product.Images),
		DisplayImage: v.CurrentImage(),
	}
	if err := app.jsonResponse(w, http.StatusOK, detail); err != nil {
		app.internalServerError(w, r, err)
	}
}

type enquiryPayload struct {
	Confirm   bool   `json:"confirm"`
	Cancel    bool   `json:"cancel"`
	EnquiryID string `json:"enquiry_id"`
}

type enquiryResponse struct {
	Message         string `json:"message"`
	ConfirmRequired bool   `json:"confirm_required"`
	EnquiryID       string `json:"enquiry_id,omitempty"`
	WhatsAppURL     string `json:"whatsapp_url,omitempty"`
}

// productEnquiryHandler is a two call exchange. The first call returns the
// message for the shopper to review and an enquiry_id. Sending that id back
// with confirm returns the link to send the message; with cancel it drops
// the enquiry. Each id is good for one product and one confirmation.
//
//	@Summary		Enquire about a product on WhatsApp
//	@Tags			Storefront
//	@Accept			json
//	@Produce		json
//	@Param			productID	path	string			true	"Product ID"
//	@Param			payload		body	enquiryPayload	false	"Confirmation"
//	@Success		200	{object}	map[string]interface{}	"Message and enquiry id, or WhatsApp link"
//	@Success		204	"Enquiry cancelled"
//	@Failure		400	{object}	error	"Enquiry was not requested"
//	@Failure		404	{object}	error	"Product not found"
//	@Failure		429	{object}	error	"Rate limit exceeded"
//	@Router			/products/{productID}/enquiry [post]
func (app *application) productEnquiryHandler(w http.ResponseWriter, r *http.Request) {
	var payload enquiryPayload
	if r.ContentLength != 0 {
		if err := readJSON(w, r, &payload); err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
	}

	if payload.Cancel {
		app.enquiries.Cancel(payload.EnquiryID)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	v, ok := app.openViewer(w, r)
	if !ok {
		return
	}

	var resp enquiryResponse
	if payload.Confirm {
		link, err := app.enquiries.Confirm(payload.EnquiryID, v, app.config.whatsappNumber)
		if err != nil {
			app.badRequestResponse(w, r, err)
			return
		}
		resp = enquiryResponse{Message: v.EnquiryMessage(), WhatsAppURL: link}
	} else {
		id, msg := app.enquiries.Request(v)
		resp = enquiryResponse{Message: msg, ConfirmRequired: true, EnquiryID: id}
	}

	if err := app.jsonResponse(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}
