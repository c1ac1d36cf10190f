package main

import (
	"errors"
	"net/http"
	"slices"

	"milan/internal/backend"
	"milan/internal/cart"
	"milan/internal/localstore"

	"github.com/go-chi/chi/v5"
)

type cartView struct {
	Items []cart.Item `json:"items"`
	Count int         `json:"count"`
}

func newCartView(s *cart.Store) cartView {
	items := s.Items()
	if items == nil {
		items = []cart.Item{}
	}
	return cartView{Items: items, Count: len(items)}
}

// withCart opens the shopper's cart and runs fn while no other request of
// the same shopper can touch it.
func (app *application) withCart(r *http.Request, fn func(s *cart.Store) error) error {
	shopper := getShopperFromContext(r)
	unlock := app.cartLocks.lock(shopper)
	defer unlock()

	s, err := cart.Open(r.Context(), localstore.Namespace(app.carts, "shopper:"+shopper))
	if err != nil {
		return err
	}
	return fn(s)
}

// GetCart godoc
//
//	@Summary		Get the shopper's cart
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}	"Cart"
//	@Failure		500	{object}	error	"Internal Server Error"
//	@Router			/cart [get]
func (app *application) getCartHandler(w http.ResponseWriter, r *http.Request) {
	var view cartView
	err := app.withCart(r, func(s *cart.Store) error {
		view = newCartView(s)
		return nil
	})
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, view)
}

type addCartItemPayload struct {
	ProductID     string `json:"product_id" validate:"required"`
	SelectedSize  string `json:"selected_size" validate:"max=20"`
	SelectedColor string `json:"selected_color" validate:"max=50"`
}

// addCartItemHandler snapshots the product from the backend so the cart
// never holds client-supplied product data.
//
//	@Summary		Add a product to the cart
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	addCartItemPayload	true	"Item"
//	@Success		201	{object}	map[string]interface{}	"Added item and cart"
//	@Failure		400	{object}	error	"Invalid payload"
//	@Failure		404	{object}	error	"Product not found"
//	@Router			/cart/items [post]
func (app *application) addCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var payload addCartItemPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	product, err := app.backend.GetProduct(r.Context(), payload.ProductID)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			app.productNotFound(w, r, err)
			return
		}
		app.badGatewayResponse(w, r, err)
		return
	}

	if payload.SelectedSize != "" && len(product.Sizes) > 0 && !slices.Contains(product.Sizes, payload.SelectedSize) {
		app.badRequestResponse(w, r, errors.New("size is not available for this product"))
		return
	}

	var (
		added cart.Item
		view  cartView
	)
	err = app.withCart(r, func(s *cart.Store) error {
		var err error
		added, err = s.Add(r.Context(), cart.Item{
			Product:       *product,
			SelectedSize:  payload.SelectedSize,
			SelectedColor: payload.SelectedColor,
		})
		view = newCartView(s)
		return err
	})
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusCreated, map[string]any{
		"item": added,
		"cart": view,
	})
}

// RemoveCartItem godoc
//
//	@Summary		Remove an item from the cart
//	@Tags			Cart
//	@Produce		json
//	@Param			cartID	path	string	true	"Cart item ID"
//	@Success		200	{object}	map[string]interface{}	"Cart"
//	@Failure		404	{object}	error	"Item not found"
//	@Router			/cart/items/{cartID} [delete]
func (app *application) removeCartItemHandler(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartID")

	var view cartView
	err := app.withCart(r, func(s *cart.Store) error {
		if err := s.Remove(r.Context(), cartID); err != nil {
			return err
		}
		view = newCartView(s)
		return nil
	})
	if err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, view)
}

// ClearCart godoc
//
//	@Summary		Empty the cart
//	@Tags			Cart
//	@Success		204	"No Content"
//	@Failure		500	{object}	error	"Internal Server Error"
//	@Router			/cart [delete]
func (app *application) clearCartHandler(w http.ResponseWriter, r *http.Request) {
	err := app.withCart(r, func(s *cart.Store) error {
		return s.Clear(r.Context())
	})
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type cartEnquiryPayload struct {
	CartIDs []string `json:"cart_ids" validate:"required,min=1,dive,required"`
}

// CartEnquiry godoc
//
//	@Summary		Enquire about selected cart items
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	cartEnquiryPayload	true	"Selected items"
//	@Success		200	{object}	map[string]interface{}	"WhatsApp link"
//	@Failure		400	{object}	error	"No items selected"
//	@Failure		429	{object}	error	"Rate limit exceeded"
//	@Router			/cart/enquiry [post]
func (app *application) cartEnquiryHandler(w http.ResponseWriter, r *http.Request) {
	var payload cartEnquiryPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, cart.ErrNothingSelected)
		return
	}

	var selected []cart.Item
	err := app.withCart(r, func(s *cart.Store) error {
		var err error
		selected, err = s.Select(payload.CartIDs)
		return err
	})
	if err != nil {
		if errors.Is(err, cart.ErrNothingSelected) {
			app.badRequestResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	items := make([]backend.EnquiryItem, 0, len(selected))
	for _, item := range selected {
		items = append(items, item.Enquiry())
	}

	outreach, err := app.backend.EnquireCart(r.Context(), items)
	if err != nil {
		app.badGatewayResponse(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, outreach)
}
