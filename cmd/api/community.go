package main

import (
	"net/http"

	"milan/internal/backend"
)

// ListReviews godoc
//
//	@Summary		List customer reviews
//	@Tags			Community
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}	"Reviews"
//	@Failure		502	{object}	error	"Backend unavailable"
//	@Router			/reviews [get]
func (app *application) listReviewsHandler(w http.ResponseWriter, r *http.Request) {
	reviews, err := app.backend.Reviews(r.Context())
	if err != nil {
		app.badGatewayResponse(w, r, err)
		return
	}
	if reviews == nil {
		reviews = []backend.Review{}
	}

	app.jsonResponse(w, http.StatusOK, reviews)
}

// SubmitReview godoc
//
//	@Summary		Submit a review
//	@Tags			Community
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	backend.PublicReview	true	"Review"
//	@Success		201	{object}	map[string]interface{}	"Review submitted"
//	@Failure		400	{object}	error	"Invalid payload"
//	@Failure		429	{object}	error	"Rate limit exceeded"
//	@Router			/reviews [post]
func (app *application) submitReviewHandler(w http.ResponseWriter, r *http.Request) {
	var payload backend.PublicReview
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.backend.SubmitReview(r.Context(), payload); err != nil {
		app.badGatewayResponse(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusCreated, map[string]string{"message": "thank you for your review"})
}

// SubmitFeedback godoc
//
//	@Summary		Send feedback
//	@Tags			Community
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	backend.Feedback	true	"Feedback"
//	@Success		201	{object}	map[string]interface{}	"WhatsApp link"
//	@Failure		400	{object}	error	"Invalid payload"
//	@Failure		429	{object}	error	"Rate limit exceeded"
//	@Router			/feedback [post]
func (app *application) submitFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	var payload backend.Feedback
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	outreach, err := app.backend.SubmitFeedback(r.Context(), payload)
	if err != nil {
		app.badGatewayResponse(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusCreated, outreach)
}
