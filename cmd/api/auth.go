package main

import (
	"errors"
	"net/http"
	"time"

	"milan/internal/backend"
)

type loginResponse struct {
	Token     string    `json:"token"`
	Subject   string    `json:"subject"`
	ExpiresAt time.Time `json:"expires_at"`
}

// loginHandler exchanges owner credentials with the backend. The token is
// handed to the client, which sends it back as a bearer token.
//
//	@Summary		Owner login
//	@Tags			Owner
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	backend.Credentials	true	"Credentials"
//	@Success		200	{object}	map[string]interface{}	"Token"
//	@Failure		401	{object}	error	"Wrong credentials"
//	@Failure		502	{object}	error	"Backend unavailable"
//	@Router			/owner/login [post]
func (app *application) loginHandler(w http.ResponseWriter, r *http.Request) {
	var payload backend.Credentials
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	token, err := app.backend.Login(r.Context(), payload)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			app.unauthorizedErrorResponse(w, r, err)
			return
		}
		app.badGatewayResponse(w, r, err)
		return
	}

	session, err := app.parser.Parse(token)
	if err != nil {
		app.badGatewayResponse(w, r, err)
		return
	}

	// The backend just issued the token.
	app.owners.store(session, session.Subject)

	app.logger.Infow("owner logged in", "subject", session.Subject)
	app.jsonResponse(w, http.StatusOK, loginResponse{
		Token:     session.Token,
		Subject:   session.Subject,
		ExpiresAt: session.ExpiresAt,
	})
}

// logoutHandler drops the owner's unfinished drafts and the cached backend
// verification of the token. The token itself is forgotten by the client.
//
//	@Summary		Owner logout
//	@Tags			Owner
//	@Success		204	"No Content"
//	@Failure		401	{object}	error	"Unauthorized"
//	@Security		ApiKeyAuth
//	@Router			/owner/logout [post]
func (app *application) logoutHandler(w http.ResponseWriter, r *http.Request) {
	session := getSessionFromContext(r)
	app.owners.forget(session.Token)
	n := app.drafts.DiscardAll(ownerKey(session))
	app.logger.Infow("owner logged out", "subject", session.Subject, "drafts_discarded", n)

	w.WriteHeader(http.StatusNoContent)
}

// sessionHandler confirms with the backend that the token is still honoured.
//
//	@Summary		Verify the owner session
//	@Tags			Owner
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}	"Session"
//	@Failure		401	{object}	error	"Unauthorized"
//	@Security		ApiKeyAuth
//	@Router			/owner/session [get]
func (app *application) sessionHandler(w http.ResponseWriter, r *http.Request) {
	session := getSessionFromContext(r)

	username, err := app.backend.WithToken(session.Token).VerifyOwner(r.Context())
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			app.unauthorizedErrorResponse(w, r, err)
			return
		}
		app.badGatewayResponse(w, r, err)
		return
	}

	app.jsonResponse(w, http.StatusOK, map[string]any{
		"username":      username,
		"authenticated": session.IsAuthenticated(time.Now()),
		"expires_at":    session.ExpiresAt,
	})
}
