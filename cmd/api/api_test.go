package main

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"milan/internal/auth"
	"milan/internal/backend"
	"milan/internal/catalog"
	"milan/internal/localstore"
	"milan/internal/ratelimiter"
	"milan/internal/viewer"
	"milan/internal/wizard"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

// fakeBackend is an in-memory stand-in for the REST backend.
type fakeBackend struct {
	mu        sync.Mutex
	products  map[string]backend.Product
	published []backend.ProductPayload
	listQuery []string
	uploads   int
	verified  int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{products: map[string]backend.Product{
		"p1": {
			ID:          "p1",
			Name:        "Linen Shirt",
			Category:    "men",
			Subcategory: "shirts",
			Images:      []backend.ProductImage{{URL: "/img/a"}, {URL: "/img/b", IsPrimary: true}},
			Sizes:       []string{"M", "L"},
			Price:       1499,
		},
		"p2": {
			ID:           "p2",
			Name:         "Oxford Shirt",
			Category:     "men",
			Subcategory:  "shirts",
			Sizes:        []string{"M"},
			Price:        999,
			IsNewArrival: true,
		},
	}}
}

func (f *fakeBackend) routes() http.Handler {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/products", func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.listQuery = append(f.listQuery, r.URL.RawQuery)
			writeJSON(w, http.StatusOK, []backend.Product{f.products["p1"], f.products["p2"]})
		})
		r.Get("/products/{id}", func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			defer f.mu.Unlock()
			p, ok := f.products[chi.URLParam(r, "id")]
			if !ok {
				writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Product not found"})
				return
			}
			writeJSON(w, http.StatusOK, p)
		})
		r.Post("/products", func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Not authenticated"})
				return
			}
			var in backend.ProductPayload
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"detail": err.Error()})
				return
			}
			f.mu.Lock()
			defer f.mu.Unlock()
			f.published = append(f.published, in)
			writeJSON(w, http.StatusOK, backend.Product{ID: "new1", Name: in.Name, Category: in.Category, Subcategory: in.Subcategory})
		})
		r.Get("/metadata/all-fabrics", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string][]string{"fabrics": {"Cotton", "Silk"}})
		})
		r.Get("/metadata/colors", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string][]string{"colors": {"Red", "Blue"}})
		})
		r.Get("/metadata/sizes", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, backend.SizeOptions{Letters: []string{"S", "M"}, Numbers: []string{"28"}})
		})
		r.Post("/upload-image", func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			f.uploads++
			n := f.uploads
			f.mu.Unlock()
			writeJSON(w, http.StatusOK, backend.UploadedImage{
				URL:    "/uploads/" + string(rune('a'+n-1)) + ".jpg",
				Base64: "aW1n",
			})
		})
		r.Post("/generate-description", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"detailed_description": "A crisp cotton shirt."})
		})
		r.Get("/owner/verify", func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			f.verified++
			f.mu.Unlock()

			raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			tok, err := jwt.Parse(raw, func(*jwt.Token) (any, error) { return []byte(testSecret), nil })
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Could not validate credentials"})
				return
			}
			sub, _ := tok.Claims.GetSubject()
			writeJSON(w, http.StatusOK, map[string]any{"username": sub, "authenticated": true})
		})
		r.Post("/owner/login", func(w http.ResponseWriter, r *http.Request) {
			var creds backend.Credentials
			json.NewDecoder(r.Body).Decode(&creds)
			if creds.Password != "right" {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Incorrect username or password"})
				return
			}
			tok, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
				"sub": creds.Username,
				"exp": time.Now().Add(time.Hour).Unix(),
			}).SignedString([]byte(testSecret))
			writeJSON(w, http.StatusOK, map[string]string{"access_token": tok, "token_type": "bearer"})
		})
	})
	return r
}

func newTestApplication(t *testing.T, fb *fakeBackend) *application {
	t.Helper()

	srv := httptest.NewServer(fb.routes())
	t.Cleanup(srv.Close)

	carts, err := localstore.NewFileStore(t.TempDir())
	require.NoError(t, err)

	api := backend.NewClient(srv.URL, srv.Client())
	return &application{
		config: config{
			env:            "test",
			whatsappNumber: "911234567890",
			auth:           authConfig{token: tokenConfig{secret: testSecret, verifyTTL: time.Minute}},
			rateLimiter:    ratelimiter.Config{RequestsPerTimeFrame: 100, TimeFrame: time.Minute},
		},
		logger:      zap.NewNop().Sugar(),
		backend:     api,
		catalog:     catalog.NewService(api),
		carts:       carts,
		parser:      auth.NewJWTParser(testSecret),
		owners:      newVerifiedOwners(time.Minute),
		drafts:      wizard.NewRegistry(time.Hour),
		enquiries:   viewer.NewPending(time.Minute),
		rateLimiter: ratelimiter.NewFixedWindowLimiter(100, time.Minute),
	}
}

func ownerToken(t *testing.T, subject string) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return tok
}

func executeRequest(req *http.Request, mux http.Handler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeData(t *testing.T, rr *httptest.ResponseRecorder, v any) {
	t.Helper()
	env := struct {
		Data any `json:"data"`
	}{Data: v}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
}

func TestCatalog_NewArrivalsFirst(t *testing.T) {
	fb := newFakeBackend()
	mux := newTestApplication(t, fb).mount()

	rr := executeRequest(jsonRequest(t, http.MethodGet, "/v1/catalog?gender=men&subcategory=shirts", nil), mux)
	require.Equal(t, http.StatusOK, rr.Code)

	var page struct {
		Products []catalog.Summary `json:"products"`
	}
	decodeData(t, rr, &page)

	require.Len(t, page.Products, 2)
	assert.Equal(t, "p2", page.Products[0].ID)
	assert.Equal(t, catalog.PlaceholderImage, page.Products[0].DisplayImage)
	assert.Equal(t, "/img/b", page.Products[1].DisplayImage)
	assert.Equal(t, []string{"category=men&subcategory=shirts"}, fb.listQuery)
}

func TestCatalog_UnknownSection(t *testing.T) {
	mux := newTestApplication(t, newFakeBackend()).mount()

	rr := executeRequest(jsonRequest(t, http.MethodGet, "/v1/catalog?gender=pets", nil), mux)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestProduct_NotFound(t *testing.T) {
	mux := newTestApplication(t, newFakeBackend()).mount()

	rr := executeRequest(jsonRequest(t, http.MethodGet, "/v1/products/missing", nil), mux)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestProduct_Carousel(t *testing.T) {
	mux := newTestApplication(t, newFakeBackend()).mount()

	get := func(query string) (*httptest.ResponseRecorder, productDetail) {
		rr := executeRequest(jsonRequest(t, http.MethodGet, "/v1/products/p1"+query, nil), mux)
		var d productDetail
		if rr.Code == http.StatusOK {
			decodeData(t, rr, &d)
		}
		return rr, d
	}

	cases := []struct {
		query string
		index int
		image string
	}{
		{"", 1, "/img/b"},
		{"?nav=next", 0, "/img/a"},
		{"?nav=prev", 0, "/img/a"},
		{"?image=0&nav=next", 1, "/img/b"},
		{"?swipe_dx=-80", 0, "/img/a"},
		{"?swipe_dx=30", 1, "/img/b"},
		{"?image=0&swipe_dx=120", 1, "/img/b"},
	}
	for _, tc := range cases {
		rr, d := get(tc.query)
		require.Equal(t, http.StatusOK, rr.Code, tc.query)
		assert.Equal(t, tc.index, d.ImageIndex, tc.query)
		assert.Equal(t, tc.image, d.DisplayImage, tc.query)
		assert.Equal(t, 2, d.ImageCount, tc.query)
	}

	for _, query := range []string{"?image=2", "?image=x", "?nav=up", "?swipe_dx=far"} {
		rr, _ := get(query)
		assert.Equal(t, http.StatusBadRequest, rr.Code, query)
	}
}

func TestProduct_EnquiryNeedsConfirmation(t *testing.T) {
	mux := newTestApplication(t, newFakeBackend()).mount()

	enquire := func(path string, body any) *httptest.ResponseRecorder {
		return executeRequest(jsonRequest(t, http.MethodPost, path, body), mux)
	}

	// confirming without having been shown the message
	rr := enquire("/v1/products/p1/enquiry", enquiryPayload{Confirm: true})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = enquire("/v1/products/p1/enquiry", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var shown enquiryResponse
	decodeData(t, rr, &shown)
	assert.True(t, shown.ConfirmRequired)
	assert.Empty(t, shown.WhatsAppURL)
	require.NotEmpty(t, shown.EnquiryID)
	assert.Contains(t, shown.Message, "Product: Linen Shirt")

	// the id is tied to the product it was issued for
	rr = enquire("/v1/products/p2/enquiry", enquiryPayload{Confirm: true, EnquiryID: shown.EnquiryID})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = enquire("/v1/products/p1/enquiry", enquiryPayload{Confirm: true, EnquiryID: shown.EnquiryID})
	require.Equal(t, http.StatusOK, rr.Code)
	var sent enquiryResponse
	decodeData(t, rr, &sent)
	assert.False(t, sent.ConfirmRequired)
	u, err := url.Parse(sent.WhatsAppURL)
	require.NoError(t, err)
	assert.Equal(t, "/911234567890", u.Path)
	assert.Equal(t, shown.Message, u.Query().Get("text"))

	rr = enquire("/v1/products/p1/enquiry", enquiryPayload{Confirm: true, EnquiryID: shown.EnquiryID})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = enquire("/v1/products/p1/enquiry", nil)
	decodeData(t, rr, &shown)
	rr = enquire("/v1/products/p1/enquiry", enquiryPayload{Cancel: true, EnquiryID: shown.EnquiryID})
	require.Equal(t, http.StatusNoContent, rr.Code)
	rr = enquire("/v1/products/p1/enquiry", enquiryPayload{Confirm: true, EnquiryID: shown.EnquiryID})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCart_AddAndRemove(t *testing.T) {
	mux := newTestApplication(t, newFakeBackend()).mount()

	add := func(cookie *http.Cookie) *httptest.ResponseRecorder {
		req := jsonRequest(t, http.MethodPost, "/v1/cart/items", map[string]string{
			"product_id":    "p1",
			"selected_size": "M",
		})
		if cookie != nil {
			req.AddCookie(cookie)
		}
		return executeRequest(req, mux)
	}

	rr := add(nil)
	require.Equal(t, http.StatusCreated, rr.Code)

	var shopper *http.Cookie
	for _, c := range rr.Result().Cookies() {
		if c.Name == shopperCookie {
			shopper = c
		}
	}
	require.NotNil(t, shopper, "shopper cookie not set")

	rr = add(shopper)
	require.Equal(t, http.StatusCreated, rr.Code)

	req := jsonRequest(t, http.MethodGet, "/v1/cart", nil)
	req.AddCookie(shopper)
	rr = executeRequest(req, mux)
	require.Equal(t, http.StatusOK, rr.Code)

	var view struct {
		Items []struct {
			ID     string `json:"id"`
			CartID string `json:"cartId"`
		} `json:"items"`
		Count int `json:"count"`
	}
	decodeData(t, rr, &view)
	require.Equal(t, 2, view.Count)
	assert.Equal(t, "p1", view.Items[0].ID)
	assert.NotEqual(t, view.Items[0].CartID, view.Items[1].CartID)

	req = jsonRequest(t, http.MethodDelete, "/v1/cart/items/"+view.Items[0].CartID, nil)
	req.AddCookie(shopper)
	rr = executeRequest(req, mux)
	require.Equal(t, http.StatusOK, rr.Code)
	decodeData(t, rr, &view)
	assert.Equal(t, 1, view.Count)

	// A fresh browser sees an empty cart.
	rr = executeRequest(jsonRequest(t, http.MethodGet, "/v1/cart", nil), mux)
	require.Equal(t, http.StatusOK, rr.Code)
	decodeData(t, rr, &view)
	assert.Equal(t, 0, view.Count)
	assert.NotNil(t, view.Items)
}

func TestCart_RejectsUnknownSize(t *testing.T) {
	mux := newTestApplication(t, newFakeBackend()).mount()

	rr := executeRequest(jsonRequest(t, http.MethodPost, "/v1/cart/items", map[string]string{
		"product_id":    "p1",
		"selected_size": "XXL",
	}), mux)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestOwner_RequiresToken(t *testing.T) {
	mux := newTestApplication(t, newFakeBackend()).mount()

	rr := executeRequest(jsonRequest(t, http.MethodGet, "/v1/owner/sections", nil), mux)
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	var body struct {
		Redirect string `json:"redirect"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "/login", body.Redirect)
}

func TestDebugVars_BasicAuth(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("metrics-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	app := newTestApplication(t, newFakeBackend())
	app.config.auth.basic = basicConfig{user: "ops", pass: string(hash)}
	mux := app.mount()

	cases := []struct {
		name string
		user string
		pass string
		want int
	}{
		{"hashed_password", "ops", "metrics-pass", http.StatusOK},
		{"wrong_password", "ops", "nope", http.StatusUnauthorized},
		{"wrong_user", "admin", "metrics-pass", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := jsonRequest(t, http.MethodGet, "/v1/debug/vars", nil)
			req.SetBasicAuth(tc.user, tc.pass)
			assert.Equal(t, tc.want, executeRequest(req, mux).Code)
		})
	}
}

func TestOwner_Login(t *testing.T) {
	mux := newTestApplication(t, newFakeBackend()).mount()

	t.Run("accepted", func(t *testing.T) {
		rr := executeRequest(jsonRequest(t, http.MethodPost, "/v1/owner/login", backend.Credentials{
			Username: "owner", Password: "right",
		}), mux)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp loginResponse
		decodeData(t, rr, &resp)
		assert.Equal(t, "owner", resp.Subject)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong_password", func(t *testing.T) {
		rr := executeRequest(jsonRequest(t, http.MethodPost, "/v1/owner/login", backend.Credentials{
			Username: "owner", Password: "wrong",
		}), mux)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

// With no token secret the claims are unchecked, so the backend has to vouch
// for a token before its subject can touch anyone's drafts.
func TestOwner_ForgedTokenCannotDiscardDrafts(t *testing.T) {
	fb := newFakeBackend()
	app := newTestApplication(t, fb)
	app.config.auth.token.secret = ""
	app.parser = auth.NewJWTParser("")
	mux := app.mount()

	owner := ownerClient{t: t, mux: mux, token: ownerToken(t, "owner")}
	d := owner.draft(http.MethodPost, "/v1/owner/drafts", map[string]string{
		"section": "women", "subcategory": "ethnic",
	}, http.StatusCreated)
	require.Equal(t, 1, app.drafts.Len())

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "owner",
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("attacker-guess"))
	require.NoError(t, err)
	attacker := ownerClient{t: t, mux: mux, token: forged}

	rr := attacker.do(http.MethodPost, "/v1/owner/logout", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	rr = attacker.do(http.MethodGet, "/v1/owner/drafts/"+d.DraftID, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	assert.Equal(t, 1, app.drafts.Len())
	rr = owner.do(http.MethodGet, "/v1/owner/drafts/"+d.DraftID, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestOwner_VerificationIsCached(t *testing.T) {
	fb := newFakeBackend()
	app := newTestApplication(t, fb)
	app.config.auth.token.secret = ""
	app.parser = auth.NewJWTParser("")
	owner := ownerClient{t: t, mux: app.mount(), token: ownerToken(t, "owner")}

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, owner.do(http.MethodGet, "/v1/owner/sections", nil).Code)
	}
	assert.Equal(t, 1, fb.verified)
	assert.Equal(t, 1, app.owners.Len())

	require.Equal(t, http.StatusNoContent, owner.do(http.MethodPost, "/v1/owner/logout", nil).Code)
	assert.Equal(t, 0, app.owners.Len())
}

type draftBody struct {
	DraftID string `json:"draft_id"`
	Warning string `json:"warning"`
	Draft   struct {
		Step        string `json:"step"`
		CanAdvance  bool   `json:"can_advance"`
		ListingPath string `json:"listing_path"`
		Images      []struct {
			URL       string `json:"url"`
			IsPrimary bool   `json:"is_primary"`
		} `json:"images"`
		DetailedDescription string `json:"detailed_description"`
	} `json:"draft"`
}

type ownerClient struct {
	t     *testing.T
	mux   http.Handler
	token string
}

func (c ownerClient) do(method, path string, body any) *httptest.ResponseRecorder {
	req := jsonRequest(c.t, method, path, body)
	req.Header.Set("Authorization", "Bearer "+c.token)
	return executeRequest(req, c.mux)
}

func (c ownerClient) draft(method, path string, body any, wantStatus int) draftBody {
	c.t.Helper()
	rr := c.do(method, path, body)
	require.Equal(c.t, wantStatus, rr.Code, rr.Body.String())
	var d draftBody
	decodeData(c.t, rr, &d)
	return d
}

func (c ownerClient) upload(path string, names ...string) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, name := range names {
		part, err := mw.CreateFormFile("images", name)
		require.NoError(c.t, err)
		part.Write([]byte("fake image bytes"))
	}
	require.NoError(c.t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, path, &buf)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.token)
	return executeRequest(req, c.mux)
}

func TestDraft_AddProductFlow(t *testing.T) {
	fb := newFakeBackend()
	owner := ownerClient{t: t, mux: newTestApplication(t, fb).mount(), token: ownerToken(t, "owner")}

	d := owner.draft(http.MethodPost, "/v1/owner/drafts", map[string]string{
		"path": "/owner/add-product/men/shirts",
	}, http.StatusCreated)
	require.NotEmpty(t, d.DraftID)
	assert.Empty(t, d.Warning)
	assert.Equal(t, "images", d.Draft.Step)
	assert.False(t, d.Draft.CanAdvance)

	base := "/v1/owner/drafts/" + d.DraftID

	rr := owner.do(http.MethodPost, base+"/next", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = owner.upload(base+"/images", "front.jpg", "back.jpg")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	decodeData(t, rr, &d)
	require.Len(t, d.Draft.Images, 2)
	assert.True(t, d.Draft.Images[0].IsPrimary)

	d = owner.draft(http.MethodPost, base+"/images/1/primary", nil, http.StatusOK)
	assert.True(t, d.Draft.Images[1].IsPrimary)
	assert.False(t, d.Draft.Images[0].IsPrimary)

	next := func(want string) {
		t.Helper()
		d = owner.draft(http.MethodPost, base+"/next", nil, http.StatusOK)
		require.Equal(t, want, d.Draft.Step)
	}
	patch := func(body map[string]any) {
		t.Helper()
		owner.draft(http.MethodPatch, base, body, http.StatusOK)
	}

	next("fabric")
	patch(map[string]any{"fabric": "Cotton"})
	next("primary-color")
	patch(map[string]any{"primary_color": "White"})
	next("other-colors")
	next("sizes")
	patch(map[string]any{"sizes": []string{"M", "L"}})
	next("item-details")
	patch(map[string]any{"item_name": "Cotton Shirt", "short_description": "Everyday shirt"})
	next("description")

	// The first attempt to leave an empty description fills it in instead.
	next("description")
	assert.Equal(t, "A crisp cotton shirt.", d.Draft.DetailedDescription)

	next("price")
	patch(map[string]any{"exact_price": 1500})
	next("fresh-arrival-tag")
	next("show-in-fresh-arrivals")
	next("preview")

	rr = owner.do(http.MethodPost, base+"/publish", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var res struct {
		Product backend.Product `json:"product"`
		Route   string          `json:"route"`
	}
	decodeData(t, rr, &res)
	assert.Equal(t, "new1", res.Product.ID)
	assert.Equal(t, "/owner/products/men/shirts", res.Route)

	require.Len(t, fb.published, 1)
	sent := fb.published[0]
	assert.Equal(t, "men", sent.Category)
	assert.Equal(t, "shirts", sent.Subcategory)
	assert.Equal(t, 1500.0, sent.Price)
	require.Len(t, sent.Images, 2)
	assert.True(t, sent.Images[1].IsPrimary)

	rr = owner.do(http.MethodGet, base, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDraft_EditFromPreviewReturns(t *testing.T) {
	fb := newFakeBackend()
	fb.products["p3"] = backend.Product{
		ID:               "p3",
		Name:             "Party Frock",
		ShortDescription: "Twirl ready",
		Description:      "A frock.",
		Category:         "kids",
		Subcategory:      "party",
		Gender:           "girl",
		AgeGroup:         "4-7",
		Images:           []backend.ProductImage{{URL: "/img/a", IsPrimary: true}, {URL: "/img/b"}},
		Fabric:           "Silk",
		PrimaryColor:     "Pink",
		Sizes:            []string{"4Y"},
		Price:            2100,
	}
	owner := ownerClient{t: t, mux: newTestApplication(t, fb).mount(), token: ownerToken(t, "owner")}

	d := owner.draft(http.MethodPost, "/v1/owner/products/p3/draft", nil, http.StatusCreated)
	base := "/v1/owner/drafts/" + d.DraftID
	for d.Draft.Step != "preview" {
		d = owner.draft(http.MethodPost, base+"/next", nil, http.StatusOK)
	}

	d = owner.draft(http.MethodPost, base+"/edit/sizes", nil, http.StatusOK)
	assert.Equal(t, "sizes", d.Draft.Step)

	d = owner.draft(http.MethodPost, base+"/next", nil, http.StatusOK)
	assert.Equal(t, "preview", d.Draft.Step)

	rr := owner.do(http.MethodPost, base+"/edit/preview", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDraft_ScopedToOwner(t *testing.T) {
	mux := newTestApplication(t, newFakeBackend()).mount()
	alice := ownerClient{t: t, mux: mux, token: ownerToken(t, "alice")}
	bob := ownerClient{t: t, mux: mux, token: ownerToken(t, "bob")}

	d := alice.draft(http.MethodPost, "/v1/owner/drafts", map[string]string{
		"section": "women", "subcategory": "ethnic",
	}, http.StatusCreated)

	rr := bob.do(http.MethodGet, "/v1/owner/drafts/"+d.DraftID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = alice.do(http.MethodPost, "/v1/owner/logout", nil)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = alice.do(http.MethodGet, "/v1/owner/drafts/"+d.DraftID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestBadRequest_NamesJSONFields(t *testing.T) {
	mux := newTestApplication(t, newFakeBackend()).mount()

	rr := executeRequest(jsonRequest(t, http.MethodPost, "/v1/cart/items", map[string]string{}), mux)
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "invalid product_id: required", body.Message)
}

func TestDraft_RejectsUnknownSlot(t *testing.T) {
	owner := ownerClient{t: t, mux: newTestApplication(t, newFakeBackend()).mount(), token: ownerToken(t, "owner")}

	rr := owner.do(http.MethodPost, "/v1/owner/drafts", map[string]string{
		"section": "pets", "subcategory": "collars",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestDraft_AcceptsLauncherAliases(t *testing.T) {
	owner := ownerClient{t: t, mux: newTestApplication(t, newFakeBackend()).mount(), token: ownerToken(t, "owner")}

	cases := map[string]string{
		"/owner/add-product/women/western-wears":  "/owner/products/women/western",
		"/owner/add-product/women/casual-wears":   "/owner/products/women/casual",
		"/owner/add-product/accessories/kerchief": "/owner/products/accessories/handkerchiefs",
		"/owner/add-product/men/accessories":      "/owner/products/men/accessories",
	}
	for path, listing := range cases {
		d := owner.draft(http.MethodPost, "/v1/owner/drafts", map[string]string{"path": path}, http.StatusCreated)
		assert.Equal(t, listing, d.Draft.ListingPath, path)
	}

	d := owner.draft(http.MethodPost, "/v1/owner/drafts", map[string]string{
		"section": "women", "subcategory": "bottom-wears",
	}, http.StatusCreated)
	assert.Equal(t, "/owner/products/women/bottomwear", d.Draft.ListingPath)
}
