package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"milan/docs" //this is required to generate swagger docs
	"milan/internal/auth"
	"milan/internal/backend"
	"milan/internal/catalog"
	"milan/internal/localstore"
	"milan/internal/ratelimiter"
	"milan/internal/viewer"
	"milan/internal/wizard"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config      config
	logger      *zap.SugaredLogger
	backend     *backend.Client
	catalog     *catalog.Service
	carts       localstore.Storage
	cartLocks   shopperLocks
	parser      auth.TokenParser
	owners      *verifiedOwners
	drafts      *wizard.Registry
	enquiries   *viewer.Pending
	rateLimiter ratelimiter.Limiter
}

type config struct {
	addr           string
	apiURL         string
	env            string
	frontendURL    string
	backendURL     string
	whatsappNumber string
	enquiryTTL     time.Duration
	cart           cartConfig
	redis          redisConfig
	db             dbConfig
	auth           authConfig
	drafts         draftConfig
	rateLimiter    ratelimiter.Config
}

type cartConfig struct {
	driver string
	dir    string
	ttl    time.Duration
}

type redisConfig struct {
	addr       string
	maxRetries int
}

type dbConfig struct {
	addr        string
	maxConns    int
	maxIdleTime string
}

type authConfig struct {
	basic basicConfig
	token tokenConfig
}

type tokenConfig struct {
	secret    string
	verifyTTL time.Duration
}

type basicConfig struct {
	user string
	pass string
}

type draftConfig struct {
	idle  time.Duration
	sweep time.Duration
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	origins := []string{"https://*", "http://*"}
	if app.config.frontendURL != "" {
		origins = []string{app.config.frontendURL}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)
		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))
		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)

		r.Get("/catalog", app.listCatalogHandler)
		r.Get("/fresh-arrivals", app.freshArrivalsHandler)

		r.Route("/products/{productID}", func(r chi.Router) {
			r.Get("/", app.getProductHandler)
			r.With(app.RateLimiterMiddleware).Post("/enquiry", app.productEnquiryHandler)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(app.ShopperMiddleware)
			r.Get("/", app.getCartHandler)
			r.Delete("/", app.clearCartHandler)
			r.Post("/items", app.addCartItemHandler)
			r.Delete("/items/{cartID}", app.removeCartItemHandler)
			r.With(app.RateLimiterMiddleware).Post("/enquiry", app.cartEnquiryHandler)
		})

		r.Get("/reviews", app.listReviewsHandler)
		r.With(app.RateLimiterMiddleware).Post("/reviews", app.submitReviewHandler)
		r.With(app.RateLimiterMiddleware).Post("/feedback", app.submitFeedbackHandler)

		r.Route("/owner", func(r chi.Router) {
			r.With(app.RateLimiterMiddleware).Post("/login", app.loginHandler)

			r.Group(func(r chi.Router) {
				r.Use(app.OwnerTokenMiddleware)

				r.Post("/logout", app.logoutHandler)
				r.Get("/session", app.sessionHandler)

				r.Get("/sections", app.listSectionsHandler)
				r.Get("/sections/{section}", app.getSectionHandler)

				r.Get("/products", app.listOwnerProductsHandler)
				r.Delete("/products/{productID}", app.deleteProductHandler)
				r.Post("/products/{productID}/draft", app.editProductDraftHandler)

				r.Post("/drafts", app.createDraftHandler)
				r.Route("/drafts/{draftID}", func(r chi.Router) {
					r.Get("/", app.getDraftHandler)
					r.Patch("/", app.updateDraftHandler)
					r.Delete("/", app.discardDraftHandler)

					r.Post("/images", app.uploadDraftImagesHandler)
					r.Delete("/images/{index}", app.removeDraftImageHandler)
					r.Post("/images/{index}/primary", app.makePrimaryImageHandler)
					r.Post("/detect-color", app.detectColorHandler)
					r.Post("/fabrics", app.addFabricHandler)
					r.Post("/generate-description", app.generateDescriptionHandler)

					r.Post("/next", app.nextStepHandler)
					r.Post("/previous", app.previousStepHandler)
					r.Post("/edit/{step}", app.editFromPreviewHandler)
					r.Post("/publish", app.publishDraftHandler)
				})
			})
		})
	})
	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/v1"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 90,
		ReadTimeout:  time.Second * 30,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env, "backend", app.config.backendURL)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
