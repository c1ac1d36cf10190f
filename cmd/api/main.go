package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime"
	"strconv"
	"time"

	"milan/internal/auth"
	"milan/internal/backend"
	"milan/internal/catalog"
	"milan/internal/db"
	"milan/internal/localstore"
	"milan/internal/ratelimiter"
	"milan/internal/viewer"
	"milan/internal/whatsapp"
	"milan/internal/wizard"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoadRateLimiterConfig retrieves rate limiter settings from environment variables
func LoadRateLimiterConfig() ratelimiter.Config {
	defaultRequests := 20
	defaultEnabled := true
	defaultFrame := time.Minute

	requestsPerTimeFrame := defaultRequests
	if val, exists := os.LookupEnv("RATELIMITER_REQUESTS_COUNT"); exists {
		if parsedVal, err := strconv.Atoi(val); err == nil && parsedVal > 0 {
			requestsPerTimeFrame = parsedVal
		} else {
			fmt.Println("Invalid RATELIMITER_REQUESTS_COUNT, defaulting to", defaultRequests)
		}
	}

	frame := defaultFrame
	if val, exists := os.LookupEnv("RATELIMITER_TIME_FRAME"); exists {
		if parsedVal, err := time.ParseDuration(val); err == nil && parsedVal > 0 {
			frame = parsedVal
		} else {
			fmt.Println("Invalid RATELIMITER_TIME_FRAME, defaulting to", defaultFrame)
		}
	}

	enabled := defaultEnabled
	if val, exists := os.LookupEnv("RATE_LIMITER_ENABLED"); exists {
		if parsedVal, err := strconv.ParseBool(val); err == nil {
			enabled = parsedVal
		} else {
			fmt.Println("Invalid RATE_LIMITER_ENABLED, defaulting to", defaultEnabled)
		}
	}

	return ratelimiter.Config{
		RequestsPerTimeFrame: requestsPerTimeFrame,
		TimeFrame:            frame,
		Enabled:              enabled,
	}
}

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)
	level := zapcore.InfoLevel
	if os.Getenv("ENV") == "development" {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), level)
	return zap.New(core).Sugar(), nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return d
}

var version = "1.0.0"

//	@title			Milan Readymades API
//	@description	Storefront and owner back office for Milan Readymades.

//	@contact.name	Milan Readymades
//	@contact.url	https://wa.me/918072153196

//	@BasePath					/v1
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description

func main() {
	// .env is optional; in containers the environment is set directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	cfg := config{
		addr:           getEnv("ADDR", ":8080"),
		apiURL:         getEnv("EXTERNAL_URL", "localhost:8080"),
		env:            getEnv("ENV", "development"),
		frontendURL:    os.Getenv("FRONTEND_URL"),
		backendURL:     getEnv("BACKEND_URL", "http://localhost:8001"),
		whatsappNumber: getEnv("WHATSAPP_NUMBER", whatsapp.DefaultNumber),
		enquiryTTL:     getEnvDuration("ENQUIRY_TTL", 15*time.Minute),
		cart: cartConfig{
			driver: getEnv("CART_STORAGE", "file"),
			dir:    getEnv("CART_STORAGE_DIR", "./data/carts"),
			ttl:    getEnvDuration("CART_TTL", 30*24*time.Hour),
		},
		redis: redisConfig{
			addr:       getEnv("REDIS_ADDR", "localhost:6379"),
			maxRetries: getEnvInt("REDIS_MAX_RETRIES", 5),
		},
		db: dbConfig{
			addr:        os.Getenv("DB_ADDR"),
			maxConns:    getEnvInt("DB_MAX_CONNS", 10),
			maxIdleTime: os.Getenv("DB_MAX_IDLE_TIME"),
		},
		auth: authConfig{
			basic: basicConfig{
				user: os.Getenv("AUTH_BASIC_USER"),
				pass: os.Getenv("AUTH_BASIC_PASS"),
			},
			token: tokenConfig{
				secret:    os.Getenv("AUTH_TOKEN_SECRET"),
				verifyTTL: getEnvDuration("AUTH_VERIFY_TTL", 5*time.Minute),
			},
		},
		drafts: draftConfig{
			idle:  getEnvDuration("DRAFT_IDLE_TIMEOUT", 2*time.Hour),
			sweep: getEnvDuration("DRAFT_SWEEP_INTERVAL", 10*time.Minute),
		},
		rateLimiter: LoadRateLimiterConfig(),
	}

	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	ctx := context.Background()

	carts, pool, err := openCartStorage(ctx, cfg)
	if err != nil {
		logger.Fatal(err)
	}
	if pool != nil {
		defer pool.Close()
	}
	logger.Infow("cart storage ready", "driver", cfg.cart.driver)

	api := backend.NewClient(cfg.backendURL, &http.Client{Timeout: 30 * time.Second})

	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	app := &application{
		config:      cfg,
		logger:      logger,
		backend:     api,
		catalog:     catalog.NewService(api),
		carts:       carts,
		parser:      auth.NewJWTParser(cfg.auth.token.secret),
		owners:      newVerifiedOwners(cfg.auth.token.verifyTTL),
		drafts:      wizard.NewRegistry(cfg.drafts.idle),
		enquiries:   viewer.NewPending(cfg.enquiryTTL),
		rateLimiter: rateLimiter,
	}

	//Metrics collected http://localhost:8080/v1/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))
	expvar.Publish("drafts", expvar.Func(func() any {
		return app.drafts.Len()
	}))
	expvar.Publish("pending_enquiries", expvar.Func(func() any {
		return app.enquiries.Len()
	}))
	if pool != nil {
		expvar.Publish("database", expvar.Func(func() any {
			s := pool.Stat()
			return map[string]int32{
				"total_conns":    s.TotalConns(),
				"idle_conns":     s.IdleConns(),
				"acquired_conns": s.AcquiredConns(),
			}
		}))
	}

	app.sweepDraftsEvery(cfg.drafts.sweep)
	app.pruneRateLimiterEvery(cfg.rateLimiter.TimeFrame, rateLimiter)

	mux := app.mount()

	logger.Fatal(app.run(mux))
}

// openCartStorage picks where carts are kept. The pool is returned so main
// can close it on shutdown; it is nil for the other drivers.
func openCartStorage(ctx context.Context, cfg config) (localstore.Storage, *pgxpool.Pool, error) {
	switch cfg.cart.driver {
	case "file":
		s, err := localstore.NewFileStore(cfg.cart.dir)
		return s, nil, err
	case "redis":
		rdb, err := localstore.ConnectRedis(ctx, cfg.redis.addr, cfg.redis.maxRetries)
		if err != nil {
			return nil, nil, err
		}
		return localstore.NewRedisStore(rdb, cfg.cart.ttl), nil, nil
	case "postgres":
		pool, err := db.New(cfg.db.addr, int32(cfg.db.maxConns), cfg.db.maxIdleTime)
		if err != nil {
			return nil, nil, err
		}
		store := localstore.NewPostgresStore(pool)
		if err := store.Migrate(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, pool, nil
	default:
		return nil, nil, fmt.Errorf("unknown CART_STORAGE %q (want file, redis or postgres)", cfg.cart.driver)
	}
}
