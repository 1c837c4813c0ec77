package main

import (
	"context"
	"time"

	"github.com/Mashrufa2410/Bistro-Boss-Server/internal/auth"
	"github.com/Mashrufa2410/Bistro-Boss-Server/internal/env"
	"github.com/Mashrufa2410/Bistro-Boss-Server/internal/ratelimiter"
	"github.com/Mashrufa2410/Bistro-Boss-Server/internal/service"
	"github.com/Mashrufa2410/Bistro-Boss-Server/internal/store/mongo"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const version = "0.0.0"

//	@title			Bistro Boss Server
//	@description	API for the Bistro Boss restaurant ordering application

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath					/
//
// @securityDefinitions.apiKey	ApiKeyAuth
// @in							header
// @name						Authorization
// @description
func main() {
	_ = godotenv.Load()

	cfg := config{
		addr:   ":" + env.GetString("PORT", "5000"),
		apiURL: env.GetString("EXTERNAL_URL", "localhost:5000"),
		env:    env.GetString("ENV", "development"),
		rateLimiter: ratelimiter.Config{
			RequestsPerTimeFrame: env.GetInt("RATELIMITER_REQUESTS_COUNT", 20),
			TimeFrame:            time.Second * 5,
			Enabled:              env.GetBool("RATE_LIMITER_ENABLED", true),
		},
		mongo: mongoConfig{
			URI:      env.GetString("MONGO_URI", "mongodb://localhost:27017"),
			Database: env.GetString("MONGO_DATABASE", "Bistro-boss"),
			Username: env.GetString("DB_USER", ""),
			Password: env.GetString("DB_PASS", ""),
			Timeout:  time.Second * 10,
		},
		auth: authConfig{
			secret: env.GetString("JWT_SECRET", "example"),
			exp:    time.Hour,
			iss:    "bistroboss",
		},
	}

	// logger
	logger := zap.Must(zap.NewProduction()).Sugar()
	defer logger.Sync()

	// rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	// storage; the client connects lazily, so construction only fails on a
	// bad configuration
	storage, err := mongo.New(mongo.Config{
		URI:      cfg.mongo.URI,
		Database: cfg.mongo.Database,
		Username: cfg.mongo.Username,
		Password: cfg.mongo.Password,
		Timeout:  cfg.mongo.Timeout,
	})
	if err != nil {
		logger.Fatalw("failed to configure MongoDB client", "error", err)
	}

	// liveness ping is best effort: the listener starts either way and
	// requests fail upstream until connectivity returns
	ctx, cancel := context.WithTimeout(context.Background(), cfg.mongo.Timeout)
	if err := storage.Ping(ctx); err != nil {
		logger.Warnw("failed to ping MongoDB, continuing anyway", "error", err)
	} else {
		logger.Info("connected to MongoDB")

		if err := storage.CreateIndexes(ctx); err != nil {
			logger.Warnw("failed to create indexes", "error", err)
		} else {
			logger.Info("MongoDB indexes created successfully")
		}
	}
	cancel()

	// repos
	userRepo := mongo.NewUserRepository(storage.Database())
	menuRepo := mongo.NewMenuRepository(storage.Database())
	reviewRepo := mongo.NewReviewRepository(storage.Database())
	cartRepo := mongo.NewCartRepository(storage.Database())
	auditRepo := mongo.NewRoleAuditRepository(storage.Database())

	// token service
	jwtAuthenticator := auth.NewJWTAuthenticator(cfg.auth.secret, cfg.auth.iss, cfg.auth.iss)

	userService := service.NewUserService(userRepo, auditRepo, logger)

	app := &application{
		config:        cfg,
		logger:        logger,
		rateLimiter:   rateLimiter,
		storage:       storage,
		authenticator: jwtAuthenticator,
		userRepo:      userRepo,
		menuRepo:      menuRepo,
		reviewRepo:    reviewRepo,
		cartRepo:      cartRepo,
		userService:   userService,
	}

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
