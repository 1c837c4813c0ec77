package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Mashrufa2410/Bistro-Boss-Server/docs"
	"github.com/Mashrufa2410/Bistro-Boss-Server/internal/auth"
	"github.com/Mashrufa2410/Bistro-Boss-Server/internal/ratelimiter"
	"github.com/Mashrufa2410/Bistro-Boss-Server/internal/repo"
	"github.com/Mashrufa2410/Bistro-Boss-Server/internal/service"
	"github.com/Mashrufa2410/Bistro-Boss-Server/internal/store/mongo"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config        config
	logger        *zap.SugaredLogger
	rateLimiter   ratelimiter.Limiter
	storage       *mongo.Storage
	authenticator auth.Authenticator
	userRepo      repo.UserRepository
	menuRepo      repo.MenuRepository
	reviewRepo    repo.ReviewRepository
	cartRepo      repo.CartRepository
	userService   *service.UserService
}

type config struct {
	addr        string
	env         string
	apiURL      string
	rateLimiter ratelimiter.Config
	mongo       mongoConfig
	auth        authConfig
}

type mongoConfig struct {
	URI      string
	Database string
	Username string
	Password string
	Timeout  time.Duration
}

type authConfig struct {
	secret string
	exp    time.Duration
	iss    string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Get("/", app.rootHandler)
	r.Get("/health", app.healthCheckHandler)

	r.Get("/menu", app.getMenuHandler)
	r.Get("/reviews", app.getReviewsHandler)

	r.Post("/users", app.createUserHandler)
	r.Post("/carts", app.createCartItemHandler)
	r.Get("/carts", app.getCartItemsHandler)
	r.Delete("/carts/{id}", app.deleteCartItemHandler)

	r.Post("/jwt", app.createTokenHandler)

	r.Group(func(r chi.Router) {
		r.Use(app.AuthTokenMiddleware)

		r.Get("/users/admin/{email}", app.getAdminStatusHandler)

		r.Group(func(r chi.Router) {
			r.Use(app.adminRequired)

			r.Get("/users", app.getUsersHandler)
			r.Patch("/users/admin/{id}", app.promoteUserHandler)
			r.Delete("/users/{id}", app.deleteUserHandler)
		})
	})

	docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

	return r
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "Bistro Boss Server"
	docs.SwaggerInfo.Description = "API for the Bistro Boss restaurant ordering application"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		if app.storage != nil {
			if err := app.storage.Close(ctx); err != nil {
				app.logger.Errorw("error closing MongoDB", "error", err)
			} else {
				app.logger.Info("MongoDB connection closed gracefully")
			}
		}

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server have started", "addr", app.config.addr, "env", app.config.env)

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
