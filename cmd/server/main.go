// @title Event Listing API
// @version 1.0
// @description Namespaced event listings with registrations, embeddable plugins and iCalendar feeds.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"eventlisting/config"
	_ "eventlisting/docs"
	"eventlisting/internal/adapters/auth"
	"eventlisting/internal/adapters/cache"
	"eventlisting/internal/adapters/email"
	"eventlisting/internal/adapters/feed"
	delivery "eventlisting/internal/delivery/http"
	"eventlisting/internal/delivery/http/controllers"
	"eventlisting/internal/repository/postgres"
	"eventlisting/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Environment, cfg.LogLevel)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	namespaces, err := config.LoadNamespaces(cfg.NamespacesFile)
	if err != nil {
		return err
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	checks := map[string]controllers.HealthCheck{"postgres": db.PingContext}

	pluginCache := cache.NewNoopCache()
	if cfg.RedisURL != "" {
		client, err := cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()
		pluginCache = cache.NewRedisCache(client)
		checks["redis"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }
	} else {
		logger.Info("REDIS_URL not set, plugin output is not cached")
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		ReplyTo:     cfg.Email.ReplyTo,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretKey,
			InsecureSkipVerify: cfg.Email.InsecureSkipTLS,
		},
	}, logger)
	if err != nil {
		return err
	}

	eventRepo := postgres.NewEventRepository(db)
	coordinatorRepo := postgres.NewCoordinatorRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)
	pluginRepo := postgres.NewPluginRepository(db)
	userRepo := postgres.NewUserRepository(db)

	clock := services.Clock{Location: cfg.Location}
	timeout := cfg.RequestTimeout
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	eventService := services.NewEventService(eventRepo, coordinatorRepo, namespaces, clock, cfg.DefaultLanguage, timeout)
	registrationService := services.NewRegistrationService(eventRepo, registrationRepo, coordinatorRepo, emailService, clock, cfg.DefaultLanguage, timeout, logger)
	pluginService := services.NewPluginService(pluginRepo, eventRepo, namespaces, pluginCache, clock, cfg.DefaultLanguage, timeout, logger)
	coordinatorService := services.NewCoordinatorService(coordinatorRepo, userRepo, timeout)
	authService := services.NewAuthService(userRepo, auth.NewBcryptHasher(auth.DefaultCost), auth.NewJWTIssuer(cfg.JWTSecret), cfg.TokenExpiry)

	exporter := &feed.ICalExporter{
		Location:        cfg.Location,
		DefaultLanguage: cfg.DefaultLanguage,
		DetailURL:       detailURL(cfg.PublicBaseURL),
	}

	public := controllers.NewPublicController(logger, eventService, registrationService,
		auth.NewRegistrationMarker(cfg.JWTSecret), namespaces, exporter, cfg.DefaultLanguage, cfg.Location)

	handler := delivery.NewRouter(delivery.Controllers{
		Auth:         controllers.NewAuthController(logger, authService, cfg.TokenExpiry),
		Events:       controllers.NewEventController(logger, eventService, registrationService),
		Coordinators: controllers.NewCoordinatorController(logger, coordinatorService),
		Plugins:      controllers.NewPluginController(logger, pluginService, cfg.DefaultLanguage, cfg.Location),
		Public:       public,
		Health: controllers.NewHealthController(logger, checks),
	}, auth.NewJWTVerifier(cfg.JWTSecret), logger, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr, "env", cfg.Environment, "namespaces", len(namespaces))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// detailURL returns nil without a base URL so feeds omit URL properties.
func detailURL(base string) func(namespace, slug string) string {
	if base == "" {
		return nil
	}
	return func(namespace, slug string) string {
		return fmt.Sprintf("%s/events/%s/%s/", base, namespace, slug)
	}
}
