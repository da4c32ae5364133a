package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/matchrimoney/docs"
	"github.com/sbilibin2017/matchrimoney/internal/config"
	"github.com/sbilibin2017/matchrimoney/internal/facades"
	"github.com/sbilibin2017/matchrimoney/internal/handlers"
	"github.com/sbilibin2017/matchrimoney/internal/jwt"
	"github.com/sbilibin2017/matchrimoney/internal/logger"
	"github.com/sbilibin2017/matchrimoney/internal/middlewares"
	"github.com/sbilibin2017/matchrimoney/internal/migrations"
	"github.com/sbilibin2017/matchrimoney/internal/repositories"
	"github.com/sbilibin2017/matchrimoney/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// passwordResetTTL is how long a password reset link stays valid.
const passwordResetTTL = time.Hour

// @title Matchrimoney API
// @version 1.0.0
// @description Marketplace for engaged couples who share wedding vendors
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database, Redis, Kafka, mail and picture
// storage, wires the API and serves it until a shutdown signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel, cfg.LogEncoding); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr(),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Domain events
	events := facades.NewEventPublisher(nil, nil)
	if len(cfg.KafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
			BatchTimeout:           10 * time.Millisecond,
			WriteTimeout:           5 * time.Second,
		}
		events = facades.NewEventPublisher(writer, middlewares.AfterCommit)
		log.Infof("Publishing events to %v topic %s", cfg.KafkaBrokers, cfg.KafkaTopic)
	} else {
		log.Warn("KAFKA_BROKERS not set, domain events are disabled")
	}
	defer events.Close()

	mailer := facades.NewMailer(facades.MailConfig{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		User:        cfg.SMTPUser,
		Password:    cfg.SMTPPassword,
		From:        cfg.SMTPFrom,
		FrontendURL: cfg.FrontendURL,
	})

	storage, uploadsDir, err := newPictureStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize picture storage: %w", err)
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(cfg.JWTExp),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	matchReadRepo := repositories.NewMatchReadRepository(db, middlewares.GetTxFromContext)
	matchWriteRepo := repositories.NewMatchWriteRepository(db, middlewares.GetTxFromContext)
	messageReadRepo := repositories.NewMessageReadRepository(db, middlewares.GetTxFromContext)
	messageWriteRepo := repositories.NewMessageWriteRepository(db, middlewares.GetTxFromContext)
	verificationRepo := repositories.NewEmailVerificationRepository(db)
	resetRepo := repositories.NewPasswordResetRepository(rdb, passwordResetTTL)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, verificationRepo, resetRepo, tokens, mailer)
	profileService := services.NewProfileService(userReadRepo, userWriteRepo, storage)
	matchService := services.NewMatchService(userReadRepo, matchReadRepo, matchWriteRepo, messageReadRepo, messageWriteRepo, events)
	messageService := services.NewMessageService(userReadRepo, matchReadRepo, matchWriteRepo, messageReadRepo, messageWriteRepo, events)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)

	r := newRouter(routerDeps{
		db:          db,
		tokener:     tokens,
		auth:        authService,
		profiles:    profileService,
		matches:     matchService,
		messages:    messageService,
		registry:    reg,
		corsOrigins: cfg.CORSOrigins,
		uploadsDir:  uploadsDir,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s", cfg.HTTPAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

// newPictureStorage returns the configured picture storage and, for local
// storage, the directory to serve under /uploads.
func newPictureStorage(ctx context.Context, cfg *config.Config) (services.PictureStorage, string, error) {
	if cfg.StorageDriver == config.StorageS3 {
		s, err := facades.NewS3PictureStorage(ctx, facades.S3Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.StoragePublicURL,
		})
		if err != nil {
			return nil, "", err
		}
		return s, "", nil
	}

	s, err := facades.NewLocalPictureStorage(cfg.StorageLocalDir, cfg.StoragePublicURL)
	if err != nil {
		return nil, "", err
	}
	return s, s.Dir(), nil
}

// routerDeps are the collaborators of the HTTP router.
type routerDeps struct {
	db          *sqlx.DB
	tokener     middlewares.Tokener
	auth        handlers.Authenticator
	profiles    handlers.ProfileManager
	matches     handlers.MatchManager
	messages    handlers.Messenger
	registry    *prometheus.Registry
	corsOrigins []string
	uploadsDir  string
}

// newRouter builds the chi router with all routes and middlewares.
func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{middlewares.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.MetricsMiddleware(middlewares.NewMetrics(d.registry)))

	r.Get("/health", handlers.NewHealthHandler(d.db))
	r.Handle("/metrics", promhttp.HandlerFor(d.registry, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	if d.uploadsDir != "" {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(d.uploadsDir))))
	}

	userID := handlers.UserIDGetter(middlewares.UserIDFromContext)
	tx := middlewares.TxMiddleware(d.db)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", handlers.NewSignupHandler(d.auth))
			r.Post("/login", handlers.NewLoginHandler(d.auth))
			r.Post("/verify-email", handlers.NewVerifyEmailHandler(d.auth))
			r.Post("/resend-verification", handlers.NewResendVerificationHandler(d.auth))
			r.Post("/forgot-password", handlers.NewForgotPasswordHandler(d.auth))
			r.Post("/reset-password", handlers.NewResetPasswordHandler(d.auth))
		})

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(d.tokener))

			r.Route("/users", func(r chi.Router) {
				r.Get("/profile", handlers.NewGetProfileHandler(d.profiles, userID))
				r.Put("/profile", handlers.NewUpdateProfileHandler(d.profiles, userID))
				r.Post("/profile/upload-picture", handlers.NewUploadPictureHandler(d.profiles, userID))
				r.Delete("/profile/remove-picture", handlers.NewRemovePictureHandler(d.profiles, userID))
				r.Put("/profile/change-password", handlers.NewChangePasswordHandler(d.profiles, userID))
				r.Get("/marketplace", handlers.NewMarketplaceHandler(d.profiles, userID))
				r.Get("/{id}", handlers.NewGetUserHandler(d.profiles, userID))
			})

			r.Route("/matches", func(r chi.Router) {
				r.With(tx).Post("/", handlers.NewCreateMatchHandler(d.matches, userID))
				r.Get("/", handlers.NewListMatchesHandler(d.matches, userID))
				r.Get("/{id}", handlers.NewGetMatchHandler(d.matches, userID))
				r.With(tx).Put("/{id}/action", handlers.NewMatchActionHandler(d.matches, userID))
			})

			r.Route("/messages", func(r chi.Router) {
				r.With(tx).Post("/", handlers.NewSendMessageHandler(d.messages, userID))
				r.Get("/conversations", handlers.NewListConversationsHandler(d.messages, userID))
				r.Get("/conversation/{matchId}", handlers.NewGetConversationHandler(d.messages, userID))
				r.Get("/user/{userId}", handlers.NewGetUserConversationHandler(d.messages, userID))
				r.Post("/read", handlers.NewMarkReadHandler(d.messages, userID))
				r.Put("/mark-conversation-read/{matchId}", handlers.NewMarkConversationReadHandler(d.messages, userID))
				r.Get("/unread-count", handlers.NewUnreadCountHandler(d.messages, userID))
			})
		})
	})

	return r
}
