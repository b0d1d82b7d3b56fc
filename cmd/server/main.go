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

	"hospital-coordination-backend/internal/config"
	"hospital-coordination-backend/internal/database"
	"hospital-coordination-backend/internal/handler"
	"hospital-coordination-backend/internal/metrics"
	"hospital-coordination-backend/internal/middleware"
	"hospital-coordination-backend/internal/repository"
	"hospital-coordination-backend/internal/service"
	"hospital-coordination-backend/pkg/logger"
	"hospital-coordination-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hospital-server",
		Short: "Hospital resource coordination API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			log := logger.New(cfg.Server.LogLevel, cfg.Server.LogFormat)

			db, err := database.Connect(cfg, log)
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			log.Info().Msg("database schema is up to date")
			return nil
		},
	}
}

func runServer() error {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log := logger.New(cfg.Server.LogLevel, cfg.Server.LogFormat)
	log.Info().Str("gin_mode", cfg.Server.GinMode).Msg("configuration loaded")

	if cfg.JWT.AccessSecret == "" {
		return errors.New("JWT_ACCESS_SECRET must be set")
	}
	tokens := utils.NewTokenManager(cfg.JWT.AccessSecret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// 2. Initialize database connection
	db, err := database.Connect(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		return err
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	// 3. Initialize repositories
	hospitalRepo := repository.NewHospitalRepo(db)
	patientRepo := repository.NewPatientRepo(db)
	tokenRepo := repository.NewTokenRepo(db)
	auditRepo := repository.NewAuditRepo(db)
	resourceRepo := repository.NewResourceRepo(db)
	doctorRepo := repository.NewDoctorRepo(db)
	profileRepo := repository.NewMedicalProfileRepo(db)
	communityRepo := repository.NewCommunityRepo(db)
	paymentRepo := repository.NewPaymentRepo(db)

	// 4. Initialize services
	var gateway service.PaymentGateway
	if cfg.Stripe.SecretKey != "" {
		gateway = service.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Stripe.WebhookSecret)
	} else {
		log.Warn().Msg("STRIPE_SECRET_KEY not set, payments are disabled")
	}

	authService := service.NewAuthService(hospitalRepo, patientRepo, tokenRepo, auditRepo, tokens)
	hospitalService := service.NewHospitalService(hospitalRepo, resourceRepo)
	resourceService := service.NewResourceService(hospitalRepo, resourceRepo, auditRepo)
	doctorService := service.NewDoctorService(doctorRepo, hospitalRepo, auditRepo)
	profileService := service.NewMedicalProfileService(profileRepo, doctorRepo, auditRepo)
	communityService := service.NewCommunityService(communityRepo, auditRepo)
	paymentService := service.NewPaymentService(gateway, paymentRepo, auditRepo, cfg.Stripe.Currency, log)
	chatbotService := service.NewChatbotService(cfg.Chatbot.BaseURL, cfg.Chatbot.Timeout)

	// 5. Start background token sweeper
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sweeper := service.NewTokenSweeper(tokenRepo, cfg.Maintenance.TokenSweepInterval, log)
	go sweeper.Start(ctx)

	// 6. Setup Gin router
	gin.SetMode(cfg.Server.GinMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(metrics.Middleware())

	routes := handler.Routes{
		DB:      db,
		Tokens:  tokens,
		Limiter: middleware.NewIPRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst),

		Auth:           handler.NewAuthHandler(authService, tokens.RefreshTokenExpiry(), cfg.IsRelease()),
		Hospital:       handler.NewHospitalHandler(hospitalService),
		Resource:       handler.NewResourceHandler(resourceService),
		Doctor:         handler.NewDoctorHandler(doctorService),
		MedicalProfile: handler.NewMedicalProfileHandler(profileService),
		Community:      handler.NewCommunityHandler(communityService),
		Payment:        handler.NewPaymentHandler(paymentService),
		Chatbot:        handler.NewChatbotHandler(chatbotService),
	}
	routes.Register(r)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// 7. Setup graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down server")
	}

	// Stop the sweeper before draining requests
	cancel()
	return shutdown(srv, log)
}

func shutdown(srv *http.Server, log zerolog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	log.Info().Msg("server exited")
	return nil
}
