package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-talent-backend/config"
	v1 "go-talent-backend/internal/delivery/http/v1"
	"go-talent-backend/internal/estimation"
	"go-talent-backend/internal/repository/postgres"
	"go-talent-backend/internal/usecase"
	"go-talent-backend/pkg/auth"
	"go-talent-backend/pkg/database"
	"go-talent-backend/pkg/email"
	"go-talent-backend/pkg/logger"
	"go-talent-backend/pkg/redis"
	"go-talent-backend/pkg/storage"
)

// @title           Talent Backend API
// @version         1.0
// @description     Backend for the recruiting dashboard using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting talent backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Object Storage
	blobs, err := storage.NewClient(storage.Config{
		Endpoint:        cfg.StorageEndpoint,
		AccessKeyID:     cfg.StorageAccessKey,
		SecretAccessKey: cfg.StorageSecretKey,
		Bucket:          cfg.StorageBucket,
		UseSSL:          cfg.StorageUseSSL,
		PublicBaseURL:   cfg.StoragePublicURL,
	})
	if err != nil {
		logger.Log.Error("Failed to connect to object storage", "error", err)
		os.Exit(1)
	}

	// 5. Setup Redis (rate limiting store, in-memory fallback if absent)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 6. Setup Repositories
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	contractRepo := postgres.NewContractRepository(dbPool)
	documentRepo := postgres.NewDocumentRepository(dbPool)

	// 7. Setup Email Service
	emailService := email.NewService(email.Config{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUsername,
		Password:    cfg.SMTPPassword,
		FromEmail:   cfg.SMTPFromEmail,
		CompanyName: cfg.CompanyName,
		DialTimeout: cfg.SMTPDialTimeout,
	})
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - interview emails will be unavailable")
	}

	// 8. Setup UseCases
	estimator := estimation.NewService(rand.New(rand.NewSource(time.Now().UnixNano())))
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, blobs, estimator)
	jobUC := usecase.NewJobUsecase(jobRepo, estimator)
	contractUC := usecase.NewContractUsecase(contractRepo, candidateRepo, blobs)
	documentUC := usecase.NewDocumentUsecase(documentRepo, candidateRepo, blobs)
	notificationUC := usecase.NewNotificationUsecase(emailService)

	// 9. Setup Auth Provider (JWKS for RS256 tokens)
	jwksProvider := auth.NewProvider(cfg.JWKSUrl)

	// 10. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		CandidateUC:    candidateUC,
		JobUC:          jobUC,
		ContractUC:     contractUC,
		DocumentUC:     documentUC,
		NotificationUC: notificationUC,
		JWKSProvider:   jwksProvider,
		Config:         cfg,
	})

	// 11. Start Server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
