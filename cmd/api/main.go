package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-hiretrack-backend/config"
	_ "go-hiretrack-backend/docs" // Important for Swagger
	v1 "go-hiretrack-backend/internal/delivery/http/v1"
	"go-hiretrack-backend/internal/repository/postgres"
	"go-hiretrack-backend/internal/usecase"
	"go-hiretrack-backend/pkg/database"
	"go-hiretrack-backend/pkg/logger"
	"go-hiretrack-backend/pkg/redis"
	"go-hiretrack-backend/pkg/token"
)

// @title           HireTrack API
// @version         1.0
// @description     Hiring and interview tracking backend.
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
	logger.Log.Info("Starting hiretrack backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiting falls back to memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	interviewRepo := postgres.NewInterviewRepository(dbPool)
	offerRepo := postgres.NewOfferRepository(dbPool)
	feedbackRepo := postgres.NewFeedbackRepository(dbPool)

	// 6. Setup Token Service
	tokens := token.NewService(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	// 7. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	userUC := usecase.NewUserUsecase(userRepo)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, interviewRepo, offerRepo)
	interviewUC := usecase.NewInterviewUsecase(interviewRepo, candidateRepo, feedbackRepo)
	offerUC := usecase.NewOfferUsecase(offerRepo, candidateRepo)
	feedbackUC := usecase.NewFeedbackUsecase(feedbackRepo, interviewRepo)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		CandidateUC: candidateUC,
		InterviewUC: interviewUC,
		OfferUC:     offerUC,
		FeedbackUC:  feedbackUC,
		Tokens:      tokens,
		Config:      cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
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
