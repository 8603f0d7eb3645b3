package v1

import (
	"net/http"
	"time"

	"go-hiretrack-backend/config"
	"go-hiretrack-backend/internal/delivery/http/middleware"
	"go-hiretrack-backend/internal/delivery/http/response"
	"go-hiretrack-backend/internal/domain"
	"go-hiretrack-backend/pkg/token"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC      domain.AuthUsecase
	UserUC      domain.UserUsecase
	CandidateUC domain.CandidateUsecase
	InterviewUC domain.InterviewUsecase
	OfferUC     domain.OfferUsecase
	FeedbackUC  domain.FeedbackUsecase
	Tokens      *token.Service
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.JSON(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public entry points; login attempts are rate limited
	loginLimit := middleware.RateLimit(middleware.LoginRateLimitConfig(
		deps.Config.RateLimitLoginThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	))
	NewAuthHandler(v1, deps.AuthUC, loginLimit)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.Authenticate(deps.Tokens))
	{
		NewUserHandler(protected, deps.UserUC)
		NewCandidateHandler(protected, deps.CandidateUC)
		NewInterviewHandler(protected, deps.InterviewUC)
		NewOfferHandler(protected, deps.OfferUC)
		NewFeedbackHandler(protected, deps.FeedbackUC)
	}

	return r
}
