package v1

import (
	"net/http"
	"time"

	"go-talent-backend/config"
	"go-talent-backend/internal/delivery/http/middleware"
	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	CandidateUC    domain.CandidateUsecase
	JobUC          domain.JobUsecase
	ContractUC     domain.ContractUsecase
	DocumentUC     domain.DocumentUsecase
	NotificationUC domain.NotificationUsecase
	JWKSProvider   *auth.Provider
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		response.Error(c, http.StatusMethodNotAllowed, "Méthode non autorisée", nil)
	})

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global middlewares: CORS first so even rejected requests carry headers
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Interview emails: public contract, but throttled hard since each
	// accepted request reaches the SMTP relay.
	emails := v1.Group("")
	emails.Use(middleware.RateLimitMiddleware(middleware.EmailRateLimitConfig(deps.Config.RateLimitEmailThreshold, window)))
	NewNotificationHandler(emails, deps.NotificationUC)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config))
	{
		NewCandidateHandler(protected, deps.CandidateUC)
		NewJobHandler(protected, deps.JobUC)
		NewContractHandler(protected, deps.ContractUC)
		NewDocumentHandler(protected, deps.DocumentUC)
	}

	return r
}
