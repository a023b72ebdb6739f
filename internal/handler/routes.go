package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"gestao-associado-svc/internal/middleware"
	"gestao-associado-svc/internal/service"
	"gestao-associado-svc/pkg/logger"
)

// Routes sets up all API routes
func SetupRoutes(
	router *gin.Engine,
	authService service.AuthService,
	memberService service.MemberService,
	ledgerService service.LedgerService,
	reportService service.ReportService,
	jwtSecret string,
	logger *logger.Logger,
) {
	// Initialize handlers
	authHandler := NewAuthHandler(authService, logger)
	memberHandler := NewMemberHandler(memberService, authService, logger)
	duesHandler := NewDuesHandler(ledgerService, reportService, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
		}

		// Authenticated routes
		authed := v1.Group("")
		authed.Use(middleware.JWTAuth(jwtSecret))
		{
			authed.PUT("/auth/password", authHandler.ChangePassword)

			// Member routes
			members := authed.Group("/members")
			{
				members.GET("", memberHandler.ListMembers)
				members.GET("/:id", memberHandler.GetMember)
				members.GET("/:id/photo", memberHandler.GetMemberPhoto)
			}

			// Dues routes
			dues := authed.Group("/dues")
			{
				dues.GET("", duesHandler.ListDues)
				dues.GET("/export", duesHandler.ExportDues)
			}

			// Payment routes
			payments := authed.Group("/payments")
			{
				payments.GET("/:id/receipt", duesHandler.GetReceipt)
			}

			// Admin-only routes
			admin := authed.Group("")
			admin.Use(middleware.RequireAdmin())
			{
				admin.POST("/auth/register", authHandler.Register)

				admin.GET("/members/eligible", memberHandler.ListEligible)
				admin.POST("/members", memberHandler.CreateMember)
				admin.PUT("/members/:id", memberHandler.UpdateMember)

				admin.POST("/dues", duesHandler.IssueDue)
				admin.PUT("/dues/:id", duesHandler.UpdateDue)
				admin.PATCH("/dues/:id/status", duesHandler.UpdateDueStatus)
				admin.DELETE("/dues/:id", duesHandler.DeleteDue)
				admin.POST("/dues/:id/payment", duesHandler.RecordPayment)
			}
		}
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "Gestao Associado Service",
	})
}
