package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/H4CK3R01P/CodeEX-sub001/internal/services"
	"github.com/H4CK3R01P/CodeEX-sub001/internal/utils"
)

const serviceName = "codeex-learning-service"

type HandlerManager struct {
	onboardingHandler *OnboardingHandler
	dashboardHandler  *DashboardHandler
	domainHandler     *DomainHandler
	health            func(*gin.Context) error
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		onboardingHandler: NewOnboardingHandler(serviceManager.Onboarding(), logger),
		dashboardHandler:  NewDashboardHandler(serviceManager.Dashboard(), serviceManager.Report(), logger),
		domainHandler:     NewDomainHandler(serviceManager.Catalog(), logger),
		health: func(c *gin.Context) error {
			return serviceManager.HealthCheck(c.Request.Context())
		},
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	{
		// Onboarding routes
		sessions := v1.Group("/sessions")
		{
			sessions.POST("", hm.onboardingHandler.StartSession)
			sessions.GET("/:id", hm.onboardingHandler.GetSession)
			sessions.POST("/:id/login", hm.onboardingHandler.SubmitLogin)
			sessions.POST("/:id/otp/verify", hm.onboardingHandler.VerifyOTP)
			sessions.POST("/:id/otp/resend", hm.onboardingHandler.ResendOTP)
			sessions.POST("/:id/otp/back", hm.onboardingHandler.BackToLogin)
			sessions.POST("/:id/profile", hm.onboardingHandler.SelectProfile)
			sessions.POST("/:id/domain", hm.onboardingHandler.SelectDomain)
			sessions.POST("/:id/domain/back", hm.onboardingHandler.BackToProfile)

			// Dashboard routes
			dashboard := sessions.Group("/:id/dashboard")
			{
				dashboard.GET("/navigation", hm.dashboardHandler.GetNavigation)
				dashboard.PUT("/section", hm.dashboardHandler.SwitchSection)
				dashboard.GET("/view", hm.dashboardHandler.GetView)
				dashboard.POST("/coins/open", hm.dashboardHandler.OpenCoins)
				dashboard.POST("/coins/redeem", hm.dashboardHandler.RedeemReward)
				dashboard.POST("/notifications/clear", hm.dashboardHandler.ClearNotifications)
				dashboard.GET("/report.xlsx", hm.dashboardHandler.ExportReport)
			}
		}

		// Domain catalog routes
		domains := v1.Group("/domains")
		{
			domains.GET("", hm.domainHandler.ListDomains)
			domains.GET("/:id", hm.domainHandler.GetDomain)
			domains.GET("/:id/dataset", hm.domainHandler.GetDataset)
			domains.GET("/:id/learn", hm.domainHandler.GetLearnContent)
		}
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		if err := hm.health(c); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"service": serviceName,
				"error":   err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": serviceName,
		})
	})
}

// NewRouter builds a gin engine with middleware and routes installed
func NewRouter(serviceManager services.ServiceManager, logger utils.Logger) *gin.Engine {
	router := gin.New()
	SetupMiddleware(router, logger)
	NewHandlerManager(serviceManager, logger).SetupRoutes(router)
	return router
}
