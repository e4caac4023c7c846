package routes

import (
	"net/http"

	coreport "github.com/rotaryroots/hariyo-ban/internal/domain/port/core"
	"github.com/rotaryroots/hariyo-ban/internal/infrastructure/adapter/api/handler"
	"github.com/rotaryroots/hariyo-ban/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	viewsHandler *handler.ViewsHandler,
	donationHandler *handler.DonationHandler,
	roomHandler *handler.RoomHandler,
	paymentHandler *handler.PaymentHandler,
	siteHandler *handler.SiteHandler,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		// Derived read views
		v1.GET("/stats", viewsHandler.GetStats)
		v1.GET("/leaderboard", viewsHandler.GetLeaderboard)
		v1.GET("/leaderboard/organizations", viewsHandler.GetOrganizationLeaderboard)
		v1.POST("/refresh", viewsHandler.Refresh)

		// Donations
		v1.POST("/donations", donationHandler.Initiate)
		v1.GET("/donations/:id", donationHandler.GetByID)
		v1.GET("/users/:userId/donations", donationHandler.ListByUser)

		// Contribution rooms
		v1.POST("/rooms", roomHandler.Create)
		v1.GET("/rooms", roomHandler.List)
		v1.GET("/rooms/:id", roomHandler.Get)
		v1.POST("/rooms/:id/contributions", roomHandler.Contribute)

		// Gateway callbacks
		v1.GET("/payments/esewa/success", paymentHandler.EsewaSuccess)
		v1.GET("/payments/esewa/failure", paymentHandler.EsewaFailure)

		// Sites and admin
		v1.GET("/sites", siteHandler.List)
		v1.POST("/sites", siteHandler.Create)
		v1.GET("/admin/notifications", siteHandler.Notifications)
		v1.PATCH("/admin/notifications/:id/read", siteHandler.MarkNotificationRead)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
