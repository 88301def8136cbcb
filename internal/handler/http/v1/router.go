package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1.
// Чтение открыто, мутирующие и административные маршруты защищены API-ключом.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	auth := APIKeyAuthMiddleware(h.cfg, h.logger)

	donations := api.Group("/donations")
	{
		donations.POST("", auth, h.createDonation)
		donations.GET("", h.listDonations)
		donations.GET("/:id", h.getDonation)
		donations.POST("/:id/reserve", auth, h.reserveDonation)
		donations.GET("/:id/route", h.donationRoute)
		donations.GET("/:id/reservation-defaults", h.reservationDefaults)
	}

	organizations := api.Group("/organizations")
	{
		organizations.POST("", auth, h.registerOrganization)
		organizations.GET("", h.listOrganizations)
	}

	api.GET("/route/plan", h.planRoute)
	api.GET("/map/markers", h.mapMarkers)
	api.GET("/feed", h.liveFeed)
	api.GET("/stats", h.getStats)

	api.GET("/admin/events", auth, h.recentEvents)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
