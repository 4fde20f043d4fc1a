package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты для управления миссиями стерилизации (CRUD + аналитика)
	missions := api.Group("/missions")
	{
		missions.POST("", h.createMission)
		missions.GET("", h.listMissions)
		missions.GET("/:id", h.getMission)
		missions.PUT("/:id", h.updateMission)
		missions.DELETE("/:id", h.deleteMission)
		missions.GET("/:id/statistics", h.getMissionStatistics)
		missions.GET("/:id/sightings", h.getMissionSightings)
		missions.GET("/:id/dashboard", h.getMissionDashboard)
	}

	// Маршруты для наблюдений за животными (CRUD)
	sightings := api.Group("/sightings")
	{
		sightings.POST("", h.createSighting)
		sightings.GET("", h.listSightings)
		sightings.GET("/:id", h.getSighting)
		sightings.PUT("/:id", h.updateSighting)
		sightings.DELETE("/:id", h.deleteSighting)
	}

	// Маршруты заявок о происшествиях. Требуют токен пользователя:
	// автором заявки становится аутентифицированный вызывающий.
	emergencies := api.Group("/emergencies")
	emergencies.Use(TokenAuthMiddleware(h.users, h.logger))
	{
		emergencies.POST("", h.createEmergency)
		emergencies.GET("", h.listEmergencies)
		emergencies.GET("/statistics", h.emergencyStatistics)
		emergencies.GET("/active", h.activeEmergencies)
		emergencies.GET("/critical", h.criticalEmergencies)
		emergencies.GET("/:id", h.getEmergency)
		emergencies.PUT("/:id", h.updateEmergency)
		emergencies.DELETE("/:id", h.deleteEmergency)
		emergencies.POST("/:id/assign", h.assignEmergency)
		emergencies.POST("/:id/update_status", h.updateEmergencyStatus)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
