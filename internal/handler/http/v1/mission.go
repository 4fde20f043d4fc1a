package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tmorozova/animal_rescue_system/internal/models"
)

// @Summary Create a new mission
// @Description Create a new sterilization mission. Polygon is an optional closed ring of [lng, lat] pairs.
// @Tags Missions
// @Accept json
// @Produce json
// @Param mission body CreateMissionRequest true "Mission creation request"
// @Success 201 {object} MissionResponse
// @Failure 400 {object} map[string]string "Invalid request body, validation error or malformed polygon"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /missions [post]
func (h *Handler) createMission(c *gin.Context) {
	var input CreateMissionRequest
	log := h.logger.WithField("method", "createMission")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToMissionModel(input)
	if err := h.missionService.CreateMission(c.Request.Context(), model); err != nil {
		if errors.Is(err, models.ErrInvalidPolygon) {
			log.WithError(err).Warn("Rejected malformed mission polygon")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.WithError(err).Error("Failed to create mission in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToMissionResponse(model))
}

// @Summary Get a list of missions
// @Description Get a paginated list of all missions, newest first.
// @Tags Missions
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} MissionResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /missions [get]
func (h *Handler) listMissions(c *gin.Context) {
	log := h.logger.WithField("method", "listMissions")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	missions, err := h.missionService.ListMissions(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list missions from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToMissionResponses(missions))
}

// @Summary Get mission by ID
// @Description Get a single mission by its ID.
// @Tags Missions
// @Accept json
// @Produce json
// @Param id path string true "Mission ID"
// @Success 200 {object} MissionResponse
// @Failure 400 {object} map[string]string "Invalid mission ID"
// @Failure 404 {object} map[string]string "Mission not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /missions/{id} [get]
func (h *Handler) getMission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mission ID"})
		return
	}
	log := h.logger.WithField("method", "getMission").WithField("id", id)

	mission, err := h.missionService.GetMission(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "mission not found"})
			return
		}
		log.WithError(err).Error("Failed to get mission from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToMissionResponse(mission))
}

// @Summary Update an existing mission
// @Description Update an existing mission by ID.
// @Tags Missions
// @Accept json
// @Produce json
// @Param id path string true "Mission ID"
// @Param mission body UpdateMissionRequest true "Mission update request"
// @Success 200 {object} MissionResponse
// @Failure 400 {object} map[string]string "Invalid mission ID, request body or polygon"
// @Failure 404 {object} map[string]string "Mission not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /missions/{id} [put]
func (h *Handler) updateMission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mission ID"})
		return
	}
	log := h.logger.WithField("method", "updateMission").WithField("id", id)

	var input UpdateMissionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToMissionModel(input)
	model.ID = id

	if err := h.missionService.UpdateMission(c.Request.Context(), model); err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidPolygon):
			log.WithError(err).Warn("Rejected malformed mission polygon")
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, models.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "mission not found"})
		default:
			log.WithError(err).Error("Failed to update mission in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, ModelToMissionResponse(model))
}

// @Summary Delete a mission
// @Description Delete a mission by its ID. Its sightings are removed as well.
// @Tags Missions
// @Accept json
// @Produce json
// @Param id path string true "Mission ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid mission ID"
// @Failure 404 {object} map[string]string "Mission not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /missions/{id} [delete]
func (h *Handler) deleteMission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mission ID"})
		return
	}
	log := h.logger.WithField("method", "deleteMission").WithField("id", id)

	if err := h.missionService.DeleteMission(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "mission not found"})
			return
		}
		log.WithError(err).Error("Failed to delete mission in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get mission statistics
// @Description Get sighting counters, completion percentage and covered area for a mission.
// @Tags Missions
// @Accept json
// @Produce json
// @Param id path string true "Mission ID"
// @Success 200 {object} MissionStatisticsResponse
// @Failure 400 {object} map[string]string "Invalid mission ID"
// @Failure 404 {object} map[string]string "Mission not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /missions/{id}/statistics [get]
func (h *Handler) getMissionStatistics(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mission ID"})
		return
	}
	log := h.logger.WithField("method", "getMissionStatistics").WithField("id", id)

	stats, err := h.missionService.GetStatistics(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "mission not found"})
			return
		}
		log.WithError(err).Error("Failed to get mission statistics from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, MissionStatisticsResponse{
		TotalSightings:       stats.TotalSightings,
		SterilizedCount:      stats.SterilizedCount,
		CompletionPercentage: stats.CompletionPercentage,
		AreaCoveredKm2:       stats.AreaCoveredKm2,
	})
}

// @Summary Get sightings of a mission
// @Description Get sightings of a mission. When the mission has a polygon, only sightings inside it are returned.
// @Tags Missions
// @Accept json
// @Produce json
// @Param id path string true "Mission ID"
// @Success 200 {array} SightingResponse
// @Failure 400 {object} map[string]string "Invalid mission ID"
// @Failure 404 {object} map[string]string "Mission not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /missions/{id}/sightings [get]
func (h *Handler) getMissionSightings(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mission ID"})
		return
	}
	log := h.logger.WithField("method", "getMissionSightings").WithField("id", id)

	sightings, err := h.missionService.ListMissionSightings(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "mission not found"})
			return
		}
		log.WithError(err).Error("Failed to list mission sightings from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToSightingResponses(sightings))
}

// @Summary Get mission dashboard
// @Description Get mission details, KPIs and a GeoJSON FeatureCollection of its sightings.
// @Tags Missions
// @Accept json
// @Produce json
// @Param id path string true "Mission ID"
// @Success 200 {object} MissionDashboardResponse
// @Failure 400 {object} map[string]string "Invalid mission ID"
// @Failure 404 {object} map[string]string "Mission not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /missions/{id}/dashboard [get]
func (h *Handler) getMissionDashboard(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mission ID"})
		return
	}
	log := h.logger.WithField("method", "getMissionDashboard").WithField("id", id)

	dashboard, err := h.missionService.GetDashboard(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "mission not found"})
			return
		}
		log.WithError(err).Error("Failed to get mission dashboard from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, DashboardToResponse(dashboard))
}
