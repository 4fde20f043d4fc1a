package v1

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tmorozova/animal_rescue_system/internal/models"
)

// parseEmergencyListParams собирает фильтры выборки из query-параметров.
// Радиусный фильтр применяется только при наличии всех трех параметров.
func parseEmergencyListParams(c *gin.Context) models.EmergencyListParams {
	params := models.EmergencyListParams{
		Severity:  c.Query("severity"),
		Status:    c.Query("status"),
		TimeRange: c.Query("time_range"),
	}

	if lat, err := strconv.ParseFloat(c.Query("lat"), 64); err == nil {
		params.Lat = &lat
	}
	if lng, err := strconv.ParseFloat(c.Query("lng"), 64); err == nil {
		params.Lng = &lng
	}
	if radius, err := strconv.ParseFloat(c.Query("radius"), 64); err == nil {
		params.RadiusKm = &radius
	}

	return params
}

// @Summary Create a new emergency report
// @Description Create an emergency report. The reporter is the authenticated caller, status starts as reported.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param emergency body CreateEmergencyRequest true "Emergency creation request"
// @Success 201 {object} EmergencyResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies [post]
func (h *Handler) createEmergency(c *gin.Context) {
	var input CreateEmergencyRequest
	log := h.logger.WithField("method", "createEmergency")

	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

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

	model := DTOToEmergencyModel(input)
	model.ReporterID = user.ID
	model.Reporter = user

	if err := h.emergencyService.CreateEmergency(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create emergency in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToEmergencyResponse(model, time.Now()))
}

// @Summary Get a list of emergency reports
// @Description Get emergency reports filtered by severity, status, location radius and time range.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param severity query string false "Severity filter" Enums(low, medium, high, critical)
// @Param status query string false "Status filter" Enums(reported, assigned, in_progress, resolved, closed)
// @Param lat query number false "Latitude of the search center"
// @Param lng query number false "Longitude of the search center"
// @Param radius query number false "Search radius in kilometers"
// @Param time_range query string false "Created-at window" Enums(1h, 24h, 7d)
// @Success 200 {array} EmergencyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies [get]
func (h *Handler) listEmergencies(c *gin.Context) {
	log := h.logger.WithField("method", "listEmergencies")

	emergencies, err := h.emergencyService.ListEmergencies(c.Request.Context(), parseEmergencyListParams(c))
	if err != nil {
		log.WithError(err).Error("Failed to list emergencies from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToEmergencyResponses(emergencies, time.Now()))
}

// @Summary Get active emergency reports
// @Description Get emergency reports that are not resolved or closed. Other query filters still apply.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} EmergencyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies/active [get]
func (h *Handler) activeEmergencies(c *gin.Context) {
	log := h.logger.WithField("method", "activeEmergencies")

	params := parseEmergencyListParams(c)
	params.ActiveOnly = true

	emergencies, err := h.emergencyService.ListEmergencies(c.Request.Context(), params)
	if err != nil {
		log.WithError(err).Error("Failed to list active emergencies from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToEmergencyResponses(emergencies, time.Now()))
}

// @Summary Get critical emergency reports
// @Description Get emergency reports with critical severity. Other query filters still apply.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} EmergencyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies/critical [get]
func (h *Handler) criticalEmergencies(c *gin.Context) {
	log := h.logger.WithField("method", "criticalEmergencies")

	params := parseEmergencyListParams(c)
	params.CriticalOnly = true

	emergencies, err := h.emergencyService.ListEmergencies(c.Request.Context(), params)
	if err != nil {
		log.WithError(err).Error("Failed to list critical emergencies from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToEmergencyResponses(emergencies, time.Now()))
}

// @Summary Get emergency by ID
// @Description Get a single emergency report by its ID.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Emergency ID"
// @Success 200 {object} EmergencyResponse
// @Failure 400 {object} map[string]string "Invalid emergency ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Emergency not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies/{id} [get]
func (h *Handler) getEmergency(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid emergency ID"})
		return
	}
	log := h.logger.WithField("method", "getEmergency").WithField("id", id)

	emergency, err := h.emergencyService.GetEmergency(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "emergency not found"})
			return
		}
		log.WithError(err).Error("Failed to get emergency from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToEmergencyResponse(emergency, time.Now()))
}

// @Summary Update an existing emergency
// @Description Update an existing emergency by ID. Reporter and status are not changed here.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Emergency ID"
// @Param emergency body UpdateEmergencyRequest true "Emergency update request"
// @Success 200 {object} EmergencyResponse
// @Failure 400 {object} map[string]string "Invalid emergency ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Emergency not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies/{id} [put]
func (h *Handler) updateEmergency(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid emergency ID"})
		return
	}
	log := h.logger.WithField("method", "updateEmergency").WithField("id", id)

	var input UpdateEmergencyRequest
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

	model := DTOToEmergencyModel(input)
	model.ID = id

	if err := h.emergencyService.UpdateEmergency(c.Request.Context(), model); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "emergency not found"})
			return
		}
		if errors.Is(err, models.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid severity"})
			return
		}
		log.WithError(err).Error("Failed to update emergency in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToEmergencyResponse(model, time.Now()))
}

// @Summary Delete an emergency
// @Description Delete an emergency report by its ID.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Emergency ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid emergency ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Emergency not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies/{id} [delete]
func (h *Handler) deleteEmergency(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid emergency ID"})
		return
	}
	log := h.logger.WithField("method", "deleteEmergency").WithField("id", id)

	if err := h.emergencyService.DeleteEmergency(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "emergency not found"})
			return
		}
		log.WithError(err).Error("Failed to delete emergency in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Assign an emergency to a user
// @Description Assign the emergency to a user and move it to the assigned status.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Emergency ID"
// @Param assignment body AssignEmergencyRequest true "Assignment request"
// @Success 200 {object} EmergencyResponse
// @Failure 400 {object} map[string]string "Invalid emergency ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Emergency or user not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies/{id}/assign [post]
func (h *Handler) assignEmergency(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid emergency ID"})
		return
	}
	log := h.logger.WithField("method", "assignEmergency").WithField("id", id)

	var input AssignEmergencyRequest
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

	emergency, err := h.emergencyService.AssignEmergency(c.Request.Context(), id, input.UserID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "emergency or user not found"})
			return
		}
		log.WithError(err).Error("Failed to assign emergency in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToEmergencyResponse(emergency, time.Now()))
}

// @Summary Update emergency status
// @Description Apply a new workflow status. Transition into resolved stamps resolved_at.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Emergency ID"
// @Param status body UpdateEmergencyStatusRequest true "Status update request"
// @Success 200 {object} EmergencyResponse
// @Failure 400 {object} map[string]string "Invalid emergency ID, request body or status value"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Emergency not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies/{id}/update_status [post]
func (h *Handler) updateEmergencyStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid emergency ID"})
		return
	}
	log := h.logger.WithField("method", "updateEmergencyStatus").WithField("id", id)

	var input UpdateEmergencyStatusRequest
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

	emergency, err := h.emergencyService.UpdateEmergencyStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidStatus):
			log.WithError(err).Warn("Rejected unknown status value")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		case errors.Is(err, models.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "emergency not found"})
		default:
			log.WithError(err).Error("Failed to update emergency status in service")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, ModelToEmergencyResponse(emergency, time.Now()))
}

// @Summary Get emergency statistics
// @Description Get aggregate counters over all emergency reports.
// @Tags Emergencies
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} EmergencyStatisticsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergencies/statistics [get]
func (h *Handler) emergencyStatistics(c *gin.Context) {
	log := h.logger.WithField("method", "emergencyStatistics")

	stats, err := h.emergencyService.GetStatistics(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get emergency statistics from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, EmergencyStatisticsResponse{
		Total:         stats.Total,
		Critical:      stats.Critical,
		High:          stats.High,
		Active:        stats.Active,
		ResolvedToday: stats.ResolvedToday,
	})
}
