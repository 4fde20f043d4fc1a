package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tmorozova/animal_rescue_system/internal/models"
)

// @Summary Create a new sighting
// @Description Create a sighting tied to an existing mission. Location outside the mission polygon is allowed.
// @Tags Sightings
// @Accept json
// @Produce json
// @Param sighting body CreateSightingRequest true "Sighting creation request"
// @Success 201 {object} SightingResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 404 {object} map[string]string "Mission not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sightings [post]
func (h *Handler) createSighting(c *gin.Context) {
	var input CreateSightingRequest
	log := h.logger.WithField("method", "createSighting")

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

	model := DTOToSightingModel(input)
	if err := h.sightingService.CreateSighting(c.Request.Context(), model); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "mission not found"})
			return
		}
		log.WithError(err).Error("Failed to create sighting in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToSightingResponse(model))
}

// @Summary Get a list of sightings
// @Description Get a paginated list of all sightings, newest first.
// @Tags Sightings
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} SightingResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sightings [get]
func (h *Handler) listSightings(c *gin.Context) {
	log := h.logger.WithField("method", "listSightings")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	sightings, err := h.sightingService.ListSightings(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list sightings from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToSightingResponses(sightings))
}

// @Summary Get sighting by ID
// @Description Get a single sighting by its ID.
// @Tags Sightings
// @Accept json
// @Produce json
// @Param id path string true "Sighting ID"
// @Success 200 {object} SightingResponse
// @Failure 400 {object} map[string]string "Invalid sighting ID"
// @Failure 404 {object} map[string]string "Sighting not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sightings/{id} [get]
func (h *Handler) getSighting(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sighting ID"})
		return
	}
	log := h.logger.WithField("method", "getSighting").WithField("id", id)

	sighting, err := h.sightingService.GetSighting(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "sighting not found"})
			return
		}
		log.WithError(err).Error("Failed to get sighting from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToSightingResponse(sighting))
}

// @Summary Update an existing sighting
// @Description Update an existing sighting by ID.
// @Tags Sightings
// @Accept json
// @Produce json
// @Param id path string true "Sighting ID"
// @Param sighting body UpdateSightingRequest true "Sighting update request"
// @Success 200 {object} SightingResponse
// @Failure 400 {object} map[string]string "Invalid sighting ID or request body"
// @Failure 404 {object} map[string]string "Sighting or mission not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sightings/{id} [put]
func (h *Handler) updateSighting(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sighting ID"})
		return
	}
	log := h.logger.WithField("method", "updateSighting").WithField("id", id)

	var input UpdateSightingRequest
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

	model := DTOToSightingModel(input)
	model.ID = id

	if err := h.sightingService.UpdateSighting(c.Request.Context(), model); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "sighting not found"})
			return
		}
		log.WithError(err).Error("Failed to update sighting in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToSightingResponse(model))
}

// @Summary Delete a sighting
// @Description Delete a sighting by its ID.
// @Tags Sightings
// @Accept json
// @Produce json
// @Param id path string true "Sighting ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid sighting ID"
// @Failure 404 {object} map[string]string "Sighting not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sightings/{id} [delete]
func (h *Handler) deleteSighting(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sighting ID"})
		return
	}
	log := h.logger.WithField("method", "deleteSighting").WithField("id", id)

	if err := h.sightingService.DeleteSighting(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "sighting not found"})
			return
		}
		log.WithError(err).Error("Failed to delete sighting in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}
