package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/tmorozova/animal_rescue_system/internal/config"
	"github.com/tmorozova/animal_rescue_system/internal/service"
)

type Handler struct {
	missionService   service.MissionService
	sightingService  service.SightingService
	emergencyService service.EmergencyService
	users            service.UserRepository
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(
	missionService service.MissionService,
	sightingService service.SightingService,
	emergencyService service.EmergencyService,
	users service.UserRepository,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		missionService:   missionService,
		sightingService:  sightingService,
		emergencyService: emergencyService,
		users:            users,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
