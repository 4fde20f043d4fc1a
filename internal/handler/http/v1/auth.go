package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/tmorozova/animal_rescue_system/internal/models"
	"github.com/tmorozova/animal_rescue_system/internal/service"
)

const userContextKey = "authUser"

// TokenAuthMiddleware проверяет токен вызывающего по базе пользователей.
// Токен принимается в заголовке X-API-Key либо как Bearer в Authorization.
// Найденный пользователь кладется в контекст запроса и становится
// автором создаваемых заявок.
func TokenAuthMiddleware(users service.UserRepository, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-API-Key")
		if token == "" {
			auth := c.GetHeader("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API token required"})
			return
		}

		user, err := users.GetByToken(c.Request.Context(), token)
		if err != nil {
			logger.WithField("path", c.Request.URL.Path).Warn("Rejected request with invalid API token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid API token"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// currentUser достает аутентифицированного пользователя из контекста запроса
func currentUser(c *gin.Context) *models.User {
	value, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
