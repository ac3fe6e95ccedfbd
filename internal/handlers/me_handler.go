package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-booking/internal/dto"
	"github.com/BruksfildServices01/studio-booking/internal/httperr"
	"github.com/BruksfildServices01/studio-booking/internal/middleware"
)

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

// GetMe echoes the verified token so the admin console can check a stored
// session before showing the dashboard.
func (h *MeHandler) GetMe(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Access token required")
		return
	}

	resp := gin.H{
		"user": dto.UserDTO{
			ID:       claims.ID,
			Username: claims.Username,
			Role:     claims.Role,
		},
	}
	if claims.ExpiresAt != nil {
		resp["expires_at"] = claims.ExpiresAt.Time
	}

	c.JSON(http.StatusOK, resp)
}
