package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-booking/internal/httperr"
	"github.com/BruksfildServices01/studio-booking/internal/httpresp"
	"github.com/BruksfildServices01/studio-booking/internal/middleware"
	ucSetting "github.com/BruksfildServices01/studio-booking/internal/usecase/setting"
)

type SettingHandler struct {
	upsert *ucSetting.UpsertSettings
}

func NewSettingHandler(upsert *ucSetting.UpsertSettings) *SettingHandler {
	return &SettingHandler{upsert: upsert}
}

type UpdateSettingRequest struct {
	Key   string `json:"key" form:"key"`
	Value string `json:"value" form:"value"`
}

func (h *SettingHandler) Update(c *gin.Context) {
	var req UpdateSettingRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body")
		return
	}

	adminID := c.GetUint(middleware.ContextUserID)
	if err := h.upsert.One(c.Request.Context(), adminID, req.Key, req.Value); err != nil {
		respondError(c, err, "failed_to_update_setting")
		return
	}

	httpresp.Message(c, "Setting updated successfully")
}

// UpdateBatch saves the whole settings form at once.
func (h *SettingHandler) UpdateBatch(c *gin.Context) {
	var req map[string]string
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Expected a JSON object of string values")
		return
	}

	adminID := c.GetUint(middleware.ContextUserID)
	if err := h.upsert.Many(c.Request.Context(), adminID, req); err != nil {
		respondError(c, err, "failed_to_update_settings")
		return
	}

	httpresp.OK(c, gin.H{
		"message": "Settings updated successfully",
		"updated": len(req),
	})
}
