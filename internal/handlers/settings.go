package handlers

import (
	"net/http"

	"github.com/Raphaon/LoveLanguage/internal/storage"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	store *storage.Service
}

func NewSettingsHandler(store *storage.Service) *SettingsHandler {
	return &SettingsHandler{store: store}
}

// GetSettings godoc
// @Summary      Get application settings
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]interface{}
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetAppSettings())
}

// SaveSettings godoc
// @Summary      Replace application settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body map[string]interface{} true "Settings"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/settings [put]
func (h *SettingsHandler) SaveSettings(c *gin.Context) {
	var settings map[string]interface{}
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.store.SaveAppSettings(settings); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.store.GetAppSettings())
}

// ResetApp godoc
// @Summary      Wipe all persisted application data
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} MessageResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/settings/reset [post]
func (h *SettingsHandler) ResetApp(c *gin.Context) {
	if err := h.store.ResetApp(); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "application data cleared"})
}
