package handlers

import (
	"net/http"
	"strconv"

	"github.com/Raphaon/LoveLanguage/internal/models"
	"github.com/Raphaon/LoveLanguage/internal/services"

	"github.com/gin-gonic/gin"
)

type GestureHandler struct {
	gestureService *services.GestureService
}

func NewGestureHandler(gestureService *services.GestureService) *GestureHandler {
	return &GestureHandler{gestureService: gestureService}
}

type FavoriteResponse struct {
	ID       string `json:"id"`
	Favorite bool   `json:"favorite"`
}

// ListGestures godoc
// @Summary      List gesture suggestions
// @Description  All filters are optional and combined with AND
// @Tags         gestures
// @Produce      json
// @Param        language query string false "Love language code"
// @Param        relationship query string false "Relationship type"
// @Param        category query string false "Gesture category"
// @Param        search query string false "Free-text search"
// @Param        favorites query bool false "Only favorites"
// @Success      200 {array} Gesture
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/gestures [get]
func (h *GestureHandler) ListGestures(c *gin.Context) {
	var filter models.GestureFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	gestures, err := h.gestureService.Filter(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if gestures == nil {
		gestures = []models.Gesture{}
	}

	c.JSON(http.StatusOK, gestures)
}

// RandomGesture godoc
// @Summary      Draw a random gesture suggestion
// @Description  Avoids recently drawn gestures until the pool is exhausted
// @Tags         gestures
// @Produce      json
// @Param        language query string false "Love language code"
// @Param        relationship query string false "Relationship type"
// @Param        category query string false "Gesture category"
// @Success      200 {object} Gesture
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/gestures/random [get]
func (h *GestureHandler) RandomGesture(c *gin.Context) {
	var filter models.GestureFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	gesture, err := h.gestureService.RandomSuggestion(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if gesture == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no gesture matches the filter"})
		return
	}

	c.JSON(http.StatusOK, gesture)
}

// ToggleFavorite godoc
// @Summary      Toggle a gesture favorite
// @Tags         gestures
// @Produce      json
// @Param        id path string true "Gesture ID"
// @Success      200 {object} FavoriteResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/gestures/{id}/favorite [post]
func (h *GestureHandler) ToggleFavorite(c *gin.Context) {
	id := c.Param("id")

	favorite, err := h.gestureService.ToggleFavorite(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, FavoriteResponse{ID: id, Favorite: favorite})
}

// ListFavorites godoc
// @Summary      List favorite gestures
// @Tags         gestures
// @Produce      json
// @Success      200 {array} Gesture
// @Router       /api/v1/gestures/favorites [get]
func (h *GestureHandler) ListFavorites(c *gin.Context) {
	gestures, err := h.gestureService.Filter(c.Request.Context(), models.GestureFilter{FavoritesOnly: true})
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if gestures == nil {
		gestures = []models.Gesture{}
	}

	c.JSON(http.StatusOK, gestures)
}

// Statistics godoc
// @Summary      Gesture catalogue statistics
// @Tags         gestures
// @Produce      json
// @Success      200 {object} services.GestureStatistics
// @Router       /api/v1/gestures/statistics [get]
func (h *GestureHandler) Statistics(c *gin.Context) {
	stats, err := h.gestureService.Statistics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GesturesForLanguage godoc
// @Summary      Shuffled gesture suggestions for one love language
// @Tags         gestures
// @Produce      json
// @Param        code path string true "Love language code"
// @Param        relationship_type query string false "Relationship type"
// @Param        limit query int false "Maximum number of suggestions"
// @Success      200 {array} Gesture
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/love-languages/{code}/gestures [get]
func (h *GestureHandler) GesturesForLanguage(c *gin.Context) {
	code := models.LoveLanguageCode(c.Param("code"))
	if !models.ValidLanguageCode(code) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown love language code"})
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))
	rt := models.RelationshipType(c.Query("relationship_type"))

	gestures, err := h.gestureService.ForLanguage(c.Request.Context(), code, rt, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if gestures == nil {
		gestures = []models.Gesture{}
	}

	c.JSON(http.StatusOK, gestures)
}

// ListLoveLanguages godoc
// @Summary      List the five love languages
// @Tags         reference
// @Produce      json
// @Success      200 {array} models.LoveLanguage
// @Router       /api/v1/love-languages [get]
func (h *GestureHandler) ListLoveLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, models.LoveLanguages)
}
