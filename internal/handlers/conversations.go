package handlers

import (
	"net/http"

	"github.com/Raphaon/LoveLanguage/internal/models"
	"github.com/Raphaon/LoveLanguage/internal/services"

	"github.com/gin-gonic/gin"
)

type ConversationHandler struct {
	conversationService *services.ConversationService
}

func NewConversationHandler(conversationService *services.ConversationService) *ConversationHandler {
	return &ConversationHandler{conversationService: conversationService}
}

// ListQuestions godoc
// @Summary      List conversation questions
// @Tags         conversations
// @Produce      json
// @Param        theme query string false "Conversation theme"
// @Param        depth query string false "Conversation depth"
// @Param        favorites query bool false "Only favorites"
// @Success      200 {array} ConversationQuestion
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/conversations [get]
func (h *ConversationHandler) ListQuestions(c *gin.Context) {
	var filter models.ConversationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	questions, err := h.conversationService.Filter(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if questions == nil {
		questions = []models.ConversationQuestion{}
	}

	c.JSON(http.StatusOK, questions)
}

// RandomQuestion godoc
// @Summary      Draw a random conversation question
// @Tags         conversations
// @Produce      json
// @Param        theme query string false "Conversation theme"
// @Param        depth query string false "Conversation depth"
// @Success      200 {object} ConversationQuestion
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/conversations/random [get]
func (h *ConversationHandler) RandomQuestion(c *gin.Context) {
	var filter models.ConversationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	question, err := h.conversationService.RandomQuestion(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if question == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no conversation question matches the filter"})
		return
	}

	c.JSON(http.StatusOK, question)
}

// ListThemes godoc
// @Summary      List available conversation themes
// @Tags         conversations
// @Produce      json
// @Success      200 {array} string
// @Router       /api/v1/conversations/themes [get]
func (h *ConversationHandler) ListThemes(c *gin.Context) {
	themes, err := h.conversationService.Themes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, themes)
}

// ListDepths godoc
// @Summary      List available conversation depths
// @Tags         conversations
// @Produce      json
// @Success      200 {array} string
// @Router       /api/v1/conversations/depths [get]
func (h *ConversationHandler) ListDepths(c *gin.Context) {
	depths, err := h.conversationService.Depths(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, depths)
}

// ToggleFavorite godoc
// @Summary      Toggle a conversation question favorite
// @Tags         conversations
// @Produce      json
// @Param        id path string true "Question ID"
// @Success      200 {object} FavoriteResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/conversations/{id}/favorite [post]
func (h *ConversationHandler) ToggleFavorite(c *gin.Context) {
	id := c.Param("id")

	favorite, err := h.conversationService.ToggleFavorite(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, FavoriteResponse{ID: id, Favorite: favorite})
}

// ListFavorites godoc
// @Summary      List favorite conversation questions
// @Tags         conversations
// @Produce      json
// @Success      200 {array} ConversationQuestion
// @Router       /api/v1/conversations/favorites [get]
func (h *ConversationHandler) ListFavorites(c *gin.Context) {
	questions, err := h.conversationService.Filter(c.Request.Context(), models.ConversationFilter{FavoritesOnly: true})
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if questions == nil {
		questions = []models.ConversationQuestion{}
	}

	c.JSON(http.StatusOK, questions)
}
