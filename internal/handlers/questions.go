package handlers

import (
	"net/http"

	"github.com/Raphaon/LoveLanguage/internal/content"
	"github.com/Raphaon/LoveLanguage/internal/models"

	"github.com/gin-gonic/gin"
)

type QuestionsHandler struct {
	loader *content.Loader
}

func NewQuestionsHandler(loader *content.Loader) *QuestionsHandler {
	return &QuestionsHandler{loader: loader}
}

// ListQuestions godoc
// @Summary      List the static question bank
// @Tags         questions
// @Produce      json
// @Param        relationship_type query string false "Only questions eligible for this relationship type"
// @Success      200 {array} Question
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/questions [get]
func (h *QuestionsHandler) ListQuestions(c *gin.Context) {
	questions, err := h.loader.Questions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	if rt := c.Query("relationship_type"); rt != "" {
		if !models.ValidRelationshipType(models.RelationshipType(rt)) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown relationship type"})
			return
		}
		eligible := make([]models.Question, 0, len(questions))
		for _, q := range questions {
			if q.EligibleFor(models.RelationshipType(rt)) {
				eligible = append(eligible, q)
			}
		}
		questions = eligible
	}

	if questions == nil {
		questions = []models.Question{}
	}
	c.JSON(http.StatusOK, questions)
}
