package handlers

import (
	"errors"
	"net/http"

	"github.com/Raphaon/LoveLanguage/internal/services"
	"github.com/Raphaon/LoveLanguage/internal/storage"
	"github.com/Raphaon/LoveLanguage/internal/ws"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	quizService *services.QuizService
	store       *storage.Service
	hub         *ws.Hub
}

func NewQuizHandler(quizService *services.QuizService, store *storage.Service, hub *ws.Hub) *QuizHandler {
	return &QuizHandler{quizService: quizService, store: store, hub: hub}
}

type StartQuizRequest struct {
	// Fresh skips the resume attempt and always starts a new quiz.
	Fresh bool `json:"fresh"`
}

type StartQuizResponse struct {
	services.SessionView
	Resumed bool `json:"resumed"`
}

type SubmitAnswerRequest struct {
	QuestionID string `json:"question_id" binding:"required"`
	OptionID   string `json:"option_id" binding:"required"`
}

// StartQuiz godoc
// @Summary      Start or resume a quiz
// @Description  Resumes the persisted session when compatible with the current profile, otherwise starts fresh
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Param        request body StartQuizRequest false "Options"
// @Success      200 {object} StartQuizResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/quiz/start [post]
func (h *QuizHandler) StartQuiz(c *gin.Context) {
	var req StartQuizRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
	}

	profile, err := h.store.GetUserProfile()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if profile == nil {
		c.JSON(http.StatusConflict, ErrorResponse{Error: "profile not set"})
		return
	}

	if !req.Fresh {
		view, err := h.quizService.Resume(c.Request.Context(), *profile)
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}
		if view != nil {
			c.JSON(http.StatusOK, StartQuizResponse{SessionView: *view, Resumed: true})
			return
		}
	}

	view, err := h.quizService.Start(c.Request.Context(), *profile)
	if err != nil {
		if errors.Is(err, services.ErrNoQuestions) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, StartQuizResponse{SessionView: *view})
}

// GetState godoc
// @Summary      Get the running quiz state
// @Tags         quiz
// @Produce      json
// @Success      200 {object} services.SessionView
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/quiz [get]
func (h *QuizHandler) GetState(c *gin.Context) {
	view := h.quizService.State()
	if view == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no active quiz session"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// SubmitAnswer godoc
// @Summary      Answer the current question
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Param        request body SubmitAnswerRequest true "Answer"
// @Success      200 {object} services.SessionView
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/quiz/answer [post]
func (h *QuizHandler) SubmitAnswer(c *gin.Context) {
	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.quizService.SubmitAnswer(req.QuestionID, req.OptionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	h.hub.Broadcast(view.SessionID, ws.WSMessage{Type: ws.EventQuestionAnswered, Data: view})
	c.JSON(http.StatusOK, view)
}

// Previous godoc
// @Summary      Go back one question
// @Description  Discards the answer recorded for the question being left
// @Tags         quiz
// @Produce      json
// @Success      200 {object} services.SessionView
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/quiz/previous [post]
func (h *QuizHandler) Previous(c *gin.Context) {
	view, moved := h.quizService.Previous()
	if !moved {
		c.JSON(http.StatusConflict, ErrorResponse{Error: "already at the first question"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// Finish godoc
// @Summary      Finish the quiz and persist the result
// @Tags         quiz
// @Produce      json
// @Success      200 {object} TestResult
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/quiz/finish [post]
func (h *QuizHandler) Finish(c *gin.Context) {
	view := h.quizService.State()

	result, err := h.quizService.Finish()
	if err != nil {
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		return
	}

	if view != nil {
		h.hub.Broadcast(view.SessionID, ws.WSMessage{Type: ws.EventQuizCompleted, Data: result})
	}
	c.JSON(http.StatusOK, result)
}

// Reset godoc
// @Summary      Abandon the running quiz
// @Tags         quiz
// @Produce      json
// @Success      200 {object} MessageResponse
// @Router       /api/v1/quiz/reset [post]
func (h *QuizHandler) Reset(c *gin.Context) {
	view := h.quizService.State()
	h.quizService.Reset()

	if view != nil {
		h.hub.Broadcast(view.SessionID, ws.WSMessage{Type: ws.EventQuizReset, Data: nil})
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "quiz reset"})
}
