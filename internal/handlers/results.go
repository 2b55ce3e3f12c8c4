package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Raphaon/LoveLanguage/internal/models"
	"github.com/Raphaon/LoveLanguage/internal/services"
	"github.com/Raphaon/LoveLanguage/internal/storage"

	"github.com/gin-gonic/gin"
)

type ResultsHandler struct {
	scoringService *services.ScoringService
	store          *storage.Service
}

func NewResultsHandler(scoringService *services.ScoringService, store *storage.Service) *ResultsHandler {
	return &ResultsHandler{scoringService: scoringService, store: store}
}

type ResultDetailResponse struct {
	Result     models.TestResult     `json:"result"`
	Statistics models.TestStatistics `json:"statistics"`
	Message    string                `json:"message"`
}

type ResultsExport struct {
	ExportedAt time.Time           `json:"exportedAt"`
	Profile    *models.UserProfile `json:"profile,omitempty"`
	Results    []models.TestResult `json:"results"`
}

// ListResults godoc
// @Summary      List all test results
// @Tags         results
// @Produce      json
// @Success      200 {array} TestResult
// @Router       /api/v1/results [get]
func (h *ResultsHandler) ListResults(c *gin.Context) {
	results := h.store.GetTestResults()
	if results == nil {
		results = []models.TestResult{}
	}

	c.JSON(http.StatusOK, results)
}

// LatestResult godoc
// @Summary      Get the most recent test result
// @Tags         results
// @Produce      json
// @Success      200 {object} TestResult
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/results/latest [get]
func (h *ResultsHandler) LatestResult(c *gin.Context) {
	result := h.store.GetLastTestResult()
	if result == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no test results yet"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetResult godoc
// @Summary      Get a test result with its statistics
// @Tags         results
// @Produce      json
// @Param        id path string true "Result ID"
// @Success      200 {object} ResultDetailResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/results/{id} [get]
func (h *ResultsHandler) GetResult(c *gin.Context) {
	id := c.Param("id")

	result := h.store.GetTestResult(id)
	if result == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "result not found"})
		return
	}

	c.JSON(http.StatusOK, ResultDetailResponse{
		Result:     *result,
		Statistics: h.scoringService.Statistics(*result),
		Message:    h.scoringService.ResultMessage(*result),
	})
}

// CompareResults godoc
// @Summary      Compare two test results
// @Tags         results
// @Produce      json
// @Param        a query string true "First result ID"
// @Param        b query string true "Second result ID"
// @Success      200 {object} models.ResultComparison
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/results/compare [get]
func (h *ResultsHandler) CompareResults(c *gin.Context) {
	idA := c.Query("a")
	idB := c.Query("b")
	if idA == "" || idB == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "query parameters a and b are required"})
		return
	}

	resultA := h.store.GetTestResult(idA)
	if resultA == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: fmt.Sprintf("result %s not found", idA)})
		return
	}
	resultB := h.store.GetTestResult(idB)
	if resultB == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: fmt.Sprintf("result %s not found", idB)})
		return
	}

	c.JSON(http.StatusOK, h.scoringService.CompareResults(*resultA, *resultB))
}

// ExportResults godoc
// @Summary      Export the profile and result history as JSON
// @Tags         results
// @Produce      json
// @Success      200 {object} ResultsExport
// @Router       /api/v1/results/export [get]
func (h *ResultsHandler) ExportResults(c *gin.Context) {
	profile, err := h.store.GetUserProfile()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	results := h.store.GetTestResults()
	if results == nil {
		results = []models.TestResult{}
	}

	export := ResultsExport{
		ExportedAt: time.Now(),
		Profile:    profile,
		Results:    results,
	}

	filename := fmt.Sprintf("love-language-results-%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.JSON(http.StatusOK, export)
}
