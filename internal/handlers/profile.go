package handlers

import (
	"net/http"
	"time"

	"github.com/Raphaon/LoveLanguage/internal/models"
	"github.com/Raphaon/LoveLanguage/internal/storage"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	store *storage.Service
}

func NewProfileHandler(store *storage.Service) *ProfileHandler {
	return &ProfileHandler{store: store}
}

type SaveProfileRequest struct {
	FirstName        string `json:"first_name" example:"Claire"`
	RelationshipType string `json:"relationship_type" binding:"required" example:"en_couple"`
}

type OnboardingRequest struct {
	Completed bool `json:"completed"`
}

// GetProfile godoc
// @Summary      Get the user profile
// @Tags         profile
// @Produce      json
// @Success      200 {object} UserProfile
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.store.GetUserProfile()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not set"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// SaveProfile godoc
// @Summary      Create or replace the user profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request body SaveProfileRequest true "Profile data"
// @Success      200 {object} UserProfile
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/profile [put]
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	rt := models.RelationshipType(req.RelationshipType)
	if !models.ValidRelationshipType(rt) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown relationship type"})
		return
	}

	now := time.Now()
	profile := models.UserProfile{
		FirstName:        req.FirstName,
		RelationshipType: rt,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if existing, err := h.store.GetUserProfile(); err == nil && existing != nil {
		profile.CreatedAt = existing.CreatedAt
	}

	if err := h.store.SaveUserProfile(profile); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetOnboarding godoc
// @Summary      Get the onboarding-completed flag
// @Tags         profile
// @Produce      json
// @Success      200 {object} OnboardingRequest
// @Router       /api/v1/profile/onboarding [get]
func (h *ProfileHandler) GetOnboarding(c *gin.Context) {
	c.JSON(http.StatusOK, OnboardingRequest{Completed: h.store.IsOnboardingCompleted()})
}

// SetOnboarding godoc
// @Summary      Set the onboarding-completed flag
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        request body OnboardingRequest true "Flag"
// @Success      200 {object} MessageResponse
// @Router       /api/v1/profile/onboarding [put]
func (h *ProfileHandler) SetOnboarding(c *gin.Context) {
	var req OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.store.SetOnboardingCompleted(req.Completed); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "onboarding flag saved"})
}

// RelationshipTypes godoc
// @Summary      List the relationship types
// @Tags         profile
// @Produce      json
// @Success      200 {array} object
// @Router       /api/v1/relationship-types [get]
func (h *ProfileHandler) RelationshipTypes(c *gin.Context) {
	type entry struct {
		Value string `json:"value"`
		Label string `json:"label"`
	}
	entries := make([]entry, 0, len(models.RelationshipTypes))
	for _, rt := range models.RelationshipTypes {
		entries = append(entries, entry{Value: string(rt), Label: models.RelationshipLabel(rt)})
	}
	c.JSON(http.StatusOK, entries)
}
