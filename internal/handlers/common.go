package handlers

import "github.com/Raphaon/LoveLanguage/internal/models"

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// Type aliases so swag can resolve models in annotations.
type Question = models.Question
type Gesture = models.Gesture
type TestResult = models.TestResult
type UserProfile = models.UserProfile
type ConversationQuestion = models.ConversationQuestion
