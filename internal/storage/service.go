package storage

import (
	"log"

	"github.com/Raphaon/LoveLanguage/internal/models"
)

// Logical keys of the persistence adapter. Values are opaque structured
// records; no schema versioning is enforced at this layer.
const (
	keyUserProfile          = "user_profile"
	keyTestResults          = "test_results"
	keyCurrentTest          = "current_test"
	keyFavoriteGestures     = "favorite_gestures"
	keyFavoriteConversation = "favorite_conversation_questions"
	keyOnboardingCompleted  = "onboarding_completed"
	keyAppSettings          = "app_settings"
	keyUsers                = "auth_users"
)

// Service exposes the typed persistence operations over a Store.
// Reads that have a sensible empty default (favorites, history) log the
// failure and return the default instead of propagating it.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) SaveUserProfile(profile models.UserProfile) error {
	return s.store.Set(keyUserProfile, profile)
}

func (s *Service) GetUserProfile() (*models.UserProfile, error) {
	var profile models.UserProfile
	found, err := s.store.Get(keyUserProfile, &profile)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &profile, nil
}

// SaveTestResult appends a result to the persisted history.
func (s *Service) SaveTestResult(result models.TestResult) error {
	results := s.GetTestResults()
	results = append(results, result)
	return s.store.Set(keyTestResults, results)
}

func (s *Service) GetTestResults() []models.TestResult {
	var results []models.TestResult
	found, err := s.store.Get(keyTestResults, &results)
	if err != nil {
		log.Printf("storage: read test results: %v", err)
		return nil
	}
	if !found {
		return nil
	}
	return results
}

func (s *Service) GetLastTestResult() *models.TestResult {
	results := s.GetTestResults()
	if len(results) == 0 {
		return nil
	}
	return &results[len(results)-1]
}

func (s *Service) GetTestResult(id string) *models.TestResult {
	for _, r := range s.GetTestResults() {
		if r.ID == id {
			result := r
			return &result
		}
	}
	return nil
}

func (s *Service) SaveCurrentTest(state models.QuizState) error {
	return s.store.Set(keyCurrentTest, state)
}

func (s *Service) GetCurrentTest() (*models.QuizState, error) {
	var state models.QuizState
	found, err := s.store.Get(keyCurrentTest, &state)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &state, nil
}

func (s *Service) ClearCurrentTest() error {
	return s.store.Remove(keyCurrentTest)
}

func (s *Service) GetFavoriteGestures() []string {
	return s.favoriteList(keyFavoriteGestures)
}

func (s *Service) AddFavoriteGesture(id string) error {
	return s.addFavorite(keyFavoriteGestures, id)
}

func (s *Service) RemoveFavoriteGesture(id string) error {
	return s.removeFavorite(keyFavoriteGestures, id)
}

func (s *Service) GetFavoriteConversationQuestions() []string {
	return s.favoriteList(keyFavoriteConversation)
}

func (s *Service) AddFavoriteConversationQuestion(id string) error {
	return s.addFavorite(keyFavoriteConversation, id)
}

func (s *Service) RemoveFavoriteConversationQuestion(id string) error {
	return s.removeFavorite(keyFavoriteConversation, id)
}

func (s *Service) SetOnboardingCompleted(completed bool) error {
	return s.store.Set(keyOnboardingCompleted, completed)
}

func (s *Service) IsOnboardingCompleted() bool {
	var completed bool
	found, err := s.store.Get(keyOnboardingCompleted, &completed)
	if err != nil {
		log.Printf("storage: read onboarding flag: %v", err)
		return false
	}
	return found && completed
}

// AppSettings are free-form client preferences.
func (s *Service) SaveAppSettings(settings map[string]interface{}) error {
	return s.store.Set(keyAppSettings, settings)
}

func (s *Service) GetAppSettings() map[string]interface{} {
	var settings map[string]interface{}
	found, err := s.store.Get(keyAppSettings, &settings)
	if err != nil {
		log.Printf("storage: read app settings: %v", err)
		return map[string]interface{}{}
	}
	if !found {
		return map[string]interface{}{}
	}
	return settings
}

// UserRecord is a stored stub-auth credential.
type UserRecord struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Role         string `json:"role"`
}

func (s *Service) SaveUser(user UserRecord) error {
	users := s.getUsers()
	users[user.Email] = user
	return s.store.Set(keyUsers, users)
}

func (s *Service) GetUser(email string) (*UserRecord, bool) {
	users := s.getUsers()
	user, ok := users[email]
	if !ok {
		return nil, false
	}
	return &user, true
}

func (s *Service) getUsers() map[string]UserRecord {
	var users map[string]UserRecord
	found, err := s.store.Get(keyUsers, &users)
	if err != nil {
		log.Printf("storage: read users: %v", err)
	}
	if !found || users == nil {
		return map[string]UserRecord{}
	}
	return users
}

// ResetApp wipes every persisted key.
func (s *Service) ResetApp() error {
	return s.store.Clear()
}

func (s *Service) favoriteList(key string) []string {
	var ids []string
	found, err := s.store.Get(key, &ids)
	if err != nil {
		log.Printf("storage: read %s: %v", key, err)
		return nil
	}
	if !found {
		return nil
	}
	return ids
}

func (s *Service) addFavorite(key, id string) error {
	ids := s.favoriteList(key)
	for _, existing := range ids {
		if existing == id {
			return nil
		}
	}
	return s.store.Set(key, append(ids, id))
}

func (s *Service) removeFavorite(key, id string) error {
	ids := s.favoriteList(key)
	next := ids[:0]
	for _, existing := range ids {
		if existing != id {
			next = append(next, existing)
		}
	}
	return s.store.Set(key, next)
}
