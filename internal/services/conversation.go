package services

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/Raphaon/LoveLanguage/internal/models"
	"github.com/Raphaon/LoveLanguage/internal/storage"
)

// ConversationSource provides the conversation prompt bank.
type ConversationSource interface {
	Conversations(ctx context.Context) ([]models.ConversationQuestion, error)
}

// ConversationService serves conversation prompts: filtered retrieval,
// random draws that avoid immediate repetition, and favorites kept as an
// id overlay in the persistence adapter.
type ConversationService struct {
	source ConversationSource
	store  *storage.Service

	mu        sync.Mutex
	rng       *rand.Rand
	history   []string
	favorites map[string]bool
	favLoaded bool
}

func NewConversationService(source ConversationSource, store *storage.Service) *ConversationService {
	return &ConversationService{
		source: source,
		store:  store,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Filter returns the prompts matching theme and depth; zero values match
// everything.
func (s *ConversationService) Filter(ctx context.Context, filter models.ConversationFilter) ([]models.ConversationQuestion, error) {
	all, err := s.source.Conversations(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.loadFavoritesLocked()
	favorites := make(map[string]bool, len(s.favorites))
	for id := range s.favorites {
		favorites[id] = true
	}
	s.mu.Unlock()

	matched := make([]models.ConversationQuestion, 0, len(all))
	for _, q := range all {
		if filter.Theme != "" && q.Theme != filter.Theme {
			continue
		}
		if filter.Depth != "" && q.Depth != filter.Depth {
			continue
		}
		if filter.FavoritesOnly && !favorites[q.ID] {
			continue
		}
		q.IsFavorite = favorites[q.ID]
		matched = append(matched, q)
	}
	return matched, nil
}

// Themes lists the themes present in the bank, in bank order.
func (s *ConversationService) Themes(ctx context.Context) ([]models.ConversationTheme, error) {
	all, err := s.source.Conversations(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[models.ConversationTheme]bool)
	var themes []models.ConversationTheme
	for _, q := range all {
		if !seen[q.Theme] {
			seen[q.Theme] = true
			themes = append(themes, q.Theme)
		}
	}
	return themes, nil
}

// Depths lists the depth levels present in the bank, in bank order.
func (s *ConversationService) Depths(ctx context.Context) ([]models.ConversationDepth, error) {
	all, err := s.source.Conversations(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[models.ConversationDepth]bool)
	var depths []models.ConversationDepth
	for _, q := range all {
		if !seen[q.Depth] {
			seen[q.Depth] = true
			depths = append(depths, q.Depth)
		}
	}
	return depths, nil
}

// RandomQuestion draws uniformly from the filtered pool, skipping
// recently shown prompts until the history exhausts the pool, then
// clearing it so draws always make progress.
func (s *ConversationService) RandomQuestion(ctx context.Context, filter models.ConversationFilter) (*models.ConversationQuestion, error) {
	pool, err := s.Filter(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	shown := make(map[string]bool, len(s.history))
	for _, id := range s.history {
		shown[id] = true
	}
	candidates := make([]models.ConversationQuestion, 0, len(pool))
	for _, q := range pool {
		if !shown[q.ID] {
			candidates = append(candidates, q)
		}
	}
	if len(candidates) == 0 {
		s.history = nil
		candidates = pool
	}

	picked := candidates[s.rng.Intn(len(candidates))]
	s.history = append(s.history, picked.ID)
	return &picked, nil
}

// ClearHistory forgets the recently shown prompts.
func (s *ConversationService) ClearHistory() {
	s.mu.Lock()
	s.history = nil
	s.mu.Unlock()
}

// ToggleFavorite flips favorite membership for the prompt id and returns
// the new status.
func (s *ConversationService) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	all, err := s.source.Conversations(ctx)
	if err != nil {
		return false, err
	}
	known := false
	for _, q := range all {
		if q.ID == id {
			known = true
			break
		}
	}
	if !known {
		return false, errors.New("conversation question not found")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadFavoritesLocked()

	if s.favorites[id] {
		if err := s.store.RemoveFavoriteConversationQuestion(id); err != nil {
			return true, err
		}
		delete(s.favorites, id)
		return false, nil
	}
	if err := s.store.AddFavoriteConversationQuestion(id); err != nil {
		return false, err
	}
	s.favorites[id] = true
	return true, nil
}

// IsFavorite reports the overlay status for a prompt id.
func (s *ConversationService) IsFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadFavoritesLocked()
	return s.favorites[id]
}

// FavoriteIDs returns the persisted favorite prompt ids.
func (s *ConversationService) FavoriteIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadFavoritesLocked()

	ids := make([]string, 0, len(s.favorites))
	for id := range s.favorites {
		ids = append(ids, id)
	}
	return ids
}

func (s *ConversationService) loadFavoritesLocked() {
	if s.favLoaded {
		return
	}
	s.favorites = make(map[string]bool)
	for _, id := range s.store.GetFavoriteConversationQuestions() {
		s.favorites[id] = true
	}
	s.favLoaded = true
}
