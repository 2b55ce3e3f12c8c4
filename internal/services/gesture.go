package services

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/Raphaon/LoveLanguage/internal/models"
	"github.com/Raphaon/LoveLanguage/internal/storage"
)

// GestureService filters the gesture bank and serves random suggestions.
// Canonical gestures stay immutable; favorite status is an overlay of ids
// kept in the persistence adapter and joined on read.
type GestureService struct {
	source GestureSource
	store  *storage.Service

	mu        sync.Mutex
	rng       *rand.Rand
	history   []string
	favorites map[string]bool
	favLoaded bool
}

func NewGestureService(source GestureSource, store *storage.Service) *GestureService {
	return &GestureService{
		source: source,
		store:  store,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Filter applies all set criteria conjunctively. A gesture with no
// relationship restriction matches every relationship type.
func (s *GestureService) Filter(ctx context.Context, filter models.GestureFilter) ([]models.Gesture, error) {
	all, err := s.source.Gestures(ctx)
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

	search := strings.ToLower(strings.TrimSpace(filter.SearchText))
	matched := make([]models.Gesture, 0, len(all))
	for _, g := range all {
		if filter.LanguageCode != "" && g.LanguageCode != filter.LanguageCode {
			continue
		}
		if filter.RelationshipType != "" && !g.EligibleFor(filter.RelationshipType) {
			continue
		}
		if filter.Category != "" && g.Category != filter.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(g.Title), search) &&
			!strings.Contains(strings.ToLower(g.Description), search) {
			continue
		}
		g.IsFavorite = favorites[g.ID]
		if filter.FavoritesOnly && !g.IsFavorite {
			continue
		}
		matched = append(matched, g)
	}
	return matched, nil
}

// ForLanguage returns shuffled suggestions for one language, optionally
// narrowed by relationship type and truncated to limit.
func (s *GestureService) ForLanguage(ctx context.Context, code models.LoveLanguageCode, rt models.RelationshipType, limit int) ([]models.Gesture, error) {
	gestures, err := s.Filter(ctx, models.GestureFilter{LanguageCode: code, RelationshipType: rt})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.rng.Shuffle(len(gestures), func(i, j int) {
		gestures[i], gestures[j] = gestures[j], gestures[i]
	})
	s.mu.Unlock()

	if limit > 0 && len(gestures) > limit {
		gestures = gestures[:limit]
	}
	return gestures, nil
}

// RandomSuggestion draws uniformly from the filtered pool, excluding
// recently shown gestures. Once the history would exclude everything it
// is cleared and the draw proceeds over the full pool, so a non-empty
// pool always yields a suggestion.
func (s *GestureService) RandomSuggestion(ctx context.Context, filter models.GestureFilter) (*models.Gesture, error) {
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
	candidates := make([]models.Gesture, 0, len(pool))
	for _, g := range pool {
		if !shown[g.ID] {
			candidates = append(candidates, g)
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

// ClearHistory forgets the recently shown gestures.
func (s *GestureService) ClearHistory() {
	s.mu.Lock()
	s.history = nil
	s.mu.Unlock()
}

// ToggleFavorite flips favorite membership for the gesture id and
// returns the new status.
func (s *GestureService) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	all, err := s.source.Gestures(ctx)
	if err != nil {
		return false, err
	}
	known := false
	for _, g := range all {
		if g.ID == id {
			known = true
			break
		}
	}
	if !known {
		return false, errors.New("gesture not found")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadFavoritesLocked()

	if s.favorites[id] {
		if err := s.store.RemoveFavoriteGesture(id); err != nil {
			return true, err
		}
		delete(s.favorites, id)
		return false, nil
	}
	if err := s.store.AddFavoriteGesture(id); err != nil {
		return false, err
	}
	s.favorites[id] = true
	return true, nil
}

// IsFavorite reports the overlay status for a gesture id.
func (s *GestureService) IsFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadFavoritesLocked()
	return s.favorites[id]
}

// Statistics counts the bank per language and per category.
func (s *GestureService) Statistics(ctx context.Context) (*GestureStatistics, error) {
	all, err := s.source.Gestures(ctx)
	if err != nil {
		return nil, err
	}

	stats := &GestureStatistics{
		Total:      len(all),
		ByLanguage: make(map[models.LoveLanguageCode]int, len(models.LanguageOrder)),
		ByCategory: make(map[models.GestureCategory]int, len(models.GestureCategories)),
	}
	for _, code := range models.LanguageOrder {
		stats.ByLanguage[code] = 0
	}
	for _, cat := range models.GestureCategories {
		stats.ByCategory[cat] = 0
	}
	for _, g := range all {
		stats.ByLanguage[g.LanguageCode]++
		stats.ByCategory[g.Category]++
	}

	s.mu.Lock()
	s.loadFavoritesLocked()
	stats.Favorites = len(s.favorites)
	s.mu.Unlock()
	return stats, nil
}

func (s *GestureService) loadFavoritesLocked() {
	if s.favLoaded {
		return
	}
	s.favorites = make(map[string]bool)
	for _, id := range s.store.GetFavoriteGestures() {
		s.favorites[id] = true
	}
	s.favLoaded = true
}

// GestureStatistics summarizes the gesture bank.
type GestureStatistics struct {
	Total      int                             `json:"total"`
	ByLanguage map[models.LoveLanguageCode]int `json:"by_language"`
	ByCategory map[models.GestureCategory]int  `json:"by_category"`
	Favorites  int                             `json:"favorites"`
}
