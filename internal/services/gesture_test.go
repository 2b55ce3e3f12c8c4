package services

import (
	"context"
	"testing"

	"github.com/Raphaon/LoveLanguage/internal/models"
	"github.com/Raphaon/LoveLanguage/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGestures() []models.Gesture {
	return []models.Gesture{
		{
			ID: "g1", Title: "Soirée cinéma", Description: "Un film ensemble, téléphones éteints.",
			LanguageCode: models.CodeMQ, Category: models.CategoryMoment,
			RelationshipTypes: []models.RelationshipType{models.RelationEnCouple, models.RelationMarie},
		},
		{
			ID: "g2", Title: "Préparer le café", Description: "Le café prêt avant le réveil.",
			LanguageCode: models.CodeSR, Category: models.CategoryService,
		},
		{
			ID: "g3", Title: "Mot doux caché", Description: "Un message glissé dans une poche.",
			LanguageCode: models.CodePQ, Category: models.CategoryMessage,
		},
		{
			ID: "g4", Title: "Petit cadeau surprise", Description: "Une attention sans occasion.",
			LanguageCode: models.CodeCD, Category: models.CategoryCadeau,
			RelationshipTypes: []models.RelationshipType{models.RelationParent},
		},
		{
			ID: "g5", Title: "Long câlin", Description: "Une étreinte sans se presser.",
			LanguageCode: models.CodeTP, Category: models.CategoryPhysique,
		},
	}
}

func newGestureService(gestures []models.Gesture) (*GestureService, *storage.Service) {
	store := storage.NewService(storage.NewMemoryStore())
	return NewGestureService(&fakeGestureSource{gestures: gestures}, store), store
}

func TestGestureFilter(t *testing.T) {
	svc, _ := newGestureService(testGestures())
	ctx := context.Background()

	tests := []struct {
		name    string
		filter  models.GestureFilter
		wantIDs []string
	}{
		{
			name:    "no filter returns everything",
			filter:  models.GestureFilter{},
			wantIDs: []string{"g1", "g2", "g3", "g4", "g5"},
		},
		{
			name:    "by language",
			filter:  models.GestureFilter{LanguageCode: models.CodeSR},
			wantIDs: []string{"g2"},
		},
		{
			name:    "by category",
			filter:  models.GestureFilter{Category: models.CategoryCadeau},
			wantIDs: []string{"g4"},
		},
		{
			name: "relationship filter keeps unrestricted gestures",
			filter: models.GestureFilter{
				RelationshipType: models.RelationCelibataire,
			},
			wantIDs: []string{"g2", "g3", "g5"},
		},
		{
			name:    "search matches title case-insensitively",
			filter:  models.GestureFilter{SearchText: "CAFÉ"},
			wantIDs: []string{"g2"},
		},
		{
			name:    "search matches description",
			filter:  models.GestureFilter{SearchText: "poche"},
			wantIDs: []string{"g3"},
		},
		{
			name: "criteria combine conjunctively",
			filter: models.GestureFilter{
				LanguageCode: models.CodeMQ,
				Category:     models.CategoryService,
			},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Filter(ctx, tt.filter)
			require.NoError(t, err)

			ids := make([]string, 0, len(got))
			for _, g := range got {
				ids = append(ids, g.ID)
			}
			assert.ElementsMatch(t, tt.wantIDs, ids)
		})
	}
}

func TestGestureFilterIdempotent(t *testing.T) {
	svc, _ := newGestureService(testGestures())
	filter := models.GestureFilter{RelationshipType: models.RelationEnCouple}

	first, err := svc.Filter(context.Background(), filter)
	require.NoError(t, err)
	second, err := svc.Filter(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestToggleFavoriteRoundTrip(t *testing.T) {
	svc, store := newGestureService(testGestures())
	ctx := context.Background()

	fav, err := svc.ToggleFavorite(ctx, "g3")
	require.NoError(t, err)
	assert.True(t, fav)
	assert.True(t, svc.IsFavorite("g3"))
	assert.Equal(t, []string{"g3"}, store.GetFavoriteGestures())

	// The overlay shows up on filtered reads without touching content.
	gestures, err := svc.Filter(ctx, models.GestureFilter{FavoritesOnly: true})
	require.NoError(t, err)
	require.Len(t, gestures, 1)
	assert.Equal(t, "g3", gestures[0].ID)
	assert.True(t, gestures[0].IsFavorite)

	fav, err = svc.ToggleFavorite(ctx, "g3")
	require.NoError(t, err)
	assert.False(t, fav)
	assert.False(t, svc.IsFavorite("g3"))
	assert.Empty(t, store.GetFavoriteGestures())
}

func TestToggleFavoriteUnknownGesture(t *testing.T) {
	svc, _ := newGestureService(testGestures())

	_, err := svc.ToggleFavorite(context.Background(), "nope")
	require.Error(t, err)
}

func TestFavoritesSurviveRestart(t *testing.T) {
	svc, store := newGestureService(testGestures())

	_, err := svc.ToggleFavorite(context.Background(), "g1")
	require.NoError(t, err)

	reloaded := NewGestureService(&fakeGestureSource{gestures: testGestures()}, store)
	assert.True(t, reloaded.IsFavorite("g1"))
}

func TestForLanguage(t *testing.T) {
	gestures := gestureBank(6)
	svc, _ := newGestureService(gestures)

	got, err := svc.ForLanguage(context.Background(), models.CodeSR, "", 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, g := range got {
		assert.Equal(t, models.CodeSR, g.LanguageCode)
	}

	all, err := svc.ForLanguage(context.Background(), models.CodeSR, "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 6, "zero limit means no truncation")
}

func TestRandomSuggestionAvoidsRepeats(t *testing.T) {
	gestures := testGestures()
	svc, _ := newGestureService(gestures)
	ctx := context.Background()

	// Drawing exactly pool-size times must visit every gesture once.
	seen := make(map[string]int)
	for i := 0; i < len(gestures); i++ {
		g, err := svc.RandomSuggestion(ctx, models.GestureFilter{})
		require.NoError(t, err)
		require.NotNil(t, g)
		seen[g.ID]++
	}
	assert.Len(t, seen, len(gestures))

	// The exhausted history resets and the next draw still succeeds.
	g, err := svc.RandomSuggestion(ctx, models.GestureFilter{})
	require.NoError(t, err)
	require.NotNil(t, g)

	// An explicit clear makes every gesture drawable again.
	svc.ClearHistory()
	g, err = svc.RandomSuggestion(ctx, models.GestureFilter{})
	require.NoError(t, err)
	require.NotNil(t, g)
}

func TestRandomSuggestionEmptyPool(t *testing.T) {
	svc, _ := newGestureService(nil)

	g, err := svc.RandomSuggestion(context.Background(), models.GestureFilter{})
	require.NoError(t, err)
	assert.Nil(t, g)
}

func TestGestureStatistics(t *testing.T) {
	svc, _ := newGestureService(testGestures())

	_, err := svc.ToggleFavorite(context.Background(), "g2")
	require.NoError(t, err)

	stats, err := svc.Statistics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 1, stats.Favorites)
	assert.Equal(t, 1, stats.ByLanguage[models.CodeMQ])
	assert.Equal(t, 1, stats.ByCategory[models.CategoryPhysique])
	// Categories with no gestures are reported explicitly at zero.
	assert.Contains(t, stats.ByCategory, models.CategoryAutre)
	assert.Zero(t, stats.ByCategory[models.CategoryAutre])
}
