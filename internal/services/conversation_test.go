package services

import (
	"context"
	"testing"

	"github.com/Raphaon/LoveLanguage/internal/models"
	"github.com/Raphaon/LoveLanguage/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConversationSource struct {
	questions []models.ConversationQuestion
}

func (f *fakeConversationSource) Conversations(ctx context.Context) ([]models.ConversationQuestion, error) {
	return f.questions, nil
}

func testPrompts() []models.ConversationQuestion {
	return []models.ConversationQuestion{
		{ID: "c1", Text: "Quel était ton jeu préféré enfant ?", Theme: models.ThemeEnfance, Depth: models.DepthLeger},
		{ID: "c2", Text: "Quelle valeur ne négocies-tu jamais ?", Theme: models.ThemeValeurs, Depth: models.DepthProfond},
		{ID: "c3", Text: "Quel rêve as-tu mis de côté ?", Theme: models.ThemeReves, Depth: models.DepthMoyen},
		{ID: "c4", Text: "Quel souvenir d'enfance te fait sourire ?", Theme: models.ThemeEnfance, Depth: models.DepthMoyen},
	}
}

func newConversationService(prompts []models.ConversationQuestion) (*ConversationService, *storage.Service) {
	store := storage.NewService(storage.NewMemoryStore())
	return NewConversationService(&fakeConversationSource{questions: prompts}, store), store
}

func TestConversationFilter(t *testing.T) {
	svc, _ := newConversationService(testPrompts())
	ctx := context.Background()

	tests := []struct {
		name    string
		filter  models.ConversationFilter
		wantIDs []string
	}{
		{
			name:    "no filter",
			filter:  models.ConversationFilter{},
			wantIDs: []string{"c1", "c2", "c3", "c4"},
		},
		{
			name:    "by theme",
			filter:  models.ConversationFilter{Theme: models.ThemeEnfance},
			wantIDs: []string{"c1", "c4"},
		},
		{
			name:    "by depth",
			filter:  models.ConversationFilter{Depth: models.DepthMoyen},
			wantIDs: []string{"c3", "c4"},
		},
		{
			name: "theme and depth combine",
			filter: models.ConversationFilter{
				Theme: models.ThemeEnfance,
				Depth: models.DepthMoyen,
			},
			wantIDs: []string{"c4"},
		},
		{
			name:    "no match",
			filter:  models.ConversationFilter{Theme: models.ThemeTravail},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Filter(ctx, tt.filter)
			require.NoError(t, err)

			ids := make([]string, 0, len(got))
			for _, q := range got {
				ids = append(ids, q.ID)
			}
			assert.ElementsMatch(t, tt.wantIDs, ids)
		})
	}
}

func TestConversationThemesAndDepths(t *testing.T) {
	svc, _ := newConversationService(testPrompts())
	ctx := context.Background()

	themes, err := svc.Themes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.ConversationTheme{models.ThemeEnfance, models.ThemeValeurs, models.ThemeReves}, themes)

	depths, err := svc.Depths(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.ConversationDepth{models.DepthLeger, models.DepthProfond, models.DepthMoyen}, depths)
}

func TestConversationRandomAvoidsRepeats(t *testing.T) {
	prompts := testPrompts()
	svc, _ := newConversationService(prompts)
	ctx := context.Background()

	seen := make(map[string]int)
	for i := 0; i < len(prompts); i++ {
		q, err := svc.RandomQuestion(ctx, models.ConversationFilter{})
		require.NoError(t, err)
		require.NotNil(t, q)
		seen[q.ID]++
	}
	assert.Len(t, seen, len(prompts))

	q, err := svc.RandomQuestion(ctx, models.ConversationFilter{})
	require.NoError(t, err)
	require.NotNil(t, q, "history reset keeps draws working")

	svc.ClearHistory()
	q, err = svc.RandomQuestion(ctx, models.ConversationFilter{})
	require.NoError(t, err)
	require.NotNil(t, q)
}

func TestConversationRandomNoMatch(t *testing.T) {
	svc, _ := newConversationService(testPrompts())

	q, err := svc.RandomQuestion(context.Background(), models.ConversationFilter{Theme: models.ThemeBonus})
	require.NoError(t, err)
	assert.Nil(t, q)
}

func TestConversationFavorites(t *testing.T) {
	svc, store := newConversationService(testPrompts())
	ctx := context.Background()

	fav, err := svc.ToggleFavorite(ctx, "c2")
	require.NoError(t, err)
	assert.True(t, fav)
	assert.True(t, svc.IsFavorite("c2"))
	assert.Equal(t, []string{"c2"}, store.GetFavoriteConversationQuestions())
	assert.Equal(t, []string{"c2"}, svc.FavoriteIDs())

	favorites, err := svc.Filter(ctx, models.ConversationFilter{FavoritesOnly: true})
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "c2", favorites[0].ID)
	assert.True(t, favorites[0].IsFavorite)

	fav, err = svc.ToggleFavorite(ctx, "c2")
	require.NoError(t, err)
	assert.False(t, fav)
	assert.Empty(t, store.GetFavoriteConversationQuestions())

	_, err = svc.ToggleFavorite(ctx, "missing")
	require.Error(t, err)
}
