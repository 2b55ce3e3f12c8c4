package services

import (
	"testing"

	"github.com/Raphaon/LoveLanguage/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answersFor(codes ...models.LoveLanguageCode) []models.QuestionAnswer {
	answers := make([]models.QuestionAnswer, len(codes))
	for i, code := range codes {
		answers[i] = models.QuestionAnswer{
			QuestionID:       "q",
			SelectedOptionID: "o",
			LanguageCode:     code,
		}
	}
	return answers
}

func TestCalculateScores(t *testing.T) {
	s := NewScoringService()

	scores := s.CalculateScores(answersFor(
		models.CodeMQ, models.CodeMQ, models.CodeMQ,
		models.CodeSR, models.CodeSR,
		models.CodePQ,
	))

	require.Len(t, scores, 5)
	assert.Equal(t, models.CodeMQ, scores[0].Code)
	assert.Equal(t, 3, scores[0].Score)
	assert.Equal(t, 50, scores[0].Percentage)
	assert.Equal(t, models.CodeSR, scores[1].Code)
	assert.Equal(t, 33, scores[1].Percentage)

	// Zero-count languages are still present.
	seen := make(map[models.LoveLanguageCode]bool)
	for _, sc := range scores {
		seen[sc.Code] = true
	}
	for _, code := range models.LanguageOrder {
		assert.True(t, seen[code], "missing %s", code)
	}
}

func TestCalculateScoresEmpty(t *testing.T) {
	s := NewScoringService()

	scores := s.CalculateScores(nil)
	require.Len(t, scores, 5)
	for _, sc := range scores {
		assert.Zero(t, sc.Score)
		assert.Zero(t, sc.Percentage)
	}
}

func TestCalculateScoresTieKeepsCanonicalOrder(t *testing.T) {
	s := NewScoringService()

	scores := s.CalculateScores(answersFor(models.CodeTP, models.CodeCD))
	// TP and CD tie at 1 but CD precedes TP in the canonical order.
	assert.Equal(t, models.CodeCD, scores[0].Code)
	assert.Equal(t, models.CodeTP, scores[1].Code)
}

func TestPrimaryLanguage(t *testing.T) {
	s := NewScoringService()

	_, err := s.PrimaryLanguage(nil)
	require.Error(t, err)

	scores := s.CalculateScores(answersFor(models.CodePQ, models.CodePQ, models.CodeMQ))
	primary, err := s.PrimaryLanguage(scores)
	require.NoError(t, err)
	assert.Equal(t, models.CodePQ, primary)
}

func TestSecondaryLanguage(t *testing.T) {
	s := NewScoringService()

	tests := []struct {
		name    string
		answers []models.QuestionAnswer
		want    models.LoveLanguageCode
	}{
		{
			name:    "clear ranking",
			answers: answersFor(models.CodeMQ, models.CodeMQ, models.CodeSR),
			want:    models.CodeSR,
		},
		{
			name: "top two tie falls through to third",
			answers: answersFor(
				models.CodeMQ, models.CodeMQ, models.CodeMQ,
				models.CodeSR, models.CodeSR, models.CodeSR,
				models.CodePQ, models.CodeCD, models.CodeTP,
			),
			want: models.CodePQ,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := s.CalculateScores(tt.answers)
			assert.Equal(t, tt.want, s.SecondaryLanguage(scores))
		})
	}

	t.Run("two entries tied means no secondary", func(t *testing.T) {
		scores := []models.LanguageScore{
			{Code: models.CodeMQ, Score: 2},
			{Code: models.CodeSR, Score: 2},
		}
		assert.Empty(t, s.SecondaryLanguage(scores))
	})
}

func TestDominantLanguages(t *testing.T) {
	s := NewScoringService()

	scores := s.CalculateScores(answersFor(
		models.CodeMQ, models.CodeMQ,
		models.CodeTP, models.CodeTP,
		models.CodeSR,
	))
	assert.Equal(t, []models.LoveLanguageCode{models.CodeMQ, models.CodeTP}, s.DominantLanguages(scores))
}

func TestCreateTestResult(t *testing.T) {
	s := NewScoringService()
	profile := models.UserProfile{FirstName: "Léa", RelationshipType: models.RelationEnCouple}

	result, err := s.CreateTestResult(answersFor(models.CodeCD, models.CodeCD, models.CodeMQ), profile)
	require.NoError(t, err)

	assert.NotEmpty(t, result.ID)
	assert.Equal(t, models.CodeCD, result.PrimaryLanguage)
	assert.Equal(t, models.CodeMQ, result.SecondaryLanguage)
	assert.Equal(t, 3, result.TotalQuestions)
	assert.Equal(t, profile, result.UserProfile)
	assert.False(t, result.Date.IsZero())
}

func TestCreateTestResultNoAnswers(t *testing.T) {
	s := NewScoringService()

	// With zero answers every language ties at zero; the first canonical
	// language still wins the primary slot.
	result, err := s.CreateTestResult(nil, models.UserProfile{})
	require.NoError(t, err)
	assert.Equal(t, models.CodeMQ, result.PrimaryLanguage)
}

func TestStatisticsBalanced(t *testing.T) {
	s := NewScoringService()

	tests := []struct {
		name     string
		answers  []models.QuestionAnswer
		balanced bool
	}{
		{
			name: "even spread is balanced",
			answers: answersFor(
				models.CodeMQ, models.CodeSR, models.CodePQ, models.CodeCD, models.CodeTP,
			),
			balanced: true,
		},
		{
			name: "one language far ahead is not",
			answers: answersFor(
				models.CodeMQ, models.CodeMQ, models.CodeMQ, models.CodeMQ,
				models.CodeSR,
			),
			balanced: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := s.CreateTestResult(tt.answers, models.UserProfile{})
			require.NoError(t, err)
			stats := s.Statistics(result)
			assert.Equal(t, tt.balanced, stats.IsBalanced)
			assert.NotEmpty(t, stats.DominantLanguages)
		})
	}
}

func TestCompareResults(t *testing.T) {
	s := NewScoringService()

	a, err := s.CreateTestResult(answersFor(
		models.CodeMQ, models.CodeMQ, models.CodeSR, models.CodePQ,
	), models.UserProfile{})
	require.NoError(t, err)

	identical, err := s.CreateTestResult(answersFor(
		models.CodeMQ, models.CodeMQ, models.CodeSR, models.CodePQ,
	), models.UserProfile{})
	require.NoError(t, err)

	cmp := s.CompareResults(a, identical)
	assert.Equal(t, 100, cmp.Compatibility)
	assert.Len(t, cmp.CommonLanguages, 5)
	require.NotEmpty(t, cmp.Differences)
	for _, d := range cmp.Differences {
		assert.Zero(t, d.Diff)
	}

	opposite, err := s.CreateTestResult(answersFor(
		models.CodeTP, models.CodeTP, models.CodeTP, models.CodeTP,
	), models.UserProfile{})
	require.NoError(t, err)

	cmp = s.CompareResults(a, opposite)
	assert.Less(t, cmp.Compatibility, 100)
	// Differences come back sorted by gap, widest first.
	for i := 1; i < len(cmp.Differences); i++ {
		assert.GreaterOrEqual(t, cmp.Differences[i-1].Diff, cmp.Differences[i].Diff)
	}
}

func TestResultMessage(t *testing.T) {
	s := NewScoringService()

	dominant, err := s.CreateTestResult(answersFor(
		models.CodeMQ, models.CodeMQ, models.CodeMQ, models.CodeMQ, models.CodeSR,
	), models.UserProfile{})
	require.NoError(t, err)
	assert.Contains(t, s.ResultMessage(dominant), "clairement")

	multi, err := s.CreateTestResult(answersFor(models.CodeMQ, models.CodeSR), models.UserProfile{})
	require.NoError(t, err)
	assert.Contains(t, s.ResultMessage(multi), "plusieurs langages")
}
