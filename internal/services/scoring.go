package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Raphaon/LoveLanguage/internal/models"
	"github.com/google/uuid"
)

// ScoringService turns a list of answers into ranked per-language scores
// and builds persisted test results.
type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// CalculateScores tallies answer counts per language. Every language is
// represented, defaulting to zero. Scores are sorted descending by count;
// ties keep the canonical language order.
func (s *ScoringService) CalculateScores(answers []models.QuestionAnswer) []models.LanguageScore {
	counts := make(map[models.LoveLanguageCode]int, len(models.LanguageOrder))
	for _, a := range answers {
		counts[a.LanguageCode]++
	}

	total := len(answers)
	scores := make([]models.LanguageScore, 0, len(models.LanguageOrder))
	for _, code := range models.LanguageOrder {
		score := models.LanguageScore{Code: code, Score: counts[code]}
		if total > 0 {
			score.Percentage = int(float64(counts[code])/float64(total)*100 + 0.5)
		}
		scores = append(scores, score)
	}

	sort.SliceStable(scores, func(a, b int) bool {
		return scores[a].Score > scores[b].Score
	})
	return scores
}

// PrimaryLanguage is the highest-ranked entry.
func (s *ScoringService) PrimaryLanguage(scores []models.LanguageScore) (models.LoveLanguageCode, error) {
	if len(scores) == 0 {
		return "", errors.New("no scores available")
	}
	return scores[0].Code, nil
}

// SecondaryLanguage is the second-ranked entry, unless its score ties
// the primary's; in that case the third-ranked entry is used instead
// when present, otherwise there is no secondary.
func (s *ScoringService) SecondaryLanguage(scores []models.LanguageScore) models.LoveLanguageCode {
	if len(scores) < 2 {
		return ""
	}
	if scores[0].Score == scores[1].Score {
		if len(scores) > 2 {
			return scores[2].Code
		}
		return ""
	}
	return scores[1].Code
}

// DominantLanguages returns every language sharing the maximum score.
func (s *ScoringService) DominantLanguages(scores []models.LanguageScore) []models.LoveLanguageCode {
	if len(scores) == 0 {
		return nil
	}
	max := scores[0].Score
	var dominant []models.LoveLanguageCode
	for _, sc := range scores {
		if sc.Score == max {
			dominant = append(dominant, sc.Code)
		}
	}
	return dominant
}

// CreateTestResult scores the answers and assembles a result ready to be
// appended to the history.
func (s *ScoringService) CreateTestResult(answers []models.QuestionAnswer, profile models.UserProfile) (models.TestResult, error) {
	scores := s.CalculateScores(answers)
	primary, err := s.PrimaryLanguage(scores)
	if err != nil {
		return models.TestResult{}, err
	}

	return models.TestResult{
		ID:                uuid.NewString(),
		Date:              time.Now(),
		UserProfile:       profile,
		Answers:           answers,
		Scores:            scores,
		PrimaryLanguage:   primary,
		SecondaryLanguage: s.SecondaryLanguage(scores),
		TotalQuestions:    len(answers),
	}, nil
}

// Statistics summarizes a result. A result is balanced when the spread
// between highest and lowest percentage is at most 20 points.
func (s *ScoringService) Statistics(result models.TestResult) models.TestStatistics {
	scores := result.Scores
	total := 0
	for _, sc := range scores {
		total += sc.Score
	}

	stats := models.TestStatistics{
		DominantLanguages: s.DominantLanguages(scores),
	}
	if len(scores) == 0 {
		return stats
	}

	stats.AverageScore = float64(total) / float64(len(scores))
	stats.HighestScore = scores[0]
	stats.LowestScore = scores[len(scores)-1]
	stats.IsBalanced = stats.HighestScore.Percentage-stats.LowestScore.Percentage <= 20
	return stats
}

// ResultMessage renders the headline interpretation of a result.
func (s *ScoringService) ResultMessage(result models.TestResult) string {
	stats := s.Statistics(result)
	primary := models.LoveLanguageByCode(result.PrimaryLanguage)
	label := string(result.PrimaryLanguage)
	if primary != nil {
		label = primary.Label
	}

	if len(stats.DominantLanguages) > 1 {
		return "Vous avez plusieurs langages d'amour dominants ! Cela signifie que vous appréciez différentes formes d'attention de manière équilibrée."
	}
	if stats.IsBalanced {
		return fmt.Sprintf("Vos scores sont équilibrés. Vous appréciez diverses formes d'attention, avec une préférence pour %s.", label)
	}
	return fmt.Sprintf("Votre langage d'amour principal est clairement %s. C'est ainsi que vous vous sentez le plus aimé(e).", label)
}

// CompareResults measures how close two results are, language by
// language. Languages within 15 percentage points count as common;
// compatibility is 100 minus the average gap, clamped to 0-100.
func (s *ScoringService) CompareResults(a, b models.TestResult) models.ResultComparison {
	var comparison models.ResultComparison

	byCode := make(map[models.LoveLanguageCode]models.LanguageScore, len(b.Scores))
	for _, sc := range b.Scores {
		byCode[sc.Code] = sc
	}

	totalDiff := 0
	for _, sc := range a.Scores {
		other, ok := byCode[sc.Code]
		if !ok {
			continue
		}
		diff := sc.Percentage - other.Percentage
		if diff < 0 {
			diff = -diff
		}
		comparison.Differences = append(comparison.Differences, models.LanguageDiff{Language: sc.Code, Diff: diff})
		totalDiff += diff
		if diff <= 15 {
			comparison.CommonLanguages = append(comparison.CommonLanguages, sc.Code)
		}
	}

	if len(comparison.Differences) > 0 {
		avg := float64(totalDiff) / float64(len(comparison.Differences))
		compat := 100 - avg
		if compat < 0 {
			compat = 0
		}
		comparison.Compatibility = int(compat + 0.5)
	}

	sort.SliceStable(comparison.Differences, func(i, j int) bool {
		return comparison.Differences[i].Diff > comparison.Differences[j].Diff
	})
	return comparison
}
