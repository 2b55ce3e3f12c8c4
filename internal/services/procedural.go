package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/Raphaon/LoveLanguage/internal/models"
)

// GestureSource provides the gesture bank the generator draws from.
type GestureSource interface {
	Gestures(ctx context.Context) ([]models.Gesture, error)
}

var proceduralTemplates = []string{
	"Quel geste nourrirait le plus {{relation}} cette semaine ?",
	"Lequel de ces rituels ferait le plus de bien à {{prenom}} ?",
	"Quelle attention te semble la plus adaptée pour relancer {{relation}} ?",
	"Quelle idée testerais-tu aujourd'hui pour créer un déclic ?",
}

var optionLabels = []string{"A", "B", "C", "D", "E"}

// ProceduralQuestionService synthesizes quiz questions from the gesture
// pool when the curated bank falls short of the target size. Every
// generated question carries exactly one option per language.
type ProceduralQuestionService struct {
	gestures GestureSource
	rng      *rand.Rand
}

func NewProceduralQuestionService(gestures GestureSource) *ProceduralQuestionService {
	return &ProceduralQuestionService{
		gestures: gestures,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GenerateQuestions builds up to desiredCount questions for the profile.
// Gestures matching the profile's relationship type are preferred; each
// language pool is padded with the remaining gestures of that language so
// generation is only capped by the language with the least material. The
// result may be shorter than requested, which is not an error.
func (s *ProceduralQuestionService) GenerateQuestions(ctx context.Context, profile models.UserProfile, desiredCount int) ([]models.Question, error) {
	if desiredCount <= 0 {
		return nil, nil
	}

	all, err := s.gestures.Gestures(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}

	pools := s.buildPools(all, profile.RelationshipType)

	maxQuestions := desiredCount
	for _, code := range models.LanguageOrder {
		if n := len(pools[code]); n < maxQuestions {
			maxQuestions = n
		}
	}
	if maxQuestions <= 0 {
		return nil, nil
	}

	templates := make([]string, len(proceduralTemplates))
	copy(templates, proceduralTemplates)
	s.rng.Shuffle(len(templates), func(i, j int) {
		templates[i], templates[j] = templates[j], templates[i]
	})

	now := time.Now().UnixMilli()
	questions := make([]models.Question, 0, maxQuestions)
	for i := 0; i < maxQuestions; i++ {
		options := make([]models.QuestionOption, 0, len(models.LanguageOrder))
		for pos, code := range models.LanguageOrder {
			pool := pools[code]
			if len(pool) == 0 {
				break
			}
			gesture := pool[0]
			pools[code] = pool[1:]
			options = append(options, models.QuestionOption{
				ID:           fmt.Sprintf("proc_%s_%s_%d", code, gesture.ID, i),
				Label:        optionLabels[pos],
				Text:         gesture.Title,
				LanguageCode: gesture.LanguageCode,
			})
		}
		if len(options) != len(models.LanguageOrder) {
			break
		}

		question := models.Question{
			ID:      fmt.Sprintf("proc_%d_%d", now, i),
			Text:    renderTemplate(templates[i%len(templates)], profile),
			Order:   1000 + i,
			Active:  true,
			Options: options,
			Source:  models.SourceProcedural,
		}
		if profile.RelationshipType != "" {
			question.RelationshipTypes = []models.RelationshipType{profile.RelationshipType}
		}
		questions = append(questions, question)
	}

	return questions, nil
}

// buildPools groups gestures by language: relationship-matched gestures
// first, the rest of the same language after, each segment shuffled,
// deduplicated by gesture id.
func (s *ProceduralQuestionService) buildPools(all []models.Gesture, rt models.RelationshipType) map[models.LoveLanguageCode][]models.Gesture {
	pools := make(map[models.LoveLanguageCode][]models.Gesture, len(models.LanguageOrder))
	for _, code := range models.LanguageOrder {
		var matched, fallback []models.Gesture
		for _, g := range all {
			if g.LanguageCode != code {
				continue
			}
			if rt == "" || g.EligibleFor(rt) {
				matched = append(matched, g)
			} else {
				fallback = append(fallback, g)
			}
		}
		s.rng.Shuffle(len(matched), func(i, j int) {
			matched[i], matched[j] = matched[j], matched[i]
		})
		s.rng.Shuffle(len(fallback), func(i, j int) {
			fallback[i], fallback[j] = fallback[j], fallback[i]
		})
		pools[code] = append(matched, fallback...)
	}
	return pools
}

func renderTemplate(template string, profile models.UserProfile) string {
	relation := strings.ToLower(models.RelationshipLabel(profile.RelationshipType))
	if profile.RelationshipType == "" {
		relation = "ta relation"
	}
	name := strings.TrimSpace(profile.FirstName)
	if name == "" {
		name = "toi"
	}
	out := strings.ReplaceAll(template, "{{relation}}", relation)
	return strings.ReplaceAll(out, "{{prenom}}", name)
}
