package services

import (
	"context"
	"errors"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/Raphaon/LoveLanguage/internal/models"
	"github.com/Raphaon/LoveLanguage/internal/storage"
	"github.com/google/uuid"
)

const (
	MinQuestions       = 10
	PreferredQuestions = 15
	MaxQuestions       = 20
)

// ErrNoQuestions means the static bank produced no eligible question.
// Callers must treat it as fatal for the quiz flow; procedural
// generation is not attempted in that case.
var ErrNoQuestions = errors.New("no questions available")

// ErrNoActiveSession means an operation needs a started quiz.
var ErrNoActiveSession = errors.New("no active quiz session")

// QuestionSource provides the static question bank.
type QuestionSource interface {
	Questions(ctx context.Context) ([]models.Question, error)
}

// QuizService drives the quiz session state machine: question selection,
// answer recording, navigation and resumable persistence. It owns at most
// one active session at a time, matching the single-profile application.
type QuizService struct {
	questions  QuestionSource
	procedural *ProceduralQuestionService
	scoring    *ScoringService
	store      *storage.Service

	mu      sync.Mutex
	session *quizSession
	// Questions generated for the most recent session, kept so a
	// persisted snapshot referencing them can still be resumed.
	lastGenerated []models.Question
}

type quizSession struct {
	id        string
	profile   models.UserProfile
	questions []models.Question
	answers   []models.QuestionAnswer
	index     int
	// Completion minimum, capped to the produced question count when a
	// generation shortfall left fewer than MinQuestions.
	minAnswers int
}

func NewQuizService(questions QuestionSource, procedural *ProceduralQuestionService, scoring *ScoringService, store *storage.Service) *QuizService {
	return &QuizService{
		questions:  questions,
		procedural: procedural,
		scoring:    scoring,
		store:      store,
	}
}

// Start builds a fresh session for the profile. Eligible static questions
// are sorted by order; a pool larger than the preferred size is truncated
// to its prefix, a smaller one is topped up with procedurally generated
// questions, then the whole set is re-sorted and capped at MaxQuestions.
func (s *QuizService) Start(ctx context.Context, profile models.UserProfile) (*SessionView, error) {
	bank, err := s.questions.Questions(ctx)
	if err != nil {
		return nil, err
	}

	eligible := make([]models.Question, 0, len(bank))
	for _, q := range bank {
		if q.EligibleFor(profile.RelationshipType) {
			eligible = append(eligible, q)
		}
	}
	if len(eligible) == 0 {
		return nil, ErrNoQuestions
	}

	sort.SliceStable(eligible, func(a, b int) bool {
		return eligible[a].Order < eligible[b].Order
	})

	var generated []models.Question
	selected := eligible
	if len(selected) > PreferredQuestions {
		selected = selected[:PreferredQuestions]
	} else if len(selected) < PreferredQuestions {
		generated, err = s.procedural.GenerateQuestions(ctx, profile, PreferredQuestions-len(selected))
		if err != nil {
			// Generation shortfall is not fatal: run with the
			// curated set alone.
			log.Printf("quiz: procedural generation failed: %v", err)
			generated = nil
		}
		selected = append(append([]models.Question{}, selected...), generated...)
		sort.SliceStable(selected, func(a, b int) bool {
			return selected[a].Order < selected[b].Order
		})
	}
	if len(selected) > MaxQuestions {
		selected = selected[:MaxQuestions]
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastGenerated = generated
	s.session = &quizSession{
		id:         uuid.NewString(),
		profile:    profile,
		questions:  selected,
		minAnswers: completionMinimum(len(selected)),
	}
	s.persistLocked()
	return s.viewLocked(), nil
}

// Resume rebuilds a session from the persisted snapshot. It returns nil
// when there is nothing to resume: no snapshot, an empty question id
// list, or a snapshot captured under a different relationship type. The
// restored index is clamped to valid bounds.
func (s *QuizService) Resume(ctx context.Context, profile models.UserProfile) (*SessionView, error) {
	state, err := s.store.GetCurrentTest()
	if err != nil {
		log.Printf("quiz: read persisted session: %v", err)
		return nil, nil
	}
	if state == nil || len(state.QuestionIDs) == 0 {
		return nil, nil
	}
	if state.UserProfile.RelationshipType != "" &&
		state.UserProfile.RelationshipType != profile.RelationshipType {
		return nil, nil
	}

	bank, err := s.questions.Questions(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	byID := make(map[string]models.Question, len(bank)+len(s.lastGenerated))
	for _, q := range bank {
		byID[q.ID] = q
	}
	for _, q := range s.lastGenerated {
		byID[q.ID] = q
	}

	questions := make([]models.Question, 0, len(state.QuestionIDs))
	for _, id := range state.QuestionIDs {
		if q, ok := byID[id]; ok {
			questions = append(questions, q)
		}
	}
	if len(questions) == 0 {
		return nil, nil
	}

	index := state.CurrentIndex
	if index < 0 {
		index = 0
	}
	if index > len(questions)-1 {
		index = len(questions) - 1
	}

	answers := make([]models.QuestionAnswer, len(state.Answers))
	copy(answers, state.Answers)
	for i := range answers {
		if answers[i].Timestamp.IsZero() {
			answers[i].Timestamp = time.Now()
		}
	}

	s.session = &quizSession{
		id:         uuid.NewString(),
		profile:    profile,
		questions:  questions,
		answers:    answers,
		index:      index,
		minAnswers: completionMinimum(len(questions)),
	}
	return s.viewLocked(), nil
}

// SubmitAnswer records the choice for the current question, advances the
// pointer and persists the snapshot.
func (s *QuizService) SubmitAnswer(questionID, optionID string) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, ErrNoActiveSession
	}
	sess := s.session
	if sess.index >= len(sess.questions) {
		return nil, errors.New("quiz already complete")
	}

	current := sess.questions[sess.index]
	if current.ID != questionID {
		return nil, errors.New("answer does not match the current question")
	}
	option := current.Option(optionID)
	if option == nil {
		return nil, errors.New("invalid option for current question")
	}

	sess.answers = append(sess.answers, models.QuestionAnswer{
		QuestionID:       questionID,
		SelectedOptionID: optionID,
		LanguageCode:     option.LanguageCode,
		Timestamp:        time.Now(),
	})
	sess.index++
	s.persistLocked()
	return s.viewLocked(), nil
}

// Previous steps back one question. The answer recorded for the question
// being left is discarded, not kept for re-selection.
func (s *QuizService) Previous() (*SessionView, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil || s.session.index == 0 {
		return s.viewLocked(), false
	}
	s.session.index--
	if n := len(s.session.answers); n > 0 {
		s.session.answers = s.session.answers[:n-1]
	}
	s.persistLocked()
	return s.viewLocked(), true
}

// IsComplete is true once the pointer has advanced past the last question
// and the answer count has reached the session minimum. The two checks
// are independent.
func (s *QuizService) IsComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completeLocked()
}

func (s *QuizService) completeLocked() bool {
	if s.session == nil {
		return false
	}
	return s.session.index >= len(s.session.questions) &&
		len(s.session.answers) >= s.session.minAnswers
}

// Finish scores the answers, appends the result to the history and tears
// the session down.
func (s *QuizService) Finish() (*models.TestResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, ErrNoActiveSession
	}
	if !s.completeLocked() {
		return nil, errors.New("quiz is not complete")
	}

	result, err := s.scoring.CreateTestResult(s.session.answers, s.session.profile)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveTestResult(result); err != nil {
		return nil, err
	}
	if err := s.store.ClearCurrentTest(); err != nil {
		log.Printf("quiz: clear persisted session: %v", err)
	}

	s.session = nil
	s.lastGenerated = nil
	return &result, nil
}

// Reset drops the session, its answers and the generated question set.
func (s *QuizService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	s.lastGenerated = nil
	if err := s.store.ClearCurrentTest(); err != nil {
		log.Printf("quiz: clear persisted session: %v", err)
	}
}

// State returns the current session view, or nil when no quiz is active.
func (s *QuizService) State() *SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *QuizService) persistLocked() {
	sess := s.session
	if sess == nil || len(sess.questions) == 0 {
		return
	}
	ids := make([]string, len(sess.questions))
	for i, q := range sess.questions {
		ids[i] = q.ID
	}
	state := models.QuizState{
		QuestionIDs:  ids,
		Answers:      sess.answers,
		CurrentIndex: sess.index,
		UserProfile:  sess.profile,
		UpdatedAt:    time.Now(),
	}
	// Persistence is best effort: a failed write must not break the
	// in-memory quiz flow.
	if err := s.store.SaveCurrentTest(state); err != nil {
		log.Printf("quiz: persist session: %v", err)
	}
}

func (s *QuizService) viewLocked() *SessionView {
	sess := s.session
	if sess == nil {
		return nil
	}

	view := &SessionView{
		SessionID:      sess.id,
		TotalQuestions: len(sess.questions),
		CurrentIndex:   sess.index,
		AnsweredCount:  len(sess.answers),
		Complete:       s.completeLocked(),
	}
	if view.TotalQuestions > 0 && sess.index < view.TotalQuestions {
		q := sess.questions[sess.index]
		view.CurrentQuestion = &q
		view.Progress = float64(sess.index+1) / float64(view.TotalQuestions)
	} else if view.TotalQuestions > 0 {
		view.Progress = 1
	}
	return view
}

func completionMinimum(produced int) int {
	if produced < MinQuestions {
		return produced
	}
	return MinQuestions
}

// SessionView is the handler-facing snapshot of the running session.
type SessionView struct {
	SessionID       string           `json:"session_id"`
	TotalQuestions  int              `json:"total_questions"`
	CurrentIndex    int              `json:"current_index"`
	AnsweredCount   int              `json:"answered_count"`
	Progress        float64          `json:"progress"`
	Complete        bool             `json:"complete"`
	CurrentQuestion *models.Question `json:"current_question,omitempty"`
}
