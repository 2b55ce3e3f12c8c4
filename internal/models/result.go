package models

import "time"

// LanguageScore is the tally for one language in a completed quiz.
type LanguageScore struct {
	Code       LoveLanguageCode `json:"code"`
	Score      int              `json:"score"`
	Percentage int              `json:"percentage"`
}

// TestResult is one completed quiz, appended to the persisted history.
type TestResult struct {
	ID                string           `json:"id"`
	Date              time.Time        `json:"date"`
	UserProfile       UserProfile      `json:"user_profile"`
	Answers           []QuestionAnswer `json:"answers"`
	Scores            []LanguageScore  `json:"scores"`
	PrimaryLanguage   LoveLanguageCode `json:"primary_language"`
	SecondaryLanguage LoveLanguageCode `json:"secondary_language,omitempty"`
	TotalQuestions    int              `json:"total_questions"`
}

// TestStatistics summarizes a result for display.
type TestStatistics struct {
	AverageScore      float64            `json:"average_score"`
	HighestScore      LanguageScore      `json:"highest_score"`
	LowestScore       LanguageScore      `json:"lowest_score"`
	IsBalanced        bool               `json:"is_balanced"`
	DominantLanguages []LoveLanguageCode `json:"dominant_languages"`
}

// LanguageDiff is the per-language percentage gap between two results.
type LanguageDiff struct {
	Language LoveLanguageCode `json:"language"`
	Diff     int              `json:"diff"`
}

// ResultComparison compares two results, typically two partners.
type ResultComparison struct {
	CommonLanguages []LoveLanguageCode `json:"common_languages"`
	Differences     []LanguageDiff     `json:"differences"`
	Compatibility   int                `json:"compatibility"`
}

// QuizState is the persisted snapshot of an in-progress quiz. It is only
// valid while the captured profile's relationship type matches the
// current profile; otherwise it is discarded and a fresh quiz starts.
type QuizState struct {
	QuestionIDs  []string         `json:"question_ids"`
	Answers      []QuestionAnswer `json:"answers"`
	CurrentIndex int              `json:"current_index"`
	UserProfile  UserProfile      `json:"user_profile"`
	UpdatedAt    time.Time        `json:"updated_at"`
}
