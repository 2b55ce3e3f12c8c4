package models

import "time"

// QuestionSource distinguishes curated bank questions from questions
// synthesized at quiz-initialization time.
type QuestionSource string

const (
	SourceStatic     QuestionSource = "static"
	SourceProcedural QuestionSource = "procedural"
)

// QuestionOption is one answer choice, scoring toward a single language.
type QuestionOption struct {
	ID           string           `json:"id"`
	Label        string           `json:"label"` // A-E
	Text         string           `json:"text"`
	LanguageCode LoveLanguageCode `json:"language_code"`
}

// Question is a quiz question. Static questions come from the content
// bank and are never mutated; procedural ones live only for one session.
type Question struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Order  int    `json:"order"`
	Active bool   `json:"active"`
	// Empty means the question applies to every relationship type.
	RelationshipTypes []RelationshipType `json:"relationship_types,omitempty"`
	Options           []QuestionOption   `json:"options"`
	Source            QuestionSource     `json:"source,omitempty"`
}

// EligibleFor reports whether the question applies to a relationship type.
func (q Question) EligibleFor(rt RelationshipType) bool {
	if len(q.RelationshipTypes) == 0 {
		return true
	}
	for _, t := range q.RelationshipTypes {
		if t == rt {
			return true
		}
	}
	return false
}

// Option returns the option with the given id, or nil.
func (q Question) Option(optionID string) *QuestionOption {
	for i := range q.Options {
		if q.Options[i].ID == optionID {
			return &q.Options[i]
		}
	}
	return nil
}

// QuestionAnswer records one submitted choice. Immutable once created:
// going back in the quiz removes the record instead of rewriting it.
type QuestionAnswer struct {
	QuestionID       string           `json:"question_id"`
	SelectedOptionID string           `json:"selected_option_id"`
	LanguageCode     LoveLanguageCode `json:"language_code"`
	Timestamp        time.Time        `json:"timestamp"`
}

// QuestionBank is the wire shape of the questions content file.
type QuestionBank struct {
	Version     string     `json:"version"`
	LastUpdated string     `json:"lastUpdated"`
	Questions   []Question `json:"questions"`
}
