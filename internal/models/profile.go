package models

import "time"

// RelationshipType filters which questions and suggestions apply to a user.
type RelationshipType string

const (
	RelationCelibataire RelationshipType = "celibataire"
	RelationEnCouple    RelationshipType = "en_couple"
	RelationFiance      RelationshipType = "fiance"
	RelationMarie       RelationshipType = "marie"
	RelationParent      RelationshipType = "parent"
)

var RelationshipTypes = []RelationshipType{
	RelationCelibataire,
	RelationEnCouple,
	RelationFiance,
	RelationMarie,
	RelationParent,
}

var relationshipLabels = map[RelationshipType]string{
	RelationCelibataire: "Célibataire",
	RelationEnCouple:    "En couple",
	RelationFiance:      "Fiancé(e)",
	RelationMarie:       "Marié(e)",
	RelationParent:      "Parent",
}

// RelationshipLabel returns the display label for a relationship type.
// Unknown types fall back to the raw value.
func RelationshipLabel(rt RelationshipType) string {
	if label, ok := relationshipLabels[rt]; ok {
		return label
	}
	return string(rt)
}

// ValidRelationshipType reports whether rt is one of the known types.
func ValidRelationshipType(rt RelationshipType) bool {
	_, ok := relationshipLabels[rt]
	return ok
}

// UserProfile is the persisted profile read by question selection.
type UserProfile struct {
	FirstName        string           `json:"first_name,omitempty"`
	RelationshipType RelationshipType `json:"relationship_type"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at,omitempty"`
}
