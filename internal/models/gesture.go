package models

// GestureCategory is the free-form classification tag on gestures.
type GestureCategory string

const (
	CategoryCadeau   GestureCategory = "cadeau"
	CategoryMoment   GestureCategory = "moment"
	CategoryService  GestureCategory = "service"
	CategoryMessage  GestureCategory = "message"
	CategoryPhysique GestureCategory = "physique"
	CategoryAutre    GestureCategory = "autre"
)

var GestureCategories = []GestureCategory{
	CategoryCadeau,
	CategoryMoment,
	CategoryService,
	CategoryMessage,
	CategoryPhysique,
	CategoryAutre,
}

// Gesture is a curated suggestion. Canonical content stays immutable;
// favorite status is an overlay joined at read time.
type Gesture struct {
	ID                string             `json:"id"`
	Title             string             `json:"title"`
	Description       string             `json:"description"`
	LanguageCode      LoveLanguageCode   `json:"language_code"`
	RelationshipTypes []RelationshipType `json:"relationship_types,omitempty"`
	Category          GestureCategory    `json:"category"`
	IsFavorite        bool               `json:"is_favorite,omitempty"`
}

// EligibleFor reports whether the gesture applies to a relationship type.
// An empty list matches everything.
func (g Gesture) EligibleFor(rt RelationshipType) bool {
	if len(g.RelationshipTypes) == 0 {
		return true
	}
	for _, t := range g.RelationshipTypes {
		if t == rt {
			return true
		}
	}
	return false
}

// GestureFilter selects gestures. All criteria are optional and combined
// with AND; zero values impose no constraint.
type GestureFilter struct {
	LanguageCode     LoveLanguageCode `json:"language_code,omitempty" form:"language_code"`
	RelationshipType RelationshipType `json:"relationship_type,omitempty" form:"relationship_type"`
	Category         GestureCategory  `json:"category,omitempty" form:"category"`
	SearchText       string           `json:"search_text,omitempty" form:"search_text"`
	FavoritesOnly    bool             `json:"favorites_only,omitempty" form:"favorites_only"`
}

// GestureBank is the wire shape of the gestures content file.
type GestureBank struct {
	Version     string    `json:"version"`
	LastUpdated string    `json:"lastUpdated"`
	Gestures    []Gesture `json:"gestures"`
}
