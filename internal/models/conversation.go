package models

// ConversationTheme groups conversation prompts by subject.
type ConversationTheme string

const (
	ThemeEnfance      ConversationTheme = "enfance"
	ThemeValeurs      ConversationTheme = "valeurs"
	ThemeRelations    ConversationTheme = "relations"
	ThemeAmour        ConversationTheme = "amour"
	ThemeReves        ConversationTheme = "reves"
	ThemeSpiritualite ConversationTheme = "spiritualite"
	ThemePersonnalite ConversationTheme = "personnalite"
	ThemeLoisirs      ConversationTheme = "loisirs"
	ThemeTravail      ConversationTheme = "travail"
	ThemeFamille      ConversationTheme = "famille"
	ThemeCulture      ConversationTheme = "culture"
	ThemeBonus        ConversationTheme = "bonus"
)

// ConversationDepth is how personal a prompt gets.
type ConversationDepth string

const (
	DepthLeger   ConversationDepth = "leger"
	DepthMoyen   ConversationDepth = "moyen"
	DepthProfond ConversationDepth = "profond"
)

// ConversationQuestion is a curated conversation prompt.
type ConversationQuestion struct {
	ID         string            `json:"id"`
	Text       string            `json:"text"`
	Theme      ConversationTheme `json:"theme"`
	Depth      ConversationDepth `json:"depth"`
	Tags       []string          `json:"tags,omitempty"`
	IsFavorite bool              `json:"is_favorite,omitempty"`
}

// ConversationFilter narrows prompts by theme and depth. Zero values
// impose no constraint.
type ConversationFilter struct {
	Theme         ConversationTheme `json:"theme,omitempty" form:"theme"`
	Depth         ConversationDepth `json:"depth,omitempty" form:"depth"`
	FavoritesOnly bool              `json:"favorites_only,omitempty" form:"favorites_only"`
}

// ConversationBank is the wire shape of the conversation prompts file.
type ConversationBank struct {
	Version     string                 `json:"version"`
	LastUpdated string                 `json:"lastUpdated"`
	Questions   []ConversationQuestion `json:"questions"`
}
