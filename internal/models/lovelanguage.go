package models

// LoveLanguageCode identifies one of the five love languages.
type LoveLanguageCode string

const (
	CodeMQ LoveLanguageCode = "MQ" // moments de qualité
	CodeSR LoveLanguageCode = "SR" // services rendus
	CodePQ LoveLanguageCode = "PQ" // paroles valorisantes
	CodeCD LoveLanguageCode = "CD" // cadeaux
	CodeTP LoveLanguageCode = "TP" // toucher physique
)

// LanguageOrder is the canonical enumeration order. Scoring ties and
// procedural option rows both depend on it being stable.
var LanguageOrder = []LoveLanguageCode{CodeMQ, CodeSR, CodePQ, CodeCD, CodeTP}

// LoveLanguage is immutable reference data describing one language.
type LoveLanguage struct {
	Code             LoveLanguageCode `json:"code"`
	Label            string           `json:"label"`
	ShortDescription string           `json:"short_description"`
	LongDescription  string           `json:"long_description"`
	Color            string           `json:"color"`
	Emoji            string           `json:"emoji,omitempty"`
}

var LoveLanguages = []LoveLanguage{
	{
		Code:             CodeMQ,
		Label:            "Moments de qualité",
		Emoji:            "⏰",
		ShortDescription: "Vous vous sentez aimé(e) quand on vous accorde du temps et de l'attention.",
		LongDescription:  "Pour vous, rien ne vaut des moments de qualité passés ensemble, sans distraction. Les conversations profondes, les activités partagées et la présence authentique sont essentielles.",
		Color:            "#FF6B9D",
	},
	{
		Code:             CodeSR,
		Label:            "Services rendus",
		Emoji:            "🤝",
		ShortDescription: "Les actions valent mille mots pour vous.",
		LongDescription:  "Vous vous sentez aimé(e) quand quelqu'un fait quelque chose pour vous faciliter la vie. Les gestes concrets d'aide et de soutien sont votre langage d'amour.",
		Color:            "#4ECDC4",
	},
	{
		Code:             CodePQ,
		Label:            "Paroles valorisantes",
		Emoji:            "💬",
		ShortDescription: "Les mots d'encouragement et de reconnaissance vous touchent profondément.",
		LongDescription:  "Pour vous, les mots ont un pouvoir immense. Les compliments sincères, les encouragements et les paroles de reconnaissance vous nourrissent émotionnellement.",
		Color:            "#FFE66D",
	},
	{
		Code:             CodeCD,
		Label:            "Cadeaux",
		Emoji:            "🎁",
		ShortDescription: "Un cadeau symbolise l'amour et l'attention qu'on vous porte.",
		LongDescription:  "Pour vous, recevoir un cadeau est la preuve tangible que quelqu'un a pensé à vous. Ce n'est pas le prix qui compte, mais l'attention derrière le geste.",
		Color:            "#A8E6CF",
	},
	{
		Code:             CodeTP,
		Label:            "Toucher physique",
		Emoji:            "🤗",
		ShortDescription: "Le contact physique est votre principal moyen de vous sentir connecté(e).",
		LongDescription:  "Pour vous, les câlins, les baisers, tenir la main ou une main sur l'épaule sont essentiels. Le toucher physique approprié vous apaise et vous rassure.",
		Color:            "#C7CEEA",
	},
}

// LoveLanguageByCode returns the reference data for a code, or nil if the
// code is unknown.
func LoveLanguageByCode(code LoveLanguageCode) *LoveLanguage {
	for i := range LoveLanguages {
		if LoveLanguages[i].Code == code {
			return &LoveLanguages[i]
		}
	}
	return nil
}

// ValidLanguageCode reports whether code is one of the five languages.
func ValidLanguageCode(code LoveLanguageCode) bool {
	return LoveLanguageByCode(code) != nil
}
