package persona

import (
	"fmt"
	"strings"

	"irchumanizer/internal/config"
	"irchumanizer/internal/mind"
)

// Profile is the fixed bundle of simulated identity and trait attributes.
// Effectively immutable after generation; the mood engine and text pipeline
// only read it.
type Profile struct {
	Name     string
	Gender   string // "M", "F", "NB"
	Age      int
	Location Location

	HumorLevel   float64
	Casualness   float64
	Friendliness float64
	GeekLevel    float64

	WritingStyles   []string
	PreferredEmojis []string

	Interests []string
	Dislikes  []string

	Expressions []string
	Greetings   []string
}

// Generate builds a credible profile, honoring config overrides and sampling
// everything else from the fixed pools.
func Generate(cfg config.PersonalityConfig, dice *mind.Dice) *Profile {
	gender := strings.ToUpper(strings.TrimSpace(cfg.Gender))
	if gender != "M" && gender != "F" && gender != "NB" {
		genders := []string{"M", "F", "NB"}
		gender = genders[dice.Intn(len(genders))]
	}

	var names []string
	switch gender {
	case "M":
		names = masculineNames
	case "F":
		names = feminineNames
	default:
		names = neutralNames
	}
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		name = dice.Pick(names)
	}

	age := cfg.Age
	if age <= 0 {
		age = dice.IntBetween(16, 45)
	}

	var location Location
	if cfg.City != "" && cfg.Region != "" {
		location = Location{City: cfg.City, Region: cfg.Region, Country: "France"}
	} else {
		location = frenchLocations[dice.Intn(len(frenchLocations))]
	}

	humor := cfg.HumorLevel
	if humor <= 0 {
		humor = dice.Between(0.3, 0.9)
	}
	casualness := cfg.Casualness
	if casualness <= 0 {
		casualness = dice.Between(0.4, 1.0)
	}
	friendliness := cfg.Friendliness
	if friendliness <= 0 {
		friendliness = dice.Between(0.5, 0.9)
	}
	geek := cfg.GeekLevel
	if geek <= 0 {
		geek = dice.Between(0.2, 0.8)
	}

	styles := cfg.WritingStyles
	if len(styles) == 0 {
		count := dice.IntBetween(1, 3)
		for _, i := range dice.Perm(len(allWritingStyles))[:count] {
			styles = append(styles, allWritingStyles[i])
		}
	}

	interests := cfg.Interests
	if len(interests) == 0 {
		count := dice.IntBetween(3, 8)
		for _, i := range dice.Perm(len(interestsPool))[:count] {
			interests = append(interests, interestsPool[i])
		}
	}

	return &Profile{
		Name:            name,
		Gender:          gender,
		Age:             age,
		Location:        location,
		HumorLevel:      humor,
		Casualness:      casualness,
		Friendliness:    friendliness,
		GeekLevel:       geek,
		WritingStyles:   styles,
		PreferredEmojis: defaultEmojis,
		Interests:       interests,
		Dislikes:        defaultDislikes,
		Expressions:     defaultExpressions,
		Greetings:       defaultGreetings,
	}
}

// PromptContext renders the persona block embedded in the AI system prompt.
func (p *Profile) PromptContext() string {
	genderText := map[string]string{
		"M":  "Tu es un homme",
		"F":  "Tu es une femme",
		"NB": "Tu es non-binaire",
	}[p.Gender]

	maxInterests := len(p.Interests)
	if maxInterests > 5 {
		maxInterests = 5
	}

	return fmt.Sprintf(`%s de %d ans qui s'appelle %s.
Tu habites à %s (%s).

Traits de personnalité:
- Niveau d'humour: %d/10
- Décontraction: %d/10
- Amabilité: %d/10
- Côté geek: %d/10

Tes centres d'intérêt: %s
Tu n'aimes pas: %s

Style d'écriture préféré: %s
`,
		genderText, p.Age, p.Name,
		p.Location.City, p.Location.Region,
		int(p.HumorLevel*10), int(p.Casualness*10),
		int(p.Friendliness*10), int(p.GeekLevel*10),
		strings.Join(p.Interests[:maxInterests], ", "),
		strings.Join(p.Dislikes, ", "),
		strings.Join(p.WritingStyles, ", "))
}
