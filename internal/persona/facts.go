package persona

import (
	"fmt"
	"strings"

	"irchumanizer/internal/mind"
)

var locationKeywords = []string{
	"qui du", "quelqu'un du", "qui de", "qui est du", "qui habite",
	"d'où tu viens", "tu es d'où", "région", "département", "ville",
}

// Facts answers canned identity questions (hometown, age) from the profile.
type Facts struct {
	profile *Profile
	dice    *mind.Dice
}

// NewFacts creates a Facts responder for profile.
func NewFacts(profile *Profile, dice *mind.Dice) *Facts {
	return &Facts{profile: profile, dice: dice}
}

// LocationResponse answers geolocation questions ("qui du 69 ?"). Fires when
// the message names our département or asks generally; stays silent when a
// different département is named.
func (f *Facts) LocationResponse(message string) (string, bool) {
	lower := strings.ToLower(message)

	matched := false
	for _, kw := range locationKeywords {
		if strings.Contains(lower, kw) {
			matched = true
			break
		}
	}
	if !matched {
		return "", false
	}

	var regionMentioned string
	for _, word := range strings.Fields(lower) {
		if len(word) >= 2 && len(word) <= 3 && isDigits(word) {
			regionMentioned = word
			break
		}
	}

	loc := f.profile.Location
	if regionMentioned != "" && regionMentioned != loc.Region {
		return "", false
	}

	responses := []string{
		fmt.Sprintf("moi je suis de %s", loc.City),
		fmt.Sprintf("par ici, %s represent !", loc.City),
		fmt.Sprintf("%s dans le %s", loc.City, loc.Region),
		fmt.Sprintf("yo %s ici", loc.City),
		fmt.Sprintf("présent, %s ftw", loc.City),
	}
	return f.dice.Pick(responses), true
}

// AgeResponse answers age questions, phrased per age bracket.
func (f *Facts) AgeResponse(message string) (string, bool) {
	lower := strings.ToLower(message)
	if !strings.Contains(lower, "âge") && !strings.Contains(lower, "age") {
		return "", false
	}

	age := f.profile.Age
	switch {
	case age < 20:
		return fmt.Sprintf("j'ai %d ans jsp pk", age), true
	case age < 30:
		return fmt.Sprintf("%d ans, dans la force de l'age mdr", age), true
	default:
		return fmt.Sprintf("j'ai %d ans, ça passe encore", age), true
	}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
