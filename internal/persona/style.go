package persona

import (
	"strings"

	"irchumanizer/internal/mind"
)

// Styler applies the persona's declared writing styles to outgoing text.
type Styler struct {
	profile *Profile
	dice    *mind.Dice
}

// NewStyler creates a Styler for profile using the agent's dice.
func NewStyler(profile *Profile, dice *mind.Dice) *Styler {
	return &Styler{profile: profile, dice: dice}
}

// Adapt rewrites text toward the persona's declared styles. Each style gets
// its own gate, so the persona colors the text rather than rewriting it.
func (s *Styler) Adapt(text string) string {
	if text == "" {
		return text
	}

	result := text
	for _, style := range s.profile.WritingStyles {
		if s.dice.Chance(0.4) {
			result = s.applyStyle(result, style)
		}
	}

	if s.dice.Chance(s.profile.HumorLevel * 0.3) {
		emoji := s.dice.Pick(s.profile.PreferredEmojis)
		if s.dice.Chance(0.5) {
			result = result + " " + emoji
		} else {
			result = emoji + " " + result
		}
	}

	return result
}

func (s *Styler) applyStyle(text, style string) string {
	pattern, ok := writingPatterns[style]
	if !ok {
		return text // "correct" has no substitutions
	}

	result := strings.ToLower(text)

	for original, alternatives := range pattern.replacements {
		if strings.Contains(result, original) && s.dice.Chance(0.6) {
			result = strings.Replace(result, original, s.dice.Pick(alternatives), 1)
		}
	}

	if len(pattern.expressions) > 0 && s.dice.Chance(0.2) {
		expr := s.dice.Pick(pattern.expressions)
		if s.dice.Chance(0.5) {
			result = expr + " " + result
		} else {
			result = result + " " + expr
		}
	}

	if style == "sms" && len(pattern.shortcuts) > 0 && s.dice.Chance(0.3) {
		result = result + " " + s.dice.Pick(pattern.shortcuts)
	}

	return result
}
