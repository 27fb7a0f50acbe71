package mind

import (
	"strings"
)

// Mood is the slowly-drifting tone modifier, independent of persona.
type Mood string

const (
	MoodNeutral Mood = "neutral"
	MoodGood    Mood = "good"
	MoodBad     Mood = "bad"
	MoodExcited Mood = "excited"
	MoodTired   Mood = "tired"
)

var allMoods = []Mood{MoodNeutral, MoodGood, MoodBad, MoodExcited, MoodTired}

// moodBaseFactor scales response probability per mood.
var moodBaseFactor = map[Mood]float64{
	MoodNeutral: 1.0,
	MoodGood:    1.2,
	MoodBad:     0.7,
	MoodExcited: 1.3,
	MoodTired:   0.8,
}

// moodTypingFactor scales typing speed per mood.
var moodTypingFactor = map[Mood]float64{
	MoodNeutral: 1.0,
	MoodGood:    1.1,
	MoodBad:     0.9,
	MoodExcited: 1.25,
	MoodTired:   0.75,
}

// idleActions are narrated (/me) phrases per mood for spontaneous actions.
var idleActions = map[Mood][]string{
	MoodNeutral: {"regarde son tel", "se ressert un verre d'eau"},
	MoodGood:    {"sifflote", "sourit devant son écran"},
	MoodBad:     {"soupire", "râle dans son coin"},
	MoodExcited: {"trépigne", "tape du pied en rythme"},
	MoodTired:   {"baille", "s'étire", "se frotte les yeux"},
}

var goodEmojis = []string{"😊", "🙂", "👍"}
var excitedMarks = []string{"!!", " 🔥", " !!!"}

// MoodState is the agent's current mood. Sticky: most UpdateMood calls are
// no-ops, so the mood persists across many messages.
type MoodState struct {
	dice      *Dice
	mood      Mood
	intensity float64
}

// NewMoodState starts neutral at middling intensity.
func NewMoodState(dice *Dice) *MoodState {
	return &MoodState{dice: dice, mood: MoodNeutral, intensity: 0.5}
}

// Current returns the mood tag and its intensity in [0,1].
func (m *MoodState) Current() (Mood, float64) {
	return m.mood, m.intensity
}

// UpdateMood resamples the mood with low probability per invocation.
func (m *MoodState) UpdateMood() {
	if !m.dice.Chance(0.05) {
		return
	}
	m.mood = allMoods[m.dice.Intn(len(allMoods))]
	m.intensity = m.dice.Between(0.3, 1.0)
}

// Modifier returns the response-probability multiplier: the per-mood base
// factor weighted by intensity.
func (m *MoodState) Modifier() float64 {
	return moodBaseFactor[m.mood] * m.intensity
}

// TypingFactor returns the mood's typing-speed multiplier.
func (m *MoodState) TypingFactor() float64 {
	return moodTypingFactor[m.mood]
}

// AdaptResponse nudges text toward the current mood. Each transform has its
// own gate, so mood stays a tendency rather than a rewrite.
func (m *MoodState) AdaptResponse(text string) string {
	if text == "" {
		return text
	}

	switch m.mood {
	case MoodBad:
		if m.dice.Chance(0.3) {
			words := strings.Fields(text)
			if len(words) > 4 {
				text = strings.Join(words[:(len(words)+1)/2], " ")
			}
		}
	case MoodExcited:
		if m.dice.Chance(0.4) {
			text += m.dice.Pick(excitedMarks)
		}
	case MoodTired:
		if m.dice.Chance(0.35) {
			trimmed := strings.TrimRight(text, "!?")
			if trimmed != text {
				text = trimmed + "..."
			}
		}
	case MoodGood:
		if m.dice.Chance(0.3) {
			text += " " + m.dice.Pick(goodEmojis)
		}
	}
	return text
}

// SpontaneousAction rarely returns a mood-appropriate idle phrase, meant to
// be sent as a narrated action rather than a chat line.
func (m *MoodState) SpontaneousAction() (string, bool) {
	if !m.dice.Chance(0.02) {
		return "", false
	}
	actions := idleActions[m.mood]
	if len(actions) == 0 {
		actions = idleActions[MoodNeutral]
	}
	return actions[m.dice.Intn(len(actions))], true
}
