package mind

import (
	"strings"
)

// TypingTraits are the persona-derived inputs to the typing simulation,
// passed as plain values to keep this package free of persona types.
type TypingTraits struct {
	GeekLevel  float64 // 0..1, raises speed up to +30%
	Age        int
	MoodFactor float64 // from MoodState.TypingFactor
}

// Timing simulates human reading and typing delays.
type Timing struct {
	dice *Dice
}

// NewTiming creates a Timing simulator over the agent's dice.
func NewTiming(dice *Dice) *Timing {
	return &Timing{dice: dice}
}

// ReadingDelay returns seconds spent "reading" an incoming message: word
// count over a sampled reading speed plus a thinking term, clamped to
// [0.5, 4.0].
func (t *Timing) ReadingDelay(message string) float64 {
	words := float64(len(strings.Fields(message)))
	speed := t.dice.Between(3.0, 6.0) // words per second
	delay := words/speed + t.dice.Between(0.3, 1.5)
	return clamp(delay, 0.5, 4.0)
}

// TypingDelay returns seconds spent "typing" a response: character count over
// a sampled typing speed scaled by persona and mood, plus a thinking pause
// for longer messages, with ±30% variation, clamped to [1.0, 15.0].
func (t *Timing) TypingDelay(response string, traits TypingTraits) float64 {
	chars := float64(len([]rune(response)))
	speed := t.dice.Between(3.0, 5.5) // chars per second

	speed *= 1.0 + 0.3*traits.GeekLevel
	if traits.Age > 0 && traits.Age < 20 {
		speed *= 1.15
	} else if traits.Age > 40 {
		speed *= 0.85
	}
	if traits.MoodFactor > 0 {
		speed *= traits.MoodFactor
	}

	delay := chars / speed
	switch {
	case chars > 100:
		delay += t.dice.Between(1.0, 3.0)
	case chars > 50:
		delay += t.dice.Between(0.5, 1.5)
	}

	delay *= t.dice.Between(0.7, 1.3)
	return clamp(delay, 1.0, 15.0)
}

// FinalDelay combines the delays into the single pre-send wait: typing
// realism dominates unless the activity-driven delay is proportionally
// larger.
func FinalDelay(reading, typing, adaptive float64) float64 {
	scaled := adaptive * 0.3
	if typing > scaled {
		return reading + typing
	}
	return reading + scaled
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
