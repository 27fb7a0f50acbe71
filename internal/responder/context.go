package responder

import (
	"irchumanizer/internal/memory"
	"irchumanizer/internal/mind"
)

// DecisionContext is the read-only snapshot assembled once per inbound
// message and passed down the cascade, so strategies never reach back into
// live presence/mood state mid-decision.
type DecisionContext struct {
	Message     string
	Sender      string
	Target      string
	IsPrivate   bool
	IsMentioned bool

	Mood          mind.Mood
	MoodIntensity float64
	MoodModifier  float64

	ActivityLevel float64

	// History is the context's history before the current message.
	History      []memory.Message
	UserProfile  memory.UserProfile
	FirstContact bool
}
