package responder

import (
	"context"
	"log"
	"strings"
	"time"

	"irchumanizer/internal/ai"
	"irchumanizer/internal/memory"
	"irchumanizer/internal/mind"
	"irchumanizer/internal/persona"
	"irchumanizer/internal/texture"
)

// aiCallTimeout bounds one provider call; on expiry the deterministic tiers
// take over.
const aiCallTimeout = 20 * time.Second

// Router selects a response strategy for an inbound message through an
// ordered-priority cascade; each tier decides internally whether to fire.
// Every non-nil candidate then goes through persona style adaptation, mood
// adaptation and the perturbation pipeline before being recorded and
// returned.
type Router struct {
	nickname      string
	profile       *persona.Profile
	styler        *persona.Styler
	facts         *persona.Facts
	mood          *mind.MoodState
	pipeline      *texture.Pipeline
	conversations *memory.Conversations
	provider      ai.Provider // nil disables the AI tier
	dice          *mind.Dice
}

// NewRouter wires the response-generation core. provider may be nil.
func NewRouter(nickname string, profile *persona.Profile, moodState *mind.MoodState,
	conversations *memory.Conversations, provider ai.Provider, dice *mind.Dice) *Router {
	return &Router{
		nickname:      nickname,
		profile:       profile,
		styler:        persona.NewStyler(profile, dice),
		facts:         persona.NewFacts(profile, dice),
		mood:          moodState,
		pipeline:      texture.NewPipeline(dice),
		conversations: conversations,
		provider:      provider,
		dice:          dice,
	}
}

// Respond runs the cascade for one message. The returned text has already
// been recorded in conversation memory as bot-authored.
func (r *Router) Respond(ctx context.Context, dctx DecisionContext) (string, bool) {
	candidate, ok := r.candidate(ctx, dctx)
	if !ok {
		return "", false
	}

	response := r.styler.Adapt(candidate)
	response = r.mood.AdaptResponse(response)
	response = r.pipeline.Apply(response)
	if strings.TrimSpace(response) == "" {
		return "", false
	}

	r.conversations.Append(dctx.Target, r.nickname, response, dctx.IsPrivate, true)
	return response, true
}

// candidate walks the strategy tiers in priority order and returns the first
// raw (pre-adaptation) response.
func (r *Router) candidate(ctx context.Context, dctx DecisionContext) (string, bool) {
	message := dctx.Message
	lower := strings.ToLower(message)

	// 1. Command/control lines and automated reaction markers never get an
	// answer.
	if strings.HasPrefix(message, "!") || strings.HasPrefix(message, "/") || strings.HasPrefix(message, "\x01") {
		return "", false
	}

	// 2. Attentional miss: sometimes a non-mention simply goes unnoticed.
	if !dctx.IsMentioned && !r.dice.Chance(0.8) {
		return "", false
	}

	// 3. Personalized greeting for users the bot already knows.
	if containsAny(lower, greetingKeywords) {
		if greeting, known := r.conversations.FriendlyGreeting(dctx.Sender); known {
			prob := 0.25
			if dctx.IsMentioned {
				prob = 0.6
			}
			if r.dice.Chance(prob) {
				return greeting, true
			}
		}
	}

	// 4. Direct address gets a mood-bucketed acknowledgement.
	if dctx.IsMentioned {
		prob := 0.8 * dctx.MoodModifier
		if prob > 1 {
			prob = 1
		}
		if r.dice.Chance(prob) {
			pool := mentionResponses[dctx.Mood]
			if len(pool) == 0 {
				pool = mentionResponses[mind.MoodNeutral]
			}
			reply := r.dice.Pick(pool)
			return strings.ReplaceAll(reply, "{name}", dctx.Sender), true
		}
	}

	// 5. Contextual emotional reactions, one gate per keyword bucket.
	for _, bucket := range reactionBuckets {
		if containsAny(lower, bucket.keywords) && r.dice.Chance(bucket.probability) {
			return r.dice.Pick(bucket.responses), true
		}
	}

	// 6. Private conversations get their own handling.
	if dctx.IsPrivate {
		if reply, ok := r.privateCandidate(dctx, lower); ok {
			return reply, true
		}
	}

	// 7. "qui du 69" style geolocation questions.
	if reply, ok := r.facts.LocationResponse(message); ok {
		return reply, true
	}

	// 8. Age questions.
	if reply, ok := r.facts.AgeResponse(message); ok {
		return reply, true
	}

	// 9. AI-backed reply; failures fall through silently to the
	// deterministic tiers.
	if r.provider != nil {
		if reply, ok := r.aiCandidate(ctx, dctx); ok {
			return reply, true
		}
	}

	// 10. Keyword-based generic fallback.
	return r.fallbackCandidate(dctx, lower), true
}

// privateCandidate handles one-to-one conversations.
func (r *Router) privateCandidate(dctx DecisionContext, lower string) (string, bool) {
	if dctx.FirstContact {
		return r.dice.Pick(firstContactWelcome), true
	}
	if containsAny(lower, helpKeywords) {
		return r.dice.Pick(helpResponses), true
	}
	if containsAny(lower, confidentialityKeywords) {
		return r.dice.Pick(confidentialityResponses), true
	}
	if containsAny(lower, botIdentityKeywords) {
		return r.dice.Pick(botIdentityResponses), true
	}
	if containsAny(lower, botLocationKeywords) {
		return "j'habite à " + r.profile.Location.City, true
	}
	if containsAny(lower, greetingKeywords) {
		return r.dice.Pick(r.profile.Greetings) + " " + dctx.Sender, true
	}
	if containsAny(lower, farewellKeywords) {
		return r.dice.Pick(farewellResponses), true
	}
	if r.dice.Chance(0.7) {
		return r.dice.Pick(personalEngagementResponses), true
	}
	return "", false
}

// aiCandidate calls the text-generation provider. Errors are logged and
// swallowed; the router always has a fallback path.
func (r *Router) aiCandidate(ctx context.Context, dctx DecisionContext) (string, bool) {
	callCtx, cancel := context.WithTimeout(ctx, aiCallTimeout)
	defer cancel()

	messages := buildMessages(r.profile, r.conversations, dctx)
	reply, err := r.provider.Generate(callCtx, messages)
	if err != nil {
		log.Printf("[MIND] action=ai_fallback sender=%s err=%v", dctx.Sender, err)
		return "", false
	}

	if len([]rune(reply)) > maxAIResponseLength {
		runes := []rune(reply)
		reply = string(runes[:maxAIResponseLength-3]) + "..."
	}
	return reply, true
}

// fallbackCandidate is the terminal tier: greeting pool, question pool or
// casual pool. Always produces something.
func (r *Router) fallbackCandidate(dctx DecisionContext, lower string) string {
	if containsAny(lower, greetingKeywords) {
		reply := r.dice.Pick(r.profile.Greetings)
		if dctx.Sender != "" {
			reply += " " + dctx.Sender
		}
		return reply
	}

	if strings.Contains(dctx.Message, "?") || containsWord(lower, interrogativeWords) {
		return r.dice.Pick(questionResponses)
	}
	return r.dice.Pick(casualResponses)
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func containsWord(s string, words []string) bool {
	fields := strings.Fields(s)
	for _, w := range words {
		for _, f := range fields {
			if strings.Trim(f, ".,!?;:") == w {
				return true
			}
		}
	}
	return false
}
