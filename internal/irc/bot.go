package irc

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"irchumanizer/internal/ai"
	"irchumanizer/internal/config"
	"irchumanizer/internal/memory"
	"irchumanizer/internal/mind"
	"irchumanizer/internal/persona"
	"irchumanizer/internal/responder"
)

const (
	reconnectBackoff = 30 * time.Second
	statsInterval    = 10 * time.Minute
)

// Bot ties the transport to the behavioral core. One worker goroutine
// processes messages sequentially; the reader goroutine only answers PING
// and enqueues events, so keep-alive is never blocked by a simulated delay.
type Bot struct {
	cfg           *config.Config
	dice          *mind.Dice
	oracle        *mind.Oracle
	presence      *mind.Presence
	mood          *mind.MoodState
	timing        *mind.Timing
	profile       *persona.Profile
	conversations *memory.Conversations
	router        *responder.Router
	events        chan Event

	clientMu sync.RWMutex
	client   *Client
}

// NewBot builds a fully wired agent from config.
func NewBot(cfg *config.Config, conversations *memory.Conversations) (*Bot, error) {
	dice := mind.NewDice(cfg.Personality.Seed)

	settings, err := mind.NewActivitySettings(cfg.Activity)
	if err != nil {
		return nil, err
	}
	oracle := mind.NewOracle(settings, dice)
	presence := mind.NewPresence(settings, oracle, dice)
	moodState := mind.NewMoodState(dice)

	profile := persona.Generate(cfg.Personality, dice)
	log.Printf("[INFO] Persona: %s, %d ans, %s (%s)", profile.Name, profile.Age,
		profile.Location.City, profile.Location.Region)

	var provider ai.Provider
	if cfg.AI.APIKey != "" {
		provider = ai.NewOpenAIProvider(cfg.AI)
		log.Printf("[INFO] AI provider enabled (model=%s)", cfg.AI.Model)
	} else {
		log.Println("[INFO] No AI key configured, using canned responses only")
	}

	router := responder.NewRouter(cfg.IRC.Nickname, profile, moodState, conversations, provider, dice)

	return &Bot{
		cfg:           cfg,
		dice:          dice,
		oracle:        oracle,
		presence:      presence,
		mood:          moodState,
		timing:        mind.NewTiming(dice),
		profile:       profile,
		conversations: conversations,
		router:        router,
		events:        make(chan Event, 32),
	}, nil
}

// Run connects and processes messages until ctx is done, reconnecting on
// transport errors.
func (b *Bot) Run(ctx context.Context) error {
	go b.worker(ctx)
	go b.statsLoop(ctx)

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		client := NewClient(b.cfg.IRC)
		if err := client.Connect(ctx); err != nil {
			log.Printf("[ERR] Connect failed: %v", err)
		} else {
			b.setClient(client)
			b.readLoop(ctx, client)
			client.Close()
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Printf("[INFO] Reconnecting in %s...", reconnectBackoff)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(reconnectBackoff):
		}
	}
}

func (b *Bot) setClient(c *Client) {
	b.clientMu.Lock()
	b.client = c
	b.clientMu.Unlock()
}

// activeClient returns the current connection; sends on a stale one are
// harmlessly dropped by its closed writer.
func (b *Bot) activeClient() *Client {
	b.clientMu.RLock()
	defer b.clientMu.RUnlock()
	return b.client
}

// readLoop reads server lines until the connection drops.
func (b *Bot) readLoop(ctx context.Context, client *Client) {
	for {
		if ctx.Err() != nil {
			return
		}
		line, err := client.ReadLine()
		if err != nil {
			log.Printf("[ERR] Read failed: %v", err)
			return
		}
		b.handleLine(client, line)
	}
}

func (b *Bot) handleLine(client *Client, line string) {
	if line == "" {
		return
	}

	if strings.HasPrefix(line, "PING") {
		client.SendRaw("PONG" + strings.TrimPrefix(line, "PING"))
		return
	}

	parts := strings.SplitN(line, " ", 3)
	if len(parts) >= 2 && parts[1] == "001" {
		for _, channel := range b.cfg.IRC.Channels {
			client.Join(channel)
		}
		return
	}

	ev, ok := ParsePrivmsg(line)
	if !ok || ev.Sender == b.cfg.IRC.Nickname {
		return
	}

	select {
	case b.events <- ev:
	default:
		log.Printf("[WARN] Event queue full, dropping message from %s", ev.Sender)
	}
}

// worker processes inbound messages one at a time.
func (b *Bot) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-b.events:
			b.handleMessage(ctx, ev)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, ev Event) {
	client := b.activeClient()
	if client == nil {
		return
	}

	now := time.Now()
	b.mood.UpdateMood()

	isPrivate := !strings.HasPrefix(ev.Target, "#")
	contextTarget := ev.Target
	replyTarget := ev.Target
	if isPrivate {
		contextTarget = ev.Sender
		replyTarget = ev.Sender
	}

	log.Printf("[INFO] [%s] <%s> %s", ev.Target, ev.Sender, ev.Text)

	mentioned := strings.Contains(strings.ToLower(ev.Text), strings.ToLower(b.cfg.IRC.Nickname))

	// Snapshot the decision context before recording the inbound message so
	// first-contact detection sees the prior history.
	history := b.conversations.History(contextTarget, isPrivate, 10)
	moodTag, intensity := b.mood.Current()
	dctx := responder.DecisionContext{
		Message:       ev.Text,
		Sender:        ev.Sender,
		Target:        contextTarget,
		IsPrivate:     isPrivate,
		IsMentioned:   mentioned,
		Mood:          moodTag,
		MoodIntensity: intensity,
		MoodModifier:  b.mood.Modifier(),
		ActivityLevel: b.oracle.ActivityLevel(now),
		History:       history,
		UserProfile:   b.conversations.UserProfile(ev.Sender),
		FirstContact:  isPrivate && len(history) == 0,
	}

	// Lurking and absence still observe: record before any gating.
	b.conversations.Append(contextTarget, ev.Sender, ev.Text, isPrivate, false)

	if reason, ok := b.presence.SimulateRandomAbsence(now); ok {
		log.Printf("[MIND] action=absence reason=%q", reason)
		client.SendAction(replyTarget, reason)
		return
	}

	if b.presence.CheckAbsenceEnd(now) {
		if msg, ok := b.presence.ReturnMessage(); ok {
			client.SendMessage(replyTarget, msg)
			b.presence.RecordResponse(now)
			log.Printf("[MIND] action=return msg=%q", msg)
		}
	}

	baseProb := b.cfg.Behavior.ResponseProbability * b.mood.Modifier()
	if mentioned {
		baseProb = 0.9
	}
	if !b.presence.ShouldRespond(baseProb, now) {
		log.Printf("[MIND] action=skip state=%s", b.presence.State(now))
		return
	}

	if action, ok := b.mood.SpontaneousAction(); ok {
		client.SendAction(replyTarget, action)
		b.presence.RecordResponse(now)
		log.Printf("[MIND] action=spontaneous text=%q", action)
	}

	response, ok := b.router.Respond(ctx, dctx)
	if !ok {
		return
	}

	reading := b.timing.ReadingDelay(ev.Text)
	typing := b.timing.TypingDelay(response, mind.TypingTraits{
		GeekLevel:  b.profile.GeekLevel,
		Age:        b.profile.Age,
		MoodFactor: b.mood.TypingFactor(),
	})
	adaptive := b.presence.AdaptiveDelay(b.cfg.Behavior.MinResponseDelay, b.cfg.Behavior.MaxResponseDelay, now)
	delay := mind.FinalDelay(reading, typing, adaptive)

	select {
	case <-ctx.Done():
		return // interrupted sends are not retried
	case <-time.After(time.Duration(delay * float64(time.Second))):
	}

	client.SendMessage(replyTarget, response)
	b.presence.RecordResponse(time.Now())
	log.Printf("[INFO] [%s] <%s> %s (delay=%.1fs)", replyTarget, b.cfg.IRC.Nickname, response, delay)
}

// statsLoop periodically logs presence and memory statistics.
func (b *Bot) statsLoop(ctx context.Context) {
	ticker := time.NewTicker(statsInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			log.Printf("[MIND] action=stats presence=%v memory=%v",
				b.presence.Stats(time.Now()), b.conversations.Stats())
		}
	}
}
