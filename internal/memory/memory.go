package memory

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"irchumanizer/datastore"
)

// Message is one remembered line of conversation.
type Message struct {
	Timestamp time.Time `json:"timestamp"`
	Sender    string    `json:"sender"`
	Text      string    `json:"message"`
	IsBot     bool      `json:"is_bot"`
}

// UserProfile is what the bot has inferred about another user.
type UserProfile struct {
	MessageCount     int
	AvgMessageLength float64
	CasualnessScore  float64
	QuestionRatio    float64
	SampleMessages   []string
}

var casualIndicators = []string{
	"mdr", "lol", "ptdr", "xd", "^^", ":)", ":(", "jsp", "bcp",
}

// Conversations is the per-context bounded conversation memory, persisted
// through the datastore's reload-and-save cycle. One instance per agent.
type Conversations struct {
	ds          *datastore.DataStore
	maxMessages int
	appends     int
}

// New opens (or creates) the memory file at path.
func New(path string, maxMessages int) (*Conversations, error) {
	ds, err := datastore.New(path)
	if err != nil {
		return nil, fmt.Errorf("memory: %w", err)
	}
	if maxMessages <= 0 {
		maxMessages = 50
	}
	m := &Conversations{ds: ds, maxMessages: maxMessages}
	m.cleanOldMessages(7 * 24 * time.Hour)
	return m, nil
}

// ContextID derives the storage key for a target: private conversations key
// on the peer nick, channels on the channel name.
func ContextID(target string, isPrivate bool) string {
	if isPrivate {
		return "private:" + target
	}
	return "channel:" + target
}

// Append records a message in its context, truncating to the configured
// bound. Saves to disk every 10 appends; the autosave ticker covers the rest.
func (m *Conversations) Append(target, sender, text string, isPrivate, isBot bool) {
	contextID := ContextID(target, isPrivate)
	msgs := m.history(contextID)
	msgs = append(msgs, Message{
		Timestamp: time.Now(),
		Sender:    sender,
		Text:      text,
		IsBot:     isBot,
	})
	if len(msgs) > m.maxMessages {
		msgs = msgs[len(msgs)-m.maxMessages:]
	}
	m.ds.Add(contextID, msgs)

	m.appends++
	if m.appends%10 == 0 {
		if err := m.ds.SaveToFile(); err != nil {
			log.Printf("[WARN] memory save failed: %v", err)
		}
	}
}

// History returns the last limit messages of a context, oldest first.
func (m *Conversations) History(target string, isPrivate bool, limit int) []Message {
	msgs := m.history(ContextID(target, isPrivate))
	if limit > 0 && len(msgs) > limit {
		return msgs[len(msgs)-limit:]
	}
	return msgs
}

// history decodes a context's stored value. Values read back after a reload
// arrive as generic JSON, so decode through a marshal round trip.
func (m *Conversations) history(contextID string) []Message {
	raw, ok := m.ds.Get(contextID)
	if !ok {
		return nil
	}
	if msgs, ok := raw.([]Message); ok {
		return msgs
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil
	}
	var msgs []Message
	if err := json.Unmarshal(data, &msgs); err != nil {
		return nil
	}
	return msgs
}

// FormatHistoryForAI renders a context's tail as prompt-ready lines.
func (m *Conversations) FormatHistoryForAI(target string, isPrivate bool, limit int) string {
	history := m.History(target, isPrivate, limit)
	if len(history) == 0 {
		return ""
	}

	var b strings.Builder
	if isPrivate {
		b.WriteString("[Contexte: conversation privée]\n")
	} else {
		fmt.Fprintf(&b, "[Contexte: salon %s]\n", target)
	}
	for _, msg := range history {
		fmt.Fprintf(&b, "%s <%s> %s\n", msg.Timestamp.Format("15:04"), msg.Sender, msg.Text)
	}
	return strings.TrimRight(b.String(), "\n")
}

// UserProfile infers style attributes for a user from all contexts.
func (m *Conversations) UserProfile(nick string) UserProfile {
	var userMessages []string
	for _, key := range m.ds.Keys() {
		for _, msg := range m.history(key) {
			if msg.Sender == nick && !msg.IsBot {
				userMessages = append(userMessages, msg.Text)
			}
		}
	}

	total := len(userMessages)
	if total == 0 {
		return UserProfile{}
	}

	var lengthSum, casualHits, questions int
	for _, text := range userMessages {
		lengthSum += len(text)
		lower := strings.ToLower(text)
		for _, indicator := range casualIndicators {
			if strings.Contains(lower, indicator) {
				casualHits++
			}
		}
		if strings.Contains(text, "?") {
			questions++
		}
	}

	samples := userMessages
	if len(samples) > 3 {
		samples = samples[len(samples)-3:]
	}

	return UserProfile{
		MessageCount:     total,
		AvgMessageLength: float64(lengthSum) / float64(total),
		CasualnessScore:  float64(casualHits) / float64(total),
		QuestionRatio:    float64(questions) / float64(total),
		SampleMessages:   samples,
	}
}

// FriendlyGreeting returns a personal greeting for users the bot already
// knows; empty for strangers.
func (m *Conversations) FriendlyGreeting(nick string) (string, bool) {
	profile := m.UserProfile(nick)
	if profile.MessageCount < 5 {
		return "", false
	}
	return "re " + nick, true
}

// cleanOldMessages drops messages older than maxAge, and contexts emptied by
// the sweep.
func (m *Conversations) cleanOldMessages(maxAge time.Duration) {
	cutoff := time.Now().Add(-maxAge)
	for _, key := range m.ds.Keys() {
		msgs := m.history(key)
		var recent []Message
		for _, msg := range msgs {
			if msg.Timestamp.After(cutoff) {
				recent = append(recent, msg)
			}
		}
		if len(recent) == 0 {
			m.ds.Delete(key)
		} else if len(recent) != len(msgs) {
			m.ds.Add(key, recent)
		}
	}
}

// Stats summarizes memory occupancy for periodic logging.
func (m *Conversations) Stats() map[string]any {
	keys := m.ds.Keys()
	var totalMessages, channels, privates int
	for _, key := range keys {
		totalMessages += len(m.history(key))
		if strings.HasPrefix(key, "channel:") {
			channels++
		} else if strings.HasPrefix(key, "private:") {
			privates++
		}
	}
	return map[string]any{
		"total_contexts":   len(keys),
		"total_messages":   totalMessages,
		"channel_contexts": channels,
		"private_contexts": privates,
	}
}

// Save forces a flush to disk.
func (m *Conversations) Save() error {
	return m.ds.SaveToFile()
}

// Close flushes and closes the backing store.
func (m *Conversations) Close() error {
	return m.ds.Close()
}
