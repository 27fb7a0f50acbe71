package memory

import (
	"path/filepath"
	"strings"
	"testing"
)

func newTestMemory(t *testing.T, max int) (*Conversations, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "memory.json")
	m, err := New(path, max)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m, path
}

func TestContextID(t *testing.T) {
	if got := ContextID("#accueil", false); got != "channel:#accueil" {
		t.Errorf("channel context = %q", got)
	}
	if got := ContextID("bob", true); got != "private:bob" {
		t.Errorf("private context = %q", got)
	}
}

func TestAppendTruncates(t *testing.T) {
	m, _ := newTestMemory(t, 5)
	defer m.Close()

	for i := 0; i < 8; i++ {
		m.Append("#chan", "bob", string(rune('a'+i)), false, false)
	}

	history := m.History("#chan", false, 0)
	if len(history) != 5 {
		t.Fatalf("history length = %d, want 5", len(history))
	}
	if history[0].Text != "d" || history[4].Text != "h" {
		t.Errorf("history not oldest-first tail: %v", history)
	}
}

func TestHistoryLimit(t *testing.T) {
	m, _ := newTestMemory(t, 50)
	defer m.Close()

	for i := 0; i < 10; i++ {
		m.Append("#chan", "bob", "msg", false, false)
	}
	if got := len(m.History("#chan", false, 3)); got != 3 {
		t.Errorf("limited history length = %d, want 3", got)
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	m, path := newTestMemory(t, 5)

	m.Append("#chan", "bob", "premier", false, false)
	m.Append("#chan", "kevin", "deuxième", false, true)
	m.Append("alice", "alice", "en privé", true, false)
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := New(path, 5)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	history := reopened.History("#chan", false, 0)
	if len(history) != 2 {
		t.Fatalf("reloaded history length = %d, want 2", len(history))
	}
	if history[0].Text != "premier" || history[1].Text != "deuxième" {
		t.Errorf("reloaded order wrong: %v", history)
	}
	if !history[1].IsBot {
		t.Error("bot flag lost on reload")
	}
	if got := len(reopened.History("alice", true, 0)); got != 1 {
		t.Errorf("private context lost on reload: %d messages", got)
	}
}

func TestUserProfileInference(t *testing.T) {
	m, _ := newTestMemory(t, 50)
	defer m.Close()

	m.Append("#chan", "bob", "mdr trop drôle", false, false)
	m.Append("#chan", "bob", "tu fais quoi ?", false, false)
	m.Append("#chan", "bob", "ok", false, false)
	m.Append("#chan", "kevin", "réponse du bot", false, true)

	profile := m.UserProfile("bob")
	if profile.MessageCount != 3 {
		t.Errorf("message count = %d, want 3", profile.MessageCount)
	}
	if profile.CasualnessScore <= 0 {
		t.Error("mdr should raise the casualness score")
	}
	if profile.QuestionRatio <= 0 {
		t.Error("question mark should raise the question ratio")
	}
	if len(profile.SampleMessages) == 0 {
		t.Error("sample messages missing")
	}

	if empty := m.UserProfile("inconnu"); empty.MessageCount != 0 {
		t.Errorf("unknown user should have an empty profile: %+v", empty)
	}
}

func TestFriendlyGreeting(t *testing.T) {
	m, _ := newTestMemory(t, 50)
	defer m.Close()

	for i := 0; i < 4; i++ {
		m.Append("#chan", "bob", "blabla", false, false)
	}
	if _, known := m.FriendlyGreeting("bob"); known {
		t.Error("4 messages should not qualify as known")
	}

	m.Append("#chan", "bob", "encore", false, false)
	greeting, known := m.FriendlyGreeting("bob")
	if !known {
		t.Fatal("5 messages should qualify as known")
	}
	if greeting != "re bob" {
		t.Errorf("greeting = %q, want %q", greeting, "re bob")
	}
}

func TestFormatHistoryForAI(t *testing.T) {
	m, _ := newTestMemory(t, 50)
	defer m.Close()

	if got := m.FormatHistoryForAI("#chan", false, 10); got != "" {
		t.Errorf("empty context should format empty, got %q", got)
	}

	m.Append("#chan", "bob", "salut", false, false)
	got := m.FormatHistoryForAI("#chan", false, 10)
	if !strings.Contains(got, "[Contexte: salon #chan]") {
		t.Errorf("missing channel header: %q", got)
	}
	if !strings.Contains(got, "<bob> salut") {
		t.Errorf("missing message line: %q", got)
	}

	m.Append("alice", "alice", "coucou", true, false)
	got = m.FormatHistoryForAI("alice", true, 10)
	if !strings.Contains(got, "[Contexte: conversation privée]") {
		t.Errorf("missing private header: %q", got)
	}
}

func TestStats(t *testing.T) {
	m, _ := newTestMemory(t, 50)
	defer m.Close()

	m.Append("#chan", "bob", "un", false, false)
	m.Append("#chan", "bob", "deux", false, false)
	m.Append("alice", "alice", "trois", true, false)

	stats := m.Stats()
	if stats["total_contexts"] != 2 {
		t.Errorf("total_contexts = %v, want 2", stats["total_contexts"])
	}
	if stats["total_messages"] != 3 {
		t.Errorf("total_messages = %v, want 3", stats["total_messages"])
	}
	if stats["channel_contexts"] != 1 || stats["private_contexts"] != 1 {
		t.Errorf("context split wrong: %v", stats)
	}
}
