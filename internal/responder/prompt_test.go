package responder

import (
	"path/filepath"
	"strings"
	"testing"

	"irchumanizer/internal/config"
	"irchumanizer/internal/memory"
	"irchumanizer/internal/mind"
	"irchumanizer/internal/persona"
)

func testProfile(t *testing.T) *persona.Profile {
	t.Helper()
	return persona.Generate(config.PersonalityConfig{
		Name: "Momo", Gender: "M", Age: 25, City: "Lyon", Region: "69",
	}, mind.NewDice(1))
}

func TestBuildSystemPrompt(t *testing.T) {
	dctx := channelCtx("salut")
	prompt := buildSystemPrompt(testProfile(t), dctx)

	if !strings.Contains(prompt, "Momo") {
		t.Error("prompt missing persona name")
	}
	if !strings.Contains(prompt, "salon #chan") {
		t.Error("prompt missing channel framing")
	}

	dctx.IsPrivate = true
	if !strings.Contains(buildSystemPrompt(testProfile(t), dctx), "conversation privée") {
		t.Error("prompt missing private framing")
	}
}

func TestBuildSystemPromptCasualNote(t *testing.T) {
	dctx := channelCtx("salut")
	dctx.UserProfile = memory.UserProfile{MessageCount: 10, CasualnessScore: 0.8}

	if !strings.Contains(buildSystemPrompt(testProfile(t), dctx), "style décontracté") {
		t.Error("casual user should add the style note")
	}

	dctx.UserProfile = memory.UserProfile{MessageCount: 1}
	if strings.Contains(buildSystemPrompt(testProfile(t), dctx), "style décontracté") {
		t.Error("new user should not add the style note")
	}
}

func TestBuildMessages(t *testing.T) {
	conversations, err := memory.New(filepath.Join(t.TempDir(), "memory.json"), 50)
	if err != nil {
		t.Fatalf("memory.New: %v", err)
	}
	defer conversations.Close()

	dctx := channelCtx("et toi t'en penses quoi ?")
	msgs := buildMessages(testProfile(t), conversations, dctx)
	if len(msgs) != 2 || msgs[0].Role != "system" || msgs[1].Role != "user" {
		t.Fatalf("unexpected message shape: %+v", msgs)
	}
	if !strings.Contains(msgs[1].Content, "Message de bob") {
		t.Errorf("empty history should use the plain form, got %q", msgs[1].Content)
	}

	conversations.Append("#chan", "bob", "il pleut encore", false, false)
	msgs = buildMessages(testProfile(t), conversations, dctx)
	if !strings.Contains(msgs[1].Content, "Historique récent:") {
		t.Errorf("history should be embedded, got %q", msgs[1].Content)
	}
	if !strings.Contains(msgs[1].Content, "il pleut encore") {
		t.Errorf("history line missing, got %q", msgs[1].Content)
	}
}
