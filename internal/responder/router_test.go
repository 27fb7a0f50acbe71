package responder

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"irchumanizer/internal/ai"
	"irchumanizer/internal/config"
	"irchumanizer/internal/memory"
	"irchumanizer/internal/mind"
	"irchumanizer/internal/persona"
)

type stubProvider struct {
	reply string
	err   error
}

func (s *stubProvider) Generate(_ context.Context, _ []ai.Message) (string, error) {
	return s.reply, s.err
}

func newTestRouter(t *testing.T, provider ai.Provider, dice *mind.Dice) (*Router, *memory.Conversations) {
	t.Helper()
	conversations, err := memory.New(filepath.Join(t.TempDir(), "memory.json"), 50)
	if err != nil {
		t.Fatalf("memory.New: %v", err)
	}
	t.Cleanup(func() { conversations.Close() })

	profile := persona.Generate(config.PersonalityConfig{
		Name: "Momo", Gender: "M", Age: 25, City: "Lyon", Region: "69",
		WritingStyles: []string{"correct"},
	}, mind.NewDice(1))

	mood := mind.NewMoodState(dice)
	return NewRouter("kevin42", profile, mood, conversations, provider, dice), conversations
}

func channelCtx(message string) DecisionContext {
	return DecisionContext{
		Message:       message,
		Sender:        "bob",
		Target:        "#chan",
		Mood:          mind.MoodNeutral,
		MoodIntensity: 0.5,
		MoodModifier:  0.5,
		ActivityLevel: 1.0,
	}
}

func TestCommandLinesSilent(t *testing.T) {
	r, _ := newTestRouter(t, nil, mind.ForcedDice(1))
	for _, msg := range []string{"!help", "/me danse", "\x01VERSION\x01"} {
		if reply, ok := r.candidate(context.Background(), channelCtx(msg)); ok {
			t.Errorf("%q should be ignored, got %q", msg, reply)
		}
	}
}

func TestGreetingFallback(t *testing.T) {
	r, _ := newTestRouter(t, nil, mind.ForcedDice(1))

	reply, ok := r.candidate(context.Background(), channelCtx("salut"))
	if !ok {
		t.Fatal("greeting should produce a candidate")
	}
	if !strings.HasSuffix(reply, " bob") {
		t.Errorf("greeting should address the sender, got %q", reply)
	}
}

func TestMentionResponse(t *testing.T) {
	r, _ := newTestRouter(t, nil, mind.ForcedDice(1))

	dctx := channelCtx("kevin42 tu es la")
	dctx.IsMentioned = true
	reply, ok := r.candidate(context.Background(), dctx)
	if !ok {
		t.Fatal("mention should produce a candidate")
	}
	if strings.Contains(reply, "{name}") {
		t.Errorf("placeholder not interpolated: %q", reply)
	}

	found := false
	for _, tmpl := range mentionResponses[mind.MoodNeutral] {
		if reply == strings.ReplaceAll(tmpl, "{name}", "bob") {
			found = true
		}
	}
	if !found {
		t.Errorf("reply %q not from the neutral mention pool", reply)
	}
}

func TestReactionBucket(t *testing.T) {
	r, _ := newTestRouter(t, nil, mind.ForcedDice(1))

	reply, ok := r.candidate(context.Background(), channelCtx("c'est trop cool ce truc"))
	if !ok {
		t.Fatal("reaction keyword should produce a candidate")
	}
	found := false
	for _, bucket := range reactionBuckets {
		for _, resp := range bucket.responses {
			if reply == resp {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("reply %q not from any reaction bucket", reply)
	}
}

func TestPrivateFirstContact(t *testing.T) {
	r, _ := newTestRouter(t, nil, mind.ForcedDice(1))

	dctx := channelCtx("bonjour")
	dctx.Target = "bob"
	dctx.IsPrivate = true
	dctx.FirstContact = true
	reply, ok := r.candidate(context.Background(), dctx)
	if !ok {
		t.Fatal("first private contact should produce a candidate")
	}
	found := false
	for _, w := range firstContactWelcome {
		if reply == w {
			found = true
		}
	}
	if !found {
		t.Errorf("reply %q not from the first-contact pool", reply)
	}
}

func TestPrivateBotLocation(t *testing.T) {
	r, _ := newTestRouter(t, nil, mind.ForcedDice(1))

	dctx := channelCtx("tu habites où")
	dctx.Target = "bob"
	dctx.IsPrivate = true
	reply, ok := r.candidate(context.Background(), dctx)
	if !ok {
		t.Fatal("location question should produce a candidate")
	}
	if reply != "j'habite à Lyon" {
		t.Errorf("reply = %q, want the persona's city", reply)
	}
}

func TestLocationQuestion(t *testing.T) {
	r, _ := newTestRouter(t, nil, mind.ForcedDice(1))

	reply, ok := r.candidate(context.Background(), channelCtx("qui du 69 ici"))
	if !ok {
		t.Fatal("own département should produce a candidate")
	}
	if !strings.Contains(reply, "Lyon") {
		t.Errorf("reply %q should name the city", reply)
	}
}

func TestAICandidate(t *testing.T) {
	r, _ := newTestRouter(t, &stubProvider{reply: "ouais il pleut ici"}, mind.ForcedDice(1))

	reply, ok := r.candidate(context.Background(), channelCtx("la meteo est bizarre aujourd'hui"))
	if !ok {
		t.Fatal("AI tier should produce a candidate")
	}
	if reply != "ouais il pleut ici" {
		t.Errorf("reply = %q, want the provider's text", reply)
	}
}

func TestAICandidateTruncates(t *testing.T) {
	long := strings.Repeat("a", 200)
	r, _ := newTestRouter(t, &stubProvider{reply: long}, mind.ForcedDice(1))

	reply, ok := r.candidate(context.Background(), channelCtx("la meteo est bizarre aujourd'hui"))
	if !ok {
		t.Fatal("AI tier should produce a candidate")
	}
	if got := len([]rune(reply)); got != maxAIResponseLength {
		t.Errorf("truncated length = %d, want %d", got, maxAIResponseLength)
	}
	if !strings.HasSuffix(reply, "...") {
		t.Errorf("truncated reply should trail off, got %q", reply)
	}
}

func TestAIFailureFallsThrough(t *testing.T) {
	r, _ := newTestRouter(t, &stubProvider{err: errors.New("boom")}, mind.ForcedDice(1))

	reply, ok := r.candidate(context.Background(), channelCtx("la meteo est bizarre aujourd'hui"))
	if !ok {
		t.Fatal("provider failure must still produce a candidate")
	}
	found := false
	for _, resp := range casualResponses {
		if reply == resp {
			found = true
		}
	}
	if !found {
		t.Errorf("reply %q not from the casual pool", reply)
	}
}

func TestQuestionFallback(t *testing.T) {
	r, _ := newTestRouter(t, nil, mind.ForcedDice(1))

	reply, ok := r.candidate(context.Background(), channelCtx("vous en pensez quoi les gens ?"))
	if !ok {
		t.Fatal("question should produce a candidate")
	}
	found := false
	for _, resp := range questionResponses {
		if reply == resp {
			found = true
		}
	}
	if !found {
		t.Errorf("reply %q not from the question pool", reply)
	}
}

func TestRespondRecordsBotMessage(t *testing.T) {
	r, conversations := newTestRouter(t, nil, mind.ForcedDice(1))

	reply, ok := r.Respond(context.Background(), channelCtx("salut"))
	if !ok {
		t.Fatal("Respond should produce a reply")
	}
	if strings.TrimSpace(reply) == "" {
		t.Fatal("reply must not be empty after adaptation")
	}

	history := conversations.History("#chan", false, 0)
	if len(history) != 1 {
		t.Fatalf("history length = %d, want 1", len(history))
	}
	if !history[0].IsBot || history[0].Sender != "kevin42" {
		t.Errorf("bot message not recorded as such: %+v", history[0])
	}
	if history[0].Text != reply {
		t.Errorf("recorded %q, returned %q", history[0].Text, reply)
	}
}
