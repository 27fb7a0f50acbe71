package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"irchumanizer/internal/config"
)

func chatServer(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewOpenAIProvider(config.AIConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "test-model",
	})
}

func completionJSON(content string) string {
	return `{"choices":[{"message":{"content":` + jsonString(content) + `}}]}`
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestGenerate(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	p := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionJSON("ouais tranquille")))
	})

	reply, err := p.Generate(context.Background(), []Message{
		{Role: "system", Content: "tu es kevin"},
		{Role: "user", Content: "ça va ?"},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if reply != "ouais tranquille" {
		t.Errorf("reply = %q", reply)
	}
	if gotPath != "/chat/completions" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if gotBody["model"] != "test-model" {
		t.Errorf("model = %v", gotBody["model"])
	}
}

func TestGenerateCleansReply(t *testing.T) {
	p := chatServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionJSON(`<think>hmm</think>"salut"`)))
	})

	reply, err := p.Generate(context.Background(), []Message{{Role: "user", Content: "yo"}})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if reply != "salut" {
		t.Errorf("reply = %q, want cleaned text", reply)
	}
}

func TestGenerateErrors(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
		wantSub string
	}{
		{
			"http error",
			func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "rate limited", http.StatusTooManyRequests)
			},
			"429",
		},
		{
			"html body",
			func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html")
				w.Write([]byte("<html>gateway</html>"))
			},
			"html",
		},
		{
			"empty choices",
			func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"choices":[]}`))
			},
			"empty choices",
		},
		{
			"garbage content",
			func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(completionJSON("   ")))
			},
			"garbage",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := chatServer(t, tc.handler)
			_, err := p.Generate(context.Background(), []Message{{Role: "user", Content: "yo"}})
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantSub) {
				t.Errorf("error %q missing %q", err, tc.wantSub)
			}
		})
	}
}
