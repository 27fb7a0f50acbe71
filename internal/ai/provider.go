package ai

import "context"

// Message is one chat-completion message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider generates a reply from a conversation. Implementations are
// black boxes; callers must treat every error as recoverable and keep a
// fallback path.
type Provider interface {
	Generate(ctx context.Context, messages []Message) (string, error)
}
