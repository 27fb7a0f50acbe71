package responder

import (
	"fmt"

	"irchumanizer/internal/ai"
	"irchumanizer/internal/memory"
	"irchumanizer/internal/persona"
)

// maxAIResponseLength keeps generated replies IRC-natural.
const maxAIResponseLength = 150

// buildSystemPrompt embeds the persona summary and conversation framing into
// the provider's system message.
func buildSystemPrompt(profile *persona.Profile, dctx DecisionContext) string {
	contextType := "conversation privée"
	if !dctx.IsPrivate {
		contextType = fmt.Sprintf("salon %s", dctx.Target)
	}

	prompt := fmt.Sprintf(`Tu es un utilisateur IRC réel. Voici ta personnalité:

%s

Tu participes à une %s et réponds naturellement.
- Utilise un langage simple, familier, avec parfois du langage SMS
- Reste bref (max 1-2 phrases)
- Sois humain et spontané selon ta personnalité
- Ne sois pas trop poli ou formel
- Tiens compte de l'historique pour répondre de manière cohérente
- Si on te demande ton âge, ta ville, tes goûts, réponds selon ta personnalité
- Adapte ton niveau de langage selon ton score de décontraction`,
		profile.PromptContext(), contextType)

	if dctx.UserProfile.MessageCount > 3 && dctx.UserProfile.CasualnessScore > 0.3 {
		prompt += fmt.Sprintf("\n\nNote: %s utilise un style décontracté avec des abréviations.", dctx.Sender)
	}

	return prompt
}

// buildMessages renders the provider conversation: system prompt plus one
// user turn carrying recent history and the new message.
func buildMessages(profile *persona.Profile, conversations *memory.Conversations, dctx DecisionContext) []ai.Message {
	messages := []ai.Message{
		{Role: "system", Content: buildSystemPrompt(profile, dctx)},
	}

	history := conversations.FormatHistoryForAI(dctx.Target, dctx.IsPrivate, 6)
	if history != "" {
		messages = append(messages, ai.Message{
			Role:    "user",
			Content: fmt.Sprintf("Historique récent:\n%s\n\n---\nNouveau message de %s: %s", history, dctx.Sender, dctx.Message),
		})
	} else {
		messages = append(messages, ai.Message{
			Role:    "user",
			Content: fmt.Sprintf("Message de %s: %s", dctx.Sender, dctx.Message),
		})
	}

	return messages
}
