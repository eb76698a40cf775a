package models

import "context"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Replier performs one stateless turn against a chat model: the prompt goes
// out, the reply text comes back.
type Replier interface {
	Reply(ctx context.Context, prompt string) (string, error)
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
