package llm

import "context"

// Provider defines the interface for interacting with different LLM
// providers. Implementations send one system/user prompt pair and return
// the model's raw response text, which callers decode as JSON.
type Provider interface {
	Generate(ctx context.Context, systemPrompt, userMessage string) (string, error)
}
