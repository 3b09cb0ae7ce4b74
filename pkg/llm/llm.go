package llm

import "context"

// TextModel is a minimal abstraction for text-generation LLMs used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
type TextModel interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
