package ai

import "context"

// Generator produces free-text replies for the conversational assistant.
// Implementations must honor the request context; callers treat any error as
// a soft failure and fall back to template text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
