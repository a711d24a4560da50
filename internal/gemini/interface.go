package gemini

import "context"

// Client is the seam to the Gemini text-generation capability.
// Classifier and summarizer variants depend on this interface so
// tests can substitute a stub without touching the network.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
