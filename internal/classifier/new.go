package classifier

import (
	"github.com/chapelstack/sermon-flow/internal/gemini"
	"github.com/chapelstack/sermon-flow/internal/logger"
)

// New selects the classifier variant: Gemini-backed when a client is
// configured, otherwise the deterministic keyword fallback.
func New(client gemini.Client, log logger.Logger) Classifier {
	if client == nil {
		return &implKeyword{}
	}
	return &implGemini{
		client: client,
		logger: log,
	}
}
