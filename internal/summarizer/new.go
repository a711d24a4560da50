package summarizer

import (
	"github.com/chapelstack/sermon-flow/internal/gemini"
	"github.com/chapelstack/sermon-flow/internal/logger"
)

// New selects the summarizer variant: Gemini-backed when a client is
// configured, otherwise a no-op that passes sections through.
func New(client gemini.Client, maxChars int, log logger.Logger) Summarizer {
	if client == nil {
		return &implNoop{}
	}
	if maxChars <= 0 {
		maxChars = 8000
	}
	return &implGemini{
		client:   client,
		maxChars: maxChars,
		logger:   log,
	}
}
