package summarizer

import (
	"context"

	"github.com/chapelstack/sermon-flow/internal/segment"
)

// implNoop leaves sections unsummarized. Selected when no Gemini
// client is configured so the pipeline stays fully usable offline.
type implNoop struct{}

func (s *implNoop) Summarize(ctx context.Context, sections []segment.FinalSection) []segment.FinalSection {
	return sections
}
