package summarizer

import (
	"context"

	"github.com/chapelstack/sermon-flow/internal/segment"
)

// Summarizer fills Summary (and, for Sermon, Bullets) on finalized
// sections. Implementations must summarize sections independently: one
// section's failure never aborts the batch, it just leaves that
// section with a fallback summary.
type Summarizer interface {
	Summarize(ctx context.Context, sections []segment.FinalSection) []segment.FinalSection
}
