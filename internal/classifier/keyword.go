package classifier

import (
	"context"
	"strings"

	"github.com/chapelstack/sermon-flow/internal/segment"
)

// implKeyword labels segments from the heuristic keywords the chunker
// already collected. Used when no Gemini client is configured.
type implKeyword struct{}

func (c *implKeyword) ClassifyBatch(ctx context.Context, segments []segment.CandidateSegment) []segment.Classification {
	results := make([]segment.Classification, len(segments))
	for i, seg := range segments {
		results[i] = classifyKeywords(seg.Keywords)
	}
	return results
}

func classifyKeywords(keywords []string) segment.Classification {
	joined := strings.ToLower(strings.Join(keywords, " "))
	switch {
	case strings.Contains(joined, "announce"):
		return segment.Classification{Label: segment.LabelAnnouncements, Confidence: 0.9}
	case strings.Contains(joined, "shar") || strings.Contains(joined, "testimony"):
		return segment.Classification{Label: segment.LabelSharing, Confidence: 0.9}
	case strings.Contains(joined, "sermon") || strings.Contains(joined, "message") || strings.Contains(joined, "scripture"):
		return segment.Classification{Label: segment.LabelSermon, Confidence: 0.9}
	default:
		return segment.Classification{Label: segment.LabelOther, Confidence: 0.5}
	}
}
