package pipeline

import (
	"context"

	"github.com/chapelstack/sermon-flow/internal/segment"
)

// Result is the document produced by one pipeline run. Candidates and
// Classified are diagnostic fields carrying the intermediate stage
// outputs.
type Result struct {
	Sections   []segment.FinalSection      `json:"sections"`
	Ignored    []segment.IgnoredSegment    `json:"ignored"`
	Candidates []segment.CandidateSegment  `json:"candidates,omitempty"`
	Classified []segment.ClassifiedSegment `json:"classified,omitempty"`
}

// Pipeline runs the full segmentation flow over one recording's
// transcript chunks.
type Pipeline interface {
	Run(ctx context.Context, chunks []segment.TranscriptChunk, totalDurationMs int64) Result
}
