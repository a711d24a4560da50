package classifier

import (
	"context"

	"github.com/chapelstack/sermon-flow/internal/segment"
)

// Classifier assigns a section label and confidence to every candidate
// segment. The returned slice always has the same length and order as
// the input; a failing backend degrades entries to Other/0.0 instead
// of returning an error, so a run never aborts on classification.
type Classifier interface {
	ClassifyBatch(ctx context.Context, segments []segment.CandidateSegment) []segment.Classification
}
