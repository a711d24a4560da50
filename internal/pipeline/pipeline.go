package pipeline

import (
	"context"

	"github.com/chapelstack/sermon-flow/internal/chunker"
	"github.com/chapelstack/sermon-flow/internal/merger"
	"github.com/chapelstack/sermon-flow/internal/segment"
)

// Run executes the stages strictly in sequence: chunk, classify,
// merge, finalize, then (if configured) summarize. Every stage is a
// pure function of its input plus config; an empty chunk list is a
// valid degenerate case producing an empty result, not an error.
func (p *implPipeline) Run(ctx context.Context, chunks []segment.TranscriptChunk, totalDurationMs int64) Result {
	// Step 1: Heuristic chunking
	candidates := chunker.Chunk(chunks, p.cfg)
	p.logger.Debug(ctx, "Chunker produced %d candidate segments from %d chunks", len(candidates), len(chunks))

	// Step 2: Classification (degrades to Other on failure, never errors)
	classifications := p.classifier.ClassifyBatch(ctx, candidates)

	classified := make([]segment.ClassifiedSegment, len(candidates))
	for i, cand := range candidates {
		classified[i] = segment.ClassifiedSegment{
			CandidateSegment: cand,
			Label:            classifications[i].Label,
			Confidence:       classifications[i].Confidence,
		}
	}

	// Step 3: Merge same-label neighbors, split out ignored ranges
	sections, ignored := merger.Merge(classified, p.cfg)

	// Step 4: Sort and gap-fill the timeline
	sections, ignored = merger.Finalize(sections, ignored, totalDurationMs)
	p.logger.Info(ctx, "Segmentation complete: %d sections, %d ignored ranges", len(sections), len(ignored))

	// Step 5: Per-section summaries (optional)
	if p.summarizer != nil {
		sections = p.summarizer.Summarize(ctx, sections)
	}

	return Result{
		Sections:   sections,
		Ignored:    ignored,
		Candidates: candidates,
		Classified: classified,
	}
}
