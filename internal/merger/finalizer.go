package merger

import (
	"sort"

	"github.com/chapelstack/sermon-flow/internal/segment"
)

// Timeline gaps at or under this size are left unaccounted for rather
// than synthesized into ignored ranges.
const gapFillThresholdMs = 1000

// Finalize sorts sections by start time and synthesizes ignored ranges
// for the uncovered parts of the timeline: before the first section,
// between adjacent sections, and after the last section up to
// totalDurationMs. Synthesized ranges are merged with the ones passed
// in from Merge and the combined list is returned sorted.
func Finalize(sections []segment.FinalSection, ignored []segment.IgnoredSegment, totalDurationMs int64) ([]segment.FinalSection, []segment.IgnoredSegment) {
	sorted := make([]segment.FinalSection, len(sections))
	copy(sorted, sections)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartMs < sorted[j].StartMs
	})

	combined := make([]segment.IgnoredSegment, len(ignored))
	copy(combined, ignored)

	if len(sorted) > 0 {
		if sorted[0].StartMs > gapFillThresholdMs {
			combined = append(combined, segment.IgnoredSegment{
				StartMs: 0,
				EndMs:   sorted[0].StartMs,
				Reason:  segment.IgnoreSilence,
			})
		}

		for i := 0; i < len(sorted)-1; i++ {
			gapStart := sorted[i].EndMs
			gapEnd := sorted[i+1].StartMs
			if gapEnd-gapStart > gapFillThresholdMs {
				combined = append(combined, segment.IgnoredSegment{
					StartMs: gapStart,
					EndMs:   gapEnd,
					Reason:  segment.IgnoreSilence,
				})
			}
		}

		last := sorted[len(sorted)-1]
		if totalDurationMs-last.EndMs > gapFillThresholdMs {
			combined = append(combined, segment.IgnoredSegment{
				StartMs: last.EndMs,
				EndMs:   totalDurationMs,
				Reason:  segment.IgnoreSilence,
			})
		}
	} else if totalDurationMs > gapFillThresholdMs {
		combined = append(combined, segment.IgnoredSegment{
			StartMs: 0,
			EndMs:   totalDurationMs,
			Reason:  segment.IgnoreSilence,
		})
	}

	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].StartMs < combined[j].StartMs
	})

	return sorted, combined
}
