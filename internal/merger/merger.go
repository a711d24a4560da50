// Package merger turns classified segments into final sections:
// consecutive same-label segments within the gap tolerance are joined,
// Other-labeled segments become ignored ranges, and Finalize fills the
// remaining timeline gaps.
package merger

import (
	"strings"

	"github.com/chapelstack/sermon-flow/internal/segment"
)

// sectionAccumulator is the open section being extended during the walk.
type sectionAccumulator struct {
	label       segment.Label
	startMs     int64
	endMs       int64
	texts       []string
	confidences []float64
}

func (a *sectionAccumulator) extend(cs segment.ClassifiedSegment) {
	a.endMs = cs.EndMs
	a.texts = append(a.texts, cs.Text)
	a.confidences = append(a.confidences, cs.Confidence)
}

func (a *sectionAccumulator) emit() segment.FinalSection {
	var sum float64
	for _, c := range a.confidences {
		sum += c
	}
	avg := sum / float64(len(a.confidences))

	return segment.FinalSection{
		Label:      a.label,
		StartMs:    a.startMs,
		EndMs:      a.endMs,
		Text:       strings.TrimSpace(strings.Join(a.texts, " ")),
		Confidence: avg,
	}
}

// Merge partitions Other-labeled segments into ignored ranges
// (one-to-one, never merged with each other) and joins the remaining
// segments into sections wherever label matches and the time gap stays
// within MergeGapThresholdMs. Sections come out in walk order; global
// time sorting happens in Finalize.
func Merge(classified []segment.ClassifiedSegment, cfg segment.Config) ([]segment.FinalSection, []segment.IgnoredSegment) {
	sections := []segment.FinalSection{}
	ignored := []segment.IgnoredSegment{}

	var open *sectionAccumulator
	for _, cs := range classified {
		if cs.Label == segment.LabelOther {
			ignored = append(ignored, segment.IgnoredSegment{
				StartMs: cs.StartMs,
				EndMs:   cs.EndMs,
				Reason:  segment.IgnoreOther,
			})
			continue
		}

		if open != nil && cs.Label == open.label && cs.StartMs-open.endMs <= cfg.MergeGapThresholdMs {
			open.extend(cs)
			continue
		}

		if open != nil {
			sections = append(sections, open.emit())
		}
		open = &sectionAccumulator{
			label:       cs.Label,
			startMs:     cs.StartMs,
			endMs:       cs.EndMs,
			texts:       []string{cs.Text},
			confidences: []float64{cs.Confidence},
		}
	}
	if open != nil {
		sections = append(sections, open.emit())
	}

	return sections, ignored
}
