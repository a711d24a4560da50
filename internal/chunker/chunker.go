// Package chunker groups a flat list of timestamped transcript chunks
// into candidate segments using silence-gap, keyword, and max-duration
// heuristics. It is the first pipeline stage: deterministic,
// synchronous, no I/O.
package chunker

import (
	"sort"
	"strings"

	"github.com/chapelstack/sermon-flow/internal/segment"
)

// Speech-rate estimate used to guess when a chunk's speaker stopped
// talking: roughly 10 words per second, never shorter than one second.
const (
	msPerWord      = 100
	minSpeechEstMs = 1000
)

// accumulator is the single open segment being built during the fold.
type accumulator struct {
	startMs  int64
	endMs    int64
	texts    []string
	keywords map[string]bool
}

func newAccumulator(startMs, endMs int64, seedKeywords []string) *accumulator {
	acc := &accumulator{
		startMs:  startMs,
		endMs:    endMs,
		keywords: make(map[string]bool),
	}
	for _, kw := range seedKeywords {
		acc.keywords[kw] = true
	}
	return acc
}

func (a *accumulator) emit(reason segment.BreakReason) segment.CandidateSegment {
	kws := make([]string, 0, len(a.keywords))
	for kw := range a.keywords {
		kws = append(kws, kw)
	}
	sort.Strings(kws)
	return segment.CandidateSegment{
		StartMs:     a.startMs,
		EndMs:       a.endMs,
		Text:        strings.TrimSpace(strings.Join(a.texts, " ")),
		BreakReason: reason,
		Keywords:    kws,
	}
}

// Chunk folds the chunk stream into candidate segments. The chunk that
// triggers a break is included in the segment being closed; the fresh
// accumulator starts at that chunk's timestamp with an empty text
// buffer, seeded with the chunk's matched keywords.
func Chunk(chunks []segment.TranscriptChunk, cfg segment.Config) []segment.CandidateSegment {
	segments := []segment.CandidateSegment{}
	if len(chunks) == 0 {
		return segments
	}

	first := chunks[0]
	acc := newAccumulator(first.TimestampMs, speechEndMs(first), matchKeywords(first.Text, cfg.Keywords))
	acc.texts = append(acc.texts, first.Text)

	for i := 1; i < len(chunks); i++ {
		chunk := chunks[i]
		elapsed := chunk.TimestampMs - acc.startMs

		var breakReason segment.BreakReason

		gap := chunk.TimestampMs - speechEndMs(chunks[i-1])
		if gap > cfg.SilenceThresholdMs {
			breakReason = segment.BreakSilence
		}

		matched := matchKeywords(chunk.Text, cfg.Keywords)
		for _, kw := range matched {
			acc.keywords[kw] = true
		}
		if len(matched) > 0 && elapsed > cfg.MinSegmentDurationMs {
			breakReason = segment.BreakKeyword
		}

		// Assigned last so it wins over silence and keyword.
		if elapsed >= cfg.MaxSegmentDurationMs {
			breakReason = segment.BreakDuration
		}

		// The triggering chunk's text joins the segment being closed,
		// but the closed segment keeps its pre-break end time: a
		// silence gap stays uncovered so the finalizer can label it,
		// and the chunk's timestamp opens the next segment.
		acc.texts = append(acc.texts, chunk.Text)

		if breakReason != "" && elapsed >= cfg.MinSegmentDurationMs {
			segments = append(segments, acc.emit(breakReason))
			acc = newAccumulator(chunk.TimestampMs, speechEndMs(chunk), matched)
		} else {
			acc.endMs = speechEndMs(chunk)
		}
	}

	// Trailing accumulator is emitted only if it meets the minimum;
	// shorter remainders are dropped rather than merged backward.
	if len(acc.texts) > 0 && acc.endMs-acc.startMs >= cfg.MinSegmentDurationMs {
		segments = append(segments, acc.emit(""))
	}

	return segments
}

// speechEndMs estimates when the speaker of a chunk stopped talking.
func speechEndMs(chunk segment.TranscriptChunk) int64 {
	words := int64(len(strings.Fields(chunk.Text)))
	est := words * msPerWord
	if est < minSpeechEstMs {
		est = minSpeechEstMs
	}
	return chunk.TimestampMs + est
}

// matchKeywords scans text case-insensitively against every configured
// keyword across all three categories. The category is deliberately
// not reported: any match from any category can trigger a break, and
// classification later decides the actual label.
func matchKeywords(text string, kws segment.Keywords) []string {
	lower := strings.ToLower(text)
	var matched []string
	for _, list := range [][]string{kws.Announcements, kws.Sharing, kws.Sermon} {
		for _, kw := range list {
			if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
				matched = append(matched, kw)
			}
		}
	}
	return matched
}
