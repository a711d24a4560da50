package chunker

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/chapelstack/sermon-flow/internal/segment"
)

func testConfig() segment.Config {
	cfg := segment.DefaultConfig()
	cfg.MinSegmentDurationMs = 10_000
	cfg.MaxSegmentDurationMs = 120_000
	cfg.SilenceThresholdMs = 15_000
	return cfg
}

// fillerChunks produces keyword-free chunks every intervalMs starting
// at startMs.
func fillerChunks(startMs, intervalMs int64, count int) []segment.TranscriptChunk {
	chunks := make([]segment.TranscriptChunk, count)
	for i := range chunks {
		chunks[i] = segment.TranscriptChunk{
			Text:        fmt.Sprintf("and so we continue talking part %d", i),
			TimestampMs: startMs + int64(i)*intervalMs,
		}
	}
	return chunks
}

func TestChunkEmptyInput(t *testing.T) {
	got := Chunk(nil, testConfig())
	if got == nil {
		t.Fatal("Chunk() returned nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("Chunk() returned %d segments, want 0", len(got))
	}
}

func TestChunkSingleShortChunkDropped(t *testing.T) {
	chunks := []segment.TranscriptChunk{
		{Text: "just a short greeting", TimestampMs: 0},
	}
	got := Chunk(chunks, testConfig())
	if len(got) != 0 {
		t.Errorf("Chunk() returned %d segments, want 0 (below minimum duration)", len(got))
	}
}

func TestChunkContinuousSpeechSingleSegment(t *testing.T) {
	chunks := fillerChunks(0, 5_000, 12) // 0..55000
	got := Chunk(chunks, testConfig())

	if len(got) != 1 {
		t.Fatalf("Chunk() returned %d segments, want 1", len(got))
	}
	seg := got[0]
	if seg.StartMs != 0 {
		t.Errorf("StartMs = %d, want 0", seg.StartMs)
	}
	if seg.EndMs < 55_000 {
		t.Errorf("EndMs = %d, want >= 55000", seg.EndMs)
	}
	if seg.BreakReason != "" {
		t.Errorf("BreakReason = %q, want empty for trailing segment", seg.BreakReason)
	}
}

func TestChunkSilenceBreak(t *testing.T) {
	chunks := fillerChunks(0, 5_000, 7) // 0..30000
	// 29s estimated silence before this chunk
	chunks = append(chunks, fillerChunks(60_000, 5_000, 4)...) // 60000..75000
	got := Chunk(chunks, testConfig())

	if len(got) != 2 {
		t.Fatalf("Chunk() returned %d segments, want 2", len(got))
	}
	if got[0].BreakReason != segment.BreakSilence {
		t.Errorf("BreakReason = %q, want %q", got[0].BreakReason, segment.BreakSilence)
	}
	// The closed segment ends where speech stopped, not at the
	// triggering chunk, so the silent gap stays uncovered.
	if got[0].EndMs > 32_000 {
		t.Errorf("first segment EndMs = %d, want pre-gap end", got[0].EndMs)
	}
	if got[1].StartMs != 60_000 {
		t.Errorf("second segment StartMs = %d, want 60000", got[1].StartMs)
	}
}

func TestChunkKeywordBreak(t *testing.T) {
	chunks := fillerChunks(0, 5_000, 4) // 0..15000
	chunks = append(chunks, segment.TranscriptChunk{
		Text:        "now it is time for the sermon",
		TimestampMs: 20_000,
	})
	chunks = append(chunks, fillerChunks(25_000, 5_000, 4)...) // 25000..40000
	got := Chunk(chunks, testConfig())

	if len(got) != 2 {
		t.Fatalf("Chunk() returned %d segments, want 2", len(got))
	}
	if got[0].BreakReason != segment.BreakKeyword {
		t.Errorf("BreakReason = %q, want %q", got[0].BreakReason, segment.BreakKeyword)
	}
	if !containsKeyword(got[0].Keywords, "sermon") {
		t.Errorf("first segment keywords = %v, want to contain %q", got[0].Keywords, "sermon")
	}
	// Matched keywords seed the fresh accumulator too.
	if !containsKeyword(got[1].Keywords, "sermon") {
		t.Errorf("second segment keywords = %v, want to contain %q", got[1].Keywords, "sermon")
	}
}

func TestChunkKeywordBelowMinimumNoBreak(t *testing.T) {
	chunks := []segment.TranscriptChunk{
		{Text: "good morning everyone", TimestampMs: 0},
		{Text: "a few announcements before we begin", TimestampMs: 5_000},
	}
	chunks = append(chunks, fillerChunks(10_000, 5_000, 5)...) // up to 30000
	got := Chunk(chunks, testConfig())

	if len(got) != 1 {
		t.Fatalf("Chunk() returned %d segments, want 1 (keyword fired below minimum)", len(got))
	}
	// The keyword still lands in the accumulator's set.
	if !containsKeyword(got[0].Keywords, "announcements") {
		t.Errorf("keywords = %v, want to contain %q", got[0].Keywords, "announcements")
	}
	if got[0].BreakReason != "" {
		t.Errorf("BreakReason = %q, want empty", got[0].BreakReason)
	}
}

func TestChunkDurationBreak(t *testing.T) {
	chunks := fillerChunks(0, 5_000, 25) // 0..120000, elapsed hits the max
	got := Chunk(chunks, testConfig())

	if len(got) != 1 {
		t.Fatalf("Chunk() returned %d segments, want 1", len(got))
	}
	if got[0].BreakReason != segment.BreakDuration {
		t.Errorf("BreakReason = %q, want %q", got[0].BreakReason, segment.BreakDuration)
	}
}

func TestChunkDurationWinsOverSilence(t *testing.T) {
	chunks := fillerChunks(0, 5_000, 24) // 0..115000
	// Both a long gap and the max-duration cap fire here.
	chunks = append(chunks, segment.TranscriptChunk{
		Text:        "and now something entirely different",
		TimestampMs: 140_000,
	})
	chunks = append(chunks, fillerChunks(145_000, 5_000, 4)...)
	got := Chunk(chunks, testConfig())

	if len(got) < 1 {
		t.Fatal("Chunk() returned no segments")
	}
	if got[0].BreakReason != segment.BreakDuration {
		t.Errorf("BreakReason = %q, want %q (duration is checked last and wins)", got[0].BreakReason, segment.BreakDuration)
	}
}

func TestChunkShortTrailingDropped(t *testing.T) {
	chunks := fillerChunks(0, 5_000, 7) // 0..30000
	chunks = append(chunks, segment.TranscriptChunk{
		Text:        "brief closing words",
		TimestampMs: 60_000,
	})
	got := Chunk(chunks, testConfig())

	if len(got) != 1 {
		t.Fatalf("Chunk() returned %d segments, want 1 (trailing remainder dropped)", len(got))
	}
	if got[0].EndMs >= 60_000 {
		t.Errorf("EndMs = %d, trailing chunk should not extend the closed segment", got[0].EndMs)
	}
}

func TestChunkDeterminism(t *testing.T) {
	chunks := fillerChunks(0, 5_000, 7)
	chunks = append(chunks, segment.TranscriptChunk{Text: "the sermon begins", TimestampMs: 40_000})
	chunks = append(chunks, fillerChunks(45_000, 5_000, 10)...)

	cfg := testConfig()
	first := Chunk(chunks, cfg)
	second := Chunk(chunks, cfg)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Chunk() is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestChunkCoverage(t *testing.T) {
	chunks := fillerChunks(0, 5_000, 7)
	chunks = append(chunks, fillerChunks(60_000, 5_000, 10)...)
	chunks = append(chunks, fillerChunks(150_000, 5_000, 10)...)
	got := Chunk(chunks, testConfig())

	for _, chunk := range chunks {
		covered := 0
		for _, seg := range got {
			if chunk.TimestampMs >= seg.StartMs && chunk.TimestampMs <= seg.EndMs {
				covered++
			}
		}
		if covered != 1 {
			t.Errorf("chunk at %d covered by %d segments, want exactly 1", chunk.TimestampMs, covered)
		}
	}
}

func TestChunkMaxDurationCap(t *testing.T) {
	cfg := testConfig()
	chunks := fillerChunks(0, 5_000, 100)
	got := Chunk(chunks, cfg)

	for i, seg := range got {
		// A segment may overshoot the cap only by one chunk's
		// estimated speech length.
		if seg.EndMs-seg.StartMs > cfg.MaxSegmentDurationMs+minSpeechEstMs {
			t.Errorf("segment %d spans %dms, exceeds the max-duration cap", i, seg.EndMs-seg.StartMs)
		}
	}
}

func containsKeyword(keywords []string, want string) bool {
	for _, kw := range keywords {
		if kw == want {
			return true
		}
	}
	return false
}
