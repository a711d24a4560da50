package classifier

import (
	"context"
	"fmt"
	"testing"

	"github.com/chapelstack/sermon-flow/internal/logger"
	"github.com/chapelstack/sermon-flow/internal/segment"
)

type stubClient struct {
	response string
	err      error
}

func (s *stubClient) Generate(ctx context.Context, prompt string) (string, error) {
	return s.response, s.err
}

func candidates(n int) []segment.CandidateSegment {
	segs := make([]segment.CandidateSegment, n)
	for i := range segs {
		segs[i] = segment.CandidateSegment{
			StartMs: int64(i) * 60_000,
			EndMs:   int64(i)*60_000 + 50_000,
			Text:    fmt.Sprintf("segment %d text", i),
		}
	}
	return segs
}

func TestKeywordClassifier(t *testing.T) {
	tests := []struct {
		name           string
		keywords       []string
		wantLabel      segment.Label
		wantConfidence float64
	}{
		{"announcement keyword", []string{"announcements"}, segment.LabelAnnouncements, 0.9},
		{"sharing keyword", []string{"sharing"}, segment.LabelSharing, 0.9},
		{"testimony keyword", []string{"testimony"}, segment.LabelSharing, 0.9},
		{"sermon keyword", []string{"sermon"}, segment.LabelSermon, 0.9},
		{"message keyword", []string{"message"}, segment.LabelSermon, 0.9},
		{"scripture keyword", []string{"scripture"}, segment.LabelSermon, 0.9},
		{"announce beats sharing", []string{"sharing", "announcement"}, segment.LabelAnnouncements, 0.9},
		{"no keywords", nil, segment.LabelOther, 0.5},
	}

	cls := New(nil, logger.New("error"))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := []segment.CandidateSegment{{Text: "whatever", Keywords: tt.keywords}}
			got := cls.ClassifyBatch(context.Background(), segs)
			if len(got) != 1 {
				t.Fatalf("ClassifyBatch() returned %d results, want 1", len(got))
			}
			if got[0].Label != tt.wantLabel {
				t.Errorf("Label = %s, want %s", got[0].Label, tt.wantLabel)
			}
			if got[0].Confidence != tt.wantConfidence {
				t.Errorf("Confidence = %v, want %v", got[0].Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestGeminiClassifierResponseShapes(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{
			"results wrapper",
			`{"results": [{"label": "Announcements", "confidence": 0.95}, {"label": "Sermon", "confidence": 0.9}]}`,
		},
		{
			"classifications wrapper",
			`{"classifications": [{"label": "Announcements", "confidence": 0.95}, {"label": "Sermon", "confidence": 0.9}]}`,
		},
		{
			"bare array",
			`[{"label": "Announcements", "confidence": 0.95}, {"label": "Sermon", "confidence": 0.9}]`,
		},
		{
			"fenced json",
			"```json\n{\"results\": [{\"label\": \"Announcements\", \"confidence\": 0.95}, {\"label\": \"Sermon\", \"confidence\": 0.9}]}\n```",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls := New(&stubClient{response: tt.response}, logger.New("error"))
			got := cls.ClassifyBatch(context.Background(), candidates(2))
			if len(got) != 2 {
				t.Fatalf("ClassifyBatch() returned %d results, want 2", len(got))
			}
			if got[0].Label != segment.LabelAnnouncements || got[1].Label != segment.LabelSermon {
				t.Errorf("labels = %s, %s, want Announcements, Sermon", got[0].Label, got[1].Label)
			}
		})
	}
}

func TestGeminiClassifierFallback(t *testing.T) {
	tests := []struct {
		name string
		stub *stubClient
	}{
		{"network error", &stubClient{err: fmt.Errorf("connection refused")}},
		{"invalid json", &stubClient{response: "I think segment 1 is announcements"}},
		{"wrong result count", &stubClient{response: `{"results": [{"label": "Sermon", "confidence": 0.9}]}`}},
		{"empty response", &stubClient{response: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls := New(tt.stub, logger.New("error"))
			segs := candidates(3)
			got := cls.ClassifyBatch(context.Background(), segs)
			if len(got) != len(segs) {
				t.Fatalf("ClassifyBatch() returned %d results, want %d", len(got), len(segs))
			}
			for i, c := range got {
				if c.Label != segment.LabelOther || c.Confidence != 0.0 {
					t.Errorf("result %d = {%s %v}, want {Other 0.0}", i, c.Label, c.Confidence)
				}
			}
		})
	}
}

func TestGeminiClassifierNormalization(t *testing.T) {
	response := `{"results": [
		{"label": "Worship", "confidence": 0.8},
		{"label": "Sermon", "confidence": 1.7},
		{"label": "Sharing", "confidence": -0.2}
	]}`
	cls := New(&stubClient{response: response}, logger.New("error"))
	got := cls.ClassifyBatch(context.Background(), candidates(3))

	if got[0].Label != segment.LabelOther || got[0].Confidence != 0.0 {
		t.Errorf("unknown label = {%s %v}, want {Other 0.0}", got[0].Label, got[0].Confidence)
	}
	if got[1].Confidence != 1.0 {
		t.Errorf("confidence = %v, want clamped to 1.0", got[1].Confidence)
	}
	if got[2].Confidence != 0.0 {
		t.Errorf("confidence = %v, want clamped to 0.0", got[2].Confidence)
	}
}

type captureClient struct {
	prompt   string
	response string
}

func (c *captureClient) Generate(ctx context.Context, prompt string) (string, error) {
	c.prompt = prompt
	return c.response, nil
}

func TestGeminiClassifierTruncatesRequestText(t *testing.T) {
	long := ""
	for range 60 {
		long += "0123456789"
	}
	segs := []segment.CandidateSegment{{Text: long, EndMs: 1000}}

	capture := &captureClient{response: `{"results": [{"label": "Sermon", "confidence": 0.9}]}`}
	cls := New(capture, logger.New("error"))
	got := cls.ClassifyBatch(context.Background(), segs)

	if len(capture.prompt) == 0 {
		t.Fatal("no request was issued")
	}
	if len(capture.prompt) > len(classifyPrompt)+maxClassifyChars+100 {
		t.Errorf("request prompt length %d suggests the segment text was not truncated", len(capture.prompt))
	}
	// The stored segment keeps its full text; only the request is cut.
	if len(segs[0].Text) != 600 {
		t.Errorf("segment text length = %d, want 600 (untouched)", len(segs[0].Text))
	}
	if got[0].Label != segment.LabelSermon {
		t.Errorf("Label = %s, want Sermon", got[0].Label)
	}
}

func TestGeminiClassifierEmptyInput(t *testing.T) {
	cls := New(&stubClient{err: fmt.Errorf("should not be called")}, logger.New("error"))
	got := cls.ClassifyBatch(context.Background(), nil)
	if len(got) != 0 {
		t.Errorf("ClassifyBatch() returned %d results, want 0", len(got))
	}
}
