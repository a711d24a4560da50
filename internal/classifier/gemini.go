package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chapelstack/sermon-flow/internal/gemini"
	"github.com/chapelstack/sermon-flow/internal/logger"
	"github.com/chapelstack/sermon-flow/internal/segment"
)

// Each segment's text is truncated to this many characters in the
// classification request. The stored segment keeps the full text.
const maxClassifyChars = 500

const classifyPrompt = `You are classifying sections of a church service transcript.

Categories:
- Announcements: church news, upcoming events, schedules, reminders, logistics
- Sharing: personal testimonies, praise reports, congregation members sharing experiences
- Sermon: the pastor's message, scripture teaching, exposition of a Bible passage
- Other: music, prayer, silence, or anything that fits none of the above

For EACH numbered segment below, assign exactly one category and a
confidence between 0 and 1.

Respond with ONLY a JSON object of this shape, one result per segment,
in the same order as the input:
{"results": [{"label": "Announcements", "confidence": 0.95}]}

Segments:
%s`

type implGemini struct {
	client gemini.Client
	logger logger.Logger
}

// ClassifyBatch sends all segments in a single request. Any network or
// parse failure falls back to labeling every segment Other at
// confidence 0.0, losing those spans to the ignored bucket rather
// than failing the run.
func (c *implGemini) ClassifyBatch(ctx context.Context, segments []segment.CandidateSegment) []segment.Classification {
	if len(segments) == 0 {
		return []segment.Classification{}
	}

	prompt := fmt.Sprintf(classifyPrompt, formatSegments(segments))

	raw, err := c.client.Generate(ctx, prompt)
	if err != nil {
		c.logger.Warn(ctx, "Classification request failed, marking %d segments as Other: %v", len(segments), err)
		return fallbackClassifications(len(segments))
	}

	results, err := parseClassifications(raw)
	if err != nil || len(results) != len(segments) {
		c.logger.Warn(ctx, "Classification response unusable (%d results for %d segments): %v", len(results), len(segments), err)
		return fallbackClassifications(len(segments))
	}

	for i := range results {
		results[i] = normalize(results[i])
	}
	return results
}

func formatSegments(segments []segment.CandidateSegment) string {
	var b strings.Builder
	for i, seg := range segments {
		text := seg.Text
		if len(text) > maxClassifyChars {
			text = text[:maxClassifyChars]
		}
		fmt.Fprintf(&b, "%d. [%s - %s] %s\n", i+1, formatMs(seg.StartMs), formatMs(seg.EndMs), text)
	}
	return b.String()
}

func formatMs(ms int64) string {
	secs := ms / 1000
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// parseClassifications tolerates the response shapes Gemini actually
// produces: the requested {"results": [...]} object, a bare array, or
// a {"classifications": [...]} wrapper.
func parseClassifications(raw string) ([]segment.Classification, error) {
	jsonStr := gemini.StripFences(raw)

	var wrapper struct {
		Results         []segment.Classification `json:"results"`
		Classifications []segment.Classification `json:"classifications"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &wrapper); err == nil {
		if len(wrapper.Results) > 0 {
			return wrapper.Results, nil
		}
		if len(wrapper.Classifications) > 0 {
			return wrapper.Classifications, nil
		}
	}

	var bare []segment.Classification
	if err := json.Unmarshal([]byte(jsonStr), &bare); err == nil {
		return bare, nil
	}

	return nil, fmt.Errorf("unrecognized classification response shape")
}

func normalize(c segment.Classification) segment.Classification {
	switch c.Label {
	case segment.LabelAnnouncements, segment.LabelSharing, segment.LabelSermon, segment.LabelOther:
	default:
		c.Label = segment.LabelOther
		c.Confidence = 0.0
	}
	if c.Confidence < 0 {
		c.Confidence = 0
	}
	if c.Confidence > 1 {
		c.Confidence = 1
	}
	return c
}

func fallbackClassifications(n int) []segment.Classification {
	results := make([]segment.Classification, n)
	for i := range results {
		results[i] = segment.Classification{Label: segment.LabelOther, Confidence: 0.0}
	}
	return results
}
