package summarizer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/chapelstack/sermon-flow/internal/gemini"
	"github.com/chapelstack/sermon-flow/internal/logger"
	"github.com/chapelstack/sermon-flow/internal/segment"
)

// FallbackSummary is what a section shows when its summarization call
// failed. Visibly a placeholder so a human reviewer can regenerate or
// edit it.
const FallbackSummary = "Summary generation failed. Please regenerate or edit this summary manually."

const sectionPrompt = `You are summarizing one section of a church service transcript.

Section type: %s

Write a short prose summary of 2-4 sentences capturing what happened
in this section.%s

Respond with ONLY a JSON object: {"summary": "...", "bullets": ["..."]}
Omit "bullets" unless key points were requested.

Transcript:
---
%s
---`

const sermonBulletsClause = `
Because this is the sermon, also extract 5-10 bullet key points
covering the main teaching, scripture references, and applications.`

type implGemini struct {
	client   gemini.Client
	maxChars int
	logger   logger.Logger
}

// Summarize issues one independent request per section and waits for
// all of them. Results are zipped back by index, so completion order
// does not matter. Sections labeled Other pass through untouched.
func (s *implGemini) Summarize(ctx context.Context, sections []segment.FinalSection) []segment.FinalSection {
	out := make([]segment.FinalSection, len(sections))
	copy(out, sections)

	var wg sync.WaitGroup
	for i := range out {
		if out[i].Label == segment.LabelOther {
			continue
		}

		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			summary, bullets, err := s.summarizeSection(ctx, out[idx])
			if err != nil {
				s.logger.Warn(ctx, "Summarization failed for %s section [%d-%d]: %v",
					out[idx].Label, out[idx].StartMs, out[idx].EndMs, err)
				out[idx].Summary = FallbackSummary
				if out[idx].Label == segment.LabelSermon {
					out[idx].Bullets = []string{}
				}
				return
			}
			out[idx].Summary = summary
			if out[idx].Label == segment.LabelSermon {
				out[idx].Bullets = bullets
			}
		}(i)
	}
	wg.Wait()

	return out
}

func (s *implGemini) summarizeSection(ctx context.Context, sec segment.FinalSection) (string, []string, error) {
	text := sec.Text
	if len(text) > s.maxChars {
		text = text[:s.maxChars]
	}

	bulletsClause := ""
	if sec.Label == segment.LabelSermon {
		bulletsClause = sermonBulletsClause
	}
	prompt := fmt.Sprintf(sectionPrompt, sec.Label, bulletsClause, text)

	raw, err := s.client.Generate(ctx, prompt)
	if err != nil {
		return "", nil, err
	}

	var parsed struct {
		Summary string   `json:"summary"`
		Bullets []string `json:"bullets"`
	}
	if err := json.Unmarshal([]byte(gemini.StripFences(raw)), &parsed); err != nil {
		return "", nil, fmt.Errorf("parse summary response: %w", err)
	}
	if strings.TrimSpace(parsed.Summary) == "" {
		return "", nil, fmt.Errorf("empty summary in response")
	}

	return strings.TrimSpace(parsed.Summary), parsed.Bullets, nil
}
