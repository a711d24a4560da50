// Package report renders a finalized recording into a reviewer-facing
// docx document: one heading per section with its time range, the
// summary, sermon key points, and the merged transcript text.
package report

import (
	"fmt"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/chapelstack/sermon-flow/internal/segment"
)

const (
	fontName = "Times New Roman"
	fontSize = 13

	titleSize   = 16
	headingSize = 15
	labelSize   = 14
)

// Write renders the sections and ignored ranges into a docx file at
// outputPath.
func Write(title string, sections []segment.FinalSection, ignored []segment.IgnoredSegment, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), title, true, titleSize)
	doc.AddParagraph("")

	for _, sec := range sections {
		heading := fmt.Sprintf("%s (%s - %s)", sec.Label, formatTimestamp(sec.StartMs), formatTimestamp(sec.EndMs))
		addStyledRun(doc.AddParagraph(""), heading, true, headingSize)

		if sec.Summary != "" {
			addStyledRun(doc.AddParagraph(""), "Summary", true, labelSize)
			addPlainRun(doc.AddParagraph(""), sec.Summary)
		}

		if len(sec.Bullets) > 0 {
			addStyledRun(doc.AddParagraph(""), "Key Points", true, labelSize)
			for _, bullet := range sec.Bullets {
				addPlainRun(doc.AddParagraph(""), "• "+bullet)
			}
		}

		addStyledRun(doc.AddParagraph(""), "Transcript", true, labelSize)
		addPlainRun(doc.AddParagraph(""), sec.Text)
		doc.AddParagraph("")
	}

	if len(ignored) > 0 {
		addStyledRun(doc.AddParagraph(""), "Unsectioned Ranges", true, headingSize)
		for _, ign := range ignored {
			line := fmt.Sprintf("%s - %s (%s)", formatTimestamp(ign.StartMs), formatTimestamp(ign.EndMs), ign.Reason)
			addPlainRun(doc.AddParagraph(""), line)
		}
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func formatTimestamp(ms int64) string {
	secs := ms / 1000
	if secs >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func addPlainRun(p *docx.Paragraph, text string) {
	p.AddText(text).Font(fontName).Size(fontSize).Color("000000")
}
