package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chapelstack/sermon-flow/internal/report"
	"github.com/chapelstack/sermon-flow/internal/segment"
)

// recording is the persistence-boundary document dropped into the
// input directory by the capture layer.
type recording struct {
	Title           string                    `json:"title"`
	TotalDurationMs int64                     `json:"total_duration_ms"`
	Chunks          []segment.TranscriptChunk `json:"chunks"`
}

// Process orchestrates one recording: decode the transcript document,
// run the segmentation pipeline, write the result document and the
// docx report, then archive the source file.
func (p *implProcessor) Process(ctx context.Context, recordingPath string) error {
	startTime := time.Now()
	name := strings.TrimSuffix(filepath.Base(recordingPath), filepath.Ext(recordingPath))

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing recording: %s", recordingPath)
	p.logger.Info(ctx, "========================================")

	// Step 1: Read and decode the recording document
	rec, err := p.readRecording(recordingPath)
	if err != nil {
		return fmt.Errorf("read recording: %w", err)
	}
	if rec.Title == "" {
		rec.Title = name
	}
	if rec.TotalDurationMs <= 0 {
		return fmt.Errorf("recording %s: total_duration_ms must be positive, got %d", name, rec.TotalDurationMs)
	}

	// Step 2: Run the segmentation pipeline
	result := p.pipeline.Run(ctx, rec.Chunks, rec.TotalDurationMs)

	// Step 3: Write the sections document
	resultPath := filepath.Join(p.cfg.Paths.Output, name+".sections.json")
	if err := p.writeResult(resultPath, result); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	// Step 4: Write the docx report
	reportPath := filepath.Join(p.cfg.Paths.Output, name+".docx")
	if err := report.Write(rec.Title, result.Sections, result.Ignored, reportPath); err != nil {
		p.logger.Warn(ctx, "Failed to write docx report for %s: %v", name, err)
	}

	// Step 5: Move the source file to the archived folder
	if err := p.moveToArchived(ctx, recordingPath); err != nil {
		p.logger.Warn(ctx, "Failed to move recording to archived folder: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Recording processed: %d sections, %d ignored ranges", len(result.Sections), len(result.Ignored))
	p.logger.Info(ctx, "Output: %s", resultPath)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return nil
}

func (p *implProcessor) readRecording(path string) (*recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var rec recording
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return &rec, nil
}

func (p *implProcessor) writeResult(path string, result interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

func (p *implProcessor) moveToArchived(ctx context.Context, path string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	dest := filepath.Join(p.cfg.Paths.Archived, filepath.Base(path))
	if err := os.Rename(path, dest); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}

	p.logger.Debug(ctx, "Archived %s", dest)
	return nil
}
