package config

import (
	"fmt"

	"github.com/chapelstack/sermon-flow/internal/segment"
)

type Config struct {
	Segmentation segment.Config    `yaml:"segmentation"`
	Gemini       GeminiConfig      `yaml:"gemini"`
	Paths        PathsConfig       `yaml:"paths"`
	Logging      LoggingConfig     `yaml:"logging"`
	Performance  PerformanceConfig `yaml:"performance"`
	Summary      SummaryConfig     `yaml:"summary"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`

	// APIKeys are never read from the config file; they are overlaid
	// from the GEMINI_API_KEYS environment variable by Load.
	APIKeys []string `yaml:"-"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type SummaryConfig struct {
	Enabled  bool `yaml:"enabled"`
	MaxChars int  `yaml:"max_chars"`
}

func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Summary.MaxChars == 0 {
		c.Summary.MaxChars = 8000
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	def := segment.DefaultConfig()
	seg := &c.Segmentation
	if seg.MinSegmentDurationMs == 0 {
		seg.MinSegmentDurationMs = def.MinSegmentDurationMs
	}
	if seg.MaxSegmentDurationMs == 0 {
		seg.MaxSegmentDurationMs = def.MaxSegmentDurationMs
	}
	if seg.SilenceThresholdMs == 0 {
		seg.SilenceThresholdMs = def.SilenceThresholdMs
	}
	if seg.MergeGapThresholdMs == 0 {
		seg.MergeGapThresholdMs = def.MergeGapThresholdMs
	}
	if len(seg.Keywords.Announcements) == 0 {
		seg.Keywords.Announcements = def.Keywords.Announcements
	}
	if len(seg.Keywords.Sharing) == 0 {
		seg.Keywords.Sharing = def.Keywords.Sharing
	}
	if len(seg.Keywords.Sermon) == 0 {
		seg.Keywords.Sermon = def.Keywords.Sermon
	}

	if seg.MaxSegmentDurationMs <= seg.MinSegmentDurationMs {
		return fmt.Errorf("segmentation.max_segment_duration_ms must exceed min_segment_duration_ms")
	}

	return nil
}
