package segment

// Config holds the segmentation thresholds and keyword lists. It is
// loaded once, treated as immutable, and passed explicitly into every
// pipeline stage so tests can substitute their own without hidden
// shared state.
type Config struct {
	MinSegmentDurationMs int64    `yaml:"min_segment_duration_ms" json:"min_segment_duration_ms"`
	MaxSegmentDurationMs int64    `yaml:"max_segment_duration_ms" json:"max_segment_duration_ms"`
	SilenceThresholdMs   int64    `yaml:"silence_threshold_ms" json:"silence_threshold_ms"`
	MergeGapThresholdMs  int64    `yaml:"merge_gap_threshold_ms" json:"merge_gap_threshold_ms"`
	Keywords             Keywords `yaml:"keywords" json:"keywords"`
}

// Keywords are the per-category heuristic phrases scanned for during
// chunking. Matching is case-insensitive substring matching.
type Keywords struct {
	Announcements []string `yaml:"announcements" json:"announcements"`
	Sharing       []string `yaml:"sharing" json:"sharing"`
	Sermon        []string `yaml:"sermon" json:"sermon"`
}

// DefaultConfig returns the stock segmentation thresholds and keyword
// lists tuned for a typical Sunday service.
func DefaultConfig() Config {
	return Config{
		MinSegmentDurationMs: 30_000,
		MaxSegmentDurationMs: 600_000,
		SilenceThresholdMs:   15_000,
		MergeGapThresholdMs:  30_000,
		Keywords: Keywords{
			Announcements: []string{
				"announcement", "announcements", "upcoming events",
				"this week", "calendar", "bulletin", "reminder",
			},
			Sharing: []string{
				"testimony", "testimonies", "sharing", "share with us",
				"praise report",
			},
			Sermon: []string{
				"sermon", "message", "scripture", "today's passage",
				"turn in your bibles", "open your bibles",
			},
		},
	}
}
