package segment

// Label is the section category assigned by classification.
type Label string

const (
	LabelAnnouncements Label = "Announcements"
	LabelSharing       Label = "Sharing"
	LabelSermon        Label = "Sermon"
	LabelOther         Label = "Other"
)

// BreakReason records which heuristic ended a candidate segment.
type BreakReason string

const (
	BreakSilence    BreakReason = "silence"
	BreakKeyword    BreakReason = "keyword"
	BreakDuration   BreakReason = "duration"
	BreakTopicShift BreakReason = "topic_shift"
)

// IgnoreReason explains why a time range carries no section.
type IgnoreReason string

const (
	IgnoreMusic   IgnoreReason = "music"
	IgnorePrayer  IgnoreReason = "prayer"
	IgnoreSilence IgnoreReason = "silence"
	IgnoreOther   IgnoreReason = "other"
)

// TranscriptChunk is one timestamped fragment of recognized speech.
// Chunks arrive in recording order; TimestampMs is the offset from
// the start of the recording.
type TranscriptChunk struct {
	Text        string `json:"text"`
	TimestampMs int64  `json:"timestamp_ms"`
	IsFinal     bool   `json:"is_final,omitempty"`
}

// CandidateSegment is a provisional, unlabeled span of transcript text
// produced by heuristic chunking. Immutable once emitted.
type CandidateSegment struct {
	StartMs     int64       `json:"start_ms"`
	EndMs       int64       `json:"end_ms"`
	Text        string      `json:"text"`
	BreakReason BreakReason `json:"break_reason,omitempty"`
	Keywords    []string    `json:"keywords,omitempty"`
}

// Classification is one classifier verdict for a candidate segment.
type Classification struct {
	Label      Label   `json:"label"`
	Confidence float64 `json:"confidence"`
}

// ClassifiedSegment is a candidate segment plus its classification.
type ClassifiedSegment struct {
	CandidateSegment
	Label      Label   `json:"label"`
	Confidence float64 `json:"confidence"`
}

// FinalSection is a merged, user-facing section of the service.
// Summary and Bullets are filled by the summarizer stage; Bullets is
// only meaningful for Sermon sections. Confidence is the average
// classifier confidence over the merged segments, kept as a
// diagnostic for downstream review.
type FinalSection struct {
	Label      Label    `json:"label"`
	StartMs    int64    `json:"start_ms"`
	EndMs      int64    `json:"end_ms"`
	Text       string   `json:"text"`
	Summary    string   `json:"summary,omitempty"`
	Bullets    []string `json:"bullets,omitempty"`
	Confidence float64  `json:"confidence,omitempty"`
}

// IgnoredSegment is a time range excluded from labeled sections.
type IgnoredSegment struct {
	StartMs int64        `json:"start_ms"`
	EndMs   int64        `json:"end_ms"`
	Reason  IgnoreReason `json:"reason"`
}
