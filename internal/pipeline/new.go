package pipeline

import (
	"github.com/chapelstack/sermon-flow/internal/classifier"
	"github.com/chapelstack/sermon-flow/internal/logger"
	"github.com/chapelstack/sermon-flow/internal/segment"
	"github.com/chapelstack/sermon-flow/internal/summarizer"
)

type implPipeline struct {
	cfg        segment.Config
	classifier classifier.Classifier
	summarizer summarizer.Summarizer
	logger     logger.Logger
}

// New creates a Pipeline. Pass a nil summarizer to skip the summary
// stage entirely.
func New(cfg segment.Config, cls classifier.Classifier, sum summarizer.Summarizer, log logger.Logger) Pipeline {
	return &implPipeline{
		cfg:        cfg,
		classifier: cls,
		summarizer: sum,
		logger:     log,
	}
}
