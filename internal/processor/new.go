package processor

import (
	"github.com/chapelstack/sermon-flow/internal/config"
	"github.com/chapelstack/sermon-flow/internal/logger"
	"github.com/chapelstack/sermon-flow/internal/pipeline"
)

type implProcessor struct {
	cfg      *config.Config
	pipeline pipeline.Pipeline
	logger   logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, p pipeline.Pipeline, log logger.Logger) Processor {
	return &implProcessor{
		cfg:      cfg,
		pipeline: p,
		logger:   log,
	}
}
