package processor

import "context"

// Processor handles one recording transcript file end to end.
type Processor interface {
	Process(ctx context.Context, recordingPath string) error
}
