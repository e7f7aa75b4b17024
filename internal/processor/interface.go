package processor

import "context"

// Processor defines the interface for the media-to-subtitles pipeline
type Processor interface {
	Process(ctx context.Context, mediaPath string) error
}
