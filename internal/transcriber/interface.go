package transcriber

import "context"

// Segment is a single unit of recognized speech: a time range in seconds
// paired with the transcribed text. Segments arrive ordered by start time
// and non-overlapping from the upstream engine; no validation or repair of
// that ordering happens here.
type Segment struct {
	Start float64
	End   float64
	Text  string
}

// Transcriber converts an audio file into timestamped transcript segments
// by delegating to an external speech-to-text engine.
type Transcriber interface {
	// Name returns the method identifier of the backend (mlx, faster, wyoming).
	Name() string

	// Transcribe runs the backend on a 16kHz mono WAV file.
	Transcribe(ctx context.Context, audioPath string) ([]Segment, error)
}
