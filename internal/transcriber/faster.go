package transcriber

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/subgen/internal/config"
	"github.com/nguyentantai21042004/subgen/internal/logger"
	"github.com/nguyentantai21042004/subgen/pkg/executor"
)

type implFaster struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// whisperResult is the shape written by whisper.cpp with -oj. Offsets are
// milliseconds from the start of the audio.
type whisperResult struct {
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"`
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

func (t *implFaster) Name() string {
	return config.MethodFaster
}

// Transcribe runs the local whisper.cpp binary and parses its JSON output.
//
// -m: model path
// -f: input audio file
// -oj: output JSON
// -t: number of threads
// -ml/-mc: no segment length or context limit (better for long videos)
// -bo: best of 5 for better accuracy
func (t *implFaster) Transcribe(ctx context.Context, audioPath string) ([]Segment, error) {
	// whisper.cpp appends .json to the output prefix
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	t.logger.Info(ctx, "Transcribing with local whisper (%d threads): %s",
		t.cfg.Whisper.Threads, audioPath)

	args := []string{
		"-m", t.cfg.Whisper.ModelPath,
		"-f", audioPath,
		"-oj",
		"-t", strconv.Itoa(t.cfg.Whisper.Threads),
		"-ml", "0",
		"-mc", "0",
		"-bo", "5",
		"--output-file", outputPrefix,
	}
	if t.cfg.Language != "" {
		args = append(args, "-l", t.cfg.Language)
	}
	if t.cfg.Whisper.Prompt != "" {
		args = append(args, "--prompt", t.cfg.Whisper.Prompt)
	}

	if _, err := t.executor.Execute(ctx, t.cfg.Whisper.BinaryPath, args...); err != nil {
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}

	resultPath := outputPrefix + ".json"
	defer os.Remove(resultPath)

	data, err := os.ReadFile(resultPath)
	if err != nil {
		return nil, fmt.Errorf("read whisper result: %w", err)
	}

	var result whisperResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parse whisper result: %w", err)
	}

	segments := make([]Segment, 0, len(result.Transcription))
	for _, s := range result.Transcription {
		segments = append(segments, Segment{
			Start: float64(s.Offsets.From) / 1000.0,
			End:   float64(s.Offsets.To) / 1000.0,
			Text:  s.Text,
		})
	}

	t.logger.Info(ctx, "Whisper transcription completed: %d segments", len(segments))
	return segments, nil
}
