package transcriber

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/subgen/internal/config"
	"github.com/nguyentantai21042004/subgen/internal/logger"
	"github.com/nguyentantai21042004/subgen/pkg/executor"
)

// mlxBinary is the mlx_whisper CLI installed alongside the MLX runtime.
const mlxBinary = "mlx_whisper"

type implMLX struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// mlxResult is the OpenAI-style JSON written by mlx_whisper.
type mlxResult struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Segments []struct {
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Text  string  `json:"text"`
	} `json:"segments"`
}

func (t *implMLX) Name() string {
	return config.MethodMLX
}

// Transcribe runs the mlx_whisper CLI with a temporary output directory and
// parses the JSON result it writes there.
func (t *implMLX) Transcribe(ctx context.Context, audioPath string) ([]Segment, error) {
	tmpDir, err := os.MkdirTemp("", "mlx_out_*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir for mlx output: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	t.logger.Info(ctx, "Transcribing with native MLX using %s: %s", t.cfg.Model, audioPath)

	args := []string{
		audioPath,
		"--model", t.cfg.Model,
		"--output-dir", tmpDir,
		"--output-format", "json",
		"--verbose", "False",
	}
	if t.cfg.Language != "" {
		args = append(args, "--language", t.cfg.Language)
	}

	if _, err := t.executor.Execute(ctx, mlxBinary, args...); err != nil {
		return nil, fmt.Errorf("mlx_whisper transcribe: %w", err)
	}

	// mlx_whisper names the result after the input file
	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	resultPath := filepath.Join(tmpDir, base+".json")

	data, err := os.ReadFile(resultPath)
	if err != nil {
		return nil, fmt.Errorf("read mlx result: %w", err)
	}

	var result mlxResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parse mlx result: %w", err)
	}

	segments := make([]Segment, 0, len(result.Segments))
	for _, s := range result.Segments {
		segments = append(segments, Segment{Start: s.Start, End: s.End, Text: s.Text})
	}

	t.logger.Info(ctx, "MLX transcription completed: %d segments", len(segments))
	return segments, nil
}
