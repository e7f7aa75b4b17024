package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/subgen/internal/subtitle"
)

// Process runs the full pipeline for one media file: extract audio,
// transcribe with the selected backend, and write .ssa and .srt subtitle
// files next to the input (or into the configured output directory).
func (p *implProcessor) Process(ctx context.Context, mediaPath string) error {
	startTime := time.Now()

	if _, err := os.Stat(mediaPath); err != nil {
		return fmt.Errorf("input file %s not found: %w", mediaPath, err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Generating subtitles: %s (method: %s)", mediaPath, p.transcriber.Name())
	p.logger.Info(ctx, "========================================")

	// Step 1: Extract audio
	audioPath, err := p.extractAudio(ctx, mediaPath)
	if err != nil {
		return fmt.Errorf("extract audio: %w", err)
	}
	defer p.cleanupTempFile(ctx, audioPath)

	// Step 2: Transcribe
	segments, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}

	if len(segments) == 0 {
		p.logger.Warn(ctx, "No transcription generated for %s", mediaPath)
		return nil
	}

	// Step 3: Write subtitle files, SSA first
	ssaPath, srtPath := p.outputPaths(mediaPath)

	p.logger.Info(ctx, "Writing SSA subtitles to %s", ssaPath)
	if err := subtitle.WriteSSA(ssaPath, segments); err != nil {
		return fmt.Errorf("write ssa: %w", err)
	}

	p.logger.Info(ctx, "Writing SRT subtitles to %s", srtPath)
	if err := subtitle.WriteSRT(srtPath, segments); err != nil {
		return fmt.Errorf("write srt: %w", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Subtitles generated successfully!")
	p.logger.Info(ctx, "Segments: %d", len(segments))
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return nil
}

// outputPaths derives the .ssa and .srt destinations for a media file.
func (p *implProcessor) outputPaths(mediaPath string) (string, string) {
	base := strings.TrimSuffix(mediaPath, filepath.Ext(mediaPath))
	if p.cfg.Paths.Output != "" {
		base = filepath.Join(p.cfg.Paths.Output, strings.TrimSuffix(filepath.Base(mediaPath), filepath.Ext(mediaPath)))
	}
	return base + ".ssa", base + ".srt"
}
