package main

import (
	"context"

	"github.com/nguyentantai21042004/subgen/internal/logger"
	"github.com/nguyentantai21042004/subgen/internal/processor"
	"github.com/nguyentantai21042004/subgen/internal/transcriber"
	"github.com/nguyentantai21042004/subgen/pkg/executor"
)

// runGenerate produces subtitles for a single media file.
func runGenerate(ctx context.Context, opts *rootOptions, mediaPath string) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging.Level)
	exec := executor.New()

	tr, err := transcriber.New(cfg, exec, log)
	if err != nil {
		return err
	}

	proc := processor.New(cfg, exec, tr, log)
	return proc.Process(ctx, mediaPath)
}
