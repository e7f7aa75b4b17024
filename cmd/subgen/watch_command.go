package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/subgen/internal/logger"
	"github.com/nguyentantai21042004/subgen/internal/processor"
	"github.com/nguyentantai21042004/subgen/internal/transcriber"
	"github.com/nguyentantai21042004/subgen/internal/watcher"
	"github.com/nguyentantai21042004/subgen/pkg/executor"
)

func newWatchCommand(opts *rootOptions) *cobra.Command {
	var inputDir string
	var maxConcurrent int

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Monitor a directory and generate subtitles for new videos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if inputDir != "" {
				cfg.Paths.Input = inputDir
			}
			if maxConcurrent > 0 {
				cfg.Performance.MaxConcurrent = maxConcurrent
			}
			if cfg.Paths.Input == "" {
				return fmt.Errorf("an input directory is required (--input or paths.input)")
			}

			ctx := cmd.Context()
			log := logger.New(cfg.Logging.Level)
			log.Info(ctx, "========================================")
			log.Info(ctx, "subgen watch mode")
			log.Info(ctx, "========================================")
			log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
			log.Info(ctx, "Method: %s", cfg.Method)
			log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
			log.Info(ctx, "Max concurrent: %d", cfg.Performance.MaxConcurrent)
			log.Info(ctx, "Press Ctrl+C to stop")

			exec := executor.New()
			tr, err := transcriber.New(cfg, exec, log)
			if err != nil {
				return err
			}
			proc := processor.New(cfg, exec, tr, log)

			w, err := watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Performance.MaxConcurrent)
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			defer w.Stop()

			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}

			log.Info(ctx, "subgen stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&inputDir, "input", "", "Directory to monitor for new videos")
	cmd.Flags().IntVar(&maxConcurrent, "max-concurrent", 0, "Maximum videos processed at once")

	return cmd
}
