package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/subgen/internal/logger"
	"github.com/nguyentantai21042004/subgen/internal/summarizer"
)

// geminiKeysEnv overrides the configured API keys (comma separated).
const geminiKeysEnv = "GEMINI_API_KEYS"

func newSummarizeCommand(opts *rootOptions) *cobra.Command {
	var srtDir string
	var destDir string

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Summarize generated SRT files with Gemini",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			if srtDir == "" {
				srtDir = cfg.Paths.Output
			}
			if srtDir == "" {
				return fmt.Errorf("an SRT directory is required (--srt-dir or paths.output)")
			}
			if destDir == "" {
				destDir = srtDir
			}

			apiKeys := cfg.Gemini.APIKeys
			if env := os.Getenv(geminiKeysEnv); env != "" {
				apiKeys = nil
				for _, key := range strings.Split(env, ",") {
					if key = strings.TrimSpace(key); key != "" {
						apiKeys = append(apiKeys, key)
					}
				}
			}
			if len(apiKeys) == 0 {
				return fmt.Errorf("no Gemini API keys configured (gemini.api_keys or %s)", geminiKeysEnv)
			}

			log := logger.New(cfg.Logging.Level)
			s := summarizer.New(apiKeys, cfg.Gemini.Model, log)
			return s.SummarizeAll(cmd.Context(), srtDir, destDir)
		},
	}

	cmd.Flags().StringVar(&srtDir, "srt-dir", "", "Directory containing .srt files (default: paths.output)")
	cmd.Flags().StringVar(&destDir, "dest-dir", "", "Directory for summaries (default: same as --srt-dir)")

	return cmd
}
