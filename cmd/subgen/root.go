package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/subgen/internal/config"
)

// rootOptions holds the flag values shared by the commands. Empty strings
// mean "not set on the command line" and leave the config value alone.
type rootOptions struct {
	configPath string
	method     string
	model      string
	language   string
	wyomingURI string
	outputDir  string
}

// loadConfig loads the yaml config (or defaults) and applies flag overrides.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	if o.method != "" {
		cfg.Method = o.method
	}
	if o.model != "" {
		cfg.Model = o.model
	}
	if o.language != "" {
		cfg.Language = o.language
	}
	if o.wyomingURI != "" {
		cfg.Wyoming.URI = o.wyomingURI
	}
	if o.outputDir != "" {
		cfg.Paths.Output = o.outputDir
	}

	// Flag overrides go through the same validation as the file
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "subgen <media-file>",
		Short:         "Generate .srt and .ssa subtitles from a video's audio track",
		Long:          "subgen converts a video or audio file into SRT and SSA subtitle files\nusing one of three speech-to-text backends: mlx (native Apple Silicon),\nfaster (local CPU inference), or wyoming (remote transcription server).",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runGenerate(cmd.Context(), opts, args[0])
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Configuration file path (default config.yaml when present)")

	rootCmd.Flags().StringVar(&opts.method, "method", "", fmt.Sprintf("Transcription method: %v (default %s)", config.ValidMethods(), config.MethodMLX))
	rootCmd.Flags().StringVar(&opts.model, "model", "", "Model path or name for the mlx method (default "+config.DefaultModel+")")
	rootCmd.Flags().StringVar(&opts.language, "language", "", "Language code (e.g. fi); auto-detect when empty")
	rootCmd.Flags().StringVar(&opts.wyomingURI, "wyoming-uri", "", "Wyoming server URI (default "+config.DefaultWyomingURI+")")
	rootCmd.Flags().StringVar(&opts.outputDir, "output-dir", "", "Directory for subtitle files (default: alongside the input)")

	rootCmd.AddCommand(newWatchCommand(opts))
	rootCmd.AddCommand(newSummarizeCommand(opts))

	return rootCmd
}
