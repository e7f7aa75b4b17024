package config

import "fmt"

// Transcription method identifiers accepted by the --method flag.
const (
	MethodMLX     = "mlx"
	MethodFaster  = "faster"
	MethodWyoming = "wyoming"
)

// DefaultModel is the default model repo for the mlx method.
const DefaultModel = "mlx-community/whisper-large-v3-turbo-qat-4bit"

// DefaultWyomingURI is the default Wyoming server address.
const DefaultWyomingURI = "tcp://127.0.0.1:10300"

type Config struct {
	Method      string            `yaml:"method"`
	Model       string            `yaml:"model"`
	Language    string            `yaml:"language"`
	Whisper     WhisperConfig     `yaml:"whisper"`
	Wyoming     WyomingConfig     `yaml:"wyoming"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Gemini      GeminiConfig      `yaml:"gemini"`
}

// WhisperConfig configures the local whisper.cpp binary used by the
// faster method.
type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

// WyomingConfig configures the remote Wyoming transcription server.
type WyomingConfig struct {
	URI string `yaml:"uri"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

// ValidMethods lists the accepted transcription methods.
func ValidMethods() []string {
	return []string{MethodMLX, MethodFaster, MethodWyoming}
}

func (c *Config) Validate() error {
	if c.Method == "" {
		c.Method = MethodMLX
	}
	switch c.Method {
	case MethodMLX, MethodFaster, MethodWyoming:
	default:
		return fmt.Errorf("method must be one of %v, got %q", ValidMethods(), c.Method)
	}

	if c.Method == MethodFaster && c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required for the faster method")
	}

	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Wyoming.URI == "" {
		c.Wyoming.URI = DefaultWyomingURI
	}
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}

	return nil
}
