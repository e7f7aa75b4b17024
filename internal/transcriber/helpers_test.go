package transcriber

import (
	"context"

	"github.com/nguyentantai21042004/subgen/internal/config"
	"github.com/nguyentantai21042004/subgen/internal/logger"
)

// fakeExecutor records invocations and delegates to a run function so tests
// can fabricate the files a real backend binary would write.
type fakeExecutor struct {
	calls [][]string
	run   func(name string, args []string) (string, error)
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return f.ExecuteInDir(ctx, "", name, args...)
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.run != nil {
		return f.run(name, args)
	}
	return "", nil
}

// argValue returns the argument following flag in args, or "".
func argValue(args []string, flag string) string {
	for i, a := range args {
		if a == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func testConfig(method string) *config.Config {
	cfg := &config.Config{
		Method: method,
		Whisper: config.WhisperConfig{
			ModelPath:  "models/ggml-test.bin",
			BinaryPath: "whisper-cli",
		},
	}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}

func testLogger() logger.Logger {
	return logger.New("error")
}
