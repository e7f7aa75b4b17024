package transcriber

import (
	"fmt"

	"github.com/nguyentantai21042004/subgen/internal/config"
	"github.com/nguyentantai21042004/subgen/internal/logger"
	"github.com/nguyentantai21042004/subgen/pkg/executor"
)

// New creates the Transcriber selected by cfg.Method.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	switch cfg.Method {
	case config.MethodMLX:
		return &implMLX{cfg: cfg, executor: exec, logger: log}, nil
	case config.MethodFaster:
		return &implFaster{cfg: cfg, executor: exec, logger: log}, nil
	case config.MethodWyoming:
		return &implWyoming{uri: cfg.Wyoming.URI, logger: log}, nil
	default:
		return nil, fmt.Errorf("unsupported transcription method %q (valid: %v)", cfg.Method, config.ValidMethods())
	}
}
