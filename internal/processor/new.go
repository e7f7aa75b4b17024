package processor

import (
	"github.com/nguyentantai21042004/subgen/internal/config"
	"github.com/nguyentantai21042004/subgen/internal/logger"
	"github.com/nguyentantai21042004/subgen/internal/transcriber"
	"github.com/nguyentantai21042004/subgen/pkg/executor"
)

type implProcessor struct {
	cfg         *config.Config
	executor    executor.Executor
	transcriber transcriber.Transcriber
	logger      logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, exec executor.Executor, tr transcriber.Transcriber, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		executor:    exec,
		transcriber: tr,
		logger:      log,
	}
}
