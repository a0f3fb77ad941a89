package logger

import (
	"fmt"
	"go.uber.org/zap"
)

// New создает production-логгер zap с уровнем level. Логи пишутся в stderr,
// чтобы не смешиваться с результатами обработки в stdout.
func New(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}
