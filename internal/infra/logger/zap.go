package logger

import (
	"fmt"

	"shoppa/internal/config"

	"go.uber.org/zap"
)

// New は GO_ENV と LOG_LEVEL から zap.Logger を作る。
// dev はコンソール形式、それ以外はJSON。
func New(cfg config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}

	zc := zap.NewProductionConfig()
	if cfg.GoEnv == "dev" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = level

	l, err := zc.Build()
	if err != nil {
		return nil, err
	}
	return l.With(zap.String("service", "shoppa")), nil
}
