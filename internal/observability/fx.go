// Package observability wires logging and metrics.
package observability

import (
	"go.uber.org/fx"

	"github.com/dimaswi/pos-emas/internal/config"
	"github.com/dimaswi/pos-emas/internal/observability/logger"
	"github.com/dimaswi/pos-emas/internal/observability/metrics"
)

var Module = fx.Module("observability",
	fx.Provide(
		provideLoggerConfig,
		logger.New,
		metrics.NewRegistry,
		metrics.NewNotaMetrics,
	),
)

func provideLoggerConfig(cfg config.Config) logger.Config {
	return logger.Config{
		ServiceName: cfg.AppName,
		Environment: cfg.Environment,
		Version:     cfg.AppVersion,
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		Debug:       cfg.Debug(),
	}
}
