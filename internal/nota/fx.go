package nota

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/dimaswi/pos-emas/internal/config"
	"github.com/dimaswi/pos-emas/internal/nota/pdf"
	"github.com/dimaswi/pos-emas/internal/nota/qr"
	"github.com/dimaswi/pos-emas/internal/nota/render"
	"github.com/dimaswi/pos-emas/internal/nota/service"
	"github.com/dimaswi/pos-emas/internal/nota/sink"
)

var Module = fx.Module("nota",
	fx.Provide(
		render.NewRenderer,
		qr.NewEncoder,
		pdf.NewArchiveWriter,
		provideSink,
		service.NewService,
	),
)

func provideSink(cfg config.Config, log *zap.Logger) sink.DocumentSink {
	switch cfg.Nota.Sink {
	case config.SinkFile:
		return sink.NewFileSink(cfg.Nota.SpoolDir)
	default:
		return sink.NewChromiumSink(cfg.Nota.RendererURL, cfg.Nota.SpoolDir, log)
	}
}
