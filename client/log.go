package client

import (
	"log/slog"
	"os"

	"github.com/campushub/campus-client/internal/xslog"
)

// SetupLogger installs the default slog logger per the config. Outside dev
// mode, raw response body attributes are stripped from records.
func SetupLogger(cfg Config) {
	opts := &slog.HandlerOptions{
		AddSource: cfg.Log.AddSource,
		Level:     cfg.Log.Level,
	}

	var handler slog.Handler
	switch cfg.Log.Format {
	case LogFormatJSON:
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	if !cfg.Dev {
		handler = xslog.NewFilterHandler(handler, xslog.StripAttr("body"))
	}

	slog.SetDefault(slog.New(handler))
}
