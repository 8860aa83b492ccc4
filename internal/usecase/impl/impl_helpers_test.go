package impl

import (
	"io"
	"log/slog"

	"profiled/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Site.RootDomain = "profiled.site"
	cfg.Site.Scheme = "https"

	return cfg
}
