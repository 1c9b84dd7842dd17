package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/rentdesk/internal/web"
	"github.com/dmitrymomot/rentdesk/pkg/config"
	"github.com/dmitrymomot/rentdesk/pkg/environment"
	"github.com/dmitrymomot/rentdesk/pkg/httpserver"
	"github.com/dmitrymomot/rentdesk/pkg/logger"
	"github.com/dmitrymomot/rentdesk/pkg/requestid"
)

func main() {
	var (
		appCfg  web.Config
		httpCfg httpserver.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&httpCfg)

	log := logger.New(
		logger.WithEnvironment(environment.Parse(appCfg.Env), appCfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	app, err := web.New(appCfg, log)
	if err != nil {
		log.Error("build application", logger.Error(err))
		os.Exit(1)
	}

	srv := httpserver.NewFromConfig(httpCfg,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) { l.Info("rentdesk started", slog.String("addr", httpCfg.Addr)) }),
		httpserver.WithStopHook(func(l *slog.Logger) { l.Info("rentdesk stopped") }),
	)
	if err := srv.Run(context.Background(), app.Routes()); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}
