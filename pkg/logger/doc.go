// Package logger builds *slog.Logger instances for rentdesk services.
//
// New applies functional options (format, level, static attributes,
// environment presets) and wraps the chosen slog handler with
// LogHandlerDecorator, which pulls request-scoped attributes out of the
// context on every record:
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "rentdesk"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "sidebar toggled",
//	    logger.SidebarID(state.ID()),
//	    logger.Component("sidebar"),
//	)
//
// Attribute helpers in attr.go keep key names consistent. Helpers taking an
// error or an optional value return an empty slog.Attr for nil input, which
// slog drops.
package logger
