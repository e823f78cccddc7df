// Package logger builds log/slog loggers with environment-aware defaults and
// context-driven attributes.
//
// New returns a *slog.Logger whose handler is wrapped in a
// LogHandlerDecorator. The decorator runs ContextExtractor functions on each
// call, so request-scoped values such as the request ID or environment end up
// on every record logged with a request context:
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "cookied"),
//		logger.WithContextExtractors(
//			requestid.LoggerExtractor(),
//			environment.LoggerExtractor(),
//		),
//	)
//	log.InfoContext(r.Context(), "cookie set", logger.Cookie("theme"))
//
// The attribute helpers (Error, Component, Cookie, Request, Status,
// Duration) keep key names consistent across packages.
package logger
