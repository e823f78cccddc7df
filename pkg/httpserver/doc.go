// Package httpserver wraps net/http with graceful shutdown, env-driven
// timeouts and a health check handler.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run returns when ctx is cancelled or on SIGINT/SIGTERM, after in-flight
// requests finish or the shutdown timeout expires.
package httpserver
