// Command cookied serves the cookie API defined in pkg/cookieapi.
//
// Configuration comes from the environment (or a .env file): APP_ENV,
// COOKIE_* for the cookie defaults and HTTP_* for the server.
package main

import (
	"context"
	"os"

	"github.com/dmitrymomot/cookies/pkg/config"
	"github.com/dmitrymomot/cookies/pkg/cookie"
	"github.com/dmitrymomot/cookies/pkg/cookieapi"
	"github.com/dmitrymomot/cookies/pkg/environment"
	"github.com/dmitrymomot/cookies/pkg/httpserver"
	"github.com/dmitrymomot/cookies/pkg/logger"
	"github.com/dmitrymomot/cookies/pkg/requestid"
)

const serviceName = "cookied"

func main() {
	var (
		cookieCfg cookie.Config
		serverCfg httpserver.Config
	)
	config.MustLoad(&cookieCfg)
	config.MustLoad(&serverCfg)

	env := environment.Parse(cookieCfg.Environment)
	log := logger.New(
		logger.WithEnvironment(env, serviceName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	manager, err := cookie.NewFromConfig(cookieCfg, cookie.WithLogger(log))
	if err != nil {
		log.Error("invalid cookie configuration", logger.Error(err))
		os.Exit(1)
	}
	cookie.SetDefault(manager)

	router := cookieapi.Router(cookieapi.Options{
		Manager:     manager,
		Logger:      log,
		Environment: env,
	})

	srv := httpserver.NewFromConfig(serverCfg, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), router); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}
