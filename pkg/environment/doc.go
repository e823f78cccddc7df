// Package environment names the application environment (development,
// staging, production) and carries it through context.Context.
//
// Parse turns configuration strings such as APP_ENV into an Environment,
// accepting the dev, stage and prod aliases. The cookie package uses
// Environment.IsProduction to decide whether cookies are marked Secure.
//
// Middleware stores the environment on every request context and
// LoggerExtractor exposes it to slog through the logger package:
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	handler = environment.Middleware(env)(handler)
//
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
//
// Missing values yield the zero value ("") and never an error.
package environment
