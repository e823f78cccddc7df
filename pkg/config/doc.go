// Package config loads typed configuration structs from environment
// variables.
//
// Parsing is done by github.com/caarlos0/env/v11 using `env` and `envDefault`
// struct tags. A .env file is loaded once with github.com/joho/godotenv
// before the first parse, so local development can keep variables in a file.
//
// Every struct type is parsed once and cached for the lifetime of the
// process:
//
//	var cfg cookie.Config
//	config.MustLoad(&cfg)
//
// Errors wrap ErrParsingConfig and can be checked with errors.Is.
package config
