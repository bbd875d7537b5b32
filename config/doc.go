// Package config loads typed configuration from environment variables,
// wrapping github.com/joho/godotenv and github.com/caarlos0/env/v11.
//
// Each configuration type is parsed at most once per process and then
// served from an in-memory cache; Reset clears the cache for tests. A
// default .env file in the working directory is loaded opportunistically
// before the first parse, and LoadEnv loads explicit .env files.
//
//	var cfg i18n.Config
//	config.MustLoad(&cfg)
package config
