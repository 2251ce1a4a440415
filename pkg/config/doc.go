// Package config loads typed configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - the default .env file in the working directory is loaded once, if present;
//   - variables are parsed into any struct using `env` and `envDefault` tags;
//   - each (type, prefix) pair is parsed once and then served from a cache.
//
// # Usage
//
//	type ServerConfig struct {
//		Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
//		ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// Options adjust a single call: WithPrefix scopes variables, WithEnvFiles loads
// extra .env files and WithEnvironment parses from a fixed map, which bypasses
// the cache and is handy in tests. MustLoad panics instead of returning an error.
//
// # Error Handling
//
// Parsing failures are joined with ErrParsingConfig, unreadable env files with
// ErrLoadingEnvFile; both can be matched with errors.Is.
package config
