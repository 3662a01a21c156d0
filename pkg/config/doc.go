// Package config loads application configuration from environment variables
// into annotated Go structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file (if any) is read once per process, after which each call
// to Load parses the environment into the given struct based on `env` field
// tags. MustLoad panics on failure for configuration that is required at
// startup.
//
// Errors are exposed as sentinels usable with errors.Is:
//
//   - ErrParsingConfig — env vars could not be parsed into the struct.
//   - ErrNilPointer — a nil pointer was passed to Load.
package config
