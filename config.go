package taglog

/*
Process threshold configuration. The level that gates all loggers built by
Init() is resolved exactly once: a .env file in the working directory is
consulted first for the LOG_LEVEL key, then the process environment, then
DEFAULT_LOG_LEVEL. The dotfile is read with godotenv without mutating the
environment, and the resolved value is held read-only for the process
lifetime - there is no runtime reconfiguration.
*/

import (
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

var threshold struct {
	once  sync.Once
	level LogLevel
}

// Threshold returns the process-wide log level, resolving it on first use.
// The result never changes afterwards; construct loggers with
// InitWithParams to pick a level explicitly.
func Threshold() LogLevel {
	threshold.once.Do(func() {
		threshold.level = resolveLevel(os.Getenv, DEFAULT_ENV_FILE)
	})
	return threshold.level
}

// resolveLevel implements the precedence: dotfile key, environment
// variable, default. A present but blank value is treated as unset. The
// getenv function is injected so tests run without touching the real
// environment.
func resolveLevel(getenv func(string) string, dotfile string) LogLevel {
	if vals, err := godotenv.Read(dotfile); err == nil {
		if s, found := vals[DEFAULT_ENV_KEY]; found && strings.TrimSpace(s) != "" {
			return ParseLevel(s)
		}
	}
	if s := getenv(DEFAULT_ENV_KEY); strings.TrimSpace(s) != "" {
		return ParseLevel(s)
	}
	return DEFAULT_LOG_LEVEL
}
