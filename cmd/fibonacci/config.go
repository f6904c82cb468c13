package main

import (
	"errors"
	"fmt"

	"github.com/pmarathe25/SBuildr/envvar"
	"github.com/pmarathe25/SBuildr/log"
)

const (
	// bitsEnvVar selects the width of the integers used for the computation.
	bitsEnvVar = "FIBONACCI_BITS"

	// logLevelEnvVar selects the least verbose level which is logged to stderr.
	logLevelEnvVar = "FIBONACCI_LOG_LEVEL"

	// traceEnvVar turns the per-iteration trace of 'sdebug' builds on or off.
	traceEnvVar = "FIBONACCI_TRACE"
)

// ErrUnsupportedWidth is returned when the requested integer width isn't one of 8, 16, 32 or 64.
var ErrUnsupportedWidth = errors.New("unsupported integer width")

// config is the environment driven configuration of the binary.
type config struct {
	bits     int
	logLevel log.Level
	trace    bool
}

// loadConfig reads the configuration from the environment, unset or unparsable values fall back to the defaults.
func loadConfig() (config, error) {
	cfg := config{bits: 64, logLevel: log.LevelInfo, trace: true}

	if bits, ok := envvar.GetInt(bitsEnvVar); ok {
		cfg.bits = bits
	}

	if level, ok := envvar.GetLevel(logLevelEnvVar); ok {
		cfg.logLevel = level
	}

	if trace, ok := envvar.GetBool(traceEnvVar); ok {
		cfg.trace = trace
	}

	switch cfg.bits {
	case 8, 16, 32, 64:
	default:
		return config{}, fmt.Errorf("invalid value for %s: %w: %d", bitsEnvVar, ErrUnsupportedWidth, cfg.bits)
	}

	return cfg, nil
}
