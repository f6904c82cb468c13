// Package envvar provides typed lookups of environment variables used to configure the module's binaries.
package envvar

import (
	"os"
	"strconv"

	"github.com/pmarathe25/SBuildr/log"
)

// lookup returns the parsed value of the environment variable varName. If the variable is unset or fails to parse the
// zero value and false are returned.
func lookup[T any](varName string, parse func(string) (T, error)) (T, bool) {
	var zero T

	env, ok := os.LookupEnv(varName)
	if !ok {
		return zero, false
	}

	val, err := parse(env)
	if err != nil {
		return zero, false
	}

	return val, true
}

// GetInt returns the int value of the environmental variable varName if the env var is not an int or empty it will
// return 0, false.
func GetInt(varName string) (int, bool) {
	return lookup(varName, strconv.Atoi)
}

// GetBool returns the boolean value of the environmental variable varName if the env var is empty or not a boolean it
// will return false, false.
func GetBool(varName string) (bool, bool) {
	return lookup(varName, strconv.ParseBool)
}

// GetLevel returns the log level named by the environmental variable varName, see 'log.ParseLevel' for accepted names.
func GetLevel(varName string) (log.Level, bool) {
	return lookup(varName, log.ParseLevel)
}
