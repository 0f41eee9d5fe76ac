// Package config loads service configuration from the environment. Each
// constructor fails loudly on a missing required variable so that a
// misconfigured deployment dies at startup, not on first use.
package config

import "os"

func Addr() string {
	if addr, ok := os.LookupEnv("APP_ADDR"); ok {
		return addr
	}
	return ":8080"
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

// LogFile returns the rotating log file path, empty when file logging is
// disabled.
func LogFile() string {
	return os.Getenv("APP_LOG_FILE")
}
