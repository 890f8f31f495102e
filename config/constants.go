package config

import (
	"os"
	"strconv"
	"time"
)

// Service constants with env var override support.
var (
	MaxMediaSelections = intEnv("MAX_MEDIA_SELECTIONS", 5)
	ReportWindowDays   = intEnv("REPORT_WINDOW_DAYS", 30)
	RecentListLimit    = intEnv("RECENT_LIST_LIMIT", 20)
	RequestTimeout     = durationEnv("REQUEST_TIMEOUT", 30*time.Second)
)

func intEnv(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func durationEnv(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
