package utils

import (
	"strconv"
	"time"
)

// ParseDuration parses strings like "8s"; bad or empty input gets a sane
// default so a broken config cannot hang requests forever.
func ParseDuration(d string, fallback time.Duration) time.Duration {
	if d == "" {
		return fallback
	}
	duration, err := time.ParseDuration(d)
	if err != nil {
		return fallback
	}
	return duration
}

// ParsePositiveInt parses query parameters like topN and periods; anything
// unparseable or non-positive yields the fallback.
func ParsePositiveInt(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
