package util

import "time"

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// EpochSeconds returns the Unix timestamp recorded on query log rows.
func EpochSeconds(t time.Time) int64 {
	return t.Unix()
}
