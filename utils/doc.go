// Package utils contains small shared helpers for time-of-day math and
// display formatting.
package utils
