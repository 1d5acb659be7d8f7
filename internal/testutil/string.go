// Package testutil provides helpers to compare command outputs in tests.
package testutil

import (
	"regexp"
	"strings"
)

var (
	durationPattern = regexp.MustCompile(`\(\d+\.\d\ds\)`)
	escapePattern   = regexp.MustCompile("\x1b\\[[0-9;]*m")
)

// ReplaceOutput normalizes the parts of a result output which change between
// runs.
func ReplaceOutput(s string) string {
	for _, f := range []func(string) string{
		ResetDuration,
		RemoveColor,
		TrimTrailingSpaces,
	} {
		s = f(s)
	}
	return s
}

// ResetDuration resets durations from result output.
func ResetDuration(s string) string {
	return durationPattern.ReplaceAllString(s, "(0.00s)")
}

// RemoveColor drops ANSI color sequences.
func RemoveColor(s string) string {
	return escapePattern.ReplaceAllString(s, "")
}

// TrimTrailingSpaces removes the spaces at the end of each line.
func TrimTrailingSpaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	return strings.Join(lines, "\n")
}
