// Package timeutil formats durations for debug output.
package timeutil

import (
	"fmt"
	"time"
)

// FormatDuration renders d in the largest unit that keeps it readable,
// e.g. "850µs", "12ms", "1.5s", "2m3s".
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return d.Truncate(time.Second).String()
	}
}
