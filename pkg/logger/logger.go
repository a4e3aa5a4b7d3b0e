// Package logger provides namespace-scoped debug logging controlled by the
// DEBUG environment variable.
package logger

import (
	"fmt"
	"hash/fnv"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/solutionops/solutions-check/pkg/timeutil"
	"github.com/solutionops/solutions-check/pkg/tty"
)

// Logger represents a debug logger for a specific namespace.
type Logger struct {
	namespace string
	enabled   bool
	lastLog   time.Time
	mu        sync.Mutex
	color     string
}

var (
	// DEBUG environment variable value, read once at initialization.
	debugEnv = os.Getenv("DEBUG")

	// DEBUG_COLORS environment variable to control color output.
	debugColors = os.Getenv("DEBUG_COLORS") != "0"

	isTTY = tty.IsStderrTerminal()

	// output is where enabled loggers write. Tests swap it for a buffer.
	output io.Writer = os.Stderr

	// ANSI 256-color codes readable on both light and dark backgrounds.
	colorPalette = []string{
		"\033[38;5;33m",  // Blue
		"\033[38;5;35m",  // Green
		"\033[38;5;166m", // Orange
		"\033[38;5;125m", // Purple
		"\033[38;5;37m",  // Cyan
		"\033[38;5;161m", // Magenta
		"\033[38;5;136m", // Yellow
		"\033[38;5;124m", // Red
	}

	colorReset = "\033[0m"
)

// New creates a new Logger for the given namespace.
// The enabled state is computed at construction time based on the DEBUG environment variable.
// DEBUG syntax follows https://www.npmjs.com/package/debug patterns:
//
//	DEBUG=*                  - enables all loggers
//	DEBUG=solutions:*        - enables all loggers in a namespace
//	DEBUG=ns1,ns2            - enables specific namespaces
//	DEBUG=solutions:*,-cli:* - enables namespace but excludes specific patterns
func New(namespace string) *Logger {
	return &Logger{
		namespace: namespace,
		enabled:   computeEnabled(namespace),
		lastLog:   time.Now(),
		color:     selectColor(namespace),
	}
}

// selectColor picks a stable palette color for the namespace.
func selectColor(namespace string) string {
	if !debugColors || !isTTY {
		return ""
	}

	h := fnv.New32a()
	if _, err := h.Write([]byte(namespace)); err != nil {
		return ""
	}
	return colorPalette[h.Sum32()%uint32(len(colorPalette))]
}

// Enabled returns whether this logger is enabled
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Printf prints a formatted message if the logger is enabled.
// A newline is always added at the end, followed by the time since the previous line.
func (l *Logger) Printf(format string, args ...any) {
	if !l.enabled {
		return
	}
	l.write(fmt.Sprintf(format, args...))
}

// Print prints a message if the logger is enabled.
func (l *Logger) Print(args ...any) {
	if !l.enabled {
		return
	}
	l.write(fmt.Sprint(args...))
}

func (l *Logger) write(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	diff := timeutil.FormatDuration(now.Sub(l.lastLog))
	l.lastLog = now

	if l.color != "" {
		fmt.Fprintf(output, "%s%s%s %s +%s\n", l.color, l.namespace, colorReset, message, diff)
		return
	}
	fmt.Fprintf(output, "%s %s +%s\n", l.namespace, message, diff)
}

// computeEnabled computes whether a namespace matches the DEBUG patterns
func computeEnabled(namespace string) bool {
	enabled := false

	for pattern := range strings.SplitSeq(debugEnv, ",") {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		// Exclusions take precedence over any inclusion.
		if exclude, ok := strings.CutPrefix(pattern, "-"); ok {
			if matchPattern(namespace, exclude) {
				return false
			}
			continue
		}

		if matchPattern(namespace, pattern) {
			enabled = true
		}
	}

	return enabled
}

// matchPattern checks if a namespace matches a pattern with at most one * wildcard.
func matchPattern(namespace, pattern string) bool {
	if pattern == "*" || pattern == namespace {
		return true
	}

	prefix, suffix, ok := strings.Cut(pattern, "*")
	if !ok {
		return false
	}
	return len(namespace) >= len(prefix)+len(suffix) &&
		strings.HasPrefix(namespace, prefix) &&
		strings.HasSuffix(namespace, suffix)
}
