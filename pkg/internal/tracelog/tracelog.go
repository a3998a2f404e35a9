// Package tracelog is a thin wrapper over the standard log package, gated
// by a package-level verbose flag — the same debug-print gating the teacher
// repository uses around its own operational log lines.
package tracelog

import "log"

var verbose bool

// SetVerbose toggles whether Debugf lines are emitted.
func SetVerbose(v bool) { verbose = v }

// Debugf logs format/args if verbose logging is enabled.
func Debugf(format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}

// Warnf always logs format/args, regardless of the verbose flag —
// reserved for conditions an operator should see by default (partition
// failure, memory-reservation denial).
func Warnf(format string, args ...any) {
	log.Printf("warn: "+format, args...)
}
