//go:build dectab_trace

package recognizer

const traceEnabled = true
