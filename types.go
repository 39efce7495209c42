// A lightweight console text-styling and logging package for Go. Provides
// ANSI-styled, tag-filtered log output with per-logger configuration,
// text transformers, log listeners and optional HTTP forwarding.
package clr

/*
types.go

Defines the core data types used by the package:
  - Style: the styling unit (bare escape code or text wrapper)
  - Transform: caller-supplied text->text pipeline stage
  - Listener: callback receiving the result of every emitted log line
  - Result: the {output, stripped} pair produced by a log call
  - Forwarding: the external HTTP forwarding target
  - Logger: the central state object holding configuration, transformer
    pipelines, listeners and named style classes

Also defines package-wide constants and small helpers shared across files.
*/

import (
	"io"
	"sync"
	"time"
)

// Style is the unit of styling. Called with no arguments it returns the bare
// escape code (for composition); called with text it returns
// code + text + reset. Multiple arguments are concatenated before wrapping.
type Style func(text ...string) string

// Transform is a text->text function run at a fixed pipeline stage
// ("before" the reset append or "after" it). Transforms run in
// registration order, each receiving the previous stage's full output.
type Transform func(s string) string

// Listener receives the result of every non-suppressed log call,
// synchronously and in registration order.
type Listener func(r Result)

// OutType is an alias for io.Writer to represent console/error sinks.
type OutType io.Writer

// Result is the pair produced once per successful log call. Output is the
// fully styled line, Stripped is the same line with all escape sequences
// removed (suitable for files and network payloads). The core hands it to
// listeners and to the forwarding transport, then forgets it.
type Result struct {
	Output   string
	Stripped string
}

// Forwarding describes the external HTTP target log lines are forwarded to.
// Method defaults to POST, headers are merged over a default
// Content-Type: application/json. OnError (if set) receives transport
// failures; they are never surfaced to the log caller.
type Forwarding struct {
	URL     string
	Method  string
	Headers map[string]string
	OnError func(error)
}

// Logger is the central state holder. It owns its configuration, the
// before/after transformer pipelines, the event listener map and the named
// style classes. Created by New(), no explicit teardown (Wait() only drains
// in-flight forwards).
type Logger struct {
	sync struct {
		chngMtx sync.RWMutex   // guards configuration fields and tags
		lstnMtx sync.RWMutex   // guards the listeners map
		clssMtx sync.RWMutex   // guards the style classes map
		fwdWait sync.WaitGroup // tracks in-flight forwarding goroutines
	}
	console    OutType // console sink (default os.Stdout)
	errout     OutType // sink for internal errors/warnings (default os.Stderr)
	consoleTTY bool    // whether the console sink is a terminal
	forceColor bool    // write styled output even to a non-terminal sink

	autospace    bool   // join plain arguments with a single space
	timefmt      string // default token pattern for Timestamp()
	trimlead     bool   // strip leading whitespace from the final output
	trimtrail    bool   // strip trailing whitespace from the final output
	consoleOn    bool   // gate console writes
	logFwdErrors bool   // report forwarding failures to the error sink

	tags      []string    // filter/categorize this logger (additive via AddTag)
	forward   *Forwarding // external forwarding target (nil = disabled)
	transport Transport   // forwarding transport (default: net/http)
	filter    *Filter     // consulted, never owned (default: DefaultFilter)

	before    []Transform
	after     []Transform
	listeners map[string][]Listener
	classes   map[string]Style

	now func() time.Time // clock, swappable for tests
}

// Option mutates a Logger during New()/Configure(). Options are applied in
// order over the defaults, so the merge is shallow and last write wins per
// field (fields no option mentions keep their previous value).
type Option func(*Logger)

/////////////////////////////////////////////////////////////////////////////////////////

const (
	// ANSI colored text fragments prefix/suffix. For a styled piece of text
	// the sequence is ANSI_COL_PRFX + spec + ANSI_COL_SUFX + text + ANSI_COL_RESET.
	ANSI_COL_PRFX  = "\033["
	ANSI_COL_SUFX  = "m"
	ANSI_COL_RESET = ANSI_COL_PRFX + "0" + ANSI_COL_SUFX
)

const (
	// Default values for the short init forms
	DEFAULT_TIMESTAMP_FORMAT = "YYYY-MM-DD HH:mm:ss.SSS"
	DEFAULT_FORWARD_METHOD   = "POST"
	EVENT_LOG                = "log" // the only built-in event name
)

const (
	// Error/warning messages used across logger operations (used for testing).
	_ERROR_MESSAGE_CLASS_EXISTS    = "style class already registered"
	_ERROR_MESSAGE_CLASS_RESERVED  = "style class name collides with a logger method"
	_ERROR_MESSAGE_CLASS_UNKNOWN   = "unknown style class"
	_ERROR_MESSAGE_CLASS_NIL_STYLE = "nil style for class"
	_WARNING_LISTENER_NOT_FOUND    = "listener not found, nothing removed"
	_ERROR_UNKNOWN_PANIC_TEXT      = "[no panic description]"
)

// Converts a panic value into a compact readable string (used when
// translating listener panics into error-sink lines)
func panicDesc(panic any) (errtext string) {
	switch v := panic.(type) {
	case string:
		errtext = ": `" + v + "`"
	case error:
		errtext = ": (error) `" + v.Error() + "`"
	default:
		errtext = " " + _ERROR_UNKNOWN_PANIC_TEXT
	}
	return errtext
}
