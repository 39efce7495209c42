package clr

/*
logger.go

Logger construction and configuration. A Logger is seeded by New() with the
built-in defaults, then every Option (and any later Configure call) merges
over them: last write wins per field, untouched fields keep their value.

Configuration setters follow the chainable form (return the receiver) so
loggers can be built in one expression:

	l := clr.New().SetAutoSpace(false).AddTag("net").TransformAfter(strings.ToUpper)

The tags field is unexported on purpose: Tags() returns a copy and mutation
goes through AddTag/RemoveTag only.
*/

import (
	"errors"
	"io"
	"os"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
)

// New constructs a logger with built-in defaults (auto-space on, console
// output on, default timestamp format, DefaultFilter, empty tag list,
// forwarding errors reported to the error sink) and merges the given
// options over them.
func New(opts ...Option) *Logger {
	l := &Logger{
		autospace:    true,
		timefmt:      DEFAULT_TIMESTAMP_FORMAT,
		consoleOn:    true,
		logFwdErrors: true,
		filter:       DefaultFilter,
		transport:    &httpTransport{},
		listeners:    map[string][]Listener{},
		classes:      map[string]Style{},
		now:          time.Now,
	}
	l.setConsoleSink(os.Stdout)
	l.setErrorSink(os.Stderr)
	return l.Configure(opts...)
}

// Configure merges further options over the current configuration at any
// later time. Non-destructive to fields no option mentions.
func (l *Logger) Configure(opts ...Option) *Logger {
	l.sync.chngMtx.Lock()
	defer l.sync.chngMtx.Unlock()
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// Options ///////////////////////////////////////////

// WithAutoSpace toggles joining plain arguments with a single space.
func WithAutoSpace(on bool) Option { return func(l *Logger) { l.autospace = on } }

// WithTimestampFormat sets the default token pattern for Timestamp().
func WithTimestampFormat(format string) Option { return func(l *Logger) { l.timefmt = format } }

// WithTrimBefore toggles stripping leading whitespace from the final output.
func WithTrimBefore(on bool) Option { return func(l *Logger) { l.trimlead = on } }

// WithTrimAfter toggles stripping trailing whitespace from the final output.
func WithTrimAfter(on bool) Option { return func(l *Logger) { l.trimtrail = on } }

// WithConsole gates console writes. Listener dispatch and forwarding are not
// affected by this flag.
func WithConsole(on bool) Option { return func(l *Logger) { l.consoleOn = on } }

// WithConsoleSink redirects console writes to the given writer.
func WithConsoleSink(w OutType) Option { return func(l *Logger) { l.setConsoleSink(w) } }

// WithErrorSink redirects internal error/warning reports to the given writer.
func WithErrorSink(w OutType) Option { return func(l *Logger) { l.setErrorSink(w) } }

// WithForceColor writes styled output to the console sink even when it is
// not a terminal.
func WithForceColor(on bool) Option { return func(l *Logger) { l.forceColor = on } }

// WithTags replaces the logger's tag list.
func WithTags(tags ...string) Option {
	return func(l *Logger) { l.tags = slices.Clone(tags) }
}

// WithForwarding enables external log forwarding to the given target
// (nil disables it).
func WithForwarding(fwd *Forwarding) Option { return func(l *Logger) { l.forward = fwd } }

// WithLogForwardErrors gates reporting of forwarding failures to the error sink.
func WithLogForwardErrors(on bool) Option { return func(l *Logger) { l.logFwdErrors = on } }

// WithFilter makes the logger consult the given filter instead of
// DefaultFilter (keeps tests hermetic).
func WithFilter(f *Filter) Option {
	return func(l *Logger) {
		if f != nil {
			l.filter = f
		}
	}
}

// WithTransport swaps the forwarding transport (used by tests; the default
// is the net/http one).
func WithTransport(t Transport) Option {
	return func(l *Logger) {
		if t != nil {
			l.transport = t
		}
	}
}

// WithClock swaps the wall clock used by Timestamp() (used by tests).
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		if now != nil {
			l.now = now
		}
	}
}

// WithListeners registers log listeners for the EVENT_LOG event. Usable at
// construction time and in later Configure calls; the listeners map has its
// own lock, taken here so a concurrent dispatch never observes the
// mutation half-done.
func WithListeners(listeners ...Listener) Option {
	return func(l *Logger) {
		l.sync.lstnMtx.Lock()
		defer l.sync.lstnMtx.Unlock()
		l.addListeners(EVENT_LOG, listeners)
	}
}

// Chainable setters //////////////////////////////////

func (l *Logger) SetAutoSpace(on bool) *Logger { return l.Configure(WithAutoSpace(on)) }
func (l *Logger) SetTimestampFormat(f string) *Logger { return l.Configure(WithTimestampFormat(f)) }
func (l *Logger) SetTrimBefore(on bool) *Logger { return l.Configure(WithTrimBefore(on)) }
func (l *Logger) SetTrimAfter(on bool) *Logger { return l.Configure(WithTrimAfter(on)) }
func (l *Logger) SetConsole(on bool) *Logger { return l.Configure(WithConsole(on)) }
func (l *Logger) SetConsoleSink(w OutType) *Logger { return l.Configure(WithConsoleSink(w)) }
func (l *Logger) SetErrorSink(w OutType) *Logger { return l.Configure(WithErrorSink(w)) }
func (l *Logger) SetForceColor(on bool) *Logger { return l.Configure(WithForceColor(on)) }
func (l *Logger) SetForwarding(fwd *Forwarding) *Logger { return l.Configure(WithForwarding(fwd)) }
func (l *Logger) SetFilter(f *Filter) *Logger { return l.Configure(WithFilter(f)) }

// setConsoleSink assigns the console writer and caches whether it is a
// terminal (non-terminal sinks get the stripped form unless forceColor).
// Nil falls back to io.Discard, mirroring the error-sink handling.
func (l *Logger) setConsoleSink(w OutType) {
	if w == nil {
		w = io.Discard
	}
	l.console = w
	l.consoleTTY = writerIsTerminal(w)
}

func (l *Logger) setErrorSink(w OutType) {
	if w == nil {
		w = io.Discard
	}
	l.errout = w
}

// writerIsTerminal reports whether the writer is an interactive terminal.
// Non-file writers (buffers, pipes wrapped in custom types) count as
// terminals so captured output keeps its styling.
func writerIsTerminal(w OutType) bool {
	f, ok := w.(*os.File)
	if !ok {
		return true
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Tags ///////////////////////////////////////////////

// Tags returns a copy of the logger's tag list. The underlying list can only
// be changed through AddTag/RemoveTag (or the WithTags option).
func (l *Logger) Tags() []string {
	l.sync.chngMtx.RLock()
	defer l.sync.chngMtx.RUnlock()
	return slices.Clone(l.tags)
}

// AddTag appends tags not already present to the logger's tag list.
func (l *Logger) AddTag(tags ...string) *Logger {
	l.sync.chngMtx.Lock()
	defer l.sync.chngMtx.Unlock()
	for _, tag := range tags {
		if !slices.Contains(l.tags, tag) {
			l.tags = append(l.tags, tag)
		}
	}
	return l
}

// RemoveTag removes every occurrence of the given tags from the logger's tag list.
func (l *Logger) RemoveTag(tags ...string) *Logger {
	l.sync.chngMtx.Lock()
	defer l.sync.chngMtx.Unlock()
	l.tags = slices.DeleteFunc(l.tags, func(t string) bool {
		return slices.Contains(tags, t)
	})
	return l
}

// Event listeners ////////////////////////////////////

// On appends listeners to the given event's dispatch list (EVENT_LOG is the
// only event the core emits). Nil listeners are ignored.
func (l *Logger) On(event string, listeners ...Listener) *Logger {
	l.sync.lstnMtx.Lock()
	defer l.sync.lstnMtx.Unlock()
	l.addListeners(event, listeners)
	return l
}

func (l *Logger) addListeners(event string, listeners []Listener) {
	for _, listener := range listeners {
		if listener != nil {
			l.listeners[event] = append(l.listeners[event], listener)
		}
	}
}

// Off scans all registered event types and removes every instance of the
// given listener (matched by function identity). Returns whether anything
// was removed; a miss is not an error — it is reported as a warning to the
// error sink.
func (l *Logger) Off(target Listener) bool {
	if target == nil {
		return false
	}
	ptr := reflect.ValueOf(target).Pointer()
	removed := false
	l.sync.lstnMtx.Lock()
	for event, list := range l.listeners {
		filtered := slices.DeleteFunc(list, func(listener Listener) bool {
			return reflect.ValueOf(listener).Pointer() == ptr
		})
		if len(filtered) != len(list) {
			removed = true
			l.listeners[event] = filtered
		}
	}
	l.sync.lstnMtx.Unlock()
	if !removed {
		l.reportError(_WARNING_LISTENER_NOT_FOUND)
	}
	return removed
}

// Transformers ///////////////////////////////////////

// TransformBefore appends transforms to the pipeline stage that runs before
// the reset code is appended. Nil transforms are ignored.
func (l *Logger) TransformBefore(fns ...Transform) *Logger {
	l.sync.chngMtx.Lock()
	defer l.sync.chngMtx.Unlock()
	for _, fn := range fns {
		if fn != nil {
			l.before = append(l.before, fn)
		}
	}
	return l
}

// TransformAfter appends transforms to the pipeline stage that runs after
// the reset code is appended. Nil transforms are ignored.
func (l *Logger) TransformAfter(fns ...Transform) *Logger {
	l.sync.chngMtx.Lock()
	defer l.sync.chngMtx.Unlock()
	for _, fn := range fns {
		if fn != nil {
			l.after = append(l.after, fn)
		}
	}
	return l
}

// Style classes //////////////////////////////////////

// Class registers a named style on this logger, usable via Styled(). The
// name must not collide with an already registered class or (case
// insensitively) with a Logger method — the guard protects built-ins like
// Log or Error from being shadowed in callers' heads.
func (l *Logger) Class(name string, style Style) error {
	if style == nil {
		return errors.New(_ERROR_MESSAGE_CLASS_NIL_STYLE)
	}
	if isReservedName(name) {
		return errors.New(_ERROR_MESSAGE_CLASS_RESERVED)
	}
	l.sync.clssMtx.Lock()
	defer l.sync.clssMtx.Unlock()
	if _, exists := l.classes[name]; exists {
		return errors.New(_ERROR_MESSAGE_CLASS_EXISTS)
	}
	l.classes[name] = style
	return nil
}

// ClassStyle returns the style registered under name (nil, false if absent).
func (l *Logger) ClassStyle(name string) (Style, bool) {
	l.sync.clssMtx.RLock()
	defer l.sync.clssMtx.RUnlock()
	s, ok := l.classes[name]
	return s, ok
}

// isReservedName reports whether name matches any exported Logger method,
// ignoring case.
func isReservedName(name string) bool {
	t := reflect.TypeOf((*Logger)(nil))
	for i := 0; i < t.NumMethod(); i++ {
		if strings.EqualFold(t.Method(i).Name, name) {
			return true
		}
	}
	return false
}
