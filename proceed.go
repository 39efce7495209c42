package clr

/*
proceed.go

The rendering and emission pipeline. Every log call proceeds through the
same fixed stages:

 1. tag-filter check (suppressed calls do nothing at all)
 2. render arguments into a single string
 3. "before" transforms, in registration order
 4. append the reset code
 5. "after" transforms, in registration order
 6. optional leading/trailing trim
 7. console write (stripped form when the sink is not a terminal)
 8. strip escape codes into the plain-text copy
 9. dispatch {output, stripped} to listeners (panics isolated per listener)
10. fire-and-forget forward of the plain-text copy
11. return the {output, stripped} pair to the caller

Listener and transport failures never propagate to the caller; they are
written as single lines to the error sink.
*/

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Log renders all arguments and runs the pipeline. Style values (and plain
// func() string callables) among the arguments are invoked with no argument
// to get their bare code; everything else is string-converted. Arguments are
// joined with a single space when auto-spacing is enabled, concatenated
// directly otherwise.
func (l *Logger) Log(args ...any) Result {
	if l.suppressed() {
		return Result{}
	}
	return l.emit(l.renderArgs(args))
}

// Logt is the template form of Log: literal parts are interleaved with the
// rendered values positionally (parts[0] + render(values[0]) + parts[1] + ...).
// Surplus values are appended rendered; surplus parts are appended verbatim.
func (l *Logger) Logt(parts []string, values ...any) Result {
	if l.suppressed() {
		return Result{}
	}
	var b strings.Builder
	for i, v := range values {
		if i < len(parts) {
			b.WriteString(parts[i])
		}
		b.WriteString(renderValue(v))
	}
	for i := len(values); i < len(parts); i++ {
		b.WriteString(parts[i])
	}
	return l.emit(b.String())
}

// StyledLog renders the arguments, wraps the whole message in the given
// style and runs the pipeline. Used by the level helpers and Styled().
func (l *Logger) StyledLog(style Style, args ...any) Result {
	if l.suppressed() {
		return Result{}
	}
	msg := l.renderArgs(args)
	if style != nil {
		msg = style(msg)
	}
	return l.emit(msg)
}

// Styled logs with the named style registered via Class(). Unknown names
// yield an error and no emission.
func (l *Logger) Styled(name string, args ...any) (Result, error) {
	style, ok := l.ClassStyle(name)
	if !ok {
		return Result{}, fmt.Errorf("%s: %q", _ERROR_MESSAGE_CLASS_UNKNOWN, name)
	}
	return l.StyledLog(style, args...), nil
}

// suppressed consults the filter over the logger's tags.
func (l *Logger) suppressed() bool {
	l.sync.chngMtx.RLock()
	defer l.sync.chngMtx.RUnlock()
	return l.filter.Suppresses(l.tags)
}

// renderArgs renders every argument and joins them per the auto-space flag.
func (l *Logger) renderArgs(args []any) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = renderValue(arg)
	}
	l.sync.chngMtx.RLock()
	defer l.sync.chngMtx.RUnlock()
	if l.autospace {
		return strings.Join(parts, " ")
	}
	return strings.Join(parts, "")
}

// renderValue converts a single argument to text. Callables are invoked
// with no argument first (a Style renders as its bare code; a composed
// style renders as its empty-text form).
func renderValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case Style:
		return t()
	case func(...string) string:
		return t()
	case func() string:
		return t()
	case string:
		return t
	case []byte:
		return string(t)
	case error:
		return t.Error()
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// emit runs stages 3..11 of the pipeline on the rendered message.
func (l *Logger) emit(msg string) Result {
	l.sync.chngMtx.RLock()
	before := l.before
	after := l.after
	trimlead, trimtrail := l.trimlead, l.trimtrail
	consoleOn, console := l.consoleOn, l.console
	styledConsole := l.consoleTTY || l.forceColor
	l.sync.chngMtx.RUnlock()

	out := msg
	for _, fn := range before {
		out = fn(out)
	}
	out += ANSI_COL_RESET
	for _, fn := range after {
		out = fn(out)
	}
	if trimlead {
		out = strings.TrimLeftFunc(out, unicode.IsSpace)
	}
	if trimtrail {
		out = strings.TrimRightFunc(out, unicode.IsSpace)
	}

	stripped := Strip(out)
	if consoleOn && console != nil {
		line := out
		if !styledConsole {
			line = stripped
		}
		console.Write([]byte(line + "\n"))
	}

	res := Result{Output: out, Stripped: stripped}
	l.dispatch(EVENT_LOG, res)
	l.forwardAsync(stripped)
	return res
}

// dispatch hands the result to every listener of the event, in registration
// order. A panicking listener must not interrupt dispatch to subsequent
// listeners, so each notification runs behind its own recover.
func (l *Logger) dispatch(event string, res Result) {
	l.sync.lstnMtx.RLock()
	listeners := l.listeners[event]
	l.sync.lstnMtx.RUnlock()
	for _, listener := range listeners {
		l.safeNotify(listener, res)
	}
}

func (l *Logger) safeNotify(listener Listener, res Result) {
	defer func() {
		if r := recover(); r != nil {
			l.reportError("panic in log listener" + panicDesc(r))
		}
	}()
	listener(res)
}

// reportError writes a single-line internal error/warning to the error sink.
func (l *Logger) reportError(errormsg string) {
	l.sync.chngMtx.RLock()
	defer l.sync.chngMtx.RUnlock()
	if l.errout != nil {
		l.errout.Write([]byte(errormsg + "\n"))
	}
}

// Timestamp substitutes the tokens YYYY, MM, DD, HH, mm, ss, SSS (in that
// textual order, full string-replace per token) into the given format —
// or the configured one when format is omitted/empty — using the current
// wall-clock time, zero-padded per token width, wrapped in brackets. None
// of these tokens is a substring of another, so the order is safe; preserve
// it if tokens are ever added.
func (l *Logger) Timestamp(format ...string) string {
	l.sync.chngMtx.RLock()
	f := l.timefmt
	now := l.now
	l.sync.chngMtx.RUnlock()
	if len(format) > 0 && format[0] != "" {
		f = format[0]
	}
	t := now()
	for _, sub := range [...][2]string{
		{"YYYY", fmt.Sprintf("%04d", t.Year())},
		{"MM", fmt.Sprintf("%02d", int(t.Month()))},
		{"DD", fmt.Sprintf("%02d", t.Day())},
		{"HH", fmt.Sprintf("%02d", t.Hour())},
		{"mm", fmt.Sprintf("%02d", t.Minute())},
		{"ss", fmt.Sprintf("%02d", t.Second())},
		{"SSS", fmt.Sprintf("%03d", t.Nanosecond()/int(time.Millisecond))},
	} {
		f = strings.ReplaceAll(f, sub[0], sub[1])
	}
	return "[" + f + "]"
}
