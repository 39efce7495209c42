package clr

/*
levels.go

Convenience level-specific helpers. These are pure prefixing/styling sugar
over Log — same filtering, same pipeline, same dispatch. Error/Warn/Info/
Debug prepend a fixed styled label as a separate argument; Ok/Good, Neutral
and Bad wrap the whole message in a bold color instead.
*/

// Fixed label styles. Stacked codes with a single trailing reset.
var (
	errorLabel   = Stack(Bold, Red)
	warnLabel    = Stack(Bold, Yellow)
	infoLabel    = Stack(Bold, Cyan)
	debugLabel   = Stack(Bold, Gray)
	okStyle      = Stack(Bold, Green)
	neutralStyle = Stack(Bold, White)
	badStyle     = Stack(Bold, Red)
)

// Error logs the arguments behind a bold red "ERROR:" label.
func (l *Logger) Error(args ...any) Result {
	return l.Log(append([]any{errorLabel("ERROR:")}, args...)...)
}

// Warn logs the arguments behind a bold yellow "WARN:" label.
func (l *Logger) Warn(args ...any) Result {
	return l.Log(append([]any{warnLabel("WARN:")}, args...)...)
}

// Info logs the arguments behind a bold cyan "INFO:" label.
func (l *Logger) Info(args ...any) Result {
	return l.Log(append([]any{infoLabel("INFO:")}, args...)...)
}

// Debug logs the arguments behind a bold gray "DEBUG:" label.
func (l *Logger) Debug(args ...any) Result {
	return l.Log(append([]any{debugLabel("DEBUG:")}, args...)...)
}

// Ok logs the whole message in bold green.
func (l *Logger) Ok(args ...any) Result {
	return l.StyledLog(okStyle, args...)
}

// Good is an alias for Ok.
func (l *Logger) Good(args ...any) Result {
	return l.Ok(args...)
}

// Neutral logs the whole message in bold white.
func (l *Logger) Neutral(args ...any) Result {
	return l.StyledLog(neutralStyle, args...)
}

// Bad logs the whole message in bold red.
func (l *Logger) Bad(args ...any) Result {
	return l.StyledLog(badStyle, args...)
}
