package clr

/*
default.go

The pre-constructed default logger plus bound convenience functions, for
zero-configuration use:

	clr.Log("hello,", clr.Cyan("world"))
	clr.Error("that went wrong")

Default consults DefaultFilter and writes to os.Stdout/os.Stderr.
*/

// Default is the package-wide logger instance.
var Default = New()

func Log(args ...any) Result { return Default.Log(args...) }
func Logt(parts []string, values ...any) Result { return Default.Logt(parts, values...) }
func Error(args ...any) Result { return Default.Error(args...) }
func Warn(args ...any) Result { return Default.Warn(args...) }
func Info(args ...any) Result { return Default.Info(args...) }
func Debug(args ...any) Result { return Default.Debug(args...) }
func Ok(args ...any) Result { return Default.Ok(args...) }
func Good(args ...any) Result { return Default.Good(args...) }
func Neutral(args ...any) Result { return Default.Neutral(args...) }
func Bad(args ...any) Result { return Default.Bad(args...) }
func Timestamp(format ...string) string { return Default.Timestamp(format...) }
func On(event string, ls ...Listener) *Logger { return Default.On(event, ls...) }
func Off(target Listener) bool { return Default.Off(target) }
func Configure(opts ...Option) *Logger { return Default.Configure(opts...) }
