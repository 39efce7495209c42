package clr

/*********************************************************************************
io.Writer interface implementation

The Logger implements io.Writer so it can be used with fmt.Fprintf and other
formatting helpers:

	fmt.Fprintf(logger, "disk low: %d%%", percent)

Each Write is one log call: the payload goes through the full pipeline
(filter, transforms, reset append, console write, listener dispatch,
forwarding). A trailing newline in the payload is dropped first — the
console sink terminates lines itself.
*/

import "strings"

// Write implements io.Writer. It forwards the provided bytes as a single
// log message. Always returns n=len(p) and err==nil: past rendering the
// pipeline is best-effort and never surfaces failures to the caller.
func (l *Logger) Write(p []byte) (n int, err error) {
	if p == nil {
		return 0, nil
	}
	l.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
