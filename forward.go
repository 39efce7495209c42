package clr

/*
forward.go

External log forwarding. The stripped (escape-free) copy of every emitted
line is sent to the configured HTTP target as JSON {"message": ...},
fire-and-forget: the caller never waits for the request and never sees its
failure — errors go to the optional callback and, when enabled, to the
error sink.

The transport is an interface so tests can count invocations without a
network; the default implementation uses net/http.
*/

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// Transport performs the forwarding request. Implementations must be safe
// for concurrent use; cancellation and timeouts are entirely theirs to
// impose, the core imposes none.
type Transport interface {
	Send(url, method string, headers map[string]string, body []byte) error
}

// httpTransport is the default Transport over net/http.
type httpTransport struct {
	client *http.Client
}

func (t *httpTransport) Send(url, method string, headers map[string]string, body []byte) error {
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	client := t.client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("forwarding target answered %s", resp.Status)
	}
	return nil
}

// forwardAsync dispatches the stripped line to the forwarding target in a
// goroutine tracked by the wait group. No-op when forwarding is not
// configured.
func (l *Logger) forwardAsync(stripped string) {
	l.sync.chngMtx.RLock()
	fwd := l.forward
	transport := l.transport
	logErrors := l.logFwdErrors
	l.sync.chngMtx.RUnlock()
	if fwd == nil || fwd.URL == "" || transport == nil {
		return
	}

	body, err := json.Marshal(map[string]string{"message": stripped})
	if err != nil {
		// can not happen for a plain string payload, but stay best-effort
		l.reportError("error encoding forwarded log: " + err.Error())
		return
	}
	method := fwd.Method
	if method == "" {
		method = DEFAULT_FORWARD_METHOD
	}
	headers := map[string]string{"Content-Type": "application/json"}
	for k, v := range fwd.Headers {
		headers[k] = v
	}

	l.sync.fwdWait.Add(1)
	go func() {
		defer l.sync.fwdWait.Done()
		if err := transport.Send(fwd.URL, method, headers, body); err != nil {
			if fwd.OnError != nil {
				fwd.OnError(err)
			}
			if logErrors {
				l.reportError("error forwarding log: " + err.Error())
			}
		}
	}()
}

// Wait blocks until all in-flight forwarding requests have finished. Useful
// just before program exit to not lose the last lines.
func (l *Logger) Wait() {
	l.sync.fwdWait.Wait()
}
