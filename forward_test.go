package clr

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Forward_Dispatch(t *testing.T) {
	t.Run("body_and_defaults", func(t *testing.T) {
		l, _, _, ft := newTestLogger(WithForwarding(&Forwarding{URL: "http://localhost/logs"}))
		l.Log(Red("styled"), "text")
		l.Wait()
		calls := ft.Calls()
		assert.Len(t, calls, 1)
		assert.Equal(t, "http://localhost/logs", calls[0].url)
		assert.Equal(t, DEFAULT_FORWARD_METHOD, calls[0].method)
		assert.Equal(t, "application/json", calls[0].headers["Content-Type"])

		var payload map[string]string
		assert.NoError(t, json.Unmarshal([]byte(calls[0].body), &payload))
		assert.Equal(t, "styled text", payload["message"], "forwarded copy must be the stripped one")
	})
	t.Run("method_and_header_override", func(t *testing.T) {
		l, _, _, ft := newTestLogger(WithForwarding(&Forwarding{
			URL:    "http://localhost/logs",
			Method: "PUT",
			Headers: map[string]string{
				"Content-Type":  "text/plain",
				"Authorization": "Bearer tkn",
			},
		}))
		l.Log("x")
		l.Wait()
		calls := ft.Calls()
		assert.Len(t, calls, 1)
		assert.Equal(t, "PUT", calls[0].method)
		assert.Equal(t, "text/plain", calls[0].headers["Content-Type"], "caller headers must win over the default")
		assert.Equal(t, "Bearer tkn", calls[0].headers["Authorization"])
	})
	t.Run("disabled_without_target", func(t *testing.T) {
		l, _, _, ft := newTestLogger()
		l.Log("x")
		l.Wait()
		assert.Empty(t, ft.Calls())

		l.Configure(WithForwarding(&Forwarding{URL: ""}))
		l.Log("y")
		l.Wait()
		assert.Empty(t, ft.Calls(), "empty url must disable forwarding")
	})
}

func Test_Forward_Errors(t *testing.T) {
	t.Run("reported_to_error_sink_and_callback", func(t *testing.T) {
		var mtx sync.Mutex
		var seen error
		l, _, ferr, ft := newTestLogger(WithForwarding(&Forwarding{
			URL:     "http://localhost/logs",
			OnError: func(err error) { mtx.Lock(); seen = err; mtx.Unlock() },
		}))
		ft.Err = errors.New("connection refused")
		res := l.Log("x")
		l.Wait()
		assert.Equal(t, "x", res.Stripped, "log call must succeed despite the transport failure")
		mtx.Lock()
		assert.ErrorContains(t, seen, "connection refused")
		mtx.Unlock()
		assert.Contains(t, ferr.String(), "error forwarding log")
	})
	t.Run("error_sink_report_can_be_gated", func(t *testing.T) {
		l, _, ferr, ft := newTestLogger(
			WithForwarding(&Forwarding{URL: "http://localhost/logs"}),
			WithLogForwardErrors(false),
		)
		ft.Err = errors.New("boom")
		l.Log("x")
		l.Wait()
		assert.Empty(t, ferr.String())
	})
}

func Test_Forward_HTTPTransport(t *testing.T) {
	t.Run("posts_json", func(t *testing.T) {
		var gotMethod, gotBody, gotCT string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotCT = r.Header.Get("Content-Type")
			data, _ := io.ReadAll(r.Body)
			gotBody = string(data)
		}))
		defer srv.Close()

		l, _, ferr, _ := newTestLogger(WithTransport(&httpTransport{}), WithForwarding(&Forwarding{URL: srv.URL}))
		l.Log("over the wire")
		l.Wait()
		assert.Equal(t, "POST", gotMethod)
		assert.Equal(t, "application/json", gotCT)
		assert.JSONEq(t, `{"message":"over the wire"}`, gotBody)
		assert.Empty(t, ferr.String())
	})
	t.Run("http_error_status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusForbidden)
		}))
		defer srv.Close()

		l, _, ferr, _ := newTestLogger(WithTransport(&httpTransport{}), WithForwarding(&Forwarding{URL: srv.URL}))
		l.Log("rejected")
		l.Wait()
		assert.Contains(t, ferr.String(), "error forwarding log")
	})
	t.Run("unreachable_target", func(t *testing.T) {
		err := (&httpTransport{}).Send("http://127.0.0.1:1/logs", "POST", nil, []byte("{}"))
		assert.Error(t, err)
	})
}
