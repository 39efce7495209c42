package clr

import (
	"sync"
)

const testlogstr = "Test log АБВ こんにちは, 世界`'é\"\\\x5A\254и други глупости!"

// FakeWriter collects everything written to it. Used as console/error sink
// in tests.
type FakeWriter struct {
	buffer []byte
}

func (f *FakeWriter) Write(b []byte) (int, error) {
	f.buffer = append(f.buffer, b...)
	return len(b), nil
}
func (f *FakeWriter) String() string { return string(f.buffer) }
func (f *FakeWriter) Clear()         { f.buffer = f.buffer[:0] }

// FakeTransport records every forwarding call instead of touching the
// network. Err (if set) is returned from each Send.
type FakeTransport struct {
	mtx   sync.Mutex
	calls []transportCall
	Err   error
}

type transportCall struct {
	url     string
	method  string
	headers map[string]string
	body    string
}

func (ft *FakeTransport) Send(url, method string, headers map[string]string, body []byte) error {
	ft.mtx.Lock()
	defer ft.mtx.Unlock()
	ft.calls = append(ft.calls, transportCall{url: url, method: method, headers: headers, body: string(body)})
	return ft.Err
}

func (ft *FakeTransport) Calls() []transportCall {
	ft.mtx.Lock()
	defer ft.mtx.Unlock()
	return append([]transportCall{}, ft.calls...)
}

// newTestLogger wires a logger to fake sinks, a dedicated filter and a fake
// transport so tests stay hermetic.
func newTestLogger(opts ...Option) (*Logger, *FakeWriter, *FakeWriter, *FakeTransport) {
	out := &FakeWriter{}
	ferr := &FakeWriter{}
	ft := &FakeTransport{}
	base := []Option{
		WithConsoleSink(out),
		WithErrorSink(ferr),
		WithFilter(NewFilter()),
		WithTransport(ft),
	}
	l := New(append(base, opts...)...)
	return l, out, ferr, ft
}
