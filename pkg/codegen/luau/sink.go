package luau

import "io"

// sink is the shared append-only text destination every component writes
// through. It never reads back from the underlying writer. The first write
// error is recorded and every later write through the same sink becomes a
// no-op, so a deeply nested emitter (expression inside statement inside
// function inside module) never needs to thread error returns through
// every recursive call — Transpile checks sink.err exactly once, at its
// end, and returns that error unchanged; output written before the failure
// stays written (error handling design, SPEC_FULL.md §7).
type sink struct {
	w   io.Writer
	err error
}

func newSink(w io.Writer) *sink {
	return &sink{w: w}
}

func (s *sink) str(text string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, text)
}
