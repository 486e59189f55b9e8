package charstream

import (
	"fmt"
	"io"
)

// SinkFunc receives one chunk of rendered output. Chunks arrive in order,
// cover the whole output and never overlap. The chunk is only valid for
// the duration of the call. SinkFunc returns the buffer the engine should
// render the next chunk into.
type SinkFunc func(chunk []byte) []byte

// Engine renders a format string and its values, delivering the output to
// sink in chunks no larger than scratch. It returns the total number of
// bytes rendered.
type Engine interface {
	Render(scratch []byte, format string, args []any, sink SinkFunc) int
}

// FmtEngine renders with the fmt package.
type FmtEngine struct{}

// Render implements [Engine].
func (FmtEngine) Render(scratch []byte, format string, args []any, sink SinkFunc) int {
	cw := chunkWriter{buf: scratch, sink: sink}
	_, _ = fmt.Fprintf(&cw, format, args...)
	return cw.total
}

// chunkWriter splits whatever it is given into scratch-sized chunks and
// hands each one to the sink.
type chunkWriter struct {
	buf   []byte
	sink  SinkFunc
	total int
}

func (w *chunkWriter) Write(p []byte) (int, error) {
	n := len(p)
	for len(p) > 0 {
		if len(w.buf) == 0 {
			return n - len(p), io.ErrShortBuffer
		}
		k := copy(w.buf, p)
		next := w.sink(w.buf[:k])
		w.total += k
		p = p[k:]
		if next != nil {
			w.buf = next
		}
	}
	return n, nil
}
