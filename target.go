package charstream

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Descriptor is an OS stream descriptor.
type Descriptor int

// Standard stream descriptors.
const (
	Stdin  Descriptor = 0
	Stdout Descriptor = 1
	Stderr Descriptor = 2
)

var descriptors = []Descriptor{Stdin, Stdout, Stderr}

// String returns the descriptor name.
func (d Descriptor) String() string {
	switch d {
	case Stdin:
		return "stdin"
	case Stdout:
		return "stdout"
	case Stderr:
		return "stderr"
	default:
		return fmt.Sprintf("fd%d", int(d))
	}
}

// File returns the process's file for a standard descriptor and nil for
// any other descriptor.
func (d Descriptor) File() *os.File {
	switch d {
	case Stdin:
		return os.Stdin
	case Stdout:
		return os.Stdout
	case Stderr:
		return os.Stderr
	default:
		return nil
	}
}

// writer returns a writer for d that never closes it.
func (d Descriptor) writer() io.Writer {
	if f := d.File(); f != nil {
		return f
	}
	return fdWriter(d)
}

// ParseDescriptor parses a standard stream name. Matching is case
// insensitive.
func ParseDescriptor(s string) (Descriptor, error) {
	for _, d := range descriptors {
		if strings.EqualFold(d.String(), s) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDescriptor, s)
}

type targetKind uint8

const (
	kindStream targetKind = iota + 1
	kindBuffer
)

// Target is where a [Stream] delivers its output: either a stream, written
// chunk by chunk, or a caller-owned buffer, filled from its start and kept
// NUL-terminated. The kind is fixed by the constructor used.
type Target struct {
	kind targetKind
	name string
	w    io.Writer
	buf  []byte
}

// ToStream targets a stream descriptor. Descriptors other than the
// standard three are written directly and stay owned by the caller.
func ToStream(d Descriptor) Target {
	return Target{kind: kindStream, name: d.String(), w: d.writer()}
}

// ToWriter targets an arbitrary writer. It behaves like a stream target:
// every chunk is one Write call.
func ToWriter(w io.Writer) Target {
	return Target{kind: kindStream, name: fmt.Sprintf("%T", w), w: w}
}

// ToBuffer targets a caller-owned buffer. The last byte is reserved for
// the NUL terminator, so at most len(buf)-1 content bytes fit.
func ToBuffer(buf []byte) Target {
	return Target{kind: kindBuffer, name: "buffer", buf: buf}
}

// IsBuffer reports whether t is a buffer target.
func (t Target) IsBuffer() bool { return t.kind == kindBuffer }

// String describes the target.
func (t Target) String() string {
	if t.kind == 0 {
		return "none"
	}
	return t.name
}

// route delivers one chunk to the target and returns the number of bytes
// committed. Buffer targets stay NUL-terminated after every chunk.
func (s *Stream) route(chunk []byte) int {
	if s.target.kind == kindBuffer {
		dst := s.target.buf
		room := max(len(dst)-1-s.off, 0)
		n := min(len(chunk), room)
		copy(dst[s.off:], chunk[:n])
		s.off += n
		if s.off < len(dst) {
			dst[s.off] = 0
		}
		if n < len(chunk) && s.werr == nil {
			s.werr = fmt.Errorf("%w: %d byte buffer", ErrBufferOverflow, len(dst))
		}
		return n
	}
	if s.werr != nil {
		return 0
	}
	n, err := s.target.w.Write(chunk)
	if n > 0 {
		s.off += n
	}
	switch {
	case err != nil:
		s.werr = fmt.Errorf("write %s: %w", s.target, err)
	case n < len(chunk):
		s.werr = fmt.Errorf("write %s: %w: %d of %d bytes", s.target, ErrShortWrite, n, len(chunk))
	}
	return n
}

// terminate leaves a buffer target NUL-terminated after the last content
// byte. Stream targets get nothing.
func (s *Stream) terminate() {
	if s.target.kind != kindBuffer {
		return
	}
	if s.off < len(s.target.buf) {
		s.target.buf[s.off] = 0
	}
}
