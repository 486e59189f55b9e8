package charstream

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Sentinel errors for programmatic error handling.
var (
	ErrFormatOverflow    = errors.New("format buffer overflow")
	ErrBufferOverflow    = errors.New("target buffer overflow")
	ErrShortWrite        = errors.New("short write")
	ErrUnknownDescriptor = errors.New("unknown descriptor")
	ErrInvalidConfig     = errors.New("invalid config")
)

// Buffer sizes.
const (
	DefaultBufferSize       = 512
	DefaultFormatBufferSize = 128
	// MinBufferSize is the smallest render buffer accepted. Smaller
	// requests are raised to it.
	MinBufferSize = 128
)

// Default separator and terminator.
const (
	DefaultSeparator  = " "
	DefaultTerminator = "\n"
)

// Stream renders value lists to a [Target]. All scratch memory is
// allocated by [New] and reused by every call, so a Stream must not be
// used from more than one goroutine at a time, nor from inside one of its
// own calls (for example from a String method of an argument).
type Stream struct {
	target Target
	sep    string
	trm    string
	buf    []byte
	fbuf   []byte
	vals   []any
	engine Engine

	logger  log.Logger
	metrics *Metrics

	// Per call state.
	off      int
	rendered int
	werr     error
	sink     SinkFunc
}

// Option configures a [Stream].
type Option func(*Stream)

// WithSeparator sets the text written between consecutive values.
// Default: a single space.
func WithSeparator(sep string) Option {
	return func(s *Stream) { s.sep = sep }
}

// WithTerminator sets the text written after the last value.
// Default: newline.
func WithTerminator(trm string) Option {
	return func(s *Stream) { s.trm = trm }
}

// WithBufferSize sets the render buffer size, which bounds the chunk size.
// Values below [MinBufferSize] are raised to it.
func WithBufferSize(n int) Option {
	return func(s *Stream) { s.buf = make([]byte, max(n, MinBufferSize)) }
}

// WithFormatBufferSize sets the capacity of the synthesized format string.
func WithFormatBufferSize(n int) Option {
	return func(s *Stream) { s.fbuf = make([]byte, max(n, 0)) }
}

// WithEngine replaces the rendering engine. Default: [FmtEngine].
func WithEngine(e Engine) Option {
	return func(s *Stream) {
		if e != nil {
			s.engine = e
		}
	}
}

// WithLogger sets the logger for truncation and write failures.
// Default: no logging.
func WithLogger(l log.Logger) Option {
	return func(s *Stream) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics records per-call metrics. Default: none.
func WithMetrics(m *Metrics) Option {
	return func(s *Stream) { s.metrics = m }
}

// New returns a Stream writing to target. The zero Target means stdout.
func New(target Target, opts ...Option) *Stream {
	if target.kind == 0 {
		target = ToStream(Stdout)
	}
	s := &Stream{
		target: target,
		sep:    DefaultSeparator,
		trm:    DefaultTerminator,
		engine: FmtEngine{},
		logger: log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.buf == nil {
		s.buf = make([]byte, DefaultBufferSize)
	}
	if s.fbuf == nil {
		s.fbuf = make([]byte, DefaultFormatBufferSize)
	}
	s.sink = s.chunk
	return s
}

// Target returns the stream's target.
func (s *Stream) Target() Target { return s.target }

// Separator returns the configured separator.
func (s *Stream) Separator() string { return s.sep }

// Terminator returns the configured terminator.
func (s *Stream) Terminator() string { return s.trm }

// Print renders args separated by the separator and followed by the
// terminator. With no args only the terminator is written. It returns the
// number of bytes committed to the target.
//
// A format that does not fit the format buffer is rendered truncated and
// reported with [ErrFormatOverflow].
func (s *Stream) Print(args ...Arg) (int, error) {
	format, ferr := s.synthesize(args, len(args), s.sep, s.trm)
	s.begin()
	s.emit(format, args)
	return s.end(ferr)
}

// Format renders args with an explicit fmt format string.
func (s *Stream) Format(format string, args ...Arg) (int, error) {
	s.begin()
	s.emit(format, args)
	return s.end(nil)
}

// Write renders args separated by sep with no terminator.
func (s *Stream) Write(sep string, args ...Arg) (int, error) {
	format, ferr := s.synthesize(args, len(args), sep, "")
	s.begin()
	s.emit(format, args)
	return s.end(ferr)
}

// Bytes returns the content written into a buffer target by the last
// call, without the NUL terminator. It returns nil for stream targets.
func (s *Stream) Bytes() []byte {
	if s.target.kind != kindBuffer {
		return nil
	}
	return s.target.buf[:s.off]
}

// String returns [Stream.Bytes] as a string.
func (s *Stream) String() string { return string(s.Bytes()) }

// Rendered returns the number of bytes the engine produced during the last
// call. It exceeds the committed count when a buffer target overflowed or
// a stream write failed.
func (s *Stream) Rendered() int { return s.rendered }

// synthesize builds the format for args in the format buffer. The
// returned string aliases the buffer and is valid until the next call.
func (s *Stream) synthesize(args []Arg, count int, sep, trm string) (string, error) {
	n, short := synthesize(s.fbuf, args, count, sep, trm)
	var err error
	if short {
		err = fmt.Errorf("%w: %d byte format buffer", ErrFormatOverflow, len(s.fbuf))
		level.Debug(s.logger).Log("msg", "format truncated", "capacity", len(s.fbuf), "values", len(args))
		s.metrics.truncated(truncFormat)
	}
	if n == 0 {
		return "", err
	}
	// The engine does not retain the format, so a view avoids a copy.
	return unsafe.String(&s.fbuf[0], n), err
}

// begin resets the per call state: every call fills the target from its
// start.
func (s *Stream) begin() {
	s.off = 0
	s.rendered = 0
	s.werr = nil
}

func (s *Stream) emit(format string, args []Arg) {
	s.vals = s.vals[:0]
	for _, a := range args {
		s.vals = append(s.vals, a.Value())
	}
	s.rendered += s.engine.Render(s.buf, format, s.vals, s.sink)
	clear(s.vals)
}

func (s *Stream) chunk(p []byte) []byte {
	s.metrics.chunk()
	s.route(p)
	return s.buf
}

func (s *Stream) end(ferr error) (int, error) {
	s.terminate()
	s.metrics.call(s.off)
	if s.werr != nil {
		if errors.Is(s.werr, ErrBufferOverflow) {
			s.metrics.truncated(truncBuffer)
			level.Warn(s.logger).Log("msg", "output truncated", "target", s.target, "committed", s.off)
		} else {
			s.metrics.writeFailed()
			level.Warn(s.logger).Log("msg", "write failed", "target", s.target, "committed", s.off, "err", s.werr)
		}
	}
	return s.off, errors.Join(ferr, s.werr)
}
