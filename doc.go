// Package charstream prints lists of primitive values through fixed,
// reusable buffers.
//
// A [Stream] is built once with a [Target], a separator and a terminator.
// Each call classifies its values, synthesizes a printf-style format
// string for them, renders it in bounded chunks and routes every chunk to
// the target:
//
//	log := charstream.New(charstream.ToStream(charstream.Stdout))
//	log.Print(charstream.V(1), charstream.V(2), charstream.V(3)) // "1 2 3\n"
//
// # Values
//
// [V] accepts the closed set of [Primitive] types. Anything else fails to
// compile. Each value maps to a [Specifier]:
//
//   - float32, float64 → %f
//   - bool → %s, rendered as "true" or "false"
//   - [Char] → %c
//   - uint8, uint16, uint32 → %d; uint, uint64, uintptr → long %d
//   - int8, int16, int32 → %d; int, int64 → long %d
//   - string, [Text] → %s
//
// User types that implement fmt.Stringer go through [Str]. Types that
// want to avoid allocating their text can render into a [Ring] slot and
// pass the resulting [Text] to [V].
//
// # Calls
//
//   - [Stream.Print] — configured separator and terminator
//   - [Stream.Write] — explicit separator, no terminator
//   - [Stream.Format] — explicit format string
//   - [Stream.PrintIter], [Stream.PrintChan] — values from a sequence
//
// # Targets
//
// [ToStream] and [ToWriter] deliver each chunk with a single write.
// [ToBuffer] copies chunks into a caller-owned buffer from its start,
// leaving it NUL-terminated after every call. Calls never append to the
// output of a previous call.
//
// # Concurrency
//
// A Stream reuses its scratch buffers on every call. It must not be used
// concurrently or reentrantly.
//
// # Errors
//
// Output is best effort. Problems are still reported:
//
//   - [ErrFormatOverflow] — the synthesized format was truncated
//   - [ErrBufferOverflow] — a buffer target was too small
//   - [ErrShortWrite] — a stream accepted fewer bytes than offered
//   - [ErrUnknownDescriptor] — unknown stream name
//   - [ErrInvalidConfig] — invalid [Config]
package charstream
