package charstream

import "iter"

// PrintIter renders values from an iterator as they arrive, as one call:
// the separator goes between values and the terminator after the last.
// Each value is rendered on its own, so the format buffer only has to hold
// a single specifier.
func (s *Stream) PrintIter(seq iter.Seq[Arg]) (int, error) {
	s.begin()
	var ferr error
	first := true
	emitLiteral := func(text string) {
		format, err := s.synthesize(nil, 0, "", text)
		if ferr == nil {
			ferr = err
		}
		s.emit(format, nil)
	}
	for a := range seq {
		if !first {
			emitLiteral(s.sep)
		}
		first = false
		one := [1]Arg{a}
		format, err := s.synthesize(one[:], 1, "", "")
		if ferr == nil {
			ferr = err
		}
		s.emit(format, one[:])
	}
	emitLiteral(s.trm)
	return s.end(ferr)
}

// PrintChan renders values received from ch until it is closed.
// It is a thin wrapper around [Stream.PrintIter].
func (s *Stream) PrintChan(ch <-chan Arg) (int, error) {
	return s.PrintIter(chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
