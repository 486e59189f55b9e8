package charstream

// synthesize writes one format string for args into buf: a '%' and verb
// per value, sep after every value but the count-th, trm after the
// count-th and nothing after values past count. With no values it writes
// trm alone. Literal '%' in sep and trm is escaped. Writes stop at
// len(buf); the second result reports whether anything was cut off.
func synthesize(buf []byte, args []Arg, count int, sep, trm string) (int, bool) {
	f := formatBuf{buf: buf}
	if len(args) == 0 {
		f.literal(trm)
		return f.at, f.short
	}
	for i, a := range args {
		f.raw("%")
		f.raw(a.spec.Verb())
		switch {
		case i < count-1:
			f.literal(sep)
		case i == count-1:
			f.literal(trm)
		}
	}
	return f.at, f.short
}

// formatBuf is a write cursor over a fixed scratch buffer.
type formatBuf struct {
	buf   []byte
	at    int
	short bool
}

func (f *formatBuf) raw(s string) {
	n := copy(f.buf[f.at:], s)
	f.at += n
	if n < len(s) {
		f.short = true
	}
}

func (f *formatBuf) literal(s string) {
	for i := 0; i < len(s); i++ {
		if s[i] == '%' {
			f.raw("%%")
			continue
		}
		if f.at == len(f.buf) {
			f.short = true
			return
		}
		f.buf[f.at] = s[i]
		f.at++
	}
}
