//go:build unix

package charstream

import "golang.org/x/sys/unix"

// fdWriter writes to a raw descriptor it does not own.
type fdWriter Descriptor

func (w fdWriter) Write(p []byte) (int, error) {
	n, err := unix.Write(int(w), p)
	return max(n, 0), err
}
