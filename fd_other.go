//go:build !unix

package charstream

import "fmt"

// fdWriter rejects descriptors beyond the standard three on platforms
// without raw descriptor writes.
type fdWriter Descriptor

func (w fdWriter) Write(p []byte) (int, error) {
	return 0, fmt.Errorf("%w: %s", ErrUnknownDescriptor, Descriptor(w))
}
