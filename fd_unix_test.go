//go:build unix

package charstream_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/bjaus/charstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamTargetLeavesDescriptorOpen(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "out")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	func() {
		s := charstream.New(charstream.ToStream(charstream.Descriptor(f.Fd())))
		_, err := s.Print(charstream.V(1), charstream.V(2))
		require.NoError(t, err)
	}()
	for range 5 {
		runtime.GC()
	}

	_, err = f.WriteString("after\n")
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1 2\nafter\n", string(data))
}
