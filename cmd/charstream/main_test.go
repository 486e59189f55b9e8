package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bjaus/charstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	app
	out, errOut bytes.Buffer
	used        []charstream.Descriptor
}

func newTestApp(tty bool) *testApp {
	ta := &testApp{}
	ta.app = app{
		stdout: &ta.out,
		stderr: &ta.errOut,
		target: func(d charstream.Descriptor) charstream.Target {
			ta.used = append(ta.used, d)
			if d == charstream.Stderr {
				return charstream.ToWriter(&ta.errOut)
			}
			return charstream.ToWriter(&ta.out)
		},
		isTerminal: func(int) bool { return tty },
	}
	return ta
}

func (ta *testApp) run(t *testing.T, args ...string) error {
	t.Helper()
	return ta.command().Run(context.Background(), append([]string{"charstream"}, args...))
}

func TestPrintCommand(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		args []string
		want string
	}{
		"integers":   {args: []string{"print", "1", "2", "3"}, want: "1 2 3\n"},
		"empty":      {args: []string{"print"}, want: "\n"},
		"booleans":   {args: []string{"print", "true", "false"}, want: "true false\n"},
		"mixed":      {args: []string{"print", "x", "2.5", "word"}, want: "x 2.500000 word\n"},
		"separator":  {args: []string{"--separator", ", ", "print", "a1", "b2"}, want: "a1, b2\n"},
		"terminator": {args: []string{"-t", `;\n`, "print", "1"}, want: "1;\n"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ta := newTestApp(false)
			require.NoError(t, ta.run(t, tt.args...))
			assert.Equal(t, tt.want, ta.out.String())
		})
	}
}

func TestWriteCommand(t *testing.T) {
	t.Parallel()
	ta := newTestApp(false)
	require.NoError(t, ta.run(t, "write", "--sep", "___", "1", "2", "3"))
	assert.Equal(t, "1___2___3", ta.out.String())
}

func TestFormatCommand(t *testing.T) {
	t.Parallel()
	ta := newTestApp(false)
	require.NoError(t, ta.run(t, "format", `(%d%d%d)\n`, "1", "2", "3"))
	assert.Equal(t, "(123)\n", ta.out.String())
}

func TestFormatCommandNeedsFormat(t *testing.T) {
	t.Parallel()
	ta := newTestApp(false)
	err := ta.run(t, "format")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage")
}

func TestStderrFlag(t *testing.T) {
	t.Parallel()
	ta := newTestApp(false)
	require.NoError(t, ta.run(t, "--stderr", "print", "oops"))
	assert.Equal(t, []charstream.Descriptor{charstream.Stderr}, ta.used)
	assert.Equal(t, "oops\n", ta.errOut.String())
	assert.Empty(t, ta.out.String())
}

func TestConfigFlag(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "stream.yaml")
	require.NoError(t, os.WriteFile(path, []byte("separator: \"-\"\nterminator: \"!\\n\"\n"), 0o600))
	ta := newTestApp(false)
	require.NoError(t, ta.run(t, "--config", path, "print", "1", "2"))
	assert.Equal(t, "1-2!\n", ta.out.String())
}

func TestConfigFlagInvalid(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "stream.yaml")
	require.NoError(t, os.WriteFile(path, []byte("target: printer\n"), 0o600))
	ta := newTestApp(false)
	err := ta.run(t, "--config", path, "print", "1")
	require.ErrorIs(t, err, charstream.ErrInvalidConfig)
}

func TestLogLevelInvalid(t *testing.T) {
	t.Parallel()
	ta := newTestApp(false)
	err := ta.run(t, "--log-level", "loud", "print", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log level")
}

func TestDemoCommand(t *testing.T) {
	t.Parallel()
	ta := newTestApp(false)
	require.NoError(t, ta.run(t, "demo"))
	out := ta.out.String()
	assert.True(t, strings.HasPrefix(out, "\nStandard types:\n---------------\n"))
	assert.Contains(t, out, "-4300000000 4300000000 true false c 99 c 1.500000 7\n")
	assert.Contains(t, out, "(56, 75) (3, 4)\n")
	assert.Contains(t, out, "1___2___3\n")
	assert.Contains(t, out, "(123)\n1 2 3\n")
	assert.NotContains(t, out, bold)
}

func TestDemoCommandTerminal(t *testing.T) {
	t.Parallel()
	ta := newTestApp(true)
	require.NoError(t, ta.run(t, "demo"))
	assert.Contains(t, ta.out.String(), bold+"Custom types:\n-------------"+reset)
}

func TestParseValue(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  charstream.Specifier
	}{
		"int":         {input: "-42", want: charstream.SpecIntLong},
		"huge uint":   {input: "18446744073709551615", want: charstream.SpecUintLong},
		"float":       {input: "2.5", want: charstream.SpecFloat},
		"bool":        {input: "true", want: charstream.SpecString},
		"char":        {input: "x", want: charstream.SpecChar},
		"digit first": {input: "7", want: charstream.SpecIntLong},
		"string":      {input: "hello", want: charstream.SpecString},
		"signed":      {input: "-.5", want: charstream.SpecFloat},
		"exponent":    {input: "1e3", want: charstream.SpecFloat},
		"nan":         {input: "nan", want: charstream.SpecString},
		"inf":         {input: "inf", want: charstream.SpecString},
		"signed inf":  {input: "-Inf", want: charstream.SpecString},
		"infinity":    {input: "Infinity", want: charstream.SpecString},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, parseValue(tt.input).Spec())
		})
	}
}

func TestPrintCommandNonNumericWords(t *testing.T) {
	t.Parallel()
	ta := newTestApp(false)
	require.NoError(t, ta.run(t, "print", "nan", "inf", "1.5"))
	assert.Equal(t, "nan inf 1.500000\n", ta.out.String())
}

func TestUnderline(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "abc\n---", underline("abc"))
	// Wide characters take two columns each.
	assert.Equal(t, "你好\n----", underline("你好"))
}

func TestUnescape(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a\nb\tc\\", unescape(`a\nb\tc\\`))
}
