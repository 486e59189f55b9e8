package main

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bjaus/charstream"
	"github.com/mattn/go-runewidth"
)

// parseValue classifies a command line argument: integer, float,
// boolean, single character, or else string. Only spellings that start
// with a digit or a point are floats, so inf and nan stay strings.
func parseValue(s string) charstream.Arg {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return charstream.V(i)
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return charstream.V(u)
	}
	if numeric(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return charstream.V(f)
		}
	}
	switch s {
	case "true":
		return charstream.V(true)
	case "false":
		return charstream.V(false)
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return charstream.V(charstream.Char(r))
	}
	return charstream.V(s)
}

// numeric reports whether s, after an optional sign, starts with a digit
// or a decimal point.
func numeric(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return s != "" && (s[0] == '.' || ('0' <= s[0] && s[0] <= '9'))
}

func parseValues(args []string) []charstream.Arg {
	out := make([]charstream.Arg, len(args))
	for i, s := range args {
		out[i] = parseValue(s)
	}
	return out
}

var escapes = strings.NewReplacer(`\\`, `\`, `\n`, "\n", `\t`, "\t", `\r`, "\r", `\0`, "\x00")

// unescape interprets the backslash escapes a shell passes through
// literally.
func unescape(s string) string { return escapes.Replace(s) }

// underline returns title followed by a dash rule as wide as the title
// is on screen.
func underline(title string) string {
	return title + "\n" + strings.Repeat("-", runewidth.StringWidth(title))
}
