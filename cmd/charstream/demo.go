package main

import (
	"context"

	"github.com/bjaus/charstream"
	"github.com/urfave/cli/v3"
)

const bold, reset = "\x1b[1m", "\x1b[0m"

type intPair struct{ a, b int }

func (p intPair) text(r *charstream.Ring) charstream.Text { return r.Sprintf("(%d, %d)", p.a, p.b) }

func (a *app) demoAction(ctx context.Context, cmd *cli.Command) error {
	s, d, err := a.stream(cmd)
	if err != nil {
		return err
	}
	tty := a.isTerminal(int(d))
	pairs := charstream.NewRing(32, 8)
	heading := func(title string) error {
		h := underline(title)
		if tty {
			h = bold + h + reset
		}
		_, err := s.Print(charstream.V(h))
		return err
	}
	steps := []func() error{
		func() error { _, err := s.Print(); return err },

		func() error { return heading("Standard types:") },
		func() error {
			c := charstream.Char('c')
			_, err := s.Print(
				charstream.V(int64(-4300000000)), charstream.V(int64(4300000000)),
				charstream.V(true), charstream.V(false),
				charstream.V(c), charstream.V(int8(c)), charstream.V(charstream.Char(int8(c))),
				charstream.V(1.5), charstream.V(uint16(7)),
			)
			return err
		},
		func() error { _, err := s.Print(); return err },

		func() error { return heading("Custom types:") },
		func() error {
			foo, bar := intPair{56, 75}, intPair{3, 4}
			_, err := s.Print(charstream.V(foo.text(pairs)), charstream.V(bar.text(pairs)))
			return err
		},
		func() error { _, err := s.Print(); return err },

		func() error { return heading("Write function:") },
		func() error {
			if _, err := s.Write("___", charstream.V(1), charstream.V(2), charstream.V(3)); err != nil {
				return err
			}
			_, err := s.Print()
			return err
		},
		func() error { _, err := s.Print(charstream.V(1), charstream.V(2), charstream.V(3)); return err },
		func() error { _, err := s.Print(); return err },

		func() error { return heading("Format function:") },
		func() error {
			_, err := s.Format("(%d%d%d)\n", charstream.V(1), charstream.V(2), charstream.V(3))
			return err
		},
		func() error { _, err := s.Print(charstream.V(1), charstream.V(2), charstream.V(3)); return err },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
