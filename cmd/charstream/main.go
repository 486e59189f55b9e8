package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/bjaus/charstream"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

var version = "dev"

func main() {
	a := &app{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		target:     charstream.ToStream,
		isTerminal: term.IsTerminal,
	}
	if err := a.command().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// app holds the process surroundings so tests can swap them out.
type app struct {
	stdout     io.Writer
	stderr     io.Writer
	target     func(charstream.Descriptor) charstream.Target
	isTerminal func(fd int) bool
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:      "charstream",
		Usage:     "Print values through a fixed-buffer formatting stream",
		Version:   version,
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML stream configuration file",
			},
			&cli.StringFlag{
				Name:    "separator",
				Aliases: []string{"s"},
				Usage:   `Text between values (escapes like \t are interpreted)`,
			},
			&cli.StringFlag{
				Name:    "terminator",
				Aliases: []string{"t"},
				Usage:   `Text after the last value (escapes like \n are interpreted)`,
			},
			&cli.BoolFlag{
				Name:  "stderr",
				Usage: "Write to stderr instead of stdout",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn or error",
				Value: "warn",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "print",
				Usage:     "Print values with the configured separator and terminator",
				ArgsUsage: "[values...]",
				Action:    a.printAction,
			},
			{
				Name:      "format",
				Usage:     "Print values with an explicit format string",
				ArgsUsage: "<format> [values...]",
				Action:    a.formatAction,
			},
			{
				Name:      "write",
				Usage:     "Print values with a custom separator and no terminator",
				ArgsUsage: "[values...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "sep",
						Usage: "Separator for this call",
						Value: "",
					},
				},
				Action: a.writeAction,
			},
			{
				Name:   "demo",
				Usage:  "Print a tour of supported values and calls",
				Action: a.demoAction,
			},
		},
	}
}

func (a *app) printAction(ctx context.Context, cmd *cli.Command) error {
	s, _, err := a.stream(cmd)
	if err != nil {
		return err
	}
	_, err = s.Print(parseValues(cmd.Args().Slice())...)
	return err
}

func (a *app) formatAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: charstream format <format> [values...]")
	}
	s, _, err := a.stream(cmd)
	if err != nil {
		return err
	}
	_, err = s.Format(unescape(cmd.Args().First()), parseValues(cmd.Args().Tail())...)
	return err
}

func (a *app) writeAction(ctx context.Context, cmd *cli.Command) error {
	s, _, err := a.stream(cmd)
	if err != nil {
		return err
	}
	_, err = s.Write(unescape(cmd.String("sep")), parseValues(cmd.Args().Slice())...)
	return err
}

// stream builds the stream for a command from the config file and the
// global flags, flags taking precedence.
func (a *app) stream(cmd *cli.Command) (*charstream.Stream, charstream.Descriptor, error) {
	cfg := charstream.DefaultConfig()
	if path := cmd.String("config"); path != "" {
		loaded, err := charstream.LoadConfig(path)
		if err != nil {
			return nil, 0, err
		}
		cfg = loaded
	}
	if cmd.IsSet("separator") {
		sep := unescape(cmd.String("separator"))
		cfg.Separator = &sep
	}
	if cmd.IsSet("terminator") {
		trm := unescape(cmd.String("terminator"))
		cfg.Terminator = &trm
	}
	if cmd.Bool("stderr") {
		cfg.Target = charstream.Stderr.String()
	}
	if err := cfg.Validate(); err != nil {
		return nil, 0, err
	}
	d, err := cfg.Descriptor()
	if err != nil {
		return nil, 0, err
	}
	logger, err := a.logger(cmd.String("log-level"))
	if err != nil {
		return nil, 0, err
	}
	opts := append(cfg.Options(), charstream.WithLogger(logger))
	return charstream.New(a.target(d), opts...), d, nil
}

func (a *app) logger(lvl string) (log.Logger, error) {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(a.stderr))
	var allow level.Option
	switch lvl {
	case "debug":
		allow = level.AllowDebug()
	case "info":
		allow = level.AllowInfo()
	case "warn", "":
		allow = level.AllowWarn()
	case "error":
		allow = level.AllowError()
	default:
		return nil, fmt.Errorf("unknown log level %q", lvl)
	}
	return level.NewFilter(logger, allow), nil
}
