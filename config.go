package charstream

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the file form of a stream's construction surface. Only stream
// targets can be configured; buffer targets are built in code.
type Config struct {
	// Target names a standard stream: stdin, stdout or stderr.
	// Default: stdout.
	Target string `yaml:"target"`
	// Separator and Terminator are pointers so that an explicit empty
	// string is kept. Nil means the default.
	Separator  *string `yaml:"separator"`
	Terminator *string `yaml:"terminator"`
	// Zero means the default size.
	BufferSize       int `yaml:"buffer_size"`
	FormatBufferSize int `yaml:"format_buffer_size"`
}

// DefaultConfig returns the configuration [New] uses when given no
// options.
func DefaultConfig() Config {
	sep, trm := DefaultSeparator, DefaultTerminator
	return Config{
		Target:           Stdout.String(),
		Separator:        &sep,
		Terminator:       &trm,
		BufferSize:       DefaultBufferSize,
		FormatBufferSize: DefaultFormatBufferSize,
	}
}

// ParseConfig decodes YAML configuration. Unknown keys are rejected. An
// empty document yields the zero Config.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadConfig reads and decodes the YAML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(data)
}

// Validate checks the target name and buffer sizes.
func (c Config) Validate() error {
	if c.Target != "" {
		if _, err := ParseDescriptor(c.Target); err != nil {
			return fmt.Errorf("%w: target: %s", ErrInvalidConfig, err)
		}
	}
	if c.BufferSize < 0 || (c.BufferSize > 0 && c.BufferSize < MinBufferSize) {
		return fmt.Errorf("%w: buffer_size %d is below %d", ErrInvalidConfig, c.BufferSize, MinBufferSize)
	}
	if c.FormatBufferSize < 0 {
		return fmt.Errorf("%w: format_buffer_size %d is negative", ErrInvalidConfig, c.FormatBufferSize)
	}
	return nil
}

// Descriptor returns the configured target descriptor.
func (c Config) Descriptor() (Descriptor, error) {
	if c.Target == "" {
		return Stdout, nil
	}
	return ParseDescriptor(c.Target)
}

// Options converts the configuration into stream options.
func (c Config) Options() []Option {
	var opts []Option
	if c.Separator != nil {
		opts = append(opts, WithSeparator(*c.Separator))
	}
	if c.Terminator != nil {
		opts = append(opts, WithTerminator(*c.Terminator))
	}
	if c.BufferSize > 0 {
		opts = append(opts, WithBufferSize(c.BufferSize))
	}
	if c.FormatBufferSize > 0 {
		opts = append(opts, WithFormatBufferSize(c.FormatBufferSize))
	}
	return opts
}

// Stream validates c and builds a stream on its target. Extra options are
// applied after the configured ones.
func (c Config) Stream(extra ...Option) (*Stream, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	d, err := c.Descriptor()
	if err != nil {
		return nil, err
	}
	return New(ToStream(d), append(c.Options(), extra...)...), nil
}
