/*
Package config reads flip-book configurations from YAML.

A configuration lists the animations of a page:

    precision: 5
    workers: 4
    animations:
      - selector: .walk
        frames: 12
        rate: 0.1
        alternate: false
        iterations: 2
      - selector: .wave
        name: hello
        children: ["#w1", "#w2", "#w3"]

Everything but the selector is optional. Missing values take the defaults of
frames.Defaults. With children present, frames default to their number.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/flipbook"
	"github.com/npillmayer/flipbook/css"
	"github.com/npillmayer/flipbook/frames"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer traces with key 'flipbook.config'.
func tracer() tracing.Trace {
	return tracing.Select("flipbook.config")
}

// Config is a set of flip-books for a page.
type Config struct {
	Precision  int         `yaml:"precision,omitempty"`
	Workers    int         `yaml:"workers,omitempty"`
	Animations []Animation `yaml:"animations"`
}

// Animation configures a single flip-book.
type Animation struct {
	Selector   string             `yaml:"selector"`
	Name       string             `yaml:"name,omitempty"`
	Frames     int                `yaml:"frames,omitempty"`
	Rate       *float64           `yaml:"rate,omitempty"`
	Alternate  *bool              `yaml:"alternate,omitempty"`
	Iterations css.IterationCount `yaml:"iterations,omitempty"`
	Children   []string           `yaml:"children,omitempty"`
}

// Read reads a configuration file.
func Read(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode reads a configuration. Unknown keys are errors.
func Decode(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var c Config
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty configuration")
		}
		return nil, err
	}
	if err := c.check(); err != nil {
		return nil, err
	}
	tracer().Debugf("configuration with %d animations", len(c.Animations))
	return &c, nil
}

func (c *Config) check() error {
	if len(c.Animations) == 0 {
		return errors.New("configuration lists no animations")
	}
	if c.Precision < 0 {
		return fmt.Errorf("precision %d is negative", c.Precision)
	}
	for i, a := range c.Animations {
		if strings.TrimSpace(a.Selector) == "" {
			return fmt.Errorf("animation #%d has no selector", i+1)
		}
	}
	return nil
}

// Options returns the serialization options of c.
func (c *Config) Options() flipbook.Options {
	return flipbook.Options{Precision: c.Precision, Workers: c.Workers}
}

// Build returns the flip-books of c, in configuration order.
func (c *Config) Build() []flipbook.Animation {
	anims := make([]flipbook.Animation, len(c.Animations))
	for i, a := range c.Animations {
		anims[i] = a.Build()
	}
	return anims
}

// Build turns a configuration entry into a flip-book, applying defaults.
func (a Animation) Build() flipbook.Animation {
	n := a.Frames
	if n == 0 {
		n = len(a.Children)
	}
	p := frames.Defaults(n)
	if a.Rate != nil {
		p.Rate = *a.Rate
	}
	if a.Alternate != nil {
		p.Alternate = *a.Alternate
	}
	if a.Iterations.IsSet() {
		p.Iterations = a.Iterations
	}
	b := flipbook.Positional(a.Selector)
	if len(a.Children) > 0 {
		b = flipbook.Explicit(a.Selector, a.Children...)
	}
	return flipbook.Animation{Name: a.Name, Binding: b, Params: p}
}
