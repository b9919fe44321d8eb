// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package config loads clex settings from a TOML file.
//
// The file is named .clex.toml and is looked up from the working directory
// upwards. All keys are optional:
//
//	strip_comments = true   # remove comments from strip output
//	directives     = true   # recognize '#' directive lines
//	strict         = false  # unterminated constructs at EOF are errors
//	jobs           = 0      # files processed concurrently, 0 = GOMAXPROCS
//	color          = "auto" # auto, on or off
//	encoding       = ""     # input encoding: utf-8 (default), latin1, cp1252
//
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the name of the configuration file.
const FileName = ".clex.toml"

// ErrInvalid is wrapped by all validation errors.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the settings shared by all commands. Pointer fields
// distinguish an explicit false from an absent key.
type Config struct {
	StripComments *bool  `toml:"strip_comments"`
	Directives    *bool  `toml:"directives"`
	Strict        bool   `toml:"strict"`
	Jobs          int    `toml:"jobs"`
	Color         string `toml:"color"`
	Encoding      string `toml:"encoding"`

	// Path is the file the configuration was loaded from, if any.
	Path string `toml:"-"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{Color: "auto"}
}

// Strip reports whether comments are to be stripped. Defaults to true.
func (c Config) Strip() bool {
	return c.StripComments == nil || *c.StripComments
}

// DirectivesEnabled reports whether directives are recognized. Defaults to
// true.
func (c Config) DirectivesEnabled() bool {
	return c.Directives == nil || *c.Directives
}

// Find looks for FileName in startDir and its parents.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes and validates the configuration file at path. Keys not known
// to Config are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if und := meta.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%s: %w: unknown keys %s", path, ErrInvalid, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Discover loads the configuration found from startDir upwards, or returns
// Default if there is none.
func Discover(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch c.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("%w: color must be auto, on or off, got %q", ErrInvalid, c.Color)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("%w: jobs must not be negative, got %d", ErrInvalid, c.Jobs)
	}
	if _, err := ParseEncoding(c.Encoding); err != nil {
		return err
	}
	return nil
}
