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

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/db47h/clex/internal/config"
	"github.com/db47h/clex/internal/report"
)

const (
	configFileHint = config.FileName + " in the current directory or above"
	stdinName      = "<stdin>"
)

// app holds the settings shared by all commands, resolved once before any
// command runs.
type app struct {
	cfg   config.Config
	enc   encoding.Encoding
	log   *slog.Logger
	color bool
}

func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()

	verbose, _ := flags.GetBool("verbose")
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	path, _ := flags.GetString("config")
	var err error
	if path != "" {
		a.cfg, err = config.Load(path)
	} else {
		a.cfg, err = config.Discover(".")
	}
	if err != nil {
		return err
	}
	if a.cfg.Path != "" {
		a.log.Debug("configuration loaded", "path", a.cfg.Path)
	}

	if flags.Changed("color") {
		a.cfg.Color, _ = flags.GetString("color")
	}
	if flags.Changed("encoding") {
		a.cfg.Encoding, _ = flags.GetString("encoding")
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	a.enc, _ = config.ParseEncoding(a.cfg.Encoding)

	switch a.cfg.Color {
	case "on":
		a.color = true
	case "off":
		a.color = false
	default:
		f, ok := cmd.ErrOrStderr().(*os.File)
		a.color = ok && isTerminal(f)
	}
	return nil
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func (a *app) printer(cmd *cobra.Command) *report.Printer {
	return report.New(cmd.ErrOrStderr(), a.color)
}

// open opens the named input file, or stdin for "-". The returned reader
// decodes the configured encoding to UTF-8.
func (a *app) open(cmd *cobra.Command, path string) (string, io.ReadCloser, error) {
	var (
		name = path
		rc   io.ReadCloser
	)
	if path == "-" {
		name = stdinName
		rc = io.NopCloser(cmd.InOrStdin())
	} else {
		f, err := os.Open(path)
		if err != nil {
			return path, nil, err
		}
		rc = f
	}
	if a.enc == nil {
		return name, rc, nil
	}
	return name, decodeCloser{transform.NewReader(rc, a.enc.NewDecoder()), rc}, nil
}

// readAll reads the whole input, decoded.
func (a *app) readAll(cmd *cobra.Command, path string) (string, []byte, error) {
	name, rc, err := a.open(cmd, path)
	if err != nil {
		return name, nil, err
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return name, nil, fmt.Errorf("%s: %w", name, err)
	}
	return name, b, nil
}

type decodeCloser struct {
	io.Reader
	c io.Closer
}

func (d decodeCloser) Close() error {
	return d.c.Close()
}
