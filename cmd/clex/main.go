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

// Command clex strips comments and preprocessor directives from C-family
// source files, and inspects their lexical modes.
//
// Usage:
//
//	clex strip [flags] [file...]   write files (or stdin) without comments to stdout
//	clex modes [flags] [file]      print lexical mode transitions
//	clex check [flags] file...     report line ending and literal problems
//	clex version                   print the version
//
// Settings are read from .clex.toml (see internal/config) and overridden by
// flags.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// errFailed is returned by commands that already reported their errors.
var errFailed = errors.New("one or more files failed")

func newRootCmd() *cobra.Command {
	a := new(app)
	root := &cobra.Command{
		Use:           "clex",
		Short:         "Lexical mode tools for C-family source files",
		Long:          `clex strips comments and directives from C-family source text and reports how each character is classified (code, comment, literal, directive).`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().String("color", "", "colorize output (auto|on|off)")
	root.PersistentFlags().BoolP("verbose", "v", false, "log debug information to stderr")
	root.PersistentFlags().String("config", "", "configuration file (default: "+configFileHint+")")
	root.PersistentFlags().String("encoding", "", "input encoding (utf-8|latin1|cp1252)")

	root.AddCommand(newStripCmd(a))
	root.AddCommand(newModesCmd(a))
	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newVersionCmd(a))
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "clex: %v\n", err)
		}
		os.Exit(1)
	}
}
