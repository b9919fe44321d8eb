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
	"bufio"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/db47h/clex/scanner"
	"github.com/db47h/clex/token"
)

func newModesCmd(a *app) *cobra.Command {
	var all, directives bool
	cmd := &cobra.Command{
		Use:   "modes [flags] [file]",
		Short: "Print lexical mode transitions",
		Long: `Modes prints one line per mode change: the position of the character
causing it, the previous and new mode, and the character. The final mode is
printed last; anything but NORMAL means the file ends inside a comment,
literal or directive.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) > 0 {
				path = args[0]
			}
			return a.runModes(cmd, path, all, directives)
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "print all characters, not only mode changes")
	cmd.Flags().BoolVar(&directives, "directives", false, "track preprocessor directives")
	return cmd
}

func (a *app) runModes(cmd *cobra.Command, path string, all, directives bool) error {
	name, rc, err := a.open(cmd, path)
	if err != nil {
		return err
	}
	defer rc.Close()

	var opts []scanner.Option
	if directives {
		opts = append(opts, scanner.WithDirectives())
	}
	f := token.NewFile(name, rc)
	s := scanner.New(f, opts...)
	w := bufio.NewWriter(cmd.OutOrStdout())
	for t := range s.All() {
		if !all && !t.Changed() {
			continue
		}
		fmt.Fprintf(w, "%s\t%s -> %s\t%s\n", f.Position(t.Pos), t.From, t.To, strconv.QuoteRune(t.Char))
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	fmt.Fprintf(w, "final mode: %s\n", s.Mode())
	return w.Flush()
}
