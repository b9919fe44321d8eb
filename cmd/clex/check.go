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
	"bytes"

	"github.com/spf13/cobra"

	"github.com/db47h/clex/internal/lint"
	"github.com/db47h/clex/token"
)

func newCheckCmd(a *app) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "check [flags] [file...]",
		Short: "Check line endings and literals",
		Long: `Check reports inconsistent line endings, missing final newlines and
newlines inside string or character literals. With --strict, comments,
literals or directives left open at end of file are reported as errors.

The exit status is 1 if anything was reported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("strict") {
				strict = a.cfg.Strict
			}
			return a.runCheck(cmd, args, strict)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "report constructs left open at end of file")
	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, args []string, strict bool) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	p := a.printer(cmd)
	failed := false
	for _, path := range args {
		name, b, err := a.readAll(cmd, path)
		if err != nil {
			p.Errorf("%v", err)
			failed = true
			continue
		}
		f := token.NewFile(name, bytes.NewReader(b))
		diags, err := lint.Check(f, lint.Options{Strict: strict})
		if err != nil {
			p.Errorf("%s: %v", name, err)
			failed = true
			continue
		}
		for _, d := range diags {
			p.Print(f, d)
		}
		a.log.Debug("checked", "file", name, "diagnostics", len(diags))
		if len(diags) > 0 {
			failed = true
		}
	}
	if failed {
		return errFailed
	}
	return nil
}
