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
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/db47h/clex"
	"github.com/db47h/clex/strip"
)

type stripFlags struct {
	keepComments   bool
	strict         bool
	noDirectives   bool
	listDirectives bool
	jobs           int
}

func newStripCmd(a *app) *cobra.Command {
	var fl stripFlags
	cmd := &cobra.Command{
		Use:   "strip [flags] [file...]",
		Short: "Remove comments and directive lines",
		Long: `Strip copies each file (or stdin when no file is given) to stdout, in order,
removing comments and preprocessor directive lines. String and character
literals are never altered.

A file that cannot be read is reported on stderr and does not prevent the
remaining files from being processed; the exit status is then 1.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStrip(cmd, args, fl)
		},
	}
	f := cmd.Flags()
	f.BoolVarP(&fl.keepComments, "keep-comments", "k", false, "keep comments in the output")
	f.BoolVar(&fl.strict, "strict", false, "report comments, literals or directives left open at end of file")
	f.BoolVar(&fl.noDirectives, "no-directives", false, "treat '#' lines as ordinary code")
	f.BoolVarP(&fl.listDirectives, "list-directives", "d", false, "print removed directives to stderr")
	f.IntVarP(&fl.jobs, "jobs", "j", 0, "number of files processed concurrently (0 = GOMAXPROCS)")
	return cmd
}

type stripResult struct {
	name       string
	out        bytes.Buffer
	directives []strip.Directive
	err        error
}

func (a *app) runStrip(cmd *cobra.Command, args []string, fl stripFlags) error {
	flags := cmd.Flags()
	stripComments := a.cfg.Strip()
	if flags.Changed("keep-comments") {
		stripComments = !fl.keepComments
	}
	directives := a.cfg.DirectivesEnabled()
	if flags.Changed("no-directives") {
		directives = !fl.noDirectives
	}
	strict := a.cfg.Strict
	if flags.Changed("strict") {
		strict = fl.strict
	}
	jobs := a.cfg.Jobs
	if flags.Changed("jobs") {
		jobs = fl.jobs
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}

	results := make([]stripResult, len(args))
	var g errgroup.Group
	g.SetLimit(min(jobs, len(args)))
	for i, path := range args {
		g.Go(func() error {
			res := &results[i]
			opts := []strip.Option{strip.StripComments(stripComments), strip.Directives(directives)}
			if fl.listDirectives {
				opts = append(opts, strip.WithHandler(strip.HandlerFunc(func(d strip.Directive) error {
					res.directives = append(res.directives, d)
					return nil
				})))
			}
			a.stripFile(cmd, path, res, strict, opts...)
			// errors are per file and must not cancel the others
			return nil
		})
	}
	_ = g.Wait()

	p := a.printer(cmd)
	failed := false
	for i := range results {
		res := &results[i]
		for _, d := range res.directives {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s:%d: %s\n", res.name, d.Line, d.Text)
		}
		if _, err := cmd.OutOrStdout().Write(res.out.Bytes()); err != nil {
			return err
		}
		if res.err != nil {
			failed = true
			p.Errorf("%v", res.err)
		}
	}
	if failed {
		return errFailed
	}
	return nil
}

func (a *app) stripFile(cmd *cobra.Command, path string, res *stripResult, strict bool, opts ...strip.Option) {
	start := time.Now()
	name, rc, err := a.open(cmd, path)
	res.name = name
	if err != nil {
		res.err = err
		return
	}
	defer rc.Close()

	m, err := strip.Process(rc, &res.out, opts...)
	if err != nil {
		res.err = fmt.Errorf("%s: %w", name, err)
		return
	}
	if strict {
		if err := clex.CheckEOF(m); err != nil {
			res.err = fmt.Errorf("%s: %w", name, err)
		}
	}
	a.log.Debug("stripped", "file", name, "bytes", res.out.Len(), "mode", m.String(), "elapsed", time.Since(start))
}
