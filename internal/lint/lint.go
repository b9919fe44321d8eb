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

// Package lint implements a few source checks that depend on knowing whether
// a character is code, comment or literal. It is a client of the observing
// scanner.
package lint

import (
	"fmt"

	"github.com/db47h/clex"
	"github.com/db47h/clex/internal/report"
	"github.com/db47h/clex/scanner"
	"github.com/db47h/clex/token"
)

// Messages.
const (
	MsgMixedEOL       = "inconsistent line ending, file uses %s"
	MsgNoFinalNewline = "file does not end with a newline"
	MsgNewlineString  = "newline in string literal"
	MsgNewlineChar    = "newline in character literal"
)

type eol int

const (
	eolNone eol = iota
	eolLF
	eolCRLF
)

func (e eol) String() string {
	if e == eolCRLF {
		return "CRLF"
	}
	return "LF"
}

// Options tune the checks.
type Options struct {
	// Strict reports constructs left open at end of input as errors.
	Strict bool
}

// Check scans f and returns the diagnostics found, in source order, except
// for the end of input checks which come last. The only error returned is an
// I/O error from reading f.
func Check(f *token.File, opts Options) ([]report.Diagnostic, error) {
	var (
		diags []report.Diagnostic
		style eol
		mixed bool
		prev  scanner.Transition
		open  = token.NoPos // start of the construct being scanned
		seen  bool
	)
	s := scanner.New(f, scanner.WithDirectives())
	for t := range s.All() {
		seen = true
		if t.From == clex.Normal && t.To != clex.Normal {
			open = t.Pos
		}
		if t.Char == '\n' {
			cur := eolLF
			if prev.Char == '\r' {
				cur = eolCRLF
			}
			switch {
			case style == eolNone:
				style = cur
			case cur != style && !mixed:
				mixed = true
				diags = append(diags, report.Diagnostic{
					Pos:      t.Pos,
					Severity: report.Warning,
					Msg:      fmt.Sprintf(MsgMixedEOL, style),
				})
			}
			switch t.From {
			case clex.String:
				diags = append(diags, report.Diagnostic{Pos: t.Pos, Severity: report.Warning, Msg: MsgNewlineString})
			case clex.Char:
				diags = append(diags, report.Diagnostic{Pos: t.Pos, Severity: report.Warning, Msg: MsgNewlineChar})
			}
		}
		prev = t
	}
	if err := s.Err(); err != nil {
		return diags, err
	}

	if seen && prev.Char != '\n' {
		diags = append(diags, report.Diagnostic{Pos: prev.Pos, Severity: report.Warning, Msg: MsgNoFinalNewline})
	}
	if opts.Strict {
		if err := clex.CheckEOF(s.Mode()); err != nil {
			diags = append(diags, report.Diagnostic{Pos: open, Severity: report.Error, Msg: err.Error()})
		}
	}
	return diags, nil
}
