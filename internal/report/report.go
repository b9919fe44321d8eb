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

// Package report prints diagnostics in the form:
//
//	file:line:col: severity: message
//	|source line where the problem occurred
//	|      ^
//
package report

import (
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/fatih/color"
	"golang.org/x/text/width"

	"github.com/db47h/clex/token"
)

// Severity of a diagnostic.
type Severity int

// Severities.
const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// A Diagnostic is a message attached to a source position.
type Diagnostic struct {
	Pos      token.Pos
	Severity Severity
	Msg      string
}

// A Printer writes diagnostics to an io.Writer.
type Printer struct {
	w     io.Writer
	err   *color.Color
	warn  *color.Color
	caret *color.Color
	loc   *color.Color
}

// New returns a new Printer. When useColor is false, no escape sequences are
// written regardless of the terminal.
func New(w io.Writer, useColor bool) *Printer {
	p := &Printer{
		w:     w,
		err:   color.New(color.FgRed, color.Bold),
		warn:  color.New(color.FgYellow, color.Bold),
		caret: color.New(color.FgGreen, color.Bold),
		loc:   color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.caret, p.loc} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Errorf prints a diagnostic that is not attached to a source position, such
// as an I/O error.
func (p *Printer) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s: %s\n", p.err.Sprint("error"), fmt.Sprintf(format, args...))
}

// Print prints d. The source line is shown only if f can read it back (see
// token.File.GetLineBytes).
func (p *Printer) Print(f *token.File, d Diagnostic) {
	pos := f.Position(d.Pos)
	sev := p.err
	if d.Severity == Warning {
		sev = p.warn
	}
	fmt.Fprintf(p.w, "%s: %s: %s\n", p.loc.Sprint(pos.String()), sev.Sprint(d.Severity.String()), d.Msg)
	l, err := f.GetLineBytes(d.Pos)
	if err != nil {
		return
	}
	b := pos.Column - 1
	if b > len(l) {
		b = len(l)
	}
	fmt.Fprintf(p.w, "|%s\n", l)
	fmt.Fprintf(p.w, "|%*s%s\n", Width(l[:b]), "", p.caret.Sprint("^"))
}

// Width computes the width in text cells of a given byte slice, supposing
// rendering with a UTF-8 locale and monospaced font. Tabs count as one cell.
func Width(l []byte) int {
	w := 0
	for i := 0; i < len(l); {
		r, s := utf8.DecodeRune(l[i:])
		i += s
		if r == '\t' {
			w++
			continue
		}
		if !unicode.IsGraphic(r) {
			continue
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			w += 2
		default:
			// EastAsianAmbiguous depends on user locale. 2 if locale is CJK, 1 otherwise.
			w++
		}
	}
	return w
}
