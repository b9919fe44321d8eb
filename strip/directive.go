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

package strip

import (
	"strings"

	"github.com/db47h/clex/token"
)

// A Directive is a complete preprocessor directive line, from the '#' up to
// the first unescaped newline.
//
type Directive struct {
	// Text is the logical directive line, starting with '#'. Escaped newlines
	// are spliced out, so a directive continued over several physical lines
	// is delivered as one line. The terminating newline is not included.
	Text string
	Pos  token.Pos // byte offset of the '#'
	Line int       // 1-based line of the '#'
}

// Name returns the directive name, i.e. the first word after the '#', or an
// empty string for a null directive.
//
func (d Directive) Name() string {
	s := strings.TrimLeft(strings.TrimPrefix(d.Text, "#"), " \t")
	i := strings.IndexFunc(s, func(r rune) bool {
		return !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	})
	if i < 0 {
		return s
	}
	return s[:i]
}

// A Handler processes directive lines removed from the output by a
// Transducer. This is the extension point for a real preprocessor.
//
// An error returned by HandleDirective aborts the transduction and is
// returned to the caller as is.
//
type Handler interface {
	HandleDirective(d Directive) error
}

// The HandlerFunc type is an adapter to allow the use of ordinary functions
// as directive handlers.
//
type HandlerFunc func(d Directive) error

// HandleDirective calls f(d).
//
func (f HandlerFunc) HandleDirective(d Directive) error {
	return f(d)
}

// Nop is the default Handler. It ignores all directives.
//
var Nop Handler = HandlerFunc(func(Directive) error { return nil })
