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

// Package strip provides a transducer that copies C-family source text while
// removing comments and preprocessor directive lines.
//
// Rules, for each input character:
//
//	code                  copied as is
//	string/char literals  copied as is, never stripped
//	comments              copied only when comments are kept
//	directive lines       never copied, handed to the Handler instead
//
// The '/' that may start a comment is held back until the next character
// tells a comment from a division. The newline ending a line comment or a
// directive is code and is always copied.
//
package strip

import (
	"bytes"

	"golang.org/x/text/transform"

	"github.com/db47h/clex"
	"github.com/db47h/clex/token"
)

// A Transducer holds the state of a single transduction. It implements
// transform.Transformer and is meant to be used with transform.NewReader,
// transform.NewWriter or transform.String. Use Process for the common
// reader to writer case.
//
// A Transducer works on bytes. All characters that drive mode changes are
// ASCII, and no byte of a multi-byte UTF-8 sequence is ASCII, so this is the
// same as working on runes.
//
type Transducer struct {
	options
	table clex.Table
	mode  clex.Mode
	prev  clex.Mode
	offs  token.Pos // offset of the next input byte
	line  int       // current line
	dir   []byte    // directive buffer
	dpos  token.Pos // directive start
	dline int       // directive start line
	eof   bool      // pending '/' flushed at EOF
}

// New returns a new Transducer.
//
func New(opts ...Option) *Transducer {
	t := &Transducer{options: defaultOptions()}
	for _, o := range opts {
		o(&t.options)
	}
	t.table = clex.Base
	if t.directives {
		t.table = clex.Directives
	}
	t.Reset()
	return t
}

// Reset implements transform.Transformer. It resets the transducer to its
// initial state, keeping its options.
//
func (t *Transducer) Reset() {
	t.mode = clex.Normal
	t.prev = clex.Normal
	t.offs = 0
	t.line = 1
	t.dir = t.dir[:0]
	t.dpos = token.NoPos
	t.dline = 0
	t.eof = false
}

// Mode returns the current mode. After the whole input has been transformed,
// this is the mode the input ended in.
//
func (t *Transducer) Mode() clex.Mode {
	return t.mode
}

// Pending returns the text of a directive that has been started but not
// completed, or the zero Directive if there is none. This is only useful
// at the end of input, to inspect an unterminated directive.
//
func (t *Transducer) Pending() (Directive, bool) {
	if !t.mode.IsDirective() {
		return Directive{}, false
	}
	return t.directive(), true
}

func (t *Transducer) directive() Directive {
	return Directive{
		Text: string(bytes.TrimSuffix(t.dir, []byte{'\r'})),
		Pos:  t.dpos,
		Line: t.dline,
	}
}

// Transform implements transform.Transformer.
//
func (t *Transducer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		// one input byte writes at most two bytes ("/" + c)
		if len(dst)-nDst < 2 {
			return nDst, nSrc, transform.ErrShortDst
		}
		c := src[nSrc]
		nSrc++
		var done bool
		nDst, done = t.step(dst, nDst, c)
		if done {
			d := t.directive()
			t.dir = t.dir[:0]
			if err = t.handler.HandleDirective(d); err != nil {
				return nDst, nSrc, err
			}
		}
	}
	if atEOF && !t.eof && t.mode == clex.MaybeComment {
		if len(dst)-nDst < 1 {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = '/'
		nDst++
		t.eof = true
	}
	return nDst, nSrc, nil
}

// step feeds c to the mode machine, writes the resulting output to dst[n:] and
// returns the new length of dst. done is true if c completed a directive.
//
func (t *Transducer) step(dst []byte, n int, c byte) (_ int, done bool) {
	from := t.mode
	to := t.table(from, rune(c))
	t.prev, t.mode = from, to
	p := t.offs
	t.offs++
	if c == '\n' {
		t.line++
	}

	switch {
	case clex.DirectiveDone(from, to, rune(c)):
		// the newline itself is code
		dst[n] = c
		return n + 1, true
	case from == clex.Normal && to == clex.Directive:
		t.dir = append(t.dir[:0], c)
		t.dpos = p
		t.dline = t.line
	case from == clex.DirectiveEscape:
		if c == '\n' {
			// splice: drop the backslash, skip the newline
			t.dir = t.dir[:len(t.dir)-1]
		} else {
			t.dir = append(t.dir, c)
		}
	case from.IsDirective():
		t.dir = append(t.dir, c)
	case from == clex.MaybeComment:
		if to.IsComment() {
			if !t.strip {
				dst[n], dst[n+1] = '/', c
				n += 2
			}
			break
		}
		dst[n], dst[n+1] = '/', c
		n += 2
	case to == clex.MaybeComment:
		// deferred until the next byte
	case from.IsComment():
		if !t.strip || from == clex.EOLComment && to == clex.Normal {
			dst[n] = c
			n++
		}
	default:
		dst[n] = c
		n++
	}
	return n, false
}
