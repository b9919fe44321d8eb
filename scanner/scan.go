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

// Package scanner provides an observing scanner: it runs the clex mode
// machine over an input stream and reports every transition, writing
// nothing.
//
// Typical use is asking whether a given character is code, comment or
// literal without re-implementing the mode table:
//
//	f := token.NewFile(name, r)
//	s := scanner.New(f)
//	for s.Scan() {
//		t := s.Transition()
//		if t.Char == '\n' && t.From == clex.Normal {
//			// newline in code
//		}
//	}
//	if err := s.Err(); err != nil {
//		// I/O error
//	}
//
package scanner

import (
	"io"
	"iter"

	"github.com/db47h/clex"
	"github.com/db47h/clex/token"
)

// A Transition describes the effect of a single input rune: the mode before
// and after reading it, the rune itself and its position in the file.
//
type Transition struct {
	From clex.Mode
	To   clex.Mode
	Char rune
	Pos  token.Pos
}

// Changed returns true if the rune changed the mode.
//
func (t Transition) Changed() bool {
	return t.From != t.To
}

// Entered returns true if the transition switched into mode m.
//
func (t Transition) Entered(m clex.Mode) bool {
	return t.To == m && t.From != m
}

// Left returns true if the transition switched out of mode m.
//
func (t Transition) Left(m clex.Mode) bool {
	return t.From == m && t.To != m
}

// A Scanner reports one Transition per input rune. A Scanner is good for a
// single pass over its input: once Scan has returned false, it keeps doing
// so. Scanning a new input requires a new Scanner.
//
type Scanner struct {
	rd    reader
	table clex.Table
	mode  clex.Mode
	cur   Transition
	err   error
	done  bool
}

// New returns a new Scanner reading from f. Lines are registered in f as they
// are read, so that f.Position works for any position already scanned.
//
func New(f *token.File, opts ...Option) *Scanner {
	o := options{table: clex.Base}
	for _, opt := range opts {
		opt(&o)
	}
	if o.table == nil {
		o.table = clex.Base
	}
	s := &Scanner{table: o.table, mode: clex.Normal}
	s.rd.init(f)
	return s
}

// Scan advances the scanner by one rune, which will then be available through
// the Transition method. It returns false when the scan stops, either by
// reaching the end of the input or an I/O error. After Scan returns false, the
// Err method will return any error that occurred during scanning, except that
// if it was io.EOF, Err will return nil.
//
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	r, p, err := s.rd.next()
	if err != nil {
		s.done = true
		if err != io.EOF {
			s.err = err
		}
		return false
	}
	from := s.mode
	s.mode = s.table(from, r)
	s.cur = Transition{From: from, To: s.mode, Char: r, Pos: p}
	return true
}

// Transition returns the most recent transition generated by a call to Scan.
//
func (s *Scanner) Transition() Transition {
	return s.cur
}

// Err returns the first non-EOF error that was encountered by the Scanner.
//
func (s *Scanner) Err() error {
	return s.err
}

// Mode returns the current mode. Once the scan is over, this is the mode the
// input ended in; anything but clex.Normal means that the input ended inside
// some construct (see clex.CheckEOF).
//
func (s *Scanner) Mode() clex.Mode {
	return s.mode
}

// File returns the file being scanned.
//
func (s *Scanner) File() *token.File {
	return s.rd.f
}

// Position returns the line and column of p.
//
func (s *Scanner) Position(p token.Pos) token.Position {
	return s.rd.f.Position(p)
}

// All returns an iterator over the remaining transitions. Like Scan, it can
// only be consumed once. Check Err after the loop.
//
func (s *Scanner) All() iter.Seq[Transition] {
	return func(yield func(Transition) bool) {
		for s.Scan() {
			if !yield(s.cur) {
				return
			}
		}
	}
}
