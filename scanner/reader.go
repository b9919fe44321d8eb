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

package scanner

import (
	"io"
	"unicode/utf8"

	"github.com/db47h/clex/token"
)

// maxEmptyReads is the number of consecutive empty reads after which the
// reader gives up with io.ErrNoProgress.
const maxEmptyReads = 100

// reader streams runes from a token.File and registers new lines in the file
// as they are read.
//
type reader struct {
	buf   [4 << 10]byte // byte buffer
	f     *token.File
	line  int   // line count
	offs  int   // offset of first byte in buffer
	r, w  int   // read/write indices
	ioErr error // if not nil, IO error @w
}

func (s *reader) init(f *token.File) {
	s.f = f
	s.line = 1
	// sentinel value
	s.buf[0] = utf8.RuneSelf
}

// next returns the next rune and its position. Invalid UTF-8 sequences are
// returned one byte at a time as utf8.RuneError. At the end of input, next
// returns io.EOF or the I/O error that stopped the read.
//
func (s *reader) next() (rune, token.Pos, error) {
	for s.r+utf8.UTFMax > s.w && !utf8.FullRune(s.buf[s.r:s.w]) && s.ioErr == nil {
		s.fill()
	}

	pos := token.Pos(s.offs + s.r)

	// Common case: ASCII
	// Invariant: s.buf[s.w] == utf8.RuneSelf
	if b := s.buf[s.r]; b < utf8.RuneSelf {
		s.r++
		if b == '\n' {
			s.line++
			_ = s.f.AddLine(pos+1, s.line)
		}
		return rune(b), pos, nil
	}

	// EOF
	if s.r == s.w {
		return utf8.RuneError, pos, s.ioErr
	}

	r, w := utf8.DecodeRune(s.buf[s.r:s.w])
	s.r += w
	return r, pos, nil
}

func (s *reader) fill() {
	// slide buffer contents
	if n := s.r; n > 0 {
		copy(s.buf[:], s.buf[n:s.w])
		s.offs += n
		s.w -= n
		s.r = 0
		s.buf[s.w] = utf8.RuneSelf
	}

	for i := 0; i < maxEmptyReads; i++ {
		n, err := s.f.Read(s.buf[s.w : len(s.buf)-1]) // -1 to leave space for sentinel
		s.w += n
		if n > 0 || err != nil {
			s.buf[s.w] = utf8.RuneSelf // sentinel
			if err != nil {
				s.ioErr = err
			}
			return
		}
	}

	s.ioErr = io.ErrNoProgress
}
