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

package token

import (
	"bufio"
	"errors"
	"io"
)

// Common errors.
var (
	ErrSeek   = errors.New("wrong file position after seek")
	ErrNoSeek = errors.New("io.Reader does not support Seek")
	ErrLine   = errors.New("invalid line number")
)

// A File represents an input file. It's a wrapper around an io.Reader that
// handles file offset to line/column conversion.
//
// The line table is filled by whoever reads the file, usually a scanner,
// by calling AddLine each time a newline is read. Line 1 at offset 0 is
// added by NewFile.
//
type File struct {
	name string
	io.Reader
	lines []Pos // 0-based line/Pos information
}

// NewFile returns a new File.
//
func NewFile(name string, r io.Reader) *File {
	return &File{
		name:   name,
		Reader: r,
		lines:  []Pos{0},
	}
}

// Name returns the file name.
//
func (f *File) Name() string {
	return f.name
}

// AddLine adds a new line at the given offset.
//
// line is the 1-based line index.
//
// A line already known (pos not past the last known line) is ignored. Adding
// a line out of sequence returns ErrLine.
//
func (f *File) AddLine(pos Pos, line int) error {
	l := len(f.lines)
	if l > 0 && f.lines[l-1] >= pos {
		return nil
	}
	if l+1 != line {
		return ErrLine
	}
	f.lines = append(f.lines, pos)
	return nil
}

// LineCount returns the number of lines known so far.
//
func (f *File) LineCount() int {
	return len(f.lines)
}

// Position returns the 1-based line and column for a given pos. The returned
// column is a byte offset, not a rune offset.
//
func (f *File) Position(pos Pos) Position {
	if !pos.IsValid() {
		return Position{Filename: f.name, Offset: int(pos)}
	}
	i, j := 0, len(f.lines)
	for i < j {
		h := int(uint(i+j) >> 1)
		if !(f.lines[h] > pos) {
			i = h + 1
		} else {
			j = h
		}
	}
	return Position{f.name, int(pos), i, int(pos - f.lines[i-1] + 1)}
}

// LinePos return the file offset of the given line.
//
func (f *File) LinePos(line int) Pos {
	if line < 1 || line > len(f.lines) {
		return NoPos
	}
	return f.lines[line-1]
}

// GetLineBytes returns the contents of the line for position pos, without the
// line terminator. The underlying reader must implement io.Seeker; its current
// offset is restored before returning.
//
func (f *File) GetLineBytes(pos Pos) (l []byte, err error) {
	lp := f.LinePos(f.Position(pos).Line)
	if !lp.IsValid() {
		return nil, ErrLine
	}
	rs, ok := f.Reader.(io.ReadSeeker)
	if !ok {
		return nil, ErrNoSeek
	}
	cur, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, err
	}
	defer func() {
		p, serr := rs.Seek(cur, io.SeekStart)
		if err != nil {
			return
		}
		if serr != nil {
			err = serr
		} else if p != cur {
			err = ErrSeek
		}
	}()
	fp, err := rs.Seek(int64(lp), io.SeekStart)
	if err != nil {
		return nil, err
	}
	if fp != int64(lp) {
		return nil, ErrSeek
	}

	// read the line
	r := bufio.NewReader(rs)
	for {
		buf, pref, rerr := r.ReadLine()
		if rerr != nil {
			if rerr == io.EOF && l != nil {
				break
			}
			if rerr == io.EOF {
				// empty last line
				return []byte{}, nil
			}
			return nil, rerr
		}
		l = append(l, buf...)
		if !pref {
			break
		}
	}

	return l, nil
}
