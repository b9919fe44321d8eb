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
	"bufio"
	"io"

	"golang.org/x/text/transform"

	"github.com/db47h/clex"
)

const outBufferSize = 64 << 10

// Process reads in until EOF, writes the transduced text to out and returns
// the mode the input ended in.
//
// Output is buffered and flushed once, at the end of input. The first read,
// write or Handler error aborts processing and is returned; in that case the
// buffered output is not flushed.
//
// Unterminated comments, literals or directives are not errors. Pass the
// returned mode to clex.CheckEOF to treat them as such.
//
func Process(in io.Reader, out io.Writer, opts ...Option) (clex.Mode, error) {
	t := New(opts...)
	r := transform.NewReader(in, t)
	bw := bufio.NewWriterSize(out, outBufferSize)
	buf := make([]byte, 4<<10)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if _, werr := bw.Write(buf[:n]); werr != nil {
				return t.Mode(), werr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return t.Mode(), err
		}
	}
	return t.Mode(), bw.Flush()
}

// String transduces s and returns the result along with the final mode.
//
func String(s string, opts ...Option) (string, clex.Mode, error) {
	t := New(opts...)
	r, _, err := transform.String(t, s)
	return r, t.Mode(), err
}
