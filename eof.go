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

package clex

import (
	"errors"
	"fmt"
)

// ErrUnterminated is the error wrapped by UnterminatedError.
//
var ErrUnterminated = errors.New("unterminated construct at end of input")

// UnterminatedError reports the mode a scan ended in when that mode is not
// Normal.
//
type UnterminatedError struct {
	Mode Mode
}

func (e *UnterminatedError) Error() string {
	return fmt.Sprintf("unterminated %s at end of input", e.Mode.Construct())
}

func (e *UnterminatedError) Unwrap() error {
	return ErrUnterminated
}

// Construct returns a human readable name of the construct being scanned in
// mode m.
//
func (m Mode) Construct() string {
	switch {
	case m.IsComment():
		if m == EOLComment {
			return "line comment"
		}
		return "block comment"
	case m == String || m == StringEscape:
		return "string literal"
	case m == Char || m == CharEscape:
		return "character literal"
	case m.IsDirective():
		return "directive"
	}
	return "code"
}

// CheckEOF reports whether a scan that ended in mode m left a construct open.
// Scanners never fail on malformed input by themselves; callers that want a
// strict behavior call CheckEOF with the final mode.
//
// Normal and MaybeComment (a trailing '/') are fine. A line comment without a
// final newline is also fine since end of input terminates it.
//
func CheckEOF(m Mode) error {
	switch m {
	case Normal, MaybeComment, EOLComment:
		return nil
	}
	return &UnterminatedError{Mode: m}
}
