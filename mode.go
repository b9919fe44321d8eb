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

import "strconv"

// A Mode is the lexical classification of the current input position. The
// scanner is always in exactly one Mode and the Mode is its entire memory.
//
type Mode uint8

// Lexical modes.
//
const (
	Normal            Mode = iota // plain code
	Directive                     // inside a #-directive line
	DirectiveEscape               // backslash seen inside a directive
	MaybeComment                  // '/' seen in code, not yet known to start a comment
	MultilineComment              // inside /* */
	MaybeEndOfComment             // '*' seen inside a block comment
	EOLComment                    // inside // up to the newline
	String                        // inside "..."
	StringEscape                  // backslash seen inside a string literal
	Char                          // inside '...'
	CharEscape                    // backslash seen inside a character literal

	modeCount
)

var modeNames = [...]string{
	Normal:            "NORMAL",
	Directive:         "DIRECTIVE",
	DirectiveEscape:   "DIRECTIVE_ESCAPE",
	MaybeComment:      "MAYBE_COMMENT",
	MultilineComment:  "MULTILINE_COMMENT",
	MaybeEndOfComment: "MAYBE_ENDOF_COMMENT",
	EOLComment:        "EOL_COMMENT",
	String:            "STRING",
	StringEscape:      "STRING_ESCAPE",
	Char:              "CHAR",
	CharEscape:        "CHAR_ESCAPE",
}

func (m Mode) String() string {
	if m < modeCount {
		return modeNames[m]
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

// Modes returns all valid modes in declaration order.
//
func Modes() []Mode {
	ms := make([]Mode, modeCount)
	for i := range ms {
		ms[i] = Mode(i)
	}
	return ms
}

// ParseMode returns the Mode whose String value is s.
//
func ParseMode(s string) (Mode, bool) {
	for i, n := range modeNames {
		if n == s {
			return Mode(i), true
		}
	}
	return 0, false
}

// IsComment returns true for the modes that are inside a confirmed comment.
//
func (m Mode) IsComment() bool {
	return m == MultilineComment || m == MaybeEndOfComment || m == EOLComment
}

// IsLiteral returns true for string and character literal modes, escapes
// included.
//
func (m Mode) IsLiteral() bool {
	switch m {
	case String, StringEscape, Char, CharEscape:
		return true
	}
	return false
}

// IsDirective returns true for Directive and DirectiveEscape.
//
func (m Mode) IsDirective() bool {
	return m == Directive || m == DirectiveEscape
}

// IsEscape returns true if the next rune will be consumed as escaped.
//
func (m Mode) IsEscape() bool {
	return m == StringEscape || m == CharEscape || m == DirectiveEscape
}

// IsTentative returns true for modes reached on a single ambiguous rune that
// the next rune either confirms or reverts.
//
func (m Mode) IsTentative() bool {
	return m == MaybeComment || m == MaybeEndOfComment
}

// IsCode returns true if the mode classifies its input as program text,
// i.e. neither comment nor tentative comment start. Literals and directives
// are code.
//
func (m Mode) IsCode() bool {
	return !m.IsComment() && m != MaybeComment
}
