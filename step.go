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

// A Table is a transition function. Tables are pure: they hold no state and
// are safe for concurrent use by any number of scan sessions.
//
type Table func(m Mode, r rune) Mode

// The two transition tables. Base ignores '#' and is meant for observers
// that only care about comments and literals. Directives layers the
// preprocessor directive sub-machine on top of Base.
//
var (
	Base       Table = Step
	Directives Table = StepDirective
)

// Step returns the mode following m after reading r. It is total: runes with
// no specific transition leave the mode unchanged.
//
// A '/' in Normal only makes the next mode MaybeComment. If the following rune
// neither confirms a block nor a line comment, the scanner returns to Normal
// and that rune is not examined again: in `a/"b` the quote is plain code and
// does not open a string literal.
//
// Directive modes follow the directive sub-machine so that Step stays total,
// but Step itself never enters Directive; use StepDirective for that.
//
func Step(m Mode, r rune) Mode {
	switch m {
	case Normal:
		switch r {
		case '/':
			return MaybeComment
		case '"':
			return String
		case '\'':
			return Char
		}
	case MaybeComment:
		switch r {
		case '*':
			return MultilineComment
		case '/':
			return EOLComment
		}
		return Normal
	case MultilineComment:
		if r == '*' {
			return MaybeEndOfComment
		}
	case MaybeEndOfComment:
		switch r {
		case '/':
			return Normal
		case '*':
			return MaybeEndOfComment
		}
		return MultilineComment
	case EOLComment:
		if r == '\n' {
			return Normal
		}
	case String:
		switch r {
		case '\\':
			return StringEscape
		case '"':
			return Normal
		}
	case StringEscape:
		return String
	case Char:
		switch r {
		case '\\':
			return CharEscape
		case '\'':
			return Normal
		}
	case CharEscape:
		return Char
	case Directive:
		switch r {
		case '\\':
			return DirectiveEscape
		case '\n':
			return Normal
		}
	case DirectiveEscape:
		return Directive
	}
	return m
}

// StepDirective is Step with directive detection: a '#' read in Normal enters
// Directive. Since the check only happens in Normal, a '#' inside a comment or
// literal is never a directive.
//
func StepDirective(m Mode, r rune) Mode {
	if m == Normal && r == '#' {
		return Directive
	}
	return Step(m, r)
}

// DirectiveDone returns true if the transition from -> to on rune r completes
// a directive line.
//
func DirectiveDone(from, to Mode, r rune) bool {
	return from == Directive && to == Normal && r == '\n'
}
