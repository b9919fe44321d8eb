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

/*
Package clex classifies C-family source text, one character at a time, into
lexical modes: plain code, line comment, block comment, string literal,
character literal, preprocessor directive, and the escape or tentative
states in between.

The point of the classification is that downstream logic never misreads a
"/*", a quote or a '#' that occurs inside a comment or a literal.

Modes and tables

A Mode is the whole memory of the machine. A Table maps the current mode and
an input rune to the next mode:

	m := clex.Normal
	for _, r := range src {
		m = clex.Step(m, r)
	}

Step is the base table. StepDirective layers directive detection on top of
it: a '#' read in Normal enters Directive, and an unescaped newline leaves
it. Both tables are pure functions, they hold no state and can be shared by
any number of concurrent scans.

The machine never looks ahead. A '/' in code only yields the tentative
MaybeComment mode; the next rune confirms a comment ("/*" or "//") or reverts
to Normal. Likewise a '*' in a block comment yields MaybeEndOfComment until a
'/' closes the comment. Escapes consume exactly one rune.

Drivers

Two drivers sit on top of the tables:

The strip sub-package provides a Transducer that copies its input to its
output, removing comments (optionally) and directive lines. Directive lines
are handed to a pluggable Handler.

The scanner sub-package provides an observing Scanner that reports one
Transition per input rune without writing anything, for style checkers and
other tools that need to know whether a given character is code, comment or
literal.

Malformed input

Reaching the end of input in the middle of a comment, literal or directive is
not an error: scans just stop in whatever mode they were in. Drivers expose
that final mode and CheckEOF turns it into an error for callers that want to
be strict.

*/
package clex
