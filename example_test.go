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

package clex_test

import (
	"fmt"

	"github.com/db47h/clex"
)

func ExampleStep() {
	src := `x = a/b; /* c */ s = "d\"e"; c = '/';`
	m := clex.Normal
	for _, r := range src {
		n := clex.Step(m, r)
		if n != m {
			fmt.Printf("%q: %v -> %v\n", r, m, n)
		}
		m = n
	}

	// Output:
	// '/': NORMAL -> MAYBE_COMMENT
	// 'b': MAYBE_COMMENT -> NORMAL
	// '/': NORMAL -> MAYBE_COMMENT
	// '*': MAYBE_COMMENT -> MULTILINE_COMMENT
	// '*': MULTILINE_COMMENT -> MAYBE_ENDOF_COMMENT
	// '/': MAYBE_ENDOF_COMMENT -> NORMAL
	// '"': NORMAL -> STRING
	// '\\': STRING -> STRING_ESCAPE
	// '"': STRING_ESCAPE -> STRING
	// '"': STRING -> NORMAL
	// '\'': NORMAL -> CHAR
	// '\'': CHAR -> NORMAL
}
