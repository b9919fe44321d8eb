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

package strip_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/db47h/clex/strip"
)

type mockHandler struct{ mock.Mock }

func (m *mockHandler) HandleDirective(d strip.Directive) error {
	args := m.Called(d)
	return args.Error(0)
}

func TestHandler_directives(t *testing.T) {
	input := "#include <stdio.h>\n" +
		"#define MAX(a, b) \\\n  ((a) > (b) ? (a) : (b))\n" +
		"char *s = \"#not a directive\";\n" +
		"/* #nor\n this */\n" +
		"  #  pragma once\r\n" +
		"int x;\n"

	h := new(mockHandler)
	h.On("HandleDirective", strip.Directive{Text: "#include <stdio.h>", Pos: 0, Line: 1}).Return(nil).Once()
	h.On("HandleDirective", strip.Directive{Text: "#define MAX(a, b)   ((a) > (b) ? (a) : (b))", Pos: 19, Line: 2}).Return(nil).Once()
	h.On("HandleDirective", mock.MatchedBy(func(d strip.Directive) bool {
		return d.Text == "#  pragma once" && d.Line == 7
	})).Return(nil).Once()

	var out bytes.Buffer
	_, err := strip.Process(strings.NewReader(input), &out, strip.WithHandler(h))
	require.NoError(t, err)
	h.AssertExpectations(t)

	assert.Equal(t, "\n\nchar *s = \"#not a directive\";\n\n  \nint x;\n", out.String())
}

func TestHandler_error(t *testing.T) {
	errBad := errors.New("bad directive")
	h := new(mockHandler)
	h.On("HandleDirective", mock.Anything).Return(errBad).Once()

	var out bytes.Buffer
	_, err := strip.Process(strings.NewReader("#error\nint x;\n#error again\n"), &out, strip.WithHandler(h))
	require.ErrorIs(t, err, errBad)
	h.AssertNumberOfCalls(t, "HandleDirective", 1)
	assert.Empty(t, out.String(), "output must not be flushed after an error")
}

func TestHandlerFunc(t *testing.T) {
	var got []string
	h := strip.HandlerFunc(func(d strip.Directive) error {
		got = append(got, d.Name())
		return nil
	})
	_, _, err := strip.String("#include <a.h>\n#\n# define X\n#if_x\nx", strip.WithHandler(h))
	require.NoError(t, err)
	assert.Equal(t, []string{"include", "", "define", "if_x"}, got)
}

func TestDirective_Name(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"#include <x.h>", "include"},
		{"#\tdefine X 1", "define"},
		{"#", ""},
		{"#ifdef(X)", "ifdef"},
		{"#endif", "endif"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, strip.Directive{Text: tt.text}.Name(), tt.text)
	}
}
