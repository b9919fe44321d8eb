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

package scanner_test

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"unicode/utf8"

	"github.com/db47h/clex"
	"github.com/db47h/clex/scanner"
	"github.com/db47h/clex/token"
)

func transitions(s *scanner.Scanner) []string {
	var res []string
	for t := range s.All() {
		if !t.Changed() {
			continue
		}
		res = append(res, s.Position(t.Pos).String()+": "+t.From.String()+" -> "+t.To.String())
	}
	return res
}

func TestScanner(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  []scanner.Option
		want  []string
		final clex.Mode
	}{
		{"block", "a/*b*/\nc", nil, []string{
			"1:2: NORMAL -> MAYBE_COMMENT",
			"1:3: MAYBE_COMMENT -> MULTILINE_COMMENT",
			"1:5: MULTILINE_COMMENT -> MAYBE_ENDOF_COMMENT",
			"1:6: MAYBE_ENDOF_COMMENT -> NORMAL",
		}, clex.Normal},
		{"line", "x // y\nz", nil, []string{
			"1:3: NORMAL -> MAYBE_COMMENT",
			"1:4: MAYBE_COMMENT -> EOL_COMMENT",
			"1:7: EOL_COMMENT -> NORMAL",
		}, clex.Normal},
		{"string", "s = \"a\\\"\";\n'x'", nil, []string{
			"1:5: NORMAL -> STRING",
			"1:7: STRING -> STRING_ESCAPE",
			"1:8: STRING_ESCAPE -> STRING",
			"1:9: STRING -> NORMAL",
			"2:1: NORMAL -> CHAR",
			"2:3: CHAR -> NORMAL",
		}, clex.Normal},
		{"hash_base", "#if X\n", nil, nil, clex.Normal},
		{"hash_directives", "#if X \\\n&& Y\nz", []scanner.Option{scanner.WithDirectives()}, []string{
			"1:1: NORMAL -> DIRECTIVE",
			"1:7: DIRECTIVE -> DIRECTIVE_ESCAPE",
			"1:8: DIRECTIVE_ESCAPE -> DIRECTIVE",
			"2:5: DIRECTIVE -> NORMAL",
		}, clex.Normal},
		{"utf8", "é/*世*/", nil, []string{
			"1:3: NORMAL -> MAYBE_COMMENT",
			"1:4: MAYBE_COMMENT -> MULTILINE_COMMENT",
			"1:8: MULTILINE_COMMENT -> MAYBE_ENDOF_COMMENT",
			"1:9: MAYBE_ENDOF_COMMENT -> NORMAL",
		}, clex.Normal},
		{"unterminated", "a/*x", nil, []string{
			"1:2: NORMAL -> MAYBE_COMMENT",
			"1:3: MAYBE_COMMENT -> MULTILINE_COMMENT",
		}, clex.MultilineComment},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := token.NewFile("", iotest.OneByteReader(strings.NewReader(tt.input)))
			s := scanner.New(f, tt.opts...)
			got := transitions(s)
			if err := s.Err(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d transitions %v, want %d %v", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Got:\n\t%s\nWant:\n\t%s", got[i], tt.want[i])
				}
			}
			if s.Mode() != tt.final {
				t.Errorf("final mode %v, want %v", s.Mode(), tt.final)
			}
		})
	}
}

func TestScanner_once(t *testing.T) {
	s := scanner.New(token.NewFile("", strings.NewReader("ab")))
	n := 0
	for s.Scan() {
		n++
	}
	if n != 2 {
		t.Fatalf("got %d transitions, want 2", n)
	}
	if s.Scan() {
		t.Error("Scan returned true after end of input")
	}
	for range s.All() {
		t.Error("All yielded a transition after end of input")
	}
}

func TestScanner_break(t *testing.T) {
	s := scanner.New(token.NewFile("", strings.NewReader("abc")))
	for tr := range s.All() {
		if tr.Char == 'a' {
			break
		}
	}
	if !s.Scan() || s.Transition().Char != 'b' {
		t.Error("scan must resume after the last yielded rune")
	}
}

func TestScanner_ioError(t *testing.T) {
	errRead := errors.New("read failed")
	r := io.MultiReader(strings.NewReader("/*x"), iotest.ErrReader(errRead))
	s := scanner.New(token.NewFile("", r))
	n := 0
	for s.Scan() {
		n++
	}
	if n != 3 {
		t.Errorf("got %d runes, want 3", n)
	}
	if !errors.Is(s.Err(), errRead) {
		t.Errorf("got error %v, want %v", s.Err(), errRead)
	}
	if s.Mode() != clex.MultilineComment {
		t.Errorf("got mode %v", s.Mode())
	}
}

type emptyReader struct{}

func (emptyReader) Read([]byte) (int, error) { return 0, nil }

func TestScanner_noProgress(t *testing.T) {
	s := scanner.New(token.NewFile("", emptyReader{}))
	if s.Scan() {
		t.Fatal("Scan returned true")
	}
	if s.Err() != io.ErrNoProgress {
		t.Errorf("got %v, want io.ErrNoProgress", s.Err())
	}
}

func TestScanner_invalidUTF8(t *testing.T) {
	s := scanner.New(token.NewFile("", strings.NewReader("a\xffb\x00")))
	var got []rune
	for s.Scan() {
		got = append(got, s.Transition().Char)
	}
	want := []rune{'a', utf8.RuneError, 'b', 0}
	if string(got) != string(want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

// Input larger than the internal buffer, with multi-byte runes straddling
// buffer boundaries.
func TestScanner_large(t *testing.T) {
	line := "x = \"é世\"; /* ü */ // €\n"
	n := 1000
	f := token.NewFile("big.c", strings.NewReader(strings.Repeat(line, n)))
	s := scanner.New(f)
	var runes, nl int
	var last scanner.Transition
	for s.Scan() {
		last = s.Transition()
		runes++
		if last.Char == '\n' && last.Left(clex.EOLComment) {
			nl++
		}
	}
	if err := s.Err(); err != nil {
		t.Fatal(err)
	}
	if want := utf8.RuneCountInString(line) * n; runes != want {
		t.Errorf("got %d runes, want %d", runes, want)
	}
	if nl != n {
		t.Errorf("got %d line comment ends, want %d", nl, n)
	}
	p := s.Position(last.Pos)
	if p.Line != n || p.Column != len(line) || p.Offset != len(line)*n-1 {
		t.Errorf("last position %v (offset %d)", p, p.Offset)
	}
}

func TestTransition(t *testing.T) {
	tr := scanner.Transition{From: clex.Normal, To: clex.String, Char: '"'}
	if !tr.Changed() || !tr.Entered(clex.String) || !tr.Left(clex.Normal) || tr.Left(clex.String) {
		t.Errorf("%+v", tr)
	}
	tr = scanner.Transition{From: clex.String, To: clex.String, Char: 'x'}
	if tr.Changed() || tr.Entered(clex.String) || tr.Left(clex.String) {
		t.Errorf("%+v", tr)
	}
}
