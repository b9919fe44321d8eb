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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	stdout string
	stderr string
	err    error
}

// run executes the CLI with a configuration file holding cfg.
func run(t *testing.T, cfg, stdin string, args ...string) result {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".clex.toml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))

	root := newRootCmd()
	var out, errb bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errb)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config", path}, args...))
	err := root.Execute()
	return result{out.String(), errb.String(), err}
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestStrip_stdin(t *testing.T) {
	res := run(t, "", "a/*b*/c\nd // e\n", "strip")
	require.NoError(t, res.err)
	assert.Equal(t, "ac\nd \n", res.stdout)
	assert.Empty(t, res.stderr)
}

func TestStrip_files(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.c": "#include <a.h>\nint a; /* a */\n",
		"b.c": "int b; // b\n",
	})
	res := run(t, "", "", "strip", "-j", "2",
		filepath.Join(dir, "a.c"), filepath.Join(dir, "missing.c"), filepath.Join(dir, "b.c"))
	require.ErrorIs(t, res.err, errFailed)
	assert.Equal(t, "\nint a; \nint b; \n", res.stdout)
	assert.Contains(t, res.stderr, "missing.c")
}

func TestStrip_flags(t *testing.T) {
	dir := writeFiles(t, map[string]string{"a.c": "#define A 1\nint a; /* a */\n"})
	a := filepath.Join(dir, "a.c")

	res := run(t, "", "", "strip", "--keep-comments", a)
	require.NoError(t, res.err)
	assert.Equal(t, "\nint a; /* a */\n", res.stdout)

	res = run(t, "", "", "strip", "--no-directives", a)
	require.NoError(t, res.err)
	assert.Equal(t, "#define A 1\nint a; \n", res.stdout)

	res = run(t, "", "", "strip", "-d", a)
	require.NoError(t, res.err)
	assert.Equal(t, a+":1: #define A 1\n", res.stderr)
}

func TestStrip_config(t *testing.T) {
	res := run(t, "strip_comments = false\n", "x; // y\n", "strip")
	require.NoError(t, res.err)
	assert.Equal(t, "x; // y\n", res.stdout)

	// flags win
	res = run(t, "strip_comments = false\n", "x; // y\n", "strip", "--keep-comments=false")
	require.NoError(t, res.err)
	assert.Equal(t, "x; \n", res.stdout)

	res = run(t, "color = \"purple\"\n", "", "strip")
	assert.ErrorContains(t, res.err, "color")
}

func TestStrip_strict(t *testing.T) {
	res := run(t, "", "a/*b", "strip")
	require.NoError(t, res.err)
	assert.Equal(t, "a", res.stdout)

	res = run(t, "", "a/*b", "strip", "--strict")
	require.ErrorIs(t, res.err, errFailed)
	assert.Equal(t, "a", res.stdout)
	assert.Contains(t, res.stderr, "<stdin>: unterminated block comment at end of input")

	res = run(t, "strict = true\n", "s = \"x", "strip")
	require.ErrorIs(t, res.err, errFailed)
	assert.Contains(t, res.stderr, "unterminated string literal")
}

func TestStrip_encoding(t *testing.T) {
	res := run(t, "", "caf\xe9 /* \xe9t\xe9 */\n", "--encoding", "latin1", "strip")
	require.NoError(t, res.err)
	assert.Equal(t, "café \n", res.stdout)
}

func TestModes(t *testing.T) {
	res := run(t, "", "a/b /*c*/", "modes")
	require.NoError(t, res.err)
	assert.Equal(t, "<stdin>:1:2\tNORMAL -> MAYBE_COMMENT\t'/'\n"+
		"<stdin>:1:3\tMAYBE_COMMENT -> NORMAL\t'b'\n"+
		"<stdin>:1:5\tNORMAL -> MAYBE_COMMENT\t'/'\n"+
		"<stdin>:1:6\tMAYBE_COMMENT -> MULTILINE_COMMENT\t'*'\n"+
		"<stdin>:1:8\tMULTILINE_COMMENT -> MAYBE_ENDOF_COMMENT\t'*'\n"+
		"<stdin>:1:9\tMAYBE_ENDOF_COMMENT -> NORMAL\t'/'\n"+
		"final mode: NORMAL\n", res.stdout)

	res = run(t, "", "#x\n", "modes", "--directives")
	require.NoError(t, res.err)
	assert.Equal(t, "<stdin>:1:1\tNORMAL -> DIRECTIVE\t'#'\n"+
		"<stdin>:1:3\tDIRECTIVE -> NORMAL\t'\\n'\n"+
		"final mode: NORMAL\n", res.stdout)

	res = run(t, "", "'", "modes", "--all")
	require.NoError(t, res.err)
	assert.Equal(t, "<stdin>:1:1\tNORMAL -> CHAR\t'\\''\nfinal mode: CHAR\n", res.stdout)
}

func TestCheck(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"ok.c":  "int a; /* x */\n",
		"bad.c": "a\r\nb\n",
	})
	res := run(t, "", "", "check", filepath.Join(dir, "ok.c"))
	require.NoError(t, res.err)
	assert.Empty(t, res.stderr)

	bad := filepath.Join(dir, "bad.c")
	res = run(t, "", "", "check", bad)
	require.ErrorIs(t, res.err, errFailed)
	assert.Equal(t, bad+":2:2: warning: inconsistent line ending, file uses CRLF\n|b\n| ^\n", res.stderr)

	res = run(t, "", "x = '\n", "check", "--strict")
	require.ErrorIs(t, res.err, errFailed)
	assert.Contains(t, res.stderr, "newline in character literal")
	assert.Contains(t, res.stderr, "error: unterminated character literal")
}

func TestVersion(t *testing.T) {
	res := run(t, "", "", "--color", "off", "version")
	require.NoError(t, res.err)
	assert.Equal(t, "clex "+Version+"\n", res.stdout)
}
