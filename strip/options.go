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

type options struct {
	strip      bool
	directives bool
	handler    Handler
}

func defaultOptions() options {
	return options{
		strip:      true,
		directives: true,
		handler:    Nop,
	}
}

// An Option is a configuration option for a new Transducer.
//
type Option func(*options)

// StripComments sets whether comments are removed from the output. The
// default is true.
//
func StripComments(strip bool) Option {
	return func(o *options) {
		o.strip = strip
	}
}

// KeepComments is a shorthand for StripComments(false).
//
func KeepComments() Option {
	return StripComments(false)
}

// Directives sets whether '#' lines are recognized as directives. The default
// is true. When disabled, '#' is ordinary code and nothing is handed to the
// Handler.
//
func Directives(enable bool) Option {
	return func(o *options) {
		o.directives = enable
	}
}

// WithHandler sets the directive handler. A nil handler selects Nop.
//
func WithHandler(h Handler) Option {
	return func(o *options) {
		if h == nil {
			h = Nop
		}
		o.handler = h
	}
}
