package sistrum

/*
MIT License

Copyright (c) 2019-2022 The sistrum authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

import (
	"fmt"
	"net"
)

/*Error is the transport-level error type. Every error a Transport returns is
castable to net.Error, so callers can interrogate Timeout() and Temporary()
without caring whether the bytes travel over a socket or a serial port.*/
type Error struct {
	timeout   bool
	temporary bool
	err       error
}

var _ net.Error = &Error{}

/*newErr wraps err with explicit timeout/temporary flags*/
func newErr(timeout, temporary bool, err error) *Error {
	return &Error{timeout: timeout, temporary: temporary, err: err}
}

/*Error conforms to the error interface*/
func (e *Error) Error() string {
	if e.err == nil {
		return "unknown transport error"
	}
	return e.err.Error()
}

/*Timeout conforms to net.Error*/
func (e *Error) Timeout() bool { return e.timeout }

/*Temporary conforms to net.Error*/
func (e *Error) Temporary() bool { return e.temporary }

/*Unwrap exposes the wrapped error to errors.Is / errors.As*/
func (e *Error) Unwrap() error { return e.err }

/*IsTimeout returns true if err is a net.Error flagged as a timeout. Passing a
nil error is a programming error and panics.*/
func IsTimeout(err error) bool {
	if err == nil {
		panic("IsTimeout called with a nil error")
	}
	ne, ok := err.(net.Error)
	return ok && ne.Timeout()
}

/*IsTemporary returns true if err is a net.Error flagged as temporary. Passing
a nil error is a programming error and panics.*/
func IsTemporary(err error) bool {
	if err == nil {
		panic("IsTemporary called with a nil error")
	}
	ne, ok := err.(net.Error)
	return ok && ne.Temporary()
}

/*InvalidTransport is a Transport that never works. It is returned alongside
errors so callers that ignore the error still get something that fails loudly
instead of a nil dereference.*/
type InvalidTransport string

var _ Transport = InvalidTransport("")

/*String conforms to fmt.Stringer*/
func (it InvalidTransport) String() string { return fmt.Sprintf("invalid transport: %s", string(it)) }

/*Open conforms to Transport and always fails*/
func (it InvalidTransport) Open() error { return newErr(false, false, fmt.Errorf("%s", string(it))) }

/*Read conforms to io.Reader and always fails*/
func (it InvalidTransport) Read([]byte) (int, error) {
	return 0, newErr(false, false, fmt.Errorf("%s", string(it)))
}

/*Write conforms to io.Writer and always fails*/
func (it InvalidTransport) Write([]byte) (int, error) {
	return 0, newErr(false, false, fmt.Errorf("%s", string(it)))
}

/*Close conforms to io.Closer and always fails*/
func (it InvalidTransport) Close() error { return newErr(false, false, fmt.Errorf("%s", string(it))) }
