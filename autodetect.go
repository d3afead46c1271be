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
	"bytes"
	"context"
	"net"
	"time"

	"github.com/pkg/errors"
)

/*Factory builds a device-specific session over tr. Device files register
their factories against the part numbers they serve.*/
type Factory func(ctx context.Context, tr Transport, opts ...Option) *Session

var modelRegistry = map[PartNumber]Factory{}

/*RegisterModel maps a part number to a session factory. Device vocabularies
call this from init; registering the same part number twice is a bug and
panics.*/
func RegisterModel(pn PartNumber, f Factory) {
	if _, dup := modelRegistry[pn]; dup {
		panic("sistrum: duplicate model registration for " + string(pn))
	}
	modelRegistry[pn] = f
}

/*factoryFor resolves a part number to a registered factory, falling back to
the generic base vocabulary for models this package has no table for.*/
func factoryFor(pn PartNumber) Factory {
	if f, ok := modelRegistry[pn]; ok {
		return f
	}
	return NewGenericSession
}

/*NewGenericSession builds a session with the base vocabulary: no
device-specific properties, just the common commands (firmware version, part
number) and raw MakeRequest access.*/
func NewGenericSession(ctx context.Context, tr Transport, opts ...Option) *Session {
	return NewSession(ctx, tr, Vocabulary{}, opts...)
}

/*Connect performs the one-shot part-number handshake and hands tr to a
session for the detected model. It writes the "N" query (terminator-less,
like every SIS command), accumulates raw bytes until the first terminator,
and looks the decoded part number up in the model registry; unknown part
numbers get the generic base vocabulary.

The handshake happens at most once per physical connection; it is not
reentrant, and on any error the transport is left untouched for the caller
to close.*/
func Connect(ctx context.Context, tr Transport, timeout time.Duration, opts ...Option) (*Session, error) {
	if n, err := tr.Write([]byte("N")); err != nil || n != 1 {
		return nil, errors.Wrap(err, "unable to write part-number query")
	}

	deadline := time.Now().Add(timeout)
	buf := make([]byte, 64)
	acc := []byte{}
	for {
		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "part-number handshake interrupted")
		default:
		}
		if time.Now().After(deadline) {
			return nil, newErr(true, true, errors.New("timed out awaiting part number"))
		}

		n, err := tr.Read(buf)
		if n > 0 {
			acc = append(acc, buf[:n]...)
			if i := bytes.Index(acc, terminator); i >= 0 {
				pn := PartNumber(string(acc[:i]))
				return factoryFor(pn)(ctx, tr, opts...), nil
			}
		}
		if err != nil {
			if ne, ok := err.(net.Error); ok && (ne.Timeout() || ne.Temporary()) {
				continue
			}
			return nil, errors.Wrap(err, "part-number handshake failed")
		}
	}
}

/*Dial opens a transport from the dial string and runs the auto-detect
handshake over it, returning a ready session. The timeout bounds both the
connection process and the handshake.*/
func Dial(ctx context.Context, timeout time.Duration, dial string, opts ...Option) (*Session, error) {
	tr, err := NewTransport(ctx, timeout, dial)
	if err != nil {
		return nil, err
	}
	s, err := Connect(ctx, tr, timeout, opts...)
	if err != nil {
		tr.Close()
		return nil, err
	}
	return s, nil
}
