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
	"context"
	"fmt"
	"io"
	"regexp"
	"time"
)

/*terminator is the SIS line terminator. Reply and notification lines always
end with it; outgoing commands never do - the command's final control
character plays that role.*/
var terminator = []byte("\r\n")

/*Transport is the byte-transport a Session owns. A Transport should be able
to tell others in some human readable string form what it actually is
(fmt.Stringer), should read and write byte slices (io.ReadWriter), and should
be able to Open and Close the device at will. This does mean that once
created, a Transport needs to cache and properly deal with its opening
criteria.

Any error returned must be castable to net.Error*/
type Transport interface {
	fmt.Stringer
	io.ReadWriter
	io.Closer
	Open() error
}

var known = map[*regexp.Regexp]func(context.Context, time.Duration, string) (Transport, error){
	netClientRe: func(ctx context.Context, dur time.Duration, dial string) (Transport, error) {
		return NewNetTransport(ctx, dur, dial)
	},
	serialRe: func(ctx context.Context, dur time.Duration, dial string) (Transport, error) {
		return NewSerialTransport(ctx, dur, dial)
	},
}

/*NewTransport returns a Transport matching the dial string. Known formats:
  tcp://<host:port> - Outgoing sockets of type tcp (either v4 or v6)
  tcp4://<host:port> - Outgoing sockets of type tcp v4
  tcp6://<host:port> - Outgoing sockets of type tcp v6
  serial://<device>:<baud> - Serial connection
  rs232://<device>:<baud> - Serial connection
*/
func NewTransport(ctx context.Context, timeout time.Duration, dial string) (Transport, error) {
	for re, funcptr := range known {
		if re.MatchString(dial) {
			return funcptr(ctx, timeout, dial)
		}
	}
	err := newErr(false, false, fmt.Errorf("no known way to create a Transport from %q", dial))
	return InvalidTransport(err.Error()), err
}
