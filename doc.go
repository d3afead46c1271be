/*Package sistrum is a client-side driver for the Extron SIS control protocol,
the line-oriented ASCII protocol spoken by Extron's rack-mounted AV switching
and scaling hardware over a serial link (or, on networked units, a raw TCP
socket).

SIS is a half-duplex command/response protocol with a twist: the device will
also emit unsolicited notification lines whenever its front panel is touched
or an input signal changes. A driver therefore has to do two jobs at once -
correlate the single in-flight command with its single reply line, and watch
the same byte stream for notifications that nobody asked for. The Session
type in this package does exactly that, and nothing else owns the transport.

Vocabularies

Different device families share the framing and the E<code> error vocabulary
but speak different command sets. Command sets are declared as data: a
Vocabulary maps property names to Property descriptors, each built by
NewProperty from a Declaration (get template, set template, notification
regexp, value converter, optional index range). Session dispatches gets,
sets, and notification matching through these descriptors, so adding a device
model means writing a table, not a protocol engine.

Vocabularies for the DVS 304 family of video scalers and the MPS 112 media
presentation switchers ship with the package, along with typed wrappers
(DVS304, MPS112) over the generic property access.

Connecting

Devices identify themselves by part number in response to the "N" command.
Connect performs that handshake once and hands the transport to a session
built for the detected model, falling back to a generic session for unknown
part numbers:

  tr, err := sistrum.NewTransport(ctx, time.Second, "serial:///dev/ttyUSB0:9600")
  ...
  s, err := sistrum.Connect(ctx, tr, 2*time.Second)
  ...
  vol, err := s.Get("volume")

Or, knowing the model up front:

  d := sistrum.NewMPS112(ctx, tr)
  err := d.SetVolume(70)

Events

Listeners subscribe by property name (or "*" for everything) and are invoked
in registration order; a listener returning true stops the remaining ones for
that line. Listeners run on the session's reader goroutine and must not issue
requests of their own.

Errors

Device-reported errors arrive as lines of the form "E13" and are translated
to *SISError values carrying the numeric code; see ErrorFromCode. A request
that never gets a reply returns an empty line and a nil error - a timed-out
command is an unknown outcome, not a known failure, since the device may
still act on it.
*/
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
