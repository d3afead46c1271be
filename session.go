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
	"io"
	"net"
	"regexp"
	"sync"
	"time"

	"github.com/pkg/errors"
)

/*DefaultRequestTimeout is how long property gets and sets wait for a reply
line unless WithRequestTimeout says otherwise.*/
const DefaultRequestTimeout = 1 * time.Second

/*ErrNoReply wraps property reads that timed out waiting for the device.*/
var ErrNoReply = errors.New("device did not reply")

var errLineRe = regexp.MustCompile(`^E(\d+)$`)

/*Option configures a Session at construction time.*/
type Option func(*Session)

/*WithLogger injects the logger protocol traces are written to.*/
func WithLogger(l Logger) Option { return func(s *Session) { s.log = l } }

/*WithRequestTimeout sets the per-request timeout used by property access.*/
func WithRequestTimeout(d time.Duration) Option { return func(s *Session) { s.timeout = d } }

/*reply is the single-slot message handed from the line-delivery goroutine to
the caller waiting in MakeRequest.*/
type reply struct {
	line string
	err  error
}

type registration struct {
	id   ListenerID
	name string
	fn   Listener
}

/*Session is the stateful SIS protocol engine. It exclusively owns one
Transport and one Vocabulary, runs a background goroutine that reads lines
off the transport, and multiplexes synchronous request/response traffic
against asynchronous notification lines.

At most one request is in flight at any instant; concurrent MakeRequest
callers serialize on an internal mutex. While a request is pending, the next
line the transport produces is treated as its reply no matter what it looks
like - a requester always wins over notification dispatch. This favors
request/response correctness on devices that interleave a reply with a
simultaneous front-panel event, at the cost of occasionally eating such an
event. That trade-off is deliberate.*/
type Session struct {
	tr      Transport
	vocab   Vocabulary
	order   []string
	log     Logger
	timeout time.Duration

	reqmu sync.Mutex //serializes MakeRequest callers

	mu        sync.Mutex //guards pending and listeners
	pending   chan reply
	listeners []registration
	nextID    ListenerID

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

/*NewSession wraps tr in a protocol session speaking vocab and starts the
background line reader. The session owns the transport from here on; Close
tears both down.*/
func NewSession(ctx context.Context, tr Transport, vocab Vocabulary, opts ...Option) *Session {
	nctx, cancel := context.WithCancel(ctx)
	s := &Session{
		tr:      tr,
		vocab:   vocab,
		order:   vocab.Names(),
		log:     NopLogger(),
		timeout: DefaultRequestTimeout,
		ctx:     nctx,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.run()
	return s
}

/*String conforms to the fmt.Stringer interface*/
func (s *Session) String() string {
	return "sis session over " + s.tr.String()
}

/*Vocabulary returns a copy of the session's property table.*/
func (s *Session) Vocabulary() Vocabulary { return s.vocab.Clone() }

/*Close stops the line reader and closes the transport.*/
func (s *Session) Close() error {
	err := s.tr.Close()
	s.cancel()
	<-s.done
	return err
}

/*run is the background line reader: it pulls bytes off the transport, slices
them into terminator-delimited lines, and feeds each to handleLine in arrival
order. Transport errors flagged timeout or temporary are the transport's way
of saying "nothing yet"; anything else ends the session.*/
func (s *Session) run() {
	defer close(s.done)
	buf := make([]byte, 256)
	acc := []byte{}
	for {
		select {
		case <-s.ctx.Done():
			s.failPending(errors.Wrap(s.ctx.Err(), "session closed"))
			return
		default:
		}

		n, err := s.tr.Read(buf)
		if n > 0 {
			acc = append(acc, buf[:n]...)
			for {
				i := bytes.Index(acc, terminator)
				if i < 0 {
					break
				}
				line := string(acc[:i])
				acc = append([]byte{}, acc[i+len(terminator):]...)
				s.handleLine(line)
			}
		}
		if err != nil {
			if ne, ok := err.(net.Error); ok && (ne.Timeout() || ne.Temporary()) {
				continue
			}
			select {
			case <-s.ctx.Done():
			default:
				s.log.Warnf("transport read failed: %v", err)
			}
			s.failPending(errors.Wrap(err, "transport read failed"))
			return
		}
	}
}

/*failPending delivers err to a waiting requester, if any*/
func (s *Session) failPending(err error) {
	s.mu.Lock()
	ch := s.pending
	s.pending = nil
	s.mu.Unlock()
	if ch != nil {
		ch <- reply{err: err}
	}
}

/*handleLine is invoked once per line the transport produces. A pending
request always claims the line first; otherwise the line is offered to
notification dispatch; otherwise it is logged and dropped.*/
func (s *Session) handleLine(line string) {
	s.log.Debugf("<-- %s", line)

	s.mu.Lock()
	ch := s.pending
	s.pending = nil
	s.mu.Unlock()

	if ch != nil {
		if m := errLineRe.FindStringSubmatch(line); m != nil {
			ch <- reply{line: line, err: ErrorFromCode(m[1])}
		} else {
			ch <- reply{line: line}
		}
		return
	}

	if s.dispatchEvent(line) {
		return
	}
	s.log.Debugf("got unexpected line %q", line)
}

/*dispatchEvent offers line to every descriptor carrying a notification
matcher, in sorted name order. The first match builds the event, which is
then run past the listeners in registration order; a listener returning true
short-circuits the rest. Returns true if any descriptor matched, whether or
not a listener fired.*/
func (s *Session) dispatchEvent(line string) bool {
	for _, name := range s.order {
		p := s.vocab[name]
		if p.fmatch == nil {
			continue
		}
		ev := p.fmatch(s, line)
		if ev == nil {
			continue
		}
		ev.Name = name
		ev.Source = s

		s.mu.Lock()
		regs := make([]registration, len(s.listeners))
		copy(regs, s.listeners)
		s.mu.Unlock()

		for _, reg := range regs {
			if reg.name == "*" || reg.name == ev.Name {
				if reg.fn(*ev) {
					break
				}
			}
		}
		return true
	}
	return false
}

/*MakeRequest writes request to the transport - with no terminator appended,
since SIS commands end in their own control character - and blocks until the
next line arrives or timeout elapses. A device error line comes back as a
*SISError; a timeout comes back as an empty line and a nil error, because the
device may still act on a command whose reply was never seen.

Listeners run on the session's reader goroutine and must not call
MakeRequest; doing so would deadlock waiting for a reply that same goroutine
should deliver.*/
func (s *Session) MakeRequest(request string, timeout time.Duration) (string, error) {
	s.reqmu.Lock()
	defer s.reqmu.Unlock()

	select {
	case <-s.ctx.Done():
		return "", errors.Wrap(s.ctx.Err(), "session closed")
	default:
	}

	ch := make(chan reply, 1)
	s.mu.Lock()
	s.pending = ch
	s.mu.Unlock()

	s.log.Debugf("--> %s", request)
	if n, err := io.WriteString(s.tr, request); err != nil || n != len(request) {
		s.mu.Lock()
		if s.pending == ch {
			s.pending = nil
		}
		s.mu.Unlock()
		return "", errors.Wrapf(err, "wrote %d of %d request bytes", n, len(request))
	}

	select {
	case r := <-ch:
		return r.line, r.err
	case <-time.After(timeout):
		s.mu.Lock()
		if s.pending == ch {
			s.pending = nil
		}
		s.mu.Unlock()
		//the reply may have been claimed between the timer firing and the
		//lock being taken; prefer it over reporting nothing
		select {
		case r := <-ch:
			return r.line, r.err
		default:
		}
		return "", nil
	case <-s.ctx.Done():
		s.mu.Lock()
		if s.pending == ch {
			s.pending = nil
		}
		s.mu.Unlock()
		return "", errors.Wrap(s.ctx.Err(), "session closed while awaiting reply")
	}
}

/*AddEventListener registers fn for events named name, or every event if name
is "*". Listeners run in registration order. The returned id removes exactly
this registration.*/
func (s *Session) AddEventListener(name string, fn Listener) ListenerID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.listeners = append(s.listeners, registration{id: s.nextID, name: name, fn: fn})
	return s.nextID
}

/*RemoveEventListener removes a previously added listener.*/
func (s *Session) RemoveEventListener(id ListenerID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, reg := range s.listeners {
		if reg.id == id {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

func (s *Session) property(name string) (*Property, error) {
	p, ok := s.vocab[name]
	if !ok {
		return nil, errors.Errorf("session: no property %q in vocabulary", name)
	}
	return p, nil
}

/*Get reads the named scalar property.*/
func (s *Session) Get(name string) (interface{}, error) {
	p, err := s.property(name)
	if err != nil {
		return nil, err
	}
	if p.fget == nil {
		return nil, errors.Errorf("session: property %q is not readable", name)
	}
	return p.fget(s)
}

/*Set writes the named scalar property.*/
func (s *Session) Set(name string, v interface{}) error {
	p, err := s.property(name)
	if err != nil {
		return err
	}
	if p.fset == nil {
		return errors.Errorf("session: property %q is not writable", name)
	}
	return p.fset(s, v)
}

/*GetIndex reads one element of the named array-style property.*/
func (s *Session) GetIndex(name string, index int) (interface{}, error) {
	p, err := s.property(name)
	if err != nil {
		return nil, err
	}
	if p.fgetIndex == nil {
		return nil, errors.Errorf("session: property %q is not index-readable", name)
	}
	return p.fgetIndex(s, index)
}

/*SetIndex writes one element of the named array-style property.*/
func (s *Session) SetIndex(name string, index int, v interface{}) error {
	p, err := s.property(name)
	if err != nil {
		return err
	}
	if p.fsetIndex == nil {
		return errors.Errorf("session: property %q is not index-writable", name)
	}
	return p.fsetIndex(s, index, v)
}

/*FirmwareVersion retrieves the firmware version via the common "Q" command.*/
func (s *Session) FirmwareVersion() (string, error) {
	return s.MakeRequest("Q", s.timeout)
}

/*PartNumber retrieves the device part number via the common "N" command.*/
func (s *Session) PartNumber() (PartNumber, error) {
	line, err := s.MakeRequest("N", s.timeout)
	return PartNumber(line), err
}
