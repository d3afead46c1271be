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

import "fmt"

/*EventKind discriminates the three shapes of device notification.*/
type EventKind int

const (
	//BareEvent carries no payload ("Reconfig" on the DVS 304 family).
	BareEvent EventKind = iota
	//ValueEvent carries the new value of a scalar property.
	ValueEvent
	//IndexValueEvent carries an index and the new value at that index.
	IndexValueEvent
)

/*Event is a device-initiated notification. Name and Source are assigned by
the dispatching session, not by the descriptor that matched; Value and Index
are meaningful according to Kind. Events are constructed the instant a line
matches and discarded once the listeners have run.*/
type Event struct {
	Kind   EventKind
	Name   string
	Source *Session
	Value  interface{}
	Index  int
}

/*String conforms to the fmt.Stringer interface*/
func (e Event) String() string {
	switch e.Kind {
	case ValueEvent:
		return fmt.Sprintf("%s = %v", e.Name, e.Value)
	case IndexValueEvent:
		return fmt.Sprintf("%s[%d] = %v", e.Name, e.Index, e.Value)
	default:
		return e.Name
	}
}

/*Listener is a callback invoked for matching events. Returning true stops
further listeners from being called for the same line.*/
type Listener func(Event) bool

/*ListenerID identifies a single listener registration so it can be removed.
Go function values are not comparable, so removal is by handle rather than by
the (name, callback) pair itself.*/
type ListenerID int
