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
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

/*IndexRange is the inclusive index domain of an array-style property.*/
type IndexRange struct {
	Min, Max int
}

/*Contains reports whether i falls within the range.*/
func (r IndexRange) Contains(i int) bool { return i >= r.Min && i <= r.Max }

/*Declaration describes one device attribute: how to ask for it, how to set
it, and how to recognize the device announcing a change to it. A Declaration
is pure data; NewProperty derives runtime behavior from it.

Get/set templates use "{0}" as the placeholder for the wire rendering of the
value and, on indexed properties, "{index}" for the index. Custom function
slots override the generated behavior; supplying both a template and a custom
function for the same slot is a construction-time error.*/
type Declaration struct {
	//Doc is a human description, shown in Vocabulary.String tables.
	Doc string

	//Type converts between wire tokens and API values. A nil Type declares a
	//bare device-initiated event: EventRe is then mandatory and every
	//get/set slot must be empty.
	Type ValueConverter

	//Indices, when non-nil, makes the property array-style: get/set take an
	//index, and the notification carries (index, value) capture groups in
	//that order.
	Indices *IndexRange

	//GetCmd is the command template for reading the value.
	GetCmd string
	//SetCmd is the command template for writing the value.
	SetCmd string
	//EventRe is the notification pattern. Scalar properties extract the
	//value from its single capture group; indexed properties extract index
	//then value from groups one and two.
	EventRe string

	//Custom slots. Scalar properties use Get/Set, indexed ones GetIndex/
	//SetIndex; Match replaces the generated notification matcher entirely.
	Get      func(s *Session) (interface{}, error)
	Set      func(s *Session, v interface{}) error
	GetIndex func(s *Session, index int) (interface{}, error)
	SetIndex func(s *Session, index int, v interface{}) error
	Match    func(s *Session, line string) *Event
}

/*Property is a runtime-dispatchable device attribute, built once by
NewProperty and immutable afterwards. Its name is bound at registration time
by the Vocabulary key it is stored under.*/
type Property struct {
	doc     string
	conv    ValueConverter
	indices *IndexRange

	//retained declaration text, for table rendering only
	getCmd, setCmd, eventRe string

	fget      func(s *Session) (interface{}, error)
	fset      func(s *Session, v interface{}) error
	fgetIndex func(s *Session, index int) (interface{}, error)
	fsetIndex func(s *Session, index int, v interface{}) error
	fmatch    func(s *Session, line string) *Event
}

/*Readable reports whether the property supports get access.*/
func (p *Property) Readable() bool { return p.fget != nil || p.fgetIndex != nil }

/*Writable reports whether the property supports set access.*/
func (p *Property) Writable() bool { return p.fset != nil || p.fsetIndex != nil }

/*Indexed reports whether the property is array-style.*/
func (p *Property) Indexed() bool { return p.indices != nil }

/*renderCmd fills a command template. "{0}" takes the wire rendering of the
value, "{index}" the index.*/
func renderCmd(tmpl, value string, index int) string {
	return strings.NewReplacer("{0}", value, "{index}", strconv.Itoa(index)).Replace(tmpl)
}

/*NewProperty derives get/set/match behavior from a declaration. All contract
violations - conflicting template/custom slots, missing required fields, and
malformed notification patterns - are reported here, at registration time,
never at request time.*/
func NewProperty(d Declaration) (*Property, error) {
	if d.GetCmd != "" && d.Get != nil {
		return nil, errors.New("property: choose only one of GetCmd and Get")
	}
	if d.SetCmd != "" && d.Set != nil && d.Indices == nil {
		return nil, errors.New("property: choose only one of SetCmd and Set")
	}
	if d.EventRe != "" && d.Match != nil {
		return nil, errors.New("property: choose only one of EventRe and Match")
	}
	if d.Indices == nil && (d.GetIndex != nil || d.SetIndex != nil) {
		return nil, errors.New("property: GetIndex/SetIndex require an index range")
	}

	var eventRe *regexp.Regexp
	if d.EventRe != "" {
		var err error
		if eventRe, err = regexp.Compile(d.EventRe); err != nil {
			return nil, errors.Wrapf(err, "property: bad notification pattern %q", d.EventRe)
		}
	}

	p := &Property{
		doc:     d.Doc,
		conv:    d.Type,
		indices: d.Indices,
		getCmd:  d.GetCmd,
		setCmd:  d.SetCmd,
		eventRe: d.EventRe,
		fget:    d.Get,
		fset:    d.Set,
		fmatch:  d.Match,
	}

	if d.Type == nil {
		//bare device-initiated event only
		if d.GetCmd != "" || d.SetCmd != "" || d.Get != nil || d.Set != nil || d.Indices != nil {
			return nil, errors.New("property: get/set must be unspecified for bare events")
		}
		if eventRe == nil && d.Match == nil {
			return nil, errors.New("property: bare events need a notification pattern")
		}
		if p.fmatch == nil {
			p.fmatch = func(_ *Session, line string) *Event {
				if eventRe.MatchString(line) {
					return &Event{Kind: BareEvent}
				}
				return nil
			}
		}
		return p, nil
	}

	conv := d.Type
	if d.Indices != nil {
		indices := *d.Indices
		if d.GetIndex != nil {
			if d.GetCmd != "" {
				return nil, errors.New("property: choose only one of GetCmd and GetIndex")
			}
			p.fgetIndex = d.GetIndex
		} else if d.GetCmd != "" {
			getCmd := d.GetCmd
			p.fgetIndex = func(s *Session, index int) (interface{}, error) {
				if !indices.Contains(index) {
					return nil, errors.Errorf("property: index %d out of range [%d, %d]", index, indices.Min, indices.Max)
				}
				line, err := s.MakeRequest(renderCmd(getCmd, "", index), s.timeout)
				if err != nil {
					return nil, err
				}
				if line == "" {
					return nil, errors.Wrapf(ErrNoReply, "get %q", getCmd)
				}
				return conv.ToAPI(line)
			}
		}
		if d.SetIndex != nil {
			if d.SetCmd != "" {
				return nil, errors.New("property: choose only one of SetCmd and SetIndex")
			}
			p.fsetIndex = d.SetIndex
		} else if d.SetCmd != "" {
			setCmd := d.SetCmd
			p.fsetIndex = func(s *Session, index int, v interface{}) error {
				if !indices.Contains(index) {
					return errors.Errorf("property: index %d out of range [%d, %d]", index, indices.Min, indices.Max)
				}
				raw, err := conv.ToRaw(v)
				if err != nil {
					return err
				}
				_, err = s.MakeRequest(renderCmd(setCmd, raw, index), s.timeout)
				return err
			}
		}
		if p.fmatch == nil && eventRe != nil {
			p.fmatch = func(_ *Session, line string) *Event {
				m := eventRe.FindStringSubmatch(line)
				if m == nil || len(m) < 3 {
					return nil
				}
				index, err := strconv.Atoi(m[1])
				if err != nil {
					return nil
				}
				v, err := conv.ToAPI(m[2])
				if err != nil {
					return nil
				}
				return &Event{Kind: IndexValueEvent, Index: index, Value: v}
			}
		}
		return p, nil
	}

	//scalar accessors
	if p.fget == nil && d.GetCmd != "" {
		getCmd := d.GetCmd
		p.fget = func(s *Session) (interface{}, error) {
			line, err := s.MakeRequest(getCmd, s.timeout)
			if err != nil {
				return nil, err
			}
			if line == "" {
				return nil, errors.Wrapf(ErrNoReply, "get %q", getCmd)
			}
			return conv.ToAPI(line)
		}
	}
	if p.fset == nil && d.SetCmd != "" {
		setCmd := d.SetCmd
		p.fset = func(s *Session, v interface{}) error {
			raw, err := conv.ToRaw(v)
			if err != nil {
				return err
			}
			_, err = s.MakeRequest(renderCmd(setCmd, raw, 0), s.timeout)
			return err
		}
	}
	if p.fmatch == nil && eventRe != nil {
		p.fmatch = func(_ *Session, line string) *Event {
			m := eventRe.FindStringSubmatch(line)
			if m == nil || len(m) < 2 {
				return nil
			}
			v, err := conv.ToAPI(m[1])
			if err != nil {
				return nil
			}
			return &Event{Kind: ValueEvent, Value: v}
		}
	}
	return p, nil
}

/*MustProperty is NewProperty that panics on a bad declaration. Device tables
are static data, so a bad declaration is a bug caught the first time the
package loads.*/
func MustProperty(d Declaration) *Property {
	p, err := NewProperty(d)
	if err != nil {
		panic(err)
	}
	return p
}

/*Vocabulary is the command set of one device family: a map of property name
to descriptor. Descriptors are data and are never mutated after creation, so
vocabularies are safe to share between sessions.*/
type Vocabulary map[string]*Property

/*Names returns the property names in sorted order. Notification dispatch
scans properties in this order, which keeps matching deterministic.*/
func (v Vocabulary) Names() []string {
	names := make([]string, 0, len(v))
	for name := range v {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

/*Contains returns true if the vocabulary contains all of the passed named
properties.*/
func (v Vocabulary) Contains(named ...string) bool {
	if v == nil || len(named) == 0 {
		return false
	}
	for _, name := range named {
		if _, ok := v[name]; !ok {
			return false
		}
	}
	return true
}

/*Clone returns a shallow copy of the Vocabulary. Descriptors are immutable,
so sharing them is fine; the map itself is fresh.*/
func (v Vocabulary) Clone() Vocabulary {
	r := Vocabulary{}
	for name, prop := range v {
		r[name] = prop
	}
	return r
}

/*Merge takes multiple vocabularies and returns a single one. Later
vocabularies win on name collisions.*/
func Merge(vocabs ...Vocabulary) Vocabulary {
	v := Vocabulary{}
	for _, vocab := range vocabs {
		for name, prop := range vocab {
			v[name] = prop
		}
	}
	return v
}

/*sanitize derenders ASCII control sequences to readable equivalents*/
func sanitize(str string) string {
	if str == "" {
		return "-"
	}
	return strings.Replace(strings.Replace(str, "\r", "\\r", -1), "\n", "\\n", -1)
}

/*String implements the Stringer interface, rendering the vocabulary as a
human readable table.*/
func (v Vocabulary) String() string {
	buf := bytes.NewBufferString("")
	tw := tablewriter.NewWriter(buf)
	tw.SetAutoWrapText(false)
	tw.SetHeader([]string{"Name", "Get", "Set", "Event Regex", "Indexed"})

	for _, name := range v.Names() {
		p := v[name]
		indexed := "-"
		if p.indices != nil {
			indexed = fmt.Sprintf("%d..%d", p.indices.Min, p.indices.Max)
		}
		tw.Append([]string{
			name,
			sanitize(p.getCmd),
			sanitize(p.setCmd),
			sanitize(p.eventRe),
			indexed,
		})
	}
	tw.Render()
	return buf.String()
}
