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
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

/*
The MPS 112 family are media presentation switchers built from three
four-input A/V switches: one on HD15 connectors for RGB signals, one on
4-pin mini DINs for S-Video, and one on BNCs for composite video. The groups
are numbered 1 through 3.

In single mode the device behaves as one 12-input switch; in separate mode
the three groups switch independently and one group feeds program audio.

See the user manual, Extron MPS112 rev H.
*/

var mps112ExecutiveMode = NewEnumConverter(map[string]interface{}{
	"0": ExecutiveModeUnlocked,
	"1": ExecutiveModeLimited,
	"2": ExecutiveModeComplete,
})

var mps112SwitcherMode = NewEnumConverter(map[string]interface{}{
	"1": SwitcherModeSingle,
	"2": SwitcherModeSeparate,
})

/*MPS112Status is the decoded reply to the MPS 112 information query.*/
type MPS112Status struct {
	//Mode is the switcher mode
	Mode SwitcherMode
	//Input maps each group, 1 through 3, to its selected input
	Input map[int]int
	//AudioGroup is the group feeding program audio
	AudioGroup int
	//AudioInput is the program audio input within that group
	AudioInput int
}

var mps112StatusFormat = regexp.MustCompile(`^Mod(\d) 1G(\d) 2G(\d) 3G(\d) 4G=(\d)G(\d)$`)

func parseMPS112Status(line string) (*MPS112Status, error) {
	m := mps112StatusFormat.FindStringSubmatch(line)
	if m == nil {
		return nil, errors.Errorf("mps112: unable to parse status line %q", line)
	}
	mode, err := mps112SwitcherMode.ToAPI(m[1])
	if err != nil {
		return nil, errors.Wrap(err, "mps112: bad status mode")
	}
	atoi := func(s string) int {
		n, _ := strconv.Atoi(s)
		return n
	}
	return &MPS112Status{
		Mode: mode.(SwitcherMode),
		Input: map[int]int{
			1: atoi(m[2]),
			2: atoi(m[3]),
			3: atoi(m[4]),
		},
		AudioGroup: atoi(m[5]),
		AudioInput: atoi(m[6]),
	}, nil
}

/*separateToSingleInput folds a (group, input) pair into the equivalent
single-mode input number, 1 through 12, with 0 meaning none.*/
func separateToSingleInput(group, index int) int {
	if index == 0 {
		return 0
	}
	return (group-1)*4 + index
}

func mps112Status(s *Session) (*MPS112Status, error) {
	line, err := s.MakeRequest("I", s.timeout)
	if err != nil {
		return nil, err
	}
	if line == "" {
		return nil, errors.Wrap(ErrNoReply, "status query")
	}
	return parseMPS112Status(line)
}

/*MPS112Vocabulary is the property table shared by the MPS 112 and MPS 112CS.

The input property is a hybrid: scalar access speaks the single-mode
numbering, 1 through 12, while indexed access addresses one group at a time.
A scalar read derives its answer from the program audio routing in the
status reply; in single mode that always matches the selected input, and in
separate mode it is the most useful single number available.*/
var MPS112Vocabulary = Vocabulary{
	"input": MustProperty(Declaration{
		Doc:     "input selection; scalar in single mode, per group when indexed",
		Type:    IntConverter{},
		Indices: &IndexRange{Min: 1, Max: 3},
		SetCmd:  "{index}*{0}!",
		EventRe: `^(\d+)\*(\d+)$`,
		Get: func(s *Session) (interface{}, error) {
			st, err := mps112Status(s)
			if err != nil {
				return nil, err
			}
			return separateToSingleInput(st.AudioGroup, st.AudioInput), nil
		},
		Set: func(s *Session, v interface{}) error {
			n, ok := v.(int)
			if !ok {
				return errors.Errorf("mps112: expected int input, got %T", v)
			}
			_, err := s.MakeRequest(fmt.Sprintf("%d!", n), s.timeout)
			return err
		},
		GetIndex: func(s *Session, group int) (interface{}, error) {
			if group < 1 || group > 3 {
				return nil, errors.Errorf("mps112: group %d out of range [1, 3]", group)
			}
			st, err := mps112Status(s)
			if err != nil {
				return nil, err
			}
			return st.Input[group], nil
		},
	}),
	"volume": MustProperty(Declaration{
		Doc:     "program audio volume, 0 to 100",
		Type:    IntConverter{},
		GetCmd:  "V",
		SetCmd:  "{0}V",
		EventRe: `^Vol(\d+)$`,
	}),
	"mute": MustProperty(Declaration{
		Doc:     "program audio output mute; does not mute the microphone",
		Type:    IntConverter{},
		GetCmd:  "Z",
		SetCmd:  "{0}Z",
		EventRe: `^Amt(\d+)$`,
	}),
	"mic_volume": MustProperty(Declaration{
		Doc:     "overall mic gain or attenuation, -66 to 12",
		Type:    IntConverter{},
		GetCmd:  "16G",
		EventRe: `^Aud([+\-]\d+)$`,
		//gain and attenuation are separate commands on the wire
		Set: func(s *Session, v interface{}) error {
			n, ok := v.(int)
			if !ok {
				return errors.Errorf("mps112: expected int mic volume, got %T", v)
			}
			var cmd string
			if n >= 0 {
				cmd = fmt.Sprintf("16*%dG", n)
			} else {
				cmd = fmt.Sprintf("16*%dg", -n)
			}
			_, err := s.MakeRequest(cmd, s.timeout)
			return err
		},
	}),
	"mic_mute": MustProperty(Declaration{
		Doc:     "microphone mute",
		Type:    BoolConverter{},
		GetCmd:  "M",
		SetCmd:  "{0}M",
		EventRe: `^Mix(\d+)$`,
	}),
	"executive_mode": MustProperty(Declaration{
		Doc:     "front panel lock; limited locks the mic controls, complete locks everything",
		Type:    mps112ExecutiveMode,
		GetCmd:  "X",
		SetCmd:  "{0}X",
		EventRe: `^Exe(\d+)$`,
	}),
	"switcher_mode": MustProperty(Declaration{
		Doc:     "single 12-input switch, or three separate groups",
		Type:    mps112SwitcherMode,
		GetCmd:  "1#",
		SetCmd:  "{0}*1#",
		EventRe: `^Mod(\d+)$`,
	}),
	"mic_threshold": MustProperty(Declaration{
		Doc:     "mic talk-over threshold, 0 to 15, default 8",
		Type:    IntConverter{},
		GetCmd:  "2#",
		SetCmd:  "{0}*2#",
		EventRe: `^Thr(\d+)$`,
	}),
}

/*MPS112 wraps a Session with typed accessors for the MPS 112 property
table.*/
type MPS112 struct {
	*Session
}

/*NewMPS112 builds an MPS 112 session over tr.*/
func NewMPS112(ctx context.Context, tr Transport, opts ...Option) *Session {
	return NewSession(ctx, tr, MPS112Vocabulary, opts...)
}

/*AsMPS112 wraps an existing session in the typed accessor surface.*/
func AsMPS112(s *Session) *MPS112 { return &MPS112{Session: s} }

func (d *MPS112) getInt(name string) (int, error) {
	v, err := d.Get(name)
	if err != nil {
		return 0, err
	}
	return v.(int), nil
}

/*Status retrieves and decodes the information query.*/
func (d *MPS112) Status() (*MPS112Status, error) { return mps112Status(d.Session) }

/*Input returns the selected input in single-mode numbering, 1 to 12.*/
func (d *MPS112) Input() (int, error) { return d.getInt("input") }

/*SetInput selects input n in single-mode numbering.*/
func (d *MPS112) SetInput(n int) error { return d.Set("input", n) }

/*GroupInput returns the selected input, 1 to 4, within a group.*/
func (d *MPS112) GroupInput(group int) (int, error) {
	v, err := d.GetIndex("input", group)
	if err != nil {
		return 0, err
	}
	return v.(int), nil
}

/*SetGroupInput selects input n within a group.*/
func (d *MPS112) SetGroupInput(group, n int) error { return d.SetIndex("input", group, n) }

/*Volume returns the program audio volume.*/
func (d *MPS112) Volume() (int, error) { return d.getInt("volume") }

/*SetVolume sets the program audio volume, 0 to 100.*/
func (d *MPS112) SetVolume(n int) error { return d.Set("volume", n) }

/*Mute returns whether program audio is muted.*/
func (d *MPS112) Mute() (bool, error) {
	n, err := d.getInt("mute")
	return n != 0, err
}

/*SetMute mutes or unmutes program audio.*/
func (d *MPS112) SetMute(on bool) error {
	n := 0
	if on {
		n = 1
	}
	return d.Set("mute", n)
}

/*MicVolume returns the mic gain or attenuation.*/
func (d *MPS112) MicVolume() (int, error) { return d.getInt("mic_volume") }

/*SetMicVolume sets the mic gain or attenuation, -66 to 12.*/
func (d *MPS112) SetMicVolume(n int) error { return d.Set("mic_volume", n) }

/*MicMute returns whether the microphone is muted.*/
func (d *MPS112) MicMute() (bool, error) {
	v, err := d.Get("mic_mute")
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

/*SetMicMute mutes or unmutes the microphone.*/
func (d *MPS112) SetMicMute(on bool) error { return d.Set("mic_mute", on) }

/*ExecutiveMode returns the front panel lock state.*/
func (d *MPS112) ExecutiveMode() (ExecutiveMode, error) {
	v, err := d.Get("executive_mode")
	if err != nil {
		return ExecutiveModeUnlocked, err
	}
	return v.(ExecutiveMode), nil
}

/*SetExecutiveMode locks or unlocks the front panel.*/
func (d *MPS112) SetExecutiveMode(m ExecutiveMode) error { return d.Set("executive_mode", m) }

/*SwitcherMode returns the switcher mode.*/
func (d *MPS112) SwitcherMode() (SwitcherMode, error) {
	v, err := d.Get("switcher_mode")
	if err != nil {
		return SwitcherModeSingle, err
	}
	return v.(SwitcherMode), nil
}

/*SetSwitcherMode selects single or separate switching.*/
func (d *MPS112) SetSwitcherMode(m SwitcherMode) error { return d.Set("switcher_mode", m) }

/*MicThreshold returns the mic talk-over threshold.*/
func (d *MPS112) MicThreshold() (int, error) { return d.getInt("mic_threshold") }

/*SetMicThreshold sets the mic talk-over threshold, 0 to 15.*/
func (d *MPS112) SetMicThreshold(n int) error { return d.Set("mic_threshold", n) }

func init() {
	RegisterModel(PartNumberMPS112, NewMPS112)
	RegisterModel(PartNumberMPS112CS, NewMPS112)
}
