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
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestDVS304StatusParser(t *testing.T) {
	s, err := parseDVS304Status("Vid4 Aud- Typ8 Std- Pre000")
	if err != nil {
		t.Error("Parse shouldnt fail:", err)
		t.FailNow()
	}
	if s.VideoInput != 4 || s.AudioInput != 0 {
		t.Errorf("Expected video 4, audio 0; got %d, %d", s.VideoInput, s.AudioInput)
	}
	if s.InputFormat != InputFormatYUVAuto {
		t.Errorf("Expected yuv-auto, got %v", s.InputFormat)
	}
	if s.InputStandard != InputStandardOther {
		t.Errorf("Expected other, got %v", s.InputStandard)
	}
	for i := 1; i <= 3; i++ {
		if s.Preset[i] != InputStandardNone {
			t.Errorf("Expected preset %d to be none, got %v", i, s.Preset[i])
		}
	}
	if s.SDIInput != nil {
		t.Error("Expected no SDI field on this model")
	}

	s, err = parseDVS304Status("Vid2 Aud1 Typ1 Std0 Pre100 Sdi3")
	if err != nil {
		t.Error("Parse shouldnt fail:", err)
		t.FailNow()
	}
	if s.VideoInput != 2 || s.AudioInput != 1 {
		t.Errorf("Expected video 2, audio 1; got %d, %d", s.VideoInput, s.AudioInput)
	}
	if s.InputFormat != InputFormatCVBS {
		t.Errorf("Expected cvbs, got %v", s.InputFormat)
	}
	if s.Preset[1] != InputStandardNTSC358 || s.Preset[2] != InputStandardNone {
		t.Errorf("Preset decode is wrong: %v", s.Preset)
	}
	if s.SDIInput == nil || *s.SDIInput != 3 {
		t.Errorf("Expected SDI input 3, got %v", s.SDIInput)
	}

	if _, err := parseDVS304Status("utter garbage"); err == nil {
		t.Error("Garbage should not parse")
	}
}

func TestOutputRateConverter(t *testing.T) {
	c := OutputRateConverter{}

	roundTrip(t, c, []interface{}{
		OutputRate{Resolution: Resolution{Width: 1024, Height: 768}, Refresh: 60},
		OutputRate{Resolution: Resolution{Width: 1920, Height: 1080, Interlaced: true}, Refresh: 50},
		OutputRate{Resolution: Resolution{Width: 720, Height: 480}, Refresh: 59.94},
		//the overloaded "3" refresh token, in both of its special contexts
		OutputRate{Resolution: Resolution{Width: 1440, Height: 900}, Refresh: 75},
		OutputRate{Resolution: Resolution{Width: 1920, Height: 1080}, Refresh: 24},
	})

	raw, err := c.ToRaw(OutputRate{Resolution: Resolution{Width: 1024, Height: 768}, Refresh: 60})
	if err != nil || raw != "04*02" {
		t.Errorf("Expected 04*02, got %q / %v", raw, err)
	}
	raw, err = c.ToRaw(OutputRate{Resolution: Resolution{Width: 1440, Height: 900}, Refresh: 75})
	if err != nil || raw != "20*03" {
		t.Errorf("Expected 20*03, got %q / %v", raw, err)
	}
	raw, err = c.ToRaw(OutputRate{Resolution: Resolution{Width: 1920, Height: 1080}, Refresh: 24})
	if err != nil || raw != "19*03" {
		t.Errorf("Expected 19*03, got %q / %v", raw, err)
	}

	//the "3" token still reads as 72 Hz everywhere else
	v, err := c.ToAPI("01*03")
	if err != nil {
		t.Error("ToAPI shouldnt fail:", err)
	}
	if r := v.(OutputRate); r.Refresh != 72 {
		t.Errorf("Expected 72 Hz, got %g", r.Refresh)
	}

	if _, err := c.ToAPI("nonsense"); err == nil {
		t.Error("Malformed tokens should fail")
	}
	if _, err := c.ToAPI("99*01"); err == nil {
		t.Error("Unknown resolution tokens should fail")
	}
	_, err = c.ToRaw(OutputRate{Resolution: Resolution{Width: 123, Height: 456}, Refresh: 60})
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter for an unknown resolution, got %v", err)
	}
	_, err = c.ToRaw(OutputRate{Resolution: Resolution{Width: 1024, Height: 768}, Refresh: 33})
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter for an unknown refresh, got %v", err)
	}
	if _, err := c.ToRaw("not a rate"); err == nil {
		t.Error("Non-OutputRate values should fail")
	}
}

/*newDVS304Sim is a simulated DVS 304 with enough state for the typed
accessor tests*/
func newDVS304Sim() *simDevice {
	input := 1
	format := map[string]string{"1": "1", "2": "4", "3": "2", "4": "6"}
	frozen := "0"

	dev := newSimDevice(PartNumberDVS304)
	dev.handle(`^!$`, func([]string) (string, error) { return fmt.Sprintf("%d", input), nil })
	dev.handle(`^(\d)!$`, func(m []string) (string, error) {
		n := int(m[1][0] - '0')
		if n < 1 || n > 4 {
			return "", ErrInvalidInputNumber
		}
		input = n
		return fmt.Sprintf("In%d All", n), nil
	})
	dev.handle(`^(\d)\\$`, func(m []string) (string, error) { return format[m[1]], nil })
	dev.handle(`^(\d)\*(\d)\\$`, func(m []string) (string, error) {
		format[m[1]] = m[2]
		return m[1] + "Typ" + m[2], nil
	})
	dev.handle(`^=$`, func([]string) (string, error) { return "17*02", nil })
	dev.handle(`^(\d+\*\d+)=$`, func(m []string) (string, error) { return "Rte" + m[1], nil })
	dev.handle(`^J$`, func([]string) (string, error) { return "3", nil })
	dev.handle(`^F$`, func([]string) (string, error) { return frozen, nil })
	dev.handle(`^(\d)F$`, func(m []string) (string, error) {
		frozen = m[1]
		return "Frz" + m[1], nil
	})
	dev.handle(`^20S$`, func([]string) (string, error) { return "32.5", nil })
	dev.handle(`^I$`, func([]string) (string, error) { return "Vid1 Aud1 Typ1 Std1 Pre000", nil })
	return dev
}

func TestDVS304Accessors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dev := newDVS304Sim()
	d := AsDVS304(NewDVS304(ctx, dev))
	defer d.Close()

	if err := d.SetInput(3); err != nil {
		t.Error("SetInput shouldnt fail:", err)
	}
	if n, err := d.Input(); err != nil || n != 3 {
		t.Errorf("Expected input 3, got %d / %v", n, err)
	}
	if err := d.SetInput(9); !errors.Is(err, ErrInvalidInputNumber) {
		t.Errorf("Expected ErrInvalidInputNumber, got %v", err)
	}

	if f, err := d.VideoInputFormat(2); err != nil || f != InputFormatYUVi {
		t.Errorf("Expected yuv-i on input 2, got %v / %v", f, err)
	}
	if err := d.SetVideoInputFormat(3, InputFormatSVideo); err != nil {
		t.Error("SetVideoInputFormat shouldnt fail:", err)
	}
	if f, err := d.VideoInputFormat(3); err != nil || f != InputFormatSVideo {
		t.Errorf("Expected svideo on input 3, got %v / %v", f, err)
	}
	if _, err := d.VideoInputFormat(7); err == nil {
		t.Error("Out of range input should fail locally")
	}

	rate, err := d.OutputRate()
	if err != nil {
		t.Error("OutputRate shouldnt fail:", err)
	}
	want := OutputRate{Resolution: Resolution{Width: 1280, Height: 720}, Refresh: 60}
	if rate != want {
		t.Errorf("Expected %v, got %v", want, rate)
	}
	if err := d.SetOutputRate(want); err != nil {
		t.Error("SetOutputRate shouldnt fail:", err)
	}

	if p, err := d.TestPattern(); err != nil || p != TestPatternColorBars {
		t.Errorf("Expected color bars, got %v / %v", p, err)
	}

	if frozen, err := d.Freeze(); err != nil || frozen {
		t.Errorf("Expected unfrozen, got %v / %v", frozen, err)
	}
	if err := d.SetFreeze(true); err != nil {
		t.Error("SetFreeze shouldnt fail:", err)
	}
	if frozen, err := d.Freeze(); err != nil || !frozen {
		t.Errorf("Expected frozen, got %v / %v", frozen, err)
	}

	if temp, err := d.Temperature(); err != nil || temp != 32.5 {
		t.Errorf("Expected 32.5 C, got %g / %v", temp, err)
	}

	st, err := d.Status()
	if err != nil {
		t.Error("Status shouldnt fail:", err)
		t.FailNow()
	}
	if st.VideoInput != 1 || st.InputFormat != InputFormatCVBS {
		t.Errorf("Status decode is wrong: %+v", st)
	}
}

func TestDVS304ReconfigEvent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dev := newDVS304Sim()
	s := NewDVS304(ctx, dev)
	defer s.Close()

	events := make(chan Event, 4)
	s.AddEventListener("reconfig", func(ev Event) bool {
		events <- ev
		return false
	})

	dev.notify("Reconfig")
	ev := awaitEvent(t, events)
	if ev.Kind != BareEvent || ev.Name != "reconfig" {
		t.Errorf("Expected a bare reconfig event, got %v", ev)
	}
	if ev.String() != "reconfig" {
		t.Errorf("Bare events render as their name, got %q", ev.String())
	}
}

func TestDVS304IndexedEvent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dev := newDVS304Sim()
	s := NewDVS304(ctx, dev)
	defer s.Close()

	events := make(chan Event, 4)
	s.AddEventListener("video_input_format", func(ev Event) bool {
		events <- ev
		return false
	})

	//a front panel change announces itself with the same shape as a set reply
	dev.notify("4Typ2")
	ev := awaitEvent(t, events)
	if ev.Kind != IndexValueEvent || ev.Index != 4 || ev.Value != InputFormatSVideo {
		t.Errorf("Expected format[4] = svideo, got %v", ev)
	}
}

func TestDVS304VocabularyShape(t *testing.T) {
	if !DVS304Vocabulary.Contains(
		"input", "video_input", "audio_input", "video_input_format",
		"output_rate", "test_pattern", "freeze", "video_mute",
		"color", "tint", "contrast", "brightness", "zoom", "reconfig",
	) {
		t.Error("DVS 304 vocabulary is missing expected properties")
	}
	p := DVS304Vocabulary["video_input_format"]
	if !p.Indexed() {
		t.Error("video_input_format should be indexed")
	}
	if DVS304Vocabulary["reconfig"].Readable() {
		t.Error("reconfig is notification-only")
	}
}

func TestDVS304RequestTimeoutOption(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dev := newSimDevice(PartNumberDVS304)
	dev.handle(`^!$`, func([]string) (string, error) { return "", nil }) //mute
	s := NewDVS304(ctx, dev, WithRequestTimeout(30*time.Millisecond))
	defer s.Close()

	start := time.Now()
	_, err := s.Get("input")
	if !errors.Is(err, ErrNoReply) {
		t.Errorf("Expected ErrNoReply, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Configured timeout ignored, took %v", elapsed)
	}
}
