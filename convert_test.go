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

import "testing"

/*roundTrip checks the converter law over a declared domain*/
func roundTrip(t *testing.T, c ValueConverter, values []interface{}) {
	t.Helper()
	for _, want := range values {
		raw, err := c.ToRaw(want)
		if err != nil {
			t.Errorf("ToRaw(%v) failed: %v", want, err)
			continue
		}
		got, err := c.ToAPI(raw)
		if err != nil {
			t.Errorf("ToAPI(%q) failed: %v", raw, err)
			continue
		}
		if got != want {
			t.Errorf("Round trip through %q: expected %v, got %v", raw, want, got)
		}
	}
}

func TestIntConverter(t *testing.T) {
	roundTrip(t, IntConverter{}, []interface{}{0, 1, 42, 100, -5})

	c := IntConverter{}
	if v, err := c.ToAPI("+12"); err != nil || v != 12 {
		t.Errorf("Expected +12 to read as 12, got %v / %v", v, err)
	}
	if _, err := c.ToAPI("twelve"); err == nil {
		t.Error("Non-numeric tokens should fail")
	}
	if _, err := c.ToRaw("12"); err == nil {
		t.Error("Non-int values should fail")
	}
}

func TestBoolConverter(t *testing.T) {
	roundTrip(t, BoolConverter{}, []interface{}{true, false})

	c := BoolConverter{}
	//anything nonzero reads as true, matching what the hardware emits
	if v, err := c.ToAPI("7"); err != nil || v != true {
		t.Errorf("Expected a nonzero token to read as true, got %v / %v", v, err)
	}
	if _, err := c.ToAPI("yes"); err == nil {
		t.Error("Non-numeric tokens should fail")
	}
	if _, err := c.ToRaw(1); err == nil {
		t.Error("Non-bool values should fail")
	}
}

func TestEnumConverter(t *testing.T) {
	roundTrip(t, dvs304TestPattern, []interface{}{
		TestPatternOff,
		TestPatternCrop,
		TestPatternAlternatingPixels,
		TestPatternColorBars,
	})
	roundTrip(t, dvs304InputStandard, []interface{}{
		InputStandardNone,
		InputStandardNTSC358,
		InputStandardPAL,
		InputStandardNTSC443,
		InputStandardSECAM,
		InputStandardOther,
	})
	roundTrip(t, mps112SwitcherMode, []interface{}{
		SwitcherModeSingle,
		SwitcherModeSeparate,
	})

	if _, err := dvs304TestPattern.ToAPI("9"); err == nil {
		t.Error("Unknown tokens should fail")
	}
	if _, err := dvs304TestPattern.ToRaw(TestPatternGrayscale); err == nil {
		t.Error("Values outside the device's table should fail")
	}
}

func TestEnumConverterFullTables(t *testing.T) {
	//every token in the device tables must survive a full round trip
	for name, c := range map[string]*EnumConverter{
		"dvs304 input format":      dvs304InputFormat,
		"dvs304 input standard":    dvs304InputStandard,
		"dvs304 output resolution": dvs304OutputResolution,
		"dvs304 refresh rate":      dvs304RefreshRate,
		"dvs304 test pattern":      dvs304TestPattern,
		"mps112 executive mode":    mps112ExecutiveMode,
		"mps112 switcher mode":     mps112SwitcherMode,
	} {
		for _, token := range c.keys {
			v, err := c.ToAPI(token)
			if err != nil {
				t.Errorf("%s: ToAPI(%q) failed: %v", name, token, err)
				continue
			}
			raw, err := c.ToRaw(v)
			if err != nil {
				t.Errorf("%s: ToRaw(%v) failed: %v", name, v, err)
				continue
			}
			if raw != token {
				t.Errorf("%s: token %q came back as %q", name, token, raw)
			}
		}
	}
}
