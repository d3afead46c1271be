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
	"testing"
	"time"
)

func TestConnectDetectsDVS304(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dev := newSimDevice(PartNumberDVS304DVIA)
	s, err := Connect(ctx, dev, time.Second)
	if err != nil {
		t.Error("Connect shouldnt fail:", err)
		t.FailNow()
	}
	defer s.Close()

	if !s.Vocabulary().Contains("input", "output_rate", "reconfig") {
		t.Error("Expected the DVS 304 vocabulary")
	}
}

func TestConnectDetectsMPS112(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dev := newSimDevice(PartNumberMPS112CS)
	s, err := Connect(ctx, dev, time.Second)
	if err != nil {
		t.Error("Connect shouldnt fail:", err)
		t.FailNow()
	}
	defer s.Close()

	if !s.Vocabulary().Contains("input", "mic_volume", "switcher_mode") {
		t.Error("Expected the MPS 112 vocabulary")
	}
}

func TestConnectUnknownModelFallsBack(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dev := newSimDevice(PartNumber("60-999-99"))
	dev.handle(`^Q$`, func([]string) (string, error) { return "9.87", nil })
	s, err := Connect(ctx, dev, time.Second)
	if err != nil {
		t.Error("Connect shouldnt fail:", err)
		t.FailNow()
	}
	defer s.Close()

	if len(s.Vocabulary()) != 0 {
		t.Error("Unknown models should get the bare generic vocabulary")
	}
	//the generic session still speaks the common commands
	if fw, err := s.FirmwareVersion(); err != nil || fw != "9.87" {
		t.Errorf("Expected firmware 9.87, got %q / %v", fw, err)
	}
}

func TestConnectTimesOutOnSilence(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dev := &simDevice{}
	//swallow the part-number query without answering
	dev.handle(`^[Nn]$`, func([]string) (string, error) { return "", nil })

	start := time.Now()
	_, err := Connect(ctx, dev, 50*time.Millisecond)
	if err == nil {
		t.Error("Connect against a silent device should fail")
		t.FailNow()
	}
	if !IsTimeout(err) {
		t.Errorf("Expected a timeout-flagged error, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Took %v, far past the deadline", elapsed)
	}
}

func TestConnectCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dev := &simDevice{}
	dev.handle(`^[Nn]$`, func([]string) (string, error) { return "", nil })
	if _, err := Connect(ctx, dev, time.Second); err == nil {
		t.Error("Connect on a dead context should fail")
	}
}

func TestRegisterModelDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected a panic on duplicate registration")
		}
	}()
	RegisterModel(PartNumberDVS304, NewGenericSession)
}

func TestDialBadString(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if _, err := Dial(ctx, time.Millisecond, "no-can-dial"); err == nil {
		t.Error("Bad dial string should fail")
	}
}
