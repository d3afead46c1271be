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
	"fmt"
	"regexp"
	"strconv"
)

var (
	aspectFormat     = regexp.MustCompile(`^(\d+):(\d+)$`)
	smpteResFormat   = regexp.MustCompile(`^(\d+)([pi])(| Sharp| CVT)$`)
	genericResFormat = regexp.MustCompile(`^(\d+)x(\d+)$`)
)

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

/*AspectRatio is a normalized width:height ratio. The zero value is invalid;
construct via NewAspectRatio or ParseAspectRatio.*/
type AspectRatio struct {
	W, H int
}

/*NewAspectRatio returns the ratio w:h reduced to lowest terms.*/
func NewAspectRatio(w, h int) AspectRatio {
	if h == 0 {
		panic("sistrum: aspect ratio with zero height")
	}
	g := gcd(w, h)
	return AspectRatio{W: w / g, H: h / g}
}

/*ParseAspectRatio parses a string like "16:9".*/
func ParseAspectRatio(s string) (AspectRatio, error) {
	m := aspectFormat.FindStringSubmatch(s)
	if m == nil {
		return AspectRatio{}, fmt.Errorf("sistrum: invalid aspect ratio %q", s)
	}
	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	if h == 0 {
		return AspectRatio{}, fmt.Errorf("sistrum: aspect ratio %q has zero height", s)
	}
	return NewAspectRatio(w, h), nil
}

/*String conforms to the fmt.Stringer interface*/
func (a AspectRatio) String() string { return fmt.Sprintf("%d:%d", a.W, a.H) }

/*smpteResolutions are the (width, height) pairs with SMPTE shorthand names:
480p, 576p, 720p, 1080p/1080i.*/
var smpteResolutions = [][2]int{
	{720, 480},
	{720, 576},
	{1280, 720},
	{1920, 1080},
}

/*Resolution is a raster resolution plus the timing flags SIS devices
distinguish. Resolutions are plain comparable values.

A resolution renders as SMPTE shorthand ("480p", "1080i") when its size has
one, as "WxH" otherwise, with " CVT" or " Sharp" suffixes for those timing
variants.*/
type Resolution struct {
	Width, Height int
	//Interlaced is true for interlaced scan, false for progressive.
	Interlaced bool
	//CVT marks VESA Coordinated Video Timings.
	CVT bool
	//Sharp marks Extron's "sharp" timing variant, which Extron does not
	//further define.
	Sharp bool
}

func (r Resolution) isSMPTE() bool {
	for _, wh := range smpteResolutions {
		if wh[0] == r.Width && wh[1] == r.Height {
			return true
		}
	}
	return false
}

/*ParseResolution parses SMPTE shorthand ("480p", "1080i", "1080p CVT",
"1080p Sharp") or a generic "WxH" string.*/
func ParseResolution(s string) (Resolution, error) {
	if m := smpteResFormat.FindStringSubmatch(s); m != nil {
		height, _ := strconv.Atoi(m[1])
		for _, wh := range smpteResolutions {
			if wh[1] == height {
				return Resolution{
					Width:      wh[0],
					Height:     wh[1],
					Interlaced: m[2] == "i",
					Sharp:      m[3] == " Sharp",
					CVT:        m[3] == " CVT",
				}, nil
			}
		}
	}
	if m := genericResFormat.FindStringSubmatch(s); m != nil {
		w, _ := strconv.Atoi(m[1])
		h, _ := strconv.Atoi(m[2])
		return Resolution{Width: w, Height: h}, nil
	}
	return Resolution{}, fmt.Errorf("sistrum: unable to parse resolution %q", s)
}

/*String conforms to the fmt.Stringer interface*/
func (r Resolution) String() string {
	var base string
	if r.isSMPTE() {
		scan := "p"
		if r.Interlaced {
			scan = "i"
		}
		base = fmt.Sprintf("%d%s", r.Height, scan)
	} else {
		base = fmt.Sprintf("%dx%d", r.Width, r.Height)
	}
	switch {
	case r.CVT:
		return base + " CVT"
	case r.Sharp:
		return base + " Sharp"
	default:
		return base
	}
}

/*AspectRatio returns the aspect ratio of this resolution.*/
func (r Resolution) AspectRatio() AspectRatio { return NewAspectRatio(r.Width, r.Height) }
