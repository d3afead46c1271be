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

/*TestPattern selects a built-in test pattern. Not all devices support all
patterns.*/
type TestPattern string

const (
	TestPatternOff               TestPattern = "off"
	TestPatternAlternatingLines  TestPattern = "alternating-lines"
	TestPatternAlternatingPixels TestPattern = "alternating-pixels"
	TestPatternAspect133         TestPattern = "aspect-1.33"
	TestPatternAspect178         TestPattern = "aspect-1.78"
	TestPatternAspect185         TestPattern = "aspect-1.85"
	TestPatternAspect235         TestPattern = "aspect-2.35"
	TestPatternColorBars         TestPattern = "color-bars"
	TestPatternCrop              TestPattern = "crop"
	TestPatternCrosshatch        TestPattern = "crosshatch"
	TestPatternCrosshatch4x4     TestPattern = "crosshatch-4x4"
	TestPatternGrayscale         TestPattern = "grayscale"
	TestPatternGrayscaleRamp     TestPattern = "grayscale-ramp"
	TestPatternWhiteField        TestPattern = "white-field"
)

/*InputStandard is the detected input video standard.*/
type InputStandard string

const (
	InputStandardNone    InputStandard = "none"
	InputStandardNTSC358 InputStandard = "ntsc-3.58"
	InputStandardPAL     InputStandard = "pal"
	InputStandardNTSC443 InputStandard = "ntsc-4.43"
	InputStandardSECAM   InputStandard = "secam"
	//InputStandardOther is often used for "RGB or HDTV"
	InputStandardOther InputStandard = "other"
)

/*InputVideoFormat is the signal format configured on an input.*/
type InputVideoFormat string

const (
	InputFormatNone InputVideoFormat = "none"
	//InputFormatCVBS is composite video, sometimes simply "Video"
	InputFormatCVBS InputVideoFormat = "cvbs"
	//InputFormatSVideo is "separate video", aka Y/C
	InputFormatSVideo InputVideoFormat = "svideo"
	//InputFormatRGBcvS is RGB with sync on composite video
	InputFormatRGBcvS InputVideoFormat = "rgbcvs"
	//InputFormatRGBS is RGB with composite sync
	InputFormatRGBS InputVideoFormat = "rgbs"
	//InputFormatRGBHV is RGB with separate horizontal and vertical sync
	InputFormatRGBHV InputVideoFormat = "rgbhv"
	//InputFormatRGsB is RGB with sync on green
	InputFormatRGsB        InputVideoFormat = "rgsb"
	InputFormatRGBScaled   InputVideoFormat = "rgb-scaled"
	InputFormatRGBPassthru InputVideoFormat = "rgb-passthrough"
	//InputFormatYUVi is interlaced component video (YUV / YPbPr)
	InputFormatYUVi InputVideoFormat = "yuv-i"
	//InputFormatYUVp is progressive-scan component video
	InputFormatYUVp InputVideoFormat = "yuv-p"
	//InputFormatYUVAuto is component video with autodetected scan
	InputFormatYUVAuto InputVideoFormat = "yuv-auto"
	InputFormatSDI     InputVideoFormat = "sdi"
	InputFormatDVI     InputVideoFormat = "dvi"
	InputFormatHDMI    InputVideoFormat = "hdmi"
)

/*SyncFormat is the output sync arrangement.*/
type SyncFormat string

const (
	SyncFormatRGBHV       SyncFormat = "rgbhv"
	SyncFormatRGBS        SyncFormat = "rgbs"
	SyncFormatRGsB        SyncFormat = "rgsb"
	SyncFormatYUVBilevel  SyncFormat = "yuv-bilevel"
	SyncFormatYUVTrilevel SyncFormat = "yuv-trilevel"
)

/*SyncPolarity is the polarity of a sync signal.*/
type SyncPolarity string

const (
	SyncPolarityNegative SyncPolarity = "negative"
	SyncPolarityPositive SyncPolarity = "positive"
)

/*AspectMode determines how an input should fill the output.*/
type AspectMode string

const (
	//AspectModeFollow preserves the input's native aspect ratio.
	AspectModeFollow AspectMode = "follow"
	//AspectModeFill fills the entire raster output.
	AspectModeFill AspectMode = "fill"
)

/*ExecutiveMode locks front panel controls.*/
type ExecutiveMode string

const (
	//ExecutiveModeUnlocked leaves the front panel available for use.
	ExecutiveModeUnlocked ExecutiveMode = "unlocked"
	//ExecutiveModeLimited locks some controls; which ones varies by device.
	ExecutiveModeLimited ExecutiveMode = "limited"
	//ExecutiveModeComplete locks all front panel controls.
	ExecutiveModeComplete ExecutiveMode = "complete"
)

/*SwitcherMode selects how a multi-group switcher presents its inputs.*/
type SwitcherMode string

const (
	SwitcherModeSingle   SwitcherMode = "single"
	SwitcherModeSeparate SwitcherMode = "separate"
)
