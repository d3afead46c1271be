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
	"math"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

/*
The DVS 304 family are four-input video and RGB scalers. Variants add audio
switching ("A" models), an SDI input ("D" models), and DVI-I output ("DVI"
models). The four inputs:

	Input 1: BNC, composite video.
	Input 2: three BNCs, composite, S-Video, or component video.
	Input 3: 4-pin mini DIN, S-Video.
	Input 4: HD15, composite through RGBcvS.

See the user manual, Extron 68-1039-01.
*/

var dvs304InputFormat = NewEnumConverter(map[string]interface{}{
	"1": InputFormatCVBS,
	"2": InputFormatSVideo,
	"3": InputFormatRGBcvS,
	"4": InputFormatYUVi,
	"5": InputFormatYUVp,
	"6": InputFormatRGBScaled,
	"7": InputFormatRGBPassthru,
	"8": InputFormatYUVAuto,
	"9": InputFormatSDI,
})

//keys are strings, not ints, because "-" is a valid token
var dvs304InputStandard = NewEnumConverter(map[string]interface{}{
	"0": InputStandardNone,
	"1": InputStandardNTSC358,
	"2": InputStandardPAL,
	"3": InputStandardNTSC443,
	"4": InputStandardSECAM,
	"-": InputStandardOther,
})

var dvs304OutputResolution = NewEnumConverter(map[string]interface{}{
	"1":  Resolution{Width: 640, Height: 480},
	"2":  Resolution{Width: 800, Height: 600},
	"3":  Resolution{Width: 852, Height: 480},
	"4":  Resolution{Width: 1024, Height: 768},
	"5":  Resolution{Width: 1024, Height: 852},
	"6":  Resolution{Width: 1024, Height: 1024},
	"7":  Resolution{Width: 1280, Height: 768},
	"8":  Resolution{Width: 1280, Height: 1024},
	"9":  Resolution{Width: 1360, Height: 765},
	"10": Resolution{Width: 1364, Height: 768},
	"11": Resolution{Width: 1365, Height: 1024},
	"12": Resolution{Width: 1366, Height: 768},
	"13": Resolution{Width: 1400, Height: 1050},
	"14": Resolution{Width: 1600, Height: 1200},
	"15": Resolution{Width: 720, Height: 480},  //480p
	"16": Resolution{Width: 720, Height: 576},  //576p
	"17": Resolution{Width: 1280, Height: 720}, //720p
	"18": Resolution{Width: 1920, Height: 1080, Interlaced: true},
	"19": Resolution{Width: 1920, Height: 1080},
	"20": Resolution{Width: 1440, Height: 900},
	"21": Resolution{Width: 1680, Height: 1050},
	"22": Resolution{Width: 1280, Height: 800},
	"23": Resolution{Width: 1920, Height: 1080, Sharp: true},
	"24": Resolution{Width: 1920, Height: 1200},
	"25": Resolution{Width: 1920, Height: 1080, CVT: true},
})

var dvs304RefreshRate = NewEnumConverter(map[string]interface{}{
	"1": 50.00,
	"2": 60.00,
	"3": 72.00, //also 75 Hz at 1440x900 and 24 Hz at 1080p
	"4": 96.00,
	"5": 100.0,
	"6": 120.0,
	"7": 59.94,
})

var dvs304TestPattern = NewEnumConverter(map[string]interface{}{
	"0": TestPatternOff,
	"1": TestPatternCrop,
	"2": TestPatternAlternatingPixels,
	"3": TestPatternColorBars,
})

/*OutputRate is an output resolution together with its refresh rate, the unit
the scaler's rate command actually operates on.*/
type OutputRate struct {
	Resolution Resolution
	Refresh    float64
}

/*String conforms to the fmt.Stringer interface*/
func (r OutputRate) String() string {
	return fmt.Sprintf("%s @ %g Hz", r.Resolution, r.Refresh)
}

var outputRateFormat = regexp.MustCompile(`^(\d+)\*(\d+)$`)

/*OutputRateConverter converts "RR*FF" wire tokens to OutputRate values. The
refresh token "3" is overloaded by the hardware: it reads as 75 Hz at
1440x900, 24 Hz at 1080p, and 72 Hz everywhere else. That makes this
converter lossy without the resolution half of the pair, which is why it
always converts the pair as a unit.*/
type OutputRateConverter struct{}

/*ToAPI conforms to ValueConverter*/
func (OutputRateConverter) ToAPI(raw string) (interface{}, error) {
	m := outputRateFormat.FindStringSubmatch(raw)
	if m == nil {
		return nil, fmt.Errorf("sis: %q is not a rate token", raw)
	}
	resN, _ := strconv.Atoi(m[1])
	refN, _ := strconv.Atoi(m[2])

	res, err := dvs304OutputResolution.ToAPI(strconv.Itoa(resN))
	if err != nil {
		return nil, err
	}
	resolution := res.(Resolution)

	ref, err := dvs304RefreshRate.ToAPI(strconv.Itoa(refN))
	if err != nil {
		return nil, err
	}
	refresh := ref.(float64)
	if refN == 3 {
		switch {
		case resolution.Width == 1440 && resolution.Height == 900:
			refresh = 75.0
		case resolution.Width == 1920 && resolution.Height == 1080:
			refresh = 24.0
		}
	}
	return OutputRate{Resolution: resolution, Refresh: refresh}, nil
}

/*ToRaw conforms to ValueConverter*/
func (OutputRateConverter) ToRaw(v interface{}) (string, error) {
	rate, ok := v.(OutputRate)
	if !ok {
		return "", fmt.Errorf("sis: expected OutputRate, got %T", v)
	}

	resRaw, err := dvs304OutputResolution.ToRaw(rate.Resolution)
	if err != nil {
		return "", errors.Wrap(ErrInvalidParameter, err.Error())
	}

	var refRaw string
	res := rate.Resolution
	switch {
	case res.Width == 1440 && res.Height == 900 && closeEnough(rate.Refresh, 75.0):
		refRaw = "3"
	case res.Width == 1920 && res.Height == 1080 && closeEnough(rate.Refresh, 24.0):
		refRaw = "3"
	default:
		if refRaw, err = dvs304RefreshRate.ToRaw(rate.Refresh); err != nil {
			return "", errors.Wrap(ErrInvalidParameter, err.Error())
		}
	}

	resN, _ := strconv.Atoi(resRaw)
	refN, _ := strconv.Atoi(refRaw)
	return fmt.Sprintf("%02d*%02d", resN, refN), nil
}

func closeEnough(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

/*DVS304Status is the decoded reply to the DVS 304 information query.*/
type DVS304Status struct {
	//VideoInput is the selected video input, 0 if none
	VideoInput int
	//AudioInput is the selected audio input, 0 if none
	AudioInput int
	//InputFormat is the format of the selected input
	InputFormat InputVideoFormat
	//InputStandard is the detected video standard
	InputStandard InputStandard
	//Preset holds the standard stored in memory presets 1 through 3
	Preset map[int]InputStandard
	//SDIInput is the SDI input selection, nil on models without SDI
	SDIInput *int
}

var dvs304StatusFormat = regexp.MustCompile(`^Vid([\d\-]) Aud([\d\-]) Typ(\d) Std([\d\-]) Pre(\d)(\d)(\d)(| Sdi(\d))$`)

func dashInt(token string) int {
	if token == "-" {
		return 0
	}
	n, _ := strconv.Atoi(token)
	return n
}

func parseDVS304Status(line string) (*DVS304Status, error) {
	m := dvs304StatusFormat.FindStringSubmatch(line)
	if m == nil {
		return nil, errors.Errorf("dvs304: unable to parse status line %q", line)
	}

	format, err := dvs304InputFormat.ToAPI(m[3])
	if err != nil {
		return nil, errors.Wrap(err, "dvs304: bad status input format")
	}
	standard := func(token string) InputStandard {
		v, serr := dvs304InputStandard.ToAPI(token)
		if serr != nil {
			err = errors.Wrap(serr, "dvs304: bad status input standard")
			return InputStandardNone
		}
		return v.(InputStandard)
	}

	st := &DVS304Status{
		VideoInput:    dashInt(m[1]),
		AudioInput:    dashInt(m[2]),
		InputFormat:   format.(InputVideoFormat),
		InputStandard: standard(m[4]),
		Preset: map[int]InputStandard{
			1: standard(m[5]),
			2: standard(m[6]),
			3: standard(m[7]),
		},
	}
	if m[9] != "" {
		sdi := dashInt(m[9])
		st.SDIInput = &sdi
	}
	return st, err
}

/*DVS304Vocabulary is the property table shared by all DVS 304 models. Input
range checks are left to the device; it answers out-of-range requests with
error lines that surface as *SISError values.*/
var DVS304Vocabulary = Vocabulary{
	"input": MustProperty(Declaration{
		Doc:     "selected video and audio input, 1 to 4",
		Type:    IntConverter{},
		GetCmd:  "!",
		SetCmd:  "{0}!",
		EventRe: `^In(\d) All$`,
	}),
	"video_input": MustProperty(Declaration{
		Doc:     "selected video input, 1 to 4",
		Type:    IntConverter{},
		GetCmd:  "&",
		SetCmd:  "{0}&",
		EventRe: `^In(\d) RGB$`,
	}),
	"audio_input": MustProperty(Declaration{
		Doc:     "selected audio input, 1 to 4",
		Type:    IntConverter{},
		GetCmd:  "$",
		SetCmd:  "{0}$",
		EventRe: `^In(\d) Aud$`,
	}),
	"video_input_format": MustProperty(Declaration{
		Doc:     "video format per input; not all inputs accept all formats",
		Type:    dvs304InputFormat,
		Indices: &IndexRange{Min: 1, Max: 4},
		GetCmd:  `{index}\`,
		SetCmd:  `{index}*{0}\`,
		EventRe: `^(\d)Typ(\d)$`,
	}),
	"horiz_start": MustProperty(Declaration{
		Doc:     "horizontal location of the first active pixel",
		Type:    IntConverter{},
		GetCmd:  ")",
		SetCmd:  "{0})",
		EventRe: `^Hst(\d+)$`,
	}),
	"vert_start": MustProperty(Declaration{
		Doc:     "vertical location of the first active line",
		Type:    IntConverter{},
		GetCmd:  "(",
		SetCmd:  "{0}(",
		EventRe: `^Vst(\d+)$`,
	}),
	"pixel_phase": MustProperty(Declaration{
		Doc:     "pixel sampling phase",
		Type:    IntConverter{},
		GetCmd:  "U",
		SetCmd:  "{0}U",
		EventRe: `^Phs(\d+)$`,
	}),
	"total_pixels": MustProperty(Declaration{
		Doc:     "total pixels per line",
		Type:    IntConverter{},
		GetCmd:  "11#",
		SetCmd:  "11*{0}#",
		EventRe: `^Tpx(\d+)$`,
	}),
	"active_pixels": MustProperty(Declaration{
		Doc:     "active pixels per line",
		Type:    IntConverter{},
		GetCmd:  "12#",
		SetCmd:  "12*{0}#",
		EventRe: `^Apx(\d+)$`,
	}),
	"active_lines": MustProperty(Declaration{
		Doc:     "active lines per frame",
		Type:    IntConverter{},
		GetCmd:  "13#",
		SetCmd:  "13*{0}#",
		EventRe: `^Aln(\d+)$`,
	}),
	"film_mode": MustProperty(Declaration{
		Doc:     "auto sense for 3:2 or 2:2 pull-down",
		Type:    BoolConverter{},
		GetCmd:  "18#",
		SetCmd:  "18*{0}#",
		EventRe: `^Flm(\d+)$`,
	}),
	"video_mute": MustProperty(Declaration{
		Doc:     "blank the selected input",
		Type:    BoolConverter{},
		GetCmd:  "B",
		SetCmd:  "{0}B",
		EventRe: `^Vmt(\d+)$`,
	}),
	"color": MustProperty(Declaration{
		Doc:     "color level",
		Type:    IntConverter{},
		GetCmd:  "C",
		SetCmd:  "{0}C",
		EventRe: `^Col(\d+)$`,
	}),
	"tint": MustProperty(Declaration{
		Doc:     "tint level",
		Type:    IntConverter{},
		GetCmd:  "T",
		SetCmd:  "{0}T",
		EventRe: `^Tin(\d+)$`,
	}),
	"contrast": MustProperty(Declaration{
		Doc:     "contrast level",
		Type:    IntConverter{},
		GetCmd:  "^",
		SetCmd:  "{0}^",
		EventRe: `^Con(\d+)$`,
	}),
	"brightness": MustProperty(Declaration{
		Doc:     "brightness level",
		Type:    IntConverter{},
		GetCmd:  "Y",
		SetCmd:  "{0}Y",
		EventRe: `^Brt(\d+)$`,
	}),
	"detail_filter": MustProperty(Declaration{
		Doc:     "detail (sharpness) level",
		Type:    IntConverter{},
		GetCmd:  "D",
		SetCmd:  "{0}D",
		EventRe: `^Shp(\d+)$`,
	}),
	"horiz_shift": MustProperty(Declaration{
		Doc:     "horizontal centering",
		Type:    IntConverter{},
		GetCmd:  "H",
		SetCmd:  "{0}H",
		EventRe: `^Hph(\d+)$`,
	}),
	"vert_shift": MustProperty(Declaration{
		Doc:     "vertical centering",
		Type:    IntConverter{},
		GetCmd:  "/",
		SetCmd:  "{0}/",
		EventRe: `^Vph(\d+)$`,
	}),
	"horiz_size": MustProperty(Declaration{
		Doc:     "horizontal sizing",
		Type:    IntConverter{},
		GetCmd:  ":",
		SetCmd:  "{0}:",
		EventRe: `^Hsz(\d+)$`,
	}),
	"vert_size": MustProperty(Declaration{
		Doc:     "vertical sizing",
		Type:    IntConverter{},
		GetCmd:  ";",
		SetCmd:  "{0};",
		EventRe: `^Vsz(\d+)$`,
	}),
	"zoom": MustProperty(Declaration{
		Doc:     "zoom percentage",
		Type:    IntConverter{},
		GetCmd:  "{",
		SetCmd:  "{0}{",
		EventRe: `^Zom(\d+)$`,
	}),
	//pan is omitted: it is relative-only and its bounds move with the zoom
	//percentage and resolution
	"output_rate": MustProperty(Declaration{
		Doc:     "output resolution and refresh rate, as a pair",
		Type:    OutputRateConverter{},
		GetCmd:  "=",
		SetCmd:  "{0}=",
		EventRe: `^Rte(\d+\*\d+)$`,
	}),
	"test_pattern": MustProperty(Declaration{
		Doc:     "test pattern; this family supports off, crop, alternating pixels, and color bars",
		Type:    dvs304TestPattern,
		GetCmd:  "J",
		SetCmd:  "{0}J",
		EventRe: `^Tst(\d+)$`,
	}),
	"freeze": MustProperty(Declaration{
		Doc:     "freeze the image, for use as a logo or for annotation",
		Type:    BoolConverter{},
		GetCmd:  "F",
		SetCmd:  "{0}F",
		EventRe: `^Frz(\d+)$`,
	}),
	"auto_switch": MustProperty(Declaration{
		Doc:     "switch to the highest numbered input with a signal present; SDI is ignored",
		Type:    BoolConverter{},
		GetCmd:  "10#",
		SetCmd:  "10*{0}#",
		EventRe: `^Asw(\d+)$`,
	}),
	"blue_screen": MustProperty(Declaration{
		Doc:     "pass only sync and blue video, for color and tint setup",
		Type:    BoolConverter{},
		GetCmd:  "8#",
		SetCmd:  "8*{0}#",
		EventRe: `^Blu(\d+)$`,
	}),
	//TODO: auto_image value 2 is an execute-now trigger, which deserves its
	//own method instead of a magic integer
	"auto_image": MustProperty(Declaration{
		Doc:     "apply auto memory, or auto-image, on new input frequencies",
		Type:    IntConverter{},
		GetCmd:  "55#",
		SetCmd:  "55*{0}#",
		EventRe: `^Img(\d+)$`,
	}),
	"reconfig": MustProperty(Declaration{
		Doc:     "device-initiated notification of a signal change",
		EventRe: `^Reconfig$`,
	}),
}

/*DVS304 wraps a Session with typed accessors for the DVS 304 property table.
The embedded session remains fully usable; the wrapper only adds static
types on top of Get and Set.*/
type DVS304 struct {
	*Session
}

/*NewDVS304 builds a DVS 304 session over tr.*/
func NewDVS304(ctx context.Context, tr Transport, opts ...Option) *Session {
	return NewSession(ctx, tr, DVS304Vocabulary, opts...)
}

/*AsDVS304 wraps an existing session in the typed accessor surface.*/
func AsDVS304(s *Session) *DVS304 { return &DVS304{Session: s} }

func (d *DVS304) getInt(name string) (int, error) {
	v, err := d.Get(name)
	if err != nil {
		return 0, err
	}
	return v.(int), nil
}

func (d *DVS304) getBool(name string) (bool, error) {
	v, err := d.Get(name)
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

/*Input returns the selected video and audio input.*/
func (d *DVS304) Input() (int, error) { return d.getInt("input") }

/*SetInput switches both video and audio to input n.*/
func (d *DVS304) SetInput(n int) error { return d.Set("input", n) }

/*VideoInput returns the selected video input.*/
func (d *DVS304) VideoInput() (int, error) { return d.getInt("video_input") }

/*SetVideoInput switches video only to input n.*/
func (d *DVS304) SetVideoInput(n int) error { return d.Set("video_input", n) }

/*AudioInput returns the selected audio input.*/
func (d *DVS304) AudioInput() (int, error) { return d.getInt("audio_input") }

/*SetAudioInput switches audio only to input n.*/
func (d *DVS304) SetAudioInput(n int) error { return d.Set("audio_input", n) }

/*VideoInputFormat returns the configured format of input n.*/
func (d *DVS304) VideoInputFormat(n int) (InputVideoFormat, error) {
	v, err := d.GetIndex("video_input_format", n)
	if err != nil {
		return InputFormatNone, err
	}
	return v.(InputVideoFormat), nil
}

/*SetVideoInputFormat configures the format of input n. The device answers
with an error line when the input cannot carry the format, or when SDI is
requested on a model without it.*/
func (d *DVS304) SetVideoInputFormat(n int, f InputVideoFormat) error {
	return d.SetIndex("video_input_format", n, f)
}

/*OutputRate returns the output resolution and refresh rate.*/
func (d *DVS304) OutputRate() (OutputRate, error) {
	v, err := d.Get("output_rate")
	if err != nil {
		return OutputRate{}, err
	}
	return v.(OutputRate), nil
}

/*SetOutputRate configures the output resolution and refresh rate.*/
func (d *DVS304) SetOutputRate(r OutputRate) error { return d.Set("output_rate", r) }

/*TestPattern returns the configured test pattern.*/
func (d *DVS304) TestPattern() (TestPattern, error) {
	v, err := d.Get("test_pattern")
	if err != nil {
		return TestPatternOff, err
	}
	return v.(TestPattern), nil
}

/*SetTestPattern selects a test pattern.*/
func (d *DVS304) SetTestPattern(p TestPattern) error { return d.Set("test_pattern", p) }

/*Freeze returns whether the image is frozen.*/
func (d *DVS304) Freeze() (bool, error) { return d.getBool("freeze") }

/*SetFreeze freezes or unfreezes the image.*/
func (d *DVS304) SetFreeze(on bool) error { return d.Set("freeze", on) }

/*VideoMute returns whether the selected input is blanked.*/
func (d *DVS304) VideoMute() (bool, error) { return d.getBool("video_mute") }

/*SetVideoMute blanks or unblanks the selected input.*/
func (d *DVS304) SetVideoMute(on bool) error { return d.Set("video_mute", on) }

/*Color returns the color level.*/
func (d *DVS304) Color() (int, error) { return d.getInt("color") }

/*SetColor sets the color level.*/
func (d *DVS304) SetColor(n int) error { return d.Set("color", n) }

/*Brightness returns the brightness level.*/
func (d *DVS304) Brightness() (int, error) { return d.getInt("brightness") }

/*SetBrightness sets the brightness level.*/
func (d *DVS304) SetBrightness(n int) error { return d.Set("brightness", n) }

/*Contrast returns the contrast level.*/
func (d *DVS304) Contrast() (int, error) { return d.getInt("contrast") }

/*SetContrast sets the contrast level.*/
func (d *DVS304) SetContrast(n int) error { return d.Set("contrast", n) }

/*Status retrieves and decodes the information query.*/
func (d *DVS304) Status() (*DVS304Status, error) {
	line, err := d.MakeRequest("I", d.timeout)
	if err != nil {
		return nil, err
	}
	if line == "" {
		return nil, errors.Wrap(ErrNoReply, "status query")
	}
	return parseDVS304Status(line)
}

/*Temperature reads the device temperature in degrees Celsius.*/
func (d *DVS304) Temperature() (float64, error) {
	line, err := d.MakeRequest("20S", d.timeout)
	if err != nil {
		return 0, err
	}
	if line == "" {
		return 0, errors.Wrap(ErrNoReply, "temperature query")
	}
	t, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "dvs304: bad temperature reply %q", line)
	}
	return t, nil
}

func init() {
	for _, pn := range []PartNumber{
		PartNumberDVS304,
		PartNumberDVS304A,
		PartNumberDVS304D,
		PartNumberDVS304AD,
		PartNumberDVS304DVI,
		PartNumberDVS304DVIA,
		PartNumberDVS304DVID,
		PartNumberDVS304DVIAD,
	} {
		RegisterModel(pn, NewDVS304)
	}
}
