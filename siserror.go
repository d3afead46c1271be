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
	"strconv"
)

/*SISError is a device-reported error, decoded from a reply line of the form
"E<code>". The code vocabulary is shared across SIS device families.*/
type SISError struct {
	Code int
	Desc string
}

/*Error conforms to the error interface*/
func (e *SISError) Error() string {
	if e.Desc == "" {
		return fmt.Sprintf("sis: device error E%d", e.Code)
	}
	return fmt.Sprintf("sis: E%d %s", e.Code, e.Desc)
}

/*Named errors for the documented SIS error codes. ErrorFromCode returns
these same values, so errors.Is works on anything a Session surfaces.*/
var (
	ErrInvalidInputNumber      = &SISError{1, "Invalid input number"}
	ErrInvalidSwitchAttempt    = &SISError{6, "Invalid switch attempt in this mode"}
	ErrInvalidFunctionNumber   = &SISError{9, "Invalid function number"}
	ErrInvalidCommand          = &SISError{10, "Invalid command"}
	ErrInvalidPresetNumber     = &SISError{11, "Invalid preset number"}
	ErrInvalidPortNumber       = &SISError{12, "Invalid port number"}
	ErrInvalidParameter        = &SISError{13, "Invalid parameter"}
	ErrInvalidConfiguration    = &SISError{14, "Not valid for this configuration"}
	ErrInvalidForSignalType    = &SISError{17, "Invalid command for signal type"}
	ErrBusy                    = &SISError{22, "Busy"}
	ErrPrivilegeViolation      = &SISError{24, "Privilege violation"}
	ErrDeviceNotPresent        = &SISError{25, "Device not present"}
	ErrTooManyConnections      = &SISError{26, "Maximum number of connections exceeded"}
	ErrInvalidEventNumber      = &SISError{27, "Invalid event number"}
	ErrBadFileName             = &SISError{28, "Bad filename/File not found"}
	ErrHardwareFailure         = &SISError{30, "Hardware failure"}
	ErrBreakPortPassthrough    = &SISError{31, "Attempt to break port passthrough when not set"}
	ErrIncorrectVChipPassword  = &SISError{32, "Incorrect V-chip password"}
	ErrBadFileTypeForLogo      = &SISError{33, "Bad file type for logo"}
)

var sisErrors = map[int]*SISError{}

func init() {
	for _, e := range []*SISError{
		ErrInvalidInputNumber,
		ErrInvalidSwitchAttempt,
		ErrInvalidFunctionNumber,
		ErrInvalidCommand,
		ErrInvalidPresetNumber,
		ErrInvalidPortNumber,
		ErrInvalidParameter,
		ErrInvalidConfiguration,
		ErrInvalidForSignalType,
		ErrBusy,
		ErrPrivilegeViolation,
		ErrDeviceNotPresent,
		ErrTooManyConnections,
		ErrInvalidEventNumber,
		ErrBadFileName,
		ErrHardwareFailure,
		ErrBreakPortPassthrough,
		ErrIncorrectVChipPassword,
		ErrBadFileTypeForLogo,
	} {
		sisErrors[e.Code] = e
	}
}

/*ErrorFromCode maps the numeric suffix of an error line (e.g. "13" from
"E13") to a *SISError. Unknown codes yield a generic SISError carrying the
raw code; the lookup itself never fails.*/
func ErrorFromCode(code string) *SISError {
	n, err := strconv.Atoi(code)
	if err != nil {
		return &SISError{Code: 0, Desc: code}
	}
	if e, ok := sisErrors[n]; ok {
		return e
	}
	return &SISError{Code: n}
}
