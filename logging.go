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
	"io"
)

/*Logger is the logging interface a Session writes protocol traces to. It is
injected via WithLogger; there is no package-level logger and nothing is
logged unless the caller asks for it.*/
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}

/*NopLogger returns a Logger that discards everything. It is the default.*/
func NopLogger() Logger { return nopLogger{} }

type writerLogger struct{ w io.Writer }

/*NewWriterLogger returns a Logger that writes one prefixed line per message
to w. Handy for debugging a misbehaving device from a test or a CLI.*/
func NewWriterLogger(w io.Writer) Logger { return &writerLogger{w: w} }

func (l *writerLogger) emit(level, format string, args []interface{}) {
	fmt.Fprintf(l.w, level+": "+format+"\n", args...)
}

func (l *writerLogger) Debugf(format string, args ...interface{}) { l.emit("debug", format, args) }
func (l *writerLogger) Infof(format string, args ...interface{})  { l.emit("info", format, args) }
func (l *writerLogger) Warnf(format string, args ...interface{})  { l.emit("warn", format, args) }
