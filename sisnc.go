//+build ignore

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

/*
sisnc is a tiny interactive SIS probe: it autodetects whatever device is on
the other end of the dial string, prints its vocabulary, and then forwards
stdin lines as raw requests.

	go run sisnc.go serial:///dev/ttyUSB0:9600
	go run sisnc.go tcp://10.0.1.20:23
*/
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kingpin"
	"github.com/sistrum/sistrum"
)

var (
	app     = kingpin.New("sisnc", "Interactive probe for Extron SIS devices")
	dial    = app.Arg("dial", "Dial string").Default("tcp://localhost:23").String()
	verbose = app.Flag("verbose", "Log protocol traffic").Short('v').Bool()
)

func main() {
	_ = kingpin.MustParse(app.Parse(os.Args[1:]))

	opts := []sistrum.Option{}
	if *verbose {
		opts = append(opts, sistrum.WithLogger(sistrum.NewWriterLogger(os.Stderr)))
	}

	s, err := sistrum.Dial(context.Background(), 2*time.Second, *dial, opts...)
	if err != nil {
		panic(err)
	}
	defer s.Close()

	if pn, err := s.PartNumber(); err == nil {
		fmt.Println("part number:", pn)
	}
	if fw, err := s.FirmwareVersion(); err == nil {
		fmt.Println("firmware:", fw)
	}
	fmt.Println(s.Vocabulary())

	s.AddEventListener("*", func(ev sistrum.Event) bool {
		fmt.Println("event:", ev)
		return false
	})

	stdin := bufio.NewReader(os.Stdin)
	for {
		line, err := stdin.ReadString('\n')
		if err != nil {
			return
		}
		reply, err := s.MakeRequest(strings.TrimRight(line, "\r\n"), 2*time.Second)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Println(reply)
	}
}
