// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package dievent

import (
	"fmt"
	"io"
)

// ConsoleLogger is a container event logger that attempts to write
// human-readable messages to the console.
//
// Use this during development.
type ConsoleLogger struct {
	W io.Writer
}

var _ Logger = (*ConsoleLogger)(nil)

func (l *ConsoleLogger) logf(msg string, args ...interface{}) {
	fmt.Fprintf(l.W, "[di] "+msg+"\n", args...)
}

// LogEvent logs the given event to the provided writer.
func (l *ConsoleLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *Registered:
		if e.Err != nil {
			l.logf("ERROR\t\tFailed to register %v: %v", e.TypeName, e.Err)
			return
		}
		l.logf("REGISTER\t%v <= %v (%v)", e.TypeName, e.Strategy, scopeName(e.Singleton))
	case *Aliased:
		if e.ReplacedName != "" {
			l.logf("ALIAS\t\t%v => %v (was %v)", e.BaseName, e.TargetName, e.ReplacedName)
		} else {
			l.logf("ALIAS\t\t%v => %v", e.BaseName, e.TargetName)
		}
	case *Constructing:
		l.logf("BUILD\t\t%v", e.TypeName)
	case *Constructed:
		if e.Err != nil {
			l.logf("ERROR\t\tFailed to build %v: %v", e.TypeName, e.Err)
		} else {
			l.logf("BUILT\t\t%v in %v", e.TypeName, e.Runtime)
		}
	case *Reused:
		l.logf("REUSE\t\t%v", e.TypeName)
	case *Closed:
		if e.Err != nil {
			l.logf("ERROR\t\tFailed to close %v: %v", e.TypeName, e.Err)
		} else {
			l.logf("CLOSE\t\t%v", e.TypeName)
		}
	}
}

func scopeName(singleton bool) string {
	if singleton {
		return "singleton"
	}
	return "prototype"
}
