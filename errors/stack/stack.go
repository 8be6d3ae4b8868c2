// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package stack records where an error was created. Callers should use the
// errors package instead.
package stack

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// maxDepth is the number of frames kept in a trace.
const maxDepth = 8

// ellipsis is the last line of a trace cut at maxDepth.
const ellipsis = "\t..."

// Stack is a snapshot of program counters.
type Stack []uintptr

// Frame is one resolved call site.
type Frame struct {
	Function string // package-qualified function name
	File     string // base name of the source file
	Line     int
}

func (f Frame) String() string {
	return fmt.Sprintf("%s (%s:%d)", f.Function, f.File, f.Line)
}

// New records the current call stack. skip is the number of frames to omit;
// skip=0 makes the caller of New the innermost frame.
func New(skip int) Stack {
	pc := make([]uintptr, maxDepth+1)
	return Stack(pc[:runtime.Callers(skip+2, pc)])
}

// Frames resolves s, innermost first. truncated is true if frames beyond
// maxDepth were dropped.
func (s Stack) Frames() (frames []Frame, truncated bool) {
	if len(s) == 0 {
		return nil, false
	}
	cf := runtime.CallersFrames(s)
	for {
		f, more := cf.Next()
		if len(frames) == maxDepth {
			return frames, true
		}
		frames = append(frames, Frame{Function: f.Function, File: filepath.Base(f.File), Line: f.Line})
		if !more {
			return frames, false
		}
	}
}

// String renders s one frame per line as "\tat pkg.Func (file.go:line)".
func (s Stack) String() string {
	frames, truncated := s.Frames()
	lines := make([]string, 0, len(frames)+1)
	for _, f := range frames {
		lines = append(lines, "\tat "+f.String())
	}
	if truncated {
		lines = append(lines, ellipsis)
	}
	return strings.Join(lines, "\n")
}
