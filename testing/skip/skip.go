// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package skip signals that an ITS test cannot run on the current camera.
//
// The ITS harness runs every test as a separate process and classifies it by
// exit status: 0 is a pass, ExitSkipped (101) is a skip, and any other status
// is a failure. Unless implements that contract. Code that wants to decide
// for itself can use Check and act on the returned Outcome.
package skip

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"runtime"
	"strings"

	"github.com/google/subcommands"
)

// ExitSkipped is the process exit status reserved for skipped tests.
const ExitSkipped subcommands.ExitStatus = 101

// Notice is printed to stdout before exiting with ExitSkipped.
const Notice = "Test skipped"

// Outcome is the result of a test as seen by the harness.
type Outcome int

// Outcomes.
const (
	Pass Outcome = iota
	Fail
	Skip
)

func (o Outcome) String() string {
	switch o {
	case Pass:
		return "PASS"
	case Fail:
		return "FAIL"
	case Skip:
		return "SKIP"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// ExitStatus returns the process exit status reporting o.
func (o Outcome) ExitStatus() subcommands.ExitStatus {
	switch o {
	case Pass:
		return subcommands.ExitSuccess
	case Skip:
		return ExitSkipped
	default:
		return subcommands.ExitFailure
	}
}

// Classify maps a test process exit status back to an Outcome.
func Classify(status int) Outcome {
	switch subcommands.ExitStatus(status) {
	case subcommands.ExitSuccess:
		return Pass
	case ExitSkipped:
		return Skip
	default:
		return Fail
	}
}

// Check returns Pass if cond holds and Skip otherwise.
func Check(cond bool) Outcome {
	if cond {
		return Pass
	}
	return Skip
}

// These are replaced in unit tests.
var (
	stdout io.Writer = os.Stdout
	exit             = os.Exit
)

// Unless ends the process with ExitSkipped after printing Notice if cond is
// false. It returns normally if cond is true.
func Unless(cond bool) {
	if o := Check(cond); o == Skip {
		Exit(o)
	}
}

// Exit terminates the process with the exit status of o. A Skip also prints
// Notice so that logs show why the test stopped.
func Exit(o Outcome) {
	if o == Skip {
		fmt.Fprintln(stdout, Notice)
	}
	exit(int(o.ExitStatus()))
}

// Requirement is a condition a Go test needs to run.
type Requirement func() bool

type skipper interface {
	Helper()
	Skipf(format string, args ...interface{})
}

// Requires skips t unless every requirement holds. The skip message names the
// first unmet requirement.
func Requires(t skipper, reqs ...Requirement) {
	t.Helper()
	for _, r := range reqs {
		if !r() {
			t.Skipf("unmatched requirement %s", funcName(r))
			return
		}
	}
}

func funcName(r Requirement) string {
	name := runtime.FuncForPC(reflect.ValueOf(r).Pointer()).Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
