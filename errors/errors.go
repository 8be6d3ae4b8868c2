// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package errors constructs errors that carry a stack trace.
//
// Use New or Errorf for fresh errors and Wrap or Wrapf to add context:
//
//	errors.New("stream configuration map is missing")
//	errors.Wrapf(err, "failed to load properties from %s", path)
//
// Formatting an error with "%+v" prints the whole chain, each link followed by
// the location where it was created. Errors returned here work with the
// standard errors.Is and errors.As through Unwrap.
package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"go.chromium.org/itscaps/errors/stack"
)

// E is the error type produced by this package. It may be embedded in
// custom error types that want a message, a trace and an optional cause.
type E struct {
	msg   string
	stk   stack.Stack
	cause error
}

// Error implements the error interface.
func (e *E) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

// Unwrap returns the wrapped error, if any.
func (e *E) Unwrap() error {
	return e.cause
}

// Format implements fmt.Formatter. "%+v" prints the chain with traces.
func (e *E) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		io.WriteString(s, formatChain(e))
		return
	}
	io.WriteString(s, e.Error())
}

func formatChain(err error) string {
	var chain []string
	for err != nil {
		e, ok := err.(*E)
		if !ok {
			chain = append(chain, err.Error()+"\n\tat ???")
			break
		}
		chain = append(chain, e.msg+"\n"+e.stk.String())
		err = e.cause
	}
	return strings.Join(chain, "\n")
}

// New returns an error with msg, recording the caller's location.
func New(msg string) error {
	return &E{msg: msg, stk: stack.New(1)}
}

// Errorf is like New but formats its message with fmt.Sprintf.
func Errorf(format string, args ...interface{}) error {
	return &E{msg: fmt.Sprintf(format, args...), stk: stack.New(1)}
}

// Wrap returns an error with msg that wraps cause. A nil cause makes this
// equivalent to New.
func Wrap(cause error, msg string) error {
	return &E{msg: msg, stk: stack.New(1), cause: cause}
}

// Wrapf is like Wrap but formats its message with fmt.Sprintf.
func Wrapf(cause error, format string, args ...interface{}) error {
	return &E{msg: fmt.Sprintf(format, args...), stk: stack.New(1), cause: cause}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}
