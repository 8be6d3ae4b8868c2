// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package capdep declares the camera capabilities an ITS test depends on and
// checks them against a camera before the test runs.
//
// A test lists its dependencies with D:
//
//	deps := capdep.D(capdep.ManualSensor(), capdep.Expr("raw16 || raw10"))
//
// and the runner calls Check with the camera's Features. An empty list of
// reasons means the test should run; otherwise the reasons explain the skip.
package capdep

import (
	"fmt"

	"go.chromium.org/itscaps/caps"
	"go.chromium.org/itscaps/errors"
	"go.chromium.org/itscaps/overrides"
	"go.chromium.org/itscaps/props"
)

// Features describes the camera under test.
type Features struct {
	// Props holds the camera characteristics.
	Props props.Properties
	// Overrides forces the value of some predicates. It may be nil.
	Overrides map[string]overrides.State
}

// Condition is one capability requirement.
// Exactly one of Satisfied and Err is non-nil.
type Condition struct {
	// Satisfied reports whether f meets the condition. When it does not, the
	// returned string explains why. An error means the condition could not
	// be evaluated at all.
	Satisfied func(f *Features) (bool, string, error)

	// Err is reported by Deps.Validate if the condition could not be built.
	Err error
}

// Deps holds conditions that must all be satisfied to run a test.
// The zero value has no conditions and is always satisfied.
type Deps struct {
	conds []Condition
}

// D returns dependencies made of conds.
func D(conds ...Condition) Deps {
	return Deps{conds: conds}
}

// Merge returns dependencies satisfied iff both d1 and d2 are.
func Merge(d1, d2 Deps) Deps {
	var conds []Condition
	conds = append(conds, d1.conds...)
	conds = append(conds, d2.conds...)
	return Deps{conds: conds}
}

// Validate returns the first error from a condition that failed to build.
func (d Deps) Validate() error {
	for _, c := range d.conds {
		if c.Err != nil {
			return c.Err
		}
	}
	return nil
}

// Check evaluates every condition against f. It returns the reasons for
// which a test should be skipped; no reasons means the test should run.
func (d Deps) Check(f *Features) (reasons []string, err error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	for i, c := range d.conds {
		if c.Satisfied == nil {
			return nil, errors.Errorf("condition %d has no Satisfied function", i)
		}
		ok, reason, err := c.Satisfied(f)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to evaluate condition %d", i)
		}
		if !ok {
			reasons = append(reasons, reason)
		}
	}
	return reasons, nil
}

func satisfied() (bool, string, error) {
	return true, "", nil
}

func unsatisfied(reason string) (bool, string, error) {
	return false, reason, nil
}

func withError(err error) (bool, string, error) {
	return false, "", err
}

// evaluate returns the value of the named predicate for f, honoring
// overrides, and a reason when the value is false.
func evaluate(f *Features, pr caps.Predicate) (bool, string) {
	if st, ok := f.Overrides[pr.Name]; ok {
		switch st {
		case overrides.Yes:
			return true, ""
		case overrides.Disable:
			return false, fmt.Sprintf("%s temporarily disabled by override", pr.Name)
		default:
			return false, fmt.Sprintf("%s forced off by override", pr.Name)
		}
	}
	if pr.Func(f.Props) {
		return true, ""
	}
	return false, fmt.Sprintf("camera lacks %s (%s)", pr.Name, pr.Desc)
}

// Value is the evaluated state of one predicate. Reason explains an
// unsatisfied value.
type Value struct {
	Name      string `json:"name"`
	Satisfied bool   `json:"satisfied"`
	Reason    string `json:"reason,omitempty"`
}

// Evaluate evaluates every predicate in caps.All against f, in that order.
func Evaluate(f *Features) []Value {
	var vals []Value
	for _, pr := range caps.All() {
		ok, reason := evaluate(f, pr)
		vals = append(vals, Value{Name: pr.Name, Satisfied: ok, Reason: reason})
	}
	return vals
}
