// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package capdep

import (
	"strings"

	"github.com/Knetic/govaluate"

	"go.chromium.org/itscaps/caps"
	"go.chromium.org/itscaps/errors"
)

// Cap returns a condition satisfied iff the predicate called name holds.
// See caps.All for the available names.
func Cap(name string) Condition {
	pr, ok := caps.Lookup(name)
	if !ok {
		return Condition{Err: errors.Errorf("unknown capability %q", name)}
	}
	return Condition{Satisfied: func(f *Features) (bool, string, error) {
		if ok, reason := evaluate(f, pr); !ok {
			return unsatisfied(reason)
		}
		return satisfied()
	}}
}

// Full requires a FULL hardware level camera.
func Full() Condition { return Cap("full") }

// Limited requires a LIMITED hardware level camera.
func Limited() Condition { return Cap("limited") }

// Legacy requires a LEGACY hardware level camera.
func Legacy() Condition { return Cap("legacy") }

// ManualSensor requires MANUAL_SENSOR controls.
func ManualSensor() Condition { return Cap("manual_sensor") }

// ManualPostProc requires MANUAL_POST_PROCESSING controls.
func ManualPostProc() Condition { return Cap("manual_post_proc") }

// Raw requires the RAW capability.
func Raw() Condition { return Cap("raw") }

// Raw16 requires a RAW16 output stream.
func Raw16() Condition { return Cap("raw16") }

// Raw10 requires a RAW10 output stream.
func Raw10() Condition { return Cap("raw10") }

// SensorFusion requires camera timestamps comparable with motion sensors.
func SensorFusion() Condition { return Cap("sensor_fusion") }

// Read3A requires 3A results to be readable.
func Read3A() Condition { return Cap("read_3a") }

// ComputeTargetExposure requires target exposure computation support.
func ComputeTargetExposure() Condition { return Cap("compute_target_exposure") }

// FreeformCrop requires freeform cropping.
func FreeformCrop() Condition { return Cap("freeform_crop") }

// Flash requires flash control.
func Flash() Condition { return Cap("flash") }

// Expr returns a condition satisfied iff the boolean expression s holds.
//
// s combines predicate names with &&, || and ! and may use parentheses, e.g.
// "manual_sensor && (raw16 || raw10)". Unknown names and expressions that do
// not yield a boolean are reported through Condition.Err.
func Expr(s string) Condition {
	e, err := govaluate.NewEvaluableExpression(s)
	if err != nil {
		return Condition{Err: errors.Wrapf(err, "bad capability expression %q", s)}
	}
	var preds []caps.Predicate
	seen := make(map[string]bool)
	for _, v := range e.Vars() {
		pr, ok := caps.Lookup(v)
		if !ok {
			return Condition{Err: errors.Errorf("unknown capability %q in expression %q", v, s)}
		}
		if !seen[v] {
			seen[v] = true
			preds = append(preds, pr)
		}
	}
	// A trial run with every predicate false rejects non-boolean expressions.
	trial := make(map[string]interface{}, len(preds))
	for _, pr := range preds {
		trial[pr.Name] = false
	}
	if res, err := e.Evaluate(trial); err != nil {
		return Condition{Err: errors.Wrapf(err, "bad capability expression %q", s)}
	} else if _, ok := res.(bool); !ok {
		return Condition{Err: errors.Errorf("capability expression %q yields %v, not a boolean", s, res)}
	}

	return Condition{Satisfied: func(f *Features) (bool, string, error) {
		params := make(map[string]interface{}, len(preds))
		var reasons []string
		for _, pr := range preds {
			ok, reason := evaluate(f, pr)
			params[pr.Name] = ok
			if !ok {
				reasons = append(reasons, reason)
			}
		}
		res, err := e.Evaluate(params)
		if err != nil {
			return withError(errors.Wrapf(err, "failed to evaluate %q", s))
		}
		b, ok := res.(bool)
		if !ok {
			return withError(errors.Errorf("expression %q evaluated to %v, not a boolean", s, res))
		}
		if !b {
			msg := "expression " + s + " not satisfied"
			if len(reasons) > 0 {
				msg += ": " + strings.Join(reasons, "; ")
			}
			return unsatisfied(msg)
		}
		return satisfied()
	}}
}
