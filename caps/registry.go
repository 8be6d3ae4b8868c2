// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package caps

import "go.chromium.org/itscaps/props"

// Predicate is a named capability check.
type Predicate struct {
	// Name is the identifier used by harness scripts and expressions.
	Name string
	// Desc is a one-line description.
	Desc string
	// Func evaluates the predicate.
	Func func(p props.Properties) bool
}

var predicates = []Predicate{
	{"full", "FULL hardware level", Full},
	{"limited", "LIMITED hardware level", Limited},
	{"legacy", "LEGACY hardware level", Legacy},
	{"manual_sensor", "MANUAL_SENSOR controls", ManualSensor},
	{"manual_post_proc", "MANUAL_POST_PROCESSING controls", ManualPostProc},
	{"raw", "RAW capability", Raw},
	{"raw16", "RAW16 output", Raw16},
	{"raw10", "RAW10 output", Raw10},
	{"sensor_fusion", "camera and motion sensor timestamps share a time base", SensorFusion},
	{"read_3a", "3A results can be read out", Read3A},
	{"compute_target_exposure", "target exposure can be computed", ComputeTargetExposure},
	{"freeform_crop", "freeform cropping", FreeformCrop},
	{"flash", "flash control", Flash},
}

var byName = func() map[string]Predicate {
	m := make(map[string]Predicate, len(predicates))
	for _, pr := range predicates {
		m[pr.Name] = pr
	}
	return m
}()

// All returns every predicate in a stable order.
func All() []Predicate {
	return append([]Predicate(nil), predicates...)
}

// Lookup returns the predicate called name.
func Lookup(name string) (Predicate, bool) {
	pr, ok := byName[name]
	return pr, ok
}

// Evaluate runs every predicate against p and returns the results by name.
func Evaluate(p props.Properties) map[string]bool {
	res := make(map[string]bool, len(predicates))
	for _, pr := range predicates {
		res[pr.Name] = pr.Func(p)
	}
	return res
}
