// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package overrides reads lab-maintained capability overrides.
//
// Overrides live in a directory of YAML files named "NN-description.yaml".
// Files are applied in lexical order, so later files win. Each file is a list
// of directives naming a predicate from the caps package:
//
//	- raw16               # force raw16 to true
//	- no flash            # force flash to false
//	- disable raw10       # temporarily turn raw10 off
//
// Overrides let a lab work around a camera whose characteristics are known to
// be wrong without changing the tests that consult them.
package overrides

import (
	"os"
	"path/filepath"
	"regexp"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v2"

	"go.chromium.org/itscaps/caps"
	"go.chromium.org/itscaps/errors"
)

// State is the value an override forces on a predicate.
type State int

const (
	// Yes forces the predicate to be satisfied.
	Yes State = iota
	// No forces the predicate to be unsatisfied.
	No
	// Disable is functionally equivalent to No but marks a temporary override.
	Disable
)

func (s State) String() string {
	switch s {
	case Yes:
		return "Yes"
	case No:
		return "No"
	default:
		return "Disable"
	}
}

var (
	fileRegexp      = regexp.MustCompile(`^[0-9]+-.*\.ya?ml$`)
	directiveRegexp = regexp.MustCompile(`^(?:(disable|no)\s+)?([a-z0-9_]+)$`)
)

// Read reads all override files in dir. A missing directory means no
// overrides.
func Read(dir string) (map[string]State, error) {
	ents, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return map[string]State{}, nil
	} else if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", dir)
	}

	states := make(map[string]State)
	// os.ReadDir returns entries sorted by filename.
	for _, ent := range ents {
		if ent.IsDir() || !fileRegexp.MatchString(ent.Name()) {
			continue
		}
		path := filepath.Join(dir, ent.Name())
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", path)
		}
		if err := apply(b, states); err != nil {
			return nil, errors.Wrapf(err, "failed to apply %s", path)
		}
	}
	return states, nil
}

// Parse applies the directives in a single YAML document to an empty set of
// overrides.
func Parse(b []byte) (map[string]State, error) {
	states := make(map[string]State)
	if err := apply(b, states); err != nil {
		return nil, err
	}
	return states, nil
}

func apply(b []byte, states map[string]State) error {
	var directives []string
	if err := yaml.Unmarshal(b, &directives); err != nil {
		return errors.Wrap(err, "malformed directive list")
	}
	for _, d := range directives {
		if err := applyDirective(d, states); err != nil {
			return err
		}
	}
	return nil
}

// applyDirective applies one directive. A directive is:
//   - a bare predicate name to force it to Yes
//   - "no <name>" to force it to No
//   - "disable <name>" to force it to Disable
func applyDirective(directive string, states map[string]State) error {
	m := directiveRegexp.FindStringSubmatch(directive)
	if m == nil {
		return errors.Errorf("invalid directive %q", directive)
	}
	name := m[2]
	if _, ok := caps.Lookup(name); !ok {
		return errors.Errorf("unknown capability %q", name)
	}
	switch m[1] {
	case "no":
		states[name] = No
	case "disable":
		states[name] = Disable
	default:
		states[name] = Yes
	}
	return nil
}

// Names returns the overridden predicate names in sorted order.
func Names(states map[string]State) []string {
	names := maps.Keys(states)
	slices.Sort(names)
	return names
}
