// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"strings"

	"go.chromium.org/itscaps/errors"
	"go.chromium.org/itscaps/internal/logging"
	"go.chromium.org/itscaps/overrides"
	"go.chromium.org/itscaps/props"
	"go.chromium.org/itscaps/testing/capdep"
)

// defaultOverridesDir is where lab machines install capability overrides.
const defaultOverridesDir = "/usr/local/etc/itscaps/overrides"

// featureFlags holds flags shared by commands that evaluate capabilities.
type featureFlags struct {
	overridesDir string
}

func (ff *featureFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&ff.overridesDir, "overrides", defaultOverridesDir, "directory of capability override files; empty to disable")
}

// readOverrides reads the configured overrides.
func (ff *featureFlags) readOverrides(ctx context.Context) (map[string]overrides.State, error) {
	if ff.overridesDir == "" {
		return nil, nil
	}
	states, err := overrides.Read(ff.overridesDir)
	if err != nil {
		return nil, err
	}
	if len(states) > 0 {
		var desc []string
		for _, name := range overrides.Names(states) {
			desc = append(desc, name+"="+states[name].String())
		}
		logging.Infof(ctx, "Applying overrides from %s: %s", ff.overridesDir, strings.Join(desc, ", "))
	}
	return states, nil
}

// loadFeatures loads the properties at path and pairs them with ovr.
func loadFeatures(ctx context.Context, path string, ovr map[string]overrides.State) (*capdep.Features, error) {
	logging.Debug(ctx, "Loading camera properties from ", path)
	p, err := props.Load(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load camera properties")
	}
	return &capdep.Features{Props: p, Overrides: ovr}, nil
}
