// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"

	"go.chromium.org/itscaps/internal/logging"
	"go.chromium.org/itscaps/internal/logging/loggingtest"
	"go.chromium.org/itscaps/testutil"
)

const (
	fullProps = `{
  "android.info.supportedHardwareLevel": 1,
  "android.request.availableCapabilities": [0, 1, 2],
  "android.flash.info.available": 1,
  "android.scaler.streamConfigurationMap": {
    "availableStreamConfigurations": [
      {"format": 32, "width": 4032, "height": 3024, "input": false},
      {"format": 35, "width": 640, "height": 480, "input": false},
      {"format": 35, "width": 1920, "height": 1080, "input": false}
    ]
  }
}`
	legacyProps = `
android.info.supportedHardwareLevel: 2
android.flash.info.available: 0
`
)

// writeProps writes the test properties files to a temporary directory and
// returns the directory.
func writeProps(t *testing.T) string {
	t.Helper()
	td := testutil.TempDir(t)
	if err := testutil.WriteFiles(td, map[string]string{
		"back.json":           fullProps,
		"front.yaml":          legacyProps,
		"overrides/10-a.yaml": "- no flash",
	}); err != nil {
		t.Fatal(err)
	}
	return td
}

// execute parses args into cmd's flags and runs it with a test logger.
func execute(t *testing.T, cmd subcommands.Command, args []string) (subcommands.ExitStatus, *loggingtest.Logger) {
	t.Helper()
	flags := flag.NewFlagSet("", flag.ContinueOnError)
	cmd.SetFlags(flags)
	if err := flags.Parse(args); err != nil {
		t.Fatal(err)
	}
	logger := loggingtest.NewLogger(t)
	ctx := logging.AttachLogger(context.Background(), logger)
	return cmd.Execute(ctx, flags), logger
}

func noOverrides(td string) string {
	return "-overrides=" + filepath.Join(td, "none")
}
