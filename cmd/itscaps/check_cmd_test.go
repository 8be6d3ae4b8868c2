// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"

	"go.chromium.org/itscaps/internal/logging"
	"go.chromium.org/itscaps/testing/skip"
)

func TestCheckCmd(t *testing.T) {
	td := writeProps(t)
	back := filepath.Join(td, "back.json")
	front := filepath.Join(td, "front.yaml")
	overridesFlag := "-overrides=" + filepath.Join(td, "overrides")

	for _, tc := range []struct {
		args   []string
		want   subcommands.ExitStatus
		stdout string
	}{
		{[]string{noOverrides(td), back, "full"}, subcommands.ExitSuccess, ""},
		{[]string{noOverrides(td), back, "manual_sensor && (raw16 || raw10)", "flash"}, subcommands.ExitSuccess, ""},
		{[]string{noOverrides(td), back, "raw"}, skip.ExitSkipped, "Test skipped\n"},
		{[]string{noOverrides(td), front, "full", "flash"}, skip.ExitSkipped, "Test skipped\n"},
		{[]string{overridesFlag, back, "flash"}, skip.ExitSkipped, "Test skipped\n"},
		{[]string{noOverrides(td), back}, subcommands.ExitUsageError, ""},
		{[]string{noOverrides(td), back, "autofocus"}, subcommands.ExitUsageError, ""},
		{[]string{noOverrides(td), back, "1"}, subcommands.ExitUsageError, ""},
		{[]string{noOverrides(td), back, "full", "raw + 2"}, subcommands.ExitUsageError, ""},
		{[]string{noOverrides(td), filepath.Join(td, "missing.json"), "full"}, subcommands.ExitFailure, ""},
	} {
		var stdout bytes.Buffer
		status, _ := execute(t, newCheckCmd(&stdout), tc.args)
		if status != tc.want {
			t.Errorf("check %v returned %v; want %v", tc.args, status, tc.want)
		}
		if stdout.String() != tc.stdout {
			t.Errorf("check %v printed %q; want %q", tc.args, stdout.String(), tc.stdout)
		}
	}
}

func TestCheckCmdLogsReasons(t *testing.T) {
	td := writeProps(t)
	front := filepath.Join(td, "front.yaml")

	var stdout bytes.Buffer
	status, logger := execute(t, newCheckCmd(&stdout), []string{noOverrides(td), front, "flash"})
	if status != skip.ExitSkipped {
		t.Fatalf("check returned %v; want %v", status, skip.ExitSkipped)
	}
	if want := "Unmet: expression flash not satisfied: camera lacks flash (flash control)"; !logger.Contains(logging.LevelInfo, want) {
		t.Errorf("Logs lack %q:\n%s", want, logger.String())
	}
}

func TestCheckCmdUsageListsPredicates(t *testing.T) {
	u := newCheckCmd(nil).Usage()
	for _, name := range predicateNames() {
		if !strings.Contains(u, name) {
			t.Errorf("Usage does not mention %q", name)
		}
	}
}
