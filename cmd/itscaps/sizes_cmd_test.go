// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
)

func TestSizesCmd(t *testing.T) {
	td := writeProps(t)
	back := filepath.Join(td, "back.json")
	front := filepath.Join(td, "front.yaml")

	for _, tc := range []struct {
		args   []string
		want   subcommands.ExitStatus
		stdout string
	}{
		{[]string{back}, subcommands.ExitSuccess, "1920x1080\n640x480\n"},
		{[]string{"-format=raw", back}, subcommands.ExitSuccess, "4032x3024\n"},
		{[]string{"-format=raw10", back}, subcommands.ExitSuccess, ""},
		{[]string{"-format=raw", "-json", back}, subcommands.ExitSuccess, `[{"width":4032,"height":3024}]` + "\n"},
		{[]string{"-format=raw", "-json", front}, subcommands.ExitSuccess, "[]\n"},
		{[]string{"-format=priv", back}, subcommands.ExitUsageError, ""},
		{[]string{}, subcommands.ExitUsageError, ""},
		{[]string{filepath.Join(td, "missing.json")}, subcommands.ExitFailure, ""},
	} {
		var stdout bytes.Buffer
		status, _ := execute(t, newSizesCmd(&stdout), tc.args)
		if status != tc.want {
			t.Errorf("sizes %v returned %v; want %v", tc.args, status, tc.want)
		}
		if stdout.String() != tc.stdout {
			t.Errorf("sizes %v printed %q; want %q", tc.args, stdout.String(), tc.stdout)
		}
	}
}
