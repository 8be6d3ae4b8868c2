// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package overrides

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"go.chromium.org/itscaps/testutil"
)

func TestRead(t *testing.T) {
	td := testutil.TempDir(t)

	const (
		base     = "- raw16\n- raw10\n- flash"
		overlaid = "- no raw16\n- disable flash"
		later    = "- raw16"
	)
	if err := testutil.WriteFiles(td, map[string]string{
		"10-base.yaml":     base,
		"20-overlaid.yaml": overlaid,
		"30-later.yml":     later,
		"README":           "- not yaml at all: [",
		"notes.yaml":       "- no raw10",
		"40-empty.yaml":    "",
	}); err != nil {
		t.Fatal(err)
	}

	states, err := Read(td)
	if err != nil {
		t.Fatalf("Read(%q) failed: %v", td, err)
	}
	want := map[string]State{
		"raw16": Yes,
		"raw10": Yes,
		"flash": Disable,
	}
	if diff := cmp.Diff(states, want); diff != "" {
		t.Error("Read mismatch (-got +want):\n", diff)
	}
	if diff := cmp.Diff(Names(states), []string{"flash", "raw10", "raw16"}); diff != "" {
		t.Error("Names mismatch (-got +want):\n", diff)
	}
}

func TestReadMissingDir(t *testing.T) {
	td := testutil.TempDir(t)
	states, err := Read(filepath.Join(td, "missing"))
	if err != nil {
		t.Fatal("Read of a missing directory failed: ", err)
	}
	if len(states) != 0 {
		t.Errorf("Read of a missing directory = %v; want empty", states)
	}
}

func TestReadErrors(t *testing.T) {
	for _, content := range []string{
		"- autofocus",
		"- maybe raw",
		"- NO raw",
		"raw: true",
	} {
		td := testutil.TempDir(t)
		if err := testutil.WriteFiles(td, map[string]string{"10-bad.yaml": content}); err != nil {
			t.Fatal(err)
		}
		if states, err := Read(td); err == nil {
			t.Errorf("Read with %q = %v; want error", content, states)
		}
	}
}

func TestParse(t *testing.T) {
	states, err := Parse([]byte("- no sensor_fusion\n- read_3a\n- disable freeform_crop"))
	if err != nil {
		t.Fatal("Parse failed: ", err)
	}
	want := map[string]State{
		"sensor_fusion": No,
		"read_3a":       Yes,
		"freeform_crop": Disable,
	}
	if diff := cmp.Diff(states, want); diff != "" {
		t.Error("Parse mismatch (-got +want):\n", diff)
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{Yes: "Yes", No: "No", Disable: "Disable"} {
		if got := s.String(); got != want {
			t.Errorf("%d.String() = %q; want %q", int(s), got, want)
		}
	}
}
