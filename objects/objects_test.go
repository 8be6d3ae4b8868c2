// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package objects

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"go.chromium.org/itscaps/props"
)

func streamConfig(format int, w, h int, input bool) props.Properties {
	return props.Properties{"format": format, "width": w, "height": h, "input": input}
}

func TestAvailableOutputSizes(t *testing.T) {
	p := props.Properties{
		StreamConfigMapKey: props.Properties{
			StreamConfigsKey: []interface{}{
				streamConfig(0x23, 640, 480, false),
				streamConfig(0x20, 4032, 3024, false),
				streamConfig(0x23, 1920, 1080, false),
				streamConfig(0x23, 1920, 1440, false),
				streamConfig(0x23, 4032, 3024, true),
				streamConfig(0x100, 4032, 3024, false),
				streamConfig(0x25, 4032, 3024, false),
				"garbage",
			},
		},
	}

	for _, tc := range []struct {
		format Format
		want   []Size
	}{
		{FormatYUV, []Size{{1920, 1440}, {1920, 1080}, {640, 480}}},
		{FormatRaw, []Size{{4032, 3024}}},
		{FormatRaw10, []Size{{4032, 3024}}},
		{FormatRaw12, nil},
		{FormatJPG, []Size{{4032, 3024}}},
		{FormatJPEG, []Size{{4032, 3024}}},
		{Format("priv"), nil},
	} {
		got := AvailableOutputSizes(tc.format, p)
		if diff := cmp.Diff(got, tc.want); diff != "" {
			t.Errorf("AvailableOutputSizes(%q) mismatch (-got +want):\n%s", tc.format, diff)
		}
	}
}

func TestAvailableOutputSizesInputFlag(t *testing.T) {
	p := props.Properties{
		StreamConfigMapKey: props.Properties{
			StreamConfigsKey: []interface{}{
				props.Properties{"format": 0x20, "width": 4000, "height": 3000, "input": 0},
				props.Properties{"format": 0x20, "width": 3000, "height": 2000, "input": 1},
				props.Properties{"format": 0x20, "width": 2000, "height": 1500},
				props.Properties{"format": 0x20, "width": 1000, "height": 750, "input": "no"},
				props.Properties{"format": 0x20, "width": 640, "height": 480, "input": false},
			},
		},
	}
	got := AvailableOutputSizes(FormatRaw, p)
	want := []Size{{4000, 3000}, {2000, 1500}, {640, 480}}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("AvailableOutputSizes(raw) mismatch (-got +want):\n%s", diff)
	}
}

func TestAvailableOutputSizesMissing(t *testing.T) {
	for _, p := range []props.Properties{
		{},
		{StreamConfigMapKey: 1},
		{StreamConfigMapKey: props.Properties{}},
		{StreamConfigMapKey: props.Properties{StreamConfigsKey: "none"}},
	} {
		if got := AvailableOutputSizes(FormatRaw, p); len(got) != 0 {
			t.Errorf("AvailableOutputSizes(raw, %v) = %v; want none", p, got)
		}
	}
}

func TestSizeString(t *testing.T) {
	if s := (Size{4032, 3024}).String(); s != "4032x3024" {
		t.Errorf("String() = %q; want %q", s, "4032x3024")
	}
}
