// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package objects enumerates the output streams a camera advertises in its
// stream configuration map.
package objects

import (
	"fmt"
	"sort"

	"go.chromium.org/itscaps/props"
)

const (
	// StreamConfigMapKey holds the stream configuration map object.
	StreamConfigMapKey = "android.scaler.streamConfigurationMap"
	// StreamConfigsKey is the list of configurations inside the map.
	StreamConfigsKey = "availableStreamConfigurations"
)

// Format is an output format name as used by ITS tests.
type Format string

// Supported formats.
const (
	FormatRaw   Format = "raw" // RAW_SENSOR, 16 bits per pixel
	FormatRaw10 Format = "raw10"
	FormatRaw12 Format = "raw12"
	FormatYUV   Format = "yuv"
	FormatJPG   Format = "jpg"
	FormatJPEG  Format = "jpeg"
)

// formatCodes maps format names to android.graphics.ImageFormat codes.
var formatCodes = map[Format]int64{
	FormatRaw:   0x20,
	FormatRaw10: 0x25,
	FormatRaw12: 0x26,
	FormatYUV:   0x23,
	FormatJPG:   0x100,
	FormatJPEG:  0x100,
}

// Code returns the ImageFormat code of f.
func (f Format) Code() (int64, bool) {
	c, ok := formatCodes[f]
	return c, ok
}

// Size is an output resolution in pixels.
type Size struct {
	Width  int64 `json:"width"`
	Height int64 `json:"height"`
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// AvailableOutputSizes returns the output sizes p advertises for f, largest
// first. Input configurations are excluded; a configuration without an input
// flag is an output. An unknown format or a missing
// or malformed stream configuration map yields no sizes.
func AvailableOutputSizes(f Format, p props.Properties) []Size {
	code, ok := f.Code()
	if !ok {
		return nil
	}
	scm, ok := p.Map(StreamConfigMapKey)
	if !ok {
		return nil
	}
	cfgs, ok := scm.List(StreamConfigsKey)
	if !ok {
		return nil
	}

	var sizes []Size
	for _, c := range cfgs {
		cfg, ok := asProps(c)
		if !ok || !cfg.HasInt("format", code) {
			continue
		}
		if isInput(cfg) {
			continue
		}
		w, wok := cfg.Int("width")
		h, hok := cfg.Int("height")
		if !wok || !hok {
			continue
		}
		sizes = append(sizes, Size{Width: w, Height: h})
	}
	sort.Slice(sizes, func(i, j int) bool {
		if sizes[i].Width != sizes[j].Width {
			return sizes[i].Width > sizes[j].Width
		}
		return sizes[i].Height > sizes[j].Height
	})
	return sizes
}

// isInput reports whether cfg describes an input stream. The flag may be a
// boolean or a 0/1 integer; any other value is treated as an input so that
// the configuration is skipped.
func isInput(cfg props.Properties) bool {
	if !cfg.Has("input") {
		return false
	}
	n, ok := cfg.Int("input")
	return !ok || n != 0
}

func asProps(v interface{}) (props.Properties, bool) {
	switch m := v.(type) {
	case props.Properties:
		return m, true
	case map[string]interface{}:
		return props.Properties(m), true
	}
	return nil, false
}
