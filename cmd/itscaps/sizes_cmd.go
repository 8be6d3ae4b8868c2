// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/google/subcommands"

	"go.chromium.org/itscaps/caps"
	"go.chromium.org/itscaps/internal/logging"
	"go.chromium.org/itscaps/objects"
	"go.chromium.org/itscaps/props"
)

// sizesCmd implements subcommands.Command to list output sizes of a format.
type sizesCmd struct {
	format string
	json   bool
	stdout io.Writer
}

var _ = subcommands.Command(&sizesCmd{})

func newSizesCmd(stdout io.Writer) *sizesCmd {
	return &sizesCmd{stdout: stdout}
}

func (*sizesCmd) Name() string     { return "sizes" }
func (*sizesCmd) Synopsis() string { return "print output sizes a camera supports for a format" }
func (*sizesCmd) Usage() string {
	return `Usage: sizes [flag]... <props>

Description:
    Print the output sizes advertised in the camera's stream configuration
    map for one format, largest first, one WIDTHxHEIGHT per line.

Flag:
`
}

func (sc *sizesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&sc.format, "format", string(objects.FormatYUV), "output format: raw, raw10, raw12, yuv, jpg or jpeg")
	f.BoolVar(&sc.json, "json", false, "print sizes as JSON")
}

func (sc *sizesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		logging.Info(ctx, "Need exactly one properties file.\n\n"+sc.Usage())
		return subcommands.ExitUsageError
	}
	format := objects.Format(sc.format)
	if _, ok := format.Code(); !ok {
		logging.Infof(ctx, "Unknown format %q", sc.format)
		return subcommands.ExitUsageError
	}

	p, err := props.Load(f.Arg(0))
	if err != nil {
		logging.Info(ctx, "Failed to load properties: ", err)
		return subcommands.ExitFailure
	}
	if l, ok := p.Int(caps.HardwareLevelKey); ok {
		logging.Debugf(ctx, "Camera hardware level is %v", caps.HardwareLevel(l))
	}

	sizes := objects.AvailableOutputSizes(format, p)
	if sc.json {
		if sizes == nil {
			sizes = []objects.Size{}
		}
		if err := json.NewEncoder(sc.stdout).Encode(sizes); err != nil {
			logging.Info(ctx, "Failed to write sizes: ", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	for _, s := range sizes {
		fmt.Fprintln(sc.stdout, s)
	}
	return subcommands.ExitSuccess
}
