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
	"text/tabwriter"

	"code.cloudfoundry.org/clock"
	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"

	"go.chromium.org/itscaps/internal/logging"
	"go.chromium.org/itscaps/testing/capdep"
)

// cameraResult holds the predicate values of one properties file.
type cameraResult struct {
	Path   string         `json:"path"`
	Values []capdep.Value `json:"values"`
}

// listCmd implements subcommands.Command to print every predicate value.
type listCmd struct {
	json     bool
	features featureFlags
	aligned  bool        // pad columns; used when stdout is a terminal
	stdout   io.Writer   // where results are written
	clk      clock.Clock // measures evaluation time
}

var _ = subcommands.Command(&listCmd{})

func newListCmd(stdout io.Writer, aligned bool) *listCmd {
	return &listCmd{
		aligned: aligned,
		stdout:  stdout,
		clk:     clock.NewClock(),
	}
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "print all capabilities of cameras" }
func (*listCmd) Usage() string {
	return `Usage: list [flag]... <props>...

Description:
    Evaluate every capability predicate for each camera properties file and
    print the results. Properties files are JSON as dumped by the ITS device
    service, or YAML if their name ends in .yaml or .yml.

Flag:
`
}

func (lc *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&lc.json, "json", false, "print results as JSON")
	lc.features.SetFlags(f)
}

func (lc *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	paths := f.Args()
	if len(paths) == 0 {
		logging.Info(ctx, "Missing properties file.\n\n"+lc.Usage())
		return subcommands.ExitUsageError
	}

	ovr, err := lc.features.readOverrides(ctx)
	if err != nil {
		logging.Info(ctx, "Failed to read overrides: ", err)
		return subcommands.ExitFailure
	}

	start := lc.clk.Now()
	results := make([]cameraResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			feat, err := loadFeatures(gctx, path, ovr)
			if err != nil {
				return err
			}
			results[i] = cameraResult{Path: path, Values: capdep.Evaluate(feat)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logging.Info(ctx, "Failed to evaluate capabilities: ", err)
		return subcommands.ExitFailure
	}
	logging.Debugf(ctx, "Evaluated %d camera(s) in %v", len(paths), lc.clk.Since(start))

	if err := lc.print(results); err != nil {
		logging.Info(ctx, "Failed to write results: ", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// print writes results to lc.stdout.
func (lc *listCmd) print(results []cameraResult) error {
	if lc.json {
		enc := json.NewEncoder(lc.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	w := lc.stdout
	var tw *tabwriter.Writer
	if lc.aligned {
		tw = tabwriter.NewWriter(lc.stdout, 0, 8, 2, ' ', 0)
		w = tw
	}
	for _, r := range results {
		for _, v := range r.Values {
			line := fmt.Sprintf("%s\t%s\t%v", r.Path, v.Name, v.Satisfied)
			if v.Reason != "" {
				line += "\t" + v.Reason
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	if tw != nil {
		return tw.Flush()
	}
	return nil
}
