// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/google/subcommands"

	"go.chromium.org/itscaps/internal/logging"
	"go.chromium.org/itscaps/testing/capdep"
	"go.chromium.org/itscaps/testing/skip"
)

// checkCmd implements subcommands.Command to gate a test on capabilities.
type checkCmd struct {
	features featureFlags
	stdout   io.Writer
}

var _ = subcommands.Command(&checkCmd{})

func newCheckCmd(stdout io.Writer) *checkCmd {
	return &checkCmd{stdout: stdout}
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "exit 101 unless a camera has the given capabilities" }
func (*checkCmd) Usage() string {
	return `Usage: check [flag]... <props> <expr>...

Description:
    Evaluate capability expressions against a camera properties file. All
    expressions must hold for the camera.

    Exit status is 0 if they do. Otherwise "Test skipped" is printed and the
    exit status is 101, which ITS harnesses report as a skip. Any other
    non-zero status is an error.

Expression:
    Predicate names combined with &&, || and !, with parentheses, e.g.

        $ itscaps check props.json 'manual_sensor && (raw16 || raw10)'

    Predicates: ` + strings.Join(predicateNames(), ", ") + `

Flag:
`
}

func (cc *checkCmd) SetFlags(f *flag.FlagSet) {
	cc.features.SetFlags(f)
}

func (cc *checkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		logging.Info(ctx, "Missing properties file or expression.\n\n"+cc.Usage())
		return subcommands.ExitUsageError
	}
	path, exprs := f.Arg(0), f.Args()[1:]

	var conds []capdep.Condition
	for _, e := range exprs {
		conds = append(conds, capdep.Expr(e))
	}
	deps := capdep.D(conds...)
	if err := deps.Validate(); err != nil {
		logging.Info(ctx, "Invalid expression: ", err)
		return subcommands.ExitUsageError
	}

	ovr, err := cc.features.readOverrides(ctx)
	if err != nil {
		logging.Info(ctx, "Failed to read overrides: ", err)
		return subcommands.ExitFailure
	}
	feat, err := loadFeatures(ctx, path, ovr)
	if err != nil {
		logging.Info(ctx, "Failed to load features: ", err)
		return subcommands.ExitFailure
	}

	reasons, err := deps.Check(feat)
	if err != nil {
		logging.Info(ctx, "Failed to check capabilities: ", err)
		return subcommands.ExitFailure
	}
	for _, r := range reasons {
		logging.Info(ctx, "Unmet: ", r)
	}

	o := skip.Check(len(reasons) == 0)
	if o == skip.Skip {
		fmt.Fprintln(cc.stdout, skip.Notice)
	}
	return o.ExitStatus()
}
