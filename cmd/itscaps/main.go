// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package main implements the itscaps executable, used by ITS harness scripts
// to query camera capabilities.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"golang.org/x/crypto/ssh/terminal"

	"go.chromium.org/itscaps/internal/logging"
)

// Version is the version info of this command. It is filled in at build time.
var Version = "<unknown>"

// newLogger creates a logger writing to stderr so that stdout stays
// machine-readable.
func newLogger(verbose, logTime bool) logging.Logger {
	level := logging.LevelInfo
	if verbose {
		level = logging.LevelDebug
	}
	return logging.NewSinkLogger(level, logTime, logging.NewWriterSink(os.Stderr))
}

// doMain implements the main body of the program. It's a separate function so
// that its deferred functions run before os.Exit.
func doMain() int {
	aligned := terminal.IsTerminal(int(os.Stdout.Fd()))

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(newListCmd(os.Stdout, aligned), "")
	subcommands.Register(newCheckCmd(os.Stdout), "")
	subcommands.Register(newSizesCmd(os.Stdout), "")

	version := flag.Bool("version", false, "print version and exit")
	verbose := flag.Bool("verbose", false, "use verbose logging")
	logTime := flag.Bool("logtime", false, "include date/time headers in logs")
	flag.Parse()

	if *version {
		fmt.Printf("itscaps version %s\n", Version)
		return 0
	}

	ctx := logging.AttachLogger(context.Background(), newLogger(*verbose, *logTime))
	return int(subcommands.Execute(ctx))
}

func main() {
	os.Exit(doMain())
}
