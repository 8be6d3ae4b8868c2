// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package loggingtest records logs in memory so that command tests can
// assert on what a command told the user.
package loggingtest

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"go.chromium.org/itscaps/internal/logging"
)

// Entry is one recorded log.
type Entry struct {
	Level logging.Level
	Msg   string
}

func (e Entry) String() string {
	return fmt.Sprintf("[%s] %s", e.Level, e.Msg)
}

// Logger is a logging.Logger that records every entry and mirrors it to the
// test log.
type Logger struct {
	t testing.TB

	mu      sync.Mutex
	entries []Entry
}

// NewLogger returns a Logger reporting to t.
func NewLogger(t testing.TB) *Logger {
	return &Logger{t: t}
}

// Log records an entry.
func (l *Logger) Log(level logging.Level, ts time.Time, msg string) {
	l.t.Helper()
	l.mu.Lock()
	defer l.mu.Unlock()

	l.t.Logf("[%s] %s", level, msg)
	l.entries = append(l.entries, Entry{Level: level, Msg: msg})
}

// Entries returns the entries recorded so far.
func (l *Logger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry(nil), l.entries...)
}

// Messages returns the messages recorded at exactly level.
func (l *Logger) Messages(level logging.Level) []string {
	var msgs []string
	for _, e := range l.Entries() {
		if e.Level == level {
			msgs = append(msgs, e.Msg)
		}
	}
	return msgs
}

// Contains reports whether a message at level contains substr.
func (l *Logger) Contains(level logging.Level, substr string) bool {
	for _, m := range l.Messages(level) {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}

// String returns all entries, one per line.
func (l *Logger) String() string {
	var lines []string
	for _, e := range l.Entries() {
		lines = append(lines, e.String())
	}
	return strings.Join(lines, "\n")
}
