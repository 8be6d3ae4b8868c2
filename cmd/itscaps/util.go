// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import "go.chromium.org/itscaps/caps"

// predicateNames returns the names accepted in capability expressions.
func predicateNames() []string {
	var names []string
	for _, pr := range caps.All() {
		names = append(names, pr.Name)
	}
	return names
}
