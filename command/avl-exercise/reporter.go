// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/scenario"
)

// prints each configured step, random steps are too numerous unless
// verbose is set
type consoleReporter struct {
	w       io.Writer
	verbose bool
	steps   int
}

func (c *consoleReporter) Applied(op scenario.Operation, ok bool) {
	c.steps += 1
	if c.verbose {
		fmt.Fprintf(c.w, "%6d: %-32s %t\n", c.steps, op, ok)
	}
}

func (c *consoleReporter) Violation(op scenario.Operation, err error) {
	fmt.Fprintf(c.w, "%6d: %s  VIOLATION: %s\n", c.steps, op, err)
	fault.Criticalf("step: %d  after: %s  error: %s", c.steps, op, err)
}
