// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/scenario"
)

func TestConsoleReporter(t *testing.T) {
	b := bytes.Buffer{}
	r := &consoleReporter{w: &b}

	op := scenario.Operation{Op: scenario.OpInsert, Key: 7}
	r.Applied(op, true)
	r.Applied(op, false)
	assert.Equal(t, 2, r.steps, "steps")
	assert.Empty(t, b.String(), "quiet output")

	r.verbose = true
	r.Applied(scenario.Operation{Op: scenario.OpRemove, Key: 7}, true)
	assert.Contains(t, b.String(), "     3: remove(7)", "verbose output")
	assert.Contains(t, b.String(), "true\n", "verbose result")

	b.Reset()
	r.Violation(op, fault.ErrUnbalanced)
	assert.Equal(t, "     3: insert(7)  VIOLATION: node is unbalanced\n", b.String(), "violation")
}
