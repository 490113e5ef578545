// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scenario

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// operation names
const (
	OpInsert = "insert"
	OpRemove = "remove"
	OpSearch = "search"
)

// CheckMode - when to run the tree consistency checks
type CheckMode string

// check modes
const (
	CheckEvery CheckMode = "every" // after each operation
	CheckEnd   CheckMode = "end"   // once after the whole run
	CheckNone  CheckMode = "none"
)

// Operation - a single step
//
// for a search a non-empty Value is the expected result
type Operation struct {
	Op    string `gluamapper:"op" json:"op"`
	Key   int    `gluamapper:"key" json:"key"`
	Value string `gluamapper:"value" json:"value"`
}

// String - text form used in log messages
func (op Operation) String() string {
	if "" == op.Value {
		return fmt.Sprintf("%s(%d)", op.Op, op.Key)
	}
	return fmt.Sprintf("%s(%d, %q)", op.Op, op.Key, op.Value)
}

// Random - parameters for the random phase
//
// Total keys in [0, KeyRange) are inserted, then the first Deletions
// of them are removed again
type Random struct {
	Total     int `gluamapper:"total" json:"total"`
	Deletions int `gluamapper:"deletions" json:"deletions"`
	KeyRange  int `gluamapper:"key_range" json:"key_range"`
}

// Configuration - a complete scenario
type Configuration struct {
	Seed       uint64      `gluamapper:"seed" json:"seed"`
	Check      CheckMode   `gluamapper:"check" json:"check"`
	Operations []Operation `gluamapper:"operations" json:"operations"`
	Random     Random      `gluamapper:"random" json:"random"`
}

// Validate - check the configuration and fill in defaults
func (config *Configuration) Validate() error {
	switch config.Check {
	case "":
		config.Check = CheckEvery
	case CheckEvery, CheckEnd, CheckNone:
	default:
		return fmt.Errorf("%w: %q", fault.ErrInvalidCheckMode, config.Check)
	}

	for i, op := range config.Operations {
		switch op.Op {
		case OpInsert, OpRemove, OpSearch:
		default:
			return fmt.Errorf("%w: operations[%d]: %q", fault.ErrUnknownOperation, i+1, op.Op)
		}
	}

	r := config.Random
	if r.Total < 0 || r.Deletions < 0 {
		return fmt.Errorf("%w: total: %d  deletions: %d", fault.ErrInvalidCount, r.Total, r.Deletions)
	}
	if r.Deletions > r.Total {
		return fmt.Errorf("%w: total: %d  deletions: %d", fault.ErrDeletionsExceedTotal, r.Total, r.Deletions)
	}
	if r.Total > 0 && r.KeyRange <= 0 {
		return fmt.Errorf("%w: %d", fault.ErrInvalidKeyRange, r.KeyRange)
	}
	return nil
}
