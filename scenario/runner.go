// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scenario

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// Reporter - receives the outcome of each step
type Reporter interface {
	// ok is true when an insert added, a remove deleted or a search
	// found its key
	Applied(op Operation, ok bool)

	// the tree failed a consistency check after op
	Violation(op Operation, err error)
}

// Statistics - running totals for a scenario
type Statistics struct {
	Inserted   counter.Counter
	Duplicates counter.Counter
	Removed    counter.Counter
	Missing    counter.Counter
	Found      counter.Counter
	NotFound   counter.Counter
	Checks     counter.Counter
}

// Runner - applies a scenario to its own tree
type Runner struct {
	config   Configuration
	reporter Reporter
	log      *logger.L
	tree     *avl.Tree[int, string]
	stats    Statistics
}

// New - create a runner for a validated copy of config
//
// reporter may be nil
func New(config Configuration, reporter Reporter, log *logger.L) (*Runner, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	if err := config.Validate(); nil != err {
		return nil, err
	}
	return &Runner{
		config:   config,
		reporter: reporter,
		log:      log,
		tree:     avl.New[int, string](),
	}, nil
}

// Tree - the tree being exercised
func (r *Runner) Tree() *avl.Tree[int, string] {
	return r.tree
}

// Statistics - totals so far
func (r *Runner) Statistics() *Statistics {
	return &r.stats
}

// Run - apply the configured operations then the random phase
//
// stops at the first consistency failure or search mismatch
func (r *Runner) Run() error {
	r.log.Infof("operations: %d  random: %+v  check: %s", len(r.config.Operations), r.config.Random, r.config.Check)

	last := Operation{}
	for _, op := range r.config.Operations {
		if _, err := r.Apply(op); nil != err {
			return err
		}
		last = op
	}

	if r.config.Random.Total > 0 {
		op, err := r.random()
		if nil != err {
			return err
		}
		last = op
	}

	if CheckEnd == r.config.Check {
		if err := r.verify(last); nil != err {
			return err
		}
	}

	r.log.Infof("finished: size: %d  height: %d  inserted: %d  removed: %d",
		r.tree.Size(), r.tree.Height(), r.stats.Inserted.Uint64(), r.stats.Removed.Uint64())
	return nil
}

// Apply - perform a single operation
func (r *Runner) Apply(op Operation) (bool, error) {
	ok := false
	switch op.Op {
	case OpInsert:
		value := op.Value
		if "" == value {
			value = defaultValue(op.Key)
		}
		ok = r.tree.Insert(op.Key, value)
		tally(ok, &r.stats.Inserted, &r.stats.Duplicates)

	case OpRemove:
		ok = r.tree.Remove(op.Key)
		tally(ok, &r.stats.Removed, &r.stats.Missing)

	case OpSearch:
		value, err := r.tree.Search(op.Key)
		ok = nil == err
		tally(ok, &r.stats.Found, &r.stats.NotFound)

		// an expected value also expects the key to be present
		if "" != op.Value && (!ok || value != op.Value) {
			actual := fmt.Sprintf("%q", value)
			if !ok {
				actual = "absent"
			}
			err := fmt.Errorf("%w: %s  actual: %s", fault.ErrSearchMismatch, op, actual)
			r.log.Errorf("%s", err)
			return ok, err
		}

	default:
		return false, fmt.Errorf("%w: %q", fault.ErrUnknownOperation, op.Op)
	}

	r.log.Debugf("%s → %t", op, ok)
	if nil != r.reporter {
		r.reporter.Applied(op, ok)
	}

	if CheckEvery == r.config.Check {
		if err := r.verify(op); nil != err {
			return ok, err
		}
	}
	return ok, nil
}

func tally(ok bool, yes *counter.Counter, no *counter.Counter) {
	if ok {
		yes.Increment()
	} else {
		no.Increment()
	}
}

// run the tree checks, op is the step that preceded them
func (r *Runner) verify(op Operation) error {
	r.stats.Checks.Increment()
	err := r.tree.Check()
	if nil == err {
		return nil
	}
	r.log.Criticalf("after: %s  error: %s", op, err)
	if nil != r.reporter {
		r.reporter.Violation(op, err)
	}
	return fmt.Errorf("after %s: %w", op, err)
}

// insert random keys then delete the first few, returns the final step
func (r *Runner) random() (Operation, error) {
	seed := r.config.Seed
	if 0 == seed {
		seed = uint64(time.Now().UnixNano())
	}
	r.log.Infof("random seed: %d", seed)
	rng := rand.New(rand.NewPCG(seed, seed))

	keys := make([]int, r.config.Random.Total)
	for i := range keys {
		keys[i] = rng.IntN(r.config.Random.KeyRange)
	}

	op := Operation{}
	for _, key := range keys {
		op = Operation{Op: OpInsert, Key: key}
		if _, err := r.Apply(op); nil != err {
			return op, err
		}
	}
	for _, key := range keys[:r.config.Random.Deletions] {
		op = Operation{Op: OpRemove, Key: key}
		if _, err := r.Apply(op); nil != err {
			return op, err
		}
	}
	return op, nil
}

func defaultValue(key int) string {
	return fmt.Sprintf("data:%d", key)
}
