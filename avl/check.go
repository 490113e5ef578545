// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// Check - run all consistency checks, return the first failure
func (tree *Tree[K, V]) Check() error {
	checks := []func() error{
		tree.CheckUp,
		tree.CheckHeights,
		tree.CheckBalance,
		tree.CheckOrder,
		tree.CheckCount,
	}
	for _, check := range checks {
		if err := check(); nil != err {
			return err
		}
	}
	return nil
}

// CheckUp - check the up pointers for consistency
func (tree *Tree[K, V]) CheckUp() error {
	return checkUp(tree.root, nil)
}

func checkUp[K, V any](p *Node[K, V], up *Node[K, V]) error {
	if nil == p {
		return nil
	}
	if p.parent != up {
		return fmt.Errorf("%w: key: %v", fault.ErrParentLink, p.key)
	}
	if err := checkUp(p.left, p); nil != err {
		return err
	}
	return checkUp(p.right, p)
}

// CheckHeights - check every stored height against a recomputation
func (tree *Tree[K, V]) CheckHeights() error {
	_, err := checkHeights(tree.root)
	return err
}

// returns the computed height so each sub-tree is only visited once
func checkHeights[K, V any](p *Node[K, V]) (int, error) {
	if nil == p {
		return -1, nil
	}
	lh, err := checkHeights(p.left)
	if nil != err {
		return 0, err
	}
	rh, err := checkHeights(p.right)
	if nil != err {
		return 0, err
	}
	h := 1 + max(lh, rh)
	if h != p.height {
		return 0, fmt.Errorf("%w: key: %v  stored: %d  actual: %d", fault.ErrHeightMismatch, p.key, p.height, h)
	}
	return h, nil
}

// CheckBalance - check that no node has sub-tree heights differing
// by more than one
func (tree *Tree[K, V]) CheckBalance() error {
	var err error
	walk(tree.root, func(p *Node[K, V]) {
		if nil == err && !balanced(p) {
			err = fmt.Errorf("%w: key: %v  balance: %+d", fault.ErrUnbalanced, p.key, balanceFactor(p))
		}
	})
	return err
}

// CheckOrder - check the in-order keys are strictly ascending
func (tree *Tree[K, V]) CheckOrder() error {
	var err error
	var previous *Node[K, V]
	walk(tree.root, func(p *Node[K, V]) {
		if nil == err && nil != previous && tree.compare(previous.key, p.key) >= 0 {
			err = fmt.Errorf("%w: key: %v  after: %v", fault.ErrKeyOrder, p.key, previous.key)
		}
		previous = p
	})
	return err
}

// CheckCount - check the node count matches the size
func (tree *Tree[K, V]) CheckCount() error {
	n := 0
	walk(tree.root, func(*Node[K, V]) {
		n += 1
	})
	if n != tree.count {
		return fmt.Errorf("%w: nodes: %d  size: %d", fault.ErrCountMismatch, n, tree.count)
	}
	return nil
}
