// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Tree - type to hold the root node of a tree
type Tree[K, V any] struct {
	root    *Node[K, V]
	count   int
	compare func(a, b K) int
}

// New - create an initially empty tree ordered by the natural
// ordering of K
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc - create an initially empty tree ordered by compare, which
// must return a negative number when a < b, zero when a == b and a
// positive number when a > b
func NewFunc[K, V any](compare func(a, b K) int) *Tree[K, V] {
	if nil == compare {
		panic("avl: nil compare function")
	}
	return &Tree[K, V]{
		root:    nil,
		count:   0,
		compare: compare,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Size - number of nodes currently in the tree
func (tree *Tree[K, V]) Size() int {
	return tree.count
}

// Root - return the root node of the tree
//
// only for structural inspection: the node's accessors are read only
// and the tree keeps ownership
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// Clear - remove every node from the tree
func (tree *Tree[K, V]) Clear() {
	releaseAll(tree.root)
	tree.root = nil
	tree.count = 0
}

// post-order teardown of a sub-tree
func releaseAll[K, V any](p *Node[K, V]) {
	if nil == p {
		return
	}
	releaseAll(p.left)
	releaseAll(p.right)
	release(p)
}

// link x into the place old occupied below p, x may be nil
func (tree *Tree[K, V]) replaceChild(p *Node[K, V], old *Node[K, V], x *Node[K, V]) {
	switch {
	case nil == p:
		if tree.root != old {
			panic("avl: corrupt tree: root mismatch")
		}
		tree.root = x
	case p.left == old:
		p.left = x
	case p.right == old:
		p.right = x
	default:
		panic("avl: corrupt tree: not a child of its parent")
	}
	if nil != x {
		x.parent = p
	}
}
