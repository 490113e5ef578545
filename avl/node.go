// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
//
// fields are only changed by the tree, the accessors below are read
// only views for structural inspection
type Node[K, V any] struct {
	parent *Node[K, V] // points to parent node, nil for root
	left   *Node[K, V] // left sub-tree
	right  *Node[K, V] // right sub-tree
	key    K           // key part for ordering
	value  V           // value part for data storage
	height int         // 0 for a leaf
}

// allocate a new leaf node
func newNode[K, V any](key K, value V) *Node[K, V] {
	return &Node[K, V]{
		key:    key,
		value:  value,
		height: 0,
	}
}

// clear all links so a detached node holds nothing alive
func release[K, V any](p *Node[K, V]) {
	var k K
	var v V
	p.parent = nil
	p.left = nil
	p.right = nil
	p.key = k
	p.value = v
	p.height = 0
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// Height - stored height of the node, a leaf is zero
func (p *Node[K, V]) Height() int {
	return p.height
}

// Left - left child or nil
func (p *Node[K, V]) Left() *Node[K, V] {
	return p.left
}

// Right - right child or nil
func (p *Node[K, V]) Right() *Node[K, V] {
	return p.right
}

// Parent - return parent node of a node
func (p *Node[K, V]) Parent() *Node[K, V] {
	return p.parent
}

// Depth - get the depth of a node, the root is zero
func (p *Node[K, V]) Depth() uint {
	count := uint(0)
	for parent := p.parent; nil != parent; parent = parent.parent {
		count += 1
	}
	return count
}
