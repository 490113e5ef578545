// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
)

// First - return the node with the lowest key value
func (tree *Tree[K, V]) First() *Node[K, V] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[K, V]) first() *Node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *Tree[K, V]) Last() *Node[K, V] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node[K, V]) last() *Node[K, V] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (p *Node[K, V]) Next() *Node[K, V] {
	return successor(p)
}

// Prev - given a node, return the node with the next lowest key value
// or nil if no more nodes
func (p *Node[K, V]) Prev() *Node[K, V] {
	if nil != p.left {
		return p.left.last()
	}
	for up := p.parent; nil != up; p, up = up, up.parent {
		if p == up.right {
			return up
		}
	}
	return nil
}

// All - in-order sequence of key/value pairs
//
// the tree must not be modified while the sequence is being ranged
// over
func (tree *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := tree.First(); nil != p; p = p.Next() {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// Keys - all keys in ascending order
func (tree *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, tree.count)
	walk(tree.root, func(p *Node[K, V]) {
		keys = append(keys, p.key)
	})
	return keys
}

// Values - all values in ascending order of their keys
func (tree *Tree[K, V]) Values() []V {
	values := make([]V, 0, tree.count)
	walk(tree.root, func(p *Node[K, V]) {
		values = append(values, p.value)
	})
	return values
}

// internal: in-order traversal
func walk[K, V any](p *Node[K, V], visit func(*Node[K, V])) {
	if nil == p {
		return
	}
	walk(p.left, visit)
	visit(p)
	walk(p.right, visit)
}
