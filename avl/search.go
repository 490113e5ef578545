// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Search - find the value stored for key
//
// returns fault.ErrKeyNotFound if the key is not in the tree
func (tree *Tree[K, V]) Search(key K) (V, error) {
	p := tree.getNode(key)
	if nil == p {
		var zero V
		return zero, fault.ErrKeyNotFound
	}
	return p.value, nil
}

// Lookup - find the value stored for key, ok is false if absent
func (tree *Tree[K, V]) Lookup(key K) (value V, ok bool) {
	p := tree.getNode(key)
	if nil == p {
		return
	}
	return p.value, true
}

// Contains - true if key is in the tree
func (tree *Tree[K, V]) Contains(key K) bool {
	return nil != tree.getNode(key)
}

// internal: descend from the root, nil if key is not present
func (tree *Tree[K, V]) getNode(key K) *Node[K, V] {
	p := tree.root
	for nil != p {
		switch c := tree.compare(key, p.key); {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return p
		}
	}
	return nil
}
