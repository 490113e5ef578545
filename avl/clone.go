// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Clone - an independent deep copy of the tree
func (tree *Tree[K, V]) Clone() *Tree[K, V] {
	return &Tree[K, V]{
		root:    copyNode(tree.root),
		count:   tree.count,
		compare: tree.compare,
	}
}

// Assign - replace the contents of tree with a deep copy of src
func (tree *Tree[K, V]) Assign(src *Tree[K, V]) {
	if tree == src {
		return
	}
	tree.Clear()
	tree.root = copyNode(src.root)
	tree.count = src.count
	tree.compare = src.compare
}

// internal: pre-order copy of a sub-tree
//
// heights are taken from the source as they are already correct
func copyNode[K, V any](p *Node[K, V]) *Node[K, V] {
	if nil == p {
		return nil
	}

	n := newNode(p.key, p.value)
	n.height = p.height

	n.left = copyNode(p.left)
	n.right = copyNode(p.right)

	if nil != n.left {
		n.left.parent = n
	}
	if nil != n.right {
		n.right.parent = n
	}
	return n
}
