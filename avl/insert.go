// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree
//
// returns false and leaves the stored value alone if the key is
// already present
func (tree *Tree[K, V]) Insert(key K, value V) bool {
	if nil != tree.getNode(key) {
		return false
	}

	p := newNode(key, value)
	tree.attach(p)
	tree.count += 1

	fixHeights(p.parent)
	tree.rebalanceOnInsert(p)

	return true
}

// internal: plain binary tree insert of a new leaf
func (tree *Tree[K, V]) attach(p *Node[K, V]) {
	if nil == tree.root {
		tree.root = p
		return
	}

	up := tree.root
	for {
		// equal keys would go left, but Insert never lets one through
		if tree.compare(p.key, up.key) <= 0 {
			if nil == up.left {
				up.left = p
				break
			}
			up = up.left
		} else {
			if nil == up.right {
				up.right = p
				break
			}
			up = up.right
		}
	}
	p.parent = up
}

// internal: restore balance after p was added as a leaf
//
// at most one ancestor can be out of balance after an insert, and one
// single or double rotation there restores the height it had before
func (tree *Tree[K, V]) rebalanceOnInsert(p *Node[K, V]) {
	n1 := p
	n2 := n1.parent
	if nil == n2 {
		return
	}
	n3 := n2.parent
	if nil == n3 {
		return
	}

	for nil != n3.parent && balanced(n3) {
		n1, n2, n3 = n2, n3, n3.parent
	}
	if balanced(n3) {
		return
	}

	var top *Node[K, V]
	switch {
	case n2 == n3.right && n1 == n2.right: // RR
		top = tree.leftRotate(n3)

	case n2 == n3.left && n1 == n2.left: // LL
		top = tree.rightRotate(n3)

	case n2 == n3.right && n1 == n2.left: // RL
		tree.rightRotate(n2)
		top = tree.leftRotate(n3)

	default: // LR
		tree.leftRotate(n2)
		top = tree.rightRotate(n3)
	}

	fixHeights(top.parent)
}
