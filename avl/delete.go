// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a specific item from the tree
//
// returns false if the key was not present
func (tree *Tree[K, V]) Remove(key K) bool {
	p := tree.getNode(key)
	if nil == p {
		return false
	}

	up := tree.unlink(p)
	tree.count -= 1

	fixHeights(up)
	tree.rebalanceOnDelete(up)

	return true
}

// internal: structural removal of p
//
// returns the former parent of the node actually detached from the
// tree, which is where rebalancing must start
func (tree *Tree[K, V]) unlink(p *Node[K, V]) *Node[K, V] {
	if nil != p.left && nil != p.right {
		s := successor(p)
		p.key = s.key
		p.value = s.value
		return tree.unlink(s)
	}

	child := p.left
	if nil == child {
		child = p.right
	}

	up := p.parent
	tree.replaceChild(up, p, child)
	release(p)

	return up
}

// internal: node holding the next larger key, nil if p is the last
func successor[K, V any](p *Node[K, V]) *Node[K, V] {
	if nil != p.right {
		return p.right.first()
	}
	for up := p.parent; nil != up; p, up = up, up.parent {
		if p == up.left {
			return up
		}
	}
	return nil
}

// internal: restore balance on every ancestor from p up to the root
//
// unlike insert, a rotation here can shorten the sub-tree, so the
// walk has to continue all the way up
func (tree *Tree[K, V]) rebalanceOnDelete(p *Node[K, V]) {
	for nil != p {
		up := p.parent

		if !balanced(p) {
			lh := height(p.left)
			rh := height(p.right)

			var top *Node[K, V]
			if rh > lh {
				child := p.right
				if height(child.right) == lh+1 {
					top = tree.leftRotate(p)
				} else {
					tree.rightRotate(child)
					top = tree.leftRotate(p)
				}
			} else {
				child := p.left
				if height(child.left) == rh+1 {
					top = tree.rightRotate(p)
				} else {
					tree.leftRotate(child)
					top = tree.rightRotate(p)
				}
			}
			fixHeights(top.parent)
		}

		p = up
	}
}
