// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// leftRotate turns (a x (c y z)) into (c (a x y) z) and returns c
//
// the heights of a and c are refreshed, their ancestors are left to
// the caller
func (tree *Tree[K, V]) leftRotate(a *Node[K, V]) *Node[K, V] {
	c := a.right
	y := c.left

	tree.replaceChild(a.parent, a, c)

	a.right = y
	if nil != y {
		y.parent = a
	}

	c.left = a
	a.parent = c

	a.setHeight()
	c.setHeight()
	return c
}

// rightRotate turns (a (c x y) z) into (c x (a y z)) and returns c
func (tree *Tree[K, V]) rightRotate(a *Node[K, V]) *Node[K, V] {
	c := a.left
	y := c.right

	tree.replaceChild(a.parent, a, c)

	a.left = y
	if nil != y {
		y.parent = a
	}

	c.right = a
	a.parent = c

	a.setHeight()
	c.setHeight()
	return c
}
