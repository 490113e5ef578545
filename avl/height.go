// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// stored height, an absent sub-tree is -1
func height[K, V any](p *Node[K, V]) int {
	if nil == p {
		return -1
	}
	return p.height
}

// recompute from the children's stored heights
func (p *Node[K, V]) setHeight() {
	p.height = 1 + max(height(p.left), height(p.right))
}

// left height minus right height
func balanceFactor[K, V any](p *Node[K, V]) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// true if the children's heights differ by at most one
func balanced[K, V any](p *Node[K, V]) bool {
	b := balanceFactor(p)
	return b >= -1 && b <= 1
}

// refresh heights on the path from p up to the root
//
// only the ancestors of a changed node can have a different height,
// so this leaves the whole tree correct provided p's descendants were
// already correct
func fixHeights[K, V any](p *Node[K, V]) {
	for ; nil != p; p = p.parent {
		p.setHeight()
	}
}

// Height - height of the whole tree, -1 when empty
func (tree *Tree[K, V]) Height() int {
	return height(tree.root)
}
