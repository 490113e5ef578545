// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch  branch = iota
	leftBranch  branch = iota
	rightBranch branch = iota
)

// Print - display an ASCII graphic representation of the tree
//
// the right sub-tree is drawn above its parent so the picture reads as
// the tree rotated a quarter turn anticlockwise; returns the number of
// levels
func (tree *Tree[K, V]) Print(w io.Writer, printData bool) int {
	return printTree(w, tree.root, "", rootBranch, printData)
}

// internal print - returns the maximum depth of the tree
func printTree[K, V any](w io.Writer, p *Node[K, V], prefix string, br branch, printData bool) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if leftBranch == br {
			t = "|      "
		}
		rd = printTree(w, p.right, prefix+t, rightBranch, printData)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := interface{}(nil)
	if nil != p.parent {
		up = p.parent.key
	}
	if printData {
		fmt.Fprintf(w, "%v → %v ^%v h:%d %+d\n", p.key, p.value, up, p.height, balanceFactor(p))
	} else {
		fmt.Fprintf(w, "%v ^%v\n", p.key, up)
	}
	if nil != p.left {
		t := "       "
		if rightBranch == br {
			t = "|      "
		}
		ld = printTree(w, p.left, prefix+t, leftBranch, printData)
	}
	return 1 + max(ld, rd)
}
