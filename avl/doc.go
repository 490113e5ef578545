// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a generic AVL balanced tree mapping ordered keys to
// values, with parent pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Keys are unique.  Inserting a key that is already present leaves
// the stored value untouched and reports false.  Deleting a node with
// two children moves the data of its in-order successor into it, so
// a *Node obtained before a Remove may afterwards hold different
// data.
//
// A tree must be copied with Clone or Assign; copying the Tree struct
// itself would share nodes between the two values.
package avl
