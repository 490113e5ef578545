// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package scenario - drive an AVL tree through a configured list of
// operations followed by an optional random insert/delete phase,
// verifying the tree's invariants as it goes
package scenario

//go:generate mockgen -destination=mocks/reporter.go -package=mocks github.com/bitmark-inc/avltree/scenario Reporter
