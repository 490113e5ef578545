// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"math/rand/v2"
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

func TestExampleSequence(t *testing.T) {
	tree := avl.New[int, string]()

	for _, key := range []int{10, 20, 30} {
		assert.True(t, tree.Insert(key, "v"), "insert: %d", key)
	}
	require.NotNil(t, tree.Root(), "no root")
	assert.Equal(t, 20, tree.Root().Key(), "root after rotation")

	for _, key := range []int{40, 50, 25} {
		assert.True(t, tree.Insert(key, "v"), "insert: %d", key)
		require.NoError(t, tree.Check(), "after insert: %d", key)
	}

	assert.Equal(t, []int{10, 20, 25, 30, 40, 50}, tree.Keys(), "keys")
	assert.Equal(t, 6, tree.Size(), "size")
	assert.Equal(t, 30, tree.Root().Key(), "root after double rotation")

	assert.True(t, tree.Remove(40), "remove 40")
	require.NoError(t, tree.Check(), "after remove")
	assert.Equal(t, []int{10, 20, 25, 30, 50}, tree.Keys(), "keys")
	assert.Equal(t, 5, tree.Size(), "size")
}

func TestEmptyTree(t *testing.T) {
	tree := avl.New[string, int]()

	assert.True(t, tree.IsEmpty(), "not empty")
	assert.Equal(t, 0, tree.Size(), "size")
	assert.Equal(t, -1, tree.Height(), "height")
	assert.Nil(t, tree.Root(), "root")
	assert.Nil(t, tree.First(), "first")
	assert.Nil(t, tree.Last(), "last")
	assert.Empty(t, tree.Keys(), "keys")
	assert.Empty(t, tree.Values(), "values")
	assert.False(t, tree.Remove("absent"), "remove from empty")
	assert.NoError(t, tree.Check(), "check")

	_, err := tree.Search("absent")
	assert.Equal(t, fault.ErrKeyNotFound, err, "search empty")
}

func TestDuplicateInsert(t *testing.T) {
	tree := avl.New[string, string]()

	assert.True(t, tree.Insert("key", "first"), "first insert")
	assert.False(t, tree.Insert("key", "second"), "duplicate insert")
	assert.Equal(t, 1, tree.Size(), "size")

	value, err := tree.Search("key")
	require.NoError(t, err, "search")
	assert.Equal(t, "first", value, "value was overwritten")
}

func TestSearch(t *testing.T) {
	tree := avl.New[int, string]()
	for i := 0; i < 100; i += 2 {
		tree.Insert(i, "even")
	}

	value, err := tree.Search(42)
	assert.NoError(t, err, "search present")
	assert.Equal(t, "even", value, "value")

	value, err = tree.Search(43)
	assert.Equal(t, fault.ErrKeyNotFound, err, "search absent")
	assert.True(t, fault.IsErrNotFound(err), "error class")
	assert.Equal(t, "", value, "zero value")

	v, ok := tree.Lookup(10)
	assert.True(t, ok, "lookup present")
	assert.Equal(t, "even", v, "lookup value")

	_, ok = tree.Lookup(11)
	assert.False(t, ok, "lookup absent")

	assert.True(t, tree.Contains(98), "contains")
	assert.False(t, tree.Contains(99), "does not contain")
}

func TestRemove(t *testing.T) {
	tree := avl.New[int, int]()
	for i := 1; i <= 31; i += 1 {
		tree.Insert(i, i*i)
	}
	require.NoError(t, tree.Check(), "after inserts")

	assert.False(t, tree.Remove(100), "remove absent")
	assert.Equal(t, 31, tree.Size(), "size after failed remove")

	// root has two children
	rootKey := tree.Root().Key()
	assert.True(t, tree.Remove(rootKey), "remove root")
	require.NoError(t, tree.Check(), "after root remove")

	_, err := tree.Search(rootKey)
	assert.True(t, fault.IsErrNotFound(err), "root key still present")

	assert.True(t, tree.Remove(1), "remove leaf")
	assert.True(t, tree.Remove(31), "remove leaf")
	require.NoError(t, tree.Check(), "after leaf removes")
	assert.Equal(t, 28, tree.Size(), "size")

	for _, key := range tree.Keys() {
		value, err := tree.Search(key)
		require.NoError(t, err, "key: %d", key)
		assert.Equal(t, key*key, value, "value for key: %d", key)
	}
}

// the successor is a leaf right child whose removal unbalances the
// node that was asked to be deleted
func TestRemoveRebalancesAtDeletedNode(t *testing.T) {
	tree := avl.New[int, string]()
	for _, key := range []int{20, 10, 30, 5} {
		tree.Insert(key, "v")
	}

	assert.True(t, tree.Remove(20), "remove")
	require.NoError(t, tree.Check(), "after remove")
	assert.Equal(t, 10, tree.Root().Key(), "root")
	assert.Equal(t, []int{5, 10, 30}, tree.Keys(), "keys")
}

// deleting from the short side of a minimal AVL tree forces a rotation
// at more than one level
func TestRemoveCascade(t *testing.T) {
	tree := avl.New[int, string]()
	for _, key := range []int{8, 5, 11, 3, 7, 10, 12, 2, 4, 6, 9, 1} {
		tree.Insert(key, "v")
	}
	require.NoError(t, tree.Check(), "after inserts")
	require.Equal(t, 8, tree.Root().Key(), "root before")

	assert.True(t, tree.Remove(12), "remove")
	require.NoError(t, tree.Check(), "after remove")
	assert.Equal(t, 5, tree.Root().Key(), "root after cascade")
	assert.Equal(t, 3, tree.Height(), "height")
}

func TestNewFunc(t *testing.T) {
	tree := avl.NewFunc[int, string](func(a, b int) int {
		return b - a
	})
	for i := 0; i < 20; i += 1 {
		tree.Insert(i, "v")
	}
	require.NoError(t, tree.Check(), "check")

	keys := tree.Keys()
	assert.True(t, sort.SliceIsSorted(keys, func(i, j int) bool { return keys[i] > keys[j] }), "not descending: %v", keys)

	assert.Panics(t, func() {
		avl.NewFunc[int, string](nil)
	}, "nil compare")
}

func TestValuesFollowKeys(t *testing.T) {
	tree := avl.New[string, int]()
	words := []string{"pear", "apple", "fig", "banana", "cherry", "date", "elderberry"}
	for i, w := range words {
		tree.Insert(w, i)
	}

	keys := tree.Keys()
	values := tree.Values()
	require.Equal(t, tree.Size(), len(keys), "key count")
	require.Equal(t, tree.Size(), len(values), "value count")

	for i, key := range keys {
		assert.Equal(t, words[values[i]], key, "value %d does not belong to key %q", i, key)
	}
}

func TestClear(t *testing.T) {
	tree := avl.New[int, int]()
	for i := 0; i < 50; i += 1 {
		tree.Insert(i, i)
	}
	root := tree.Root()

	tree.Clear()
	assert.True(t, tree.IsEmpty(), "not empty")
	assert.Equal(t, 0, tree.Size(), "size")
	assert.Nil(t, root.Left(), "old root still linked")
	assert.Nil(t, root.Right(), "old root still linked")

	assert.True(t, tree.Insert(7, 7), "reuse after clear")
	assert.NoError(t, tree.Check(), "check")
}

// random inserts and deletes checked against a map
func TestRandomTree(t *testing.T) {
	randomTree(t, 1, 2200, 2000, 10000)
	randomTree(t, 2, 3400, 2760, 10000)
	randomTree(t, 3, 5467, 1234, 1000)
	for seed := uint64(10); seed < 15; seed += 1 {
		randomTree(t, seed, 2100, 2000, 5000)
	}
}

func randomTree(t *testing.T, seed uint64, total int, toDelete int, keyRange int) {
	rng := rand.New(rand.NewPCG(seed, seed))

	tree := avl.New[int, int]()
	model := make(map[int]int)
	d := make([]int, toDelete)

	for i := 0; i < total; i += 1 {
		key := rng.IntN(keyRange)
		if i < len(d) {
			d[i] = key
		}
		_, exists := model[key]
		added := tree.Insert(key, i)
		require.Equal(t, !exists, added, "seed: %d insert: %d", seed, key)
		if added {
			model[key] = i
		}
	}
	require.NoError(t, tree.Check(), "seed: %d after inserts", seed)
	require.Equal(t, len(model), tree.Size(), "seed: %d size", seed)

	for _, key := range d {
		_, exists := model[key]
		require.Equal(t, exists, tree.Remove(key), "seed: %d remove: %d", seed, key)
		delete(model, key)
		require.NoError(t, tree.Check(), "seed: %d after remove: %d", seed, key)

		_, err := tree.Search(key)
		require.True(t, fault.IsErrNotFound(err), "seed: %d removed key: %d still present", seed, key)
	}

	expected := make([]int, 0, len(model))
	for key := range model {
		expected = append(expected, key)
	}
	slices.Sort(expected)
	assert.Equal(t, expected, tree.Keys(), "seed: %d keys", seed)

	for key, value := range model {
		v, err := tree.Search(key)
		require.NoError(t, err, "seed: %d search: %d", seed, key)
		require.Equal(t, value, v, "seed: %d value for: %d", seed, key)
	}

	// an AVL tree of n nodes is no taller than 1.44 log2(n+2)
	n := tree.Size()
	limit := 0
	for m := n + 2; m > 1; m >>= 1 {
		limit += 1
	}
	limit = limit*3/2 + 1
	assert.LessOrEqual(t, tree.Height(), limit, "seed: %d height for %d nodes", seed, n)
}
