// Copyright 2026 The Knot Authors
// SPDX-License-Identifier: Apache-2.0

package huffman

import (
	"container/heap"
	"slices"
)

// Frequencies counts how often each code point occurs in text.
func Frequencies(text string) map[rune]int {
	counts := make(map[rune]int)
	for _, r := range text {
		counts[r]++
	}
	return counts
}

// node is one tree node in the arena. A leaf has left < 0 and holds a
// symbol; an internal node holds the arena indexes of its two
// children. Weight is the occurrence count (for leaves) or the sum of
// the children's weights (for internal nodes).
type node struct {
	weight int
	symbol rune
	left   int32
	right  int32
}

// mergeHeap is a min-heap of arena indexes ordered by the
// deterministic merge policy: weight, then leaves before internal
// nodes, then leaf symbol, then creation order (arena index).
type mergeHeap struct {
	arena   *[]node
	indexes []int32
}

func (h *mergeHeap) Len() int { return len(h.indexes) }

func (h *mergeHeap) Less(i, j int) bool {
	arena := *h.arena
	a, b := arena[h.indexes[i]], arena[h.indexes[j]]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	aLeaf, bLeaf := a.left < 0, b.left < 0
	if aLeaf != bLeaf {
		return aLeaf
	}
	if aLeaf {
		return a.symbol < b.symbol
	}
	return h.indexes[i] < h.indexes[j]
}

func (h *mergeHeap) Swap(i, j int) {
	h.indexes[i], h.indexes[j] = h.indexes[j], h.indexes[i]
}

func (h *mergeHeap) Push(x any) {
	h.indexes = append(h.indexes, x.(int32))
}

func (h *mergeHeap) Pop() any {
	last := len(h.indexes) - 1
	index := h.indexes[last]
	h.indexes = h.indexes[:last]
	return index
}

// build constructs the Huffman tree for the given frequency table and
// returns the arena plus the root's index. The frequency table must
// be non-empty. A one-entry table yields a root that is itself a
// leaf; no merge is performed.
func build(frequencies map[rune]int) ([]node, int32) {
	symbols := make([]rune, 0, len(frequencies))
	for symbol := range frequencies {
		symbols = append(symbols, symbol)
	}
	slices.Sort(symbols)

	// A tree over k leaves has exactly 2k-1 nodes; preallocating
	// keeps the arena from moving under the heap.
	arena := make([]node, 0, 2*len(symbols)-1)
	indexes := make([]int32, len(symbols))
	for i, symbol := range symbols {
		arena = append(arena, node{weight: frequencies[symbol], symbol: symbol, left: -1, right: -1})
		indexes[i] = int32(i)
	}

	h := &mergeHeap{arena: &arena, indexes: indexes}
	heap.Init(h)
	for h.Len() > 1 {
		left := heap.Pop(h).(int32)
		right := heap.Pop(h).(int32)
		arena = append(arena, node{
			weight: arena[left].weight + arena[right].weight,
			left:   left,
			right:  right,
		})
		heap.Push(h, int32(len(arena)-1))
	}
	return arena, h.indexes[0]
}

// Codes derives the prefix-free code table for the given frequency
// table. Every symbol in frequencies gets exactly one non-empty code.
// An empty frequency table yields an empty code table.
func Codes(frequencies map[rune]int) map[rune]string {
	codes := make(map[rune]string, len(frequencies))
	if len(frequencies) == 0 {
		return codes
	}

	arena, root := build(frequencies)
	if arena[root].left < 0 {
		// Single-leaf tree: the path is empty, but a zero-length
		// code cannot be emitted. Assign the fixed code "0".
		codes[arena[root].symbol] = "0"
		return codes
	}

	type frame struct {
		index int32
		path  string
	}
	stack := []frame{{index: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := arena[top.index]
		if n.left < 0 {
			codes[n.symbol] = top.path
			continue
		}
		stack = append(stack,
			frame{index: n.right, path: top.path + "1"},
			frame{index: n.left, path: top.path + "0"},
		)
	}
	return codes
}
