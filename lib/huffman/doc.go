// Copyright 2026 The Knot Authors
// SPDX-License-Identifier: Apache-2.0

// Package huffman derives prefix-free codes from symbol frequencies.
//
// [Frequencies] counts code-point occurrences in the input text.
// [Codes] builds a Huffman tree over those counts and walks it to a
// symbol→code table: '0' on every step to a left child, '1' on every
// step to a right child. A single-symbol alphabet yields a tree that
// is one leaf with no path bits; that symbol is assigned the one-bit
// code "0" so no code is ever empty.
//
// The tree is value data, rebuilt on every call and discarded once
// the table is extracted. Nodes live in a flat arena indexed by
// position rather than as linked owned pointers, and the table walk
// uses an explicit stack, so pathological skewed frequency
// distributions cannot exhaust the goroutine stack.
//
// Merge order is fully deterministic. When two nodes have equal
// weight, leaves order before internal nodes, leaves among themselves
// by symbol code point, and internal nodes among themselves by
// creation order. Identical input therefore produces an identical
// tree — and an identical codebook — on every run and platform.
package huffman
