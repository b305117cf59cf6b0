// Copyright 2026 The Knot Authors
// SPDX-License-Identifier: Apache-2.0

// Knot is the CLI for the knot text codecs. It provides subcommands
// for encoding text as a two-glyph message (encode), decoding it back
// (decode), and inspecting how the Huffman codec would code a given
// text (stats).
package main
