// Copyright 2026 The Knot Authors
// SPDX-License-Identifier: Apache-2.0

// Package bytecodec provides the byte-level two-glyph codecs: simple
// alternatives to the Huffman codec that reuse the same bit-packing
// and glyph-rendering primitives but carry no embedded codebook.
//
// [Encode] renders the text's UTF-8 bytes, 8 glyphs per byte, behind
// a single marker glyph that records whether the body was first run
// through zlib: the pair's One glyph marks a compressed body, Zero a
// raw one. [Decode] reads the marker and reverses whichever path it
// names, so messages from both modes decode through one entry point.
//
// [EncodeRaw] and [DecodeRaw] are the fixed one-bit-per-bit mapping:
// no marker, no compression, each UTF-8 byte rendered directly as its
// 8 glyphs. The glyph pair is an explicit argument in both variants;
// nothing in this package holds shared state.
package bytecodec
