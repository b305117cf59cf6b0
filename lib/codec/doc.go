// Copyright 2026 The Knot Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec is the Huffman-coded two-glyph text codec: the
// orchestration layer that turns text into a self-describing knot
// message and back.
//
// Encoding counts symbol frequencies (lib/huffman), derives the
// prefix-free code table, serializes the table (lib/codebook), and
// packs one bit sequence (lib/bitstream):
//
//	3-bit padding count p
//	32-bit big-endian codebook length, in bits
//	codebook bits (8 per printable codebook byte)
//	payload bits (each input symbol's code, in input order)
//	p zero bits, so everything after the padding field is a
//	whole number of bytes
//
// The sequence is rendered over a two-glyph alphabet (lib/glyph).
// Because the codebook travels inside the message, decoding needs no
// shared state: the decoder rebuilds the code table from the embedded
// codebook, never from the encoder's tree. The empty string encodes
// as the reserved two-glyph sentinel and is checked for before any
// header parsing.
//
// Every failure is one of four reportable kinds — [ErrInvalidText],
// [ErrMalformedMessage], [ErrCodebookCorrupt], [ErrPayloadCorrupt] —
// wrapped with context and distinguishable via errors.Is. A decode
// failure means the input was not produced by a compatible encoder;
// retrying cannot help.
//
// A [Codec] holds only its glyph pair. Trees, tables, and bit buffers
// are created per call and discarded on return, so a Codec is safe
// for concurrent use.
package codec
