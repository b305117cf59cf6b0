// Copyright 2026 The Knot Authors
// SPDX-License-Identifier: Apache-2.0

// Package bitstream provides the bit-level buffers that every knot
// message format is assembled from and parsed back out of.
//
// A [Writer] is an append-only sequence of bits, most significant bit
// first within each byte. The Huffman codec uses it to concatenate the
// padding header, the codebook length field, the embedded codebook,
// and the payload codes; the byte-level variants use it to expand
// bytes into their 8-bit representations.
//
// A [Reader] is a strict cursor over a finished bit sequence. Every
// read reports how many bits it needs, and fails with
// [ErrUnexpectedEnd] when the sequence is too short, so decoders can
// distinguish a truncated message from a clean parse. [Reader.Truncate]
// drops trailing padding bits once the padding header has been read.
//
// This package has no dependencies on other knot packages.
package bitstream
