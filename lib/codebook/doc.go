// Copyright 2026 The Knot Authors
// SPDX-License-Identifier: Apache-2.0

// Package codebook serializes a symbol→code table into the compact,
// self-describing byte blob that travels inside every Huffman-coded
// knot message.
//
// The wire schema is explicit and versioned so any implementation can
// reconstruct the table without sharing an object model:
//
//	version byte (currently 1)
//	uvarint entry count
//	per entry:
//	  uvarint symbol byte length, the symbol's UTF-8 bytes
//	  uvarint code bit length (>= 1)
//	  the code bits, packed MSB-first into ceil(length/8) bytes,
//	  unused low bits zero
//
// The binary schema is then base64-encoded (standard alphabet) so the
// embedded codebook is drawn from a fixed printable byte subset; each
// base64 byte expands to its 8-bit representation in the message's
// bit stream.
//
// [Marshal] is deterministic: entries are written in symbol code
// point order, so the same table always produces byte-identical
// output. [Unmarshal] validates everything it reads — version, entry
// completeness, symbol uniqueness, non-empty codes, and the
// prefix-free property — and rejects blobs with trailing garbage.
package codebook
