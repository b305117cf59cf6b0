// Copyright 2026 The Knot Authors
// SPDX-License-Identifier: Apache-2.0

package codebook

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"
)

// version identifies the binary schema. Bump on any layout change.
const version = 1

// Marshal serializes a code table into its printable wire form.
// Entries are written in symbol code point order, so identical tables
// produce byte-identical output. The table must be non-empty, every
// code non-empty and drawn from {0,1}.
func Marshal(codes map[rune]string) ([]byte, error) {
	if len(codes) == 0 {
		return nil, fmt.Errorf("cannot serialize an empty code table")
	}
	symbols := make([]rune, 0, len(codes))
	for symbol := range codes {
		symbols = append(symbols, symbol)
	}
	slices.Sort(symbols)

	var buf bytes.Buffer
	buf.WriteByte(version)
	writeUvarint(&buf, uint64(len(codes)))
	for _, symbol := range symbols {
		code := codes[symbol]
		if code == "" {
			return nil, fmt.Errorf("symbol %q has an empty code", symbol)
		}
		if strings.Trim(code, "01") != "" {
			return nil, fmt.Errorf("symbol %q has code %q with characters outside {0,1}", symbol, code)
		}
		encoded := utf8.AppendRune(nil, symbol)
		writeUvarint(&buf, uint64(len(encoded)))
		buf.Write(encoded)
		writeUvarint(&buf, uint64(len(code)))
		buf.Write(packBits(code))
	}

	out := make([]byte, base64.StdEncoding.EncodedLen(buf.Len()))
	base64.StdEncoding.Encode(out, buf.Bytes())
	return out, nil
}

// Unmarshal parses a printable wire-form codebook back into a code
// table, validating the schema version, entry completeness, symbol
// uniqueness, and the prefix-free property of the codes.
func Unmarshal(data []byte) (map[rune]string, error) {
	raw := make([]byte, base64.StdEncoding.DecodedLen(len(data)))
	n, err := base64.StdEncoding.Decode(raw, data)
	if err != nil {
		return nil, fmt.Errorf("codebook is not valid base64: %w", err)
	}
	r := bytes.NewReader(raw[:n])

	got, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("codebook is empty")
	}
	if got != version {
		return nil, fmt.Errorf("unsupported codebook version %d (want %d)", got, version)
	}

	count, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("reading entry count: %w", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("codebook declares zero entries")
	}
	if count > uint64(r.Len()) {
		// Each entry occupies at least three bytes; an entry count
		// beyond the remaining size is corruption, not a large table.
		return nil, fmt.Errorf("entry count %d exceeds codebook size", count)
	}

	codes := make(map[rune]string, count)
	for i := uint64(0); i < count; i++ {
		symbol, err := readSymbol(r)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if _, dup := codes[symbol]; dup {
			return nil, fmt.Errorf("entry %d: duplicate symbol %q", i, symbol)
		}
		code, err := readCode(r)
		if err != nil {
			return nil, fmt.Errorf("entry %d (symbol %q): %w", i, symbol, err)
		}
		codes[symbol] = code
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%d trailing bytes after the last entry", r.Len())
	}
	if err := checkPrefixFree(codes); err != nil {
		return nil, err
	}
	return codes, nil
}

// readSymbol reads one length-prefixed UTF-8 symbol. The bytes must
// decode to exactly one valid rune.
func readSymbol(r *bytes.Reader) (rune, error) {
	length, err := binary.ReadUvarint(r)
	if err != nil {
		return 0, fmt.Errorf("reading symbol length: %w", err)
	}
	if length == 0 || length > utf8.UTFMax {
		return 0, fmt.Errorf("symbol length %d is outside [1,%d]", length, utf8.UTFMax)
	}
	encoded := make([]byte, length)
	if _, err := io.ReadFull(r, encoded); err != nil {
		return 0, fmt.Errorf("reading symbol bytes: %w", err)
	}
	symbol, size := utf8.DecodeRune(encoded)
	if symbol == utf8.RuneError && size <= 1 {
		return 0, fmt.Errorf("symbol bytes %x are not valid UTF-8", encoded)
	}
	if size != len(encoded) {
		return 0, fmt.Errorf("symbol bytes %x encode more than one rune", encoded)
	}
	return symbol, nil
}

// readCode reads one length-prefixed bit-packed code and expands it
// to its {0,1} string form. Unused low bits of the final byte must be
// zero so that every table has exactly one wire representation.
func readCode(r *bytes.Reader) (string, error) {
	bitLength, err := binary.ReadUvarint(r)
	if err != nil {
		return "", fmt.Errorf("reading code length: %w", err)
	}
	if bitLength == 0 {
		return "", fmt.Errorf("zero-length code")
	}
	// Bound the length before any arithmetic on it: (bitLength+7)/8
	// wraps for values near 2^64, which would defeat the truncation
	// check below.
	if bitLength > uint64(r.Len())*8 {
		return "", fmt.Errorf("code of %d bits is truncated", bitLength)
	}
	byteLength := (bitLength + 7) / 8
	packed := make([]byte, byteLength)
	if _, err := io.ReadFull(r, packed); err != nil {
		return "", fmt.Errorf("reading code bits: %w", err)
	}

	var code strings.Builder
	code.Grow(int(bitLength))
	for i := uint64(0); i < bitLength; i++ {
		if packed[i/8]>>(7-i%8)&1 == 1 {
			code.WriteByte('1')
		} else {
			code.WriteByte('0')
		}
	}
	for i := bitLength; i < byteLength*8; i++ {
		if packed[i/8]>>(7-i%8)&1 == 1 {
			return "", fmt.Errorf("nonzero padding bit in packed code")
		}
	}
	return code.String(), nil
}

// checkPrefixFree verifies that no code is a prefix of (or equal to)
// another. Sorting makes any prefix relation appear between adjacent
// entries, so one linear pass suffices.
func checkPrefixFree(codes map[rune]string) error {
	sorted := make([]string, 0, len(codes))
	for _, code := range codes {
		sorted = append(sorted, code)
	}
	slices.Sort(sorted)
	for i := 1; i < len(sorted); i++ {
		if strings.HasPrefix(sorted[i], sorted[i-1]) {
			return fmt.Errorf("code %q is a prefix of %q; table is not prefix-free", sorted[i-1], sorted[i])
		}
	}
	return nil
}

// packBits packs a {0,1} string into bytes, MSB-first, zero-filling
// the unused low bits of the final byte.
func packBits(code string) []byte {
	packed := make([]byte, (len(code)+7)/8)
	for i := 0; i < len(code); i++ {
		if code[i] == '1' {
			packed[i/8] |= 0x80 >> (i % 8)
		}
	}
	return packed
}

// writeUvarint appends v to buf in unsigned varint form.
func writeUvarint(buf *bytes.Buffer, v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	buf.Write(tmp[:binary.PutUvarint(tmp[:], v)])
}
