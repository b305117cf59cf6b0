// Copyright 2026 The Knot Authors
// SPDX-License-Identifier: Apache-2.0

package codebook

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	tables := []map[rune]string{
		{'a': "0"},
		{'a': "0", 'b': "1"},
		{'c': "0", 'a': "10", 'b': "11"},
		{'你': "0", '好': "10", 'x': "110", '😀': "111"},
	}
	for _, table := range tables {
		data, err := Marshal(table)
		if err != nil {
			t.Fatalf("Marshal(%v): %v", table, err)
		}
		got, err := Unmarshal(data)
		if err != nil {
			t.Fatalf("Unmarshal(Marshal(%v)): %v", table, err)
		}
		if len(got) != len(table) {
			t.Fatalf("round trip returned %d entries, want %d", len(got), len(table))
		}
		for symbol, code := range table {
			if got[symbol] != code {
				t.Errorf("round trip code for %q = %q, want %q", symbol, got[symbol], code)
			}
		}
	}
}

func TestMarshalDeterministic(t *testing.T) {
	table := map[rune]string{'a': "10", 'z': "11", '中': "0"}
	first, err := Marshal(table)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Marshal(table)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("Marshal is not deterministic: %x vs %x", first, again)
		}
	}
}

func TestMarshalPrintable(t *testing.T) {
	data, err := Marshal(map[rune]string{'a': "0", '婚': "10", '结': "11"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for _, b := range data {
		if b < '+' || b > 'z' {
			t.Errorf("output byte %#x is outside the base64 alphabet", b)
		}
	}
}

func TestMarshalRejectsBadTables(t *testing.T) {
	tests := []struct {
		name  string
		table map[rune]string
	}{
		{"empty table", map[rune]string{}},
		{"empty code", map[rune]string{'a': ""}},
		{"non-binary code", map[rune]string{'a': "01x"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := Marshal(test.table); err == nil {
				t.Errorf("Marshal(%v) succeeded, want error", test.table)
			}
		})
	}
}

// rawCodebook assembles a schema blob by hand and base64-encodes it,
// for corruption tests that need byte-level control.
func rawCodebook(t *testing.T, build func(*bytes.Buffer)) []byte {
	t.Helper()
	var buf bytes.Buffer
	build(&buf)
	out := make([]byte, base64.StdEncoding.EncodedLen(buf.Len()))
	base64.StdEncoding.Encode(out, buf.Bytes())
	return out
}

func putUvarint(buf *bytes.Buffer, v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	buf.Write(tmp[:binary.PutUvarint(tmp[:], v)])
}

func TestUnmarshalRejectsCorruption(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{
			name: "not base64",
			data: []byte("\xff\xfe\xfd\xfc"),
		},
		{
			name: "empty blob",
			data: rawCodebook(t, func(buf *bytes.Buffer) {}),
		},
		{
			name: "wrong version",
			data: rawCodebook(t, func(buf *bytes.Buffer) {
				buf.WriteByte(2)
				putUvarint(buf, 1)
				putUvarint(buf, 1)
				buf.WriteByte('a')
				putUvarint(buf, 1)
				buf.WriteByte(0x00)
			}),
		},
		{
			name: "zero entries",
			data: rawCodebook(t, func(buf *bytes.Buffer) {
				buf.WriteByte(1)
				putUvarint(buf, 0)
			}),
		},
		{
			name: "entry count beyond size",
			data: rawCodebook(t, func(buf *bytes.Buffer) {
				buf.WriteByte(1)
				putUvarint(buf, 1000)
			}),
		},
		{
			name: "truncated entry",
			data: rawCodebook(t, func(buf *bytes.Buffer) {
				buf.WriteByte(1)
				putUvarint(buf, 1)
				putUvarint(buf, 1)
				buf.WriteByte('a')
				putUvarint(buf, 9) // promises 2 code bytes, provides none
			}),
		},
		{
			name: "code bit-length near uint64 max",
			data: rawCodebook(t, func(buf *bytes.Buffer) {
				buf.WriteByte(1)
				putUvarint(buf, 1)
				putUvarint(buf, 1)
				buf.WriteByte('a')
				// (bitLength+7)/8 wraps to 0 for this value; the
				// length must be rejected before that arithmetic.
				putUvarint(buf, ^uint64(0))
			}),
		},
		{
			name: "zero-length code",
			data: rawCodebook(t, func(buf *bytes.Buffer) {
				buf.WriteByte(1)
				putUvarint(buf, 1)
				putUvarint(buf, 1)
				buf.WriteByte('a')
				putUvarint(buf, 0)
			}),
		},
		{
			name: "symbol not UTF-8",
			data: rawCodebook(t, func(buf *bytes.Buffer) {
				buf.WriteByte(1)
				putUvarint(buf, 1)
				putUvarint(buf, 1)
				buf.WriteByte(0xFF)
				putUvarint(buf, 1)
				buf.WriteByte(0x00)
			}),
		},
		{
			name: "duplicate symbol",
			data: rawCodebook(t, func(buf *bytes.Buffer) {
				buf.WriteByte(1)
				putUvarint(buf, 2)
				for _, code := range []byte{0x00, 0x80} {
					putUvarint(buf, 1)
					buf.WriteByte('a')
					putUvarint(buf, 1)
					buf.WriteByte(code)
				}
			}),
		},
		{
			name: "not prefix-free",
			data: rawCodebook(t, func(buf *bytes.Buffer) {
				buf.WriteByte(1)
				putUvarint(buf, 2)
				putUvarint(buf, 1)
				buf.WriteByte('a')
				putUvarint(buf, 1)
				buf.WriteByte(0x00) // a → "0"
				putUvarint(buf, 1)
				buf.WriteByte('b')
				putUvarint(buf, 2)
				buf.WriteByte(0x00) // b → "00"
			}),
		},
		{
			name: "nonzero padding bit in packed code",
			data: rawCodebook(t, func(buf *bytes.Buffer) {
				buf.WriteByte(1)
				putUvarint(buf, 1)
				putUvarint(buf, 1)
				buf.WriteByte('a')
				putUvarint(buf, 1)
				buf.WriteByte(0x90) // "1" plus a stray bit below it
			}),
		},
		{
			name: "trailing garbage",
			data: rawCodebook(t, func(buf *bytes.Buffer) {
				buf.WriteByte(1)
				putUvarint(buf, 1)
				putUvarint(buf, 1)
				buf.WriteByte('a')
				putUvarint(buf, 1)
				buf.WriteByte(0x00)
				buf.WriteByte(0xAA)
			}),
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if table, err := Unmarshal(test.data); err == nil {
				t.Errorf("Unmarshal succeeded with %v, want error", table)
			}
		})
	}
}

func TestMarshalSize(t *testing.T) {
	// Two single-byte symbols with codes under 8 bits occupy 4 bytes
	// each, plus the version byte and entry count: 10 raw bytes, 16
	// after base64.
	data, err := Marshal(map[rune]string{'a': "0", 'b': "1"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(data) != 16 {
		t.Errorf("Marshal produced %d bytes, want 16", len(data))
	}
}
