// Copyright 2026 The Knot Authors
// SPDX-License-Identifier: Apache-2.0

package bitstream

// Writer is an append-only bit buffer. Bits are stored most
// significant bit first within each byte. The zero value is an empty
// buffer ready for use.
type Writer struct {
	data []byte
	size int
}

// WriteBit appends a single bit. Any non-zero value is written as 1.
func (w *Writer) WriteBit(bit byte) {
	if w.size%8 == 0 {
		w.data = append(w.data, 0)
	}
	if bit != 0 {
		w.data[w.size/8] |= 0x80 >> (w.size % 8)
	}
	w.size++
}

// WriteUint appends the low width bits of value, most significant bit
// first. This is how the fixed-width header fields (3-bit padding
// count, 32-bit codebook length) are laid down.
func (w *Writer) WriteUint(value uint64, width int) {
	for shift := width - 1; shift >= 0; shift-- {
		w.WriteBit(byte(value >> shift & 1))
	}
}

// WriteBytes appends each byte as its 8-bit representation.
func (w *Writer) WriteBytes(data []byte) {
	for _, b := range data {
		w.WriteUint(uint64(b), 8)
	}
}

// WriteCode appends a code expressed as a string over {0,1}. Bytes
// other than '1' are written as 0.
func (w *Writer) WriteCode(code string) {
	for i := 0; i < len(code); i++ {
		if code[i] == '1' {
			w.WriteBit(1)
		} else {
			w.WriteBit(0)
		}
	}
}

// WriteZeros appends count zero bits.
func (w *Writer) WriteZeros(count int) {
	for i := 0; i < count; i++ {
		w.WriteBit(0)
	}
}

// Append copies every bit of other onto the end of w.
func (w *Writer) Append(other *Writer) {
	for i := 0; i < other.size; i++ {
		w.WriteBit(other.Bit(i))
	}
}

// Bit returns bit i as 0 or 1. The index must be less than Len.
func (w *Writer) Bit(i int) byte {
	return w.data[i/8] >> (7 - i%8) & 1
}

// Len returns the number of bits written so far.
func (w *Writer) Len() int {
	return w.size
}

// Reader returns a cursor over the bits written so far. The reader
// shares the writer's storage; the writer must not be written to
// while the reader is in use.
func (w *Writer) Reader() *Reader {
	return &Reader{data: w.data, size: w.size}
}
