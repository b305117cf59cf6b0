// Copyright 2026 The Knot Authors
// SPDX-License-Identifier: Apache-2.0

package bitstream

import (
	"errors"
	"fmt"
)

// ErrUnexpectedEnd is returned when a read requires more bits than the
// stream holds. Decoders surface this as a malformed-message failure.
var ErrUnexpectedEnd = errors.New("bitstream: unexpected end of stream")

// Reader is a strict forward cursor over a fixed bit sequence.
type Reader struct {
	data []byte
	size int
	pos  int
}

// ReadBit consumes and returns the next bit.
func (r *Reader) ReadBit() (byte, error) {
	if r.pos >= r.size {
		return 0, fmt.Errorf("%w: need 1 bit, have 0", ErrUnexpectedEnd)
	}
	bit := r.data[r.pos/8] >> (7 - r.pos%8) & 1
	r.pos++
	return bit, nil
}

// ReadUint consumes width bits and returns them as an unsigned
// integer, most significant bit first. width must be at most 64.
func (r *Reader) ReadUint(width int) (uint64, error) {
	if r.Remaining() < width {
		return 0, fmt.Errorf("%w: need %d bits, have %d", ErrUnexpectedEnd, width, r.Remaining())
	}
	var value uint64
	for i := 0; i < width; i++ {
		bit, _ := r.ReadBit()
		value = value<<1 | uint64(bit)
	}
	return value, nil
}

// ReadBytes consumes count*8 bits and returns them as bytes.
func (r *Reader) ReadBytes(count int) ([]byte, error) {
	if r.Remaining() < count*8 {
		return nil, fmt.Errorf("%w: need %d bits, have %d", ErrUnexpectedEnd, count*8, r.Remaining())
	}
	data := make([]byte, count)
	for i := range data {
		b, err := r.ReadUint(8)
		if err != nil {
			return nil, err
		}
		data[i] = byte(b)
	}
	return data, nil
}

// Truncate removes count bits from the end of the stream. It is used
// to strip the trailing padding once the padding header is known.
func (r *Reader) Truncate(count int) error {
	if count < 0 || r.Remaining() < count {
		return fmt.Errorf("%w: cannot drop %d trailing bits, have %d", ErrUnexpectedEnd, count, r.Remaining())
	}
	r.size -= count
	return nil
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int {
	return r.size - r.pos
}
