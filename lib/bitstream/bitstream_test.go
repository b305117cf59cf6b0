// Copyright 2026 The Knot Authors
// SPDX-License-Identifier: Apache-2.0

package bitstream

import (
	"bytes"
	"errors"
	"testing"
)

func TestWriteBitOrder(t *testing.T) {
	var w Writer
	w.WriteCode("10110000")
	w.WriteCode("1")

	if w.Len() != 9 {
		t.Fatalf("Len() = %d, want 9", w.Len())
	}
	want := []byte{1, 0, 1, 1, 0, 0, 0, 0, 1}
	for i, bit := range want {
		if w.Bit(i) != bit {
			t.Errorf("Bit(%d) = %d, want %d", i, w.Bit(i), bit)
		}
	}
}

func TestWriteUintReadUint(t *testing.T) {
	var w Writer
	w.WriteUint(5, 3)
	w.WriteUint(0xDEADBEEF, 32)
	w.WriteUint(1, 1)

	r := w.Reader()
	for _, step := range []struct {
		width int
		want  uint64
	}{
		{3, 5},
		{32, 0xDEADBEEF},
		{1, 1},
	} {
		got, err := r.ReadUint(step.width)
		if err != nil {
			t.Fatalf("ReadUint(%d): %v", step.width, err)
		}
		if got != step.want {
			t.Errorf("ReadUint(%d) = %#x, want %#x", step.width, got, step.want)
		}
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining() = %d after reading everything, want 0", r.Remaining())
	}
}

func TestWriteBytesReadBytes(t *testing.T) {
	data := []byte{0x00, 0xFF, 0x41, 0x80}
	var w Writer
	w.WriteBytes(data)

	if w.Len() != len(data)*8 {
		t.Fatalf("Len() = %d, want %d", w.Len(), len(data)*8)
	}
	got, err := w.Reader().ReadBytes(len(data))
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("ReadBytes = %x, want %x", got, data)
	}
}

func TestAppend(t *testing.T) {
	var head, tail Writer
	head.WriteCode("101")
	tail.WriteCode("0011")
	head.Append(&tail)

	if head.Len() != 7 {
		t.Fatalf("Len() = %d, want 7", head.Len())
	}
	want := []byte{1, 0, 1, 0, 0, 1, 1}
	for i, bit := range want {
		if head.Bit(i) != bit {
			t.Errorf("Bit(%d) = %d, want %d", i, head.Bit(i), bit)
		}
	}
}

func TestWriteZeros(t *testing.T) {
	var w Writer
	w.WriteBit(1)
	w.WriteZeros(4)
	if w.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", w.Len())
	}
	for i := 1; i < 5; i++ {
		if w.Bit(i) != 0 {
			t.Errorf("Bit(%d) = %d, want 0", i, w.Bit(i))
		}
	}
}

func TestReadPastEnd(t *testing.T) {
	var w Writer
	w.WriteCode("101")

	r := w.Reader()
	if _, err := r.ReadUint(32); !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("ReadUint(32) on 3 bits: got %v, want ErrUnexpectedEnd", err)
	}

	// A failed wide read must not consume bits.
	got, err := r.ReadUint(3)
	if err != nil {
		t.Fatalf("ReadUint(3): %v", err)
	}
	if got != 0b101 {
		t.Errorf("ReadUint(3) = %#b, want 0b101", got)
	}
	if _, err := r.ReadBit(); !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("ReadBit at end: got %v, want ErrUnexpectedEnd", err)
	}
}

func TestTruncate(t *testing.T) {
	var w Writer
	w.WriteUint(0b10110011010, 11)

	r := w.Reader()
	if err := r.Truncate(3); err != nil {
		t.Fatalf("Truncate(3): %v", err)
	}
	if r.Remaining() != 8 {
		t.Errorf("Remaining() = %d after Truncate(3), want 8", r.Remaining())
	}
	if err := r.Truncate(9); !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("Truncate(9) on 8 bits: got %v, want ErrUnexpectedEnd", err)
	}
}

func TestReadBytesPartial(t *testing.T) {
	var w Writer
	w.WriteUint(0xAB, 8)
	w.WriteBit(1)

	r := w.Reader()
	if _, err := r.ReadBytes(2); !errors.Is(err, ErrUnexpectedEnd) {
		t.Errorf("ReadBytes(2) on 9 bits: got %v, want ErrUnexpectedEnd", err)
	}
}
