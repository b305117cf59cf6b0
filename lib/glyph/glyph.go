// Copyright 2026 The Knot Authors
// SPDX-License-Identifier: Apache-2.0

package glyph

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/knotcodec/knot/lib/bitstream"
)

// Pair is a two-glyph output alphabet: One renders bit 1, Zero
// renders bit 0.
type Pair struct {
	One  rune
	Zero rune
}

// Default returns the reference alphabet: 结 for 1, 婚 for 0.
func Default() Pair {
	return Pair{One: '结', Zero: '婚'}
}

// Validate reports whether the pair is usable: two valid, distinct
// runes.
func (p Pair) Validate() error {
	if p.One == p.Zero {
		return fmt.Errorf("glyph pair must use two distinct runes, got %q twice", p.One)
	}
	for _, r := range [2]rune{p.One, p.Zero} {
		if r == utf8.RuneError || !utf8.ValidRune(r) {
			return fmt.Errorf("glyph %q is not a valid rune", r)
		}
	}
	return nil
}

// Sentinel returns the reserved two-glyph encoding of the empty
// string: Zero followed by One.
func (p Pair) Sentinel() string {
	return string(p.Zero) + string(p.One)
}

// Render writes every bit of w as a glyph, bit 1 as One and bit 0 as
// Zero, producing the externally visible message.
func (p Pair) Render(w *bitstream.Writer) string {
	var out strings.Builder
	out.Grow(w.Len() * max(utf8.RuneLen(p.One), utf8.RuneLen(p.Zero)))
	for i := 0; i < w.Len(); i++ {
		if w.Bit(i) == 1 {
			out.WriteRune(p.One)
		} else {
			out.WriteRune(p.Zero)
		}
	}
	return out.String()
}

// Parse converts a rendered message back into a bit stream. Any rune
// outside the pair makes the message unparseable.
func (p Pair) Parse(message string) (*bitstream.Reader, error) {
	var bits bitstream.Writer
	for _, r := range message {
		switch r {
		case p.One:
			bits.WriteBit(1)
		case p.Zero:
			bits.WriteBit(0)
		default:
			return nil, fmt.Errorf("rune %q is not part of the %q/%q alphabet", r, p.One, p.Zero)
		}
	}
	return bits.Reader(), nil
}
