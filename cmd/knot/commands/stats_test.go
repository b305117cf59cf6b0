// Copyright 2026 The Knot Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"testing"

	"github.com/knotcodec/knot/lib/glyph"
)

func TestComputeStats(t *testing.T) {
	output, err := computeStats("aaab", glyph.Default())
	if err != nil {
		t.Fatalf("computeStats: %v", err)
	}

	if output.TextRunes != 4 {
		t.Errorf("TextRunes = %d, want 4", output.TextRunes)
	}
	if output.DistinctSymbols != 2 {
		t.Errorf("DistinctSymbols = %d, want 2", output.DistinctSymbols)
	}
	// Two one-bit codes over four symbols: 4 payload bits, mean 1.0.
	if output.PayloadBits != 4 {
		t.Errorf("PayloadBits = %d, want 4", output.PayloadBits)
	}
	if output.MeanBitsPerSymbol != 1.0 {
		t.Errorf("MeanBitsPerSymbol = %v, want 1.0", output.MeanBitsPerSymbol)
	}

	// The message is the 3-bit padding field plus the byte-aligned
	// body; the parts must account for every glyph.
	wantGlyphs := 3 + 32 + output.CodebookBits + output.PayloadBits + output.PaddingBits
	if output.MessageGlyphs != wantGlyphs {
		t.Errorf("MessageGlyphs = %d, want %d", output.MessageGlyphs, wantGlyphs)
	}
	if (32+output.CodebookBits+output.PayloadBits+output.PaddingBits)%8 != 0 {
		t.Errorf("body of %d bits is not byte-aligned", 32+output.CodebookBits+output.PayloadBits+output.PaddingBits)
	}

	// Entries are ordered by descending count.
	if len(output.Entries) != 2 {
		t.Fatalf("Entries has %d rows, want 2", len(output.Entries))
	}
	if output.Entries[0].Symbol != "a" || output.Entries[0].Count != 3 {
		t.Errorf("Entries[0] = %+v, want symbol a with count 3", output.Entries[0])
	}
	if output.Entries[1].Symbol != "b" || output.Entries[1].Count != 1 {
		t.Errorf("Entries[1] = %+v, want symbol b with count 1", output.Entries[1])
	}
}

func TestCodecOptionsResolve(t *testing.T) {
	t.Setenv("KNOT_CONFIG", "")

	options := codecOptions{symbols: "AB", codecName: "raw"}
	cfg, pair, err := options.resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Codec != "raw" {
		t.Errorf("codec = %q, want raw", cfg.Codec)
	}
	if pair.One != 'A' || pair.Zero != 'B' {
		t.Errorf("pair = %q/%q, want A/B", pair.One, pair.Zero)
	}
}

func TestCodecOptionsRejectsBadSymbols(t *testing.T) {
	t.Setenv("KNOT_CONFIG", "")

	options := codecOptions{symbols: "ABC"}
	if _, _, err := options.resolve(); err == nil {
		t.Error("resolve accepted a three-rune alphabet")
	}

	options = codecOptions{codecName: "morse"}
	if _, _, err := options.resolve(); err == nil {
		t.Error("resolve accepted an unknown codec")
	}
}
