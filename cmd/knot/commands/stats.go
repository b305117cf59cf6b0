// Copyright 2026 The Knot Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"
	"slices"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/spf13/pflag"

	"github.com/knotcodec/knot/cmd/knot/cli"
	"github.com/knotcodec/knot/lib/codebook"
	"github.com/knotcodec/knot/lib/codec"
	"github.com/knotcodec/knot/lib/glyph"
	"github.com/knotcodec/knot/lib/huffman"
)

// statsEntry is one symbol's row in the stats report.
type statsEntry struct {
	Symbol string `json:"symbol"`
	Count  int    `json:"count"`
	Code   string `json:"code"`
	Bits   int    `json:"bits"`
}

// statsOutput is the full stats report for one input text.
type statsOutput struct {
	TextRunes         int          `json:"text_runes"`
	DistinctSymbols   int          `json:"distinct_symbols"`
	MessageGlyphs     int          `json:"message_glyphs"`
	PayloadBits       int          `json:"payload_bits"`
	CodebookBits      int          `json:"codebook_bits"`
	PaddingBits       int          `json:"padding_bits"`
	MeanBitsPerSymbol float64      `json:"mean_bits_per_symbol"`
	GlyphsPerRune     float64      `json:"glyphs_per_rune"`
	Entries           []statsEntry `json:"entries"`
}

// statsCommand returns the "stats" command: the frequency table, the
// derived codes, and the size breakdown of the Huffman codec's
// message for a given text.
func statsCommand() *cli.Command {
	var options codecOptions
	var asJSON bool

	return &cli.Command{
		Name:    "stats",
		Summary: "Report frequencies, codes, and message size for a text",
		Description: `Report how the Huffman codec would encode a text: per-symbol
frequencies and derived codes, the payload/codebook/padding size
breakdown, and the mean code length against the 8-bit baseline.`,
		Usage: "knot stats [text] [flags]",
		Examples: []cli.Example{
			{
				Description: "Show the code table for a skewed text",
				Command:     "knot stats 'aaaaaaab'",
			},
			{
				Description: "Machine-readable report",
				Command:     "knot stats --json 'hello world'",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("stats", pflag.ContinueOnError)
			options.bind(flags)
			flags.BoolVar(&asJSON, "json", false, "output as JSON")
			return flags
		},
		Run: func(args []string) error {
			_, pair, err := options.resolve()
			if err != nil {
				return err
			}
			text, err := readInput(args)
			if err != nil {
				return err
			}
			if text == "" {
				return fmt.Errorf("stats needs a non-empty text")
			}

			output, err := computeStats(text, pair)
			if err != nil {
				return err
			}
			if asJSON {
				return cli.WriteJSON(output)
			}
			printStats(output)
			return nil
		},
	}
}

// computeStats runs the Huffman pipeline over text and assembles the
// report.
func computeStats(text string, pair glyph.Pair) (*statsOutput, error) {
	frequencies := huffman.Frequencies(text)
	codes := huffman.Codes(frequencies)
	book, err := codebook.Marshal(codes)
	if err != nil {
		return nil, err
	}

	c, err := codec.New(pair)
	if err != nil {
		return nil, err
	}
	message, err := c.Encode(text)
	if err != nil {
		return nil, err
	}

	output := &statsOutput{
		TextRunes:       utf8.RuneCountInString(text),
		DistinctSymbols: len(frequencies),
		MessageGlyphs:   utf8.RuneCountInString(message),
		CodebookBits:    len(book) * 8,
	}
	for symbol, count := range frequencies {
		code := codes[symbol]
		output.PayloadBits += count * len(code)
		output.Entries = append(output.Entries, statsEntry{
			Symbol: string(symbol),
			Count:  count,
			Code:   code,
			Bits:   len(code),
		})
	}
	// Highest count first, then symbol, matching the order a reader
	// scans a frequency table in.
	slices.SortFunc(output.Entries, func(a, b statsEntry) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		if a.Symbol < b.Symbol {
			return -1
		}
		return 1
	})

	body := 32 + output.CodebookBits + output.PayloadBits
	output.PaddingBits = (8 - body%8) % 8
	output.MeanBitsPerSymbol = float64(output.PayloadBits) / float64(output.TextRunes)
	output.GlyphsPerRune = float64(output.MessageGlyphs) / float64(output.TextRunes)
	return output, nil
}

// printStats writes the human-readable report to stdout.
func printStats(output *statsOutput) {
	tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "SYMBOL\tCOUNT\tCODE\tBITS\n")
	for _, entry := range output.Entries {
		fmt.Fprintf(tw, "%q\t%d\t%s\t%d\n", entry.Symbol, entry.Count, entry.Code, entry.Bits)
	}
	tw.Flush()

	fmt.Printf("\ntext: %d runes, %d distinct symbols\n", output.TextRunes, output.DistinctSymbols)
	fmt.Printf("message: %d glyphs (%d payload + %d codebook + %d padding bits + 35 header bits)\n",
		output.MessageGlyphs, output.PayloadBits, output.CodebookBits, output.PaddingBits)
	fmt.Printf("mean code length: %.2f bits/symbol (8.00 baseline)\n", output.MeanBitsPerSymbol)
	fmt.Printf("expansion: %.2f glyphs per input rune\n", output.GlyphsPerRune)
}
