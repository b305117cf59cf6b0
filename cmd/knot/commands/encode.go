// Copyright 2026 The Knot Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/knotcodec/knot/cmd/knot/cli"
	"github.com/knotcodec/knot/lib/bytecodec"
	"github.com/knotcodec/knot/lib/codec"
	"github.com/knotcodec/knot/lib/config"
)

// encodeCommand returns the "encode" command: text in, two-glyph
// message out.
func encodeCommand() *cli.Command {
	var options codecOptions
	var compress bool

	return &cli.Command{
		Name:    "encode",
		Summary: "Encode text as a two-glyph message",
		Description: `Encode text as a two-glyph message.

Text is taken from the positional arguments, or from stdin when none
are given. The default huffman codec embeds its own codebook in the
message; the bytes codec writes each UTF-8 byte as 8 glyphs behind a
compression marker; the raw codec is the plain bit-per-glyph mapping.`,
		Usage: "knot encode [text] [flags]",
		Examples: []cli.Example{
			{
				Description: "Huffman-code a string with the default alphabet",
				Command:     "knot encode 'hello world'",
			},
			{
				Description: "Use a custom alphabet and the byte codec",
				Command:     "knot encode --symbols 10 --codec bytes 'hello world'",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("encode", pflag.ContinueOnError)
			options.bind(flags)
			flags.BoolVar(&compress, "compress", true, "zlib-compress the body (bytes codec only)")
			return flags
		},
		Run: func(args []string) error {
			cfg, pair, err := options.resolve()
			if err != nil {
				return err
			}
			text, err := readInput(args)
			if err != nil {
				return err
			}

			var message string
			switch cfg.Codec {
			case config.CodecHuffman:
				c, err := codec.New(pair)
				if err != nil {
					return err
				}
				message, err = c.Encode(text)
				if err != nil {
					return err
				}
			case config.CodecBytes:
				message, err = bytecodec.Encode(text, pair, compress)
				if err != nil {
					return err
				}
			case config.CodecRaw:
				message, err = bytecodec.EncodeRaw(text, pair)
				if err != nil {
					return err
				}
			}
			fmt.Println(message)
			return nil
		},
	}
}
