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

// decodeCommand returns the "decode" command: two-glyph message in,
// text out.
func decodeCommand() *cli.Command {
	var options codecOptions

	return &cli.Command{
		Name:    "decode",
		Summary: "Decode a two-glyph message back to text",
		Description: `Decode a two-glyph message back to the original text.

The message is taken from the positional arguments, or from stdin when
none are given. The codec variant must match the one that produced the
message; a message from an incompatible encoder fails with a
malformed-message error rather than decoding to wrong text.`,
		Usage: "knot decode [message] [flags]",
		Examples: []cli.Example{
			{
				Description: "Decode a message produced by knot encode",
				Command:     "knot encode 'hi' | knot decode",
			},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("decode", pflag.ContinueOnError)
			options.bind(flags)
			return flags
		},
		Run: func(args []string) error {
			cfg, pair, err := options.resolve()
			if err != nil {
				return err
			}
			message, err := readInput(args)
			if err != nil {
				return err
			}

			var text string
			switch cfg.Codec {
			case config.CodecHuffman:
				c, err := codec.New(pair)
				if err != nil {
					return err
				}
				text, err = c.Decode(message)
				if err != nil {
					return err
				}
			case config.CodecBytes:
				text, err = bytecodec.Decode(message, pair)
				if err != nil {
					return err
				}
			case config.CodecRaw:
				text, err = bytecodec.DecodeRaw(message, pair)
				if err != nil {
					return err
				}
			}
			fmt.Println(text)
			return nil
		},
	}
}
