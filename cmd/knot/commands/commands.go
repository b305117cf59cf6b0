// Copyright 2026 The Knot Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the knot CLI command tree. The CLI is an
// external collaborator over the codec packages: it only calls their
// encode/decode surface and never reaches into message internals.
package commands

import (
	"fmt"
	"runtime/debug"

	"github.com/knotcodec/knot/cmd/knot/cli"
)

// Root builds and returns the complete knot CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "knot",
		Description: `knot: a self-describing two-glyph text codec.

Encode any text as a string over exactly two glyphs (结 and 婚 by
default) and decode it back. The default codec Huffman-codes the text
and embeds its own codebook, so a message carries everything needed
to decode it.`,
		Subcommands: []*cli.Command{
			encodeCommand(),
			decodeCommand(),
			statsCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					if len(args) > 0 {
						return fmt.Errorf("unexpected argument: %s", args[0])
					}
					fmt.Printf("knot %s\n", buildVersion())
					return nil
				},
			},
		},
	}
}

// buildVersion reports the module version recorded in the build info,
// or "devel" for local builds.
func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return "devel"
	}
	return info.Main.Version
}
