// Copyright 2026 The Knot Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/knotcodec/knot/lib/config"
	"github.com/knotcodec/knot/lib/glyph"
)

// codecOptions are the flags shared by every codec-facing command:
// where the configuration comes from and which alphabet and codec
// variant to use. Flag values override the config file.
type codecOptions struct {
	configPath string
	symbols    string
	codecName  string
}

// bind registers the shared flags on a command's flag set.
func (o *codecOptions) bind(flags *pflag.FlagSet) {
	flags.StringVar(&o.configPath, "config", "", "config file path (overrides KNOT_CONFIG)")
	flags.StringVar(&o.symbols, "symbols", "", "two-rune output alphabet, the bit-1 glyph first (default 结婚)")
	flags.StringVar(&o.codecName, "codec", "", "codec variant: huffman, bytes, or raw")
}

// resolve loads the configuration, applies flag overrides, and
// returns the validated config together with its glyph pair.
func (o *codecOptions) resolve() (*config.Config, glyph.Pair, error) {
	var cfg *config.Config
	var err error
	if o.configPath != "" {
		cfg, err = config.LoadFile(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, glyph.Pair{}, err
	}

	if o.symbols != "" {
		runes := []rune(o.symbols)
		if len(runes) != 2 {
			return nil, glyph.Pair{}, fmt.Errorf("--symbols must be exactly two runes, got %q", o.symbols)
		}
		cfg.Symbols = config.SymbolsConfig{One: string(runes[0]), Zero: string(runes[1])}
	}
	if o.codecName != "" {
		cfg.Codec = o.codecName
	}
	if err := cfg.Validate(); err != nil {
		return nil, glyph.Pair{}, err
	}
	pair, err := cfg.Pair()
	if err != nil {
		return nil, glyph.Pair{}, err
	}
	return cfg, pair, nil
}

// readInput returns the command's text input: the joined positional
// arguments if any, otherwise all of stdin. A single trailing newline
// from shell-piped input is dropped so that `echo text | knot encode`
// and `knot encode text` agree.
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "reading from stdin; finish with Ctrl-D")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	text := string(data)
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	return text, nil
}
