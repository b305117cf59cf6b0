// Copyright 2026 The Knot Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/knotcodec/knot/lib/glyph"
)

// Codec variant names accepted in the config file and on --codec.
const (
	CodecHuffman = "huffman"
	CodecBytes   = "bytes"
	CodecRaw     = "raw"
)

// Config is the knot CLI configuration.
type Config struct {
	// Symbols selects the two-glyph output alphabet.
	Symbols SymbolsConfig `yaml:"symbols"`

	// Codec is the default codec variant: "huffman" (per-message
	// Huffman coding with an embedded codebook), "bytes" (zlib-backed
	// byte codec with a compression marker), or "raw" (fixed
	// one-bit-per-bit mapping).
	Codec string `yaml:"codec"`
}

// SymbolsConfig names the glyphs for bit 1 and bit 0. Each value must
// be exactly one rune.
type SymbolsConfig struct {
	One  string `yaml:"one"`
	Zero string `yaml:"zero"`
}

// Default returns the built-in configuration: the reference 结/婚
// alphabet and the Huffman codec.
func Default() *Config {
	pair := glyph.Default()
	return &Config{
		Symbols: SymbolsConfig{One: string(pair.One), Zero: string(pair.Zero)},
		Codec:   CodecHuffman,
	}
}

// Load loads configuration from the KNOT_CONFIG environment variable,
// falling back to the built-in defaults when it is not set.
func Load() (*Config, error) {
	path := os.Getenv("KNOT_CONFIG")
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path. Fields left
// unset in the file keep their defaults. Unknown fields are an error;
// a config file that misspells a knob should fail loudly, not apply
// silently incomplete settings.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if _, err := c.Pair(); err != nil {
		return err
	}
	switch c.Codec {
	case CodecHuffman, CodecBytes, CodecRaw:
	default:
		return fmt.Errorf("unknown codec %q (want %s, %s, or %s)", c.Codec, CodecHuffman, CodecBytes, CodecRaw)
	}
	return nil
}

// Pair returns the configured glyph alphabet.
func (c *Config) Pair() (glyph.Pair, error) {
	one, err := singleRune("symbols.one", c.Symbols.One)
	if err != nil {
		return glyph.Pair{}, err
	}
	zero, err := singleRune("symbols.zero", c.Symbols.Zero)
	if err != nil {
		return glyph.Pair{}, err
	}
	pair := glyph.Pair{One: one, Zero: zero}
	if err := pair.Validate(); err != nil {
		return glyph.Pair{}, err
	}
	return pair, nil
}

// singleRune requires value to be exactly one rune.
func singleRune(field, value string) (rune, error) {
	r, size := utf8.DecodeRuneInString(value)
	if value == "" || r == utf8.RuneError || size != len(value) {
		return 0, fmt.Errorf("%s must be exactly one rune, got %q", field, value)
	}
	return r, nil
}
