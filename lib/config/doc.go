// Copyright 2026 The Knot Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the knot CLI.
//
// Configuration is loaded from a single YAML file specified by:
//   - KNOT_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery. When neither is set,
// the built-in defaults apply: the 结/婚 glyph alphabet and the
// Huffman codec. Command-line flags override whatever the file sets.
//
// The file configures the only two knobs the codecs recognize: which
// two glyphs make up the output alphabet, and which codec variant
// (huffman, bytes, raw) runs when the user does not pick one.
package config
