// Copyright 2026 The Knot Authors
// SPDX-License-Identifier: Apache-2.0

// Package glyph defines the two-symbol output alphabet that knot
// messages are written in.
//
// Every codec in this repository produces a bit sequence and then
// renders it over exactly two glyphs: one for bit 1, one for bit 0.
// Which two glyphs is the codec's only configuration knob; the
// default pair is 结 (one) and 婚 (zero). The pair is always passed
// explicitly — there is no process-wide substitution rule.
//
// The package also owns the empty-string sentinel: the two-glyph
// literal "zero, one" (婚结 for the default pair) is reserved as the
// encoding of the empty string. It is shorter than any real message
// header, so it can never be confused with the start of one.
package glyph
