// Copyright 2026 The Knot Authors
// SPDX-License-Identifier: Apache-2.0

package bytecodec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/klauspost/compress/zlib"

	"github.com/knotcodec/knot/lib/bitstream"
	"github.com/knotcodec/knot/lib/glyph"
)

// Error kinds, mirroring the Huffman codec's boundary behavior.
var (
	// ErrInvalidText means Encode was called with input that is not
	// valid UTF-8 text.
	ErrInvalidText = errors.New("input is not valid UTF-8 text")

	// ErrMalformedMessage means the message is empty, not a whole
	// number of byte-sized glyph groups, contains runes outside the
	// alphabet, or its body fails to inflate or decode as UTF-8.
	ErrMalformedMessage = errors.New("malformed message")
)

// Encode renders text's UTF-8 bytes over the glyph pair, 8 glyphs per
// byte, behind one marker glyph. With compress set the body is zlib
// deflated first and the marker is the pair's One glyph; otherwise
// the body is raw and the marker is Zero.
func Encode(text string, pair glyph.Pair, compress bool) (string, error) {
	if err := pair.Validate(); err != nil {
		return "", fmt.Errorf("invalid glyph pair: %w", err)
	}
	if !utf8.ValidString(text) {
		return "", ErrInvalidText
	}

	body := []byte(text)
	marker := pair.Zero
	if compress {
		var deflated bytes.Buffer
		zw := zlib.NewWriter(&deflated)
		if _, err := zw.Write(body); err != nil {
			return "", fmt.Errorf("deflating body: %w", err)
		}
		if err := zw.Close(); err != nil {
			return "", fmt.Errorf("deflating body: %w", err)
		}
		body = deflated.Bytes()
		marker = pair.One
	}

	var bits bitstream.Writer
	bits.WriteBytes(body)
	return string(marker) + pair.Render(&bits), nil
}

// Decode reverses Encode, inflating the body when the marker glyph
// says it was compressed.
func Decode(message string, pair glyph.Pair) (string, error) {
	if err := pair.Validate(); err != nil {
		return "", fmt.Errorf("invalid glyph pair: %w", err)
	}
	if message == "" {
		return "", fmt.Errorf("%w: message is empty", ErrMalformedMessage)
	}

	marker, size := utf8.DecodeRuneInString(message)
	var compressed bool
	switch marker {
	case pair.One:
		compressed = true
	case pair.Zero:
		compressed = false
	default:
		return "", fmt.Errorf("%w: marker rune %q is not part of the %q/%q alphabet", ErrMalformedMessage, marker, pair.One, pair.Zero)
	}

	body, err := parseBytes(message[size:], pair)
	if err != nil {
		return "", err
	}
	if compressed {
		zr, err := zlib.NewReader(bytes.NewReader(body))
		if err != nil {
			return "", fmt.Errorf("%w: body is not a zlib stream: %v", ErrMalformedMessage, err)
		}
		inflated, err := io.ReadAll(zr)
		if err != nil {
			return "", fmt.Errorf("%w: inflating body: %v", ErrMalformedMessage, err)
		}
		if err := zr.Close(); err != nil {
			return "", fmt.Errorf("%w: inflating body: %v", ErrMalformedMessage, err)
		}
		body = inflated
	}
	if !utf8.Valid(body) {
		return "", fmt.Errorf("%w: body is not valid UTF-8 text", ErrMalformedMessage)
	}
	return string(body), nil
}

// EncodeRaw renders text's UTF-8 bytes directly over the glyph pair:
// no marker, no compression.
func EncodeRaw(text string, pair glyph.Pair) (string, error) {
	if err := pair.Validate(); err != nil {
		return "", fmt.Errorf("invalid glyph pair: %w", err)
	}
	if !utf8.ValidString(text) {
		return "", ErrInvalidText
	}
	var bits bitstream.Writer
	bits.WriteBytes([]byte(text))
	return pair.Render(&bits), nil
}

// DecodeRaw reverses EncodeRaw.
func DecodeRaw(message string, pair glyph.Pair) (string, error) {
	if err := pair.Validate(); err != nil {
		return "", fmt.Errorf("invalid glyph pair: %w", err)
	}
	body, err := parseBytes(message, pair)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(body) {
		return "", fmt.Errorf("%w: body is not valid UTF-8 text", ErrMalformedMessage)
	}
	return string(body), nil
}

// parseBytes converts a glyph-rendered body back into bytes. The body
// must be a whole number of 8-glyph groups.
func parseBytes(body string, pair glyph.Pair) ([]byte, error) {
	bits, err := pair.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	if bits.Remaining()%8 != 0 {
		return nil, fmt.Errorf("%w: body of %d glyphs is not a whole number of bytes", ErrMalformedMessage, bits.Remaining())
	}
	return bits.ReadBytes(bits.Remaining() / 8)
}
