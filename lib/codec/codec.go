// Copyright 2026 The Knot Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/knotcodec/knot/lib/bitstream"
	"github.com/knotcodec/knot/lib/codebook"
	"github.com/knotcodec/knot/lib/glyph"
	"github.com/knotcodec/knot/lib/huffman"
)

// Error kinds. Every failure from Encode or Decode matches exactly
// one of these via errors.Is.
var (
	// ErrInvalidText means Encode was called with input that is not
	// valid UTF-8 text.
	ErrInvalidText = errors.New("input is not valid UTF-8 text")

	// ErrMalformedMessage means Decode was called with input that is
	// empty, too short for its own header fields, or contains runes
	// outside the glyph alphabet.
	ErrMalformedMessage = errors.New("malformed message")

	// ErrCodebookCorrupt means the embedded codebook does not
	// deserialize into a valid, total, prefix-free code table.
	ErrCodebookCorrupt = errors.New("corrupt embedded codebook")

	// ErrPayloadCorrupt means the payload bits do not resolve into a
	// whole number of codes: a non-empty partial code remained after
	// the last bit.
	ErrPayloadCorrupt = errors.New("corrupt payload")
)

// Width of the header fields, in bits.
const (
	paddingFieldWidth  = 3
	lengthFieldWidth   = 32
	maxCodebookBitSize = math.MaxUint32
)

// Codec encodes and decodes text over a fixed two-glyph alphabet. It
// holds no per-call state and is safe for concurrent use.
type Codec struct {
	pair glyph.Pair
}

// New returns a Codec over the given glyph pair.
func New(pair glyph.Pair) (*Codec, error) {
	if err := pair.Validate(); err != nil {
		return nil, fmt.Errorf("invalid glyph pair: %w", err)
	}
	return &Codec{pair: pair}, nil
}

// Default returns a Codec over the reference 结/婚 alphabet.
func Default() *Codec {
	return &Codec{pair: glyph.Default()}
}

// Pair returns the codec's glyph alphabet.
func (c *Codec) Pair() glyph.Pair {
	return c.pair
}

// Encode turns text into a self-describing two-glyph message. The
// empty string encodes as the reserved sentinel.
func (c *Codec) Encode(text string) (string, error) {
	if !utf8.ValidString(text) {
		return "", ErrInvalidText
	}
	if text == "" {
		return c.pair.Sentinel(), nil
	}

	codes := huffman.Codes(huffman.Frequencies(text))
	book, err := codebook.Marshal(codes)
	if err != nil {
		return "", fmt.Errorf("serializing codebook: %w", err)
	}
	if len(book)*8 > maxCodebookBitSize {
		return "", fmt.Errorf("codebook of %d bits exceeds the %d-bit length field", len(book)*8, lengthFieldWidth)
	}

	var body bitstream.Writer
	body.WriteUint(uint64(len(book)*8), lengthFieldWidth)
	body.WriteBytes(book)
	for _, symbol := range text {
		body.WriteCode(codes[symbol])
	}

	// Pad the body to a byte boundary, then prepend the real padding
	// count. The 3-bit field itself stays outside the alignment.
	padding := (8 - body.Len()%8) % 8
	var message bitstream.Writer
	message.WriteUint(uint64(padding), paddingFieldWidth)
	message.Append(&body)
	message.WriteZeros(padding)

	return c.pair.Render(&message), nil
}

// Decode reverses Encode, rebuilding the code table from the embedded
// codebook. The sentinel decodes to the empty string.
func (c *Codec) Decode(message string) (string, error) {
	if message == "" {
		return "", fmt.Errorf("%w: message is empty", ErrMalformedMessage)
	}
	if message == c.pair.Sentinel() {
		return "", nil
	}

	bits, err := c.pair.Parse(message)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}

	padding, err := bits.ReadUint(paddingFieldWidth)
	if err != nil {
		return "", fmt.Errorf("%w: message shorter than the padding field", ErrMalformedMessage)
	}
	if err := bits.Truncate(int(padding)); err != nil {
		return "", fmt.Errorf("%w: message shorter than its %d padding bits", ErrMalformedMessage, padding)
	}

	bookBits, err := bits.ReadUint(lengthFieldWidth)
	if err != nil {
		return "", fmt.Errorf("%w: message shorter than the codebook length field", ErrMalformedMessage)
	}
	if bookBits%8 != 0 {
		return "", fmt.Errorf("%w: codebook length %d bits is not a whole number of bytes", ErrCodebookCorrupt, bookBits)
	}
	if uint64(bits.Remaining()) < bookBits {
		return "", fmt.Errorf("%w: codebook length %d exceeds the %d remaining bits", ErrMalformedMessage, bookBits, bits.Remaining())
	}
	book, err := bits.ReadBytes(int(bookBits / 8))
	if err != nil {
		return "", fmt.Errorf("%w: reading codebook bits", ErrMalformedMessage)
	}

	codes, err := codebook.Unmarshal(book)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCodebookCorrupt, err)
	}
	symbols := make(map[string]rune, len(codes))
	for symbol, code := range codes {
		symbols[code] = symbol
	}

	// Walk the payload left to right. Prefix-freeness guarantees the
	// first match is the only possible one.
	var text strings.Builder
	current := make([]byte, 0, 16)
	for bits.Remaining() > 0 {
		bit, err := bits.ReadBit()
		if err != nil {
			return "", fmt.Errorf("%w: reading payload bits", ErrMalformedMessage)
		}
		current = append(current, '0'+bit)
		if symbol, ok := symbols[string(current)]; ok {
			text.WriteRune(symbol)
			current = current[:0]
		}
	}
	if len(current) > 0 {
		return "", fmt.Errorf("%w: %d trailing payload bits %q match no code", ErrPayloadCorrupt, len(current), current)
	}
	return text.String(), nil
}
