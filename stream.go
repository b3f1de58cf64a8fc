package zerowidth

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yyyoichi/zerowidth/internal/quinary"
)

// Separator is the invisible character placed between groups of a stream.
const Separator = quinary.Separator

// TextToStream encodes every codepoint of text as an invisible group and
// joins the groups with Separator. An empty text yields an empty stream.
// Invalid UTF-8 bytes are encoded as U+FFFD.
func TextToStream(text string) string {
	stream := make([]rune, 0, len(text)*4)
	first := true
	for _, r := range text {
		if !first {
			stream = append(stream, Separator)
		}
		first = false
		// runes produced by range are always within [0, utf8.MaxRune]
		stream, _ = quinary.AppendGroup(stream, r)
	}
	return string(stream)
}

// StreamToText decodes a stream produced by TextToStream.
// It fails on the first malformed group and never skips one.
func StreamToText(stream string) (string, error) {
	values, err := DecodeValues(stream)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(len(values))
	for i, v := range values {
		if !utf8.ValidRune(v) {
			return "", newDecodeError(i, fmt.Errorf("%w: %#x", ErrInvalidCodepoint, v))
		}
		b.WriteRune(v)
	}
	return b.String(), nil
}

// EncodeValues encodes arbitrary values in [0, U+10FFFF] as a stream.
// Unlike TextToStream it accepts surrogate values, which lets callers
// carry binary payloads.
func EncodeValues(values []rune) (string, error) {
	stream := make([]rune, 0, len(values)*4)
	for i, v := range values {
		if i > 0 {
			stream = append(stream, Separator)
		}
		var err error
		if stream, err = quinary.AppendGroup(stream, v); err != nil {
			return "", fmt.Errorf("value %d: %w", i, err)
		}
	}
	return string(stream), nil
}

// DecodeValues splits stream on Separator and folds each group to its value.
func DecodeValues(stream string) ([]rune, error) {
	if stream == "" {
		return nil, nil
	}
	var (
		values []rune
		group  = make([]rune, 0, 9)
	)
	flush := func() error {
		v, err := quinary.Value(group)
		if err != nil {
			return newDecodeError(len(values), err)
		}
		values = append(values, v)
		group = group[:0]
		return nil
	}
	for _, c := range stream {
		if c == Separator {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		group = append(group, c)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return values, nil
}
