// Package mark hides binary payloads in text.
//
// A payload stream starts with one group holding the payload length,
// followed by one group per protected payload byte.
package mark

import (
	"errors"
	"fmt"

	"github.com/yyyoichi/zerowidth"
)

// MaxSize is the largest payload, in bytes, a length group can describe.
const MaxSize = 0x10FFFF

var (
	ErrInvalidPayload = errors.New("invalid payload")
	ErrPayloadLength  = errors.New("invalid payload length")
	ErrNoPayload      = errors.New("no payload")
)

// Hide hides data in carrier after the given number of carrier runes.
// By default, it uses the Golay code with shuffle error correction algorithm.
func Hide(carrier string, data []byte, position int, opts ...Option) (string, error) {
	stream, err := Stream(data, opts...)
	if err != nil {
		return "", err
	}
	return zerowidth.Insert(carrier, stream, position), nil
}

// Stream returns the invisible stream carrying data.
func Stream(data []byte, opts ...Option) (string, error) {
	if len(data) > MaxSize {
		return "", fmt.Errorf("%w: %d bytes exceeds %d", ErrPayloadLength, len(data), MaxSize)
	}
	mf := newMarkFactory(opts...)
	encoded := mf.f.encode(data)
	values := make([]rune, 0, len(encoded)+1)
	values = append(values, rune(len(data)))
	for _, b := range encoded {
		values = append(values, rune(b))
	}
	return zerowidth.EncodeValues(values)
}

// Reveal returns the payload hidden in text by Hide.
// The options must match those used for hiding.
func Reveal(text string, opts ...Option) ([]byte, error) {
	_, stream := zerowidth.ExtractStream(text)
	if stream == "" {
		return nil, ErrNoPayload
	}
	values, err := zerowidth.DecodeValues(stream)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	size := int(values[0])
	encoded := make([]byte, len(values)-1)
	for i, v := range values[1:] {
		if v > 0xff {
			return nil, fmt.Errorf("%w: group %d holds %#x", ErrInvalidPayload, i+1, v)
		}
		encoded[i] = byte(v)
	}
	return newMarkFactory(opts...).f.decode(encoded, size)
}

// Groups returns the number of invisible groups Hide emits for a payload
// of size bytes.
func Groups(size int, opts ...Option) int {
	return 1 + encodedBytes(newMarkFactory(opts...).f.encodedLen(size))
}
