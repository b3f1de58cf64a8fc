package zerowidth

import (
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/yyyoichi/zerowidth/internal/quinary"
)

// DefaultPosition is the insertion index used by EncodeDefault when the
// carrier has no space.
const DefaultPosition = 1

// Encode hides text in carrier at the given rune index.
// This is a convenience function that splices TextToStream(hidden) into carrier.
//
// Positions below zero are treated as zero and positions past the end of
// carrier append the stream. An empty carrier yields the stream alone.
func Encode(carrier, hidden string, position int) string {
	return Insert(carrier, TextToStream(hidden), position)
}

// EncodeDefault hides text in carrier before its first space, or after its
// first character if it has none.
func EncodeDefault(carrier, hidden string) string {
	return Encode(carrier, hidden, DefaultPositionOf(carrier))
}

// Extract separates text into its visible characters and its digit characters.
// Separators are not hidden payload and stay in visible, so hidden has lost
// its group boundaries. Use ExtractStream to recover a decodable stream.
//
// Bytes that are not valid UTF-8 are copied to visible unchanged.
func Extract(text string) (visible, hidden string) {
	return partition(text, quinary.IsDigitChar)
}

// ExtractStream separates text into its visible characters and its
// invisible stream, separators included.
func ExtractStream(text string) (visible, stream string) {
	return partition(text, quinary.IsInvisible)
}

// partition splits text by inv, keeping the original bytes of every rune.
func partition(text string, inv func(rune) bool) (visible, matched string) {
	var v, m strings.Builder
	for i := 0; i < len(text); {
		c, size := utf8.DecodeRuneInString(text[i:])
		if c != utf8.RuneError && inv(c) {
			m.WriteString(text[i : i+size])
		} else {
			v.WriteString(text[i : i+size])
		}
		i += size
	}
	return v.String(), m.String()
}

// Decode returns the text hidden in an encoded string.
func Decode(text string) (string, error) {
	_, stream := ExtractStream(text)
	return StreamToText(stream)
}

// Strip removes every invisible character from text.
func Strip(text string) string {
	visible, _ := ExtractStream(text)
	return visible
}

// Contains reports whether text holds any invisible character.
func Contains(text string) bool {
	return strings.ContainsFunc(text, quinary.IsInvisible)
}

// Codec embeds and reveals hidden text with a fixed insertion policy.
type Codec struct {
	position   int
	firstSpace bool
	logger     zerolog.Logger
}

// New initializes a codec.
// Without WithPosition the insertion index is chosen like EncodeDefault.
func New(opts ...Option) (*Codec, error) {
	c := new(Codec)
	if err := c.init(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// Encode hides text in carrier.
func (c *Codec) Encode(carrier, hidden string) string {
	position := c.position
	if c.firstSpace {
		position = DefaultPositionOf(carrier)
	}
	stream := TextToStream(hidden)
	c.logger.Debug().
		Int("position", position).
		Int("carrier_runes", utf8.RuneCountInString(carrier)).
		Int("hidden_runes", utf8.RuneCountInString(hidden)).
		Msg("embedding hidden text")
	return Insert(carrier, stream, position)
}

// Decode returns the text hidden in text.
func (c *Codec) Decode(text string) (string, error) {
	hidden, err := Decode(text)
	if err != nil {
		c.logger.Debug().Err(err).Msg("hidden text is malformed")
		return "", err
	}
	return hidden, nil
}

func (c *Codec) init(opts ...Option) error {
	c.firstSpace = true
	c.logger = zerolog.Nop()
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// Insert splices stream into carrier after the first position runes,
// clamping position to [0, rune count of carrier].
func Insert(carrier, stream string, position int) string {
	if carrier == "" {
		return stream
	}
	if position < 0 {
		position = 0
	}
	at := len(carrier)
	n := 0
	for i := range carrier {
		if n == position {
			at = i
			break
		}
		n++
	}
	var b strings.Builder
	b.Grow(len(carrier) + len(stream))
	b.WriteString(carrier[:at])
	b.WriteString(stream)
	b.WriteString(carrier[at:])
	return b.String()
}

// DefaultPositionOf returns the rune index of the first space in carrier,
// or DefaultPosition if it has none.
func DefaultPositionOf(carrier string) int {
	if i, ok := firstSpace(carrier); ok {
		return i
	}
	return DefaultPosition
}

// firstSpace returns the rune index of the first U+0020 in s.
func firstSpace(s string) (int, bool) {
	n := 0
	for _, c := range s {
		if c == ' ' {
			return n, true
		}
		n++
	}
	return 0, false
}
