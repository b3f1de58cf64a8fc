package quinary

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Base is the radix of a group.
const Base = 5

// Invisible characters. The first five are digit characters 0..4,
// Separator only delimits groups and never carries a digit value.
const (
	Digit0    rune = '\u200E' // left-to-right mark
	Digit1    rune = '\u200F' // right-to-left mark
	Digit2    rune = '\u200C' // zero width non-joiner
	Digit3    rune = '\u200D' // zero width joiner
	Digit4    rune = '\uFEFF' // zero width no-break space
	Separator rune = '\u200B' // zero width space
)

// MaxValue is the largest value a group may decode to.
const MaxValue = utf8.MaxRune

// maxDigits is the length of the group for MaxValue.
const maxDigits = 9

var (
	ErrInvalidInvisibleChar = errors.New("invalid invisible character")
	ErrEmptyGroup           = errors.New("empty group")
	ErrCodepointOverflow    = errors.New("codepoint overflow")
	ErrCodepointTooLarge    = errors.New("codepoint too large")
)

var digitChars = [Base]rune{Digit0, Digit1, Digit2, Digit3, Digit4}

// DigitChar returns the invisible character for digit d.
// It panics if d is outside [0, 4].
func DigitChar(d int) rune {
	return digitChars[d]
}

// CharDigit returns the digit value of c. ok is false for the separator
// and for every character that is not a digit character.
func CharDigit(c rune) (d int, ok bool) {
	switch c {
	case Digit0:
		return 0, true
	case Digit1:
		return 1, true
	case Digit2:
		return 2, true
	case Digit3:
		return 3, true
	case Digit4:
		return 4, true
	}
	return 0, false
}

// IsDigitChar reports whether c is one of the five digit characters.
func IsDigitChar(c rune) bool {
	_, ok := CharDigit(c)
	return ok
}

// IsInvisible reports whether c is a digit character or the separator.
func IsInvisible(c rune) bool {
	return c == Separator || IsDigitChar(c)
}

// Digits returns the base-5 digits of v, most significant first.
// Zero yields the single digit 0.
func Digits(v rune) ([]int, error) {
	if v < 0 || v > MaxValue {
		return nil, fmt.Errorf("%w: %#x", ErrCodepointTooLarge, v)
	}
	if v == 0 {
		return []int{0}, nil
	}
	var buf [maxDigits]int
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = int(v % Base)
		v /= Base
	}
	return append([]int(nil), buf[i:]...), nil
}

// AppendGroup appends the invisible group of v to dst.
func AppendGroup(dst []rune, v rune) ([]rune, error) {
	digits, err := Digits(v)
	if err != nil {
		return dst, err
	}
	for _, d := range digits {
		dst = append(dst, digitChars[d])
	}
	return dst, nil
}

// Group returns the invisible group of v.
func Group(v rune) (string, error) {
	g, err := AppendGroup(make([]rune, 0, maxDigits), v)
	if err != nil {
		return "", err
	}
	return string(g), nil
}

// Value folds a group back to the value it encodes.
// Leading zero digits are accepted, so Value(Group(v)) == v but a value
// has more than one decodable group.
func Value(group []rune) (rune, error) {
	if len(group) == 0 {
		return 0, ErrEmptyGroup
	}
	var acc rune
	for i, c := range group {
		d, ok := CharDigit(c)
		if !ok {
			return 0, fmt.Errorf("%w: %U at %d", ErrInvalidInvisibleChar, c, i)
		}
		acc = acc*Base + rune(d)
		if acc > MaxValue {
			return 0, fmt.Errorf("%w: group of %d digits", ErrCodepointOverflow, len(group))
		}
	}
	return acc, nil
}
